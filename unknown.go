package schemaorg

import "encoding/json"

// decodeRaw decodes b as a JSON object keyed by member name.
// A JSON null yields a nil map.
func decodeRaw(b []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// splitUnknown returns the members of raw whose keys are not in known.
func splitUnknown(raw map[string]json.RawMessage, known map[string]struct{}) map[string]json.RawMessage {
	var unknown map[string]json.RawMessage
	for k, v := range raw {
		if _, ok := known[k]; ok {
			continue
		}
		if unknown == nil {
			unknown = map[string]json.RawMessage{}
		}
		unknown[k] = v
	}
	return unknown
}

// knownSet builds a map for constant-time known-key checks.
func knownSet(keys ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out
}
