package schemaorg

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

const (
	scriptPrefix = `<script type="application/ld+json">` + "\n"
	scriptSuffix = "\n</script>"
)

func sampleBusiness() Business {
	return Business{
		Name:        "Smith & Associates Law Firm",
		Description: "Family law firm serving the greater Seattle area.",
		URL:         "https://smithlaw.com",
		Phone:       "+1-206-555-1234",
		Email:       "info@smithlaw.com",
		Address: Address{
			Street: "123 Main Street, Suite 400",
			City:   "Seattle",
			State:  "WA",
			Zip:    "98101",
		},
		Geo: &GeoCoordinates{Lat: 47.6062, Lng: -122.3321},
	}
}

func mustUnmarshalJSON[T any](t *testing.T, b []byte, v *T) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
}

// scriptBody strips the script element around a rendered document.
func scriptBody(t *testing.T, out string) []byte {
	t.Helper()
	if !strings.HasPrefix(out, scriptPrefix) {
		t.Fatalf("missing script prefix:\n%s", out)
	}
	if !strings.HasSuffix(out, scriptSuffix) {
		t.Fatalf("missing script suffix:\n%s", out)
	}
	return []byte(strings.TrimSuffix(strings.TrimPrefix(out, scriptPrefix), scriptSuffix))
}

// mustScriptToMap decodes the document inside a rendered script element.
func mustScriptToMap(t *testing.T, out string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(scriptBody(t, out), &m); err != nil {
		t.Fatalf("unmarshal output: %v\n%s", err, out)
	}
	return m
}

// topLevelKeys returns the member names of the top-level object in document order.
func topLevelKeys(t *testing.T, out string) []string {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(scriptBody(t, out)))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		t.Fatalf("expected object, got %v (%v)", tok, err)
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			t.Fatalf("value: %v", err)
		}
	}
	return keys
}

func assertProblems(t *testing.T, err error, want ...string) {
	t.Helper()
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	for _, w := range want {
		found := false
		for _, p := range ve.Problems {
			if p == w {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected problem %q in %q", w, ve.Problems)
		}
	}
}
