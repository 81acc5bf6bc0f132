// Package recordfile reads renderer input records from YAML or JSON files.
//
// Both formats go through the YAML decoder, since JSON is valid YAML, and are
// then re-encoded as JSON for the record types' own decoders. Only the lat
// and lng keys keep numeric scalars; every other scalar keeps the literal
// text it was written with, so an unquoted zip such as 02134 survives intact.
package recordfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brochurekit/schemaorg-go"
)

// Kind names a renderable record type.
type Kind string

const (
	KindLocalBusiness Kind = "local-business"
	KindAttorney      Kind = "attorney"
	KindOrganization  Kind = "organization"
	KindWebSite       Kind = "website"
	KindBreadcrumbs   Kind = "breadcrumbs"
	KindFAQ           Kind = "faq"
	KindService       Kind = "service"
)

var kinds = map[Kind]bool{
	KindLocalBusiness: true,
	KindAttorney:      true,
	KindOrganization:  true,
	KindWebSite:       true,
	KindBreadcrumbs:   true,
	KindFAQ:           true,
	KindService:       true,
}

var numericKeys = map[string]bool{"lat": true, "lng": true}

// ErrEmpty is returned for input without a YAML or JSON document.
var ErrEmpty = errors.New("recordfile: empty input")

// Kinds returns every supported kind in lexical order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseKind validates s as a Kind. Matching ignores case and surrounding space.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !kinds[k] {
		names := make([]string, 0, len(kinds))
		for _, k := range Kinds() {
			names = append(names, string(k))
		}
		return "", fmt.Errorf("unknown record kind %q (want one of %s)", s, strings.Join(names, ", "))
	}
	return k, nil
}

// ToJSON reads one YAML or JSON document from r and returns it as JSON.
func ToJSON(r io.Reader) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("recordfile: read: %w", err)
	}
	if len(bytes.TrimSpace(src)) == 0 {
		return nil, ErrEmpty
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("recordfile: parse: %w", err)
	}
	v, err := nodeValue(&doc, "")
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func nodeValue(n *yaml.Node, key string) (any, error) {
	switch n.Kind {
	case 0:
		return nil, ErrEmpty
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, ErrEmpty
		}
		return nodeValue(n.Content[0], key)
	case yaml.AliasNode:
		return nodeValue(n.Alias, key)
	case yaml.SequenceNode:
		out := make([]any, len(n.Content))
		for i, c := range n.Content {
			v, err := nodeValue(c, key)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i].Value
			v, err := nodeValue(n.Content[i+1], k)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	case yaml.ScalarNode:
		return scalarValue(n, key)
	default:
		return nil, fmt.Errorf("recordfile: line %d: unsupported node", n.Line)
	}
}

func scalarValue(n *yaml.Node, key string) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!int", "!!float":
		if !numericKeys[key] {
			return n.Value, nil
		}
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("recordfile: line %d: %s: %w", n.Line, key, err)
		}
		return f, nil
	default:
		return n.Value, nil
	}
}

// Render decodes data as the record type for kind and renders it with r.
func Render(r *schemaorg.Renderer, kind Kind, data []byte) (string, error) {
	switch kind {
	case KindLocalBusiness:
		var b schemaorg.Business
		if err := decode(data, &b); err != nil {
			return "", err
		}
		return r.LocalBusiness(b)
	case KindAttorney:
		var a schemaorg.Attorney
		if err := decode(data, &a); err != nil {
			return "", err
		}
		return r.Attorney(a)
	case KindOrganization:
		var org schemaorg.Organization
		if err := decode(data, &org); err != nil {
			return "", err
		}
		return r.Organization(org)
	case KindWebSite:
		var s schemaorg.WebSite
		if err := decode(data, &s); err != nil {
			return "", err
		}
		return r.WebSite(s)
	case KindBreadcrumbs:
		var list schemaorg.BreadcrumbList
		if err := decode(data, &list); err != nil {
			return "", err
		}
		return r.Breadcrumbs(list)
	case KindFAQ:
		var faq schemaorg.FAQ
		if err := decode(data, &faq); err != nil {
			return "", err
		}
		return r.FAQ(faq)
	case KindService:
		var s schemaorg.Service
		if err := decode(data, &s); err != nil {
			return "", err
		}
		return r.Service(s)
	default:
		return "", fmt.Errorf("unknown record kind %q", kind)
	}
}

func decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("recordfile: decode record: %w", err)
	}
	return nil
}
