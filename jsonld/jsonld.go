package jsonld

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// This package writes JSON-LD the way it is embedded in HTML pages:
// - Object members keep their insertion order, so documents read top-down
//   (@context, @type, then properties) and golden output stays stable.
// - Output is indented with four spaces; '/' and non-ASCII characters are
//   written literally and '<', '>', '&' are not turned into \u escapes.
// - The exceptions are "</", written as "<\/", and "<!--", written as
//   "<\u0021--", so a value can never close or escape the surrounding
//   <script> element. Decoders read both forms identically.

const (
	// Context is the @context value for every Schema.org document.
	Context = "https://schema.org"

	// MediaType is the script type used for embedded JSON-LD.
	MediaType = "application/ld+json"

	// Indent is the per-level indentation of rendered documents.
	Indent = "    "

	scriptOpen  = `<script type="` + MediaType + `">`
	scriptClose = `</script>`
)

// ErrNoScript is returned by Extract when the input has no JSON-LD script element.
var ErrNoScript = errors.New("jsonld: no " + MediaType + " script element found")

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is a JSON object that preserves member insertion order.
// The zero value is an empty object ready to use.
type Object struct {
	members []Member
}

// NewDocument returns a top-level Schema.org document with @context and @type set.
func NewDocument(typ string) *Object {
	o := &Object{}
	o.Set("@context", Context)
	o.Set("@type", typ)
	return o
}

// NewNode returns a nested node with only @type set.
func NewNode(typ string) *Object {
	o := &Object{}
	o.Set("@type", typ)
	return o
}

// Set stores v under key. An existing key keeps its position and takes the new value.
func (o *Object) Set(key string, v any) {
	for i := range o.members {
		if o.members[i].Key == key {
			o.members[i].Value = v
			return
		}
	}
	o.members = append(o.members, Member{Key: key, Value: v})
}

// SetString stores s under key unless s is empty.
func (o *Object) SetString(key, s string) {
	if s == "" {
		return
	}
	o.Set(key, s)
}

// SetStrings stores ss under key unless it has no elements.
func (o *Object) SetStrings(key string, ss []string) {
	if len(ss) == 0 {
		return
	}
	o.Set(key, append([]string(nil), ss...))
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	for _, m := range o.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Keys returns the member keys in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Members returns a copy of the members in order.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	return append([]Member(nil), o.members...)
}

func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(&buf, m.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeValue(&buf, m.Value); err != nil {
			return nil, fmt.Errorf("%q: %w", m.Key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates each value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// Marshal returns the indented JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	out := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	// "<" only occurs inside string literals, so this never touches structure.
	return []byte(scriptSafe.Replace(string(out))), nil
}

// scriptSafe rewrites the sequences that end script data or switch the HTML
// tokenizer into its escaped states. "<!--" followed by "<script" would
// otherwise stop the closing </script> tag from ending the element.
var scriptSafe = strings.NewReplacer("</", `<\/`, "<!--", `<\u0021--`)

// Script returns v encoded with Marshal and wrapped in a JSON-LD script element.
func Script(v any) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(len(scriptOpen) + len(b) + len(scriptClose) + 2)
	sb.WriteString(scriptOpen)
	sb.WriteByte('\n')
	sb.Write(b)
	sb.WriteByte('\n')
	sb.WriteString(scriptClose)
	return sb.String(), nil
}

// Extract returns the body of every JSON-LD script element in an HTML fragment,
// in document order. Bodies are trimmed but otherwise returned as written.
func Extract(fragment string) ([][]byte, error) {
	z := html.NewTokenizer(strings.NewReader(fragment))

	var (
		out   [][]byte
		body  bytes.Buffer
		inLD  bool
		inTag bool
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if !errors.Is(z.Err(), io.EOF) {
				return nil, z.Err()
			}
			if inLD {
				return nil, errors.New("jsonld: unterminated script element")
			}
			if len(out) == 0 {
				return nil, ErrNoScript
			}
			return out, nil
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "script" {
				continue
			}
			inTag = true
			inLD = false
			for hasAttr {
				var k, v []byte
				k, v, hasAttr = z.TagAttr()
				if string(k) == "type" && strings.EqualFold(strings.TrimSpace(string(v)), MediaType) {
					inLD = true
				}
			}
			body.Reset()
		case html.TextToken:
			if inLD {
				body.Write(z.Text())
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) != "script" || !inTag {
				continue
			}
			if inLD {
				out = append(out, append([]byte(nil), bytes.TrimSpace(body.Bytes())...))
			}
			inTag = false
			inLD = false
		}
	}
}
