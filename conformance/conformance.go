package conformance

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/brochurekit/schemaorg-go"
	"github.com/brochurekit/schemaorg-go/jsonld"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// schemaFiles maps a document @type to its schema. Every LocalBusiness
// subtype shares localbusiness.json; see schemaFor.
var schemaFiles = map[string]string{
	"Organization":   "organization.json",
	"WebSite":        "website.json",
	"BreadcrumbList": "breadcrumblist.json",
	"FAQPage":        "faqpage.json",
	"Service":        "service.json",
}

const localBusinessSchema = "localbusiness.json"

var (
	compileOnce sync.Once
	compiled    map[string]*gojsonschema.Schema
	compileErr  error
)

// Error reports the schema violations of one document.
type Error struct {
	Type     string
	Problems []string
}

func (e *Error) Error() string {
	if e == nil {
		return "conformance error"
	}
	if len(e.Problems) == 0 {
		return fmt.Sprintf("%s does not conform", e.Type)
	}
	return fmt.Sprintf("%s does not conform: %s", e.Type, strings.Join(e.Problems, "; "))
}

// UnsupportedTypeError is returned for a document whose @type has no schema.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	if e == nil || e.Type == "" {
		return "unsupported document: missing @type"
	}
	return fmt.Sprintf("unsupported document type %q", e.Type)
}

// Supported reports whether documents of type typ can be checked.
func Supported(typ string) bool {
	_, ok := schemaFor(typ)
	return ok
}

// Types returns the supported @type values in lexical order.
func Types() []string {
	seen := map[string]bool{"Attorney": true}
	for typ := range schemaFiles {
		seen[typ] = true
	}
	for _, cat := range schemaorg.BusinessCategories() {
		seen[schemaorg.BusinessType(cat)] = true
	}
	types := make([]string, 0, len(seen))
	for typ := range seen {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

func schemaFor(typ string) (string, bool) {
	if name, ok := schemaFiles[typ]; ok {
		return name, true
	}
	if typ == "Attorney" || schemaorg.IsBusinessType(typ) {
		return localBusinessSchema, true
	}
	return "", false
}

func loadSchemas() (map[string]*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		entries, err := schemaFS.ReadDir("schemas")
		if err != nil {
			compileErr = err
			return
		}
		out := make(map[string]*gojsonschema.Schema, len(entries))
		for _, e := range entries {
			b, err := schemaFS.ReadFile("schemas/" + e.Name())
			if err != nil {
				compileErr = err
				return
			}
			s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(b))
			if err != nil {
				compileErr = fmt.Errorf("conformance: compile %s: %w", e.Name(), err)
				return
			}
			out[e.Name()] = s
		}
		compiled = out
	})
	return compiled, compileErr
}

// Check validates a single JSON-LD document against the schema for its @type.
func Check(doc []byte) error {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return fmt.Errorf("conformance: decode document: %w", err)
	}
	typ, _ := m["@type"].(string)
	name, ok := schemaFor(typ)
	if !ok {
		return &UnsupportedTypeError{Type: typ}
	}

	schemas, err := loadSchemas()
	if err != nil {
		return err
	}
	result, err := schemas[name].Validate(gojsonschema.NewGoLoader(m))
	if err != nil {
		return fmt.Errorf("conformance: validate %s: %w", typ, err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		problems[i] = desc.String()
	}
	sort.Strings(problems)
	return &Error{Type: typ, Problems: problems}
}

// CheckScript extracts every JSON-LD script element from html and checks
// each one with CheckBlocks.
func CheckScript(html string) error {
	blocks, err := jsonld.Extract(html)
	if err != nil {
		return err
	}
	return CheckBlocks(blocks)
}

// CheckBlocks checks already extracted JSON-LD documents. Failures are
// joined, each prefixed with its index in blocks.
func CheckBlocks(blocks [][]byte) error {
	var errs []error
	for i, b := range blocks {
		if err := Check(b); err != nil {
			errs = append(errs, fmt.Errorf("block %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
