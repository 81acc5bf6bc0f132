package schemaorg

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

type validateOptions struct {
	rejectUnknownFields bool
	strictHours         bool
}

// ValidateOption configures record validation.
type ValidateOption func(*validateOptions)

// WithRejectUnknownFields treats unrecognised input keys as errors.
// By default they are ignored.
func WithRejectUnknownFields() ValidateOption {
	return func(o *validateOptions) { o.rejectUnknownFields = true }
}

// WithStrictHours treats hours entries that cannot be parsed as errors.
// By default such entries are dropped from the output.
func WithStrictHours() ValidateOption {
	return func(o *validateOptions) { o.strictHours = true }
}

func newValidateOptions(opts []ValidateOption) validateOptions {
	var o validateOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ValidationError is a deterministic, multi-problem validation error.
type ValidationError struct {
	// Record names the kind of record that failed, e.g. "business".
	Record   string
	Problems []string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "invalid record"
	}
	name := e.Record
	if name == "" {
		name = "record"
	}
	if len(e.Problems) == 0 {
		return "invalid " + name
	}
	return "invalid " + name + ": " + strings.Join(e.Problems, "; ")
}

func validationResult(record string, errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Record: record, Problems: errs}
}

// Validate checks that every required field is present.
func (b Business) Validate(opts ...ValidateOption) error {
	o := newValidateOptions(opts)
	var errs []string
	b.appendProblems(&errs, o)
	return validationResult("business", errs)
}

func (b Business) appendProblems(errs *[]string, o validateOptions) {
	requireString(errs, "name", b.Name)
	requireString(errs, "description", b.Description)
	requireString(errs, "url", b.URL)
	requireString(errs, "phone", b.Phone)
	requireString(errs, "email", b.Email)
	b.Address.appendProblems(errs, "address", o)

	if b.Geo == nil {
		*errs = append(*errs, "geo: required")
	} else {
		b.Geo.appendProblems(errs, "geo", o)
	}

	appendListProblems(errs, "sameAs", b.SameAs)

	if o.strictHours {
		_, dropped := openingHours(b.Hours)
		for _, d := range dropped {
			*errs = append(*errs, d.Error())
		}
	}
	if o.rejectUnknownFields {
		appendUnknownFieldProblems(errs, "", b.Unknown)
	}
}

func (a Address) appendProblems(errs *[]string, prefix string, o validateOptions) {
	requireString(errs, prefix+".street", a.Street)
	requireString(errs, prefix+".city", a.City)
	requireString(errs, prefix+".state", a.State)
	requireString(errs, prefix+".zip", a.Zip)
	if o.rejectUnknownFields {
		appendUnknownFieldProblems(errs, prefix, a.Unknown)
	}
}

func (g GeoCoordinates) appendProblems(errs *[]string, prefix string, o validateOptions) {
	if math.IsNaN(g.Lat) || g.Lat < -90 || g.Lat > 90 {
		*errs = append(*errs, fmt.Sprintf("%s.lat: must be within [-90, 90] (got %v)", prefix, g.Lat))
	}
	if math.IsNaN(g.Lng) || g.Lng < -180 || g.Lng > 180 {
		*errs = append(*errs, fmt.Sprintf("%s.lng: must be within [-180, 180] (got %v)", prefix, g.Lng))
	}
	if o.rejectUnknownFields {
		appendUnknownFieldProblems(errs, prefix, g.Unknown)
	}
}

// Validate checks that every required field is present.
func (a Attorney) Validate(opts ...ValidateOption) error {
	o := newValidateOptions(opts)
	var errs []string
	a.Business.appendProblems(&errs, o)
	appendListProblems(&errs, "practiceAreas", a.PracticeAreas)
	return validationResult("attorney", errs)
}

// Validate checks that every required field is present.
func (org Organization) Validate(opts ...ValidateOption) error {
	o := newValidateOptions(opts)
	var errs []string
	requireString(&errs, "name", org.Name)
	requireString(&errs, "url", org.URL)
	requireString(&errs, "logo", org.Logo)
	appendListProblems(&errs, "sameAs", org.SameAs)
	if o.rejectUnknownFields {
		appendUnknownFieldProblems(&errs, "", org.Unknown)
	}
	return validationResult("organization", errs)
}

// Validate checks that every required field is present.
func (s WebSite) Validate(opts ...ValidateOption) error {
	o := newValidateOptions(opts)
	var errs []string
	requireString(&errs, "name", s.Name)
	requireString(&errs, "url", s.URL)
	if s.SearchURL != "" && strings.TrimSpace(s.SearchURL) == "" {
		errs = append(errs, "searchUrl: must not be blank")
	}
	if o.rejectUnknownFields {
		appendUnknownFieldProblems(&errs, "", s.Unknown)
	}
	return validationResult("website", errs)
}

// Validate checks that the trail is non-empty and every item is complete.
func (l BreadcrumbList) Validate(opts ...ValidateOption) error {
	o := newValidateOptions(opts)
	var errs []string
	if len(l) == 0 {
		errs = append(errs, "at least one item required")
	}
	for i, it := range l {
		prefix := fmt.Sprintf("[%d]", i)
		requireString(&errs, prefix+".name", it.Name)
		requireString(&errs, prefix+".url", it.URL)
		if o.rejectUnknownFields {
			appendUnknownFieldProblems(&errs, prefix, it.Unknown)
		}
	}
	return validationResult("breadcrumbs", errs)
}

// Validate checks that the list is non-empty and every item is complete.
func (f FAQ) Validate(opts ...ValidateOption) error {
	o := newValidateOptions(opts)
	var errs []string
	if len(f) == 0 {
		errs = append(errs, "at least one item required")
	}
	for i, it := range f {
		prefix := fmt.Sprintf("[%d]", i)
		requireString(&errs, prefix+".question", it.Question)
		requireString(&errs, prefix+".answer", it.Answer)
		if o.rejectUnknownFields {
			appendUnknownFieldProblems(&errs, prefix, it.Unknown)
		}
	}
	return validationResult("faq", errs)
}

// Validate checks that every required field is present.
func (s Service) Validate(opts ...ValidateOption) error {
	o := newValidateOptions(opts)
	var errs []string
	requireString(&errs, "name", s.Name)
	requireString(&errs, "description", s.Description)
	requireString(&errs, "provider", s.Provider)
	if o.rejectUnknownFields {
		appendUnknownFieldProblems(&errs, "", s.Unknown)
	}
	return validationResult("service", errs)
}

func requireString(errs *[]string, field, v string) {
	if strings.TrimSpace(v) == "" {
		*errs = append(*errs, field+": required")
	}
}

func appendListProblems(errs *[]string, field string, vs []string) {
	for i, v := range vs {
		if strings.TrimSpace(v) == "" {
			*errs = append(*errs, fmt.Sprintf("%s[%d]: must be non-empty", field, i))
		}
	}
}

func appendUnknownFieldProblems(errs *[]string, prefix string, unknown map[string]json.RawMessage) {
	if len(unknown) == 0 {
		return
	}
	keys := make([]string, 0, len(unknown))
	for k := range unknown {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if prefix == "" {
		*errs = append(*errs, fmt.Sprintf("unknown fields: %s", strings.Join(keys, ", ")))
		return
	}
	*errs = append(*errs, fmt.Sprintf("%s: unknown fields: %s", prefix, strings.Join(keys, ", ")))
}
