package schemaorg

import (
	"encoding/json"
)

// UnknownFields is embedded in every input record to keep JSON keys the
// record does not model. Typos in hand-written record files ("phon",
// "sameas") land here instead of vanishing; Validate reports them when
// WithRejectUnknownFields is set.
type UnknownFields struct {
	// Unknown is populated by UnmarshalJSON.
	Unknown map[string]json.RawMessage `json:"-"`
}

// Pre-computed known key sets for unknown-field capture.
var (
	knownAddressSet = knownSet(
		"street", "city", "state", "zip", "country",
	)
	knownGeoSet = knownSet(
		"lat", "lng",
	)
	knownBusinessSet = knownSet(
		"name", "description", "url", "phone", "email",
		"address", "geo", "hours",
		"logo", "image", "priceRange", "sameAs", "businessType",
	)
	knownAttorneySet = knownSet(
		"name", "description", "url", "phone", "email",
		"address", "geo", "hours",
		"logo", "image", "priceRange", "sameAs", "businessType",
		"practiceAreas",
	)
	knownOrganizationSet = knownSet(
		"name", "url", "logo", "description", "sameAs",
	)
	knownWebSiteSet = knownSet(
		"name", "url", "searchUrl",
	)
	knownBreadcrumbItemSet = knownSet(
		"name", "url",
	)
	knownFAQItemSet = knownSet(
		"question", "answer",
	)
	knownServiceSet = knownSet(
		"name", "description", "provider", "areaServed", "image",
	)
)

// Address is a postal address. Country defaults to the renderer's default
// country when empty.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country,omitempty"`

	UnknownFields
}

// Wire types share the record layout but drop UnmarshalJSON, so decoding
// into them does not recurse.
type addressWire Address

func (a *Address) UnmarshalJSON(b []byte) error {
	raw, err := decodeRaw(b)
	if err != nil {
		return err
	}
	var w addressWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*a = Address(w)
	a.Unknown = splitUnknown(raw, knownAddressSet)
	return nil
}

// GeoCoordinates is a latitude/longitude pair in decimal degrees.
type GeoCoordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	UnknownFields
}

type geoWire GeoCoordinates

func (g *GeoCoordinates) UnmarshalJSON(b []byte) error {
	raw, err := decodeRaw(b)
	if err != nil {
		return err
	}
	var w geoWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*g = GeoCoordinates(w)
	g.Unknown = splitUnknown(raw, knownGeoSet)
	return nil
}

// Hours maps a weekday name to an hours range such as "9:00 AM - 5:00 PM",
// or to "Closed".
type Hours map[string]string

// Business is the input for a LocalBusiness document.
type Business struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	URL         string          `json:"url"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Address     Address         `json:"address"`
	Geo         *GeoCoordinates `json:"geo"`

	Hours      Hours    `json:"hours,omitempty"`
	Logo       string   `json:"logo,omitempty"`
	Image      string   `json:"image,omitempty"`
	PriceRange string   `json:"priceRange,omitempty"`
	SameAs     []string `json:"sameAs,omitempty"`

	// BusinessType is a category key such as "restaurant"; see BusinessType.
	BusinessType string `json:"businessType,omitempty"`

	UnknownFields
}

type businessWire Business

func (bz *Business) UnmarshalJSON(b []byte) error {
	raw, err := decodeRaw(b)
	if err != nil {
		return err
	}
	var w businessWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*bz = Business(w)
	bz.Unknown = splitUnknown(raw, knownBusinessSet)
	return nil
}

// Attorney is the input for an Attorney document. BusinessType is ignored.
type Attorney struct {
	Business

	// PracticeAreas are rendered as knowsAbout.
	PracticeAreas []string `json:"practiceAreas,omitempty"`
}

type attorneyWire struct {
	businessWire
	PracticeAreas []string `json:"practiceAreas,omitempty"`
}

func (a *Attorney) UnmarshalJSON(b []byte) error {
	raw, err := decodeRaw(b)
	if err != nil {
		return err
	}
	var w attorneyWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*a = Attorney{
		Business:      Business(w.businessWire),
		PracticeAreas: w.PracticeAreas,
	}
	a.Unknown = splitUnknown(raw, knownAttorneySet)
	return nil
}

// Organization is the input for an Organization document.
type Organization struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Logo        string   `json:"logo"`
	Description string   `json:"description,omitempty"`
	SameAs      []string `json:"sameAs,omitempty"`

	UnknownFields
}

type organizationWire Organization

func (o *Organization) UnmarshalJSON(b []byte) error {
	raw, err := decodeRaw(b)
	if err != nil {
		return err
	}
	var w organizationWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*o = Organization(w)
	o.Unknown = splitUnknown(raw, knownOrganizationSet)
	return nil
}

// WebSite is the input for a WebSite document.
type WebSite struct {
	Name string `json:"name"`
	URL  string `json:"url"`

	// SearchURL, when set, adds a SearchAction targeting
	// SearchURL + "?q={search_term_string}".
	SearchURL string `json:"searchUrl,omitempty"`

	UnknownFields
}

type webSiteWire WebSite

func (s *WebSite) UnmarshalJSON(b []byte) error {
	raw, err := decodeRaw(b)
	if err != nil {
		return err
	}
	var w webSiteWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*s = WebSite(w)
	s.Unknown = splitUnknown(raw, knownWebSiteSet)
	return nil
}

// BreadcrumbItem is one entry of a breadcrumb trail.
type BreadcrumbItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`

	UnknownFields
}

type breadcrumbItemWire BreadcrumbItem

func (it *BreadcrumbItem) UnmarshalJSON(b []byte) error {
	raw, err := decodeRaw(b)
	if err != nil {
		return err
	}
	var w breadcrumbItemWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*it = BreadcrumbItem(w)
	it.Unknown = splitUnknown(raw, knownBreadcrumbItemSet)
	return nil
}

// BreadcrumbList is an ordered breadcrumb trail, first item outermost.
type BreadcrumbList []BreadcrumbItem

// FAQItem is a question with its answer.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`

	UnknownFields
}

type faqItemWire FAQItem

func (it *FAQItem) UnmarshalJSON(b []byte) error {
	raw, err := decodeRaw(b)
	if err != nil {
		return err
	}
	var w faqItemWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*it = FAQItem(w)
	it.Unknown = splitUnknown(raw, knownFAQItemSet)
	return nil
}

// FAQ is the ordered list of questions on an FAQ page.
type FAQ []FAQItem

// Service is the input for a Service document.
type Service struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Provider is the name of the business offering the service.
	Provider string `json:"provider"`

	AreaServed string `json:"areaServed,omitempty"`
	Image      string `json:"image,omitempty"`

	UnknownFields
}

type serviceWire Service

func (s *Service) UnmarshalJSON(b []byte) error {
	raw, err := decodeRaw(b)
	if err != nil {
		return err
	}
	var w serviceWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*s = Service(w)
	s.Unknown = splitUnknown(raw, knownServiceSet)
	return nil
}
