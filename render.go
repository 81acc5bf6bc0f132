package schemaorg

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/brochurekit/schemaorg-go/jsonld"
)

// DefaultCountry is the addressCountry used when an Address has no Country.
const DefaultCountry = "US"

// SearchTermParameter is the URI template appended to a WebSite search URL.
const SearchTermParameter = "?q={search_term_string}"

// Renderer converts records into JSON-LD script elements.
//
// A Renderer is immutable after NewRenderer returns and is safe for
// concurrent use.
type Renderer struct {
	logger         *zap.Logger
	defaultCountry string
	validate       []ValidateOption
}

// RenderOption configures a Renderer.
type RenderOption func(*Renderer)

// WithLogger sets the logger that receives debug events, such as hours
// entries dropped from the output. The default discards everything.
func WithLogger(l *zap.Logger) RenderOption {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithDefaultCountry sets the addressCountry for addresses without a Country.
func WithDefaultCountry(country string) RenderOption {
	return func(r *Renderer) {
		if country != "" {
			r.defaultCountry = country
		}
	}
}

// WithValidation applies opts every time a record is validated before rendering.
func WithValidation(opts ...ValidateOption) RenderOption {
	return func(r *Renderer) {
		r.validate = append(r.validate, opts...)
	}
}

// NewRenderer returns a Renderer configured by opts.
func NewRenderer(opts ...RenderOption) *Renderer {
	r := &Renderer{
		logger:         zap.NewNop(),
		defaultCountry: DefaultCountry,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

var defaultRenderer = NewRenderer()

// RenderLocalBusiness renders b as a LocalBusiness (or subtype) script element.
func RenderLocalBusiness(b Business) (string, error) { return defaultRenderer.LocalBusiness(b) }

// RenderAttorney renders a as an Attorney script element.
func RenderAttorney(a Attorney) (string, error) { return defaultRenderer.Attorney(a) }

// RenderOrganization renders org as an Organization script element.
func RenderOrganization(org Organization) (string, error) {
	return defaultRenderer.Organization(org)
}

// RenderWebSite renders s as a WebSite script element.
func RenderWebSite(s WebSite) (string, error) { return defaultRenderer.WebSite(s) }

// RenderBreadcrumbs renders items as a BreadcrumbList script element.
func RenderBreadcrumbs(items []BreadcrumbItem) (string, error) {
	return defaultRenderer.Breadcrumbs(items)
}

// RenderFAQ renders items as an FAQPage script element.
func RenderFAQ(items []FAQItem) (string, error) { return defaultRenderer.FAQ(items) }

// RenderService renders s as a Service script element.
func RenderService(s Service) (string, error) { return defaultRenderer.Service(s) }

// LocalBusiness renders b as a script element.
func (r *Renderer) LocalBusiness(b Business) (string, error) {
	return r.script(r.LocalBusinessDocument(b))
}

// LocalBusinessDocument validates b and builds its document. The @type is
// BusinessType(b.BusinessType).
func (r *Renderer) LocalBusinessDocument(b Business) (*jsonld.Object, error) {
	if err := b.Validate(r.validate...); err != nil {
		return nil, err
	}
	doc := jsonld.NewDocument(BusinessType(b.BusinessType))
	r.setBusinessCore(doc, b)
	r.setOpeningHours(doc, b.Name, b.Hours)
	doc.SetString("logo", b.Logo)
	doc.SetString("image", b.Image)
	doc.SetString("priceRange", b.PriceRange)
	doc.SetStrings("sameAs", b.SameAs)
	return doc, nil
}

// Attorney renders a as a script element.
func (r *Renderer) Attorney(a Attorney) (string, error) {
	return r.script(r.AttorneyDocument(a))
}

// AttorneyDocument validates a and builds its document. Practice areas
// become knowsAbout.
func (r *Renderer) AttorneyDocument(a Attorney) (*jsonld.Object, error) {
	if err := a.Validate(r.validate...); err != nil {
		return nil, err
	}
	doc := jsonld.NewDocument("Attorney")
	r.setBusinessCore(doc, a.Business)
	doc.SetStrings("knowsAbout", a.PracticeAreas)
	r.setOpeningHours(doc, a.Name, a.Hours)
	doc.SetString("logo", a.Logo)
	doc.SetString("image", a.Image)
	doc.SetString("priceRange", a.PriceRange)
	doc.SetStrings("sameAs", a.SameAs)
	return doc, nil
}

// Organization renders org as a script element.
func (r *Renderer) Organization(org Organization) (string, error) {
	return r.script(r.OrganizationDocument(org))
}

// OrganizationDocument validates org and builds its document.
func (r *Renderer) OrganizationDocument(org Organization) (*jsonld.Object, error) {
	if err := org.Validate(r.validate...); err != nil {
		return nil, err
	}
	doc := jsonld.NewDocument("Organization")
	doc.Set("name", org.Name)
	doc.Set("url", org.URL)
	doc.Set("logo", org.Logo)
	doc.SetString("description", org.Description)
	doc.SetStrings("sameAs", org.SameAs)
	return doc, nil
}

// WebSite renders s as a script element.
func (r *Renderer) WebSite(s WebSite) (string, error) {
	return r.script(r.WebSiteDocument(s))
}

// WebSiteDocument validates s and builds its document, with a SearchAction
// when s.SearchURL is set.
func (r *Renderer) WebSiteDocument(s WebSite) (*jsonld.Object, error) {
	if err := s.Validate(r.validate...); err != nil {
		return nil, err
	}
	doc := jsonld.NewDocument("WebSite")
	doc.Set("name", s.Name)
	doc.Set("url", s.URL)
	if s.SearchURL != "" {
		action := jsonld.NewNode("SearchAction")
		action.Set("target", s.SearchURL+SearchTermParameter)
		action.Set("query-input", "required name=search_term_string")
		doc.Set("potentialAction", action)
	}
	return doc, nil
}

// Breadcrumbs renders items as a script element.
func (r *Renderer) Breadcrumbs(items []BreadcrumbItem) (string, error) {
	return r.script(r.BreadcrumbsDocument(items))
}

// BreadcrumbsDocument validates items and builds a BreadcrumbList whose
// positions count from 1 in input order.
func (r *Renderer) BreadcrumbsDocument(items []BreadcrumbItem) (*jsonld.Object, error) {
	if err := BreadcrumbList(items).Validate(r.validate...); err != nil {
		return nil, err
	}
	list := make([]*jsonld.Object, len(items))
	for i, it := range items {
		n := jsonld.NewNode("ListItem")
		n.Set("position", i+1)
		n.Set("name", it.Name)
		n.Set("item", it.URL)
		list[i] = n
	}
	doc := jsonld.NewDocument("BreadcrumbList")
	doc.Set("itemListElement", list)
	return doc, nil
}

// FAQ renders items as a script element.
func (r *Renderer) FAQ(items []FAQItem) (string, error) {
	return r.script(r.FAQDocument(items))
}

// FAQDocument validates items and builds an FAQPage.
func (r *Renderer) FAQDocument(items []FAQItem) (*jsonld.Object, error) {
	if err := FAQ(items).Validate(r.validate...); err != nil {
		return nil, err
	}
	entities := make([]*jsonld.Object, len(items))
	for i, it := range items {
		answer := jsonld.NewNode("Answer")
		answer.Set("text", it.Answer)
		q := jsonld.NewNode("Question")
		q.Set("name", it.Question)
		q.Set("acceptedAnswer", answer)
		entities[i] = q
	}
	doc := jsonld.NewDocument("FAQPage")
	doc.Set("mainEntity", entities)
	return doc, nil
}

// Service renders s as a script element.
func (r *Renderer) Service(s Service) (string, error) {
	return r.script(r.ServiceDocument(s))
}

// ServiceDocument validates s and builds its document.
func (r *Renderer) ServiceDocument(s Service) (*jsonld.Object, error) {
	if err := s.Validate(r.validate...); err != nil {
		return nil, err
	}
	provider := jsonld.NewNode(DefaultBusinessType)
	provider.Set("name", s.Provider)

	doc := jsonld.NewDocument("Service")
	doc.Set("name", s.Name)
	doc.Set("description", s.Description)
	doc.Set("provider", provider)
	doc.SetString("areaServed", s.AreaServed)
	doc.SetString("image", s.Image)
	return doc, nil
}

func (r *Renderer) setBusinessCore(doc *jsonld.Object, b Business) {
	country := b.Address.Country
	if country == "" {
		country = r.defaultCountry
	}
	addr := jsonld.NewNode("PostalAddress")
	addr.Set("streetAddress", b.Address.Street)
	addr.Set("addressLocality", b.Address.City)
	addr.Set("addressRegion", b.Address.State)
	addr.Set("postalCode", b.Address.Zip)
	addr.Set("addressCountry", country)

	geo := jsonld.NewNode("GeoCoordinates")
	geo.Set("latitude", b.Geo.Lat)
	geo.Set("longitude", b.Geo.Lng)

	doc.Set("name", b.Name)
	doc.Set("description", b.Description)
	doc.Set("url", b.URL)
	doc.Set("telephone", b.Phone)
	doc.Set("email", b.Email)
	doc.Set("address", addr)
	doc.Set("geo", geo)
}

func (r *Renderer) setOpeningHours(doc *jsonld.Object, record string, h Hours) {
	if len(h) == 0 {
		return
	}
	specs, dropped := openingHours(h)
	for _, d := range dropped {
		r.logger.Debug("dropping unparseable opening hours",
			zap.String("record", record),
			zap.String("day", d.Day),
			zap.String("hours", d.Value),
			zap.Error(d.Err),
		)
	}
	if len(specs) == 0 {
		return
	}
	nodes := make([]*jsonld.Object, len(specs))
	for i, s := range specs {
		nodes[i] = s.Node()
	}
	doc.Set("openingHoursSpecification", nodes)
}

func (r *Renderer) script(doc *jsonld.Object, err error) (string, error) {
	if err != nil {
		return "", err
	}
	out, err := jsonld.Script(doc)
	if err != nil {
		typ, _ := doc.Get("@type")
		return "", fmt.Errorf("schemaorg: encode %v: %w", typ, err)
	}
	return out, nil
}
