// Package schemaorg renders Schema.org structured data as JSON-LD script
// elements for embedding in HTML pages.
//
// Each supported Schema.org type has a typed input record and a render
// function that returns a ready-to-embed <script type="application/ld+json">
// element containing indented JSON.
//
// # Quick Start
//
//	out, err := schemaorg.RenderLocalBusiness(schemaorg.Business{
//	    Name:         "Smith & Associates",
//	    Description:  "Family law firm.",
//	    URL:          "https://smithlaw.com",
//	    Phone:        "+1-206-555-1234",
//	    Email:        "info@smithlaw.com",
//	    Address:      schemaorg.Address{Street: "123 Main St", City: "Seattle", State: "WA", Zip: "98101"},
//	    Geo:          &schemaorg.GeoCoordinates{Lat: 47.6062, Lng: -122.3321},
//	    Hours:        schemaorg.Hours{"monday": "9:00 AM - 5:00 PM", "saturday": "Closed"},
//	    BusinessType: "attorney",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out)
//
// # Required and Optional Fields
//
// Records are validated before rendering. A missing required field fails
// the render with a *ValidationError listing every problem found. Optional
// fields that are empty are left out of the document entirely; they are
// never written as null, "" or [].
//
// Records decode from JSON with camelCase keys. Keys a record does not
// model are kept in UnknownFields and reported when validating with
// WithRejectUnknownFields.
//
// # Opening Hours
//
// Hours map weekday names to ranges such as "9:00 AM - 5:00 PM" or
// "09:00 - 17:00". Days marked "Closed" are skipped. Entries without a
// parseable range are dropped by default; WithStrictHours turns them into
// validation problems instead.
//
// # Concurrency
//
// Render functions keep no state between calls. A *Renderer is immutable
// once constructed, so a single value may be shared across goroutines.
//
// # Subpackages
//
//   - jsonld: ordered JSON-LD objects, script encoding and extraction
//   - timetoken: parse "H:MM [AM|PM]" time-of-day tokens
//   - conformance: check rendered documents against per-type JSON Schemas
package schemaorg
