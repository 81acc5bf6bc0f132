// Package conformance checks rendered JSON-LD documents against embedded
// JSON Schemas, one per supported Schema.org type.
//
// Every LocalBusiness subtype known to schemaorg.BusinessType, plus Attorney,
// is checked against the same LocalBusiness schema. Schemas compile once on
// first use; all functions are safe for concurrent use.
package conformance
