// Package query provides the shared query-parameter envelope used when
// listing transaction resources.
//
// Params collects the filters every listing endpoint accepts. Validate
// enforces the paging bounds and the related-transaction URI format, and
// ToMap renders the set fields as a flat, JSON-safe map ready for a query
// string, with dates and enums already in wire form:
//
//	p := query.Params{
//	    PageSize:     50,
//	    Status:       enums.TransactionSucceeded,
//	    CreatedAfter: since,
//	}
//	if err := p.Validate(); err != nil { ... }
//	values, err := p.ToMap()
package query
