// Package curp parses CURP identifiers (the 18-character Mexican national
// ID) and derives the birth date encoded in them.
//
//	c, err := curp.Parse("ABCD920313HDFRRN09")
//	if err != nil {
//	    // not a CURP
//	}
//	born, err := c.BirthDate(time.Now())
//
// Characters five through ten encode the birth date as YYMMDD. The century
// is disambiguated against a caller-supplied reference date: an encoded year
// greater than the reference's two-digit year resolves to 19xx, otherwise
// 20xx. The heuristic carries an unavoidable 100-year ambiguity and is only
// sound for identifiers of living or recently-living persons; it is a
// convenience for age checks, not a unique resolution of the holder.
//
// Every function takes the reference date explicitly so behavior is
// deterministic and tests never depend on the wall clock. Callers that want
// "now" pass time.Now().
package curp
