// Package query selects edges from the store with compiled CEL expressions,
// providing the read-only surface downstream exporters filter through.
//
// An expression sees one edge at a time through these variables:
//
//	id_a, id_b   string        endpoint identifiers (canonical order)
//	type         string        interaction type
//	directed     bool          whether any directed assertion exists
//	mutual       bool          whether both directions are asserted
//	resources    list(string)  all resources contributing to the edge
//	taxon_a      int           taxon of the first endpoint
//	taxon_b      int           taxon of the second endpoint
//	attrs        map           the edge attribute map
//
// Expressions must evaluate to a boolean:
//
//	f, err := query.Compile(`"SIGNOR" in resources && directed`)
//	edges, err := f.Select(store)
package query
