// Package catalog maps interaction resources to their curation categories.
//
// A Catalog is an immutable value constructed once at process start — from
// the built-in default table or a YAML file — and injected into every
// component needing category lookups. There is no package-global table: two
// engines in one process can run with different catalogs.
//
//	cat, err := catalog.Load("resources.yaml")
//	if err != nil {
//	    // fall back to the defaults
//	    cat = catalog.Default()
//	}
//
// The YAML format is a single mapping of resource names to category names:
//
//	categories:
//	  SIGNOR: activity_flow
//	  BioGRID: undirected_ppi
package catalog
