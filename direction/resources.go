package direction

import "sort"

// Resources is a set of resource identifiers contributing an assertion.
type Resources map[string]struct{}

// NewResources builds a resource set from names. Empty names are skipped.
func NewResources(names ...string) Resources {
	r := make(Resources, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		r[n] = struct{}{}
	}
	return r
}

// Has reports whether the set contains the resource.
func (r Resources) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Len returns the number of resources in the set.
func (r Resources) Len() int { return len(r) }

// Add inserts the resource names into the set.
func (r Resources) Add(names ...string) {
	for _, n := range names {
		if n != "" {
			r[n] = struct{}{}
		}
	}
}

// Union adds every resource of o into the set.
func (r Resources) Union(o Resources) {
	for n := range o {
		r[n] = struct{}{}
	}
}

// Intersects reports whether the two sets share at least one resource.
func (r Resources) Intersects(o Resources) bool {
	small, large := r, o
	if len(o) < len(r) {
		small, large = o, r
	}
	for n := range small {
		if _, ok := large[n]; ok {
			return true
		}
	}
	return false
}

// Contains reports whether every resource of o is in the set.
func (r Resources) Contains(o Resources) bool {
	for n := range o {
		if _, ok := r[n]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold exactly the same resources.
func (r Resources) Equal(o Resources) bool {
	return len(r) == len(o) && r.Contains(o)
}

// Clone returns an independent copy of the set.
func (r Resources) Clone() Resources {
	out := make(Resources, len(r))
	for n := range r {
		out[n] = struct{}{}
	}
	return out
}

// Sorted returns the resource names in lexical order.
func (r Resources) Sorted() []string {
	out := make([]string, 0, len(r))
	for n := range r {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
