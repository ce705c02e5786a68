package core

import (
	"strings"

	"github.com/kanade13/deltaforce/schema"
)

// Binding is one (request, canonical name) pair produced by the resolver.
type Binding struct {
	Request string
	Name    string
}

// CatalogResolver resolves user-requested item names against the catalog
// names observed during the walk. Exact mode requires case-sensitive string
// equality and binds at most one name per request; fuzzy mode binds every
// observed name that contains the request as a case-insensitive substring.
//
// Resolution is incremental: names observed in later snapshots are evaluated
// against all requests, but a name already bound to a request is never
// re-resolved.
type CatalogResolver struct {
	fuzzy    bool
	requests []string
	lowered  []string            // lowercase requests, aligned with requests (fuzzy mode)
	bound    map[string][]string // request -> canonical names, in observation order
	seen     map[string]struct{} // observed names already evaluated
}

// NewCatalogResolver creates a resolver for the given requests.
func NewCatalogResolver(requests []string, fuzzy bool) *CatalogResolver {
	r := &CatalogResolver{
		fuzzy:    fuzzy,
		requests: requests,
		bound:    make(map[string][]string, len(requests)),
		seen:     make(map[string]struct{}),
	}
	if fuzzy {
		r.lowered = make([]string, len(requests))
		for i, req := range requests {
			r.lowered[i] = strings.ToLower(req)
		}
	}
	return r
}

// Observe evaluates one newly observed catalog name and returns the bindings
// it creates. Names seen before return nil immediately.
func (r *CatalogResolver) Observe(name string) []Binding {
	if _, ok := r.seen[name]; ok {
		return nil
	}
	r.seen[name] = struct{}{}

	var bindings []Binding
	loweredName := ""
	if r.fuzzy {
		loweredName = strings.ToLower(name)
	}
	for i, req := range r.requests {
		if r.fuzzy {
			if strings.Contains(loweredName, r.lowered[i]) {
				r.bound[req] = append(r.bound[req], name)
				bindings = append(bindings, Binding{Request: req, Name: name})
			}
			continue
		}
		// Exact mode binds at most one canonical name per request.
		if name == req && len(r.bound[req]) == 0 {
			r.bound[req] = append(r.bound[req], name)
			bindings = append(bindings, Binding{Request: req, Name: name})
		}
	}
	return bindings
}

// Resolved returns the binding state for every request, in request order.
func (r *CatalogResolver) Resolved() []schema.ResolvedItem {
	items := make([]schema.ResolvedItem, 0, len(r.requests))
	for _, req := range r.requests {
		items = append(items, schema.ResolvedItem{Request: req, Matches: r.bound[req]})
	}
	return items
}

// Unresolved returns the requests that matched nothing, in request order.
func (r *CatalogResolver) Unresolved() []string {
	var missing []string
	for _, req := range r.requests {
		if len(r.bound[req]) == 0 {
			missing = append(missing, req)
		}
	}
	return missing
}

// Ambiguous returns the requests that bound more than one canonical name.
// All of the matches are processed; this is informational only.
func (r *CatalogResolver) Ambiguous() map[string][]string {
	ambiguous := make(map[string][]string)
	for _, req := range r.requests {
		if matches := r.bound[req]; len(matches) > 1 {
			ambiguous[req] = matches
		}
	}
	if len(ambiguous) == 0 {
		return nil
	}
	return ambiguous
}
