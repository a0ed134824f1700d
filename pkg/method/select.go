package method

import (
	"strings"
)

// Wildcard matches any value of a Query field. An empty field does too.
const Wildcard = "*"

// Query is a partial method specification.
type Query struct {
	Dim   int
	Split string
	Algo  string
	Impl  string
	// Exact, when set, is looked up first and returned alone if registered.
	Exact *Key
}

func normField(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Wildcard
	}
	return s
}

// Select returns all descriptors matching q, in registration order.
//
// If q.Exact is registered, or all four fields are concrete and an
// untargeted descriptor with that key is registered, only that descriptor
// is returned. Otherwise descriptors of q.Dim are filtered by pixel
// splitting, then algorithm, then implementation.
func (r *Registry) Select(q Query) []*Descriptor {
	result := r.selectMethods(q)
	r.observe(OpSelect, len(result))
	return result
}

func (r *Registry) selectMethods(q Query) []*Descriptor {
	if q.Exact != nil {
		if d, ok := r.Lookup(*q.Exact); ok {
			return []*Descriptor{d}
		}
		q = Query{Dim: q.Exact.Dim, Split: q.Exact.Split, Algo: q.Exact.Algo, Impl: q.Exact.Impl}
	}

	split := normField(q.Split)
	algo := normField(q.Algo)
	impl := normField(q.Impl)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if d, ok := r.entries[Key{Dim: q.Dim, Split: split, Algo: algo, Impl: impl}]; ok {
		return []*Descriptor{d}
	}

	var candidates []Key
	for _, k := range r.order {
		if k.Dim == q.Dim {
			candidates = append(candidates, k)
		}
	}
	candidates = filterKeys(candidates, split, func(k Key) string { return k.Split })
	candidates = filterKeys(candidates, algo, func(k Key) string { return k.Algo })
	candidates = filterKeys(candidates, impl, func(k Key) string { return k.Impl })

	result := make([]*Descriptor, 0, len(candidates))
	for _, k := range candidates {
		result = append(result, r.entries[k])
	}
	return result
}

func filterKeys(keys []Key, want string, field func(Key) string) []Key {
	if want == Wildcard {
		return keys
	}
	kept := keys[:0:0]
	for _, k := range keys {
		if field(k) == want {
			kept = append(kept, k)
		}
	}
	return kept
}
