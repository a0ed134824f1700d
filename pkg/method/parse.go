package method

import (
	"strconv"
	"strings"
)

// Parse resolves v to a single descriptor.
//
// v may be a *Descriptor (returned as is), a Descriptor or Key (resolved to
// the registered descriptor with that key), or a string. Strings with at
// most one comma are legacy names; longer ones are "split,algo,impl" or
// "dim,split,algo,impl". The first match wins.
func (r *Registry) Parse(v any, dim int) (*Descriptor, bool) {
	var result []*Descriptor
	switch t := v.(type) {
	case *Descriptor:
		if t != nil {
			return t, true
		}
	case Descriptor:
		if d, ok := r.Lookup(Key{Dim: t.Dim, Split: t.Split, Algo: t.Algo, Impl: t.Impl, Target: t.Target}); ok {
			result = []*Descriptor{d}
		}
	case Key:
		if d, ok := r.Lookup(t); ok {
			result = []*Descriptor{d}
		}
	case string:
		if strings.Count(t, ",") <= 1 {
			result = r.selectLegacy(dim, t)
		} else if q, ok := parseQuery(t, dim); ok {
			result = r.selectMethods(q)
		}
	}
	r.observe(OpParse, len(result))
	if len(result) == 0 {
		return nil, false
	}
	return result[0], true
}

// parseQuery reads "split,algo,impl" or "dim,split,algo,impl".
func parseQuery(s string, dim int) (Query, bool) {
	fields := strings.Split(s, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	switch len(fields) {
	case 3:
	case 4:
		d, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(fields[0]), "d"))
		if err != nil {
			return Query{}, false
		}
		dim = d
		fields = fields[1:]
	default:
		return Query{}, false
	}
	return Query{Dim: dim, Split: fields[0], Algo: fields[1], Impl: fields[2]}, true
}
