package method

import (
	"strings"

	"go.uber.org/zap"
)

// Field names a Query field set by a legacy keyword rule.
type Field int

const (
	FieldSplit Field = iota
	FieldAlgo
	FieldImpl
)

// LegacyRule maps a substring of a legacy method name to a field value.
type LegacyRule struct {
	Substr string
	Field  Field
	Value  string
}

// LegacyRules are applied in order; the first rule matching a field wins,
// so "lut_csr" infers algo "lut" and "nosplit_full" infers split "full".
var LegacyRules = []LegacyRule{
	{Substr: "lut", Field: FieldAlgo, Value: "lut"},
	{Substr: "csr", Field: FieldAlgo, Value: "csr"},
	{Substr: "ocl", Field: FieldImpl, Value: "opencl"},
	{Substr: "bbox", Field: FieldSplit, Value: "bbox"},
	{Substr: "full", Field: FieldSplit, Value: "full"},
	{Substr: "no", Field: FieldSplit, Value: "no"},
}

// InferLegacy derives a Query from a legacy method name using LegacyRules.
// ok is false when no rule matched.
func InferLegacy(dim int, name string) (q Query, ok bool) {
	q = Query{Dim: dim, Split: Wildcard, Algo: Wildcard, Impl: Wildcard}
	name = strings.ToLower(name)
	for _, rule := range LegacyRules {
		if !strings.Contains(name, rule.Substr) {
			continue
		}
		var dst *string
		switch rule.Field {
		case FieldSplit:
			dst = &q.Split
		case FieldAlgo:
			dst = &q.Algo
		case FieldImpl:
			dst = &q.Impl
		}
		if *dst == Wildcard {
			*dst = rule.Value
			ok = true
		}
	}
	return q, ok
}

// SelectLegacy resolves a pre-structured method name such as "csr_ocl".
//
// Descriptors registered with that exact legacy name for dim win. Otherwise
// the name is translated by InferLegacy and passed to Select. A name that
// matches no rule selects nothing unless WithLegacyFallthrough is enabled.
func (r *Registry) SelectLegacy(dim int, name string) []*Descriptor {
	result := r.selectLegacy(dim, name)
	r.observe(OpLegacy, len(result))
	return result
}

func (r *Registry) selectLegacy(dim int, name string) []*Descriptor {
	var result []*Descriptor
	for _, d := range r.All() {
		if name != "" && d.Dim == dim && d.Legacy == name {
			result = append(result, d)
		}
	}
	if len(result) > 0 {
		return result
	}

	q, ok := InferLegacy(dim, name)
	if !ok {
		r.logger.Warn("legacy method name matches no keyword",
			zap.String("name", name),
			zap.Int("dim", dim),
			zap.Bool("fallthrough", r.legacyFallthrough),
		)
		if !r.legacyFallthrough {
			return nil
		}
	}
	return r.selectMethods(q)
}
