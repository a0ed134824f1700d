// Package method keeps a catalog of azimuthal integration methods and
// selects among them.
//
// Each integration backend registers one Descriptor per concrete method it
// provides. A Descriptor is identified by its Key: dimension, pixel splitting
// scheme, algorithm family, implementation backend and an optional compute
// Target. Callers then select methods by a partial specification:
//
//	reg := method.NewRegistry()
//	reg.Register(method.Descriptor{Dim: 1, Split: "full", Algo: "csr", Impl: "opencl"})
//	matches := reg.Select(method.Query{Dim: 1, Algo: "csr"})
//
// Lookups never fail: a query without matches yields an empty result.
package method
