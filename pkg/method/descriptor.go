package method

import (
	"fmt"
	"strconv"
	"strings"
)

// Target identifies a compute device by platform and device index.
// The zero value means "no specific device".
type Target struct {
	Platform int
	Device   int
	set      bool
}

// NewTarget returns a Target for the given platform and device indices.
func NewTarget(platform, device int) Target {
	return Target{Platform: platform, Device: device, set: true}
}

// IsSet reports whether t names a device.
func (t Target) IsSet() bool {
	return t.set
}

// String returns "(platform, device)", or "None" when no device is set.
func (t Target) String() string {
	if !t.set {
		return "None"
	}
	return "(" + strconv.Itoa(t.Platform) + ", " + strconv.Itoa(t.Device) + ")"
}

// Key uniquely identifies a registered Descriptor.
// String fields are always lowercase.
type Key struct {
	Dim    int
	Split  string
	Algo   string
	Impl   string
	Target Target
}

// NewKey builds a normalized Key without a target.
func NewKey(dim int, split, algo, impl string) Key {
	return Key{
		Dim:   dim,
		Split: strings.ToLower(split),
		Algo:  strings.ToLower(algo),
		Impl:  strings.ToLower(impl),
	}
}

// WithTarget returns a copy of k bound to target t.
func (k Key) WithTarget(t Target) Key {
	k.Target = t
	return k
}

func (k Key) String() string {
	s := fmt.Sprintf("%dd/%s/%s/%s", k.Dim, k.Split, k.Algo, k.Impl)
	if k.Target.IsSet() {
		s += "@" + k.Target.String()
	}
	return s
}

// Descriptor describes one concrete integration method.
//
// Split, Algo and Impl keep the case they were registered with; matching
// is done on the lowercased Key.
type Descriptor struct {
	Dim        int
	Split      string
	Algo       string
	Impl       string
	Target     Target
	TargetName string
	// Legacy is the single-string method name used before structured keys.
	Legacy string
	// Handler is owned by the registering backend and never invoked here.
	Handler any
	Extra   map[string]any

	key Key
}

// Key returns the lookup key of d.
func (d *Descriptor) Key() Key {
	return d.key
}

// String renders d the way list output shows it, e.g.
// "1d int, full split, csr, opencl, GeForce GTX 1080".
func (d *Descriptor) String() string {
	parts := []string{
		strconv.Itoa(d.Dim) + "d int",
		d.Split + " split",
		d.Algo,
		d.Impl,
	}
	if d.Target.IsSet() {
		parts = append(parts, d.TargetName)
	}
	return strings.Join(parts, ", ")
}

// normalize fills the derived fields of d.
func (d *Descriptor) normalize() {
	d.key = NewKey(d.Dim, d.Split, d.Algo, d.Impl).WithTarget(d.Target)
	if d.TargetName == "" {
		d.TargetName = d.Target.String()
	}
}
