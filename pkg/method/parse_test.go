package method_test

import (
	"testing"

	"github.com/azint/methodreg/pkg/method"
)

func TestRegistry_Parse(t *testing.T) {
	r := fixture(t)
	registered, _ := r.Lookup(method.NewKey(1, "bbox", "csr", "cython"))

	tests := map[string]struct {
		input  any
		dim    int
		want   string
		wantOK bool
	}{
		"descriptor is returned unchanged": {
			input:  registered,
			dim:    1,
			want:   "1d int, bbox split, CSR, cython",
			wantOK: true,
		},
		"descriptor value resolves to the registered one": {
			input:  method.Descriptor{Dim: 1, Split: "BBOX", Algo: "csr", Impl: "Cython"},
			dim:    2,
			want:   "1d int, bbox split, CSR, cython",
			wantOK: true,
		},
		"unregistered descriptor value": {
			input: method.Descriptor{Dim: 1, Split: "pseudo", Algo: "csr", Impl: "cython"},
			dim:   1,
		},
		"registered key": {
			input:  method.NewKey(2, "FULL", "csr", "opencl"),
			dim:    1,
			want:   "2d int, full split, CSR, OpenCL",
			wantOK: true,
		},
		"registered key with target": {
			input:  method.NewKey(2, "full", "csr", "opencl").WithTarget(method.NewTarget(0, 1)),
			dim:    1,
			want:   "2d int, full split, CSR, OpenCL, GeForce GTX 1080",
			wantOK: true,
		},
		"unregistered key": {
			input: method.NewKey(2, "pseudo", "csr", "opencl"),
			dim:   2,
		},
		"legacy name": {
			input:  "csr_ocl",
			dim:    1,
			want:   "1d int, bbox split, CSR, OpenCL",
			wantOK: true,
		},
		"legacy name with one comma": {
			input:  "full,csr",
			dim:    1,
			want:   "1d int, full split, CSR, cython",
			wantOK: true,
		},
		"structured split algo impl": {
			input:  "full, csr, opencl",
			dim:    2,
			want:   "2d int, full split, CSR, OpenCL",
			wantOK: true,
		},
		"structured with dimension": {
			input:  "2d,bbox,*,cython",
			dim:    1,
			want:   "2d int, bbox split, histogram, cython",
			wantOK: true,
		},
		"structured first match wins": {
			input:  "bbox,*,*",
			dim:    1,
			want:   "1d int, BBox split, histogram, cython",
			wantOK: true,
		},
		"structured without match": {
			input: "pseudo,csr,opencl",
			dim:   1,
		},
		"structured with bad dimension": {
			input: "x,full,csr,opencl",
			dim:   1,
		},
		"too many fields": {
			input: "1,full,csr,opencl,gpu",
			dim:   1,
		},
		"empty string": {
			input: "",
			dim:   2,
		},
		"unsupported type": {
			input: 42,
			dim:   1,
		},
		"nil descriptor": {
			input: (*method.Descriptor)(nil),
			dim:   1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := r.Parse(tt.input, tt.dim)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%v) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				if got != nil {
					t.Errorf("Parse(%v) = %v, want nil", tt.input, got)
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("Parse(%v) = %q, want %q", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestRegistry_Parse_SameDescriptor(t *testing.T) {
	r := fixture(t)
	d, ok := r.Parse("lut", 1)
	if !ok {
		t.Fatal("Parse(\"lut\") found nothing")
	}
	again, ok := r.Parse(d, 2)
	if !ok || again != d {
		t.Errorf("Parse(descriptor) = %p, want %p", again, d)
	}
	byValue, ok := r.Parse(*d, 2)
	if !ok || byValue != d {
		t.Errorf("Parse(descriptor value) = %p, want %p", byValue, d)
	}
	if byValue.Key() != d.Key() {
		t.Errorf("Key() = %v, want %v", byValue.Key(), d.Key())
	}
}
