package template_test

import (
	"testing"

	"github.com/azint/methodreg/pkg/template"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		wantErr bool
	}{
		"default format": {
			input: template.DefaultFormat,
		},
		"with quote function": {
			input: `{{.Legacy | quote}}`,
		},
		"with case functions": {
			input: `{{.Impl | upper}} {{.Split | lower}}`,
		},
		"multiline": {
			input: `{{.Dim}}d {{.Split}}
  handler: {{.Handler}}`,
		},
		"invalid template": {
			input:   `{{.Dim}`,
			wantErr: true,
		},
		"unknown function": {
			input:   `{{.Dim | backtick}}`,
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := template.Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTemplate_Render(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		tmpl string
		vars template.Vars
		want string
	}{
		"default format": {
			tmpl: template.DefaultFormat,
			vars: template.Vars{String: "1d int, full split, csr, cython"},
			want: "1d int, full split, csr, cython",
		},
		"tab separated": {
			tmpl: "{{.Dim}}\t{{.Split}}\t{{.Algo}}\t{{.Impl}}",
			vars: template.Vars{Dim: 2, Split: "bbox", Algo: "lut", Impl: "opencl"},
			want: "2\tbbox\tlut\topencl",
		},
		"quoted legacy name": {
			tmpl: `{{.Legacy | quote}}`,
			vars: template.Vars{Legacy: "csr_ocl"},
			want: `"csr_ocl"`,
		},
		"upper implementation": {
			tmpl: `{{.Impl | upper}}`,
			vars: template.Vars{Impl: "opencl"},
			want: "OPENCL",
		},
		"conditional target": {
			tmpl: `{{.Impl}}{{if .HasTarget}} on {{.TargetName}} {{.Target}}{{end}}`,
			vars: template.Vars{Impl: "opencl", HasTarget: true, Target: "(0, 1)", TargetName: "GeForce GTX 1080"},
			want: "opencl on GeForce GTX 1080 (0, 1)",
		},
		"conditional no target": {
			tmpl: `{{.Impl}}{{if .HasTarget}} on {{.TargetName}}{{end}}`,
			vars: template.Vars{Impl: "cython", Target: "None", TargetName: "None"},
			want: "cython",
		},
		"surrounding whitespace trimmed": {
			tmpl: "  {{.Algo}}\n",
			vars: template.Vars{Algo: "csr"},
			want: "csr",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := template.Parse(tt.tmpl)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			got, err := tmpl.Render(tt.vars)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Render() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestTemplate_Render_Error(t *testing.T) {
	t.Parallel()

	tmpl, err := template.Parse(`{{.NonExistent.Field}}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	_, err = tmpl.Render(template.Vars{})
	if err == nil {
		t.Error("Render() should error when accessing non-existent field")
	}
}
