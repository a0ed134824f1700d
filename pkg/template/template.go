// Package template renders method descriptors through user-supplied
// text/template formats, as used by "methodreg list --format".
package template

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

// DefaultFormat renders the printable descriptor form.
const DefaultFormat = `{{.String}}`

// Vars holds the variables available in templates.
type Vars struct {
	// Dim is the integration dimensionality (1 or 2)
	Dim int
	// Split is the pixel splitting scheme (e.g., "no", "bbox", "full")
	Split string
	// Algo is the algorithm (e.g., "histogram", "lut", "csr")
	Algo string
	// Impl is the implementation (e.g., "python", "cython", "opencl")
	Impl string
	// Target is the device as "(platform, device)", or "None"
	Target string
	// TargetName is the human readable device name
	TargetName string
	// HasTarget indicates whether the method is bound to a device
	HasTarget bool
	// Legacy is the historical method name (may be empty)
	Legacy string
	// Handler is the handler rendered with %v (empty if none)
	Handler string
	// String is the printable form, e.g. "1d int, full split, csr, opencl"
	String string
}

// Template wraps a parsed descriptor format.
type Template struct {
	tmpl *template.Template
}

// funcs returns the template function map.
func funcs() template.FuncMap {
	return template.FuncMap{
		"quote": strconv.Quote,
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// Parse parses a template string.
func Parse(text string) (*Template, error) {
	tmpl, err := template.New("method").Funcs(funcs()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return &Template{tmpl: tmpl}, nil
}

// Render executes the template with the given variables.
func (t *Template) Render(vars Vars) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
