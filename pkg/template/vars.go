package template

import (
	"fmt"

	"github.com/azint/methodreg/pkg/method"
)

// BuildVars constructs a Vars instance from a registered descriptor.
func BuildVars(d *method.Descriptor) Vars {
	vars := Vars{
		Dim:        d.Dim,
		Split:      d.Split,
		Algo:       d.Algo,
		Impl:       d.Impl,
		Target:     d.Target.String(),
		TargetName: d.TargetName,
		HasTarget:  d.Target.IsSet(),
		Legacy:     d.Legacy,
		String:     d.String(),
	}
	if d.Handler != nil {
		vars.Handler = fmt.Sprint(d.Handler)
	}
	return vars
}
