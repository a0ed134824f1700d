package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/azint/methodreg/pkg/method"
)

// Descriptor is the JSON form of a method.Descriptor.
type Descriptor struct {
	Dim        int            `json:"dim"`
	Split      string         `json:"split"`
	Algo       string         `json:"algo"`
	Impl       string         `json:"impl"`
	Target     []int          `json:"target"`
	TargetName string         `json:"target_name"`
	Legacy     string         `json:"legacy"`
	Handler    *string        `json:"handler"`
	Extra      map[string]any `json:"extra"`
	Name       string         `json:"name"`
}

// MethodList is the body of the list and lookup endpoints.
type MethodList struct {
	Count   int          `json:"count"`
	Methods []Descriptor `json:"methods"`
}

type errorBody struct {
	Error string `json:"error"`
}

func newDescriptor(d *method.Descriptor) Descriptor {
	out := Descriptor{
		Dim:        d.Dim,
		Split:      d.Split,
		Algo:       d.Algo,
		Impl:       d.Impl,
		TargetName: d.TargetName,
		Legacy:     d.Legacy,
		Extra:      d.Extra,
		Name:       d.String(),
	}
	if d.Target.IsSet() {
		out.Target = []int{d.Target.Platform, d.Target.Device}
	}
	if d.Handler != nil {
		h := fmt.Sprint(d.Handler)
		out.Handler = &h
	}
	return out
}

func newMethodList(ds []*method.Descriptor) MethodList {
	list := MethodList{Count: len(ds), Methods: make([]Descriptor, 0, len(ds))}
	for _, d := range ds {
		list.Methods = append(list.Methods, newDescriptor(d))
	}
	return list
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	payload, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, errorBody{Error: fmt.Sprintf(format, args...)}, status)
}
