package internal

import (
	"testing"
)

func TestStdoutColor(t *testing.T) {
	orig := stdoutIsTTY
	defer func() { stdoutIsTTY = orig }()

	t.Run("TTY", func(t *testing.T) {
		stdoutIsTTY = true
		if got := StdoutColor(ColorGreen); got != ColorGreen {
			t.Errorf("StdoutColor(ColorGreen) = %q, want %q", got, ColorGreen)
		}
	})

	t.Run("not TTY", func(t *testing.T) {
		stdoutIsTTY = false
		if got := StdoutColor(ColorGreen); got != "" {
			t.Errorf("StdoutColor(ColorGreen) = %q, want empty", got)
		}
	})
}

func TestStderrColor(t *testing.T) {
	orig := stderrIsTTY
	defer func() { stderrIsTTY = orig }()

	t.Run("TTY", func(t *testing.T) {
		stderrIsTTY = true
		if got := StderrColor(ColorRed); got != ColorRed {
			t.Errorf("StderrColor(ColorRed) = %q, want %q", got, ColorRed)
		}
	})

	t.Run("not TTY", func(t *testing.T) {
		stderrIsTTY = false
		if got := StderrColor(ColorRed); got != "" {
			t.Errorf("StderrColor(ColorRed) = %q, want empty", got)
		}
	})
}

func TestImplColor(t *testing.T) {
	tests := map[string]struct {
		impl string
		want string
	}{
		"opencl":  {impl: "opencl", want: ColorGreen},
		"cython":  {impl: "cython", want: ColorCyan},
		"python":  {impl: "python", want: ColorYellow},
		"unknown": {impl: "numba", want: ColorDim},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ImplColor(tt.impl); got != tt.want {
				t.Errorf("ImplColor(%q) = %q, want %q", tt.impl, got, tt.want)
			}
		})
	}
}

func TestPaint(t *testing.T) {
	orig := stdoutIsTTY
	defer func() { stdoutIsTTY = orig }()

	tests := map[string]struct {
		tty   bool
		color string
		want  string
	}{
		"TTY":      {tty: true, color: ColorCyan, want: ColorCyan + "csr" + ColorReset},
		"not TTY":  {tty: false, color: ColorCyan, want: "csr"},
		"no color": {tty: true, color: "", want: "csr"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stdoutIsTTY = tt.tty
			if got := Paint(tt.color, "csr"); got != tt.want {
				t.Errorf("Paint() = %q, want %q", got, tt.want)
			}
		})
	}
}
