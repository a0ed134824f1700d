package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/azint/methodreg/internal"
	"github.com/azint/methodreg/pkg/method"
	"github.com/azint/methodreg/pkg/template"
)

func newListCmd(f *rootFlags) *cobra.Command {
	var (
		dim    int
		format string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered methods in registration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tmpl, err := template.Parse(format)
			if err != nil {
				return err
			}
			return f.withRegistry(cmd, func(r *method.Registry) error {
				all := r.All()
				if dim != 0 {
					filtered := all[:0]
					for _, d := range all {
						if d.Dim == dim {
							filtered = append(filtered, d)
						}
					}
					all = filtered
				}
				return printMethods(cmd.OutOrStdout(), tmpl, all)
			})
		},
	}
	cmd.Flags().IntVar(&dim, "dim", 0, "only list methods of this dimension")
	cmd.Flags().StringVar(&format, "format", template.DefaultFormat, "Go template rendered for each method")
	return cmd
}

func newSelectCmd(f *rootFlags) *cobra.Command {
	var (
		q      method.Query
		format string
	)
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select methods by dimension, split, algorithm and implementation",
		Long: `Select methods matching every given field. Omitted fields, or "*",
match anything.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tmpl, err := template.Parse(format)
			if err != nil {
				return err
			}
			return f.withRegistry(cmd, func(r *method.Registry) error {
				found := r.Select(q)
				if len(found) == 0 {
					return fmt.Errorf("no %dd method matches split=%s algo=%s impl=%s",
						q.Dim, orWildcard(q.Split), orWildcard(q.Algo), orWildcard(q.Impl))
				}
				return printMethods(cmd.OutOrStdout(), tmpl, found)
			})
		},
	}
	cmd.Flags().IntVar(&q.Dim, "dim", 1, "integration dimension")
	cmd.Flags().StringVar(&q.Split, "split", "", "pixel splitting (no, bbox, pseudo, full)")
	cmd.Flags().StringVar(&q.Algo, "algo", "", "algorithm (histogram, lut, csr)")
	cmd.Flags().StringVar(&q.Impl, "impl", "", "implementation (python, cython, opencl)")
	cmd.Flags().StringVar(&format, "format", template.DefaultFormat, "Go template rendered for each method")
	return cmd
}

func newLegacyCmd(f *rootFlags) *cobra.Command {
	var (
		dim    int
		format string
	)
	cmd := &cobra.Command{
		Use:   "legacy NAME",
		Short: "Select methods by legacy name, e.g. csr_ocl or splitpixel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := template.Parse(format)
			if err != nil {
				return err
			}
			return f.withRegistry(cmd, func(r *method.Registry) error {
				found := r.SelectLegacy(dim, args[0])
				if len(found) == 0 {
					return fmt.Errorf("no %dd method matches legacy name %q", dim, args[0])
				}
				return printMethods(cmd.OutOrStdout(), tmpl, found)
			})
		},
	}
	cmd.Flags().IntVar(&dim, "dim", 1, "integration dimension")
	cmd.Flags().StringVar(&format, "format", template.DefaultFormat, "Go template rendered for each method")
	return cmd
}

func newParseCmd(f *rootFlags) *cobra.Command {
	var (
		dim    int
		format string
	)
	cmd := &cobra.Command{
		Use:   "parse TEXT",
		Short: `Resolve a legacy name or "[dim,]split,algo,impl" to one method`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := template.Parse(format)
			if err != nil {
				return err
			}
			return f.withRegistry(cmd, func(r *method.Registry) error {
				d, ok := r.Parse(args[0], dim)
				if !ok {
					return fmt.Errorf("no %dd method matches %q", dim, args[0])
				}
				return printMethods(cmd.OutOrStdout(), tmpl, []*method.Descriptor{d})
			})
		},
	}
	cmd.Flags().IntVar(&dim, "dim", 1, "integration dimension")
	cmd.Flags().StringVar(&format, "format", template.DefaultFormat, "Go template rendered for each method")
	return cmd
}

func printMethods(w io.Writer, tmpl *template.Template, ds []*method.Descriptor) error {
	for _, d := range ds {
		line, err := tmpl.Render(template.BuildVars(d))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, internal.Paint(internal.ImplColor(d.Impl), line)); err != nil {
			return err
		}
	}
	return nil
}

func orWildcard(s string) string {
	if s == "" {
		return method.Wildcard
	}
	return s
}
