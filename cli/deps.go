package cli

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/pratik-anurag/feluda-examples/versions"
	"github.com/spf13/cobra"
)

// newDepsCmd lists the modules linked into the binary, the set a license
// checker would scan.
func newDepsCmd(catalog *versions.Catalog) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "List linked modules and their versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printDeps(cmd.OutOrStdout(), catalog.Modules(), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func printDeps(w io.Writer, modules []versions.Module, asJSON bool) error {
	if asJSON {
		if modules == nil {
			modules = []versions.Module{}
		}
		out, err := json.MarshalIndent(modules, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode modules")
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	}
	width := 0
	for _, m := range modules {
		width = max(width, len(m.Path))
	}
	for _, m := range modules {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, m.Path, m.Version); err != nil {
			return err
		}
	}
	return nil
}
