package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pratik-anurag/feluda-examples/versions"
	"github.com/spf13/cobra"
)

func newVersionCmd(catalog *versions.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printBanner(cmd.OutOrStdout(), catalog)
		},
	}
}

func printBanner(w io.Writer, catalog *versions.Catalog) error {
	title := "go-example " + catalog.Main().Version
	border := strings.Repeat("─", utf8.RuneCountInString(title)+4)
	_, err := fmt.Fprintf(w, "┌%s┐\n│ %s   │\n└%s┘\n\nBuilt with %s.\n", border, title, border, catalog.GoVersion())
	return err
}
