package probe

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/pratik-anurag/feluda-examples/versions"
	"go.uber.org/zap"
)

// Probe exercises one linked library and reports the version it was
// built against.
type Probe struct {
	Label string
	Check func(logger *zap.Logger) error
	// Version formats the version text from the build catalog.
	Version func(catalog *versions.Catalog) string
}

// Run checks every probe in order and writes one "<label> version: <text>"
// line per probe. It stops at the first failing probe.
func Run(w io.Writer, catalog *versions.Catalog, logger *zap.Logger, probes ...Probe) error {
	for _, p := range probes {
		if p.Check != nil {
			if err := p.Check(logger); err != nil {
				return errors.Wrapf(err, "probe %s", p.Label)
			}
		}
		logger.Debug("Probe passed", zap.String("probe", p.Label))
		if _, err := fmt.Fprintf(w, "%s version: %s\n", p.Label, p.Version(catalog)); err != nil {
			return errors.Wrap(err, "write version line")
		}
	}
	return nil
}

func moduleVersion(name, path string) func(*versions.Catalog) string {
	return func(catalog *versions.Catalog) string {
		return name + " " + catalog.Version(path)
	}
}
