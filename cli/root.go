package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/pratik-anurag/feluda-examples/config"
	"github.com/pratik-anurag/feluda-examples/example"
	"github.com/pratik-anurag/feluda-examples/logging"
	"github.com/pratik-anurag/feluda-examples/versions"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func Execute() {
	cmd := newRootCmd(versions.FromBuild())
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(catalog *versions.Catalog) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "go-example",
		Short:        "Go example with transient dependencies",
		SilenceUsage: true,
		// Arguments are ignored, as in the original program.
		Args:         cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, cleanup, err := newEnv(catalog, debug)
			if err != nil {
				return err
			}
			defer cleanup()
			return example.Go(cmd.OutOrStdout(), env)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log diagnostics at debug level")
	cmd.AddCommand(newDepsCmd(catalog), newVersionCmd(catalog))
	return cmd
}

func newEnv(catalog *versions.Catalog, debug bool) (example.Env, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return example.Env{}, nil, errors.Wrap(err, "load config")
	}
	if debug {
		cfg.Log.Level = "debug"
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return example.Env{}, nil, err
	}
	cleanup := func() { _ = logger.Sync() }
	logger.Debug("Loaded config", zap.String("format", cfg.Format), zap.String("objectStore", cfg.ObjectStore))
	return example.Env{Catalog: catalog, Logger: logger, Config: cfg}, cleanup, nil
}
