package example

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/pratik-anurag/feluda-examples/config"
	"github.com/pratik-anurag/feluda-examples/logging"
	"github.com/pratik-anurag/feluda-examples/probe"
	"github.com/pratik-anurag/feluda-examples/record"
	"github.com/pratik-anurag/feluda-examples/versions"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	CTitle      = "C example with transient dependencies"
	CppTitle    = "C++ example with transient dependencies"
	GoTitle     = "Go example with transient dependencies"
	PythonTitle = "Python example with transient dependencies"
)

// CppLibraries are the libraries the C++ example reports in its record.
var CppLibraries = []string{"fmt", "go-json", "zap", "pkg/errors"}

// Env carries what every example needs. Logger receives diagnostics only,
// never program output.
type Env struct {
	Catalog *versions.Catalog
	Logger  *zap.Logger
	Config  config.Config
}

func C(w io.Writer, env Env) error {
	if _, err := fmt.Fprintln(w, CTitle); err != nil {
		return errors.Wrap(err, "write title")
	}
	return probe.Run(w, env.Catalog, env.Logger,
		probe.TLS(),
		probe.HTTPClient(env.Config.ObjectStore),
		probe.Zlib(),
	)
}

func Cpp(w io.Writer, env Env) error {
	format, err := record.ParseFormat(env.Config.Format)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, CppTitle); err != nil {
		return errors.Wrap(err, "write title")
	}
	console := logging.Console(w, zapcore.InfoLevel)
	console.Info("Using zap for logging")
	if err := probe.Errors().Check(env.Logger); err != nil {
		return errors.Wrap(err, "probe errors")
	}
	return record.New(CppTitle, CppLibraries...).Encode(w, format)
}

func Go(w io.Writer, env Env) error {
	env.Logger.Info(GoTitle)
	if _, err := fmt.Fprintln(w, GoTitle); err != nil {
		return errors.Wrap(err, "write title")
	}
	gin.SetMode(gin.ReleaseMode)
	engine := gin.Default()
	env.Logger.Debug("Created HTTP engine", zap.String("ginVersion", gin.Version), zap.Int("routes", len(engine.Routes())))
	return nil
}

// Python only prints the banner; the HTTP app lives in package server.
func Python(w io.Writer) error {
	_, err := fmt.Fprintln(w, PythonTitle)
	return errors.Wrap(err, "write title")
}
