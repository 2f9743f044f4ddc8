package versions

import (
	"runtime/debug"
	"slices"
	"strings"
)

// Unknown is reported for modules the binary was not built with.
const Unknown = "unknown"

type Module struct {
	Path    string `json:"path"`
	Version string `json:"version"`
}

// Catalog answers version queries against the module build info embedded
// in the running binary.
type Catalog struct {
	goVersion string
	main      Module
	modules   map[string]Module
}

func New(read func() (*debug.BuildInfo, bool)) *Catalog {
	c := &Catalog{
		goVersion: Unknown,
		main:      Module{Version: Unknown},
		modules:   map[string]Module{},
	}
	info, ok := read()
	if !ok || info == nil {
		return c
	}
	if info.GoVersion != "" {
		c.goVersion = info.GoVersion
	}
	c.main = Module{Path: info.Main.Path, Version: info.Main.Version}
	if c.main.Version == "" {
		c.main.Version = "(devel)"
	}
	for _, dep := range info.Deps {
		if dep == nil {
			continue
		}
		m := Module{Path: dep.Path, Version: dep.Version}
		if dep.Replace != nil && dep.Replace.Version != "" {
			m.Version = dep.Replace.Version
		}
		c.modules[dep.Path] = m
	}
	return c
}

func FromBuild() *Catalog {
	return New(debug.ReadBuildInfo)
}

func (c *Catalog) GoVersion() string {
	return c.goVersion
}

func (c *Catalog) Main() Module {
	return c.main
}

// Version returns the linked version of the module at path.
func (c *Catalog) Version(path string) string {
	m, ok := c.modules[path]
	if !ok || m.Version == "" {
		return Unknown
	}
	return m.Version
}

func (c *Catalog) Modules() []Module {
	modules := make([]Module, 0, len(c.modules))
	for _, m := range c.modules {
		modules = append(modules, m)
	}
	slices.SortFunc(modules, func(a, b Module) int {
		return strings.Compare(a.Path, b.Path)
	})
	return modules
}
