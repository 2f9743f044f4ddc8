package main_test

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var binaries = map[string]string{
	"go-example":  ".",
	"c-example":   "./cmd/c-example",
	"cpp-example": "./cmd/cpp-example",
}

var (
	binDir   string
	buildErr error
	skipWhy  string
)

func TestMain(m *testing.M) {
	flag.Parse()
	code := func() int {
		if testing.Short() {
			skipWhy = "builds the example binaries"
			return m.Run()
		}
		goTool, err := exec.LookPath("go")
		if err != nil {
			skipWhy = "go tool not found"
			return m.Run()
		}
		binDir, err = os.MkdirTemp("", "feluda-examples")
		if err != nil {
			buildErr = err
			return m.Run()
		}
		defer os.RemoveAll(binDir)
		for name, pkg := range binaries {
			build := exec.Command(goTool, "build", "-o", filepath.Join(binDir, name), pkg)
			if out, err := build.CombinedOutput(); err != nil {
				buildErr = fmt.Errorf("failed to build %s: %v\n%s", name, err, out)
				break
			}
		}
		return m.Run()
	}()
	os.Exit(code)
}

func examplesDir(t *testing.T) string {
	t.Helper()
	if skipWhy != "" {
		t.Skip(skipWhy)
	}
	if buildErr != nil {
		t.Fatal(buildErr)
	}
	return binDir
}

// cleanEnv drops configuration overrides so the binaries run with defaults.
func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "FELUDA_EXAMPLE_") {
			env = append(env, kv)
		}
	}
	return env
}

// runPiped runs a binary with stdout connected to a pipe, as in
// "cpp-example | cat".
func runPiped(t *testing.T, path string, args ...string) []string {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = cleanEnv()
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("%s exited with %v\nstdout:\n%s\nstderr:\n%s", filepath.Base(path), err, out, stderr.String())
	}
	return strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
}

func expectPrefixes(t *testing.T, lines []string, prefixes ...string) {
	t.Helper()
	if len(lines) < len(prefixes) {
		t.Fatalf("expected at least %d lines, got %d:\n%s", len(prefixes), len(lines), strings.Join(lines, "\n"))
	}
	for i, prefix := range prefixes {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}

func TestExamplesExitZero(t *testing.T) {
	dir := examplesDir(t)

	t.Run("c-example", func(t *testing.T) {
		lines := runPiped(t, filepath.Join(dir, "c-example"))
		expectPrefixes(t, lines,
			"C example with transient dependencies",
			"TLS version: crypto/tls go",
			"HTTP client version: minio-go v7.",
			"zlib version: klauspost/compress v1.",
		)
		if len(lines) != 4 {
			t.Errorf("expected 4 lines, got %d", len(lines))
		}
	})

	t.Run("cpp-example", func(t *testing.T) {
		lines := runPiped(t, filepath.Join(dir, "cpp-example"))
		expectPrefixes(t, lines,
			"C++ example with transient dependencies",
			"INFO\tUsing zap for logging",
			"{",
			`  "libraries": [`,
		)
		out := strings.Join(lines, "\n")
		if !strings.Contains(out, `"message": "C++ example with transient dependencies"`) {
			t.Errorf("expected message key in output:\n%s", out)
		}
	})

	t.Run("go-example", func(t *testing.T) {
		lines := runPiped(t, filepath.Join(dir, "go-example"), "ignored", "args")
		expectPrefixes(t, lines, "Go example with transient dependencies")
	})
}

func TestCppExampleToDevNull(t *testing.T) {
	dir := examplesDir(t)
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("failed to open %s: %v", os.DevNull, err)
	}
	defer devNull.Close()
	cmd := exec.Command(filepath.Join(dir, "cpp-example"))
	cmd.Env = cleanEnv()
	cmd.Stdout = devNull
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("cpp-example exited with %v\n%s", err, stderr.String())
	}
}

func TestExamplesAreDeterministic(t *testing.T) {
	dir := examplesDir(t)
	for _, name := range []string{"c-example", "cpp-example"} {
		first := runPiped(t, filepath.Join(dir, name))
		second := runPiped(t, filepath.Join(dir, name))
		if strings.Join(first, "\n") != strings.Join(second, "\n") {
			t.Errorf("%s output differs between runs", name)
		}
	}
}

func TestInvalidConfigPanics(t *testing.T) {
	dir := examplesDir(t)
	cmd := exec.Command(filepath.Join(dir, "c-example"))
	cmd.Env = append(cleanEnv(), "FELUDA_EXAMPLE_FORMAT=xml")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected a non-zero exit, got %v", err)
	}
	// Unrecovered panics exit with status 2.
	if exitErr.ExitCode() != 2 {
		t.Errorf("exit code = %d, want 2", exitErr.ExitCode())
	}
	if !strings.Contains(stderr.String(), "panic: Error loading config") {
		t.Errorf("expected config panic on stderr, got:\n%s", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no stdout, got %q", stdout.String())
	}
}
