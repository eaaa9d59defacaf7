//go:build mage

// Package main contains Mage build targets for coinage developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "coinage"
	cmdPkg  = "./cmd/coinage"
)

// Build compiles the CLI binary into bin/, stamping the version from git.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", "-X main.version="+version, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint vets the module.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// All lints, tests, and builds.
func All() {
	mg.Deps(Lint, Test)
	mg.Deps(Build)
}

// secretsTemplate is the env file the search command expects operators
// to source before running.
const secretsTemplate = `# coinage credentials. Fill in and run: source .secrets
export BEARER_TOKEN=
export CONSUMER_KEY=
export CONSUMER_SECRET=
export ACCESS_TOKEN=
export ACCESS_TOKEN_SECRET=
`

// Secrets writes a .secrets template if one does not already exist.
func Secrets() error {
	if _, err := os.Stat(".secrets"); err == nil {
		return fmt.Errorf(".secrets already exists, not overwriting")
	}
	if err := os.WriteFile(".secrets", []byte(secretsTemplate), 0o600); err != nil {
		return fmt.Errorf("writing .secrets: %w", err)
	}
	fmt.Println("Wrote .secrets template; fill it in and `source .secrets`.")
	return nil
}

// Stats prints project metrics: Go production and test LOC.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines walks the module and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count
// non-test .go files. Directories the Go tool ignores are skipped.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		name := info.Name()
		if info.IsDir() {
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		isTest := strings.HasSuffix(path, "_test.go")
		if testOnly != isTest {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}
