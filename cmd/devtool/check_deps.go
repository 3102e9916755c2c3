package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required development tools"
}

// tool describes one binary the workflow depends on
type tool struct {
	name     string
	args     []string
	required bool
	hint     string
	// version extracts the version from the tool's output
	version func(out string) string
}

func fieldAt(i int) func(string) string {
	return func(out string) string {
		line := strings.SplitN(out, "\n", 2)[0]
		parts := strings.Fields(line)
		if len(parts) <= i {
			return line
		}
		return strings.TrimRight(parts[i], ",")
	}
}

func gooseVersion(out string) string {
	parts := strings.Fields(out)
	if len(parts) == 0 {
		return out
	}
	return strings.TrimPrefix(parts[len(parts)-1], "version:")
}

var devTools = []tool{
	{name: "go", args: []string{"version"}, required: true, hint: "https://go.dev/dl/", version: fieldAt(2)},
	{name: "docker", args: []string{"--version"}, required: true, hint: "https://docs.docker.com/get-docker/", version: fieldAt(2)},
	{name: "docker", args: []string{"compose", "version"}, hint: "bundled with recent Docker releases", version: fieldAt(3)},
	{name: "goose", args: []string{"--version"}, hint: "go install github.com/pressly/goose/v3/cmd/goose@latest", version: gooseVersion},
	{name: "mockery", args: []string{"--version"}, hint: "go install github.com/vektra/mockery/v2@latest", version: fieldAt(0)},
	{name: "swag", args: []string{"--version"}, hint: "go install github.com/swaggo/swag/cmd/swag@latest", version: fieldAt(2)},
}

func (c *CheckDepsCommand) Run(args []string) error {
	PrintHeader("Checking dependencies...")

	hasError := false
	for _, t := range devTools {
		label := strings.TrimSpace(t.name + " " + strings.Join(t.args[:len(t.args)-1], " "))
		out, err := c.lookup(t)
		switch {
		case err == nil:
			PrintSuccess("%s installed: %s", label, t.version(out))
		case t.required:
			PrintError("%s not found! Install from: %s", label, t.hint)
			hasError = true
		default:
			PrintWarning("%s not found (optional). Install: %s", label, t.hint)
		}
	}

	if hasError {
		return fmt.Errorf("required tools are missing")
	}
	PrintSuccess("Environment check complete!")
	return nil
}

// lookup runs the tool from PATH, falling back to ~/go/bin
func (c *CheckDepsCommand) lookup(t tool) (string, error) {
	out, err := getCommandOutput(t.name, t.args...)
	if err == nil {
		return out, nil
	}
	home, herr := os.UserHomeDir()
	if herr != nil {
		return "", err
	}
	return getCommandOutput(filepath.Join(home, "go", "bin", t.name), t.args...)
}
