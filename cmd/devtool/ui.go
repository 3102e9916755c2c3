package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

type tone string

const (
	toneInfo    tone = "\033[0;34mℹ "
	toneOK      tone = "\033[0;32m✓ "
	toneWarn    tone = "\033[1;33m⚠ "
	toneFail    tone = "\033[0;31m✗ "
	toneHeading tone = "\033[1;33m=== "
	resetColor       = "\033[0m"
)

// stdout and stderr are swapped out in tests
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func say(w io.Writer, t tone, format string, a ...any) {
	suffix := ""
	if t == toneHeading {
		suffix = " ==="
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%s%s%s%s\n", t, fmt.Sprintf(format, a...), suffix, resetColor)
}

func PrintInfo(format string, a ...any)    { say(stdout, toneInfo, format, a...) }
func PrintSuccess(format string, a ...any) { say(stdout, toneOK, format, a...) }
func PrintWarning(format string, a ...any) { say(stdout, toneWarn, format, a...) }
func PrintError(format string, a ...any)   { say(stderr, toneFail, format, a...) }
func PrintHeader(title string)             { say(stdout, toneHeading, "%s", title) }

// shellMeta are sequences rejected in command arguments. '&' and ';' alone
// stay legal so URLs and SQL pass through.
var shellMeta = []string{"|", "`", "$(", "&&", "||", ">", "<"}

// checkHostile rejects arguments that could splice extra shell commands if
// they ever reach a shell.
func checkHostile(inputs ...string) error {
	for _, s := range inputs {
		if strings.ContainsAny(s, "\n\r\x00") {
			return fmt.Errorf("hostile input detected: control character in %q", s)
		}
		for _, p := range shellMeta {
			if strings.Contains(s, p) {
				return fmt.Errorf("hostile input detected: pattern %q in %q", p, s)
			}
		}
	}
	return nil
}

func command(name string, args ...string) (*exec.Cmd, error) {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return nil, err
	}
	return exec.Command(name, args...), nil // #nosec G204 -- arguments checked above
}

// getCommandOutput runs a command and returns its trimmed stdout
func getCommandOutput(name string, args ...string) (string, error) {
	cmd, err := command(name, args...)
	if err != nil {
		return "", err
	}
	out, err := cmd.Output()
	return strings.TrimSpace(string(out)), err
}

func runCommand(name string, args ...string) error {
	cmd, err := command(name, args...)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// runCommandVerbose streams the command's output to the terminal
func runCommandVerbose(name string, args ...string) error {
	cmd, err := command(name, args...)
	if err != nil {
		return err
	}
	cmd.Stdout, cmd.Stderr = stdout, stderr
	return cmd.Run()
}
