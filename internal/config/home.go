package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

const (
	// HomeEnvVar pins the workspace root
	HomeEnvVar = "AOC_HOME"

	// RootMarker marks a workspace root explicitly
	RootMarker = ".aoc-root"

	modulePath = "github.com/harrison/aoc"
)

// FindWorkspaceRoot returns the directory inputs and config are resolved from.
// Priority order:
//  1. AOC_HOME environment variable (if set)
//  2. nearest ancestor of start holding a .aoc-root marker or this module's go.mod
//  3. start itself
func FindWorkspaceRoot(start string) string {
	if home := os.Getenv(HomeEnvVar); home != "" {
		return home
	}

	current := start
	for {
		if _, err := os.Stat(filepath.Join(current, RootMarker)); err == nil {
			return current
		}
		if declaresModule(filepath.Join(current, "go.mod")) {
			return current
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return start
}

// declaresModule reports whether the go.mod at path declares this module.
func declaresModule(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if name, ok := strings.CutPrefix(line, "module "); ok {
			return strings.TrimSpace(name) == modulePath
		}
	}
	return false
}
