//go:build !windows

package main

import (
	"os"
	"path/filepath"
)

func fontLocations() []string {
	loc := []string{
		"/usr/share/fonts/truetype/liberation",
		"/usr/share/fonts/liberation-mono",
		"/usr/share/fonts/TTF",
	}

	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		loc = append(loc, filepath.Join(xdgDataHome, "fonts"))
	}

	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		loc = append(loc, filepath.Join(homeDir, ".local/share/fonts"), filepath.Join(homeDir, ".fonts"))
	}

	return loc
}
