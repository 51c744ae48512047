//go:build windows

package main

import (
	"os"
	"path/filepath"
)

func fontLocations() []string {
	var loc []string

	if execPath, err := os.Executable(); err == nil {
		loc = append(loc, filepath.Join(filepath.Dir(execPath), "fonts"))
	}

	if winDir := os.Getenv("WINDIR"); winDir != "" {
		loc = append(loc, filepath.Join(winDir, "Fonts"))
	}

	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		loc = append(loc, filepath.Join(localAppData, "Microsoft", "Windows", "Fonts"))
	}

	return loc
}
