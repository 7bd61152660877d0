// Package embedded carries the default sky map template and render script
// compiled into the binary, so a build needs no asset files on disk.
package embedded

import (
	"embed"

	"github.com/agentstation/skymap/pkg/errors"
)

// FS embeds the sky map HTML template and the render script at build time.
//
//go:embed assets/*
var FS embed.FS

// Asset paths within FS.
const (
	TemplatePath = "assets/sky.html"
	ScriptPath   = "assets/sky.js"
)

// Template returns the embedded HTML template.
func Template() (string, error) {
	return read(TemplatePath)
}

// Script returns the embedded render script.
func Script() (string, error) {
	return read(ScriptPath)
}

func read(path string) (string, error) {
	data, err := FS.ReadFile(path)
	if err != nil {
		return "", errors.NewIOError("read", path, err)
	}
	return string(data), nil
}
