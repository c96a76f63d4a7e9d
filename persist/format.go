// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package persist saves and loads property sets as text documents in
// TOML, YAML, JSON or XML, where every property value is stored in its
// canonical text encoding together with its type tag.
package persist

import (
	"fmt"
	"path/filepath"
	"strings"
)

//go:generate core generate

// Formats are the supported document formats.
type Formats int32 //enums:enum -transform lower

const (
	// TOML is the default format, with the .toml extension.
	TOML Formats = iota

	// YAML has the .yaml or .yml extension.
	YAML

	// JSON has the .json extension.
	JSON

	// XML has the .xml extension.
	XML
)

// FormatOf returns the format of the given file name from its extension.
func FormatOf(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	case ".xml":
		return XML, nil
	}
	return TOML, fmt.Errorf("persist: unknown format for file %q", filename)
}
