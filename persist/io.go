// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package persist

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Read reads a [Document] in the given format from the given reader.
// Unknown keys are an error in every format.
func Read(r io.Reader, format Formats) (*Document, error) {
	doc := &Document{}
	var err error
	switch format {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(doc)
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			err = fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(doc)
		if err == io.EOF {
			err = nil
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(doc)
	case XML:
		err = xml.NewDecoder(r).Decode(doc)
	default:
		err = fmt.Errorf("unknown format %v", format)
	}
	if err != nil {
		return nil, fmt.Errorf("persist.Read %v: %w", format, err)
	}
	return doc, nil
}

// Write writes the given [Document] in the given format to the given writer.
func Write(doc *Document, w io.Writer, format Formats) error {
	var err error
	switch format {
	case TOML:
		err = tomlx.Write(doc, w)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = errors.Join(enc.Encode(doc), enc.Close())
	case JSON:
		err = jsonx.WriteIndent(doc, w)
	case XML:
		enc := xml.NewEncoder(w)
		enc.Indent("", "\t")
		err = enc.Encode(doc)
		if err == nil {
			_, err = io.WriteString(w, "\n")
		}
	default:
		err = fmt.Errorf("unknown format %v", format)
	}
	if err != nil {
		return fmt.Errorf("persist.Write %v: %w", format, err)
	}
	return nil
}

// Open reads a [Document] from the given file, in the format
// given by its extension.
func Open(filename string) (*Document, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, format)
}

// Save writes the given [Document] to the given file, in the format
// given by its extension.
func Save(doc *Document, filename string) error {
	format, err := FormatOf(filename)
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	return errors.Join(Write(doc, f, format), f.Close())
}
