// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command props reads property documents, validates their values,
// and writes them back in canonical form.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/props/persist"
	"github.com/mitchellh/go-homedir"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the props cli.
type Config struct {

	// Input is the property document to read, in a format given
	// by its extension: .toml, .yaml, .yml, .json or .xml.
	Input string `posarg:"0"`

	// Output is the file to write the canonical document to, in the
	// format given by its extension. If it is not specified, the document
	// is written to standard output in the format of the input.
	Output string `flag:"o,output"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("props", "Props validates property documents and writes them in canonical form.")
	cli.Run(opts, &Config{}, Fmt, Watch)
}

// Fmt reads the input document, restores its properties, clamps their
// values to their bounds, and writes the canonical document.
func Fmt(c *Config) error { //cli:cmd -root
	in, out, err := c.files()
	if err != nil {
		return err
	}
	doc, err := persist.Open(in)
	if err != nil {
		return err
	}
	return write(doc, in, out)
}

// Watch formats the input document like [Fmt], and then again every
// time it changes, until interrupted.
func Watch(c *Config) error {
	in, out, err := c.files()
	if err != nil {
		return err
	}
	if out == in {
		return fmt.Errorf("props watch: output must be different from the input %q", in)
	}
	errors.Log(Fmt(c))
	w, err := persist.Watch(in, func(doc *persist.Document, err error) {
		if err != nil {
			errors.Log(err)
			return
		}
		errors.Log(write(doc, in, out))
	})
	if err != nil {
		return err
	}
	defer w.Close()
	slog.Info("watching", "file", w.Filename())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}

// files returns the absolute input and output file names,
// expanding any home directory. out is "" for standard output.
func (c *Config) files() (in, out string, err error) {
	if c.Input == "" {
		return "", "", fmt.Errorf("props: an input file must be specified")
	}
	in, err = homedir.Expand(c.Input)
	if err != nil {
		return "", "", err
	}
	in, err = filepath.Abs(in)
	if err != nil {
		return "", "", err
	}
	if c.Output == "" {
		return in, "", nil
	}
	out, err = homedir.Expand(c.Output)
	if err != nil {
		return "", "", err
	}
	out, err = filepath.Abs(out)
	return in, out, err
}

// write restores the properties of the given document, validates them,
// and writes the resulting document to out, or to standard output in the
// format of in if out is "".
func write(doc *persist.Document, in, out string) error {
	s, err := doc.NewSet()
	if err != nil {
		return err
	}
	for _, name := range s.Validate() {
		slog.Info("clamped property value", "set", s.Name, "property", name)
	}
	canon := persist.FromSet(s)
	if out != "" {
		return persist.Save(canon, out)
	}
	format, err := persist.FormatOf(in)
	if err != nil {
		return err
	}
	return persist.Write(canon, os.Stdout, format)
}
