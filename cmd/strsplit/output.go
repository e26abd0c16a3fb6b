// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"cloudeng.io/logging"
	"gopkg.in/yaml.v3"
)

type mode int

const (
	splitMode mode = iota
	firstMode
)

// Record represents the items for a single line of input.
type Record struct {
	File  string   `json:"file" yaml:"file"`
	Line  int      `json:"line" yaml:"line"`
	Items []string `json:"items" yaml:"items,flow"`
}

type writer interface {
	Write(rec Record) error
	Close() error
}

func newWriter(out io.Writer, format string, md mode) (writer, error) {
	switch format {
	case "text":
		sep := "\t"
		if md == firstMode {
			sep = ""
		}
		return &textWriter{out: out, sep: sep}, nil
	case "json":
		return &jsonWriter{fmt: logging.NewJSONFormatter(out, "", "")}, nil
	case "yaml":
		return &yamlWriter{enc: yaml.NewEncoder(out)}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q, must be one of text, json or yaml", format)
}

type textWriter struct {
	out io.Writer
	sep string
}

func (tw *textWriter) Write(rec Record) error {
	_, err := fmt.Fprintln(tw.out, strings.Join(rec.Items, tw.sep))
	return err
}

func (tw *textWriter) Close() error {
	return nil
}

type jsonWriter struct {
	fmt *logging.JSONFormatter
}

func (jw *jsonWriter) Write(rec Record) error {
	return jw.fmt.Format(rec)
}

func (jw *jsonWriter) Close() error {
	return nil
}

type yamlWriter struct {
	enc *yaml.Encoder
}

func (yw *yamlWriter) Write(rec Record) error {
	return yw.enc.Encode(rec)
}

func (yw *yamlWriter) Close() error {
	return yw.enc.Close()
}
