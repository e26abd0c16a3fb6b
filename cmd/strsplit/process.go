// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/strsplit"
)

const (
	stdinName = "-"
	// maxLineLen bounds the memory used for a single line of input.
	maxLineLen = 256 << 20
)

// processFiles processes each of the named files, or stdin if there are
// none. Every file is processed even if earlier ones fail, all errors
// encountered are returned.
func processFiles(ctx context.Context, m strsplit.Matcher, md mode, files []string, out writer) error {
	if len(files) == 0 {
		files = []string{stdinName}
	}
	errs := &errors.M{}
	for _, name := range files {
		errs.Append(processFile(ctx, m, md, name, out))
		if ctx.Err() != nil {
			break
		}
	}
	errs.Append(out.Close())
	return errs.Err()
}

func processFile(ctx context.Context, m strsplit.Matcher, md mode, name string, out writer) error {
	if name == stdinName {
		return processReader(ctx, m, md, name, os.Stdin, out)
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return processReader(ctx, m, md, name, f, out)
}

func processReader(ctx context.Context, m strsplit.Matcher, md mode, name string, rd io.Reader, out writer) error {
	logger := ctxlog.Logger(ctx).With("file", name)
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	lines, items := 0, 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lines++
		rec := Record{File: name, Line: lines}
		switch md {
		case firstMode:
			rec.Items = []string{strsplit.UntilMatch(sc.Text(), m)}
		default:
			rec.Items = strsplit.Collect(sc.Text(), m)
		}
		items += len(rec.Items)
		logger.Debug("split", "line", lines, "items", len(rec.Items))
		if err := out.Write(rec); err != nil {
			return fmt.Errorf("%v: line %v: failed to write output: %w", name, lines, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%v: failed reading line %v: %w", name, lines+1, err)
	}
	logger.Info("processed", "lines", lines, "items", items)
	return nil
}
