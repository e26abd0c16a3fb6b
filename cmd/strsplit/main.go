// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command strsplit splits each line of its input on a delimiter and
// writes the resulting items as text, JSON or YAML.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

// DelimiterFlags select the delimiter to split on, at most one may be set.
type DelimiterFlags struct {
	Literal string `subcmd:"literal,,split on this literal text"`
	Rune    string `subcmd:"rune,,'split on this single code point, the default is a space'"`
	AnyOf   string `subcmd:"any-of,,split on any one of these code points"`
}

// CommonFlags are shared by all of the sub-commands.
type CommonFlags struct {
	DelimiterFlags
	cmdutil.LoggingFlags
	OutputFormat   string `subcmd:"format,,'output format: text, json or yaml, the default is text'"`
	Config         string `subcmd:"config,,yaml configuration file that supplies defaults for the delimiter and output format"`
	DescribeConfig bool   `subcmd:"describe-config,false,describe the YAML configuration file"`
}

type splitFlags struct {
	CommonFlags
}

type firstFlags struct {
	CommonFlags
}

var (
	cmdSet *subcmd.CommandSet
	stdout io.Writer = os.Stdout
)

func init() {
	splitFlagSet := subcmd.MustRegisterFlagStruct(&splitFlags{}, nil, nil)
	splitCmd := subcmd.NewCommand("split", splitFlagSet, runSplit)
	splitCmd.Document("split each line of the named files, or stdin, into the items separated by the delimiter", "[file...]")

	firstFlagSet := subcmd.MustRegisterFlagStruct(&firstFlags{}, nil, nil)
	firstCmd := subcmd.NewCommand("first", firstFlagSet, runFirst)
	firstCmd.Document("print the text preceding the first delimiter of each line of the named files, or stdin", "[file...]")

	cmdSet = subcmd.NewCommandSet(splitCmd, firstCmd)
	cmdSet.Document(`split lines of text on a literal, a single code point or any of a set of code points.

Input is read from the named files, or from stdin if none are named or a file is named -.
Items are zero-copy views of each line, a trailing delimiter results in a trailing
empty item.`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}

func runSplit(ctx context.Context, values any, args []string) error {
	fv := values.(*splitFlags)
	return run(ctx, &fv.CommonFlags, splitMode, args)
}

func runFirst(ctx context.Context, values any, args []string) error {
	fv := values.(*firstFlags)
	return run(ctx, &fv.CommonFlags, firstMode, args)
}

func run(ctx context.Context, cf *CommonFlags, md mode, args []string) error {
	if cf.DescribeConfig {
		doc, err := describeConfigFile()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(stdout, doc)
		return err
	}
	cfg, err := cf.resolve()
	if err != nil {
		return err
	}
	logger, err := cf.LoggingFlags.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	out, err := newWriter(stdout, cfg.format, md)
	if err != nil {
		return err
	}
	return processFiles(ctx, cfg.matcher, md, args, out)
}
