// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"unicode/utf8"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/structdoc"
	"cloudeng.io/strsplit"
)

// Config represents the optional YAML configuration file.
type Config struct {
	Delimiter Delimiter `yaml:"delimiter" cmd:"the delimiter to split on, at most one of literal, rune or any_of may be set"`
	Format    string    `yaml:"format" cmd:"output format: text, json or yaml"`
}

// Delimiter represents the delimiter to split on.
type Delimiter struct {
	Literal string `yaml:"literal" cmd:"split on this literal text"`
	Rune    string `yaml:"rune" cmd:"split on this single code point"`
	AnyOf   string `yaml:"any_of" cmd:"split on any one of these code points"`
}

type config struct {
	format  string
	matcher strsplit.Matcher
}

func configFromFile(filename string) (Config, error) {
	var cfg Config
	if len(filename) == 0 {
		return cfg, nil
	}
	if err := cmdutil.ParseYAMLConfigFile(filename, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func describeConfigFile() (string, error) {
	desc, err := structdoc.Describe(&Config{}, "cmd", "YAML configuration file options\n")
	if err != nil {
		return "", err
	}
	return desc.String(), nil
}

// resolve merges the command line flags with the configuration file,
// if any, with the flags taking precedence.
func (cf *CommonFlags) resolve() (config, error) {
	fileCfg, err := configFromFile(cf.Config)
	if err != nil {
		return config{}, err
	}
	delim := Delimiter(cf.DelimiterFlags)
	if delim == (Delimiter{}) {
		delim = fileCfg.Delimiter
	}
	m, err := delim.matcher()
	if err != nil {
		return config{}, err
	}
	cfg := config{format: cf.OutputFormat, matcher: m}
	if len(cfg.format) == 0 {
		cfg.format = fileCfg.Format
	}
	if len(cfg.format) == 0 {
		cfg.format = "text"
	}
	return cfg, nil
}

func (d Delimiter) matcher() (strsplit.Matcher, error) {
	n := 0
	for _, v := range []string{d.Literal, d.Rune, d.AnyOf} {
		if len(v) > 0 {
			n++
		}
	}
	if n > 1 {
		return nil, fmt.Errorf("only one of a literal (%q), rune (%q) or any-of (%q) delimiter may be specified", d.Literal, d.Rune, d.AnyOf)
	}
	switch {
	case len(d.Literal) > 0:
		return strsplit.Literal(d.Literal), nil
	case len(d.AnyOf) > 0:
		if !utf8.ValidString(d.AnyOf) {
			return nil, fmt.Errorf("any-of delimiter %q is not valid UTF-8", d.AnyOf)
		}
		return strsplit.AnyOf(d.AnyOf), nil
	case len(d.Rune) > 0:
		r, size := utf8.DecodeRuneInString(d.Rune)
		if (r == utf8.RuneError && size == 1) || size != len(d.Rune) {
			return nil, fmt.Errorf("rune delimiter %q is not a single valid code point", d.Rune)
		}
		return strsplit.Rune(r), nil
	}
	return strsplit.Rune(' '), nil
}
