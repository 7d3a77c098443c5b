// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package config loads namecheck settings from defaults, an optional YAML
// file and NAMECHECK_* environment variables.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "NAMECHECK"

// Settings are the tunables that may come from outside the command line.
type Settings struct {
	IndexURL    string   `mapstructure:"index_url"`
	ListingFile string   `mapstructure:"listing_file"`
	CorpusFile  string   `mapstructure:"corpus_file"`
	UserAgent   string   `mapstructure:"user_agent"`
	Versions    []string `mapstructure:"versions"`
	LogLevel    string   `mapstructure:"log_level"`
}

var keys = []string{"index_url", "listing_file", "corpus_file", "user_agent", "versions", "log_level"}

// Defaults are applied beneath the file and the environment.
var Defaults = Settings{
	IndexURL:  "https://pypi.org/simple/",
	UserAgent: "pypi-namecheck",
	LogLevel:  "warn",
}

// Load resolves Settings. When path is empty no file is read. env looks up
// environment variables; nil means the process environment.
func Load(path string, env func(string) (string, bool)) (*Settings, error) {
	v := viper.New()
	setDefaults(v)
	if env == nil {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		for _, k := range keys {
			if err := v.BindEnv(k); err != nil {
				return nil, errors.Wrapf(err, "bind env %s", k)
			}
		}
	} else {
		for _, k := range keys {
			if val, ok := env(EnvPrefix + "_" + strings.ToUpper(k)); ok {
				v.Set(k, val)
			}
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "read config")
		}
	}
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	s.Versions = splitVersions(s.Versions)
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("index_url", Defaults.IndexURL)
	v.SetDefault("user_agent", Defaults.UserAgent)
	v.SetDefault("log_level", Defaults.LogLevel)
	v.SetDefault("listing_file", "")
	v.SetDefault("corpus_file", "")
	v.SetDefault("versions", []string{})
}

// splitVersions accepts both YAML lists and comma-separated strings.
func splitVersions(in []string) []string {
	var out []string
	for _, v := range in {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
