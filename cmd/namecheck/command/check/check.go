// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"context"
	"flag"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/pypi-namecheck/internal/config"
	"github.com/google/pypi-namecheck/internal/httpx"
	"github.com/google/pypi-namecheck/internal/log"
	"github.com/google/pypi-namecheck/internal/pyver"
	"github.com/google/pypi-namecheck/pkg/act/cli"
	"github.com/google/pypi-namecheck/pkg/namecheck"
	"github.com/google/pypi-namecheck/pkg/registry/pypi"
	"github.com/google/pypi-namecheck/pkg/stdlib"
	"github.com/google/pypi-namecheck/pkg/typosquat"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Config holds all configuration for the check command.
type Config struct {
	Name        string
	ConfigFile  string
	IndexURL    string
	ListingFile string
	CorpusFile  string
	UserAgent   string
	Versions    string
	LogLevel    string
}

// Validate ensures the configuration is valid. The name is not checked here:
// an empty name is rejected by the grammar stage, not treated as a usage error.
func (c Config) Validate() error {
	if c.ListingFile == "" {
		u, err := url.Parse(c.IndexURL)
		if err != nil {
			return errors.Wrap(err, "parsing index URL")
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.Errorf("index URL must be http or https: %q", c.IndexURL)
		}
	}
	for _, v := range c.versionList() {
		if _, err := pyver.New(v); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) versionList() []string {
	var out []string
	for _, v := range strings.Split(c.Versions, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// merge fills every unset field from s.
func (c *Config) merge(s *config.Settings) {
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&c.IndexURL, s.IndexURL)
	fill(&c.ListingFile, s.ListingFile)
	fill(&c.CorpusFile, s.CorpusFile)
	fill(&c.UserAgent, s.UserAgent)
	fill(&c.Versions, strings.Join(s.Versions, ","))
	fill(&c.LogLevel, s.LogLevel)
}

// Deps holds dependencies for the command.
type Deps struct {
	IO     cli.IO
	Client httpx.BasicClient
	FS     billy.Filesystem
	Logger zerolog.Logger
}

func (d *Deps) SetIO(cio cli.IO) { d.IO = cio }

// InitDeps initializes Deps.
func InitDeps(_ context.Context, cfg Config) (*Deps, error) {
	if err := log.Configure(log.Config{Level: cfg.LogLevel, Console: true}); err != nil {
		return nil, err
	}
	return &Deps{
		Client: http.DefaultClient,
		FS:     osfs.New("/"),
		Logger: log.WithComponent(log.Base(), "check"),
	}, nil
}

func parseArgs(cfg *Config, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly 1 argument: the proposed project name")
	}
	cfg.Name = args[0]
	s, err := config.Load(cfg.ConfigFile, nil)
	if err != nil {
		return err
	}
	cfg.merge(s)
	return nil
}

// Output is the outcome of an accepted check.
type Output struct {
	Result namecheck.Result
}

// Handler runs the name check and writes its progress to deps.IO.Out.
func Handler(ctx context.Context, cfg Config, deps *Deps) (*Output, error) {
	lister, err := newLister(cfg, deps)
	if err != nil {
		return nil, err
	}
	checker := &namecheck.Checker{
		Lister:  lister,
		Matcher: typosquat.Snyper{},
		LoadReserved: func() (namecheck.ReservedSet, error) {
			r, err := reservedNames(cfg.versionList())
			if err != nil {
				return nil, err
			}
			deps.Logger.Debug().Int("reserved", r.Len()).Msg("standard library names loaded")
			return r, nil
		},
		LoadCorpus: func() (*typosquat.Corpus, error) {
			c, err := loadCorpus(cfg, deps)
			if err != nil {
				return nil, err
			}
			deps.Logger.Debug().Int("corpus", c.Len()).Msg("popular projects loaded")
			return c, nil
		},
		Out: deps.IO.Out,
	}
	start := time.Now()
	res, err := checker.Check(ctx, cfg.Name)
	deps.Logger.Debug().
		Str("name", cfg.Name).
		Stringer("stage", res.Stage).
		Int("listed", res.Listed).
		Dur("elapsed", time.Since(start)).
		Msg("check finished")
	if err != nil {
		if !namecheck.IsRejection(err) {
			deps.Logger.Error().Err(err).Msg("check did not complete")
		}
		return nil, err
	}
	return &Output{Result: res}, nil
}

func newLister(cfg Config, deps *Deps) (namecheck.ProjectLister, error) {
	if cfg.ListingFile != "" {
		path, err := filepath.Abs(cfg.ListingFile)
		if err != nil {
			return nil, errors.Wrap(err, "resolving listing file")
		}
		deps.Logger.Info().Str("path", path).Msg("using listing file")
		return pypi.FileListing{FS: deps.FS, Path: path}, nil
	}
	client := deps.Client
	if cfg.UserAgent != "" {
		client = httpx.UserAgent(client, cfg.UserAgent)
	}
	deps.Logger.Info().Str("index", cfg.IndexURL).Msg("using package index")
	return pypi.HTTPRegistry{Client: client, IndexURL: cfg.IndexURL}, nil
}

func loadCorpus(cfg Config, deps *Deps) (*typosquat.Corpus, error) {
	if cfg.CorpusFile == "" {
		return typosquat.DefaultCorpus(), nil
	}
	path, err := filepath.Abs(cfg.CorpusFile)
	if err != nil {
		return nil, errors.Wrap(err, "resolving corpus file")
	}
	return typosquat.LoadCorpus(deps.FS, path)
}

func reservedNames(versions []string) (*stdlib.Reserved, error) {
	if len(versions) == 0 {
		return stdlib.Default()
	}
	c, err := stdlib.EmbeddedCatalog()
	if err != nil {
		return nil, err
	}
	return stdlib.Build(c, versions...)
}

// ExitCode maps the command's error to the process exit status: 0 on
// acceptance, 1 when the name was rejected and 2 when the check failed.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case namecheck.IsRejection(err):
		return 1
	default:
		return 2
	}
}

// Command creates a new check command instance.
func Command() *cobra.Command {
	cfg := Config{}
	cmd := &cobra.Command{
		Use:   "namecheck [--index-url=URL | --listing-file=PATH] <name>",
		Short: "Check whether a project name may be registered on PyPI",
		Long: `Check a proposed project name against the project name grammar, the
standard library module names, every registered project and a corpus of
popular projects. Exits 0 if the name is available, 1 if it was rejected and
2 if the check could not be completed.

Unset flags fall back to the config file and NAMECHECK_* environment
variables.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: cli.RunE(
			&cfg,
			parseArgs,
			InitDeps,
			Handler,
		),
	}
	cmd.Flags().AddGoFlagSet(flagSet(cmd.Name(), &cfg))
	return cmd
}

// flagSet returns the command-line flags for the Config struct.
func flagSet(name string, cfg *Config) *flag.FlagSet {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	set.StringVar(&cfg.ConfigFile, "config", "", "path to a YAML config file")
	set.StringVar(&cfg.IndexURL, "index-url", "", "simple index to list projects from (default "+pypi.DefaultIndexURL+")")
	set.StringVar(&cfg.ListingFile, "listing-file", "", "read the project listing from a file instead of the index")
	set.StringVar(&cfg.CorpusFile, "corpus-file", "", "newline-separated popular projects to check for typos against")
	set.StringVar(&cfg.UserAgent, "user-agent", "", "User-Agent header sent to the index")
	set.StringVar(&cfg.Versions, "versions", "", "comma-separated Python versions whose standard library is reserved (default all)")
	set.StringVar(&cfg.LogLevel, "log-level", "", "diagnostic log level (default warn)")
	return set
}
