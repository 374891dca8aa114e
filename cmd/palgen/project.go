package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/alnah/palgen"
	"github.com/alnah/palgen/internal/config"
	"github.com/alnah/palgen/internal/fileutil"
	"github.com/alnah/palgen/internal/git"
	"github.com/alnah/palgen/internal/hints"
)

// project is a resolved palgen invocation: where the project lives and the
// settings that apply to it.
type project struct {
	root       string
	cfg        *config.Config // resolved against its preset
	configPath string         // empty when no config file was found
}

// loadProject resolves the project root and layers the configuration:
// flags > env vars > config file > preset.
func loadProject(ctx context.Context, f *pipelineFlags, args []string, env *Environment) (*project, error) {
	envCfg := loadEnvConfig(env.Getenv)
	if !f.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	root, err := resolveRoot(ctx, args, env)
	if err != nil {
		return nil, err
	}

	name := f.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	cfg, configPath, err := loadConfig(root, name)
	if err != nil {
		return nil, err
	}

	applyEnvConfig(envCfg, cfg)
	if err := mergeFlags(f, cfg); err != nil {
		return nil, err
	}

	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	return &project{root: root, cfg: resolved, configPath: configPath}, nil
}

// resolveRoot returns the project root: the positional argument, else the
// top level of the enclosing git repository, else the working directory.
func resolveRoot(ctx context.Context, args []string, env *Environment) (string, error) {
	if len(args) > 0 {
		root, err := filepath.Abs(args[0])
		if err != nil {
			return "", fmt.Errorf("resolving project root: %w", err)
		}
		if !fileutil.DirExists(root) {
			return "", fmt.Errorf("%w: project root %s is not a directory", ErrUsage, args[0])
		}
		return root, nil
	}

	wd, err := env.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	client := git.NewClient()
	client.Bin = env.GitBin
	if top, err := client.RepoRoot(ctx, wd); err == nil && top != "" {
		return top, nil
	}
	return wd, nil
}

// loadConfig finds the config file. An explicit name must exist; otherwise
// palgen.{yaml,yml,toml} is looked up in the project root, then in the
// working directory and user config dir, and defaults apply when none exists.
func loadConfig(root, name string) (*config.Config, string, error) {
	if name != "" {
		cfg, path, err := config.LoadConfig(name)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, "", fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return cfg, path, err
	}

	for _, ext := range config.Extensions {
		path := filepath.Join(root, config.DefaultName+ext)
		if fileutil.FileExists(path) {
			return config.LoadConfig(path)
		}
	}

	cfg, path, err := config.LoadConfig(config.DefaultName)
	if errors.Is(err, config.ErrConfigNotFound) {
		return &config.Config{}, "", nil
	}
	return cfg, path, err
}

// request returns the generator request for the project.
func (p *project) request() palgen.Request {
	return p.cfg.Request(p.root)
}

// generator builds a Generator wired to git and the configured templates.
func (p *project) generator(env *Environment, verbose bool) (*palgen.Generator, error) {
	var syncer palgen.Syncer = palgen.NoopSyncer{}
	if p.cfg.SyncEnabled() {
		gs := palgen.GitSyncer{Bin: env.GitBin, Submodule: p.cfg.Source.Submodule}
		if verbose {
			gs.Progress = env.Stderr
		}
		syncer = gs
	}

	opts := []palgen.Option{
		palgen.WithSyncer(syncer),
		palgen.WithExtension(p.cfg.Source.Extension),
	}
	if dir := p.cfg.Output.TemplateDir; dir != "" {
		loader, err := palgen.NewTemplateLoader(fileutil.ResolveUnder(p.root, dir))
		if err != nil {
			return nil, err
		}
		opts = append(opts, palgen.WithTemplateLoader(loader))
	}
	return palgen.New(opts...), nil
}

// withHint appends the actionable hint matching err, if any.
func (p *project) withHint(err error) error {
	var hint string
	switch {
	case errors.Is(err, palgen.ErrSyncUnavailable):
		hint = hints.ForSyncUnavailable()
	case errors.Is(err, palgen.ErrSync):
		hint = hints.ForSyncFailed(p.cfg.Source.Dir)
	case errors.Is(err, palgen.ErrSourceRead):
		hint = hints.ForSourceMissing(!p.cfg.SyncEnabled())
	case errors.Is(err, palgen.ErrWriteOutput):
		hint = hints.ForOutputDirectory()
	case errors.Is(err, palgen.ErrTemplateNotFound):
		hint = hints.ForTemplateNotFound(palgen.TemplateNames())
	case errors.Is(err, palgen.ErrStale):
		hint = hints.ForStale()
	default:
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
