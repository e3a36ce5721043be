// Package config loads gix settings from .gix.kdl files. A global
// ~/.gix.kdl provides base settings; a project-local .gix.kdl overrides
// them, except custom category tables, which merge additively.
package config

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the KDL configuration file gix looks for.
const ConfigFileName = ".gix.kdl"

// Optimization mode names accepted by config and CLI.
const (
	ModeStandard     = "standard"
	ModeAggressive   = "aggressive"
	ModeConservative = "conservative"
	ModeAdvanced     = "advanced"
)

// Config holds all gix settings.
type Config struct {
	Version  int
	Project  Project
	Optimize Optimize
	Watch    Watch
	Similar  Similar

	// Categories maps user-defined category names to known patterns,
	// layered on top of the built-in knowledge base as Custom entries.
	Categories map[string][]string

	// set records which keys a parsed file actually assigned, so a
	// project config only overrides the global base where it spoke.
	set map[string]bool
}

func (c *Config) markSet(key string) {
	if c.set == nil {
		c.set = make(map[string]bool)
	}
	c.set[key] = true
}

func (c *Config) wasSet(key string) bool { return c.set[key] }

// Project identifies the directory being operated on.
type Project struct {
	Root string
	Name string
}

// Optimize controls the default optimization behavior.
type Optimize struct {
	Mode          string // standard, aggressive, conservative, advanced
	Backup        bool   // write a .backup copy before modifying
	BlankRunLimit int    // max consecutive blank lines kept in aggressive mode
}

// Watch controls watch-mode behavior.
type Watch struct {
	DebounceMs int  // quiet period before re-optimizing after a change
	Write      bool // write optimized output instead of reporting only
}

// Similar controls near-duplicate pattern reporting.
type Similar struct {
	Enabled   bool
	Threshold float64
}

// Default returns the built-in configuration.
func Default() *Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return &Config{
		Version: 1,
		Project: Project{Root: cwd},
		Optimize: Optimize{
			Mode:          ModeStandard,
			Backup:        true,
			BlankRunLimit: 1,
		},
		Watch: Watch{
			DebounceMs: 300,
			Write:      false,
		},
		Similar: Similar{
			Enabled:   true,
			Threshold: 0.92,
		},
		Categories: map[string][]string{},
	}
}

// Load resolves configuration for a project directory: global base from
// the home directory merged with the project's own .gix.kdl. Missing
// files are not an error; defaults fill the gaps.
func Load(projectDir string) (*Config, error) {
	var base *Config
	if home, err := os.UserHomeDir(); err == nil {
		globalCfg, err := LoadKDL(home)
		if err != nil {
			return nil, err
		}
		base = globalCfg
	}

	projectCfg, err := LoadKDL(projectDir)
	if err != nil {
		return nil, err
	}

	switch {
	case base != nil && projectCfg != nil:
		return merge(base, projectCfg), nil
	case projectCfg != nil:
		return projectCfg, nil
	case base != nil:
		base.Project.Root = absOr(projectDir)
		return base, nil
	}

	cfg := Default()
	cfg.Project.Root = absOr(projectDir)
	return cfg, nil
}

// merge layers a project config over a base config. Only settings the
// project file actually assigned override the base; custom category
// tables combine. The project root always comes from the project side.
func merge(base, project *Config) *Config {
	merged := *base
	merged.Project.Root = project.Project.Root

	if project.wasSet("project.name") {
		merged.Project.Name = project.Project.Name
	}
	if project.wasSet("optimize.mode") {
		merged.Optimize.Mode = project.Optimize.Mode
	}
	if project.wasSet("optimize.backup") {
		merged.Optimize.Backup = project.Optimize.Backup
	}
	if project.wasSet("optimize.blank_run_limit") {
		merged.Optimize.BlankRunLimit = project.Optimize.BlankRunLimit
	}
	if project.wasSet("watch.debounce_ms") {
		merged.Watch.DebounceMs = project.Watch.DebounceMs
	}
	if project.wasSet("watch.write") {
		merged.Watch.Write = project.Watch.Write
	}
	if project.wasSet("similar.enabled") {
		merged.Similar.Enabled = project.Similar.Enabled
	}
	if project.wasSet("similar.threshold") {
		merged.Similar.Threshold = project.Similar.Threshold
	}

	categories := make(map[string][]string, len(base.Categories)+len(project.Categories))
	for name, patterns := range base.Categories {
		categories[name] = append([]string(nil), patterns...)
	}
	for name, patterns := range project.Categories {
		categories[name] = append(categories[name], patterns...)
	}
	merged.Categories = categories

	return &merged
}

func absOr(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}
