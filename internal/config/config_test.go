package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644)
	require.NoError(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ModeStandard, cfg.Optimize.Mode)
	assert.True(t, cfg.Optimize.Backup)
	assert.Equal(t, 1, cfg.Optimize.BlankRunLimit)
	assert.Equal(t, 300, cfg.Watch.DebounceMs)
	assert.False(t, cfg.Watch.Write)
	assert.True(t, cfg.Similar.Enabled)
	assert.InDelta(t, 0.92, cfg.Similar.Threshold, 0.001)
}

func TestLoadKDL_MissingFileIsNil(t *testing.T) {
	cfg, err := LoadKDL(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadKDL_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
project {
    name "myproj"
}
optimize {
    mode "aggressive"
    backup false
    blank_run_limit 2
}
watch {
    debounce_ms 500
    write true
}
similar {
    enabled false
    threshold 0.85
}
categories {
    "Internal Tools" {
        "*.intern"
        "toolcache/"
    }
}
`)

	cfg, err := LoadKDL(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "myproj", cfg.Project.Name)
	assert.Equal(t, ModeAggressive, cfg.Optimize.Mode)
	assert.False(t, cfg.Optimize.Backup)
	assert.Equal(t, 2, cfg.Optimize.BlankRunLimit)
	assert.Equal(t, 500, cfg.Watch.DebounceMs)
	assert.True(t, cfg.Watch.Write)
	assert.False(t, cfg.Similar.Enabled)
	assert.InDelta(t, 0.85, cfg.Similar.Threshold, 0.001)
	assert.Equal(t, []string{"*.intern", "toolcache/"}, cfg.Categories["Internal Tools"])
}

func TestLoadKDL_PartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
optimize {
    mode "conservative"
}
`)

	cfg, err := LoadKDL(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ModeConservative, cfg.Optimize.Mode)
	assert.True(t, cfg.Optimize.Backup)
	assert.Equal(t, 300, cfg.Watch.DebounceMs)
}

func TestLoadKDL_InvalidMode(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
optimize {
    mode "turbo"
}
`)

	_, err := LoadKDL(dir)
	assert.Error(t, err)
}

func TestLoadKDL_RelativeRootResolved(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
project {
    root "sub"
}
`)

	cfg, err := LoadKDL(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sub"), cfg.Project.Root)
}

func TestNormalizeMode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"standard", ModeStandard, false},
		{"AGGRESSIVE", ModeAggressive, false},
		{"  conservative ", ModeConservative, false},
		{"advanced", ModeAdvanced, false},
		{"turbo", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			mode, err := NormalizeMode(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, mode)
		})
	}
}

func TestMerge_ProjectWinsScalars(t *testing.T) {
	base, err := parseKDL(`
optimize {
    mode "aggressive"
}
categories {
    "Shared" {
        "*.shared"
    }
}
`)
	require.NoError(t, err)

	project, err := parseKDL(`
optimize {
    mode "conservative"
}
categories {
    "Local" {
        "*.local"
    }
}
`)
	require.NoError(t, err)

	merged := merge(base, project)
	assert.Equal(t, ModeConservative, merged.Optimize.Mode)
	assert.Equal(t, []string{"*.shared"}, merged.Categories["Shared"])
	assert.Equal(t, []string{"*.local"}, merged.Categories["Local"])
}

func TestMerge_SparseProjectKeepsGlobalBase(t *testing.T) {
	base, err := parseKDL(`
optimize {
    mode "aggressive"
    backup false
}
watch {
    debounce_ms 500
}
`)
	require.NoError(t, err)

	// The project file says nothing about optimize or watch; the global
	// settings must survive the merge untouched.
	project, err := parseKDL(`
project {
    name "p"
}
`)
	require.NoError(t, err)

	merged := merge(base, project)
	assert.Equal(t, ModeAggressive, merged.Optimize.Mode)
	assert.False(t, merged.Optimize.Backup)
	assert.Equal(t, 500, merged.Watch.DebounceMs)
	assert.Equal(t, "p", merged.Project.Name)
}

func TestLoad_GlobalBaseSurvivesSparseProject(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
optimize {
    mode "aggressive"
    backup false
}
`)
	t.Setenv("HOME", home)

	dir := t.TempDir()
	writeConfig(t, dir, `
project {
    name "p"
}
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ModeAggressive, cfg.Optimize.Mode)
	assert.False(t, cfg.Optimize.Backup)
	assert.Equal(t, "p", cfg.Project.Name)
}

func TestLoad_ProjectConfigOnly(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
optimize {
    mode "aggressive"
}
`)

	// Point HOME somewhere without a global config.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ModeAggressive, cfg.Optimize.Mode)
}

func TestLoad_NoConfigUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ModeStandard, cfg.Optimize.Mode)

	abs, _ := filepath.Abs(dir)
	assert.Equal(t, abs, cfg.Project.Root)
}
