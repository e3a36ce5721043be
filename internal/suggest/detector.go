// Package suggest proposes gitignore patterns by inspecting a project's
// build configuration. It parses package.json, tsconfig.json, vite
// configs, Cargo.toml, and pyproject.toml for declared output
// directories, and falls back to well-known defaults for each toolchain
// it finds evidence of.
package suggest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/standardbeagle/gix/internal/analysis"
	"github.com/standardbeagle/gix/internal/types"
)

// Suggestion is a proposed gitignore pattern with the reason it was
// suggested.
type Suggestion struct {
	Pattern string
	Source  string // config file or toolchain that motivated it
}

// Detector inspects a project root for build outputs worth ignoring.
type Detector struct {
	root string
}

// NewDetector creates a detector for the given project root.
func NewDetector(root string) *Detector {
	return &Detector{root: root}
}

// Suggestions scans the project's build configuration and returns
// deduplicated pattern suggestions in detection order.
func (d *Detector) Suggestions() []Suggestion {
	var out []Suggestion
	out = append(out, d.javascript()...)
	out = append(out, d.rust()...)
	out = append(out, d.golang()...)
	out = append(out, d.python()...)

	seen := make(map[string]bool, len(out))
	deduped := out[:0]
	for _, s := range out {
		if s.Pattern == "" {
			continue
		}
		if !seen[s.Pattern] {
			seen[s.Pattern] = true
			deduped = append(deduped, s)
		}
	}
	return deduped
}

// Missing filters suggestions down to those not already covered by the
// file's patterns, judged by pattern equivalence.
func (d *Detector) Missing(file *types.File) []Suggestion {
	az := analysis.NewAnalyzer()
	existing := file.PatternStrings()

	var missing []Suggestion
	for _, s := range d.Suggestions() {
		covered := false
		for _, p := range existing {
			if az.AreEquivalent(s.Pattern, p) {
				covered = true
				break
			}
		}
		if !covered {
			missing = append(missing, s)
		}
	}
	return missing
}

func (d *Detector) javascript() []Suggestion {
	var out []Suggestion

	pkgPath := filepath.Join(d.root, "package.json")
	if data, err := os.ReadFile(pkgPath); err == nil {
		var pkg struct {
			Scripts map[string]string `json:"scripts"`
			Build   struct {
				OutDir string `json:"outDir"`
			} `json:"build"`
		}
		if json.Unmarshal(data, &pkg) == nil {
			out = append(out,
				Suggestion{Pattern: "node_modules/", Source: "package.json"})
			for _, script := range pkg.Scripts {
				if dir := outDirFromScript(script); dir != "" {
					out = append(out, Suggestion{Pattern: dirPattern(dir), Source: "package.json"})
				}
			}
			if pkg.Build.OutDir != "" {
				out = append(out, Suggestion{Pattern: dirPattern(pkg.Build.OutDir), Source: "package.json"})
			}
		}
	}

	tsPath := filepath.Join(d.root, "tsconfig.json")
	if data, err := os.ReadFile(tsPath); err == nil {
		var ts struct {
			CompilerOptions struct {
				OutDir string `json:"outDir"`
			} `json:"compilerOptions"`
		}
		if json.Unmarshal(data, &ts) == nil && ts.CompilerOptions.OutDir != "" {
			out = append(out, Suggestion{Pattern: dirPattern(ts.CompilerOptions.OutDir), Source: "tsconfig.json"})
		}
	}

	for _, name := range []string{"vite.config.js", "vite.config.ts"} {
		data, err := os.ReadFile(filepath.Join(d.root, name))
		if err != nil {
			continue
		}
		if dir := outDirFromViteConfig(string(data)); dir != "" {
			out = append(out, Suggestion{Pattern: dirPattern(dir), Source: name})
		} else {
			// Vite's default output directory.
			out = append(out, Suggestion{Pattern: "dist/", Source: name})
		}
	}

	return out
}

func (d *Detector) rust() []Suggestion {
	data, err := os.ReadFile(filepath.Join(d.root, "Cargo.toml"))
	if err != nil {
		return nil
	}

	out := []Suggestion{{Pattern: "target/", Source: "Cargo.toml"}}

	var cargo struct {
		Profile map[string]struct {
			TargetDir string `toml:"target-dir"`
		} `toml:"profile"`
	}
	if toml.Unmarshal(data, &cargo) == nil {
		for _, profile := range cargo.Profile {
			if profile.TargetDir != "" {
				out = append(out, Suggestion{Pattern: dirPattern(profile.TargetDir), Source: "Cargo.toml"})
			}
		}
	}
	return out
}

func (d *Detector) golang() []Suggestion {
	if _, err := os.Stat(filepath.Join(d.root, "go.mod")); err != nil {
		return nil
	}
	// Go has no configured output directory; suggest the conventional
	// bin directory only when it exists.
	if info, err := os.Stat(filepath.Join(d.root, "bin")); err == nil && info.IsDir() {
		return []Suggestion{{Pattern: "bin/", Source: "go.mod"}}
	}
	return nil
}

func (d *Detector) python() []Suggestion {
	data, err := os.ReadFile(filepath.Join(d.root, "pyproject.toml"))
	if err != nil {
		return nil
	}

	out := []Suggestion{
		{Pattern: "__pycache__/", Source: "pyproject.toml"},
		{Pattern: "*.pyc", Source: "pyproject.toml"},
		{Pattern: "dist/", Source: "pyproject.toml"},
		{Pattern: "build/", Source: "pyproject.toml"},
	}

	var pyproject struct {
		Tool struct {
			Poetry struct {
				Build struct {
					TargetDir string `toml:"target-dir"`
				} `toml:"build"`
			} `toml:"poetry"`
		} `toml:"tool"`
	}
	if toml.Unmarshal(data, &pyproject) == nil {
		if dir := pyproject.Tool.Poetry.Build.TargetDir; dir != "" {
			out = append(out, Suggestion{Pattern: dirPattern(dir), Source: "pyproject.toml"})
		}
	}
	return out
}

// outDirFromScript extracts an --outDir argument from a build script.
func outDirFromScript(script string) string {
	parts := strings.Fields(script)
	for i, part := range parts {
		if (part == "--outDir" || part == "-outDir") && i+1 < len(parts) {
			return strings.Trim(parts[i+1], `"'`)
		}
	}
	return ""
}

// outDirFromViteConfig pulls the first quoted outDir value out of a vite
// config without evaluating it.
func outDirFromViteConfig(content string) string {
	idx := strings.Index(content, "outDir")
	if idx == -1 {
		return ""
	}
	rest := content[idx+len("outDir"):]
	colon := strings.Index(rest, ":")
	if colon == -1 {
		return ""
	}
	rest = rest[colon+1:]
	for _, quote := range []string{"'", `"`} {
		if strings.Contains(rest, quote) {
			parts := strings.Split(rest, quote)
			if len(parts) >= 2 {
				if dir := strings.TrimSpace(parts[1]); dir != "" {
					return dir
				}
			}
			return ""
		}
	}
	return ""
}

// dirPattern turns a directory name into a directory-only gitignore
// pattern.
func dirPattern(dir string) string {
	dir = strings.Trim(dir, "/")
	if dir == "" {
		return ""
	}
	return dir + "/"
}
