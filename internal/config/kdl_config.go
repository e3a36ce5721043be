package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	gixerrors "github.com/standardbeagle/gix/internal/errors"
)

// LoadKDL attempts to load configuration from a .gix.kdl file in dir.
// Returns (nil, nil) when no config file exists there.
func LoadKDL(dir string) (*Config, error) {
	kdlPath := filepath.Join(dir, ConfigFileName)

	if _, err := os.Stat(kdlPath); os.IsNotExist(err) {
		return nil, nil
	}

	content, err := os.ReadFile(kdlPath)
	if err != nil {
		return nil, gixerrors.NewFileError("read", kdlPath, err)
	}

	cfg, err := parseKDL(string(content))
	if err != nil {
		return nil, err
	}

	// Resolve a relative root against the config file's directory.
	if cfg.Project.Root != "" && !filepath.IsAbs(cfg.Project.Root) {
		cfg.Project.Root = filepath.Clean(filepath.Join(dir, cfg.Project.Root))
	} else if cfg.Project.Root == "" {
		cfg.Project.Root = absOr(dir)
	}

	return cfg, nil
}

// parseKDL walks the KDL document and fills a Config over the defaults.
func parseKDL(content string) (*Config, error) {
	cfg := Default()
	cfg.Project.Root = ""

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, gixerrors.NewConfigError("kdl", "", fmt.Errorf("failed to parse %s: %w", ConfigFileName, err))
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "project":
			for _, cn := range n.Children {
				assignSimpleString(cn, "root", func(v string) {
					cfg.Project.Root = v
					cfg.markSet("project.root")
				})
				assignSimpleString(cn, "name", func(v string) {
					cfg.Project.Name = v
					cfg.markSet("project.name")
				})
			}
		case "optimize":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "mode":
					if s, ok := firstStringArg(cn); ok {
						mode, err := NormalizeMode(s)
						if err != nil {
							return nil, err
						}
						cfg.Optimize.Mode = mode
						cfg.markSet("optimize.mode")
					}
				case "backup":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Optimize.Backup = b
						cfg.markSet("optimize.backup")
					}
				case "blank_run_limit":
					if v, ok := firstIntArg(cn); ok && v >= 1 {
						cfg.Optimize.BlankRunLimit = v
						cfg.markSet("optimize.blank_run_limit")
					}
				}
			}
		case "watch":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "debounce_ms":
					if v, ok := firstIntArg(cn); ok {
						cfg.Watch.DebounceMs = v
						cfg.markSet("watch.debounce_ms")
					}
				case "write":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Watch.Write = b
						cfg.markSet("watch.write")
					}
				}
			}
		case "similar":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "enabled":
					if b, ok := firstBoolArg(cn); ok {
						cfg.Similar.Enabled = b
						cfg.markSet("similar.enabled")
					}
				case "threshold":
					if v, ok := firstFloatArg(cn); ok {
						cfg.Similar.Threshold = v
						cfg.markSet("similar.threshold")
					}
				}
			}
		case "categories":
			// categories { "Name" { "pattern1"; "pattern2" } }
			for _, cn := range n.Children {
				name := nodeName(cn)
				if name == "" {
					continue
				}
				patterns := collectStringArgs(cn)
				if len(patterns) > 0 {
					cfg.Categories[name] = append(cfg.Categories[name], patterns...)
				}
			}
		}
	}

	return cfg, nil
}

// NormalizeMode validates and canonicalizes an optimization mode name.
func NormalizeMode(mode string) (string, error) {
	m := strings.ToLower(strings.TrimSpace(mode))
	switch m {
	case ModeStandard, ModeAggressive, ModeConservative, ModeAdvanced:
		return m, nil
	default:
		return "", gixerrors.NewConfigError("mode", mode,
			fmt.Errorf("must be one of %s, %s, %s, %s",
				ModeStandard, ModeAggressive, ModeConservative, ModeAdvanced))
	}
}

// Helper functions leveraging the kdl-go document model.
func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	if s, ok := n.Name.Value.(string); ok {
		return s
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}

	// Block format: each child node's name is the string value.
	if len(out) == 0 && len(n.Children) > 0 {
		out = make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}

	return out
}

func assignSimpleString(n *document.Node, target string, set func(string)) {
	if nodeName(n) == target {
		if s, ok := firstStringArg(n); ok {
			set(s)
		}
	}
}
