package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/gix/internal/analysis"
	"github.com/standardbeagle/gix/internal/category"
	"github.com/standardbeagle/gix/internal/comments"
	"github.com/standardbeagle/gix/internal/config"
	"github.com/standardbeagle/gix/internal/display"
	"github.com/standardbeagle/gix/internal/fileio"
	"github.com/standardbeagle/gix/internal/optimize"
	"github.com/standardbeagle/gix/internal/parser"
	"github.com/standardbeagle/gix/internal/suggest"
	"github.com/standardbeagle/gix/internal/types"
	"github.com/standardbeagle/gix/internal/version"
	"github.com/standardbeagle/gix/internal/watch"
)

var Version = version.Version // Use centralized version management

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	dir := c.String("root")
	if dir == "" {
		dir = "."
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	if mode := c.String("mode"); mode != "" {
		normalized, err := config.NormalizeMode(mode)
		if err != nil {
			return nil, err
		}
		cfg.Optimize.Mode = normalized
	}
	if c.IsSet("backup") {
		cfg.Optimize.Backup = c.Bool("backup")
	}
	if c.IsSet("similar-threshold") {
		cfg.Similar.Threshold = c.Float64("similar-threshold")
	}

	return cfg, nil
}

func formatter(c *cli.Context) *display.ReportFormatter {
	format := "text"
	if c.Bool("json") {
		format = "json"
	}
	return display.NewReportFormatter(display.ReporterOptions{
		Format:  format,
		Verbose: c.Bool("verbose"),
	})
}

// targetPath resolves the positional argument (file or directory,
// default current directory) to a gitignore file path.
func targetPath(c *cli.Context) (string, error) {
	arg := c.Args().First()
	if arg == "" {
		arg = "."
	}
	return fileio.ResolveTarget(arg)
}

func loadFile(path string) (*types.File, string, error) {
	content, err := fileio.Read(path)
	if err != nil {
		return nil, "", err
	}
	return parser.Parse(content), content, nil
}

// runOptimize is the default action: read, optimize per the configured
// mode, report, and write back.
func runOptimize(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	path, err := targetPath(c)
	if err != nil {
		return err
	}

	before, _, err := loadFile(path)
	if err != nil {
		return err
	}

	// Reject malformed patterns up front; nothing is written on error.
	if err := analysis.ValidateAll(before.PatternStrings()); err != nil {
		return err
	}

	az := analysis.NewAnalyzer()
	opt := optimize.New(az)

	var after *types.File
	var conflicts []analysis.Conflict

	switch cfg.Optimize.Mode {
	case config.ModeAggressive:
		after = opt.OptimizeAggressiveN(before, cfg.Optimize.BlankRunLimit)
	case config.ModeAdvanced:
		after, conflicts = opt.OptimizeWithConflicts(before)
	default:
		// conservative keeps the same semantics as standard
		after = opt.Optimize(before)
	}

	rf := formatter(c)

	if c.Bool("dry-run") {
		fmt.Fprint(c.App.Writer, display.DryRunDiff(before, after))
		if c.Bool("stats") {
			fmt.Fprint(c.App.Writer, rf.FormatOptimization(path, before, after))
		}
		return nil
	}

	output := path
	if out := c.String("output"); out != "" {
		output = out
	}

	// Back up only when overwriting the original in place.
	if cfg.Optimize.Backup && output == path {
		if _, err := fileio.Backup(path); err != nil {
			return err
		}
	}

	rendered := after.Render()
	if err := fileio.WriteAtomic(output, rendered); err != nil {
		return err
	}

	fmt.Fprint(c.App.Writer, rf.FormatOptimization(path, before, after))

	if c.Bool("detect-conflicts") || cfg.Optimize.Mode == config.ModeAdvanced {
		if conflicts == nil {
			conflicts = az.FindConflicts(before.PatternStrings())
		}
		fmt.Fprint(c.App.Writer, rf.FormatConflicts(conflicts))
	}

	if cfg.Similar.Enabled {
		pairs := az.FindSimilar(after.PatternStrings(), cfg.Similar.Threshold)
		fmt.Fprint(c.App.Writer, rf.FormatSimilar(pairs))
	}

	if c.Bool("show-categories") {
		cat := categorizerFromConfig(cfg)
		summary := cat.Summarize(after.PatternStrings())
		fmt.Fprint(c.App.Writer, rf.FormatCategories(&summary))
	}

	if c.Bool("generate-comments") {
		gen := comments.NewGenerator()
		fmt.Fprint(c.App.Writer, display.AnnotatePatterns(after, gen, az))
	}

	return nil
}

// runAnalyze reports pattern statistics and conflicts without modifying
// the file.
func runAnalyze(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	path, err := targetPath(c)
	if err != nil {
		return err
	}

	file, _, err := loadFile(path)
	if err != nil {
		return err
	}

	az := analysis.NewAnalyzer()
	summary := az.Summarize(file.PatternStrings())

	rf := formatter(c)
	fmt.Fprint(c.App.Writer, rf.FormatAnalysis(path, &summary))

	if c.Bool("group") {
		cat := categorizerFromConfig(cfg)
		fmt.Fprint(c.App.Writer, display.GroupedByCategory(file, cat))
	}

	if c.Bool("show-categories") {
		cat := categorizerFromConfig(cfg)
		catSummary := cat.Summarize(file.PatternStrings())
		fmt.Fprint(c.App.Writer, rf.FormatCategories(&catSummary))
	}

	if cfg.Similar.Enabled {
		pairs := az.FindSimilar(file.PatternStrings(), cfg.Similar.Threshold)
		fmt.Fprint(c.App.Writer, rf.FormatSimilar(pairs))
	}

	return nil
}

// runSuggest proposes patterns from the project's build configuration.
func runSuggest(c *cli.Context) error {
	root := c.Args().First()
	if root == "" {
		root = "."
	}

	detector := suggest.NewDetector(root)

	var suggestions []suggest.Suggestion
	path, err := fileio.ResolveTarget(root)
	if err == nil {
		file, _, loadErr := loadFile(path)
		if loadErr != nil {
			return loadErr
		}
		suggestions = detector.Missing(file)
	} else {
		// No gitignore yet; everything detected is a suggestion.
		suggestions = detector.Suggestions()
	}

	if len(suggestions) == 0 {
		fmt.Fprintln(c.App.Writer, "No suggestions")
		return nil
	}

	for _, s := range suggestions {
		fmt.Fprintf(c.App.Writer, "%s\t# from %s\n", s.Pattern, s.Source)
	}
	return nil
}

// runWatch keeps re-optimizing the file as it changes.
func runWatch(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	path, err := targetPath(c)
	if err != nil {
		return err
	}

	write := cfg.Watch.Write || c.Bool("write")
	rf := formatter(c)
	az := analysis.NewAnalyzer()
	opt := optimize.New(az)

	var watcher *watch.Watcher
	onChange := func(path, content string) error {
		before := parser.Parse(content)

		var after *types.File
		if cfg.Optimize.Mode == config.ModeAggressive {
			after = opt.OptimizeAggressiveN(before, cfg.Optimize.BlankRunLimit)
		} else {
			after = opt.Optimize(before)
		}

		if !write {
			fmt.Fprint(c.App.Writer, rf.FormatOptimization(path, before, after))
			return nil
		}

		rendered := after.Render()
		if rendered == content {
			return nil
		}
		if err := watcher.WriteThrough(rendered); err != nil {
			return err
		}
		fmt.Fprint(c.App.Writer, rf.FormatOptimization(path, before, after))
		return nil
	}

	debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
	watcher, err = watch.NewWatcher(path, debounce, onChange)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(c.App.Writer, "Watching %s\n", path)
	if err := watcher.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// categorizerFromConfig layers user-defined category tables over the
// built-in knowledge base.
func categorizerFromConfig(cfg *config.Config) *category.Categorizer {
	if len(cfg.Categories) == 0 {
		return category.NewCategorizer()
	}

	kb := category.DefaultKnowledgeBase()
	extra := category.KnowledgeBase{Custom: cfg.Categories}
	return category.NewCategorizerWithBase(kb.Merge(extra))
}

func main() {
	app := &cli.App{
		Name:                   "gix",
		Usage:                  "Analyze and optimize .gitignore files",
		Version:                Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Project root for config resolution (overrides cwd)",
			},
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Usage:   "Optimization mode: standard, aggressive, conservative, advanced",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write optimized output to this path instead of in place",
			},
			&cli.BoolFlag{
				Name:    "backup",
				Aliases: []string{"b"},
				Usage:   "Write a .backup copy before modifying the file",
				Value:   true,
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Show what would change without writing",
			},
			&cli.BoolFlag{
				Name:    "stats",
				Aliases: []string{"s"},
				Usage:   "Show before/after statistics",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Verbose output",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Output as JSON",
			},
			&cli.BoolFlag{
				Name:  "detect-conflicts",
				Usage: "Report negation patterns that conflict with ignore patterns",
			},
			&cli.BoolFlag{
				Name:  "generate-comments",
				Usage: "Print explanatory comments for each pattern",
			},
			&cli.BoolFlag{
				Name:  "show-categories",
				Usage: "Show a category breakdown of patterns",
			},
			&cli.Float64Flag{
				Name:  "similar-threshold",
				Usage: "Similarity threshold for near-duplicate reporting",
				Value: analysis.DefaultSimilarityThreshold,
			},
		},
		Action: runOptimize,
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Aliases:   []string{"a"},
				Usage:     "Analyze a gitignore file without modifying it",
				ArgsUsage: "[file or directory]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "group",
						Usage: "Print patterns grouped under category headers",
					},
				},
				Action: runAnalyze,
			},
			{
				Name:      "suggest",
				Usage:     "Suggest patterns from the project's build configuration",
				ArgsUsage: "[directory]",
				Action:    runSuggest,
			},
			{
				Name:      "watch",
				Aliases:   []string{"w"},
				Usage:     "Re-optimize whenever the file changes",
				ArgsUsage: "[file or directory]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "write",
						Usage: "Write optimized output instead of reporting only",
					},
				},
				Action: runWatch,
			},
			{
				Name:  "version",
				Usage: "Show version information",
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, version.FullInfo())
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
