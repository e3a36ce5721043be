package category

// KnowledgeBase maps category names to the ecosystem patterns known to
// belong to them. It is assembled once at categorizer construction and
// treated as read-only afterwards, so a single instance is safe to share
// across goroutines.
type KnowledgeBase struct {
	Languages        map[string][]string
	Frameworks       map[string][]string
	Tools            map[string][]string
	OperatingSystems map[string][]string

	// Custom holds user-configured category tables. These take
	// precedence over every built-in group.
	Custom map[string][]string
}

// Merge folds additional entries into a copy of the knowledge base and
// returns the copy; the receiver is left untouched. Used to layer
// user-configured patterns on top of the defaults.
func (kb KnowledgeBase) Merge(other KnowledgeBase) KnowledgeBase {
	merged := KnowledgeBase{
		Languages:        mergeGroups(kb.Languages, other.Languages),
		Frameworks:       mergeGroups(kb.Frameworks, other.Frameworks),
		Tools:            mergeGroups(kb.Tools, other.Tools),
		OperatingSystems: mergeGroups(kb.OperatingSystems, other.OperatingSystems),
		Custom:           mergeGroups(kb.Custom, other.Custom),
	}
	return merged
}

func mergeGroups(base, extra map[string][]string) map[string][]string {
	out := make(map[string][]string, len(base)+len(extra))
	for name, patterns := range base {
		out[name] = append([]string(nil), patterns...)
	}
	for name, patterns := range extra {
		out[name] = append(out[name], patterns...)
	}
	return out
}

// DefaultKnowledgeBase returns the built-in pattern tables for common
// languages, frameworks, tools, and operating systems.
func DefaultKnowledgeBase() KnowledgeBase {
	return KnowledgeBase{
		Languages: map[string][]string{
			"Python": {
				"*.py[cod]", "*.so", "__pycache__/", "*.egg", "*.egg-info/",
				"dist/", "build/", "eggs/", "parts/", "bin/", "var/", "sdist/",
				"develop-eggs/", ".installed.cfg", "*.manifest", "*.spec",
				"pip-log.txt", "pip-delete-this-directory.txt", ".Python",
				"env/", "venv/", "ENV/", "env.bak/", "venv.bak/",
				".pytest_cache/", ".coverage", "htmlcov/", ".tox/", ".nox/",
				".cache", ".mypy_cache/", ".dmypy.json", "dmypy.json",
			},
			"Node.js": {
				"node_modules/", "npm-debug.log*", "yarn-debug.log*",
				"yarn-error.log*", "lerna-debug.log*", ".npm", ".eslintcache",
				".node_repl_history", "*.tgz", ".yarn-integrity", ".env.local",
				".env.development.local", ".env.test.local",
				".env.production.local", "coverage/", ".nyc_output", ".grunt",
				"bower_components/", ".lock-wscript", "build/Release",
				".next/", "out/",
			},
			"Java": {
				"*.class", "*.log", "*.ctxt", ".mtj.tmp/", "*.jar", "*.war",
				"*.nar", "*.ear", "*.zip", "*.tar.gz", "*.rar", "hs_err_pid*",
				"replay_pid*", "target/", "!.mvn/wrapper/maven-wrapper.jar",
				"!**/src/main/**/target/", "!**/src/test/**/target/",
				".idea/", "*.iws", "*.iml", "*.ipr", ".gradle/", "build/",
				"!gradle/wrapper/gradle-wrapper.jar",
			},
			"Rust": {
				"target/", "Cargo.lock", "*.pdb", "*.exe", "*.dll", "*.so",
				"*.dylib", "*.rlib", "*.rmeta", "*.rbc", "*.dSYM/", "*.su",
				"*.idb", "*.ilk", "*.exp", "*.lib", "*.a", "*.o",
			},
			"Go": {
				"*.exe", "*.exe~", "*.dll", "*.so", "*.dylib", "*.test",
				"*.out", "go.work", "vendor/", ".go-version",
			},
		},
		Frameworks: map[string][]string{
			"React": {
				"node_modules/", ".pnp", ".pnp.js", "coverage/", "build/",
				".DS_Store", ".env.local", ".env.development.local",
				".env.test.local", ".env.production.local", "npm-debug.log*",
				"yarn-debug.log*", "yarn-error.log*", ".next/", "out/",
			},
			"Django": {
				"*.log", "local_settings.py", "db.sqlite3",
				"db.sqlite3-journal", "media/", "staticfiles/", ".env",
				".venv", "env/", "venv/", "ENV/", "env.bak/", "venv.bak/",
				".pytest_cache/",
			},
			"Spring": {
				"*.class", "*.log", "*.ctxt", ".mtj.tmp/", "*.jar", "*.war",
				"*.nar", "*.ear", "*.zip", "*.tar.gz", "*.rar", "hs_err_pid*",
				"replay_pid*", "target/", ".idea/", "*.iws", "*.iml", "*.ipr",
			},
		},
		Tools: map[string][]string{
			"VSCode": {
				".vscode/", "*.code-workspace", ".vscode/settings.json",
				".vscode/tasks.json", ".vscode/launch.json",
				".vscode/extensions.json",
			},
			"IntelliJ": {
				".idea/", "*.iws", "*.iml", "*.ipr", ".idea_modules/",
			},
			"Eclipse": {
				".metadata", "bin/", "tmp/", "*.tmp", "*.bak", "*.swp",
				"*~.nib", "local.properties", ".settings/", ".loadpath",
				".recommenders",
			},
			"Vim": {
				"*.swp", "*.swo", "*~", ".vim/", ".viminfo", ".vimrc",
			},
			"Emacs": {
				"*~", "#*#", ".#*", ".emacs.desktop", ".emacs.desktop.lock",
				"*.elc", "auto-save-list", "tramp",
			},
		},
		OperatingSystems: map[string][]string{
			"macOS": {
				".DS_Store", ".AppleDouble", ".LSOverride", "Icon", "._*",
				".DocumentRevisions-V100", ".fseventsd", ".Spotlight-V100",
				".TemporaryItems", ".Trashes", ".VolumeIcon.icns",
				".com.apple.timemachine.donotpresent", ".AppleDB",
				".AppleDesktop", "Network Trash Folder", "Temporary Items",
				".apdisk",
			},
			"Windows": {
				"Thumbs.db", "Thumbs.db:encryptable", "ehthumbs.db",
				"ehthumbs_vista.db", "*.tmp", "*.temp", "Desktop.ini",
				"$RECYCLE.BIN/", "*.cab", "*.msi", "*.msix", "*.msm",
				"*.msp", "*.lnk", "*.stackdump",
			},
			"Linux": {
				"*~", "*.swp", "*.swo", ".nfs*", ".fuse_hidden*",
				".directory", ".Trash-*",
			},
		},
	}
}
