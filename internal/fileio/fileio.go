// Package fileio performs the file operations around a gitignore
// rewrite: reading, atomic writes, and pre-modification backups.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"

	gixerrors "github.com/standardbeagle/gix/internal/errors"
)

// BackupSuffix is appended to a file path for its backup copy.
const BackupSuffix = ".backup"

// Read loads a file's contents as a string.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", gixerrors.NewFileError("read", path, err)
	}
	return string(data), nil
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// WriteAtomic writes content to path via a temporary file and rename, so
// a crash mid-write never leaves a truncated gitignore behind.
func WriteAtomic(path, content string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return gixerrors.NewFileError("create", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return gixerrors.NewFileError("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return gixerrors.NewFileError("close", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return gixerrors.NewFileError("rename", path, err)
	}
	return nil
}

// Backup copies the file at path to path plus BackupSuffix. It is an
// error for the source to be missing.
func Backup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", gixerrors.NewFileError("backup", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", gixerrors.NewFileError("backup", path, err)
	}

	backupPath := path + BackupSuffix
	if err := os.WriteFile(backupPath, data, info.Mode().Perm()); err != nil {
		return "", gixerrors.NewFileError("backup", backupPath, err)
	}
	return backupPath, nil
}

// ResolveTarget returns the gitignore path for an argument that may be a
// file or a directory. A directory resolves to its .gitignore.
func ResolveTarget(arg string) (string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return "", gixerrors.NewFileError("stat", arg, err)
	}
	if info.IsDir() {
		path := filepath.Join(arg, ".gitignore")
		if !Exists(path) {
			return "", gixerrors.NewFileError("stat", path,
				fmt.Errorf("no .gitignore in %s: %w", arg, os.ErrNotExist))
		}
		return path, nil
	}
	return arg, nil
}
