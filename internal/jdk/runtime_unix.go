//go:build unix

package jdk

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// HasRuntime reports whether home contains the java launcher under bin.
func HasRuntime(home string) bool {
	_, err := os.Stat(filepath.Join(home, "bin", "java"))
	return err == nil
}

// runtimeExecutable reports whether the launcher exists and is executable by
// the current process. Stricter than HasRuntime; used where an entry must be
// filtered out rather than merely flagged.
func runtimeExecutable(home string) bool {
	return unix.Access(filepath.Join(home, "bin", "java"), unix.X_OK) == nil
}
