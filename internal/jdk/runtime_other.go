//go:build !unix

package jdk

import (
	"os"
	"path/filepath"
)

// HasRuntime reports whether home contains the java launcher under bin.
func HasRuntime(home string) bool {
	_, err := os.Stat(filepath.Join(home, "bin", "java.exe"))
	return err == nil
}

func runtimeExecutable(home string) bool {
	return HasRuntime(home)
}
