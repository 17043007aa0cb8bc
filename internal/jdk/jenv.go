package jdk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultJenvRoot returns the conventional jenv directory, ~/.jenv.
func DefaultJenvRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jenv"
	}
	return filepath.Join(home, ".jenv")
}

// JenvJDKs scans <root>/versions for jenv-managed JDKs. A missing versions
// directory is not an error, it just means jenv manages nothing here.
// Entries without an executable bin/java are filtered out.
func JenvJDKs(root string) ([]Record, error) {
	versionsDir := filepath.Join(root, "versions")

	if info, err := os.Stat(versionsDir); err != nil || !info.IsDir() {
		return nil, nil
	}

	entries, err := os.ReadDir(versionsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read jenv versions dir %s: %w", versionsDir, err)
	}

	var records []Record
	for _, entry := range entries {
		// The directory name is the jenv version name,
		// e.g. "21.0.10" or "openjdk64-21.0.10".
		name := entry.Name()
		entryPath := filepath.Join(versionsDir, name)

		// jenv add installs versions as symlinks to the real JDK location,
		// so the entry type must be resolved through the link, not lstat'd.
		if !isDir(entryPath) {
			continue
		}

		// macOS bundle layout nests the real home under Contents/Home.
		home := entryPath
		if bundle := filepath.Join(entryPath, "Contents", "Home"); isDir(bundle) {
			home = bundle
		}

		if !runtimeExecutable(home) {
			continue
		}

		records = append(records, Record{
			ID:           "jenv-" + strings.ReplaceAll(name, ".", "_"),
			VersionMajor: MajorVersion(name),
			VersionFull:  name,
			Home:         home,
			Vendor:       JenvVendor,
		})
	}

	return records, nil
}

// JenvDefaultExists reports whether a global jenv default version is
// configured (<root>/version file present).
func JenvDefaultExists(root string) bool {
	info, err := os.Stat(filepath.Join(root, "version"))
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
