package jdk

import "fmt"

// JenvVendor marks records discovered under the jenv versions directory.
const JenvVendor = "jenv"

// Record represents one discovered JDK installation.
// Records are snapshots of a single scan and are never mutated after creation.
type Record struct {
	ID           string `json:"id"`            // e.g. "java-21_0_1" or "jenv-openjdk64-21_0_10"
	VersionMajor uint   `json:"version_major"` // 0 when the version string could not be parsed
	VersionFull  string `json:"version_full"`  // version string as reported by the source
	Home         string `json:"home"`          // absolute path to the installation root
	Vendor       string `json:"vendor,omitempty"`
}

// Label returns the human-readable menu label for a record.
func (r Record) Label() string {
	switch {
	case r.Vendor == JenvVendor:
		return fmt.Sprintf("%s (jenv)", r.VersionFull)
	case r.Vendor != "":
		return fmt.Sprintf("Java %d (%s)", r.VersionMajor, r.Vendor)
	default:
		return fmt.Sprintf("Java %d", r.VersionMajor)
	}
}
