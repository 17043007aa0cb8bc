//go:build !darwin

package jdk

// SystemJDKs is a no-op on platforms without the java_home registry tool.
func SystemJDKs() ([]Record, error) {
	return nil, nil
}
