package jdk

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const javaHomeTool = "/usr/libexec/java_home"

// SystemJDKs lists the JVMs registered with the macOS java_home database.
// java_home -V prints the listing on stderr, not stdout; stdout only carries
// the default home path.
func SystemJDKs() ([]Record, error) {
	cmd := exec.Command(javaHomeTool, "-V")
	var stderr, stdout strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("java_home -V failed: %w", err)
	}

	records := parseJavaHomeOutput(stderr.String())
	for _, r := range records {
		if !HasRuntime(r.Home) {
			fmt.Fprintf(os.Stderr, "Warning: %s does not contain bin/java\n", r.Home)
		}
	}
	return records, nil
}
