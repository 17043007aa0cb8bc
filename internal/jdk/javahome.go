package jdk

import "strings"

// javaHomeBanner is the header line java_home prints before the listing.
const javaHomeBanner = "Matching Java Virtual Machines"

// parseJavaHomeOutput converts the diagnostic output of `java_home -V` into
// records. Each JVM is reported on its own line:
//
//	21.0.1 (x86_64) "Eclipse Adoptium" - "OpenJDK 64-Bit Server VM" /Library/.../Contents/Home
//
// The first token is the version, the last token is the home path and the first
// quoted segment is the vendor. Malformed lines are skipped, not reported.
func parseJavaHomeOutput(output string) []Record {
	var records []Record

	for line := range strings.Lines(output) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, javaHomeBanner) {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}

		versionFull := parts[0]
		home := parts[len(parts)-1]
		vendor, _ := QuotedSegment(line)

		records = append(records, Record{
			ID:           "java-" + strings.ReplaceAll(versionFull, ".", "_"),
			VersionMajor: MajorVersion(versionFull),
			VersionFull:  versionFull,
			Home:         home,
			Vendor:       vendor,
		})
	}

	return records
}
