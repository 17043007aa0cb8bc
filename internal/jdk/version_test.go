package jdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMajorVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    uint
	}{
		{"legacy java 8", "1.8.0_382", 8},
		{"legacy java 7", "1.7.0_80", 7},
		{"legacy without update", "1.8", 8},
		{"modern three-part", "21.0.1", 21},
		{"modern ea build", "22.0.2", 22},
		{"modern single number", "17", 17},
		{"legacy malformed defaults to 8", "1.x.y", 8},
		{"legacy empty rest defaults to 8", "1.", 8},
		{"modern malformed defaults to 0", "openjdk64-21.0.10", 0},
		{"empty string defaults to 0", "", 0},
		{"garbage defaults to 0", "not-a-version", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MajorVersion(tt.version))
		})
	}
}

func TestQuotedSegment(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   string
		wantOK bool
	}{
		{"no quotes", "21.0.1 (x86_64) /some/path", "", false},
		{"single unmatched quote", `21.0.1 "Eclipse`, "", false},
		{"one pair", `21.0.1 (x86_64) "Eclipse Adoptium" /some/path`, "Eclipse Adoptium", true},
		{"first of several pairs", `"Eclipse Adoptium" - "OpenJDK 64-Bit Server VM"`, "Eclipse Adoptium", true},
		{"empty pair", `before "" after`, "", true},
		{"empty line", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := QuotedSegment(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
