package main

import (
	"testing"

	"jdkpulse/internal/jdk"

	"github.com/stretchr/testify/assert"
)

func TestAlreadyActive(t *testing.T) {
	records := []jdk.Record{
		{ID: "java-21_0_1", VersionFull: "21.0.1", Home: "/sys/temurin-21"},
		{ID: "jenv-17_0_9", VersionFull: "17.0.9", Home: "/jenv/17"},
	}

	tests := []struct {
		name       string
		activeHome string
		arg        string
		want       bool
	}{
		{"path equals active", "/sys/temurin-21", "/sys/temurin-21", true},
		{"path differs from active", "/sys/temurin-21", "/jenv/17", false},
		{"id resolves to active", "/jenv/17", "jenv-17_0_9", true},
		{"id resolves elsewhere", "/jenv/17", "java-21_0_1", false},
		{"version fragment resolves to active", "/sys/temurin-21", "21", true},
		{"version fragment resolves elsewhere", "/jenv/17", "21", false},
		{"unresolvable argument", "/sys/temurin-21", "nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, alreadyActive(records, tt.activeHome, tt.arg))
		})
	}
}
