package state

import (
	"os"
	"path/filepath"
	"testing"

	"jdkpulse/internal/jdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRegistry returns a ListFunc over homes that exist under dir, creating
// them on disk so SetActive's existence check passes.
func fixedRegistry(t *testing.T, dir string) (ListFunc, []jdk.Record) {
	t.Helper()

	records := []jdk.Record{
		{ID: "java-21_0_1", VersionMajor: 21, VersionFull: "21.0.1", Home: filepath.Join(dir, "temurin-21"), Vendor: "Eclipse Adoptium"},
		{ID: "jenv-17_0_9", VersionMajor: 17, VersionFull: "17.0.9", Home: filepath.Join(dir, "jenv-17"), Vendor: jdk.JenvVendor},
	}
	for _, r := range records {
		require.NoError(t, os.MkdirAll(filepath.Join(r.Home, "bin"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(r.Home, "bin", "java"), []byte("#!/bin/sh\n"), 0o755))
	}
	return func() ([]jdk.Record, error) { return records, nil }, records
}

func TestActiveFreshState(t *testing.T) {
	list, _ := fixedRegistry(t, t.TempDir())
	store := NewStore(filepath.Join(t.TempDir(), ".jdk_current"), list)

	active, err := store.Active()
	require.NoError(t, err)
	assert.Nil(t, active, "no selection is not an error")
}

func TestActiveEmptyFile(t *testing.T) {
	list, _ := fixedRegistry(t, t.TempDir())
	statePath := filepath.Join(t.TempDir(), ".jdk_current")
	require.NoError(t, os.WriteFile(statePath, []byte("   \n"), 0o644))

	active, err := NewStore(statePath, list).Active()
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestSetActiveByID(t *testing.T) {
	list, records := fixedRegistry(t, t.TempDir())
	statePath := filepath.Join(t.TempDir(), ".jdk_current")
	store := NewStore(statePath, list)

	home, err := store.SetActive("jenv-17_0_9")
	require.NoError(t, err)
	assert.Equal(t, records[1].Home, home)

	data, err := os.ReadFile(statePath)
	require.NoError(t, err)
	assert.Equal(t, home, string(data))

	active, err := store.Active()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, records[1], *active)
}

func TestSetActiveByPath(t *testing.T) {
	list, records := fixedRegistry(t, t.TempDir())
	store := NewStore(filepath.Join(t.TempDir(), ".jdk_current"), list)

	home, err := store.SetActive(records[0].Home)
	require.NoError(t, err)
	assert.Equal(t, records[0].Home, home)

	active, err := store.Active()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, records[0].Home, active.Home)
	assert.Equal(t, "java-21_0_1", active.ID)
}

func TestSetActiveUnknownIDFails(t *testing.T) {
	list, _ := fixedRegistry(t, t.TempDir())
	statePath := filepath.Join(t.TempDir(), ".jdk_current")
	store := NewStore(statePath, list)

	_, err := store.SetActive("java-99_9_9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "java-99_9_9")

	_, statErr := os.Stat(statePath)
	assert.True(t, os.IsNotExist(statErr), "a failed selection must not write state")
}

func TestSetActiveNonexistentPathFails(t *testing.T) {
	list, records := fixedRegistry(t, t.TempDir())
	statePath := filepath.Join(t.TempDir(), ".jdk_current")
	store := NewStore(statePath, list)

	// Persist a valid selection first, then try to clobber it
	_, err := store.SetActive(records[0].Home)
	require.NoError(t, err)

	_, err = store.SetActive("/does/not/exist")
	require.Error(t, err)

	data, readErr := os.ReadFile(statePath)
	require.NoError(t, readErr)
	assert.Equal(t, records[0].Home, string(data), "failed selection must not mutate prior state")
}

func TestActiveUnmatchedPathYieldsSyntheticRecord(t *testing.T) {
	list, _ := fixedRegistry(t, t.TempDir())
	statePath := filepath.Join(t.TempDir(), ".jdk_current")
	// A path the registry no longer knows; trailing whitespace must be trimmed
	require.NoError(t, os.WriteFile(statePath, []byte("/opt/removed-jdk\n"), 0o644))

	active, err := NewStore(statePath, list).Active()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "unknown", active.ID)
	assert.Equal(t, uint(0), active.VersionMajor)
	assert.Equal(t, "/opt/removed-jdk", active.Home)
}

func TestSetActiveCreatesStateDirectory(t *testing.T) {
	list, records := fixedRegistry(t, t.TempDir())
	statePath := filepath.Join(t.TempDir(), "nested", "deeper", "state")
	store := NewStore(statePath, list)

	home, err := store.SetActive(records[0].ID)
	require.NoError(t, err)

	data, err := os.ReadFile(statePath)
	require.NoError(t, err)
	assert.Equal(t, home, string(data))
}

func TestSetActiveOverwritesPriorSelection(t *testing.T) {
	list, records := fixedRegistry(t, t.TempDir())
	statePath := filepath.Join(t.TempDir(), ".jdk_current")
	store := NewStore(statePath, list)

	_, err := store.SetActive(records[0].ID)
	require.NoError(t, err)
	home, err := store.SetActive(records[1].ID)
	require.NoError(t, err)

	data, err := os.ReadFile(statePath)
	require.NoError(t, err)
	assert.Equal(t, home, string(data))

	active, err := store.Active()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, records[1].ID, active.ID)
}

func TestSetActiveHomeRelativePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	target := filepath.Join(home, ".jdkpulse-test-target")
	require.NoError(t, os.MkdirAll(target, 0o755))
	t.Cleanup(func() { os.RemoveAll(target) })

	list, _ := fixedRegistry(t, t.TempDir())
	store := NewStore(filepath.Join(t.TempDir(), ".jdk_current"), list)

	resolved, err := store.SetActive("~/.jdkpulse-test-target")
	require.NoError(t, err)
	assert.Equal(t, target, resolved)
}
