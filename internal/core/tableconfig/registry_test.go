package tableconfig

import (
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryContents(t *testing.T) {
	want := []string{
		"delta.checkpointInterval",
		"delta.columnMapping.maxColumnId",
		"delta.columnMapping.mode",
		"delta.deletedFileRetentionDuration",
		"delta.enableExpiredLogCleanup",
		"delta.enableIcebergCompatV2",
		"delta.enableInCommitTimestamps",
		"delta.inCommitTimestampEnablementTimestamp",
		"delta.inCommitTimestampEnablementVersion",
		"delta.logRetentionDuration",
	}
	sort.Strings(want)

	got := Default().Keys()
	require.Equal(t, want, got, "registry should hold every built-in property")
}

func TestDefaultIsSingleton(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return the same registry instance")
	}
}

func TestLookupMatchesExactly(t *testing.T) {
	registry := Default()

	if _, ok := registry.Lookup("delta.checkpointinterval"); !ok {
		t.Error("lower-cased key should resolve")
	}

	// Lookup does not normalize; that is the caller's job.
	if _, ok := registry.Lookup("delta.checkpointInterval"); ok {
		t.Error("canonical spelling should not resolve without lower-casing")
	}
	if _, ok := registry.Lookup("DELTA.CHECKPOINTINTERVAL"); ok {
		t.Error("upper-cased key should not resolve without lower-casing")
	}
}

func TestLookupUnknownKey(t *testing.T) {
	if _, ok := Default().Lookup("delta.doesnotexist"); ok {
		t.Error("unknown key should not resolve")
	}
}

func TestNewRegistryRejectsDuplicateKeys(t *testing.T) {
	first := NewProperty("delta.sample", "1", strconv.Atoi, nil, "needs to be an integer.", true)
	second := NewProperty("DELTA.SAMPLE", "2", strconv.Atoi, nil, "needs to be an integer.", true)

	require.Panics(t, func() {
		NewRegistry(first, second)
	}, "keys that collide after lower-casing should panic")
}

func TestNewRegistryEmptyLookup(t *testing.T) {
	registry := NewRegistry()

	if _, ok := registry.Lookup("delta.checkpointinterval"); ok {
		t.Error("empty registry should resolve nothing")
	}
	if keys := registry.Keys(); len(keys) != 0 {
		t.Errorf("empty registry keys = %v, want none", keys)
	}
}
