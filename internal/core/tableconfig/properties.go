package tableconfig

import (
	"strconv"

	"github.com/ctring/delta/internal/core/colmap"
	"github.com/ctring/delta/internal/core/intervals"
)

// Prefix marks the reserved key namespace. Every key carrying it must match a
// registered property; keys outside it pass through validation untouched.
const Prefix = "delta."

const intervalHelp = "needs to be provided as a calendar interval such as '2 weeks'. " +
	"Months and years are not accepted. You may specify '365 days' for a year instead."

var (
	// TombstoneRetention is the shortest duration logically deleted files are
	// kept around before they may be removed physically. Setting it too low
	// risks breaking concurrent readers that still reference the deleted
	// files through an older snapshot.
	TombstoneRetention = NewProperty(
		"delta.deletedFileRetentionDuration",
		"interval 1 week",
		intervals.ParseMillis,
		func(millis int64) bool { return millis >= 0 },
		intervalHelp,
		true,
	)

	// CheckpointInterval is the number of commits between checkpoints.
	CheckpointInterval = NewProperty(
		"delta.checkpointInterval",
		"10",
		strconv.Atoi,
		func(v int) bool { return v > 0 },
		"needs to be a positive integer.",
		true,
	)

	// LogRetention is how long commit history is kept. Commits older than
	// this window may be cleaned up, limiting time travel range.
	LogRetention = NewProperty(
		"delta.logRetentionDuration",
		"interval 30 days",
		intervals.ParseMillis,
		nil,
		intervalHelp,
		true,
	)

	// ExpiredLogCleanupEnabled controls whether expired log files are deleted
	// during metadata cleanup.
	ExpiredLogCleanupEnabled = NewProperty(
		"delta.enableExpiredLogCleanup",
		"true",
		strconv.ParseBool,
		nil,
		"needs to be a boolean.",
		true,
	)

	// InCommitTimestampsEnabled controls whether monotonically increasing
	// timestamps are recorded inside commits instead of relying on file
	// modification times.
	InCommitTimestampsEnabled = NewProperty(
		"delta.enableInCommitTimestamps",
		"false",
		strconv.ParseBool,
		nil,
		"needs to be a boolean.",
		true,
	)

	// InCommitTimestampEnablementVersion is the table version at which
	// in-commit timestamps were switched on. Unset when the feature is
	// disabled or was enabled at table creation.
	InCommitTimestampEnablementVersion = NewOptionalProperty(
		"delta.inCommitTimestampEnablementVersion",
		parseInt64,
		nil,
		"needs to be a long.",
		true,
	)

	// InCommitTimestampEnablementTimestamp is the timestamp of the commit
	// that switched in-commit timestamps on.
	InCommitTimestampEnablementTimestamp = NewOptionalProperty(
		"delta.inCommitTimestampEnablementTimestamp",
		parseInt64,
		nil,
		"needs to be a long.",
		true,
	)

	// ColumnMappingMode selects how logical columns map to physical columns
	// in data files.
	ColumnMappingMode = NewProperty(
		"delta.columnMapping.mode",
		"none",
		colmap.ParseMode,
		nil,
		"needs to be one of: none, id, name.",
		true,
	)

	// ColumnMappingMaxColumnID tracks the highest column id assigned so far.
	// It is maintained by the system and cannot be set by users.
	ColumnMappingMaxColumnID = NewProperty(
		"delta.columnMapping.maxColumnId",
		"0",
		parseInt64,
		func(v int64) bool { return v >= 0 },
		"",
		false,
	)

	// IcebergCompatV2Enabled controls whether the table maintains the
	// invariants required for Iceberg compatibility, version 2.
	IcebergCompatV2Enabled = NewProperty(
		"delta.enableIcebergCompatV2",
		"false",
		strconv.ParseBool,
		nil,
		"needs to be a boolean.",
		true,
	)
)

func parseInt64(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
