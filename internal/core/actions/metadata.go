package actions

import (
	"encoding/binary"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Format describes the encoding of the files stored in a table.
type Format struct {
	Provider string            `json:"provider"`
	Options  map[string]string `json:"options,omitempty"`
}

// DefaultFormat returns the format used for new tables.
func DefaultFormat() Format {
	return Format{Provider: "parquet"}
}

// Metadata is the metaData action of a table's log. Fields are exported for
// serialization; treat a Metadata as immutable and derive changed copies with
// WithMergedConfiguration.
type Metadata struct {
	ID               string            `json:"id"`
	Name             string            `json:"name,omitempty"`
	Description      string            `json:"description,omitempty"`
	Format           Format            `json:"format"`
	SchemaString     string            `json:"schemaString"`
	PartitionColumns []string          `json:"partitionColumns"`
	CreatedTime      *int64            `json:"createdTime,omitempty"`
	Config           map[string]string `json:"configuration"`
}

// NewMetadata creates the metadata action for a new table with a fresh id and
// the default format. The configuration map is copied.
func NewMetadata(schemaString string, partitionColumns []string, configuration map[string]string) *Metadata {
	created := time.Now().UnixMilli()
	return &Metadata{
		ID:               uuid.NewString(),
		Format:           DefaultFormat(),
		SchemaString:     schemaString,
		PartitionColumns: append([]string(nil), partitionColumns...),
		CreatedTime:      &created,
		Config:           copyConfiguration(configuration),
	}
}

// Configuration returns a copy of the table configuration.
func (m *Metadata) Configuration() map[string]string {
	return copyConfiguration(m.Config)
}

// WithMergedConfiguration returns a copy of the metadata whose configuration
// has the given entries overlaid on the existing ones. The receiver is left
// untouched.
func (m *Metadata) WithMergedConfiguration(entries map[string]string) *Metadata {
	merged := copyConfiguration(m.Config)
	for key, value := range entries {
		merged[key] = value
	}

	next := *m
	next.PartitionColumns = append([]string(nil), m.PartitionColumns...)
	next.Config = merged
	return &next
}

// ConfigurationFingerprint returns a stable hash of the configuration. Equal
// configurations hash equally regardless of map order; any other
// configuration, including one whose strings merely shift bytes between a
// key and its value, hashes differently. Every component is length-prefixed
// so the hashed stream decodes unambiguously.
func (m *Metadata) ConfigurationFingerprint() uint64 {
	keys := make([]string, 0, len(m.Config))
	for key := range m.Config {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	digest := xxhash.New()
	var length [8]byte
	for _, key := range keys {
		binary.BigEndian.PutUint64(length[:], uint64(len(key)))
		_, _ = digest.Write(length[:])
		_, _ = digest.WriteString(key)

		value := m.Config[key]
		binary.BigEndian.PutUint64(length[:], uint64(len(value)))
		_, _ = digest.Write(length[:])
		_, _ = digest.WriteString(value)
	}
	return digest.Sum64()
}

func copyConfiguration(configuration map[string]string) map[string]string {
	copied := make(map[string]string, len(configuration))
	for key, value := range configuration {
		copied[key] = value
	}
	return copied
}
