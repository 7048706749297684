package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
)

// FileStore reads per-session summary records from a directory of JSON
// documents, one per session at <root>/<sessionID>.summary.json.
//
// Reads are single-attempt snapshots with no locking. Any failure to locate,
// read, or parse a record resolves to absence: the producer may be mid-write,
// the session may be new, or the file may be damaged, and all three degrade
// the same way for the consumer.
type FileStore struct {
	root string
}

// NewFileStore creates a FileStore rooted at the given directory.
func NewFileStore(root string) *FileStore {
	return &FileStore{root: root}
}

// Path returns the summary file path for a session.
func (s *FileStore) Path(sessionID string) string {
	return filepath.Join(s.root, sessionID+".summary.json")
}

// LoadSummaries reads and parses the session's summary record.
// Absence and corruption both return (nil, nil); this method never returns
// an error.
func (s *FileStore) LoadSummaries(ctx context.Context, sessionID string) (*SummaryFile, error) {
	// Session IDs name files; anything that resolves outside the root is
	// treated as a session with no record.
	if sessionID == "" || sessionID != filepath.Base(sessionID) {
		return nil, nil
	}

	data, err := os.ReadFile(s.Path(sessionID))
	if err != nil {
		return nil, nil
	}

	var file SummaryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil
	}

	return &file, nil
}
