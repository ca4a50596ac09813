package formatter

import (
	"fmt"
	"time"
)

// BackupFile is one file written during a backup.
type BackupFile struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Records int    `json:"records"`
	Error   string `json:"error,omitempty"`
}

// BackupManifest summarises a backup directory.
type BackupManifest struct {
	CreatedAt  time.Time    `json:"createdAt"`
	Directory  string       `json:"directory"`
	Formats    []string     `json:"formats"`
	Files      []BackupFile `json:"files"`
	Successful int          `json:"successful"`
	Failed     int          `json:"failed"`
}

// WriteBackupManifest writes m as indented JSON to path.
func WriteBackupManifest(m *BackupManifest, path string) error {
	if m == nil {
		return fmt.Errorf("nil backup manifest")
	}
	return WriteJSONFile(m, path)
}
