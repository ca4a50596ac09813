package tasks

import "fmt"

// ProgressUpdate represents a progress event during a backup.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data
}

// Backup phase enumeration
type Phase int

const (
	BackupStart Phase = iota
	WriteCollection
	ExportRepertoire
	WriteManifest
	BackupFailed
)

func (p Phase) String() string {
	switch p {
	case BackupStart:
		return "backup_start"
	case WriteCollection:
		return "write_collection"
	case ExportRepertoire:
		return "export_repertoire"
	case WriteManifest:
		return "write_manifest"
	case BackupFailed:
		return "backup_failed"
	default:
		return ""
	}
}

func backupStartUpdate(total int, dir string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   BackupStart,
		Step:    0,
		Total:   total,
		Message: fmt.Sprintf("Backing up %d files to %s...", total, dir),
	}
}

func fileWrittenUpdate(step, total int, res backupResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   res.job.phase,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s (%d records)", step, total, res.job.name, res.job.records),
		Data:    res.job.path,
	}
}

func fileFailedUpdate(step, total int, res backupResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   BackupFailed,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, res.job.name, res.err),
	}
}

func manifestUpdate(total int, path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteManifest,
		Step:    total,
		Total:   total,
		Message: fmt.Sprintf("Manifest written to %s", path),
		Data:    path,
	}
}
