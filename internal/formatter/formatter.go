// package formatter renders repertoire, stats and calendar data as CSV, Markdown and plain text
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/encore/internal/models"
	"github.com/desertthunder/encore/internal/shared"
	"github.com/goccy/go-json"
)

// SongLookup resolves a catalog song id. [catalog.Catalog.SongByID] satisfies it.
type SongLookup func(songID string) (models.SongRef, bool)

// Export formats accepted by [WriteRepertoireExport].
const (
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatText     = "txt"
	FormatJSON     = "json"
)

// Formats lists every export format.
var Formats = []string{FormatJSON, FormatCSV, FormatMarkdown, FormatText}

// StatusLabel is the short display label for a repertoire status.
func StatusLabel(s models.RepertoireStatus) string {
	switch s {
	case models.StatusLearning:
		return "Learning"
	case models.StatusPolishing:
		return "Polishing"
	case models.StatusPerformanceReady:
		return "Ready"
	default:
		return string(s)
	}
}

func joinTags(tags []models.SongTag) string {
	return strings.Join(tagStrings(tags), ", ")
}

// RepertoireShareText renders the shareable repertoire list.
//
// Items whose song is missing from the catalog are left out of the list but
// still counted in the header.
func RepertoireShareText(items []models.RepertoireItem, lookup SongLookup) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		ref, ok := lookup(item.SongID)
		if !ok {
			continue
		}
		tags := ""
		if len(item.Tags) > 0 {
			tags = fmt.Sprintf(" [%s]", joinTags(item.Tags))
		}
		lines = append(lines, fmt.Sprintf("• %s — %s (%s) | %s%s",
			ref.Song.Title, ref.Show.Title, ref.Song.Character, StatusLabel(item.Status), tags))
	}
	return fmt.Sprintf("🎭 My Repertoire (%d songs)\n\n%s", len(items), strings.Join(lines, "\n"))
}

// RepertoireToCSV converts repertoire items to CSV with columns:
// ID, Song, Show, Character, Vocal Range, Status, Tags, Practice Count, Last Practiced, Added
func RepertoireToCSV(items []models.RepertoireItem, lookup SongLookup) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Song", "Show", "Character", "Vocal Range", "Status", "Tags", "Practice Count", "Last Practiced", "Added"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, item := range items {
		ref, _ := lookup(item.SongID)
		lastPracticed := ""
		if item.LastPracticed != nil {
			lastPracticed = item.LastPracticed.Format(time.RFC3339)
		}
		record := []string{
			item.ID,
			ref.Song.Title,
			ref.Show.Title,
			ref.Song.Character,
			ref.Song.VocalRange,
			string(item.Status),
			strings.Join(tagStrings(item.Tags), ";"),
			strconv.Itoa(item.PracticeCount),
			lastPracticed,
			item.AddedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

func tagStrings(tags []models.SongTag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}

// RepertoireToMarkdown renders the repertoire grouped by status, ready songs first.
func RepertoireToMarkdown(items []models.RepertoireItem, lookup SongLookup) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# My Repertoire\n\n")
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(items)))

	order := []models.RepertoireStatus{models.StatusPerformanceReady, models.StatusPolishing, models.StatusLearning}
	for _, status := range order {
		var section []models.RepertoireItem
		for _, item := range items {
			if item.Status == status {
				section = append(section, item)
			}
		}
		if len(section) == 0 {
			continue
		}

		buf.WriteString(fmt.Sprintf("## %s (%d)\n\n", StatusLabel(status), len(section)))
		for i, item := range section {
			ref, ok := lookup(item.SongID)
			if !ok {
				buf.WriteString(fmt.Sprintf("%d. Unknown song (%s)\n", i+1, item.SongID))
				continue
			}
			buf.WriteString(fmt.Sprintf("%d. **%s** from _%s_ (%s, %s)", i+1, ref.Song.Title, ref.Show.Title, ref.Song.Character, ref.Song.VocalRange))
			if len(item.Tags) > 0 {
				buf.WriteString(fmt.Sprintf(" `%s`", joinTags(item.Tags)))
			}
			buf.WriteString("\n")
			if item.Notes != "" {
				buf.WriteString(fmt.Sprintf("   > %s\n", item.Notes))
			}
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// RepertoireToText is [RepertoireShareText] as bytes with a trailing newline.
func RepertoireToText(items []models.RepertoireItem, lookup SongLookup) ([]byte, error) {
	return []byte(RepertoireShareText(items, lookup) + "\n"), nil
}

// MarshalJSON encodes v with goccy/go-json, indented when pretty is set.
func MarshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ExportRepertoire renders items in format.
func ExportRepertoire(items []models.RepertoireItem, lookup SongLookup, format string) ([]byte, error) {
	switch format {
	case FormatCSV:
		return RepertoireToCSV(items, lookup)
	case FormatMarkdown, "md":
		return RepertoireToMarkdown(items, lookup)
	case FormatText:
		return RepertoireToText(items, lookup)
	case FormatJSON:
		return MarshalJSON(items, true)
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, format)
	}
}

// Extension returns the file extension for format, without the dot.
func Extension(format string) string {
	switch format {
	case FormatMarkdown, "md":
		return "md"
	case FormatCSV, FormatText, FormatJSON:
		return format
	default:
		return "txt"
	}
}

// WriteRepertoireExport writes items to path in format, creating parent directories.
//
// Defaults to repertoire.{ext} in the working directory.
func WriteRepertoireExport(items []models.RepertoireItem, lookup SongLookup, format, path string) (string, error) {
	data, err := ExportRepertoire(items, lookup, format)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = "repertoire." + Extension(format)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s export: %w", format, err)
	}
	return path, nil
}

// WriteJSONFile writes v as indented JSON to path.
func WriteJSONFile(v any, path string) error {
	data, err := MarshalJSON(v, true)
	if err != nil {
		return fmt.Errorf("JSON marshal failed: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("JSON write failed: %w", err)
	}
	return nil
}
