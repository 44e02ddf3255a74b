package presentation

import (
	"fmt"
	"io"
	"sort"

	"phosweep/internal/domain"
	"phosweep/internal/preview"
)

type Printer struct {
	Writer  io.Writer
	Verbose bool
}

func (p Printer) PrintScan(result domain.ScanResult, cutoff domain.Cutoff) {
	fmt.Fprintf(p.Writer, "Media older than %s:\n", cutoff)
	fmt.Fprintln(p.Writer)

	if len(result.Items) == 0 {
		fmt.Fprintln(p.Writer, "No candidates found.")
	} else {
		for _, line := range formatItemLines(result.Items) {
			fmt.Fprintln(p.Writer, line)
		}
	}

	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "Found %d files, estimated %.1f MB.\n", len(result.Items), megabytes(result.TotalBytes()))

	if result.StatFailures > 0 {
		fmt.Fprintf(p.Writer, "Could not read metadata for %d files.\n", result.StatFailures)
	}

	if len(result.FolderFailures) > 0 {
		fmt.Fprintf(p.Writer, "Skipped %d unreadable folders:\n", len(result.FolderFailures))
		for _, folder := range sortedKeys(result.FolderFailures) {
			fmt.Fprintf(p.Writer, "- %s: %s\n", folder, result.FolderFailures[folder])
		}
	}
}

func (p Printer) PrintReport(report domain.DeletionReport) {
	verb := "Deleted"
	if report.Simulated {
		verb = "Would delete"
	}

	fmt.Fprintf(p.Writer, "%s %d of %d files.\n", verb, report.Succeeded, report.Attempted)

	if report.Simulated {
		fmt.Fprintln(p.Writer, "Dry run - no files were removed from the device.")
	}

	if len(report.Failed) > 0 {
		fmt.Fprintf(p.Writer, "Failed: %d files\n", len(report.Failed))
		for _, line := range formatFailureLines(report.Failed, p.Verbose) {
			fmt.Fprintln(p.Writer, line)
		}
	}
}

func (p Printer) PrintPreviews(previews []preview.Preview) {
	fmt.Fprintln(p.Writer, "Previews:")
	for _, pv := range previews {
		marker := "✓"
		if pv.Placeholder {
			marker = "·"
		}
		fmt.Fprintf(p.Writer, "%s %s  taken %s\n", marker, pv.Item.Filename, pv.CaptureTime.Format("2006-01-02 15:04"))
	}
}

func formatItemLines(items []domain.MediaItem) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s  %s  %s", item.Filename, item.ModifiedTime.Format("2006-01-02"), item.Kind))
	}

	if len(lines) <= 4 {
		return lines
	}
	head := lines[:2]
	tail := lines[len(lines)-2:]
	return append(append(head, "..."), tail...)
}

func formatFailureLines(failed []domain.ItemFailure, verbose bool) []string {
	limit := 5
	if verbose || len(failed) <= limit {
		limit = len(failed)
	}

	lines := make([]string, 0, limit+1)
	for _, failure := range failed[:limit] {
		lines = append(lines, fmt.Sprintf("- %s: %s", failure.Filename, failure.Cause))
	}
	if limit < len(failed) {
		lines = append(lines, fmt.Sprintf("... and %d more", len(failed)-limit))
	}
	return lines
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func megabytes(bytes uint64) float64 {
	return float64(bytes) / (1024 * 1024)
}
