package presentation

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"phosweep/internal/domain"
)

func sampleItem(name string, year int) domain.MediaItem {
	modified := time.Date(year, 3, 10, 8, 0, 0, 0, time.Local)
	return domain.NewMediaItem("DCIM/100APPLE/"+name, domain.Classify(name), modified, 1024*1024)
}

func TestPrintScanIncludesSections(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	result := domain.ScanResult{
		Items:        []domain.MediaItem{sampleItem("IMG_01.JPG", 2020), sampleItem("clip.MOV", 2021)},
		StatFailures: 3,
		FolderFailures: map[string]string{
			"101APPLE": "transport dropped",
		},
	}

	printer.PrintScan(result, domain.NewCutoff(2025, time.January, 1))
	out := buf.String()

	for _, want := range []string{
		"Media older than 2025-01-01",
		"IMG_01.JPG",
		"clip.MOV",
		"Found 2 files",
		"2.0 MB",
		"Could not read metadata for 3 files",
		"101APPLE: transport dropped",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintScanEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintScan(domain.ScanResult{}, domain.NewCutoff(2025, time.January, 1))
	if !strings.Contains(buf.String(), "No candidates found.") {
		t.Fatalf("empty scan must say so:\n%s", buf.String())
	}
}

func TestFormatItemLinesTruncates(t *testing.T) {
	items := make([]domain.MediaItem, 10)
	for i := range items {
		items[i] = sampleItem(fmt.Sprintf("IMG_%02d.JPG", i), 2020)
	}

	lines := formatItemLines(items)
	if len(lines) != 5 {
		t.Fatalf("expected 2 head + ellipsis + 2 tail, got %d lines", len(lines))
	}
	if lines[2] != "..." {
		t.Fatalf("expected ellipsis in the middle, got %q", lines[2])
	}
	if !strings.Contains(lines[0], "IMG_00.JPG") || !strings.Contains(lines[4], "IMG_09.JPG") {
		t.Fatalf("head/tail wrong: %v", lines)
	}
}

func TestPrintReportDryRun(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintReport(domain.DeletionReport{Attempted: 4, Succeeded: 4, Simulated: true})
	out := buf.String()

	if !strings.Contains(out, "Would delete 4 of 4 files.") {
		t.Errorf("missing dry-run verb:\n%s", out)
	}
	if !strings.Contains(out, "Dry run - no files were removed") {
		t.Errorf("missing dry-run note:\n%s", out)
	}
}

func TestPrintReportTruncatesFailures(t *testing.T) {
	var failed []domain.ItemFailure
	for i := 0; i < 8; i++ {
		failed = append(failed, domain.ItemFailure{
			Filename: fmt.Sprintf("IMG_%02d.JPG", i),
			Cause:    "not found",
		})
	}

	var buf bytes.Buffer
	printer := Printer{Writer: &buf}
	printer.PrintReport(domain.DeletionReport{Attempted: 8, Failed: failed})
	out := buf.String()

	if !strings.Contains(out, "Failed: 8 files") {
		t.Errorf("missing failure count:\n%s", out)
	}
	if !strings.Contains(out, "... and 3 more") {
		t.Errorf("expected display truncation after 5:\n%s", out)
	}

	buf.Reset()
	verbose := Printer{Writer: &buf, Verbose: true}
	verbose.PrintReport(domain.DeletionReport{Attempted: 8, Failed: failed})
	if strings.Contains(buf.String(), "more") {
		t.Errorf("verbose output must list every failure:\n%s", buf.String())
	}
}
