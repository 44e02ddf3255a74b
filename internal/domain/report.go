package domain

import "time"

// Cutoff is a calendar date boundary. An item is a deletion candidate
// iff its modification date is strictly before the cutoff; time of day
// is ignored on both sides.
type Cutoff struct {
	year  int
	month time.Month
	day   int
}

func NewCutoff(year int, month time.Month, day int) Cutoff {
	return Cutoff{year: year, month: month, day: day}
}

func CutoffFromTime(t time.Time) Cutoff {
	y, m, d := t.Date()
	return Cutoff{year: y, month: m, day: d}
}

func (c Cutoff) Date() time.Time {
	return time.Date(c.year, c.month, c.day, 0, 0, 0, 0, time.Local)
}

func (c Cutoff) String() string {
	return c.Date().Format("2006-01-02")
}

// Includes reports whether a file modified at t falls inside the
// deletion window.
func (c Cutoff) Includes(t time.Time) bool {
	y, m, d := t.Date()
	modified := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	boundary := time.Date(c.year, c.month, c.day, 0, 0, 0, 0, time.UTC)
	return modified.Before(boundary)
}

// ScanResult is the outcome of one scan pass. Items keep discovery
// order: folder enumeration order, then file order within each folder.
type ScanResult struct {
	Items          []MediaItem
	StatFailures   int
	FolderFailures map[string]string
}

func (r ScanResult) TotalBytes() uint64 {
	var total uint64
	for _, item := range r.Items {
		total += item.SizeBytes
	}
	return total
}

// ItemFailure records a single item the executor could not remove.
type ItemFailure struct {
	Filename string
	Cause    string
}

// DeletionReport summarizes one executor run. Simulated marks whether
// the run was a dry run that never touched the device.
type DeletionReport struct {
	Attempted int
	Succeeded int
	Failed    []ItemFailure
	Simulated bool
}
