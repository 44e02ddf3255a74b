package app

import "phosweep/internal/domain"

// ApplySelection restricts a scan result to the items whose path is in
// keep, preserving discovery order. Paths are unique per scan so no
// dedup is needed.
func ApplySelection(result domain.ScanResult, keep map[string]bool) []domain.MediaItem {
	var selected []domain.MediaItem
	for _, item := range result.Items {
		if keep[item.Path] {
			selected = append(selected, item)
		}
	}
	return selected
}
