package domain

import (
	"path"
	"strings"
	"time"
)

// Kind is the media classification derived from a filename extension.
type Kind int

const (
	KindUnsupported Kind = iota
	KindImage
	KindHEICImage
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindHEICImage:
		return "heic"
	case KindVideo:
		return "video"
	default:
		return "unsupported"
	}
}

// MediaItem is a single device file discovered by a scan. Items are
// value types and never mutated after the scan produces them.
type MediaItem struct {
	Path         string
	Filename     string
	Kind         Kind
	ModifiedTime time.Time
	SizeBytes    uint64
}

func NewMediaItem(devicePath string, kind Kind, modified time.Time, size uint64) MediaItem {
	return MediaItem{
		Path:         devicePath,
		Filename:     path.Base(devicePath),
		Kind:         kind,
		ModifiedTime: modified,
		SizeBytes:    size,
	}
}

// Classify maps a filename to its media kind. Case-insensitive on the
// extension, total, no side effects.
func Classify(filename string) Kind {
	switch strings.ToLower(path.Ext(filename)) {
	case ".jpg", ".jpeg", ".png":
		return KindImage
	case ".heic", ".heif":
		return KindHEICImage
	case ".mov", ".mp4", ".m4v":
		return KindVideo
	default:
		return KindUnsupported
	}
}
