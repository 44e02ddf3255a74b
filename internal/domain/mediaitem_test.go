package domain

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		filename string
		want     Kind
	}{
		{"IMG_0001.JPG", KindImage},
		{"IMG_0002.jpeg", KindImage},
		{"screenshot.PNG", KindImage},
		{"photo.HEIC", KindHEICImage},
		{"photo.heif", KindHEICImage},
		{"clip.M4V", KindVideo},
		{"clip.mov", KindVideo},
		{"clip.mp4", KindVideo},
		{"note.txt", KindUnsupported},
		{"archive.zip", KindUnsupported},
		{"noextension", KindUnsupported},
		{"", KindUnsupported},
	}

	for _, tc := range cases {
		if got := Classify(tc.filename); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}

func TestNewMediaItemDerivesFilename(t *testing.T) {
	modified := time.Date(2024, 3, 10, 8, 30, 0, 0, time.Local)
	item := NewMediaItem("DCIM/100APPLE/IMG_0001.JPG", KindImage, modified, 2048)

	if item.Filename != "IMG_0001.JPG" {
		t.Fatalf("expected filename IMG_0001.JPG, got %q", item.Filename)
	}
	if item.Path != "DCIM/100APPLE/IMG_0001.JPG" {
		t.Fatalf("unexpected path %q", item.Path)
	}
	if item.SizeBytes != 2048 {
		t.Fatalf("unexpected size %d", item.SizeBytes)
	}
}

func TestKindString(t *testing.T) {
	if KindVideo.String() != "video" {
		t.Fatalf("unexpected string for video kind: %q", KindVideo.String())
	}
	if KindUnsupported.String() != "unsupported" {
		t.Fatalf("unexpected string for unsupported kind: %q", KindUnsupported.String())
	}
}
