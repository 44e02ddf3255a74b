package preview

import (
	"context"
	"errors"
	"testing"
	"time"

	"phosweep/internal/app"
	"phosweep/internal/domain"
)

type fakeDevice struct {
	files map[string][]byte
	reads []string
}

func (f *fakeDevice) List(ctx context.Context, path string) ([]string, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDevice) Stat(ctx context.Context, path string) (app.FileInfo, error) {
	return app.FileInfo{}, errors.New("not implemented")
}

func (f *fakeDevice) ReadAll(ctx context.Context, path string) ([]byte, error) {
	f.reads = append(f.reads, path)
	data, ok := f.files[path]
	if !ok {
		return nil, errors.New("read failed")
	}
	return data, nil
}

func (f *fakeDevice) Remove(ctx context.Context, path string) error {
	return errors.New("not implemented")
}

func item(name string) domain.MediaItem {
	modified := time.Date(2020, 4, 1, 9, 0, 0, 0, time.Local)
	return domain.NewMediaItem("DCIM/100APPLE/"+name, domain.Classify(name), modified, 512)
}

func TestVideosGetPlaceholdersWithoutReading(t *testing.T) {
	device := &fakeDevice{}
	loader := Loader{Device: device}

	previews := loader.Load(context.Background(), []domain.MediaItem{item("clip.MOV")})
	if len(previews) != 1 {
		t.Fatalf("expected 1 preview, got %d", len(previews))
	}
	if !previews[0].Placeholder {
		t.Fatal("video preview must be a placeholder")
	}
	if len(device.reads) != 0 {
		t.Fatalf("video preview must not read the device, got %d reads", len(device.reads))
	}
}

func TestHEICPlaceholderWithoutDecoderCapability(t *testing.T) {
	device := &fakeDevice{files: map[string][]byte{
		"DCIM/100APPLE/photo.HEIC": []byte("heicdata"),
	}}

	loader := Loader{Device: device, HEICSupported: false}
	previews := loader.Load(context.Background(), []domain.MediaItem{item("photo.HEIC")})
	if !previews[0].Placeholder {
		t.Fatal("HEIC without decoder must be a placeholder")
	}
	if len(device.reads) != 0 {
		t.Fatal("HEIC without decoder must not be fetched")
	}

	loader = Loader{Device: device, HEICSupported: true}
	previews = loader.Load(context.Background(), []domain.MediaItem{item("photo.HEIC")})
	if previews[0].Placeholder {
		t.Fatal("HEIC with decoder capability must be fetched")
	}
}

func TestFailedReadDegradesToPlaceholder(t *testing.T) {
	device := &fakeDevice{}
	loader := Loader{Device: device}

	previews := loader.Load(context.Background(), []domain.MediaItem{item("IMG_01.JPG")})
	if !previews[0].Placeholder {
		t.Fatal("failed read must degrade to a placeholder")
	}
}

func TestImageBytesArePassedThrough(t *testing.T) {
	device := &fakeDevice{files: map[string][]byte{
		"DCIM/100APPLE/IMG_01.JPG": []byte("jpegdata"),
	}}
	loader := Loader{Device: device}

	previews := loader.Load(context.Background(), []domain.MediaItem{item("IMG_01.JPG")})
	p := previews[0]
	if p.Placeholder {
		t.Fatal("readable image must not be a placeholder")
	}
	if string(p.Data) != "jpegdata" {
		t.Fatalf("unexpected preview data %q", p.Data)
	}
	// No EXIF in the bytes, so the capture time falls back to mtime.
	if !p.CaptureTime.Equal(p.Item.ModifiedTime) {
		t.Fatalf("expected capture time fallback to %v, got %v", p.Item.ModifiedTime, p.CaptureTime)
	}
}

func TestLoadCapsAtLimit(t *testing.T) {
	device := &fakeDevice{files: map[string][]byte{}}
	loader := Loader{Device: device, Limit: 2}

	items := []domain.MediaItem{item("IMG_01.JPG"), item("IMG_02.JPG"), item("IMG_03.JPG")}
	previews := loader.Load(context.Background(), items)
	if len(previews) != 2 {
		t.Fatalf("expected previews capped at 2, got %d", len(previews))
	}
}
