package preview

import (
	"context"
	"time"

	"go.uber.org/zap"

	"phosweep/internal/app"
	"phosweep/internal/domain"
	"phosweep/internal/infra/exif"
)

// DefaultLimit caps how many candidates get their bytes fetched for
// review. Reading every file over the transport is too slow for large
// candidate sets.
const DefaultLimit = 100

// Preview is the review-time view of one candidate. Placeholder
// previews carry no image data: videos always, HEIC when the decoder
// capability is absent, and anything whose read failed.
type Preview struct {
	Item        domain.MediaItem
	Data        []byte
	CaptureTime time.Time
	Placeholder bool
}

// Loader fetches preview data for scan candidates. HEICSupported is
// the explicit capability flag for the optional HEIC decoder; it is
// passed in rather than probed globally.
type Loader struct {
	Device        app.Device
	Exif          exif.Reader
	Logger        *zap.Logger
	HEICSupported bool
	Limit         int
}

// Load returns previews for at most Limit items, in input order. A
// failed read degrades that item to a placeholder; it never fails the
// batch.
func (l *Loader) Load(ctx context.Context, items []domain.MediaItem) []Preview {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := l.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(items) > limit {
		items = items[:limit]
	}

	previews := make([]Preview, 0, len(items))
	for _, item := range items {
		previews = append(previews, l.load(ctx, item, logger))
	}
	return previews
}

func (l *Loader) load(ctx context.Context, item domain.MediaItem, logger *zap.Logger) Preview {
	p := Preview{Item: item, CaptureTime: item.ModifiedTime}

	switch item.Kind {
	case domain.KindVideo:
		p.Placeholder = true
		return p
	case domain.KindHEICImage:
		if !l.HEICSupported {
			p.Placeholder = true
			return p
		}
	}

	data, err := l.Device.ReadAll(ctx, item.Path)
	if err != nil || len(data) == 0 {
		logger.Debug("preview read failed", zap.String("path", item.Path), zap.Error(err))
		p.Placeholder = true
		return p
	}
	p.Data = data

	if taken, err := l.Exif.CaptureTime(data); err == nil {
		p.CaptureTime = taken
	}
	return p
}
