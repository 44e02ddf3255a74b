package exif

import (
	"bytes"
	"errors"
	"time"

	goexif "github.com/rwcarlsen/goexif/exif"
)

// Reader extracts metadata from in-memory image bytes. Device files
// are only reachable through the transport's read call, so there is
// never a local file to open.
type Reader struct{}

func (Reader) CaptureTime(data []byte) (time.Time, error) {
	x, err := goexif.Decode(bytes.NewReader(data))
	if err != nil {
		return time.Time{}, err
	}

	if tag, err := x.Get(goexif.DateTimeOriginal); err == nil {
		if str, err := tag.StringVal(); err == nil {
			parsed, err := time.Parse("2006:01:02 15:04:05", str)
			if err == nil {
				return parsed, nil
			}
		}
	}

	if parsed, err := x.DateTime(); err == nil {
		return parsed, nil
	}

	return time.Time{}, errors.New("exif datetime not found")
}
