// Package devfs implements the device port over an OS mount point.
// Pairing and transport negotiation happen in the mounting tool
// (ifuse, gvfs); by the time phosweep runs, the device looks like a
// directory tree whose individual calls can still fail at any moment.
package devfs

import (
	"context"
	"os"
	"path/filepath"

	"phosweep/internal/app"
	apperrors "phosweep/internal/errors"
)

type MountFS struct {
	// Root is the local path where the device filesystem is mounted.
	Root string
}

func New(root string) MountFS {
	return MountFS{Root: root}
}

func (m MountFS) List(ctx context.Context, devicePath string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.Transport, "list", devicePath, err)
	}
	entries, err := os.ReadDir(m.resolve(devicePath))
	if err != nil {
		return nil, apperrors.Wrap(categorize(err), "list", devicePath, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func (m MountFS) Stat(ctx context.Context, devicePath string) (app.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return app.FileInfo{}, apperrors.Wrap(apperrors.Transport, "stat", devicePath, err)
	}
	info, err := os.Stat(m.resolve(devicePath))
	if err != nil {
		return app.FileInfo{}, apperrors.Wrap(categorize(err), "stat", devicePath, err)
	}
	size := uint64(0)
	if info.Size() > 0 {
		size = uint64(info.Size())
	}
	return app.FileInfo{ModifiedTime: info.ModTime(), SizeBytes: size}, nil
}

func (m MountFS) ReadAll(ctx context.Context, devicePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.Transport, "read", devicePath, err)
	}
	data, err := os.ReadFile(m.resolve(devicePath))
	if err != nil {
		return nil, apperrors.Wrap(categorize(err), "read", devicePath, err)
	}
	return data, nil
}

func (m MountFS) Remove(ctx context.Context, devicePath string) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Wrap(apperrors.Transport, "remove", devicePath, err)
	}
	if err := os.Remove(m.resolve(devicePath)); err != nil {
		return apperrors.Wrap(categorize(err), "remove", devicePath, err)
	}
	return nil
}

func (m MountFS) resolve(devicePath string) string {
	return filepath.Join(m.Root, filepath.FromSlash(devicePath))
}

func categorize(err error) apperrors.Kind {
	switch {
	case os.IsNotExist(err):
		return apperrors.NotFound
	case os.IsPermission(err):
		return apperrors.Permission
	default:
		return apperrors.Transport
	}
}
