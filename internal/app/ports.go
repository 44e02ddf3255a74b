package app

import (
	"context"
	"time"
)

// FileInfo is the metadata a device stat round trip returns.
type FileInfo struct {
	ModifiedTime time.Time
	SizeBytes    uint64
}

// Device is the narrow file-access protocol of the mounted device.
// Every call is one blocking transport round trip and may fail
// transiently; implementations tag failures with an error kind.
// The transport is single-session: callers must not issue concurrent
// calls against the same handle.
type Device interface {
	List(ctx context.Context, path string) ([]string, error)
	Stat(ctx context.Context, path string) (FileInfo, error)
	ReadAll(ctx context.Context, path string) ([]byte, error)
	Remove(ctx context.Context, path string) error
}

// ProgressFunc receives ordered (current, total, message) updates from
// a running scan or delete. It is invoked synchronously on the worker
// and must only queue or display, never block.
type ProgressFunc func(current, total int, message string)
