package app

import (
	"context"
	"errors"
	"fmt"
	"path"

	"go.uber.org/zap"

	"phosweep/internal/domain"
	"phosweep/internal/logging"
)

// Scanner walks the device media root and builds the deletion
// candidate set for a cutoff date. All device calls are sequential in
// discovery order; the transport serializes requests anyway and is not
// reentrant.
type Scanner struct {
	Device     Device
	Logger     *zap.Logger
	OnProgress ProgressFunc
}

// Scan enumerates the immediate subfolders of root, classifies and
// stats every media file inside them, and keeps the entries modified
// strictly before cutoff. Only a failed root listing is fatal; a bad
// folder or file is recorded in the result and skipped.
func (s *Scanner) Scan(ctx context.Context, root string, cutoff domain.Cutoff) (domain.ScanResult, error) {
	if s.Device == nil {
		return domain.ScanResult{}, errors.New("scanner requires a device")
	}
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	stop := logging.Measure(logger, "scan")
	defer stop()

	entries, err := s.Device.List(ctx, root)
	if err != nil {
		return domain.ScanResult{}, err
	}

	var folders []string
	for _, entry := range entries {
		if entry == "." || entry == ".." {
			continue
		}
		folders = append(folders, entry)
	}
	logger.Info("listed media root", zap.String("root", root), zap.Int("folders", len(folders)))

	result := domain.ScanResult{
		FolderFailures: make(map[string]string),
	}

	var candidates []string
	for i, folder := range folders {
		folderPath := path.Join(root, folder)
		files, err := s.Device.List(ctx, folderPath)
		if err != nil {
			logger.Warn("folder listing failed", zap.String("folder", folder), zap.Error(err))
			result.FolderFailures[folder] = err.Error()
		} else {
			for _, name := range files {
				if domain.Classify(name) == domain.KindUnsupported {
					continue
				}
				candidates = append(candidates, path.Join(folderPath, name))
			}
		}
		s.report(i+1, len(folders), fmt.Sprintf("Scanning %s...", folder))
	}
	logger.Info("collected candidates", zap.Int("files", len(candidates)))

	for i, candidate := range candidates {
		info, err := s.Device.Stat(ctx, candidate)
		if err != nil {
			// Too-new and unreadable both just drop out of the
			// result; only the count distinguishes them.
			logger.Debug("stat failed", zap.String("path", candidate), zap.Error(err))
			result.StatFailures++
		} else if cutoff.Includes(info.ModifiedTime) {
			kind := domain.Classify(path.Base(candidate))
			result.Items = append(result.Items, domain.NewMediaItem(candidate, kind, info.ModifiedTime, info.SizeBytes))
		}

		if (i+1)%10 == 0 || i+1 == len(candidates) {
			s.report(i+1, len(candidates), fmt.Sprintf("Checking dates... found %d old files", len(result.Items)))
		}
	}

	logger.Info("scan complete",
		zap.Int("candidates", len(result.Items)),
		zap.Int("statFailures", result.StatFailures),
		zap.Int("folderFailures", len(result.FolderFailures)),
		zap.String("cutoff", cutoff.String()),
	)
	return result, nil
}

func (s *Scanner) report(current, total int, message string) {
	if s.OnProgress != nil {
		s.OnProgress(current, total, message)
	}
}
