package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"phosweep/internal/domain"
	"phosweep/internal/logging"
)

// Executor removes a batch of media items from the device. A failed
// remove is recorded and the batch continues; with simulate set it is
// a pure dry run that never issues a device mutation.
type Executor struct {
	Device     Device
	Logger     *zap.Logger
	OnProgress ProgressFunc
}

// Execute processes items in input order and returns the report.
// Items already gone from the device show up as failures like any
// other; the executor makes no distinction.
func (e *Executor) Execute(ctx context.Context, items []domain.MediaItem, simulate bool) (domain.DeletionReport, error) {
	if e.Device == nil {
		return domain.DeletionReport{}, errors.New("executor requires a device")
	}
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	stop := logging.Measure(logger, "delete")
	defer stop()

	report := domain.DeletionReport{
		Attempted: len(items),
		Simulated: simulate,
	}

	verb := "Deleting"
	if simulate {
		verb = "Simulating"
	}

	for i, item := range items {
		if simulate {
			report.Succeeded++
		} else if err := e.Device.Remove(ctx, item.Path); err != nil {
			logger.Warn("remove failed", zap.String("path", item.Path), zap.Error(err))
			report.Failed = append(report.Failed, domain.ItemFailure{
				Filename: item.Filename,
				Cause:    err.Error(),
			})
		} else {
			logger.Debug("removed", zap.String("path", item.Path))
			report.Succeeded++
		}

		e.report(i+1, len(items), fmt.Sprintf("%s: %s", verb, item.Filename))
	}

	logger.Info("deletion complete",
		zap.Int("attempted", report.Attempted),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", len(report.Failed)),
		zap.Bool("simulated", report.Simulated),
	)
	return report, nil
}

func (e *Executor) report(current, total int, message string) {
	if e.OnProgress != nil {
		e.OnProgress(current, total, message)
	}
}
