package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"

	"github.com/vitalvas/secretrecover/lagrange"
	"github.com/vitalvas/secretrecover/report"
	"github.com/vitalvas/secretrecover/sharefile"
	"github.com/vitalvas/secretrecover/xcmd"
	"github.com/vitalvas/secretrecover/xlogger"
)

type result struct {
	secret *big.Int
	err    error
	done   bool
}

// runRecover processes every file and reports results in argument order.
// It returns 1 if any file failed.
func runRecover(ctx context.Context, conf *Config, files []string, stdout, stderr io.Writer) int {
	conf.Logger.Output = stderr
	logger := xlogger.New(conf.Logger)

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	go func() {
		if err := xcmd.WaitInterrupted(ctx); errors.Is(err, xcmd.ErrInterrupted) {
			logger.Warn("stopping", "reason", err)
			cancel(err)
		}
	}()

	results := make([]result, len(files))

	group, _ := xcmd.ErrGroup(ctx)
	group.SetLimit(conf.Workers)

	for i, file := range files {
		group.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return nil
			}

			secret, err := recoverFile(file, conf.Verify, logger)
			results[i] = result{secret: secret, err: err, done: true}
			return nil
		})
	}

	// Per-file failures stay in results, so Wait only reports cancellation.
	_ = group.Wait()

	for i := range results {
		if !results[i].done {
			results[i].err = context.Cause(ctx)
			if results[i].err == nil {
				results[i].err = context.Canceled
			}
		}
	}

	reporter := report.New(stdout, conf.Output)
	failed := 0

	for i, file := range files {
		var err error
		if results[i].err != nil {
			failed++
			err = reporter.Error(file, results[i].err)
		} else {
			err = reporter.Secret(file, results[i].secret)
		}

		if err != nil {
			logger.Error("failed to write result", "source", file, "error", err)
			return 1
		}
	}

	logger.Info("done", "files", len(files), "failed", failed)

	if failed > 0 {
		return 1
	}
	return 0
}

// recoverFile runs the Loader and Interpolator for one share record.
func recoverFile(path string, verify bool, logger *slog.Logger) (*big.Int, error) {
	record, err := sharefile.Load(path)
	if err != nil {
		return nil, err
	}

	points, err := record.Points()
	if err != nil {
		return nil, err
	}

	logger.Debug("decoded shares", "source", path, "points", len(points), "threshold", record.Keys.K)

	if verify {
		if err := lagrange.Verify(points, record.Keys.K); err != nil {
			return nil, err
		}
	}

	return lagrange.Secret(points, record.Keys.K)
}
