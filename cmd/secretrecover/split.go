package main

import (
	"io"

	"github.com/vitalvas/secretrecover/lagrange"
	"github.com/vitalvas/secretrecover/sharefile"
	"github.com/vitalvas/secretrecover/xlogger"
)

func runSplit(conf *splitConfig, stdout, stderr io.Writer) int {
	logger := xlogger.New(xlogger.Config{Level: "info", Output: stderr})

	points, err := lagrange.Split(conf.Secret, conf.Threshold, conf.Shares, conf.CoefficientBits)
	if err != nil {
		logger.Error("failed to split secret", "error", err)
		return 1
	}

	if err := sharefile.Encode(stdout, conf.Threshold, points, conf.Base, conf.Format); err != nil {
		logger.Error("failed to write record", "error", err)
		return 1
	}

	logger.Debug("wrote record", "threshold", conf.Threshold, "shares", len(points), "base", conf.Base)
	return 0
}
