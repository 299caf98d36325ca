// SPDX-License-Identifier: MIT

// Package logger builds the zap logger used by the mincut command from the
// resolved configuration.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/mincut/config"
)

// Rotation limits of the log file.
const (
	maxSizeMB  = 50
	maxBackups = 5
	maxAgeDays = 14
)

// New returns a console logger at cfg.LogLevel whose timestamps use
// cfg.LogTimeFormat. Output goes to stderr, or to a rotating cfg.LogFile when
// set. The returned closer releases the file.
func New(cfg config.Config) (*zap.Logger, io.Closer, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, nil, errors.Wrap(err, "create logger")
	}
	if cfg.LogTimeFormat == "" {
		return nil, nil, errors.Wrap(config.ErrBadTimeFormat, "create logger")
	}

	var (
		ws     zapcore.WriteSyncer
		closer io.Closer = io.NopCloser(nil)
	)
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, nil, errors.Wrap(err, "create logger")
		}
		rot := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
		}
		ws, closer = zapcore.AddSync(rot), rot
	} else {
		ws = zapcore.Lock(os.Stderr)
	}

	encCfg := zap.NewProductionEncoderConfig()
	if lvl == zapcore.DebugLevel {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.LogTimeFormat)

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, lvl)

	return zap.New(core, zap.AddCaller()), closer, nil
}
