package xlogger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level      string `yaml:"level" json:"level" default:"info"`
	LogType    string `yaml:"type" json:"type" default:"text"`
	AddSource  bool   `yaml:"add_source" json:"add_source"`
	SourcePath string `yaml:"source_path" json:"source_path"`

	// Output defaults to stdout.
	Output io.Writer `yaml:"-" json:"-"`
}

func New(conf Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   conf.AddSource,
		Level:       getLogLevel(conf.Level),
		ReplaceAttr: replaceAttr(conf),
	}

	output := conf.Output
	if output == nil {
		output = os.Stdout
	}

	return slog.New(getHandler(conf.LogType, output, opts))
}

func getLogLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getHandler(logType string, w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(logType) {
	case "json":
		return slog.NewJSONHandler(w, opts)

	default:
		return slog.NewTextHandler(w, opts)
	}
}

func replaceAttr(conf Config) func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, attr slog.Attr) slog.Attr {
		if attr.Key != slog.SourceKey {
			return attr
		}

		source, ok := attr.Value.Any().(*slog.Source)
		if !ok || source == nil {
			return attr
		}

		return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", trimSourcePath(source.File, conf.SourcePath), source.Line))
	}
}

// trimSourcePath cuts everything up to and including prefix from file.
func trimSourcePath(file, prefix string) string {
	if prefix == "" {
		return file
	}

	if index := strings.Index(file, prefix); index >= 0 {
		return file[index+len(prefix):]
	}

	return file
}
