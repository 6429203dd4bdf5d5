package logger

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  Level
	Format Format
	App    string
}

// slogLogger adapta gookit/slog a la interfaz Logger (campos como map).
type slogLogger struct {
	lg    *slog.Logger
	level Level
	base  map[string]any
}

func New(opts Options) Logger {
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	h := handler.NewConsoleHandler(levelsUpTo(opts.Level))
	if format == FormatJSON {
		h.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
			f.Fields = []string{
				slog.FieldKeyDatetime,
				slog.FieldKeyLevel,
				slog.FieldKeyMessage,
			}
			f.Aliases = slog.StringMap{
				slog.FieldKeyDatetime: "ts",
				slog.FieldKeyLevel:    "level",
				slog.FieldKeyMessage:  "msg",
			}
			f.TimeFormat = "2006-01-02T15:04:05.000Z07:00"
		}))
	}

	base := map[string]any{}
	if strings.TrimSpace(opts.App) != "" {
		base["app"] = strings.TrimSpace(opts.App)
	}

	return &slogLogger{
		lg:    slog.NewWithHandlers(h),
		level: opts.Level,
		base:  base,
	}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME=rescue-dog-favorites (opcional)
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

func (l *slogLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}

	// shallow copy del logger (comparte handler y level)
	return &slogLogger{
		lg:    l.lg,
		level: l.level,
		base:  merge(l.base, fields),
	}
}

func (l *slogLogger) Debug(msg string, fields map[string]any) { l.log(Debug, msg, fields) }
func (l *slogLogger) Info(msg string, fields map[string]any)  { l.log(Info, msg, fields) }
func (l *slogLogger) Warn(msg string, fields map[string]any)  { l.log(Warn, msg, fields) }
func (l *slogLogger) Error(msg string, fields map[string]any) { l.log(Error, msg, fields) }

func (l *slogLogger) log(lvl Level, msg string, fields map[string]any) {
	if lvl < l.level {
		return
	}

	rec := l.lg.WithFields(slog.M(merge(l.base, fields)))
	switch lvl {
	case Debug:
		rec.Debug(msg)
	case Warn:
		rec.Warn(msg)
	case Error:
		rec.Error(msg)
	default:
		rec.Info(msg)
	}
}

// Discard devuelve un logger que no escribe nada (tests, adapters sin logger).
func Discard() Logger { return discard{} }

type discard struct{}

func (d discard) With(map[string]any) Logger    { return d }
func (discard) Debug(string, map[string]any) {}
func (discard) Info(string, map[string]any)  {}
func (discard) Warn(string, map[string]any)  {}
func (discard) Error(string, map[string]any) {}

func merge(base, fields map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(fields))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		out[k] = v
	}
	return out
}

func levelsUpTo(l Level) slog.Levels {
	max := slog.LevelByName(l.String())

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= max {
			levels = append(levels, lv)
		}
	}
	return levels
}
