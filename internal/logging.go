package internal

import (
	"log/slog"
	"os"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/lmittmann/tint"
)

var CurrentLevel slog.Level

var levelStrings = map[slog.Level]string{
	slog.LevelDebug: "\033[2mDEBUG",
	slog.LevelInfo:  "\033[1mINFO ",
	slog.LevelWarn:  "\033[1;38;5;185mWARN ",
	slog.LevelError: "\033[1;31mERROR",
}

func SetLoggingHandler(level slog.Level, color bool) {
	CurrentLevel = level
	var h slog.Handler
	if color {
		h = tint.NewHandler(os.Stderr, &tint.Options{
			Level:       level,
			ReplaceAttr: replaceAttr,
			TimeFormat:  "15:04:05",
		})
	} else {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				return dropNilErr(flattenSet(a))
			},
		})
	}
	slog.SetDefault(slog.New(h))
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		level, ok := a.Value.Any().(slog.Level)
		if ok {
			a.Value = slog.StringValue(levelStrings[level])
		}
	}
	return dropNilErr(flattenSet(a))
}

// flattenSet renders string sets as plain lists.
func flattenSet(a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindAny {
		return a
	}
	set, ok := a.Value.Any().(mapset.Set[string])
	if ok {
		a.Value = slog.AnyValue(set.ToSlice())
	}
	return a
}

func dropNilErr(a slog.Attr) slog.Attr {
	if a.Key == "err" && a.Value.Kind() == slog.KindAny && a.Value.Any() == nil {
		return slog.Attr{}
	}
	return a
}
