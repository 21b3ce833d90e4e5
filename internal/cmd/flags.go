package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/marcoimmel/IteratorTools/internal"
	"github.com/marcoimmel/IteratorTools/internal/lists"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

const envPrefix = "ITERTOOLS_"

func registerFlags(flags *pflag.FlagSet) {
	flags.Bool("color", defaultColor(), "Force color output.")
	flags.StringP("input", "i", "", "Path to YAML file describing sequences. Use - for stdin.")
	flags.StringArrayP("sequence", "s", nil, "Sequence as v1,v2,... or count:START[:STEP], optionally prefixed by NAME=. Repeat for each sequence.")
	flags.Bool("distinct", false, "Drop duplicate values in each sequence.")
	flags.StringArrayP("exclude", "x", nil, "Drop values matching fnmatch pattern.")
	flags.IntP("limit", "n", 0, "Stop after N tuples. Required for infinite sequences.")
	flags.String("separator", "\t", "Field separator.")
	flags.Bool("header", false, "Print sequence names first.")
	flags.String("format", "", "Format each tuple like {0}-{letters.upper()}, overriding separator.")
	flags.CountP("quiet", "q", "Decrease log verbosity.")
	flags.CountP("verbose", "v", "Increase log verbosity.")
}

func defaultColor() bool {
	plain := os.Getenv("NO_COLOR")
	if plain != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}

// Controller holds flags/env values controlling the execution of itertools.
type Controller struct {
	Color     bool            `koanf:"color"`
	Input     string          `koanf:"input"`
	Sequences []string        `koanf:"sequence"`
	Distinct  bool            `koanf:"distinct"`
	Exclude   lists.Blacklist `koanf:"exclude"`
	Limit     int             `koanf:"limit"`
	Separator string          `koanf:"separator"`
	Header    bool            `koanf:"header"`
	Format    string          `koanf:"format"`
	Fill      []string        `koanf:"fill"`
	Quiet     int             `koanf:"quiet"`
	Verbose   int             `koanf:"verbose"`
	Verbosity string          `koanf:"verbosity"`
	LogLevel  slog.Level      `koanf:"-"`
}

var levels = []slog.Level{
	slog.LevelDebug,
	slog.LevelInfo,
	slog.LevelWarn,
	slog.LevelError,
}

// loadController merges defaults, .env file, environment and flags, in this
// order of precedence.
func loadController(flags *pflag.FlagSet) (controller Controller, err error) {
	k := koanf.New(".")
	_ = k.Load(confmap.Provider(map[string]any{
		"color":     defaultColor(),
		"separator": "\t",
	}, k.Delim()), nil)

	err = loadDotEnv(".env")
	if err != nil {
		return
	}

	_ = k.Load(env.Provider(envPrefix, k.Delim(), func(key string) string {
		slog.Debug("Loading environment var.", "var", key)
		key = strings.TrimPrefix(key, envPrefix)
		return strings.ReplaceAll(strings.ToLower(key), "_", "-")
	}), nil)

	err = k.Load(posflag.Provider(flags, k.Delim(), k), nil)
	if err != nil {
		return controller, fmt.Errorf("flags: %w", err)
	}

	err = k.UnmarshalWithConf("", &controller, koanf.UnmarshalConf{Tag: "koanf"})
	if err != nil {
		return controller, fmt.Errorf("config: %w", err)
	}

	controller.LogLevel = controller.level()
	return
}

// loadDotEnv exports variables from path, without overriding environment.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("Loaded environment file.", "path", path)
	return nil
}

func (c Controller) level() slog.Level {
	switch c.Verbosity {
	case "":
		// Default log level is INFO, which index is 1.
		levelIndex := 1 - c.Verbose + c.Quiet
		levelIndex = max(0, levelIndex)
		levelIndex = min(levelIndex, len(levels)-1)
		return levels[levelIndex]
	default:
		var level slog.Level
		err := level.UnmarshalText([]byte(c.Verbosity))
		if err == nil {
			return level
		}
		slog.Warn("Bad verbosity.", "source", "env", "value", c.Verbosity)
		return internal.CurrentLevel
	}
}
