package input

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"reflect"

	"github.com/marcoimmel/IteratorTools/internal/errorlist"
	"github.com/marcoimmel/IteratorTools/internal/lists"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// File is the YAML document describing sequences.
//
//	sequences:
//	- name: digits
//	  values: [1, 2, 3]
//	- name: naturals
//	  count: {start: 0, step: 1}
type File struct {
	Sequences []Sequence `mapstructure:"sequences"`
}

// Options controls normalization of loaded sequences.
type Options struct {
	Distinct bool
	Exclude  lists.Blacklist
}

// Load sequences from command line specs, or from YAML file at path if
// specs is empty. Path - reads standard input.
func Load(specs []string, path string, opts Options) (sequences []Sequence, err error) {
	err = opts.Exclude.Check()
	if err != nil {
		return nil, fmt.Errorf("exclude: %w", err)
	}

	if len(specs) > 0 {
		if path != "" {
			slog.Warn("Ignoring input file, sequences are defined on command line.", "path", path)
		}
		sequences, err = ParseAll(specs)
	} else if path != "" {
		sequences, err = ReadFile(path)
	}
	if err != nil {
		return
	}

	errs := errorlist.New("invalid sequences")
	for i := range sequences {
		s := &sequences[i]
		if !errs.Append(s.Normalize(i)) {
			break
		}
		s.Exclude(opts.Exclude)
		if opts.Distinct {
			s.Distinct()
		}
		slog.Debug("Loaded sequence.", "sequence", s.Name, "values", len(s.Values), "infinite", s.Infinite())
	}
	return sequences, errs.Err()
}

func ParseAll(specs []string) (sequences []Sequence, err error) {
	errs := errorlist.New("invalid sequences")
	for _, spec := range specs {
		s, err := Parse(spec)
		if !errs.Append(err) {
			break
		}
		sequences = append(sequences, s)
	}
	return sequences, errs.Err()
}

// ReadFile decodes YAML from file path or stdin if path is -.
func ReadFile(path string) ([]Sequence, error) {
	var fo io.ReadCloser
	if path == "-" {
		slog.Info("Reading sequences from standard input.")
		fo = os.Stdin
	} else {
		var err error
		fo, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fo.Close() //nolint:errcheck
	}
	return Decode(fo)
}

func Decode(r io.Reader) ([]Sequence, error) {
	var values any
	dec := yaml.NewDecoder(r)
	err := dec.Decode(&values)
	if err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("YAML error: %w", err)
	}

	var f File
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  decodeMapHook,
		ErrorUnused: true,
		Result:      &f,
		// Numbers are decoded as strings.
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	err = d.Decode(values)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return f.Sequences, nil
}

// Decode custom types for mapstructure. Implements mapstructure.DecodeHookFuncValue.
//
// count accepts a map with an optional step, or a plain start value.
func decodeMapHook(from, to reflect.Value) (any, error) {
	if to.Type() != reflect.TypeOf(Progression{}) {
		return from.Interface(), nil
	}
	switch v := from.Interface().(type) {
	case map[string]any:
		if _, ok := v["step"]; !ok {
			v = maps.Clone(v)
			v["step"] = 1
		}
		return v, nil
	case int, string:
		return map[string]any{"start": v, "step": 1}, nil
	}
	return from.Interface(), nil
}
