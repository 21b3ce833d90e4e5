package input

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gosimple/slug"
	"github.com/marcoimmel/IteratorTools/internal/lists"
	"github.com/marcoimmel/IteratorTools/seq"
)

// Sequence describes one input of a combinator.
//
// A sequence is either a finite list of values, or an infinite integer
// progression when Count is set.
type Sequence struct {
	Name   string
	Values []string
	Count  *Progression
}

type Progression struct {
	Start int
	Step  int
}

// Infinite sequences must be bounded by a limit or be the first source of a
// product.
func (s Sequence) Infinite() bool {
	return s.Count != nil
}

// Source returns a re-iterable source of the sequence values as strings.
func (s Sequence) Source() seq.Iterable[string] {
	if s.Count == nil {
		return seq.FromSlice(s.Values)
	}
	ints := s.Ints()
	return seq.FromSeq(func(yield func(string) bool) {
		for v := range seq.All(ints.Cursor()) {
			if !yield(strconv.Itoa(v)) {
				return
			}
		}
	})
}

// Ints returns the progression source. Panics if sequence is not a progression.
func (s Sequence) Ints() seq.Iterable[int] {
	if s.Count == nil {
		panic("input: not a progression")
	}
	return seq.Count(s.Count.Start, s.Count.Step)
}

func (s Sequence) String() string {
	if s.Count != nil {
		return fmt.Sprintf("%s=count:%d:%d", s.Name, s.Count.Start, s.Count.Step)
	}
	return fmt.Sprintf("%s=%s", s.Name, strings.Join(s.Values, ","))
}

// Parse a sequence from command line.
//
// Accepted forms are "v1,v2,v3", "count:START" and "count:START:STEP",
// optionally prefixed by "name=". An empty list of values is an empty
// sequence.
func Parse(spec string) (s Sequence, err error) {
	name, values, found := strings.Cut(spec, "=")
	if found {
		s.Name = name
	} else {
		values = spec
	}

	if rest, ok := strings.CutPrefix(values, "count:"); ok {
		s.Count, err = parseProgression(rest)
		if err != nil {
			return s, fmt.Errorf("%s: %w", spec, err)
		}
		return s, nil
	}

	if values != "" {
		s.Values = strings.Split(values, ",")
	}
	return s, nil
}

func parseProgression(spec string) (*Progression, error) {
	p := Progression{Step: 1}
	start, step, hasStep := strings.Cut(spec, ":")
	var err error
	p.Start, err = strconv.Atoi(start)
	if err != nil {
		return nil, fmt.Errorf("bad start: %w", err)
	}
	if hasStep {
		p.Step, err = strconv.Atoi(step)
		if err != nil {
			return nil, fmt.Errorf("bad step: %w", err)
		}
	}
	return &p, nil
}

// Normalize names and check sequence consistency.
//
// Unnamed sequences are named after their position, starting at 1.
func (s *Sequence) Normalize(index int) error {
	if s.Name == "" {
		s.Name = fmt.Sprintf("seq%d", index+1)
	}
	name := slug.Make(s.Name)
	if name == "" {
		return fmt.Errorf("sequence %d: invalid name %q", index+1, s.Name)
	}
	s.Name = name
	if s.Count != nil && len(s.Values) > 0 {
		return fmt.Errorf("%s: values and count are mutually exclusive", s.Name)
	}
	if s.Count != nil && s.Count.Step == 0 {
		return fmt.Errorf("%s: %w", s.Name, errZeroStep)
	}
	return nil
}

var errZeroStep = errors.New("count step must not be zero")

// Distinct drops duplicate values, keeping first occurrence order.
func (s *Sequence) Distinct() {
	if s.Count != nil {
		return
	}
	seen := mapset.NewThreadUnsafeSet[string]()
	dups := mapset.NewThreadUnsafeSet[string]()
	s.Values = lists.Filter(s.Values, func(v string) bool {
		if seen.Add(v) {
			return true
		}
		dups.Add(v)
		return false
	})
	if dups.Cardinality() > 0 {
		slog.Debug("Dropped duplicate values.", "sequence", s.Name, "values", dups)
	}
}

// Exclude drops values matching one of the patterns of bl.
//
// bl must be checked before.
func (s *Sequence) Exclude(bl lists.Blacklist) {
	if s.Count != nil || len(bl) == 0 {
		return
	}
	s.Values = lists.Filter(s.Values, func(v string) bool {
		match := bl.MatchString(v)
		if match != "" {
			slog.Debug("Excluding value.", "sequence", s.Name, "value", v, "pattern", match)
			return false
		}
		return true
	})
}
