// Package pyfmt renders tuples with Python-like format strings.
//
// Fields reference a sequence by name or by position: {digits}, {0}.
// A field may call a method, {0.upper()}, and align the value, {0:>5}.
package pyfmt

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

type Format struct {
	Input string
	// List of either literal or field, in order.
	Sections []any
	Fields   []*Field
}

func (f Format) IsStatic() bool {
	return len(f.Fields) == 0
}

type Field struct {
	Name   string
	Method string
	Align  byte
	Width  int
}

func Parse(f string) (format Format, err error) {
	err = format.Parse(f)
	return
}

func (f *Format) Parse(s string) error {
	f.Input = s
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			f.Sections = append(f.Sections, literal.String())
			literal.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '{' && i+1 < len(s) && s[i+1] == '{':
			literal.WriteByte('{')
			i++
		case c == '}' && i+1 < len(s) && s[i+1] == '}':
			literal.WriteByte('}')
			i++
		case c == '}':
			return fmt.Errorf("single } at %d", i)
		case c == '{':
			loc := strings.IndexByte(s[i:], '}')
			if loc == -1 {
				return errors.New("end of string before end of field")
			}
			field, err := parseField(s[i+1 : i+loc])
			if err != nil {
				return fmt.Errorf("%s: %w", s[i:i+loc+1], err)
			}
			flush()
			f.Sections = append(f.Sections, field)
			f.Fields = append(f.Fields, field)
			i += loc
		default:
			literal.WriteByte(c)
		}
	}
	flush()
	return nil
}

var methods = []string{"lower", "upper", "title", "strip"}

func parseField(s string) (*Field, error) {
	f := &Field{}
	before, spec, _ := strings.Cut(s, ":")
	if strings.HasSuffix(before, "()") {
		lastPoint := strings.LastIndex(before, ".")
		if lastPoint == -1 {
			return nil, errors.New("method without field")
		}
		f.Method = strings.TrimSuffix(before[lastPoint+1:], "()")
		before = before[:lastPoint]
		if !slices.Contains(methods, f.Method) {
			return nil, fmt.Errorf("unknown method %s()", f.Method)
		}
	}
	if before == "" {
		return nil, errors.New("empty field name")
	}
	f.Name = before

	if spec == "" {
		return f, nil
	}
	f.Align = '<'
	if spec[0] == '<' || spec[0] == '>' || spec[0] == '^' {
		f.Align = spec[0]
		spec = spec[1:]
	}
	width, err := strconv.Atoi(spec)
	if err != nil || width < 0 {
		return nil, fmt.Errorf("bad width %q", spec)
	}
	f.Width = width
	return f, nil
}

func (f Field) render(v string) string {
	switch f.Method {
	case "lower":
		v = strings.ToLower(v)
	case "upper":
		v = strings.ToUpper(v)
	case "title":
		if r := []rune(v); len(r) > 0 {
			v = strings.ToUpper(string(r[0])) + string(r[1:])
		}
	case "strip":
		v = strings.TrimSpace(v)
	}

	pad := f.Width - len([]rune(v))
	if pad <= 0 {
		return v
	}
	switch f.Align {
	case '>':
		return strings.Repeat(" ", pad) + v
	case '^':
		return strings.Repeat(" ", pad/2) + v + strings.Repeat(" ", pad-pad/2)
	default:
		return v + strings.Repeat(" ", pad)
	}
}

func (f Format) Format(values map[string]string) string {
	if values == nil {
		if !f.IsStatic() {
			panic("rendering dynamic format without values")
		}
		return f.String()
	}

	b := strings.Builder{}
	for _, item := range f.Sections {
		switch item := item.(type) {
		case string:
			b.WriteString(item)
		case *Field:
			b.WriteString(item.render(values[item.Name]))
		}
	}
	return b.String()
}

func (f Format) String() string {
	return f.Input
}

// Check returns an error if a field references an unknown name.
func (f Format) Check(names ...string) error {
	known := mapset.NewThreadUnsafeSet(names...)
	unknown := mapset.NewThreadUnsafeSet[string]()
	for _, field := range f.Fields {
		if !known.Contains(field.Name) {
			unknown.Add(field.Name)
		}
	}
	if unknown.Cardinality() == 0 {
		return nil
	}
	missing := unknown.ToSlice()
	slices.Sort(missing)
	return fmt.Errorf("unknown field %s", strings.Join(missing, ", "))
}

// Values maps names and positions to tuple fields.
func Values(names, fields []string) map[string]string {
	values := make(map[string]string, 2*len(fields))
	for i, v := range fields {
		values[strconv.Itoa(i)] = v
		if i < len(names) {
			values[names[i]] = v
		}
	}
	return values
}

// Keys lists names and positions accepted by Values.
func Keys(names []string) []string {
	keys := slices.Clone(names)
	for i := range names {
		keys = append(keys, strconv.Itoa(i))
	}
	return keys
}
