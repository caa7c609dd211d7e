package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/uyouii/posterior-shades/common"
)

type StyleKind int

const (
	NumberStyle StyleKind = 1
	StringStyle StyleKind = 2
	BoolStyle   StyleKind = 3
)

func (k StyleKind) String() string {
	switch k {
	case NumberStyle:
		return "number"
	case StringStyle:
		return "string"
	case BoolStyle:
		return "bool"
	}
	return "unknown"
}

// StyleValue holds one rendering option, a number, a string or a bool.
type StyleValue struct {
	kind StyleKind
	num  float64
	str  string
	b    bool
}

func Number(v float64) StyleValue {
	return StyleValue{kind: NumberStyle, num: v}
}

func String(v string) StyleValue {
	return StyleValue{kind: StringStyle, str: v}
}

func Bool(v bool) StyleValue {
	return StyleValue{kind: BoolStyle, b: v}
}

func (v StyleValue) Kind() StyleKind {
	return v.kind
}

func (v StyleValue) Number() (float64, bool) {
	return v.num, v.kind == NumberStyle
}

func (v StyleValue) Str() (string, bool) {
	return v.str, v.kind == StringStyle
}

func (v StyleValue) Bool() (bool, bool) {
	return v.b, v.kind == BoolStyle
}

func (v StyleValue) String() string {
	switch v.kind {
	case NumberStyle:
		return fmt.Sprintf("%v", v.num)
	case StringStyle:
		return v.str
	case BoolStyle:
		return fmt.Sprintf("%v", v.b)
	}
	return "<invalid>"
}

// Style maps option names (color, alpha, linewidth, ...) to values. Its
// contents are only interpreted by the plotting surface.
type Style map[string]StyleValue

func (s Style) Clone() Style {
	res := make(Style, len(s))
	for k, v := range s {
		res[k] = v
	}
	return res
}

// Merge returns a new style with overrides applied on top of s.
func (s Style) Merge(overrides Style) Style {
	res := s.Clone()
	for k, v := range overrides {
		res[k] = v
	}
	return res
}

func (s Style) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s Style) String() string {
	parts := make([]string, 0, len(s))
	for _, k := range s.Keys() {
		parts = append(parts, k+"="+s[k].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// StyleFromMap converts decoded config values into a Style.
func StyleFromMap(m map[string]interface{}) (Style, error) {
	res := make(Style, len(m))
	for k, raw := range m {
		switch v := raw.(type) {
		case float64:
			res[k] = Number(v)
		case float32:
			res[k] = Number(float64(v))
		case int:
			res[k] = Number(float64(v))
		case int64:
			res[k] = Number(float64(v))
		case int32:
			res[k] = Number(float64(v))
		case uint64:
			res[k] = Number(float64(v))
		case string:
			res[k] = String(v)
		case bool:
			res[k] = Bool(v)
		default:
			return nil, errors.Wrapf(common.ErrorInvalidStyle, "option %q has unsupported type %T", k, raw)
		}
	}
	return res, nil
}
