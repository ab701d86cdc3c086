package flow

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind tags the shape an answer value carries.
type Kind int

const (
	KindUnanswered Kind = iota
	KindString
	KindNumber
	KindStringList
)

// Value is a single answer: a string for text/choice questions, a number
// for scale questions, or a string list for multi-select questions. The
// zero Value is the explicit "unanswered" sentinel.
type Value struct {
	kind Kind
	str  string
	num  float64
	list []string
}

// Unanswered is the sentinel returned for questions with no answer yet.
var Unanswered = Value{}

// String wraps a text or single-choice answer.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number wraps a numeric answer.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// StringList wraps a multi-select answer.
func StringList(items ...string) Value {
	list := make([]string, len(items))
	copy(list, items)
	return Value{kind: KindStringList, list: list}
}

// Kind returns the value's shape tag.
func (v Value) Kind() Kind {
	return v.kind
}

// Answered reports whether the value is anything other than the sentinel.
func (v Value) Answered() bool {
	return v.kind != KindUnanswered
}

// Str returns the string content for KindString values.
func (v Value) Str() string {
	return v.str
}

// Num returns the numeric content for KindNumber values.
func (v Value) Num() float64 {
	return v.num
}

// List returns a copy of the string list for KindStringList values.
func (v Value) List() []string {
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out
}

// AsNumber attempts a numeric reading of the value. Numeric strings are
// accepted so threshold rules keep working when a client submits "1"
// instead of 1.
func (v Value) AsNumber() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		n, err := strconv.ParseFloat(v.str, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Equals reports whether the value matches a string literal. Numbers match
// their canonical formatting so eq rules can target numeric answers.
func (v Value) Equals(literal string) bool {
	switch v.kind {
	case KindString:
		return v.str == literal
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64) == literal
	default:
		return false
	}
}

// MarshalJSON writes the raw answer value: string, number, or array. The
// persisted shape matches what the consumer UI stores.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindUnanswered:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindStringList:
		return json.Marshal(v.list)
	default:
		return nil, fmt.Errorf("flow: unknown value kind %d", v.kind)
	}
}

// UnmarshalJSON restores a value from its raw JSON shape.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = Unanswered
	case string:
		*v = String(t)
	case float64:
		*v = Number(t)
	case bool:
		// Legacy clients stored yes/no toggles as booleans.
		*v = String(strconv.FormatBool(t))
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("flow: answer list contains non-string element %v", item)
			}
			items = append(items, s)
		}
		*v = StringList(items...)
	default:
		return fmt.Errorf("flow: unsupported answer value %T", raw)
	}
	return nil
}
