package domain

import (
	"bytes"
	"encoding/json"
)

// Kind classifies the JSON shape of a Field.
type Kind int

// Field shapes.
const (
	KindAbsent Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindObject
	KindArray
)

// String returns the shape name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "absent"
	}
}

// Field is a raw cache value whose shape is only known at runtime.
// The Granola cache is another application's internal format, so every
// optional value is held undecoded and matched on its shape when read.
// The zero value is an absent field.
type Field []byte

// UnmarshalJSON stores a copy of the raw value.
func (f *Field) UnmarshalJSON(data []byte) error {
	*f = append((*f)[0:0], data...)
	return nil
}

// MarshalJSON returns the raw value, or null when absent.
func (f Field) MarshalJSON() ([]byte, error) {
	if len(f) == 0 {
		return []byte("null"), nil
	}
	return f, nil
}

// Kind reports the JSON shape of the field.
func (f Field) Kind() Kind {
	b := bytes.TrimSpace(f)
	if len(b) == 0 {
		return KindAbsent
	}
	switch b[0] {
	case 'n':
		return KindNull
	case '"':
		return KindString
	case '{':
		return KindObject
	case '[':
		return KindArray
	case 't', 'f':
		return KindBool
	default:
		return KindNumber
	}
}

// AsString returns the field as a string if it holds one.
func (f Field) AsString() (string, bool) {
	if f.Kind() != KindString {
		return "", false
	}
	var s string
	if err := json.Unmarshal(f, &s); err != nil {
		return "", false
	}
	return s, true
}

// Text returns the field's string value, or "" for any other shape.
func (f Field) Text() string {
	s, _ := f.AsString()
	return s
}

// AsObject returns the field's members if it holds an object.
func (f Field) AsObject() (map[string]Field, bool) {
	if f.Kind() != KindObject {
		return nil, false
	}
	var m map[string]Field
	if err := json.Unmarshal(f, &m); err != nil {
		return nil, false
	}
	return m, true
}

// AsArray returns the field's elements if it holds an array.
func (f Field) AsArray() ([]Field, bool) {
	if f.Kind() != KindArray {
		return nil, false
	}
	var items []Field
	if err := json.Unmarshal(f, &items); err != nil {
		return nil, false
	}
	return items, true
}

// Truthy reports whether the field holds a non-empty value: a non-empty
// string or container, a non-zero number, or true.
func (f Field) Truthy() bool {
	switch f.Kind() {
	case KindString:
		return f.Text() != ""
	case KindBool:
		var b bool
		return json.Unmarshal(f, &b) == nil && b
	case KindNumber:
		var n float64
		return json.Unmarshal(f, &n) == nil && n != 0
	case KindObject:
		m, _ := f.AsObject()
		return len(m) > 0
	case KindArray:
		items, _ := f.AsArray()
		return len(items) > 0
	default:
		return false
	}
}
