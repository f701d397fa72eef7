package etcart

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// LooseKind is the JSON kind a Loose value was decoded from.
type LooseKind int

const (
	KindMissing LooseKind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindOther
)

// Loose holds a scalar from untrusted JSON without committing to a Go type.
// Stored carts and request bodies carry pack and qty as numbers, as strings
// ("2kg") or not at all; normalization decides what they mean.
type Loose struct {
	kind LooseKind
	text string
}

// Str wraps a string value.
func Str(s string) Loose { return Loose{kind: KindString, text: s} }

// Int wraps an integer value.
func Int(n int) Loose { return Loose{kind: KindNumber, text: strconv.Itoa(n)} }

// Null is an explicit JSON null.
func Null() Loose { return Loose{kind: KindNull} }

// Kind returns the decoded JSON kind.
func (l Loose) Kind() LooseKind { return l.kind }

// IsZero reports whether the value was absent.
func (l Loose) IsZero() bool { return l.kind == KindMissing }

// String renders the value the way it reads on a label: numbers as written,
// booleans as true/false, null and missing as empty.
func (l Loose) String() string {
	switch l.kind {
	case KindString, KindNumber, KindBool:
		return l.text
	default:
		return ""
	}
}

// Text is String for truthy values and empty otherwise, the "value or
// fallback" reading of a label.
func (l Loose) Text() string {
	if !l.Truthy() {
		return ""
	}
	return l.String()
}

// Truthy mirrors the storefront's "value or fallback" checks: missing, null,
// false, empty strings and numeric zero are falsy.
func (l Loose) Truthy() bool {
	switch l.kind {
	case KindMissing, KindNull:
		return false
	case KindString:
		return l.text != ""
	case KindBool:
		return l.text == "true"
	case KindNumber:
		f, err := strconv.ParseFloat(l.text, 64)
		return err == nil && f != 0 && !math.IsNaN(f)
	default:
		return true
	}
}

// Float returns the numeric value for number kinds.
func (l Loose) Float() (float64, bool) {
	if l.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(l.text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Loose) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*l = Loose{}
		return nil
	}
	switch c := data[0]; {
	case c == 'n':
		*l = Loose{kind: KindNull}
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Loose{kind: KindString, text: s}
	case c == 't' || c == 'f':
		*l = Loose{kind: KindBool, text: string(data)}
	case c == '-' || (c >= '0' && c <= '9'):
		*l = Loose{kind: KindNumber, text: numberText(string(data))}
	default:
		*l = Loose{kind: KindOther}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (l Loose) MarshalJSON() ([]byte, error) {
	switch l.kind {
	case KindString:
		return json.Marshal(l.text)
	case KindNumber, KindBool:
		return []byte(l.text), nil
	default:
		return []byte("null"), nil
	}
}

// numberText writes a JSON number the way a browser prints it: 2.50 as
// "2.5", 1e3 as "1000", -0 as "0".
func numberText(raw string) string {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	switch {
	case f == 0:
		return "0"
	case math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}
