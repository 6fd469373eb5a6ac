package model

import (
	"fmt"
	"strings"

	"github.com/objectflow/objectflow-go/pkg/log"
)

// ValueKind identifies which variant of a Value is active.
type ValueKind uint8

const (
	KindBool ValueKind = iota
	KindInteger
	KindFloat
	KindString
	KindTime
	KindLink
)

var kindNames = []string{"bool", "integer", "float", "string", "time", "link"}

// String returns the kind name.
func (k ValueKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Valid returns true if k is a known kind.
func (k ValueKind) Valid() bool {
	return int(k) < len(kindNames)
}

// ParseValueKind parses a kind name (case-insensitive).
func ParseValueKind(s string) (ValueKind, error) {
	ls := strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == ls {
			return ValueKind(i), nil
		}
	}
	switch ls {
	case "boolean":
		return KindBool, nil
	case "int":
		return KindInteger, nil
	case "double":
		return KindFloat, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrValueKind, s)
}

// Time is a device time counter. It wraps on overflow.
type Time uint32

// Sub returns t - u modulo 2^32.
func (t Time) Sub(u Time) Time {
	return t - u
}

// Link references another object by its (type, instance) identity.
type Link struct {
	Type     uint16 `cbor:"1,keyasint"`
	Instance uint16 `cbor:"2,keyasint"`
}

// String returns the link as "type/instance".
func (l Link) String() string {
	return fmt.Sprintf("%d/%d", l.Type, l.Instance)
}

// Value is a tagged union of the resource payloads.
// Exactly one payload field is meaningful, selected by Kind.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
	t    Time
	l    Link
}

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Integer returns an integer value.
func Integer(i int64) Value { return Value{kind: KindInteger, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// TimeValue returns a time value.
func TimeValue(t Time) Value { return Value{kind: KindTime, t: t} }

// LinkValue returns a link value pointing at (typeID, instanceID).
func LinkValue(typeID, instanceID uint16) Value {
	return Value{kind: KindLink, l: Link{Type: typeID, Instance: instanceID}}
}

// ZeroValue returns the zero value for a kind.
func ZeroValue(kind ValueKind) Value {
	return Value{kind: kind}
}

// Kind returns the active variant.
func (v Value) Kind() ValueKind { return v.kind }

func (v Value) expect(kind ValueKind) error {
	if v.kind != kind {
		return fmt.Errorf("%w: have %s, want %s", ErrValueKind, v.kind, kind)
	}
	return nil
}

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, error) {
	if err := v.expect(KindBool); err != nil {
		return false, err
	}
	return v.b, nil
}

// AsInteger returns the integer payload.
func (v Value) AsInteger() (int64, error) {
	if err := v.expect(KindInteger); err != nil {
		return 0, err
	}
	return v.i, nil
}

// AsFloat returns the floating-point payload.
func (v Value) AsFloat() (float64, error) {
	if err := v.expect(KindFloat); err != nil {
		return 0, err
	}
	return v.f, nil
}

// AsString returns the string payload.
func (v Value) AsString() (string, error) {
	if err := v.expect(KindString); err != nil {
		return "", err
	}
	return v.s, nil
}

// AsTime returns the time payload.
func (v Value) AsTime() (Time, error) {
	if err := v.expect(KindTime); err != nil {
		return 0, err
	}
	return v.t, nil
}

// AsLink returns the link payload.
func (v Value) AsLink() (Link, error) {
	if err := v.expect(KindLink); err != nil {
		return Link{}, err
	}
	return v.l, nil
}

// Interface returns the active payload as a plain Go value.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInteger:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindTime:
		return uint32(v.t)
	case KindLink:
		return v.l
	default:
		return nil
	}
}

// Equal reports whether both values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	return v == o
}

// String formats the active payload.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInteger:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindTime:
		return fmt.Sprintf("t%d", uint32(v.t))
	case KindLink:
		return "->" + v.l.String()
	default:
		return "?"
	}
}

// wireValue is the CBOR shape of a Value.
type wireValue struct {
	Kind    ValueKind `cbor:"1,keyasint"`
	Bool    bool      `cbor:"2,keyasint,omitempty"`
	Integer int64     `cbor:"3,keyasint,omitempty"`
	Float   float64   `cbor:"4,keyasint,omitempty"`
	String  string    `cbor:"5,keyasint,omitempty"`
	Time    uint32    `cbor:"6,keyasint,omitempty"`
	Link    *Link     `cbor:"7,keyasint,omitempty"`
}

// MarshalCBOR encodes the value with integer keys. Flow traces carry
// this encoding in log.ValueData.Raw.
func (v Value) MarshalCBOR() ([]byte, error) {
	w := wireValue{Kind: v.kind}
	switch v.kind {
	case KindBool:
		w.Bool = v.b
	case KindInteger:
		w.Integer = v.i
	case KindFloat:
		w.Float = v.f
	case KindString:
		w.String = v.s
	case KindTime:
		w.Time = uint32(v.t)
	case KindLink:
		l := v.l
		w.Link = &l
	}
	return log.Marshal(w)
}

// UnmarshalCBOR decodes a value produced by MarshalCBOR.
func (v *Value) UnmarshalCBOR(data []byte) error {
	var w wireValue
	if err := log.Unmarshal(data, &w); err != nil {
		return err
	}
	if !w.Kind.Valid() {
		return fmt.Errorf("%w: %d", ErrValueKind, w.Kind)
	}
	*v = Value{kind: w.Kind}
	switch w.Kind {
	case KindBool:
		v.b = w.Bool
	case KindInteger:
		v.i = w.Integer
	case KindFloat:
		v.f = w.Float
	case KindString:
		v.s = w.String
	case KindTime:
		v.t = Time(w.Time)
	case KindLink:
		if w.Link != nil {
			v.l = *w.Link
		}
	}
	return nil
}
