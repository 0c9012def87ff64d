package interp

import "fmt"

// Kind tags a runtime value. The set is closed.
type Kind int

const (
	KindNil Kind = iota
	KindString
	KindInteger
	KindBoolean
)

// Value is plain data with no identity: copying one is cheap and duplicates
// share nothing the engine cares about.
type Value struct {
	Kind Kind
	Str  string
	Int  int64
	Bool bool
}

func Str(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func Int(n int64) Value {
	return Value{Kind: KindInteger, Int: n}
}

func Bool(b bool) Value {
	return Value{Kind: KindBoolean, Bool: b}
}

func (v Value) TypeName() string {
	switch v.Kind {
	case KindString:
		return "String"
	case KindInteger:
		return "Integer"
	case KindBoolean:
		return "Boolean"
	default:
		return "Nil"
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return fmt.Sprintf("String(%q)", v.Str)
	case KindInteger:
		return fmt.Sprintf("Integer(%d)", v.Int)
	case KindBoolean:
		return fmt.Sprintf("Boolean(%t)", v.Bool)
	default:
		return "Nil"
	}
}
