// Package meta defines the tagged value type carried by token annotations.
// A Value holds exactly one kind; readers state the kind they expect and get
// a KindError back on a mismatch instead of a panic, so a misbehaving
// pipeline stage cannot take down an otherwise healthy run.
package meta

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindString
	KindInt
	KindUint
	KindIndex
	KindList
	KindMap
)

// String returns the kind name for error messages.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindIndex:
		return "index"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// KindError reports a read under the wrong expected kind.
type KindError struct {
	Expected Kind
	Found    Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("meta: expected %s value, found %s", e.Expected, e.Found)
}

// Value is a tagged union over annotation value types. The zero Value is
// invalid; construct values with Bool, String, Int, Uint, Index, List or Map.
type Value struct {
	kind Kind
	b    bool
	s    string
	i    int64
	u    uint64
	n    int
	list []Value
	m    map[string]Value
}

// Bool wraps a boolean.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// String wraps a string.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Int wraps a signed integer.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Uint wraps an unsigned integer.
func Uint(v uint64) Value { return Value{kind: KindUint, u: v} }

// Index wraps a token position.
func Index(v int) Value { return Value{kind: KindIndex, n: v} }

// List wraps an ordered sequence of values.
func List(items ...Value) Value { return Value{kind: KindList, list: items} }

// Map wraps a string-keyed mapping of values. Iteration order is by sorted
// key via Keys.
func Map(m map[string]Value) Value { return Value{kind: KindMap, m: m} }

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean variant.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, &KindError{Expected: KindBool, Found: v.kind}
	}
	return v.b, nil
}

// String returns the string variant.
func (v Value) String() (string, error) {
	if v.kind != KindString {
		return "", &KindError{Expected: KindString, Found: v.kind}
	}
	return v.s, nil
}

// Int returns the signed integer variant.
func (v Value) Int() (int64, error) {
	if v.kind != KindInt {
		return 0, &KindError{Expected: KindInt, Found: v.kind}
	}
	return v.i, nil
}

// Uint returns the unsigned integer variant.
func (v Value) Uint() (uint64, error) {
	if v.kind != KindUint {
		return 0, &KindError{Expected: KindUint, Found: v.kind}
	}
	return v.u, nil
}

// Index returns the token-position variant.
func (v Value) Index() (int, error) {
	if v.kind != KindIndex {
		return 0, &KindError{Expected: KindIndex, Found: v.kind}
	}
	return v.n, nil
}

// Items returns the list variant.
func (v Value) Items() ([]Value, error) {
	if v.kind != KindList {
		return nil, &KindError{Expected: KindList, Found: v.kind}
	}
	return v.list, nil
}

// Entries returns the map variant.
func (v Value) Entries() (map[string]Value, error) {
	if v.kind != KindMap {
		return nil, &KindError{Expected: KindMap, Found: v.kind}
	}
	return v.m, nil
}

// Keys returns the sorted keys of a map value, or nil for other kinds.
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarshalJSON encodes the value as a single-key object tagged by kind,
// e.g. {"uint":120} or {"index":3}. Map entries are emitted in key order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return json.Marshal(map[string]bool{"bool": v.b})
	case KindString:
		return json.Marshal(map[string]string{"string": v.s})
	case KindInt:
		return json.Marshal(map[string]int64{"int": v.i})
	case KindUint:
		return json.Marshal(map[string]uint64{"uint": v.u})
	case KindIndex:
		return json.Marshal(map[string]int{"index": v.n})
	case KindList:
		return json.Marshal(map[string][]Value{"list": v.list})
	case KindMap:
		return json.Marshal(map[string]map[string]Value{"map": v.m})
	default:
		return nil, fmt.Errorf("meta: cannot marshal invalid value")
	}
}
