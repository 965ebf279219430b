// Package canon provides a constrained JSON value model and its RFC 8785
// canonical serialization.
//
// Report output is serialized through this package so that the JSON form of a
// run is byte-for-byte reproducible. Floats are not representable: callers
// carry them as their shortest decimal string.
package canon

import (
	"slices"
	"unicode/utf16"
)

// Value is a sealed interface over the canonical value types.
// Only String, Int, Bool, Array and Object implement it.
type Value interface {
	canonValue()
}

// String is a JSON string. It is NFC normalized when marshalled.
type String string

func (String) canonValue() {}

// Int is a JSON integer. Always int64.
type Int int64

func (Int) canonValue() {}

// Bool is a JSON boolean.
type Bool bool

func (Bool) canonValue() {}

// Array is an ordered list of values.
type Array []Value

func (Array) canonValue() {}

// Object maps keys to values. Use SortedKeys for deterministic iteration.
type Object map[string]Value

func (Object) canonValue() {}

// Pair is a key-value pair for Object construction.
type Pair struct {
	Key   string
	Value Value
}

// O is shorthand for a Pair.
// Example: NewObject(O("result", Int(-2)), O("overflow", Bool(true)))
func O(key string, value Value) Pair {
	return Pair{Key: key, Value: value}
}

// NewObject creates an Object from pairs. Later pairs win on duplicate keys.
func NewObject(pairs ...Pair) Object {
	obj := make(Object, len(pairs))
	for _, p := range pairs {
		obj[p.Key] = p.Value
	}
	return obj
}

// Strings converts a string slice to an Array of String.
func Strings(ss []string) Array {
	arr := make(Array, len(ss))
	for i, s := range ss {
		arr[i] = String(s)
	}
	return arr
}

// SortedKeys returns keys in RFC 8785 order (UTF-16 code units).
// This differs from sort.Strings, which orders by UTF-8 bytes.
func (obj Object) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareUTF16)
	return keys
}

func compareUTF16(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))
	return slices.Compare(a16, b16)
}
