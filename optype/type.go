// SPDX-License-Identifier: MIT
package optype

import "fmt"

// Type is a value-class descriptor for a vector/matrix element kind.
//
// Types are created by the factory functions in this file, never by struct
// literal outside the package. Two Types with identical Label/ByteWidth are
// still distinct values: equality is by pointer, as for the operator
// types below.
type Type struct {
	// Label is a human-readable name, used only for error messages and logs.
	Label string

	// ByteWidth is the element's size in bytes. Zero marks the void type,
	// pattern-only storage where positions carry presence but no value.
	ByteWidth int

	binary map[string]*BinaryOp
	unary  map[string]*UnaryOp
	select_ map[string]*SelectOp
}

// IsVoid reports whether t is the zero-byte, pattern-only type.
func (t *Type) IsVoid() bool { return t.ByteWidth == 0 }

func (t *Type) String() string { return fmt.Sprintf("optype.Type(%s,%dB)", t.Label, t.ByteWidth) }

// NewType constructs a fresh Type with an empty operator table. Callers
// attach operators with NewBinaryOp, NewUnaryOp and NewSelectOp before
// publishing the Type.
func NewType(label string, byteWidth int) *Type {
	return &Type{
		Label:     label,
		ByteWidth: byteWidth,
		binary:    make(map[string]*BinaryOp),
		unary:     make(map[string]*UnaryOp),
		select_:   make(map[string]*SelectOp),
	}
}

// VoidType returns a fresh zero-byte pattern-only type. Every call returns a
// distinct *Type, matching the "distinct by construction" operator policy;
// most callers should construct one void type per Library and reuse it.
func VoidType() *Type { return NewType("void", 0) }

// Int32Type returns a fresh signed 32-bit integer type with no operators
// bound. Use NewBinaryOp and the other operator constructors to attach
// arithmetic before use; ops.go has no standard int32 operator set.
func Int32Type() *Type { return NewType("int32", 4) }

// Uint32Type returns a fresh unsigned 32-bit integer type with no operators
// bound.
func Uint32Type() *Type { return NewType("uint32", 4) }

// Float32Type returns a fresh 32-bit floating point type with no operators
// bound.
func Float32Type() *Type { return NewType("float32", 4) }

// Float64Type returns a fresh 64-bit floating point type with no
// operators bound.
func Float64Type() *Type { return NewType("float64", 8) }

// BinaryOp is a binary operator (T,T) -> T: a host callable plus an opaque
// source-template fragment an accelerator's kernel builder could splice
// into generated device source. This runtime never builds device source
// (that templating engine is out of scope), so Template is carried purely
// as data for callers that do.
type BinaryOp struct {
	Name     string
	Template string
	Func     func(a, b any) any
}

// UnaryOp is a unary operator T -> T.
type UnaryOp struct {
	Name     string
	Template string
	Func     func(a any) any
}

// SelectOp is a select predicate T -> bool, used by masked kernels.
type SelectOp struct {
	Name     string
	Template string
	Func     func(a any) bool
}

// NewBinaryOp allocates and binds a new binary operator on t under name.
// It returns a nil error unless an operator of that name already exists,
// in which case it returns ErrAlreadyBound and does not overwrite the
// existing one: success is reported as success, an error is reserved for
// an actual naming conflict.
func (t *Type) NewBinaryOp(name string, template string, fn func(a, b any) any) (*BinaryOp, error) {
	if _, exists := t.binary[name]; exists {
		return nil, fmt.Errorf("optype: NewBinaryOp(%q) on %s: %w", name, t.Label, ErrAlreadyBound)
	}
	op := &BinaryOp{Name: name, Template: template, Func: fn}
	t.binary[name] = op
	return op, nil
}

// NewUnaryOp allocates and binds a new unary operator on t under name.
func (t *Type) NewUnaryOp(name string, template string, fn func(a any) any) (*UnaryOp, error) {
	if _, exists := t.unary[name]; exists {
		return nil, fmt.Errorf("optype: NewUnaryOp(%q) on %s: %w", name, t.Label, ErrAlreadyBound)
	}
	op := &UnaryOp{Name: name, Template: template, Func: fn}
	t.unary[name] = op
	return op, nil
}

// NewSelectOp allocates and binds a new select predicate on t under name.
func (t *Type) NewSelectOp(name string, template string, fn func(a any) bool) (*SelectOp, error) {
	if _, exists := t.select_[name]; exists {
		return nil, fmt.Errorf("optype: NewSelectOp(%q) on %s: %w", name, t.Label, ErrAlreadyBound)
	}
	op := &SelectOp{Name: name, Template: template, Func: fn}
	t.select_[name] = op
	return op, nil
}

// Binary looks up a previously bound binary operator by name.
func (t *Type) Binary(name string) (*BinaryOp, bool) { op, ok := t.binary[name]; return op, ok }

// Unary looks up a previously bound unary operator by name.
func (t *Type) Unary(name string) (*UnaryOp, bool) { op, ok := t.unary[name]; return op, ok }

// Select looks up a previously bound select predicate by name.
func (t *Type) Select(name string) (*SelectOp, bool) { op, ok := t.select_[name]; return op, ok }
