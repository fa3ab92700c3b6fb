// Package types models the subset of LLVM's type system needed to emit
// textual IR (LLVM 14, typed pointers). Types are built bottom-up; recursion
// is only expressible through a pointer to a named struct.
package types

import (
	"fmt"
	"strings"
)

// Type is the closed set of LLVM types. Named struct types compare nominally
// (by name); every other type compares structurally.
type Type interface {
	// Equal reports whether the two types are the same LLVM type.
	Equal(other Type) bool
	// String renders the type in `.ll` syntax.
	String() string

	isType()
}

// Predeclared types, mirroring the ones the printer and instruction
// validation reach for constantly.
var (
	Void   = &VoidType{}
	I1     = &IntType{Bits: 1}
	I8     = &IntType{Bits: 8}
	I16    = &IntType{Bits: 16}
	I32    = &IntType{Bits: 32}
	I64    = &IntType{Bits: 64}
	Half   = &FloatType{Kind: KindHalf}
	Float  = &FloatType{Kind: KindFloat}
	Double = &FloatType{Kind: KindDouble}
	I8Ptr  = &PointerType{Elem: I8}
)

// VoidType is only valid as a function return type.
type VoidType struct{}

func (t *VoidType) isType() {}

func (t *VoidType) Equal(other Type) bool {
	_, ok := other.(*VoidType)
	return ok
}

func (t *VoidType) String() string {
	return "void"
}

// IntType is an arbitrary-width integer type `iN`.
type IntType struct {
	Bits uint32
}

// NewInt returns the integer type of the given bit width.
func NewInt(bits uint32) *IntType {
	return &IntType{Bits: bits}
}

func (t *IntType) isType() {}

func (t *IntType) Equal(other Type) bool {
	o, ok := other.(*IntType)
	return ok && t.Bits == o.Bits
}

func (t *IntType) String() string {
	return fmt.Sprintf("i%d", t.Bits)
}

// FloatKind selects one of LLVM's floating-point types.
type FloatKind uint8

const (
	KindHalf FloatKind = iota
	KindFloat
	KindDouble
	KindFP128
)

// FloatType is one of the floating-point types.
type FloatType struct {
	Kind FloatKind
}

func (t *FloatType) isType() {}

func (t *FloatType) Equal(other Type) bool {
	o, ok := other.(*FloatType)
	return ok && t.Kind == o.Kind
}

func (t *FloatType) String() string {
	switch t.Kind {
	case KindHalf:
		return "half"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindFP128:
		return "fp128"
	}
	panic(fmt.Sprintf("invalid float kind %d", t.Kind))
}

// PointerType is a typed pointer `T*`, optionally in a non-default address
// space.
type PointerType struct {
	Elem      Type
	AddrSpace uint32
}

// NewPointer returns a pointer type to elem in the default address space.
func NewPointer(elem Type) *PointerType {
	return &PointerType{Elem: elem}
}

func (t *PointerType) isType() {}

func (t *PointerType) Equal(other Type) bool {
	o, ok := other.(*PointerType)
	return ok && t.AddrSpace == o.AddrSpace && t.Elem.Equal(o.Elem)
}

func (t *PointerType) String() string {
	if t.AddrSpace != 0 {
		return fmt.Sprintf("%s addrspace(%d)*", t.Elem, t.AddrSpace)
	}
	return t.Elem.String() + "*"
}

// ArrayType is `[N x T]`.
type ArrayType struct {
	Len  uint64
	Elem Type
}

// NewArray returns the array type of length len with element type elem.
func NewArray(len uint64, elem Type) *ArrayType {
	return &ArrayType{Len: len, Elem: elem}
}

func (t *ArrayType) isType() {}

func (t *ArrayType) Equal(other Type) bool {
	o, ok := other.(*ArrayType)
	return ok && t.Len == o.Len && t.Elem.Equal(o.Elem)
}

func (t *ArrayType) String() string {
	return fmt.Sprintf("[%d x %s]", t.Len, t.Elem)
}

// VectorType is `<N x T>`.
type VectorType struct {
	Len  uint64
	Elem Type
}

// NewVector returns the vector type of length len with element type elem.
func NewVector(len uint64, elem Type) *VectorType {
	return &VectorType{Len: len, Elem: elem}
}

func (t *VectorType) isType() {}

func (t *VectorType) Equal(other Type) bool {
	o, ok := other.(*VectorType)
	return ok && t.Len == o.Len && t.Elem.Equal(o.Elem)
}

func (t *VectorType) String() string {
	return fmt.Sprintf("<%d x %s>", t.Len, t.Elem)
}

// StructType is a struct type. A struct with a non-empty Name is an
// identified struct: it compares nominally and prints as `%Name`, with its
// body emitted once in the module's type-definition section. An anonymous
// struct compares structurally and prints its body inline. An Opaque struct
// has no known body (`%Name = type opaque`).
type StructType struct {
	Name   string
	Fields []Type
	Packed bool
	Opaque bool
}

// NewStruct returns an anonymous struct type with the given fields.
func NewStruct(fields ...Type) *StructType {
	return &StructType{Fields: fields}
}

// NewPackedStruct returns an anonymous packed struct type.
func NewPackedStruct(fields ...Type) *StructType {
	return &StructType{Fields: fields, Packed: true}
}

func (t *StructType) isType() {}

func (t *StructType) Equal(other Type) bool {
	o, ok := other.(*StructType)
	if !ok {
		return false
	}
	if t.Name != "" || o.Name != "" {
		// Identified structs are nominal: contents are not compared.
		return t.Name == o.Name
	}
	if t.Packed != o.Packed || len(t.Fields) != len(o.Fields) {
		return false
	}
	for i, f := range t.Fields {
		if !f.Equal(o.Fields[i]) {
			return false
		}
	}
	return true
}

func (t *StructType) String() string {
	if t.Name != "" {
		return "%" + EscapeIdent(t.Name)
	}
	return t.Body()
}

// Body renders the struct body, e.g. `{ i32, i8* }`. Used for inline
// anonymous structs and for `%Name = type ...` definitions.
func (t *StructType) Body() string {
	if t.Opaque {
		return "opaque"
	}
	if len(t.Fields) == 0 {
		if t.Packed {
			return "<{}>"
		}
		return "{}"
	}
	var sb strings.Builder
	if t.Packed {
		sb.WriteString("<")
	}
	sb.WriteString("{ ")
	for i, f := range t.Fields {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.String())
	}
	sb.WriteString(" }")
	if t.Packed {
		sb.WriteString(">")
	}
	return sb.String()
}

// FuncType is a function signature type. A function type is never a
// first-class value type; values of function type only occur behind a
// pointer.
type FuncType struct {
	Ret      Type
	Params   []Type
	Variadic bool
}

// NewFunc returns the function type with the given return and parameter
// types.
func NewFunc(ret Type, params ...Type) *FuncType {
	return &FuncType{Ret: ret, Params: params}
}

func (t *FuncType) isType() {}

func (t *FuncType) Equal(other Type) bool {
	o, ok := other.(*FuncType)
	if !ok {
		return false
	}
	if t.Variadic != o.Variadic || len(t.Params) != len(o.Params) || !t.Ret.Equal(o.Ret) {
		return false
	}
	for i, p := range t.Params {
		if !p.Equal(o.Params[i]) {
			return false
		}
	}
	return true
}

func (t *FuncType) String() string {
	var sb strings.Builder
	sb.WriteString(t.Ret.String())
	sb.WriteString(" (")
	for i, p := range t.Params {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	if t.Variadic {
		if len(t.Params) > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("...")
	}
	sb.WriteString(")")
	return sb.String()
}

// IsInt reports whether t is an integer type.
func IsInt(t Type) bool {
	_, ok := t.(*IntType)
	return ok
}

// IsFloat reports whether t is a floating-point type.
func IsFloat(t Type) bool {
	_, ok := t.(*FloatType)
	return ok
}

// IsPointer reports whether t is a pointer type.
func IsPointer(t Type) bool {
	_, ok := t.(*PointerType)
	return ok
}

// IsAggregate reports whether t is an array or struct type.
func IsAggregate(t Type) bool {
	switch t.(type) {
	case *ArrayType, *StructType:
		return true
	}
	return false
}

// IsFirstClass reports whether values of type t can be produced by
// instructions and passed as operands. Void and function types are not
// first class.
func IsFirstClass(t Type) bool {
	switch t.(type) {
	case *VoidType, *FuncType:
		return false
	}
	return true
}
