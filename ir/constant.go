package ir

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kartiknair/lir/types"
)

// Constant is a value known at compile time. Every constant carries its own
// type; aggregate constants render their elements recursively.
type Constant interface {
	Value
	isConstant()
}

// Boolean shorthands.
var (
	True  = NewInt(types.I1, 1)
	False = NewInt(types.I1, 0)
)

// ConstInt is an integer literal.
type ConstInt struct {
	Typ *types.IntType
	X   int64
}

// NewInt returns an integer literal of the given type.
func NewInt(typ *types.IntType, x int64) *ConstInt {
	return &ConstInt{Typ: typ, X: x}
}

func (c *ConstInt) isConstant() {}

func (c *ConstInt) Type() types.Type {
	return c.Typ
}

func (c *ConstInt) Ident() string {
	if c.Typ.Bits == 1 {
		if c.X == 0 {
			return "false"
		}
		return "true"
	}
	return strconv.FormatInt(c.X, 10)
}

// ConstFloat is a floating-point literal.
type ConstFloat struct {
	Typ *types.FloatType
	X   float64
}

// NewFloat returns a floating-point literal of the given type. Only the
// float and double kinds are supported; half and fp128 literals use hex
// encodings this printer does not produce.
func NewFloat(typ *types.FloatType, x float64) *ConstFloat {
	if typ.Kind != types.KindFloat && typ.Kind != types.KindDouble {
		panic(fmt.Sprintf("float literals of type %s are not supported", typ))
	}
	return &ConstFloat{Typ: typ, X: x}
}

func (c *ConstFloat) isConstant() {}

func (c *ConstFloat) Type() types.Type {
	return c.Typ
}

func (c *ConstFloat) Ident() string {
	x := c.X
	if c.Typ.Kind == types.KindFloat {
		// A single-precision literal must denote a value exactly
		// representable in single precision.
		x = float64(float32(x))
	}
	if s, ok := exactDecimal(x); ok {
		return s
	}
	return fmt.Sprintf("0x%016X", math.Float64bits(x))
}

// exactDecimal renders x in LLVM's canonical scientific form if that form
// parses back to the identical value; otherwise the caller must fall back to
// the hexadecimal bit-pattern form.
func exactDecimal(x float64) (string, bool) {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return "", false
	}
	s := strconv.FormatFloat(x, 'e', 6, 64)
	back, err := strconv.ParseFloat(s, 64)
	if err != nil || back != x {
		return "", false
	}
	return s, true
}

// ConstNull is a null pointer literal.
type ConstNull struct {
	Typ *types.PointerType
}

// NewNull returns a null literal of the given pointer type.
func NewNull(typ *types.PointerType) *ConstNull {
	return &ConstNull{Typ: typ}
}

func (c *ConstNull) isConstant() {}

func (c *ConstNull) Type() types.Type {
	return c.Typ
}

func (c *ConstNull) Ident() string {
	return "null"
}

// ConstUndef is an undefined value of any first-class type.
type ConstUndef struct {
	Typ types.Type
}

// NewUndef returns an undef literal of the given type.
func NewUndef(typ types.Type) *ConstUndef {
	return &ConstUndef{Typ: typ}
}

func (c *ConstUndef) isConstant() {}

func (c *ConstUndef) Type() types.Type {
	return c.Typ
}

func (c *ConstUndef) Ident() string {
	return "undef"
}

// ConstZero is a zero-initialized value, rendered as `zeroinitializer`.
type ConstZero struct {
	Typ types.Type
}

// NewZeroInitializer returns a zeroinitializer literal of the given type.
func NewZeroInitializer(typ types.Type) *ConstZero {
	return &ConstZero{Typ: typ}
}

func (c *ConstZero) isConstant() {}

func (c *ConstZero) Type() types.Type {
	return c.Typ
}

func (c *ConstZero) Ident() string {
	return "zeroinitializer"
}

// ConstArray is an array of constants.
type ConstArray struct {
	Typ   *types.ArrayType
	Elems []Constant
}

// NewArray returns an array literal. All elements must share one type, and
// at least one element is required (use NewZeroInitializer for empty or
// all-zero arrays).
func NewArray(elems ...Constant) (*ConstArray, error) {
	if len(elems) == 0 {
		return nil, typeErrf("array literal needs at least one element")
	}
	elemType := elems[0].Type()
	for i, e := range elems {
		if !e.Type().Equal(elemType) {
			return nil, typeErrf("array element %d has type %s, want %s", i, e.Type(), elemType)
		}
	}
	typ := types.NewArray(uint64(len(elems)), elemType)
	return &ConstArray{Typ: typ, Elems: elems}, nil
}

func (c *ConstArray) isConstant() {}

func (c *ConstArray) Type() types.Type {
	return c.Typ
}

func (c *ConstArray) Ident() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, e := range c.Elems {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Type().String())
		sb.WriteString(" ")
		sb.WriteString(e.Ident())
	}
	sb.WriteString("]")
	return sb.String()
}

// ConstCharArray is a byte-array literal rendered in `c"..."` form.
type ConstCharArray struct {
	Typ *types.ArrayType
	X   []byte
}

// NewCharArray returns an `[N x i8]` literal holding the given bytes.
func NewCharArray(data []byte) *ConstCharArray {
	typ := types.NewArray(uint64(len(data)), types.I8)
	return &ConstCharArray{Typ: typ, X: data}
}

// NewCharArrayFromString returns an `[N x i8]` literal holding the bytes of
// s. No NUL terminator is appended.
func NewCharArrayFromString(s string) *ConstCharArray {
	return NewCharArray([]byte(s))
}

func (c *ConstCharArray) isConstant() {}

func (c *ConstCharArray) Type() types.Type {
	return c.Typ
}

func (c *ConstCharArray) Ident() string {
	var sb strings.Builder
	sb.WriteString(`c"`)
	for _, b := range c.X {
		if b == '"' || b == '\\' || b < 0x20 || b > 0x7e {
			sb.WriteString(fmt.Sprintf(`\%02X`, b))
		} else {
			sb.WriteByte(b)
		}
	}
	sb.WriteString(`"`)
	return sb.String()
}

// ConstStruct is a struct of constants. The struct type is anonymous unless
// a named type is supplied via NewTypedStruct.
type ConstStruct struct {
	Typ    *types.StructType
	Fields []Constant
}

// NewStruct returns an anonymous struct literal over the given fields.
func NewStruct(fields ...Constant) *ConstStruct {
	fieldTypes := make([]types.Type, len(fields))
	for i, f := range fields {
		fieldTypes[i] = f.Type()
	}
	return &ConstStruct{Typ: types.NewStruct(fieldTypes...), Fields: fields}
}

// NewTypedStruct returns a struct literal of the given (typically named)
// struct type.
func NewTypedStruct(typ *types.StructType, fields ...Constant) (*ConstStruct, error) {
	if typ.Opaque {
		return nil, typeErrf("cannot build a literal of opaque type %s", typ)
	}
	if len(fields) != len(typ.Fields) {
		return nil, typeErrf("struct literal has %d fields, type %s has %d", len(fields), typ, len(typ.Fields))
	}
	for i, f := range fields {
		if !f.Type().Equal(typ.Fields[i]) {
			return nil, typeErrf("struct field %d has type %s, want %s", i, f.Type(), typ.Fields[i])
		}
	}
	return &ConstStruct{Typ: typ, Fields: fields}, nil
}

func (c *ConstStruct) isConstant() {}

func (c *ConstStruct) Type() types.Type {
	return c.Typ
}

func (c *ConstStruct) Ident() string {
	var sb strings.Builder
	if c.Typ.Packed {
		sb.WriteString("<")
	}
	sb.WriteString("{ ")
	for i, f := range c.Fields {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Type().String())
		sb.WriteString(" ")
		sb.WriteString(f.Ident())
	}
	sb.WriteString(" }")
	if c.Typ.Packed {
		sb.WriteString(">")
	}
	return sb.String()
}

// ConstIntToPtr is the `inttoptr (iN K to T*)` constant expression, used for
// pointer literals such as `%Qubit* inttoptr (i64 0 to %Qubit*)`.
type ConstIntToPtr struct {
	From *ConstInt
	To   *types.PointerType
}

// NewIntToPtr returns an inttoptr constant expression.
func NewIntToPtr(from *ConstInt, to *types.PointerType) *ConstIntToPtr {
	return &ConstIntToPtr{From: from, To: to}
}

func (c *ConstIntToPtr) isConstant() {}

func (c *ConstIntToPtr) Type() types.Type {
	return c.To
}

func (c *ConstIntToPtr) Ident() string {
	return fmt.Sprintf("inttoptr (%s %s to %s)", c.From.Type(), c.From.Ident(), c.To)
}

// ConstGEP is a getelementptr constant expression, used e.g. to take the
// address of the first character of a global string.
type ConstGEP struct {
	ElemType types.Type
	Src      Constant
	Indices  []*ConstInt
	InBounds bool

	typ types.Type
}

// NewGetElementPtr returns a getelementptr constant expression over the
// given pointer constant. The result type is computed by walking the index
// list through elemType's structure.
func NewGetElementPtr(elemType types.Type, src Constant, indices ...*ConstInt) (*ConstGEP, error) {
	idxVals := make([]Value, len(indices))
	for i, idx := range indices {
		idxVals[i] = idx
	}
	typ, err := gepResultType(elemType, src.Type(), idxVals)
	if err != nil {
		return nil, err
	}
	return &ConstGEP{ElemType: elemType, Src: src, Indices: indices, typ: typ}, nil
}

func (c *ConstGEP) isConstant() {}

func (c *ConstGEP) Type() types.Type {
	return c.typ
}

func (c *ConstGEP) Ident() string {
	var sb strings.Builder
	sb.WriteString("getelementptr ")
	if c.InBounds {
		sb.WriteString("inbounds ")
	}
	sb.WriteString("(")
	sb.WriteString(c.ElemType.String())
	sb.WriteString(", ")
	sb.WriteString(c.Src.Type().String())
	sb.WriteString(" ")
	sb.WriteString(c.Src.Ident())
	for _, idx := range c.Indices {
		sb.WriteString(", ")
		sb.WriteString(idx.Type().String())
		sb.WriteString(" ")
		sb.WriteString(idx.Ident())
	}
	sb.WriteString(")")
	return sb.String()
}
