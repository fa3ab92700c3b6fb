package ir

// BinOp is an integer, bitwise or floating-point binary opcode.
type BinOp uint8

const (
	Add BinOp = iota
	Sub
	Mul
	UDiv
	SDiv
	URem
	SRem
	And
	Or
	Xor
	Shl
	LShr
	AShr
	FAdd
	FSub
	FMul
	FDiv
	FRem
)

func (op BinOp) String() string {
	switch op {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case UDiv:
		return "udiv"
	case SDiv:
		return "sdiv"
	case URem:
		return "urem"
	case SRem:
		return "srem"
	case And:
		return "and"
	case Or:
		return "or"
	case Xor:
		return "xor"
	case Shl:
		return "shl"
	case LShr:
		return "lshr"
	case AShr:
		return "ashr"
	case FAdd:
		return "fadd"
	case FSub:
		return "fsub"
	case FMul:
		return "fmul"
	case FDiv:
		return "fdiv"
	case FRem:
		return "frem"
	}
	panic("invalid binary opcode")
}

// isFloatOp reports whether the opcode operates on floating-point values.
func (op BinOp) isFloatOp() bool {
	return op >= FAdd
}

// ConvOp is a conversion opcode.
type ConvOp uint8

const (
	Trunc ConvOp = iota
	ZExt
	SExt
	FPTrunc
	FPExt
	FPToUI
	FPToSI
	UIToFP
	SIToFP
	PtrToInt
	IntToPtr
	BitCast
)

func (op ConvOp) String() string {
	switch op {
	case Trunc:
		return "trunc"
	case ZExt:
		return "zext"
	case SExt:
		return "sext"
	case FPTrunc:
		return "fptrunc"
	case FPExt:
		return "fpext"
	case FPToUI:
		return "fptoui"
	case FPToSI:
		return "fptosi"
	case UIToFP:
		return "uitofp"
	case SIToFP:
		return "sitofp"
	case PtrToInt:
		return "ptrtoint"
	case IntToPtr:
		return "inttoptr"
	case BitCast:
		return "bitcast"
	}
	panic("invalid conversion opcode")
}

// IntPred is an icmp condition code.
type IntPred uint8

const (
	IntEQ IntPred = iota
	IntNE
	IntUGT
	IntUGE
	IntULT
	IntULE
	IntSGT
	IntSGE
	IntSLT
	IntSLE
)

func (p IntPred) String() string {
	switch p {
	case IntEQ:
		return "eq"
	case IntNE:
		return "ne"
	case IntUGT:
		return "ugt"
	case IntUGE:
		return "uge"
	case IntULT:
		return "ult"
	case IntULE:
		return "ule"
	case IntSGT:
		return "sgt"
	case IntSGE:
		return "sge"
	case IntSLT:
		return "slt"
	case IntSLE:
		return "sle"
	}
	panic("invalid icmp predicate")
}

// FloatPred is an fcmp condition code.
type FloatPred uint8

const (
	FloatOEQ FloatPred = iota
	FloatOGT
	FloatOGE
	FloatOLT
	FloatOLE
	FloatONE
	FloatORD
	FloatUEQ
	FloatUGT
	FloatUGE
	FloatULT
	FloatULE
	FloatUNE
	FloatUNO
)

func (p FloatPred) String() string {
	switch p {
	case FloatOEQ:
		return "oeq"
	case FloatOGT:
		return "ogt"
	case FloatOGE:
		return "oge"
	case FloatOLT:
		return "olt"
	case FloatOLE:
		return "ole"
	case FloatONE:
		return "one"
	case FloatORD:
		return "ord"
	case FloatUEQ:
		return "ueq"
	case FloatUGT:
		return "ugt"
	case FloatUGE:
		return "uge"
	case FloatULT:
		return "ult"
	case FloatULE:
		return "ule"
	case FloatUNE:
		return "une"
	case FloatUNO:
		return "uno"
	}
	panic("invalid fcmp predicate")
}

// Linkage is a symbol linkage kind. The zero value leaves the linkage
// implicit (external).
type Linkage uint8

const (
	LinkageDefault Linkage = iota
	LinkageExternal
	LinkagePrivate
	LinkageInternal
)

func (l Linkage) String() string {
	switch l {
	case LinkageDefault:
		return ""
	case LinkageExternal:
		return "external"
	case LinkagePrivate:
		return "private"
	case LinkageInternal:
		return "internal"
	}
	panic("invalid linkage")
}
