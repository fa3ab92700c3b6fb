package ir

import (
	"github.com/kartiknair/lir/types"
)

// Instruction is the closed set of instructions a basic block can hold,
// terminators included.
type Instruction interface {
	isInst()
}

// Terminator is the subset of instructions that end a basic block.
type Terminator interface {
	Instruction
	isTerm()
}

// local is the result slot shared by all value-producing instructions.
type local struct {
	name   string
	parent *Func
}

func (l *local) Ident() string {
	return "%" + types.EscapeIdent(l.name)
}

// Name returns the result's SSA name, without the `%` sigil.
func (l *local) Name() string {
	return l.name
}

// SetName renames the result. The name is de-duplicated against every other
// local in the function by suffixing if necessary.
func (l *local) SetName(name string) {
	l.name = l.parent.freshName(name)
}

// elemOf unwraps a vector type to its element, leaving scalars unchanged.
func elemOf(t types.Type) types.Type {
	if v, ok := t.(*types.VectorType); ok {
		return v.Elem
	}
	return t
}

// sameShape reports whether a and b are both scalars, or both vectors of the
// same length.
func sameShape(a, b types.Type) bool {
	av, aok := a.(*types.VectorType)
	bv, bok := b.(*types.VectorType)
	if aok != bok {
		return false
	}
	return !aok || av.Len == bv.Len
}

// === [ Binary instructions ] =================================================

// InstBinary is an integer, bitwise or floating-point binary instruction.
// Both operands and the result share one type.
type InstBinary struct {
	local
	Op   BinOp
	X, Y Value
}

func (inst *InstBinary) isInst() {}

func (inst *InstBinary) Type() types.Type {
	return inst.X.Type()
}

func (b *Block) newBinary(op BinOp, x, y Value) (*InstBinary, error) {
	if err := b.open(); err != nil {
		return nil, err
	}
	if !x.Type().Equal(y.Type()) {
		return nil, typeErrf("%s operands disagree: %s vs %s", op, x.Type(), y.Type())
	}
	elem := elemOf(x.Type())
	if op.isFloatOp() {
		if !types.IsFloat(elem) {
			return nil, typeErrf("%s requires floating-point operands, got %s", op, x.Type())
		}
	} else if !types.IsInt(elem) {
		return nil, typeErrf("%s requires integer operands, got %s", op, x.Type())
	}
	inst := &InstBinary{Op: op, X: x, Y: y}
	b.attach(&inst.local)
	b.Insts = append(b.Insts, inst)
	return inst, nil
}

// NewAdd appends an add instruction.
func (b *Block) NewAdd(x, y Value) (*InstBinary, error) { return b.newBinary(Add, x, y) }

// NewSub appends a sub instruction.
func (b *Block) NewSub(x, y Value) (*InstBinary, error) { return b.newBinary(Sub, x, y) }

// NewMul appends a mul instruction.
func (b *Block) NewMul(x, y Value) (*InstBinary, error) { return b.newBinary(Mul, x, y) }

// NewUDiv appends a udiv instruction.
func (b *Block) NewUDiv(x, y Value) (*InstBinary, error) { return b.newBinary(UDiv, x, y) }

// NewSDiv appends an sdiv instruction.
func (b *Block) NewSDiv(x, y Value) (*InstBinary, error) { return b.newBinary(SDiv, x, y) }

// NewURem appends a urem instruction.
func (b *Block) NewURem(x, y Value) (*InstBinary, error) { return b.newBinary(URem, x, y) }

// NewSRem appends an srem instruction.
func (b *Block) NewSRem(x, y Value) (*InstBinary, error) { return b.newBinary(SRem, x, y) }

// NewAnd appends an and instruction.
func (b *Block) NewAnd(x, y Value) (*InstBinary, error) { return b.newBinary(And, x, y) }

// NewOr appends an or instruction.
func (b *Block) NewOr(x, y Value) (*InstBinary, error) { return b.newBinary(Or, x, y) }

// NewXor appends a xor instruction.
func (b *Block) NewXor(x, y Value) (*InstBinary, error) { return b.newBinary(Xor, x, y) }

// NewShl appends a shl instruction.
func (b *Block) NewShl(x, y Value) (*InstBinary, error) { return b.newBinary(Shl, x, y) }

// NewLShr appends a lshr instruction.
func (b *Block) NewLShr(x, y Value) (*InstBinary, error) { return b.newBinary(LShr, x, y) }

// NewAShr appends an ashr instruction.
func (b *Block) NewAShr(x, y Value) (*InstBinary, error) { return b.newBinary(AShr, x, y) }

// NewFAdd appends an fadd instruction.
func (b *Block) NewFAdd(x, y Value) (*InstBinary, error) { return b.newBinary(FAdd, x, y) }

// NewFSub appends an fsub instruction.
func (b *Block) NewFSub(x, y Value) (*InstBinary, error) { return b.newBinary(FSub, x, y) }

// NewFMul appends an fmul instruction.
func (b *Block) NewFMul(x, y Value) (*InstBinary, error) { return b.newBinary(FMul, x, y) }

// NewFDiv appends an fdiv instruction.
func (b *Block) NewFDiv(x, y Value) (*InstBinary, error) { return b.newBinary(FDiv, x, y) }

// NewFRem appends an frem instruction.
func (b *Block) NewFRem(x, y Value) (*InstBinary, error) { return b.newBinary(FRem, x, y) }

// InstFNeg is a floating-point negation instruction.
type InstFNeg struct {
	local
	X Value
}

func (inst *InstFNeg) isInst() {}

func (inst *InstFNeg) Type() types.Type {
	return inst.X.Type()
}

// NewFNeg appends an fneg instruction.
func (b *Block) NewFNeg(x Value) (*InstFNeg, error) {
	if err := b.open(); err != nil {
		return nil, err
	}
	if !types.IsFloat(elemOf(x.Type())) {
		return nil, typeErrf("fneg requires a floating-point operand, got %s", x.Type())
	}
	inst := &InstFNeg{X: x}
	b.attach(&inst.local)
	b.Insts = append(b.Insts, inst)
	return inst, nil
}

// === [ Comparison instructions ] =============================================

// InstICmp is an integer/pointer comparison producing i1.
type InstICmp struct {
	local
	Pred IntPred
	X, Y Value

	typ types.Type
}

func (inst *InstICmp) isInst() {}

func (inst *InstICmp) Type() types.Type {
	return inst.typ
}

// NewICmp appends an icmp instruction. The operands must share one integer
// or pointer type; the result is i1 (or a vector of i1).
func (b *Block) NewICmp(pred IntPred, x, y Value) (*InstICmp, error) {
	if err := b.open(); err != nil {
		return nil, err
	}
	if !x.Type().Equal(y.Type()) {
		return nil, typeErrf("icmp operands disagree: %s vs %s", x.Type(), y.Type())
	}
	elem := elemOf(x.Type())
	if !types.IsInt(elem) && !types.IsPointer(elem) {
		return nil, typeErrf("icmp requires integer or pointer operands, got %s", x.Type())
	}
	inst := &InstICmp{Pred: pred, X: x, Y: y, typ: boolTypeFor(x.Type())}
	b.attach(&inst.local)
	b.Insts = append(b.Insts, inst)
	return inst, nil
}

// InstFCmp is a floating-point comparison producing i1.
type InstFCmp struct {
	local
	Pred FloatPred
	X, Y Value

	typ types.Type
}

func (inst *InstFCmp) isInst() {}

func (inst *InstFCmp) Type() types.Type {
	return inst.typ
}

// NewFCmp appends an fcmp instruction.
func (b *Block) NewFCmp(pred FloatPred, x, y Value) (*InstFCmp, error) {
	if err := b.open(); err != nil {
		return nil, err
	}
	if !x.Type().Equal(y.Type()) {
		return nil, typeErrf("fcmp operands disagree: %s vs %s", x.Type(), y.Type())
	}
	if !types.IsFloat(elemOf(x.Type())) {
		return nil, typeErrf("fcmp requires floating-point operands, got %s", x.Type())
	}
	inst := &InstFCmp{Pred: pred, X: x, Y: y, typ: boolTypeFor(x.Type())}
	b.attach(&inst.local)
	b.Insts = append(b.Insts, inst)
	return inst, nil
}

func boolTypeFor(operand types.Type) types.Type {
	if v, ok := operand.(*types.VectorType); ok {
		return types.NewVector(v.Len, types.I1)
	}
	return types.I1
}

// === [ Conversion instructions ] =============================================

// InstConv is a conversion instruction (trunc, zext, bitcast, ...).
type InstConv struct {
	local
	Op   ConvOp
	From Value
	To   types.Type
}

func (inst *InstConv) isInst() {}

func (inst *InstConv) Type() types.Type {
	return inst.To
}

func (b *Block) newConv(op ConvOp, from Value, to types.Type) (*InstConv, error) {
	if err := b.open(); err != nil {
		return nil, err
	}
	if err := checkConv(op, from.Type(), to); err != nil {
		return nil, err
	}
	inst := &InstConv{Op: op, From: from, To: to}
	b.attach(&inst.local)
	b.Insts = append(b.Insts, inst)
	return inst, nil
}

func checkConv(op ConvOp, from, to types.Type) error {
	if !sameShape(from, to) {
		return typeErrf("%s operand %s and result %s have different shapes", op, from, to)
	}
	fe, te := elemOf(from), elemOf(to)
	switch op {
	case Trunc:
		fi, fok := fe.(*types.IntType)
		ti, tok := te.(*types.IntType)
		if !fok || !tok || ti.Bits >= fi.Bits {
			return typeErrf("trunc requires a narrowing integer conversion, got %s to %s", from, to)
		}
	case ZExt, SExt:
		fi, fok := fe.(*types.IntType)
		ti, tok := te.(*types.IntType)
		if !fok || !tok || ti.Bits <= fi.Bits {
			return typeErrf("%s requires a widening integer conversion, got %s to %s", op, from, to)
		}
	case FPTrunc:
		ff, fok := fe.(*types.FloatType)
		tf, tok := te.(*types.FloatType)
		if !fok || !tok || tf.Kind >= ff.Kind {
			return typeErrf("fptrunc requires a narrowing float conversion, got %s to %s", from, to)
		}
	case FPExt:
		ff, fok := fe.(*types.FloatType)
		tf, tok := te.(*types.FloatType)
		if !fok || !tok || tf.Kind <= ff.Kind {
			return typeErrf("fpext requires a widening float conversion, got %s to %s", from, to)
		}
	case FPToUI, FPToSI:
		if !types.IsFloat(fe) || !types.IsInt(te) {
			return typeErrf("%s requires float to integer, got %s to %s", op, from, to)
		}
	case UIToFP, SIToFP:
		if !types.IsInt(fe) || !types.IsFloat(te) {
			return typeErrf("%s requires integer to float, got %s to %s", op, from, to)
		}
	case PtrToInt:
		if !types.IsPointer(fe) || !types.IsInt(te) {
			return typeErrf("ptrtoint requires pointer to integer, got %s to %s", from, to)
		}
	case IntToPtr:
		if !types.IsInt(fe) || !types.IsPointer(te) {
			return typeErrf("inttoptr requires integer to pointer, got %s to %s", from, to)
		}
	case BitCast:
		// Pointers only bitcast to pointers, and aggregates not at all.
		if types.IsAggregate(fe) || types.IsAggregate(te) {
			return typeErrf("bitcast cannot involve aggregate types, got %s to %s", from, to)
		}
		if types.IsPointer(fe) != types.IsPointer(te) {
			return typeErrf("bitcast between pointer and non-pointer, got %s to %s", from, to)
		}
	}
	return nil
}

// NewTrunc appends a trunc instruction.
func (b *Block) NewTrunc(from Value, to types.Type) (*InstConv, error) {
	return b.newConv(Trunc, from, to)
}

// NewZExt appends a zext instruction.
func (b *Block) NewZExt(from Value, to types.Type) (*InstConv, error) {
	return b.newConv(ZExt, from, to)
}

// NewSExt appends a sext instruction.
func (b *Block) NewSExt(from Value, to types.Type) (*InstConv, error) {
	return b.newConv(SExt, from, to)
}

// NewFPTrunc appends an fptrunc instruction.
func (b *Block) NewFPTrunc(from Value, to types.Type) (*InstConv, error) {
	return b.newConv(FPTrunc, from, to)
}

// NewFPExt appends an fpext instruction.
func (b *Block) NewFPExt(from Value, to types.Type) (*InstConv, error) {
	return b.newConv(FPExt, from, to)
}

// NewFPToUI appends an fptoui instruction.
func (b *Block) NewFPToUI(from Value, to types.Type) (*InstConv, error) {
	return b.newConv(FPToUI, from, to)
}

// NewFPToSI appends an fptosi instruction.
func (b *Block) NewFPToSI(from Value, to types.Type) (*InstConv, error) {
	return b.newConv(FPToSI, from, to)
}

// NewUIToFP appends a uitofp instruction.
func (b *Block) NewUIToFP(from Value, to types.Type) (*InstConv, error) {
	return b.newConv(UIToFP, from, to)
}

// NewSIToFP appends a sitofp instruction.
func (b *Block) NewSIToFP(from Value, to types.Type) (*InstConv, error) {
	return b.newConv(SIToFP, from, to)
}

// NewPtrToInt appends a ptrtoint instruction.
func (b *Block) NewPtrToInt(from Value, to types.Type) (*InstConv, error) {
	return b.newConv(PtrToInt, from, to)
}

// NewIntToPtr appends an inttoptr instruction.
func (b *Block) NewIntToPtr(from Value, to types.Type) (*InstConv, error) {
	return b.newConv(IntToPtr, from, to)
}

// NewBitCast appends a bitcast instruction.
func (b *Block) NewBitCast(from Value, to types.Type) (*InstConv, error) {
	return b.newConv(BitCast, from, to)
}

// === [ Memory instructions ] =================================================

// InstAlloca allocates a stack slot and produces a pointer to it.
type InstAlloca struct {
	local
	ElemType types.Type

	typ *types.PointerType
}

func (inst *InstAlloca) isInst() {}

func (inst *InstAlloca) Type() types.Type {
	return inst.typ
}

// NewAlloca appends an alloca instruction for one element of the given type.
func (b *Block) NewAlloca(elem types.Type) (*InstAlloca, error) {
	if err := b.open(); err != nil {
		return nil, err
	}
	if !sized(elem) {
		return nil, typeErrf("cannot allocate a value of type %s", elem)
	}
	inst := &InstAlloca{ElemType: elem, typ: types.NewPointer(elem)}
	b.attach(&inst.local)
	b.Insts = append(b.Insts, inst)
	return inst, nil
}

// InstLoad loads a value of the declared element type through a pointer.
type InstLoad struct {
	local
	ElemType types.Type
	Src      Value
}

func (inst *InstLoad) isInst() {}

func (inst *InstLoad) Type() types.Type {
	return inst.ElemType
}

// NewLoad appends a load instruction. src must be a pointer whose pointee
// type equals elem.
func (b *Block) NewLoad(elem types.Type, src Value) (*InstLoad, error) {
	if err := b.open(); err != nil {
		return nil, err
	}
	pt, ok := src.Type().(*types.PointerType)
	if !ok {
		return nil, typeErrf("load source must be a pointer, got %s", src.Type())
	}
	if !pt.Elem.Equal(elem) {
		return nil, typeErrf("load of %s through pointer to %s", elem, pt.Elem)
	}
	if !sized(elem) {
		return nil, typeErrf("cannot load a value of type %s", elem)
	}
	inst := &InstLoad{ElemType: elem, Src: src}
	b.attach(&inst.local)
	b.Insts = append(b.Insts, inst)
	return inst, nil
}

// InstStore stores a value through a pointer. It produces no result.
type InstStore struct {
	Src Value
	Dst Value
}

func (inst *InstStore) isInst() {}

// NewStore appends a store instruction. dst must be a pointer to src's type.
func (b *Block) NewStore(src, dst Value) (*InstStore, error) {
	if err := b.open(); err != nil {
		return nil, err
	}
	pt, ok := dst.Type().(*types.PointerType)
	if !ok {
		return nil, typeErrf("store destination must be a pointer, got %s", dst.Type())
	}
	if !pt.Elem.Equal(src.Type()) {
		return nil, typeErrf("store of %s through pointer to %s", src.Type(), pt.Elem)
	}
	inst := &InstStore{Src: src, Dst: dst}
	b.Insts = append(b.Insts, inst)
	return inst, nil
}

// InstGEP computes an address by walking an index list through the source
// pointer's element type. Memory is never dereferenced.
type InstGEP struct {
	local
	ElemType types.Type
	Src      Value
	Indices  []Value
	InBounds bool

	typ types.Type
}

func (inst *InstGEP) isInst() {}

func (inst *InstGEP) Type() types.Type {
	return inst.typ
}

// NewGetElementPtr appends a getelementptr instruction. The result type is
// computed by walking the index list against elem's structure; structure
// field indices must be constant i32 values.
func (b *Block) NewGetElementPtr(elem types.Type, src Value, indices ...Value) (*InstGEP, error) {
	if err := b.open(); err != nil {
		return nil, err
	}
	typ, err := gepResultType(elem, src.Type(), indices)
	if err != nil {
		return nil, err
	}
	inst := &InstGEP{ElemType: elem, Src: src, Indices: indices, typ: typ}
	b.attach(&inst.local)
	b.Insts = append(b.Insts, inst)
	return inst, nil
}

// gepResultType walks the index list of a getelementptr through the source
// element type, validating each step. Shared by the instruction and the
// constant-expression form.
func gepResultType(elem, src types.Type, indices []Value) (types.Type, error) {
	pt, ok := src.(*types.PointerType)
	if !ok {
		return nil, typeErrf("getelementptr source must be a pointer, got %s", src)
	}
	if !pt.Elem.Equal(elem) {
		return nil, typeErrf("getelementptr element type %s does not match pointee %s", elem, pt.Elem)
	}
	if len(indices) == 0 {
		return nil, structErrf("getelementptr requires at least one index")
	}
	cur := elem
	for i, idx := range indices {
		if !types.IsInt(idx.Type()) {
			return nil, typeErrf("getelementptr index %d must be an integer, got %s", i, idx.Type())
		}
		if i == 0 {
			// The first index steps across the pointer itself.
			continue
		}
		switch t := cur.(type) {
		case *types.ArrayType:
			cur = t.Elem
		case *types.VectorType:
			cur = t.Elem
		case *types.StructType:
			if t.Opaque {
				return nil, typeErrf("cannot index into opaque type %s", t)
			}
			ci, ok := idx.(*ConstInt)
			if !ok || ci.Typ.Bits != 32 {
				return nil, typeErrf("getelementptr index %d into struct %s must be a constant i32", i, t)
			}
			if ci.X < 0 || ci.X >= int64(len(t.Fields)) {
				return nil, structErrf("getelementptr index %d out of range for struct %s", ci.X, t)
			}
			cur = t.Fields[ci.X]
		default:
			return nil, typeErrf("getelementptr cannot index into type %s", cur)
		}
	}
	return &types.PointerType{Elem: cur, AddrSpace: pt.AddrSpace}, nil
}

// sized reports whether values of type t can be stack-allocated, loaded and
// stored.
func sized(t types.Type) bool {
	switch t.(type) {
	case *types.VoidType, *types.FuncType:
		return false
	}
	if st, ok := t.(*types.StructType); ok && st.Opaque {
		return false
	}
	return true
}

// === [ Call, phi, select ] ===================================================

// InstCall calls a function or a function pointer.
type InstCall struct {
	local
	Callee Value
	Args   []Value
	// Attrs holds call-site attributes, rendered through the module's
	// attribute-group table.
	Attrs []string

	sig *types.FuncType
}

func (inst *InstCall) isInst() {}

func (inst *InstCall) Type() types.Type {
	return inst.sig.Ret
}

// Sig returns the callee's signature.
func (inst *InstCall) Sig() *types.FuncType {
	return inst.sig
}

// NewCall appends a call instruction. The callee must be a *Func or a value
// of pointer-to-function type, and the arguments must match the callee's
// signature, including any variadic tail.
func (b *Block) NewCall(callee Value, args ...Value) (*InstCall, error) {
	if err := b.open(); err != nil {
		return nil, err
	}
	sig, err := calleeSig(callee)
	if err != nil {
		return nil, err
	}
	if sig.Variadic {
		if len(args) < len(sig.Params) {
			return nil, typeErrf("call to %s has %d args, want at least %d", callee.Ident(), len(args), len(sig.Params))
		}
	} else if len(args) != len(sig.Params) {
		return nil, typeErrf("call to %s has %d args, want %d", callee.Ident(), len(args), len(sig.Params))
	}
	for i, arg := range args {
		if i < len(sig.Params) {
			if !arg.Type().Equal(sig.Params[i]) {
				return nil, typeErrf("call to %s: arg %d has type %s, want %s", callee.Ident(), i, arg.Type(), sig.Params[i])
			}
		} else if !types.IsFirstClass(arg.Type()) {
			return nil, typeErrf("call to %s: variadic arg %d has non-first-class type %s", callee.Ident(), i, arg.Type())
		}
	}
	inst := &InstCall{Callee: callee, Args: args, sig: sig}
	if !sig.Ret.Equal(types.Void) {
		b.attach(&inst.local)
	} else {
		inst.local.parent = b.parent
	}
	b.Insts = append(b.Insts, inst)
	return inst, nil
}

func calleeSig(callee Value) (*types.FuncType, error) {
	if f, ok := callee.(*Func); ok {
		return f.Sig, nil
	}
	pt, ok := callee.Type().(*types.PointerType)
	if !ok {
		return nil, typeErrf("callee %s is not callable (type %s)", callee.Ident(), callee.Type())
	}
	ft, ok := pt.Elem.(*types.FuncType)
	if !ok {
		return nil, typeErrf("callee %s is not callable (type %s)", callee.Ident(), callee.Type())
	}
	return ft, nil
}

// Incoming is one (value, predecessor) pair of a phi instruction.
type Incoming struct {
	X    Value
	Pred *Block
}

// NewIncoming returns a phi incoming pair.
func NewIncoming(x Value, pred *Block) *Incoming {
	return &Incoming{X: x, Pred: pred}
}

// InstPhi selects a value based on the predecessor control flow arrived
// from.
type InstPhi struct {
	local
	Incs []*Incoming

	typ types.Type
}

func (inst *InstPhi) isInst() {}

func (inst *InstPhi) Type() types.Type {
	return inst.typ
}

// NewPhi appends a phi instruction. Phis must precede every other
// instruction of their block, the incoming values must share one type, and
// each incoming block must belong to the same function and (once it is
// terminated) actually branch here. Module.Finish additionally checks that
// the incoming set covers the block's predecessors exactly.
func (b *Block) NewPhi(incs ...*Incoming) (*InstPhi, error) {
	if err := b.open(); err != nil {
		return nil, err
	}
	if len(incs) == 0 {
		return nil, structErrf("phi requires at least one incoming")
	}
	for _, other := range b.Insts {
		if _, ok := other.(*InstPhi); !ok {
			return nil, structErrf("phi must precede all non-phi instructions in block %%%s", b.Label)
		}
	}
	typ := incs[0].X.Type()
	if !types.IsFirstClass(typ) {
		return nil, typeErrf("phi cannot produce a value of type %s", typ)
	}
	seen := make(map[*Block]bool)
	for i, inc := range incs {
		if !inc.X.Type().Equal(typ) {
			return nil, typeErrf("phi incoming %d has type %s, want %s", i, inc.X.Type(), typ)
		}
		if inc.Pred == nil || inc.Pred.parent != b.parent {
			return nil, structErrf("phi incoming %d references a block outside function @%s", i, b.parent.FuncName)
		}
		if seen[inc.Pred] {
			return nil, structErrf("phi has duplicate incoming block %%%s", inc.Pred.Label)
		}
		seen[inc.Pred] = true
		if inc.Pred.Term != nil && !targets(inc.Pred.Term, b) {
			return nil, structErrf("phi incoming block %%%s is not a predecessor of %%%s", inc.Pred.Label, b.Label)
		}
	}
	inst := &InstPhi{Incs: incs, typ: typ}
	b.attach(&inst.local)
	b.Insts = append(b.Insts, inst)
	return inst, nil
}

// InstSelect picks one of two values based on an i1 condition.
type InstSelect struct {
	local
	Cond, X, Y Value
}

func (inst *InstSelect) isInst() {}

func (inst *InstSelect) Type() types.Type {
	return inst.X.Type()
}

// NewSelect appends a select instruction.
func (b *Block) NewSelect(cond, x, y Value) (*InstSelect, error) {
	if err := b.open(); err != nil {
		return nil, err
	}
	if !cond.Type().Equal(types.I1) {
		return nil, typeErrf("select condition must be i1, got %s", cond.Type())
	}
	if !x.Type().Equal(y.Type()) {
		return nil, typeErrf("select operands disagree: %s vs %s", x.Type(), y.Type())
	}
	if !types.IsFirstClass(x.Type()) {
		return nil, typeErrf("select cannot produce a value of type %s", x.Type())
	}
	inst := &InstSelect{Cond: cond, X: x, Y: y}
	b.attach(&inst.local)
	b.Insts = append(b.Insts, inst)
	return inst, nil
}
