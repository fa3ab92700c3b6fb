package ir

import "github.com/kartiknair/lir/types"

// TermRet is a return terminator. X is nil for `ret void`.
type TermRet struct {
	X Value
}

func (term *TermRet) isInst() {}
func (term *TermRet) isTerm() {}

// NewRet terminates the block with a return. Pass nil to return void.
func (b *Block) NewRet(x Value) error {
	ret := b.parent.Sig.Ret
	if x == nil {
		if !ret.Equal(types.Void) {
			return typeErrf("ret void in function @%s returning %s", b.parent.FuncName, ret)
		}
	} else if !x.Type().Equal(ret) {
		return typeErrf("ret %s in function @%s returning %s", x.Type(), b.parent.FuncName, ret)
	}
	return b.terminate(&TermRet{X: x})
}

// TermBr is an unconditional branch.
type TermBr struct {
	Target *Block
}

func (term *TermBr) isInst() {}
func (term *TermBr) isTerm() {}

// NewBr terminates the block with an unconditional branch.
func (b *Block) NewBr(target *Block) error {
	if err := b.checkTarget(target); err != nil {
		return err
	}
	return b.terminate(&TermBr{Target: target})
}

// TermCondBr is a conditional branch.
type TermCondBr struct {
	Cond        Value
	TargetTrue  *Block
	TargetFalse *Block
}

func (term *TermCondBr) isInst() {}
func (term *TermCondBr) isTerm() {}

// NewCondBr terminates the block with a conditional branch.
func (b *Block) NewCondBr(cond Value, targetTrue, targetFalse *Block) error {
	if !cond.Type().Equal(types.I1) {
		return typeErrf("branch condition must be i1, got %s", cond.Type())
	}
	if err := b.checkTarget(targetTrue); err != nil {
		return err
	}
	if err := b.checkTarget(targetFalse); err != nil {
		return err
	}
	return b.terminate(&TermCondBr{Cond: cond, TargetTrue: targetTrue, TargetFalse: targetFalse})
}

// Case is one arm of a switch terminator.
type Case struct {
	X      *ConstInt
	Target *Block
}

// NewCase returns a switch case.
func NewCase(x *ConstInt, target *Block) *Case {
	return &Case{X: x, Target: target}
}

// TermSwitch is a switch terminator.
type TermSwitch struct {
	X       Value
	Default *Block
	Cases   []*Case
}

func (term *TermSwitch) isInst() {}
func (term *TermSwitch) isTerm() {}

// NewSwitch terminates the block with a switch. The operand must be an
// integer and every case value must share its type.
func (b *Block) NewSwitch(x Value, def *Block, cases ...*Case) error {
	if !types.IsInt(x.Type()) {
		return typeErrf("switch operand must be an integer, got %s", x.Type())
	}
	if err := b.checkTarget(def); err != nil {
		return err
	}
	for i, c := range cases {
		if !c.X.Type().Equal(x.Type()) {
			return typeErrf("switch case %d has type %s, want %s", i, c.X.Type(), x.Type())
		}
		if err := b.checkTarget(c.Target); err != nil {
			return err
		}
	}
	return b.terminate(&TermSwitch{X: x, Default: def, Cases: cases})
}

// TermUnreachable marks the end of a control path that cannot be reached.
type TermUnreachable struct{}

func (term *TermUnreachable) isInst() {}
func (term *TermUnreachable) isTerm() {}

// NewUnreachable terminates the block with unreachable.
func (b *Block) NewUnreachable() error {
	return b.terminate(&TermUnreachable{})
}

// targets reports whether the terminator transfers control to dst.
func targets(term Terminator, dst *Block) bool {
	switch term := term.(type) {
	case *TermBr:
		return term.Target == dst
	case *TermCondBr:
		return term.TargetTrue == dst || term.TargetFalse == dst
	case *TermSwitch:
		if term.Default == dst {
			return true
		}
		for _, c := range term.Cases {
			if c.Target == dst {
				return true
			}
		}
	}
	return false
}

// successors returns the blocks the terminator can transfer control to.
func successors(term Terminator) []*Block {
	switch term := term.(type) {
	case *TermBr:
		return []*Block{term.Target}
	case *TermCondBr:
		return []*Block{term.TargetTrue, term.TargetFalse}
	case *TermSwitch:
		succs := []*Block{term.Default}
		for _, c := range term.Cases {
			succs = append(succs, c.Target)
		}
		return succs
	}
	return nil
}
