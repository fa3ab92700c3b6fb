package ir

// Block is a basic block: a label, an ordered sequence of non-terminator
// instructions, and exactly one terminator. A block is sealed once
// terminated; further appends are rejected and leave it untouched.
type Block struct {
	parent *Func
	Label  string
	Insts  []Instruction
	Term   Terminator
}

// Parent returns the function owning the block.
func (b *Block) Parent() *Func {
	return b.parent
}

// Terminated reports whether the block already has a terminator.
func (b *Block) Terminated() bool {
	return b.Term != nil
}

// open fails if the block is already sealed.
func (b *Block) open() error {
	if b.Term != nil {
		return structErrf("block %%%s is already terminated", b.Label)
	}
	return nil
}

func (b *Block) terminate(term Terminator) error {
	if err := b.open(); err != nil {
		return err
	}
	b.Term = term
	return nil
}

func (b *Block) checkTarget(target *Block) error {
	if target == nil {
		return structErrf("branch in block %%%s has a nil target", b.Label)
	}
	if target.parent != b.parent {
		return structErrf("branch from %%%s targets block %%%s of another function", b.Label, target.Label)
	}
	return nil
}

// attach allocates a fresh SSA name for the instruction's result.
func (b *Block) attach(l *local) {
	l.parent = b.parent
	l.name = b.parent.freshLocal()
}
