package ir

import (
	"fmt"

	"github.com/kartiknair/lir/types"
)

// Func is a function: a name, a signature, and an ordered list of basic
// blocks. A function without blocks is a declaration of an external symbol
// and prints as `declare`.
type Func struct {
	parent   *Module
	FuncName string
	Sig      *types.FuncType
	Params   []*Param
	Blocks   []*Block
	Linkage  Linkage
	// Attrs holds function attributes such as `entry_point`; they are
	// rendered through the module's attribute-group table.
	Attrs []string

	names   map[string]bool
	counter int
	labels  int
}

// Func is referenced as a pointer to its signature type.
func (f *Func) Type() types.Type {
	return types.NewPointer(f.Sig)
}

func (f *Func) Ident() string {
	return "@" + types.EscapeIdent(f.FuncName)
}

// Name returns the function's symbol name, without the `@` sigil.
func (f *Func) Name() string {
	return f.FuncName
}

// NewBlock appends a new, empty basic block. An empty name is replaced with
// a generated label; an explicit name that is already taken is de-duplicated
// by suffixing. The first block created is the entry block.
func (f *Func) NewBlock(name string) *Block {
	var label string
	if name == "" {
		label = f.freshLabel()
	} else {
		label = f.freshName(name)
	}
	b := &Block{parent: f, Label: label}
	f.Blocks = append(f.Blocks, b)
	return b
}

// Entry returns the function's entry block, or nil for a declaration.
func (f *Func) Entry() *Block {
	if len(f.Blocks) == 0 {
		return nil
	}
	return f.Blocks[0]
}

// FreshName reserves and returns a local name guaranteed unused within the
// function: the given name if free, otherwise the name with a numeric
// suffix. Pass "" for a generated temporary name.
func (f *Func) FreshName(name string) string {
	if name == "" {
		return f.freshLocal()
	}
	return f.freshName(name)
}

func (f *Func) freshName(want string) string {
	if !f.names[want] {
		f.names[want] = true
		return want
	}
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s.%d", want, i)
		if !f.names[name] {
			f.names[name] = true
			return name
		}
	}
}

func (f *Func) freshLocal() string {
	for {
		name := fmt.Sprintf("t%d", f.counter)
		f.counter++
		if !f.names[name] {
			f.names[name] = true
			return name
		}
	}
}

func (f *Func) freshLabel() string {
	for {
		name := fmt.Sprintf("b%d", f.labels)
		f.labels++
		if !f.names[name] {
			f.names[name] = true
			return name
		}
	}
}

// preds returns the basic blocks whose terminators transfer control to dst.
// Blocks without a terminator yet are not counted.
func (f *Func) preds(dst *Block) []*Block {
	var preds []*Block
	for _, b := range f.Blocks {
		if b.Term != nil && targets(b.Term, dst) {
			preds = append(preds, b)
		}
	}
	return preds
}
