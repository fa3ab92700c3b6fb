// Package ir models LLVM IR modules, functions, basic blocks, instructions
// and constants, and prints them to LLVM's textual assembly (LLVM 14, typed
// pointers). Construction is incremental and fallible: every builder call
// validates its local contract, and Module.Finish runs the global checks that
// cannot be done incrementally. Once Finish succeeds, printing cannot fail.
package ir

import "github.com/kartiknair/lir/types"

// Value is anything that can appear as an instruction operand: constants,
// instruction results, parameters, and global symbols.
type Value interface {
	// Type returns the declared type of the value.
	Type() types.Type
	// Ident renders the reference form of the value, e.g. `%a`, `@g`, `42`.
	Ident() string
}

// Param is a function parameter.
type Param struct {
	ParamName string
	Typ       types.Type
	// Attrs holds parameter attributes such as `writeonly`.
	Attrs []string
}

// NewParam returns a new function parameter. An empty name is replaced with
// a fresh one when the parameter is attached to a function.
func NewParam(name string, typ types.Type) *Param {
	return &Param{ParamName: name, Typ: typ}
}

func (p *Param) Type() types.Type {
	return p.Typ
}

func (p *Param) Ident() string {
	return "%" + types.EscapeIdent(p.ParamName)
}
