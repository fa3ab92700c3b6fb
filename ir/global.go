package ir

import "github.com/kartiknair/lir/types"

// Global is a module-scope variable. A global with a nil initializer is an
// external declaration. When referenced as a value, a global has
// pointer-to-content type.
type Global struct {
	GlobalName  string
	ContentType types.Type
	Init        Constant
	Linkage     Linkage
	// Immutable globals print with the `constant` keyword.
	Immutable bool
}

// The address of a global is a constant, so globals can appear in constant
// expressions such as getelementptr.
func (g *Global) isConstant() {}

func (g *Global) Type() types.Type {
	return types.NewPointer(g.ContentType)
}

func (g *Global) Ident() string {
	return "@" + types.EscapeIdent(g.GlobalName)
}

// Name returns the global's symbol name, without the `@` sigil.
func (g *Global) Name() string {
	return g.GlobalName
}
