package ir

import (
	"fmt"

	"github.com/kartiknair/lir/types"
)

// Module is an ordered collection of named type definitions, global
// variables and functions. Declaration order is preserved and is the order
// the printer emits, which keeps output deterministic.
type Module struct {
	// Name is emitted as the module ID and source filename.
	Name string

	TypeDefs []*types.StructType
	Globals  []*Global
	Funcs    []*Func

	typeNames map[string]bool
	symbols   map[string]bool
	anonGlob  int
	finished  bool
}

// NewModule returns a new, empty module.
func NewModule(name string) *Module {
	return &Module{
		Name:      name,
		typeNames: make(map[string]bool),
		symbols:   make(map[string]bool),
	}
}

// NewTypeDef registers t as an identified struct type named name and returns
// it. The type subsequently prints as `%name`, with its body emitted in the
// module's type-definition section.
func (m *Module) NewTypeDef(name string, t *types.StructType) (*types.StructType, error) {
	if name == "" {
		return nil, structErrf("type definition needs a name")
	}
	if t.Name != "" && t.Name != name {
		return nil, structErrf("struct type is already named %%%s", t.Name)
	}
	if m.typeNames[name] {
		return nil, structErrf("duplicate type name %%%s", name)
	}
	t.Name = name
	m.typeNames[name] = true
	m.TypeDefs = append(m.TypeDefs, t)
	return t, nil
}

// NewOpaqueType declares an identified struct type with no body, e.g.
// `%Qubit = type opaque`.
func (m *Module) NewOpaqueType(name string) (*types.StructType, error) {
	return m.NewTypeDef(name, &types.StructType{Opaque: true})
}

// NewGlobal defines a global variable initialized with init. An empty name
// is replaced with a generated one.
func (m *Module) NewGlobal(name string, init Constant) (*Global, error) {
	if init == nil {
		return nil, structErrf("global @%s needs an initializer; use NewGlobalDecl for external globals", name)
	}
	name, err := m.claimSymbol(name)
	if err != nil {
		return nil, err
	}
	g := &Global{GlobalName: name, ContentType: init.Type(), Init: init}
	m.Globals = append(m.Globals, g)
	return g, nil
}

// NewGlobalDecl declares an external global variable of the given content
// type.
func (m *Module) NewGlobalDecl(name string, contentType types.Type) (*Global, error) {
	name, err := m.claimSymbol(name)
	if err != nil {
		return nil, err
	}
	g := &Global{GlobalName: name, ContentType: contentType, Linkage: LinkageExternal}
	m.Globals = append(m.Globals, g)
	return g, nil
}

// NewFunc adds a function with the given name, return type and parameters.
// Until blocks are added the function is an external declaration. Unnamed
// parameters receive fresh names.
func (m *Module) NewFunc(name string, ret types.Type, params ...*Param) (*Func, error) {
	if name == "" {
		return nil, structErrf("function needs a name")
	}
	if _, err := m.claimSymbol(name); err != nil {
		return nil, err
	}
	paramTypes := make([]types.Type, len(params))
	for i, p := range params {
		if !types.IsFirstClass(p.Typ) {
			return nil, typeErrf("parameter %d of @%s has non-first-class type %s", i, name, p.Typ)
		}
		paramTypes[i] = p.Typ
	}
	f := &Func{
		parent:   m,
		FuncName: name,
		Sig:      types.NewFunc(ret, paramTypes...),
		Params:   params,
		names:    make(map[string]bool),
	}
	for _, p := range params {
		if p.ParamName == "" {
			p.ParamName = f.freshLocal()
		} else if f.names[p.ParamName] {
			return nil, structErrf("duplicate parameter name %%%s in @%s", p.ParamName, name)
		} else {
			f.names[p.ParamName] = true
		}
	}
	m.Funcs = append(m.Funcs, f)
	return f, nil
}

// claimSymbol reserves a name in the module's symbol namespace (globals and
// functions share it). An empty name is replaced with a generated one.
func (m *Module) claimSymbol(name string) (string, error) {
	if name == "" {
		for {
			name = fmt.Sprintf("str.%d", m.anonGlob)
			m.anonGlob++
			if !m.symbols[name] {
				break
			}
		}
	} else if m.symbols[name] {
		return "", structErrf("duplicate symbol @%s", name)
	}
	m.symbols[name] = true
	return name, nil
}

// Finish runs the consistency checks that cannot be done incrementally:
// every block of every defined function is terminated, phi incoming sets
// match their block's actual predecessors exactly, every referenced symbol
// is declared in the module, and every named struct type in use has a type
// definition. Only a module that passes Finish should be printed for
// consumption by an external tool.
func (m *Module) Finish() error {
	for _, f := range m.Funcs {
		if len(f.Blocks) == 0 {
			continue
		}
		for _, b := range f.Blocks {
			if b.Term == nil {
				return moduleErrf("block %%%s of @%s has no terminator", b.Label, f.FuncName)
			}
		}
		for _, b := range f.Blocks {
			if err := f.checkPhis(b); err != nil {
				return err
			}
		}
	}
	if err := m.checkSymbols(); err != nil {
		return err
	}
	if err := m.checkNamedTypes(); err != nil {
		return err
	}
	m.finished = true
	return nil
}

// checkPhis verifies that each phi's incoming set covers b's predecessors
// exactly, now that the whole CFG is known.
func (f *Func) checkPhis(b *Block) error {
	preds := f.preds(b)
	predSet := make(map[*Block]bool, len(preds))
	for _, p := range preds {
		predSet[p] = true
	}
	for _, inst := range b.Insts {
		phi, ok := inst.(*InstPhi)
		if !ok {
			break
		}
		if len(phi.Incs) != len(preds) {
			return moduleErrf("phi %%%s in %%%s has %d incomings, block has %d predecessors",
				phi.Name(), b.Label, len(phi.Incs), len(preds))
		}
		for _, inc := range phi.Incs {
			if !predSet[inc.Pred] {
				return moduleErrf("phi %%%s in %%%s names non-predecessor %%%s",
					phi.Name(), b.Label, inc.Pred.Label)
			}
		}
	}
	return nil
}

// checkSymbols verifies that every global and function referenced by any
// operand or initializer is declared in this module.
func (m *Module) checkSymbols() error {
	declaredGlobals := make(map[*Global]bool, len(m.Globals))
	for _, g := range m.Globals {
		declaredGlobals[g] = true
	}
	declaredFuncs := make(map[*Func]bool, len(m.Funcs))
	for _, f := range m.Funcs {
		declaredFuncs[f] = true
	}
	var check func(v Value) error
	check = func(v Value) error {
		switch v := v.(type) {
		case *Global:
			if !declaredGlobals[v] {
				return moduleErrf("reference to undeclared global @%s", v.GlobalName)
			}
		case *Func:
			if !declaredFuncs[v] {
				return moduleErrf("reference to undeclared function @%s", v.FuncName)
			}
		case *ConstArray:
			for _, e := range v.Elems {
				if err := check(e); err != nil {
					return err
				}
			}
		case *ConstStruct:
			for _, fld := range v.Fields {
				if err := check(fld); err != nil {
					return err
				}
			}
		case *ConstGEP:
			return check(v.Src)
		}
		return nil
	}
	for _, g := range m.Globals {
		if g.Init != nil {
			if err := check(g.Init); err != nil {
				return err
			}
		}
	}
	for _, f := range m.Funcs {
		for _, b := range f.Blocks {
			for _, inst := range b.Insts {
				for _, op := range instOperands(inst) {
					if err := check(op); err != nil {
						return err
					}
				}
			}
			for _, op := range termOperands(b.Term) {
				if err := check(op); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// checkNamedTypes verifies that every named struct type reachable from the
// module's globals, signatures and instructions has a type definition.
func (m *Module) checkNamedTypes() error {
	var err error
	visit := func(t types.Type) {
		if err != nil {
			return
		}
		walkTypes(t, make(map[string]bool), func(st *types.StructType) {
			if err == nil && st.Name != "" && !m.typeNames[st.Name] {
				err = moduleErrf("use of undeclared type %%%s", st.Name)
			}
		})
	}
	for _, g := range m.Globals {
		visit(g.ContentType)
	}
	for _, f := range m.Funcs {
		visit(f.Sig)
		for _, b := range f.Blocks {
			for _, inst := range b.Insts {
				if v, ok := inst.(Value); ok && !isVoidCall(inst) {
					visit(v.Type())
				}
				for _, op := range instOperands(inst) {
					visit(op.Type())
				}
			}
			for _, op := range termOperands(b.Term) {
				visit(op.Type())
			}
		}
	}
	return err
}

func isVoidCall(inst Instruction) bool {
	call, ok := inst.(*InstCall)
	return ok && call.sig.Ret.Equal(types.Void)
}

// walkTypes applies fn to every struct type reachable from t. Named structs
// are visited once to keep recursive types from looping.
func walkTypes(t types.Type, seen map[string]bool, fn func(*types.StructType)) {
	switch t := t.(type) {
	case *types.PointerType:
		walkTypes(t.Elem, seen, fn)
	case *types.ArrayType:
		walkTypes(t.Elem, seen, fn)
	case *types.VectorType:
		walkTypes(t.Elem, seen, fn)
	case *types.FuncType:
		walkTypes(t.Ret, seen, fn)
		for _, p := range t.Params {
			walkTypes(p, seen, fn)
		}
	case *types.StructType:
		if t.Name != "" {
			if seen[t.Name] {
				return
			}
			seen[t.Name] = true
		}
		fn(t)
		for _, f := range t.Fields {
			walkTypes(f, seen, fn)
		}
	}
}

// instOperands returns the value operands of a non-terminator instruction.
func instOperands(inst Instruction) []Value {
	switch inst := inst.(type) {
	case *InstBinary:
		return []Value{inst.X, inst.Y}
	case *InstFNeg:
		return []Value{inst.X}
	case *InstICmp:
		return []Value{inst.X, inst.Y}
	case *InstFCmp:
		return []Value{inst.X, inst.Y}
	case *InstConv:
		return []Value{inst.From}
	case *InstAlloca:
		return nil
	case *InstLoad:
		return []Value{inst.Src}
	case *InstStore:
		return []Value{inst.Src, inst.Dst}
	case *InstGEP:
		return append([]Value{inst.Src}, inst.Indices...)
	case *InstCall:
		return append([]Value{inst.Callee}, inst.Args...)
	case *InstPhi:
		ops := make([]Value, len(inst.Incs))
		for i, inc := range inst.Incs {
			ops[i] = inc.X
		}
		return ops
	case *InstSelect:
		return []Value{inst.Cond, inst.X, inst.Y}
	}
	panic(fmt.Sprintf("invalid instruction %T", inst))
}

// termOperands returns the value operands of a terminator.
func termOperands(term Terminator) []Value {
	switch term := term.(type) {
	case nil:
		return nil
	case *TermRet:
		if term.X == nil {
			return nil
		}
		return []Value{term.X}
	case *TermBr, *TermUnreachable:
		return nil
	case *TermCondBr:
		return []Value{term.Cond}
	case *TermSwitch:
		ops := []Value{term.X}
		for _, c := range term.Cases {
			ops = append(ops, c.X)
		}
		return ops
	}
	panic(fmt.Sprintf("invalid terminator %T", term))
}
