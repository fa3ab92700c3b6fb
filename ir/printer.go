package ir

import (
	"fmt"
	"strings"

	"github.com/kartiknair/lir/types"
)

// String renders the module as LLVM textual assembly. Printing is a pure
// traversal with no fallible path: run Finish first, and a module that
// passed it always prints valid IR. Output order is declaration order
// throughout, so printing the same module twice yields identical bytes.
func (m *Module) String() string {
	p := &printer{groupIDs: make(map[string]int)}

	var segments []string
	header := fmt.Sprintf("; ModuleID = '%s'\nsource_filename = %q", m.Name, m.Name)
	segments = append(segments, header)

	if len(m.TypeDefs) > 0 {
		var sb strings.Builder
		for i, t := range m.TypeDefs {
			if i != 0 {
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "%%%s = type %s", types.EscapeIdent(t.Name), t.Body())
		}
		segments = append(segments, sb.String())
	}

	if len(m.Globals) > 0 {
		var sb strings.Builder
		for i, g := range m.Globals {
			if i != 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(p.global(g))
		}
		segments = append(segments, sb.String())
	}

	for _, f := range m.Funcs {
		segments = append(segments, p.fn(f))
	}

	if len(p.groups) > 0 {
		var sb strings.Builder
		for i, attrs := range p.groups {
			if i != 0 {
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "attributes #%d = { %s }", i, attrs)
		}
		segments = append(segments, sb.String())
	}

	return strings.Join(segments, "\n\n") + "\n"
}

// printer carries the attribute-group table built up while rendering a
// module. Groups are numbered in first-use order, which keeps output
// deterministic.
type printer struct {
	groups   []string
	groupIDs map[string]int
}

// groupRef interns the attribute list and returns its ` #N` reference, or ""
// for an empty list.
func (p *printer) groupRef(attrs []string) string {
	if len(attrs) == 0 {
		return ""
	}
	rendered := make([]string, len(attrs))
	for i, a := range attrs {
		rendered[i] = renderAttr(a)
	}
	key := strings.Join(rendered, " ")
	id, ok := p.groupIDs[key]
	if !ok {
		id = len(p.groups)
		p.groups = append(p.groups, key)
		p.groupIDs[key] = id
	}
	return fmt.Sprintf(" #%d", id)
}

// wellKnownAttrs are attributes LLVM's grammar accepts as bare keywords; any
// other attribute is a string attribute and must be quoted.
var wellKnownAttrs = map[string]bool{
	"alwaysinline": true,
	"argmemonly":   true,
	"inlinehint":   true,
	"nofree":       true,
	"noinline":     true,
	"norecurse":    true,
	"nounwind":     true,
	"readnone":     true,
	"readonly":     true,
	"willreturn":   true,
	"writeonly":    true,
}

func renderAttr(attr string) string {
	if i := strings.IndexByte(attr, '='); i >= 0 {
		return fmt.Sprintf("%q=%q", attr[:i], attr[i+1:])
	}
	if wellKnownAttrs[attr] {
		return attr
	}
	return fmt.Sprintf("%q", attr)
}

func (p *printer) global(g *Global) string {
	var sb strings.Builder
	sb.WriteString(g.Ident())
	sb.WriteString(" = ")
	if g.Init == nil {
		sb.WriteString("external ")
	} else if l := g.Linkage.String(); l != "" {
		sb.WriteString(l)
		sb.WriteString(" ")
	}
	if g.Immutable {
		sb.WriteString("constant ")
	} else {
		sb.WriteString("global ")
	}
	sb.WriteString(g.ContentType.String())
	if g.Init != nil {
		sb.WriteString(" ")
		sb.WriteString(g.Init.Ident())
	}
	return sb.String()
}

func (p *printer) fn(f *Func) string {
	var sb strings.Builder
	if len(f.Blocks) == 0 {
		sb.WriteString("declare ")
		sb.WriteString(f.Sig.Ret.String())
		sb.WriteString(" ")
		sb.WriteString(f.Ident())
		sb.WriteString("(")
		for i, param := range f.Params {
			if i != 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(param.Typ.String())
			for _, a := range param.Attrs {
				sb.WriteString(" ")
				sb.WriteString(renderAttr(a))
			}
		}
		if f.Sig.Variadic {
			if len(f.Params) > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("...")
		}
		sb.WriteString(")")
		sb.WriteString(p.groupRef(f.Attrs))
		return sb.String()
	}

	sb.WriteString("define ")
	if l := f.Linkage.String(); l != "" {
		sb.WriteString(l)
		sb.WriteString(" ")
	}
	sb.WriteString(f.Sig.Ret.String())
	sb.WriteString(" ")
	sb.WriteString(f.Ident())
	sb.WriteString("(")
	for i, param := range f.Params {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(param.Typ.String())
		for _, a := range param.Attrs {
			sb.WriteString(" ")
			sb.WriteString(renderAttr(a))
		}
		sb.WriteString(" ")
		sb.WriteString(param.Ident())
	}
	if f.Sig.Variadic {
		if len(f.Params) > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("...")
	}
	sb.WriteString(")")
	sb.WriteString(p.groupRef(f.Attrs))
	sb.WriteString(" {\n")
	for i, b := range f.Blocks {
		if i != 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(types.EscapeIdent(b.Label))
		sb.WriteString(":\n")
		for _, inst := range b.Insts {
			sb.WriteString("  ")
			sb.WriteString(p.inst(inst))
			sb.WriteString("\n")
		}
		sb.WriteString("  ")
		sb.WriteString(p.term(b.Term))
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// typed renders an operand in `<type> <ident>` form.
func typed(v Value) string {
	return v.Type().String() + " " + v.Ident()
}

// label renders a block reference in `label %name` form.
func label(b *Block) string {
	return "label %" + types.EscapeIdent(b.Label)
}

// inst renders a single non-terminator instruction. The switch is
// exhaustive over the closed instruction set; an unknown instruction is a
// bug in this package.
func (p *printer) inst(inst Instruction) string {
	switch inst := inst.(type) {
	case *InstBinary:
		return fmt.Sprintf("%s = %s %s, %s", inst.Ident(), inst.Op, typed(inst.X), inst.Y.Ident())
	case *InstFNeg:
		return fmt.Sprintf("%s = fneg %s", inst.Ident(), typed(inst.X))
	case *InstICmp:
		return fmt.Sprintf("%s = icmp %s %s, %s", inst.Ident(), inst.Pred, typed(inst.X), inst.Y.Ident())
	case *InstFCmp:
		return fmt.Sprintf("%s = fcmp %s %s, %s", inst.Ident(), inst.Pred, typed(inst.X), inst.Y.Ident())
	case *InstConv:
		return fmt.Sprintf("%s = %s %s to %s", inst.Ident(), inst.Op, typed(inst.From), inst.To)
	case *InstAlloca:
		return fmt.Sprintf("%s = alloca %s", inst.Ident(), inst.ElemType)
	case *InstLoad:
		return fmt.Sprintf("%s = load %s, %s", inst.Ident(), inst.ElemType, typed(inst.Src))
	case *InstStore:
		return fmt.Sprintf("store %s, %s", typed(inst.Src), typed(inst.Dst))
	case *InstGEP:
		var sb strings.Builder
		sb.WriteString(inst.Ident())
		sb.WriteString(" = getelementptr ")
		if inst.InBounds {
			sb.WriteString("inbounds ")
		}
		sb.WriteString(inst.ElemType.String())
		sb.WriteString(", ")
		sb.WriteString(typed(inst.Src))
		for _, idx := range inst.Indices {
			sb.WriteString(", ")
			sb.WriteString(typed(idx))
		}
		return sb.String()
	case *InstCall:
		var sb strings.Builder
		void := inst.sig.Ret.Equal(types.Void)
		if !void {
			sb.WriteString(inst.Ident())
			sb.WriteString(" = ")
		}
		sb.WriteString("call ")
		if inst.sig.Variadic {
			// Calls through a variadic signature spell out the whole
			// function type.
			sb.WriteString(inst.sig.String())
		} else {
			sb.WriteString(inst.sig.Ret.String())
		}
		sb.WriteString(" ")
		sb.WriteString(inst.Callee.Ident())
		sb.WriteString("(")
		for i, arg := range inst.Args {
			if i != 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(typed(arg))
		}
		sb.WriteString(")")
		sb.WriteString(p.groupRef(inst.Attrs))
		return sb.String()
	case *InstPhi:
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s = phi %s ", inst.Ident(), inst.typ)
		for i, inc := range inst.Incs {
			if i != 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "[ %s, %%%s ]", inc.X.Ident(), types.EscapeIdent(inc.Pred.Label))
		}
		return sb.String()
	case *InstSelect:
		return fmt.Sprintf("%s = select %s, %s, %s",
			inst.Ident(), typed(inst.Cond), typed(inst.X), typed(inst.Y))
	}
	panic(fmt.Sprintf("invalid instruction %T", inst))
}

// term renders a terminator.
func (p *printer) term(term Terminator) string {
	switch term := term.(type) {
	case *TermRet:
		if term.X == nil {
			return "ret void"
		}
		return "ret " + typed(term.X)
	case *TermBr:
		return "br " + label(term.Target)
	case *TermCondBr:
		return fmt.Sprintf("br %s, %s, %s", typed(term.Cond), label(term.TargetTrue), label(term.TargetFalse))
	case *TermSwitch:
		var sb strings.Builder
		fmt.Fprintf(&sb, "switch %s, %s [\n", typed(term.X), label(term.Default))
		for _, c := range term.Cases {
			fmt.Fprintf(&sb, "    %s, %s\n", typed(c.X), label(c.Target))
		}
		sb.WriteString("  ]")
		return sb.String()
	case *TermUnreachable:
		return "unreachable"
	}
	panic(fmt.Sprintf("invalid terminator %T", term))
}
