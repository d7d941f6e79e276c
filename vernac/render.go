package vernac

import "strings"

// Deterministic sentence serialization. Equal sentence sequences always
// render to equal text: there is no configuration, no environment lookup,
// and no map iteration anywhere in the renderer.

// Render serializes an ordered sentence sequence to Coq source text.
// Sentences are separated by blank lines; output ends with a newline.
func Render(sentences []Sentence) string {
	var b strings.Builder
	for i, s := range sentences {
		if i > 0 {
			b.WriteByte('\n')
		}
		renderSentence(&b, s)
		b.WriteByte('\n')
	}
	return b.String()
}

func renderSentence(b *strings.Builder, s Sentence) {
	switch s := s.(type) {
	case Require:
		if s.From != "" {
			b.WriteString("From ")
			b.WriteString(s.From)
			b.WriteByte(' ')
		}
		b.WriteString("Require ")
		if s.Export {
			b.WriteString("Export ")
		} else {
			b.WriteString("Import ")
		}
		b.WriteString(s.Module)
		b.WriteByte('.')

	case Axiom:
		b.WriteString("Axiom ")
		b.WriteString(s.Name)
		b.WriteString(" : ")
		b.WriteString(RenderType(s.Type))
		b.WriteByte('.')

	case Definition:
		b.WriteString("Definition ")
		b.WriteString(s.Name)
		renderBinders(b, s.Binders)
		if s.Type != nil {
			b.WriteString(" : ")
			b.WriteString(RenderType(s.Type))
		}
		b.WriteString(" :=\n  ")
		b.WriteString(renderTerm(s.Body, 1))
		b.WriteByte('.')

	case Inductive:
		b.WriteString("Inductive ")
		b.WriteString(s.Name)
		renderBinders(b, s.Binders)
		b.WriteString(" : ")
		b.WriteString(RenderType(s.Arity))
		b.WriteString(" :=")
		for _, c := range s.Constructors {
			b.WriteString("\n| ")
			b.WriteString(c.Name)
			b.WriteString(" : ")
			b.WriteString(RenderType(c.Type))
		}
		b.WriteByte('.')

	case RecordDef:
		b.WriteString("Record ")
		b.WriteString(s.Name)
		renderBinders(b, s.Binders)
		b.WriteString(" : Type := {")
		for i, f := range s.Fields {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString("\n  ")
			b.WriteString(f.Name)
			b.WriteString(" : ")
			b.WriteString(RenderType(f.Type))
		}
		b.WriteString("\n}.")

	case Comment:
		b.WriteString("(* ")
		b.WriteString(s.Text)
		b.WriteString(" *)")
	}
}

func renderBinders(b *strings.Builder, binders []Binder) {
	for _, bd := range binders {
		b.WriteString(" (")
		b.WriteString(strings.Join(bd.Names, " "))
		b.WriteString(" : ")
		b.WriteString(RenderType(bd.Type))
		b.WriteByte(')')
	}
}

// RenderType serializes a type expression with minimal parentheses.
// Application binds tightest, then product, then arrow (right-associative).
func RenderType(t Type) string {
	switch t := t.(type) {
	case Ref:
		return t.Name
	case App:
		parts := make([]string, 0, len(t.Args)+1)
		parts = append(parts, typeAtom(t.Head))
		for _, a := range t.Args {
			parts = append(parts, typeAtom(a))
		}
		return strings.Join(parts, " ")
	case Prod:
		parts := make([]string, len(t.Items))
		for i, it := range t.Items {
			parts[i] = prodAtom(it)
		}
		return strings.Join(parts, " * ")
	case Arrow:
		dom := RenderType(t.Dom)
		if _, ok := t.Dom.(Arrow); ok {
			dom = "(" + dom + ")"
		}
		return dom + " -> " + RenderType(t.Cod)
	}
	return ""
}

// typeAtom parenthesizes anything that is not a plain reference
func typeAtom(t Type) string {
	if r, ok := t.(Ref); ok {
		return r.Name
	}
	return "(" + RenderType(t) + ")"
}

// prodAtom parenthesizes arrows and nested products inside a product
func prodAtom(t Type) string {
	switch t.(type) {
	case Arrow, Prod:
		return "(" + RenderType(t) + ")"
	}
	return RenderType(t)
}

func renderTerm(t Term, depth int) string {
	indent := strings.Repeat("  ", depth)
	switch t := t.(type) {
	case Ref:
		return t.Name
	case TypeTerm:
		return RenderType(t.Type)
	case TermApp:
		parts := []string{termAtom(t.Head, depth)}
		for _, a := range t.Args {
			parts = append(parts, termAtom(a, depth))
		}
		return strings.Join(parts, " ")
	case Fun:
		head := "fun " + strings.Join(t.Params, " ") + " =>"
		if m, ok := t.Body.(Match); ok {
			return head + "\n" + indent + "  " + renderTerm(m, depth+1)
		}
		return head + " " + renderTerm(t.Body, depth)
	case Match:
		var b strings.Builder
		b.WriteString("match ")
		b.WriteString(renderTerm(t.Scrutinee, depth))
		b.WriteString(" with")
		for _, arm := range t.Arms {
			b.WriteByte('\n')
			b.WriteString(indent)
			b.WriteString("| ")
			b.WriteString(arm.Constructor)
			for _, v := range arm.Vars {
				b.WriteByte(' ')
				b.WriteString(v)
			}
			b.WriteString(" => ")
			b.WriteString(renderTerm(arm.Body, depth+1))
		}
		b.WriteByte('\n')
		b.WriteString(indent)
		b.WriteString("end")
		return b.String()
	}
	return ""
}

// termAtom parenthesizes compound terms in application position
func termAtom(t Term, depth int) string {
	switch t.(type) {
	case Ref:
		return renderTerm(t, depth)
	}
	return "(" + renderTerm(t, depth) + ")"
}
