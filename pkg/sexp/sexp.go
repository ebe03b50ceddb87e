// Package sexp is a small, dependency-free Lisp-like S-expression tree and
// tokenizer for KiCad's text file format (spec §4.2): a generic tokenizer
// emits atoms and parentheses; a recursive builder forms a tree node
// carrying its head symbol plus ordered child nodes.
package sexp

import "strings"

// Sexp is one S-expression node: either a leaf (atom) or a list.
type Sexp interface {
	IsLeaf() bool
	LeafCount() int
	Head() Sexp
	Tail() Sexp
	String() string
}

// Symbol is an atomic token: a bareword, number, or a quoted string
// (quotes included verbatim, so callers can tell the two apart).
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) LeafCount() int { return 1 }
func (s Symbol) Head() Sexp     { return s }
func (s Symbol) Tail() Sexp     { return nil }
func (s Symbol) String() string { return string(s) }

// Quoted reports whether the symbol was lexed as a double-quoted string.
func (s Symbol) Quoted() bool {
	return strings.HasPrefix(string(s), `"`) && strings.HasSuffix(string(s), `"`) && len(s) >= 2
}

// Unquoted strips surrounding quotes, if present.
func (s Symbol) Unquoted() string {
	if s.Quoted() {
		return string(s[1 : len(s)-1])
	}
	return string(s)
}

// List is an ordered sequence of child nodes, e.g. "(at 1 2 90)".
type List struct {
	Elements []Sexp
}

func (l *List) IsLeaf() bool   { return false }
func (l *List) LeafCount() int { return len(l.Elements) }

func (l *List) Head() Sexp {
	if len(l.Elements) == 0 {
		return nil
	}
	return l.Elements[0]
}

func (l *List) Tail() Sexp {
	if len(l.Elements) <= 1 {
		return nil
	}
	return &List{Elements: l.Elements[1:]}
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range l.Elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Items returns every element of the list (head symbol plus all children).
func (l *List) Items() []Sexp {
	return l.Elements
}

// HeadSymbol returns the node's leading symbol — for a list, the first
// element if it is itself a Symbol; for a leaf, the symbol itself.
func HeadSymbol(s Sexp) (Symbol, bool) {
	if s == nil {
		return "", false
	}
	if s.IsLeaf() {
		sym, ok := s.(Symbol)
		return sym, ok
	}
	l, ok := s.(*List)
	if !ok || len(l.Elements) == 0 {
		return "", false
	}
	sym, ok := l.Elements[0].(Symbol)
	return sym, ok
}
