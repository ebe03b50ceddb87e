package sexp

import (
	"fmt"
	"strconv"
)

// Items returns every element of a node as a slice: for a list, all its
// children; for a leaf, a one-element slice holding the leaf itself.
func Items(s Sexp) []Sexp {
	if s == nil {
		return nil
	}
	if s.IsLeaf() {
		return []Sexp{s}
	}
	l, ok := s.(*List)
	if !ok {
		return nil
	}
	return l.Elements
}

// Find searches a list's immediate children for the first node whose head
// symbol matches key — a bare symbol child counts as matching its own
// text. Locating by head-symbol rather than positional index tolerates
// the KiCad version drift described in spec §9.
func Find(s Sexp, key string) (Sexp, bool) {
	for _, item := range Items(s) {
		if item == nil {
			continue
		}
		if sym, ok := item.(Symbol); ok {
			if string(sym) == key {
				return item, true
			}
			continue
		}
		if sym, ok := HeadSymbol(item); ok && string(sym) == key {
			return item, true
		}
	}
	return nil, false
}

// FindAll returns every immediate child list whose head symbol is key.
func FindAll(s Sexp, key string) []Sexp {
	var out []Sexp
	for _, item := range Items(s) {
		if item == nil || item.IsLeaf() {
			continue
		}
		if sym, ok := HeadSymbol(item); ok && string(sym) == key {
			out = append(out, item)
		}
	}
	return out
}

// Has reports whether a bare symbol (flag-style field, e.g. "locked")
// appears among a list's immediate children.
func Has(s Sexp, symbol string) bool {
	for _, item := range Items(s) {
		if sym, ok := item.(Symbol); ok && string(sym) == symbol {
			return true
		}
	}
	return false
}

// Rest returns a list's children excluding the head symbol.
func Rest(s Sexp) []Sexp {
	items := Items(s)
	if len(items) <= 1 {
		return nil
	}
	return items[1:]
}

// AtomAt returns the raw text of the item at index (0 is the head symbol).
func AtomAt(s Sexp, index int) (string, error) {
	items := Items(s)
	if index < 0 || index >= len(items) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(items))
	}
	sym, ok := items[index].(Symbol)
	if !ok {
		return "", fmt.Errorf("expected atom at index %d, got %T", index, items[index])
	}
	return string(sym), nil
}

// StringAt is AtomAt with surrounding quotes stripped, if present.
func StringAt(s Sexp, index int) (string, error) {
	raw, err := AtomAt(s, index)
	if err != nil {
		return "", err
	}
	return Symbol(raw).Unquoted(), nil
}

// FloatAt parses the atom at index as a float. Numeric parsing accepts an
// optional leading sign and decimal point per spec §4.2.
func FloatAt(s Sexp, index int) (float64, error) {
	raw, err := AtomAt(s, index)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse float %q: %w", raw, err)
	}
	return v, nil
}

// IntAt parses the atom at index as an int.
func IntAt(s Sexp, index int) (int, error) {
	raw, err := AtomAt(s, index)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse int %q: %w", raw, err)
	}
	return v, nil
}

// Name returns a node's leading symbol (the "tag" of the form, e.g.
// "pad" in "(pad ...)"), unquoted.
func Name(s Sexp) (string, error) {
	sym, ok := HeadSymbol(s)
	if !ok {
		return "", fmt.Errorf("expected a symbol at the head of %v", s)
	}
	return sym.Unquoted(), nil
}
