// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

// SymbolType is the declared type of a Symbol: UNKNOWN until a type-bearing
// property (bool/tristate/string/int/hex, or def_*) is parsed for it.
type SymbolType int

const (
	TypeUnknown SymbolType = iota
	TypeBool
	TypeTristate
	TypeString
	TypeInt
	TypeHex
)

func (t SymbolType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeTristate:
		return "tristate"
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeHex:
		return "hex"
	default:
		return "unknown"
	}
}

// ItemKind tags what a MenuNode owns.
type ItemKind int

const (
	ItemSymbol ItemKind = iota
	ItemChoice
	ItemMenu
	ItemComment
	// itemIf tags a transient 'if' grouping node produced by the parser.
	// The finalizer flattens these away; they never reach a client.
	itemIf
)

// Prompt is a (text, condition) pair. The condition defaults to the
// constant y and is never nil once a Kconfig has finished parsing.
type Prompt struct {
	Text string
	Cond *Expr
}

// Default is a `default value if cond` property.
type Default struct {
	Value *Expr
	Cond  *Expr
}

// SelectImply is a `select target if cond` or `imply target if cond`
// property.
type SelectImply struct {
	Target *Symbol
	Cond   *Expr
}

// Range is a `range lo hi if cond` property of an int/hex symbol.
type Range struct {
	Low, High *Expr
	Cond      *Expr
}
