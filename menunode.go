// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

// MenuNode is a node of the parse/menu tree: it owns an item (a Symbol, a
// Choice, a menu, or a comment), the effective dependency under which that
// item was reached, an optional prompt and help text, and links to its
// parent, next sibling and first child. MenuNodes -- not Symbols or
// Choices -- are what carry position: a Symbol can be defined in several
// places and therefore own several MenuNodes.
type MenuNode struct {
	Kind ItemKind
	Sym  *Symbol // set iff Kind == ItemSymbol
	Ch   *Choice // set iff Kind == ItemChoice

	// IsMenuconfig distinguishes `menuconfig FOO` (a config bundled with
	// a submenu) from a plain `config FOO`; both produce an ItemSymbol
	// node, the flag only affects how the symbol reprints.
	IsMenuconfig bool

	// MenuTitle/CommentText hold the literal text for Menu/Comment nodes;
	// Prompt is used for Symbol/Choice nodes instead, since those can
	// carry a condition.
	MenuTitle   string
	CommentText string

	Prompt *Prompt // nil if this definition has no prompt
	Help   string  // "" if no help text
	HasHelp bool

	// Dep is this node's own local if-stack condition as seen by the
	// parser, ANDed with any `depends on` of this definition, before
	// finalization folds in the parent chain. Visibility
	// and other properties instead use EffectiveDep, computed in
	// finalize.go.
	Dep          *Expr
	EffectiveDep *Expr

	// Visible is the `visible if` condition attached to `menu`
	// statements (nil outside of menus means unconditionally visible,
	// subject to EffectiveDep).
	Visible *Expr

	File string
	Line int

	Parent      *MenuNode
	Next        *MenuNode
	FirstChild  *MenuNode
}

// List returns the first child of node, named to mirror kconfiglib's
// MenuNode.list.
func (node *MenuNode) List() *MenuNode { return node.FirstChild }

func (node *MenuNode) isPromptless() bool {
	return node.Prompt == nil || node.Prompt.Text == ""
}
