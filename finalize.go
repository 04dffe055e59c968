// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

// finalize turns the parser's raw, if-stack-scoped tree into the tree
// TopNode exposes to callers (component D): it propagates effective
// dependencies top-down, flattens away the parser's transient `if` nodes,
// discovers implicit submenus, derives each Symbol's DirectDep from its
// definitions, and links choice members to their Choice. Grounded on
// kconfiglib's Kconfig._parse_block/_finalize_tree/_check_auto_menu/
// _remove_if/_finalize_choice, reframed as a single post-parse walk in the
// style of kconfiglib's Kconfig.walk.
func finalize(kc *Kconfig) {
	kc.TopNode.EffectiveDep = exprSymbol(kc.symYes)
	propagateEffectiveDep(kc, kc.TopNode)
	flattenIfNodes(kc.TopNode)
	buildAutoSubmenus(kc, kc.TopNode)
	foldSymbolDirectDeps(kc)
	foldChoiceDirectDeps(kc)
	linkChoiceMembers(kc)
	kc.depsBuilt = true
}

// propagateEffectiveDep computes, for every node, EffectiveDep = parent's
// EffectiveDep AND the node's own (if-stack plus `depends on`) Dep, then folds that into
// the node's prompt condition and `visible if` refinement.
func propagateEffectiveDep(kc *Kconfig, parent *MenuNode) {
	for n := parent.FirstChild; n != nil; n = n.Next {
		n.EffectiveDep = kc.MakeAnd(parent.EffectiveDep, n.Dep)
		if n.Visible != nil {
			n.EffectiveDep = kc.MakeAnd(n.EffectiveDep, n.Visible)
		}
		if n.Prompt != nil {
			n.Prompt.Cond = kc.MakeAnd(n.Prompt.Cond, n.EffectiveDep)
		}
		propagateEffectiveDep(kc, n)
	}
}

// flattenIfNodes removes the transient itemIf grouping nodes the parser
// emits for `if`/`endif` blocks, splicing their children into the
// surrounding sibling chain at the same position. By the time this runs,
// an if-node's condition has already been folded into every descendant's
// EffectiveDep, so the node itself carries no further information.
func flattenIfNodes(node *MenuNode) {
	var first, last *MenuNode
	link := func(n *MenuNode) {
		n.Parent = node
		if first == nil {
			first = n
		} else {
			last.Next = n
		}
		last = n
	}
	for c := node.FirstChild; c != nil; {
		next := c.Next
		c.Next = nil
		if c.Kind == itemIf {
			flattenIfNodes(c)
			for g := c.FirstChild; g != nil; {
				gnext := g.Next
				g.Next = nil
				link(g)
				g = gnext
			}
		} else {
			flattenIfNodes(c)
			link(c)
		}
		c = next
	}
	node.FirstChild = first
}

// buildAutoSubmenus reparents a config immediately followed by siblings
// that `depends on` it (in the restricted sense ExprDependsOn checks) under
// that config, forming an implicit submenu -- the behavior that lets a
// driver's sub-options appear indented beneath it without an explicit
// `menu`. Grounded on kconfiglib's _check_auto_menu via original_source's
// Kconfiglib.py MenuNode construction pass.
func buildAutoSubmenus(kc *Kconfig, parent *MenuNode) {
	var newFirst, newLast *MenuNode
	link := func(n *MenuNode) {
		n.Parent = parent
		n.Next = nil
		if newFirst == nil {
			newFirst = n
		} else {
			newLast.Next = n
		}
		newLast = n
	}

	n := parent.FirstChild
	for n != nil {
		next := n.Next
		if n.Kind == ItemSymbol && n.Sym != nil {
			var childFirst, childLast *MenuNode
			linkChild := func(c *MenuNode) {
				c.Parent = n
				c.Next = nil
				if childFirst == nil {
					childFirst = c
				} else {
					childLast.Next = c
				}
				childLast = c
			}
			for next != nil && next.Kind != ItemChoice && ExprDependsOn(next.Dep, n.Sym) {
				adopted := next
				next = next.Next
				linkChild(adopted)
			}
			if childFirst != nil {
				if n.FirstChild == nil {
					n.FirstChild = childFirst
				} else {
					tail := n.FirstChild
					for tail.Next != nil {
						tail = tail.Next
					}
					tail.Next = childFirst
				}
				buildAutoSubmenus(kc, n)
			}
		}
		link(n)
		n = next
	}
	parent.FirstChild = newFirst
	for c := parent.FirstChild; c != nil; c = c.Next {
		if c.Kind != ItemSymbol || c.FirstChild == nil {
			buildAutoSubmenus(kc, c)
		}
	}
}

// foldSymbolDirectDeps sets each defined Symbol's DirectDep to the OR of
// every one of its MenuNodes' EffectiveDep, and folds that same condition
// into its defaults/selects/implies/ranges. A symbol defined in exactly one
// place (the overwhelmingly common case) gets this exactly right; a symbol
// extended from several locations with different enclosing dependencies
// gets the OR of all of them applied uniformly rather than kept separate
// per definition (see DESIGN.md).
func foldSymbolDirectDeps(kc *Kconfig) {
	for _, sym := range kc.DefinedSyms {
		direct := exprSymbol(kc.symNo)
		for _, n := range sym.Nodes {
			direct = kc.MakeOr(direct, n.EffectiveDep)
		}
		sym.DirectDep = direct
		for i := range sym.Defaults {
			sym.Defaults[i].Cond = kc.MakeAnd(sym.Defaults[i].Cond, direct)
		}
		for i := range sym.Selects {
			sym.Selects[i].Cond = kc.MakeAnd(sym.Selects[i].Cond, direct)
		}
		for i := range sym.Implies {
			sym.Implies[i].Cond = kc.MakeAnd(sym.Implies[i].Cond, direct)
		}
		for i := range sym.Ranges {
			sym.Ranges[i].Cond = kc.MakeAnd(sym.Ranges[i].Cond, direct)
		}
	}
}

func foldChoiceDirectDeps(kc *Kconfig) {
	for _, ch := range kc.choices {
		direct := exprSymbol(kc.symNo)
		for _, n := range ch.Nodes {
			direct = kc.MakeOr(direct, n.EffectiveDep)
		}
		for i := range ch.Defaults {
			ch.Defaults[i].Cond = kc.MakeAnd(ch.Defaults[i].Cond, direct)
		}
	}
}

// linkChoiceMembers collects each Choice's member Symbols from the configs
// nested directly inside its `choice ... endchoice` block, assigns their
// Choice back-reference, and has members with no explicit type inherit the
// choice's type.
func linkChoiceMembers(kc *Kconfig) {
	for _, ch := range kc.choices {
		for _, node := range ch.Nodes {
			for c := node.FirstChild; c != nil; c = c.Next {
				if c.Kind != ItemSymbol {
					continue
				}
				sym := c.Sym
				if sym.typ == TypeUnknown {
					sym.typ = ch.typ
				}
				sym.Choice = ch
				dup := false
				for _, s := range ch.Syms {
					if s == sym {
						dup = true
						break
					}
				}
				if !dup {
					ch.Syms = append(ch.Syms, sym)
				}
			}
		}
	}
}
