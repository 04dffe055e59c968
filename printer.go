// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

import (
	"fmt"
	"strings"
)

// String reprints every definition of the symbol as Kconfig source,
// grounded on kconfiglib's Symbol.__str__/_sym_choice_str. A choice
// member's definition carries one line that does not round-trip through
// Parse: see the choice-printer caveat below.
func (s *Symbol) String() string {
	parts := make([]string, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		parts = append(parts, symbolNodeString(n))
	}
	return strings.Join(parts, "\n")
}

func symbolNodeString(n *MenuNode) string {
	var b strings.Builder
	kw := "config"
	if n.IsMenuconfig {
		kw = "menuconfig"
	}
	fmt.Fprintf(&b, "%s %s\n", kw, n.Sym.Name)
	if t := n.Sym.RawType(); t != TypeUnknown {
		fmt.Fprintf(&b, "\t%s\n", t)
	}
	if n.Prompt != nil {
		cond := n.Prompt.Cond
		if n.Sym.Choice != nil {
			// Choice-member printer caveat: a member's visibility is also
			// gated by its enclosing choice, which has no direct
			// `depends on`-expressible form since a choice isn't itself a
			// Symbol. The prompt condition is printed with an extra
			// `<choice ...>` operand (an ExprChoice leaf) so the dependency
			// is visible to a reader, but that operand is not valid Kconfig
			// syntax and Parse cannot read this line back; everything else
			// in the printed output parses. Left as-is (see DESIGN.md).
			cond = n.Sym.kconf.MakeAnd(cond, exprChoice(n.Sym.Choice))
		}
		fmt.Fprintf(&b, "\tprompt %q%s\n", n.Prompt.Text, ifSuffix(cond))
	}
	for _, d := range n.Sym.Defaults {
		fmt.Fprintf(&b, "\tdefault %s%s\n", ExprString(d.Value), ifSuffix(d.Cond))
	}
	for _, sel := range n.Sym.Selects {
		fmt.Fprintf(&b, "\tselect %s%s\n", sel.Target.Name, ifSuffix(sel.Cond))
	}
	for _, imp := range n.Sym.Implies {
		fmt.Fprintf(&b, "\timply %s%s\n", imp.Target.Name, ifSuffix(imp.Cond))
	}
	for _, r := range n.Sym.Ranges {
		fmt.Fprintf(&b, "\trange %s %s%s\n", ExprString(r.Low), ExprString(r.High), ifSuffix(r.Cond))
	}
	if n.Sym.EnvVar != "" {
		fmt.Fprintf(&b, "\toption env=%q\n", n.Sym.EnvVar)
	}
	if n.Sym.IsDefconfigList {
		b.WriteString("\toption defconfig_list\n")
	}
	if n.Sym.IsAllNoConfigY {
		b.WriteString("\toption allnoconfig_y\n")
	}
	if dep := ExprString(n.Dep); dep != "y" {
		fmt.Fprintf(&b, "\tdepends on %s\n", dep)
	}
	if n.HasHelp {
		fmt.Fprintf(&b, "\thelp\n%s\n", indentHelp(n.Help))
	}
	return b.String()
}

func ifSuffix(cond *Expr) string {
	if s := ExprString(cond); s != "y" {
		return " if " + s
	}
	return ""
}

func indentHelp(help string) string {
	lines := strings.Split(help, "\n")
	for i, l := range lines {
		if l == "" {
			continue
		}
		lines[i] = "\t  " + l
	}
	return strings.Join(lines, "\n")
}

// String reprints the choice block (without its members, which print
// themselves via Symbol.String).
func (c *Choice) String() string {
	var b strings.Builder
	b.WriteString("choice")
	if c.Name != "" {
		fmt.Fprintf(&b, " %s", c.Name)
	}
	b.WriteString("\n")
	if c.typ != TypeUnknown {
		fmt.Fprintf(&b, "\t%s\n", c.typ)
	}
	for _, n := range c.Nodes {
		if n.Prompt != nil {
			fmt.Fprintf(&b, "\tprompt %q%s\n", n.Prompt.Text, ifSuffix(n.Prompt.Cond))
		}
	}
	if c.IsOptional {
		b.WriteString("\toptional\n")
	}
	for _, d := range c.Defaults {
		fmt.Fprintf(&b, "\tdefault %s%s\n", d.Sym.Name, ifSuffix(d.Cond))
	}
	b.WriteString("endchoice")
	return b.String()
}

// String reprints a Menu or Comment node; Symbol/Choice nodes defer to
// Symbol.String/Choice.String.
func (n *MenuNode) String() string {
	switch n.Kind {
	case ItemSymbol:
		return symbolNodeString(n)
	case ItemChoice:
		return n.Ch.String()
	case ItemMenu:
		var b strings.Builder
		fmt.Fprintf(&b, "menu %q\n", n.MenuTitle)
		if dep := ExprString(n.Dep); dep != "y" {
			fmt.Fprintf(&b, "\tdepends on %s\n", dep)
		}
		if n.Visible != nil {
			fmt.Fprintf(&b, "\tvisible if %s\n", ExprString(n.Visible))
		}
		b.WriteString("endmenu")
		return b.String()
	case ItemComment:
		var b strings.Builder
		fmt.Fprintf(&b, "comment %q\n", n.CommentText)
		if dep := ExprString(n.Dep); dep != "y" {
			fmt.Fprintf(&b, "\tdepends on %s\n", dep)
		}
		return b.String()
	default:
		return ""
	}
}
