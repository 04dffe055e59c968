// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

// Choice is a tristate-typed grouping of Symbols sharing an exclusive-
// selection discipline: in mode y exactly one member is selected; in mode
// m members may individually be n or m but never y; in mode n (only
// possible for an optional choice) every member is n.
type Choice struct {
	kconf *Kconfig

	Name string // "" for an anonymous `choice` block

	typ SymbolType // BOOL or TRISTATE

	Nodes []*MenuNode
	Syms  []*Symbol

	Defaults []struct {
		Sym  *Symbol
		Cond *Expr
	}

	IsOptional bool

	userValue     *Tristate
	userSelection *Symbol

	dirty        bool
	cachedTri    Tristate
	cachedVis    Tristate
	cachedAssign []Tristate
	cachedSelSet bool
	cachedSel    *Symbol

	directDependents map[invalidatable]bool
}

func newChoice(kc *Kconfig) *Choice {
	return &Choice{
		kconf:            kc,
		directDependents: make(map[invalidatable]bool),
		dirty:            true,
	}
}

func (c *Choice) nameOrAnon() string {
	if c.Name == "" {
		return "choice"
	}
	return c.Name
}

// Type returns BOOL if no `option modules` symbol is in effect or it
// evaluates to n, mirroring Symbol.Type()'s cap.
func (c *Choice) Type() SymbolType {
	if c.typ == TypeTristate {
		if c.kconf.modulesSymbol() == nil || c.kconf.modulesSymbol().TriValue() == No {
			return TypeBool
		}
	}
	return c.typ
}

func (c *Choice) invalidate() {
	c.dirty = true
	c.cachedAssign = nil
	c.cachedSelSet = false
}

func (c *Choice) dependents() map[invalidatable]bool { return c.directDependents }

// UserValue returns the user-assigned mode, if any.
func (c *Choice) UserValue() (Tristate, bool) {
	if c.userValue == nil {
		return No, false
	}
	return *c.userValue, true
}

// UserSelection returns the member the user most recently selected by
// name, if any (it may not be the active Selection if it's no longer
// visible).
func (c *Choice) UserSelection() *Symbol { return c.userSelection }

// SetValue assigns the choice's mode (y/m/n), truncated to its
// visibility the same way Symbol.SetValue is. "n" is accepted even for a
// non-optional choice (and then ignored by TriValue, per kconfiglib).
func (c *Choice) SetValue(value string) bool {
	valid := (c.typ == TypeBool && (value == "n" || value == "y")) ||
		(c.typ == TypeTristate && (value == "n" || value == "m" || value == "y"))
	if !valid {
		c.kconf.warnf(WarnInvalidAssignment, "", 0,
			"the value %q is invalid for the choice, which has type %s; assignment ignored", value, c.typ)
		return false
	}
	tri, _ := tristateFromString(value)
	c.userValue = &tri
	if len(c.Syms) > 0 {
		recInvalidate(c.Syms[0])
	}
	return true
}

// UnsetValue clears the user-chosen mode and selection.
func (c *Choice) UnsetValue() {
	c.userValue = nil
	c.userSelection = nil
	if len(c.Syms) > 0 {
		recInvalidate(c.Syms[0])
	}
}
