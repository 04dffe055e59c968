// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Parse reads the Kconfig file at path and every file it `source`s,
// builds the menu-node tree, and finalizes it (menu finalizer, §4.D).
// The returned *Kconfig is ready for SetValue/LoadConfig/WriteConfig use.
func Parse(path string, opts ...Option) (*Kconfig, error) {
	kc := newKconfigInstance(opts...)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := parseInto(kc, data, path); err != nil {
		return nil, err
	}
	return kc, nil
}

// ParseData is like Parse but reads the top-level Kconfig content from an
// in-memory buffer instead of a file (sourced files are still read from
// disk relative to Srctree/baseDir).
func ParseData(data []byte, path string, opts ...Option) (*Kconfig, error) {
	kc := newKconfigInstance(opts...)
	if err := parseInto(kc, data, path); err != nil {
		return nil, err
	}
	return kc, nil
}

func parseInto(kc *Kconfig, data []byte, path string) error {
	p := &parser{
		kc:      kc,
		lx:      newLexer(data, path),
		file:    path,
		baseDir: filepath.Dir(path),
	}
	kc.TopNode = &MenuNode{Kind: ItemMenu, MenuTitle: ""}
	children, err := p.parseBlock(kc.TopNode, "")
	if err != nil {
		return err
	}
	kc.TopNode.FirstChild = children
	kc.TopNode.MenuTitle = kc.MainmenuText
	finalize(kc)
	buildDependencyIndex(kc)
	return nil
}

// parser is the recursive-descent front end (component C): it drives a
// lexer, keeps a stack of active `if` conditions, and emits a flat,
// sibling-linked MenuNode chain at each nesting level.
type parser struct {
	kc      *Kconfig
	lx      *lexer
	file    string
	baseDir string // directory `rsource`/`gsource` resolve against

	ifStack []*Expr
}

func (p *parser) syntaxErrorf(format string, args ...interface{}) error {
	return &SyntaxError{File: p.file, Line: p.lx.line, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) currentIfCond() *Expr {
	cond := exprSymbol(p.kc.symYes)
	for _, c := range p.ifStack {
		cond = p.kc.MakeAnd(cond, c)
	}
	return cond
}

// ensureLine advances the lexer to the next line carrying real content,
// skipping blank lines and whole-line comments. Returns false at EOF.
func (p *parser) ensureLine() bool {
	for {
		if !p.lx.nextLine() {
			return false
		}
		if p.lx.err != nil {
			return false
		}
		if p.lx.eol() {
			continue
		}
		if p.lx.peek() == '#' {
			p.lx.consumeLine()
			continue
		}
		return true
	}
}

func (p *parser) newItemNode(kind ItemKind) *MenuNode {
	return &MenuNode{Kind: kind, File: p.file, Line: p.lx.line}
}

// parseBlock parses a nested level (the body of a menu/choice/if block, or
// the whole file for the top-level call) and returns its first child,
// already sibling-linked and parented to parent.
func (p *parser) parseBlock(parent *MenuNode, end string) (*MenuNode, error) {
	var first, last *MenuNode
	link := func(n *MenuNode) {
		n.Parent = parent
		if first == nil {
			first = n
		} else {
			last.Next = n
		}
		last = n
	}
	if err := p.parseStatements(parent, end, link); err != nil {
		return nil, err
	}
	return first, nil
}

// parseStatements is parseBlock's core loop, factored out so that
// `source`d files can feed additional siblings into an already-open link
// closure instead of producing a disjoint chain that would need splicing.
func (p *parser) parseStatements(parent *MenuNode, end string, link func(*MenuNode)) error {
	var cur *MenuNode // most recently opened item still accepting properties
	if end == "endchoice" || end == "endmenu" {
		// A choice's or menu's own properties follow its opening line.
		cur = parent
	}

	for {
		if !p.ensureLine() {
			if p.lx.err != nil {
				return p.lx.err
			}
			if end != "" {
				return p.syntaxErrorf("missing %q", end)
			}
			return nil
		}

		word := p.lx.ident()
		if p.lx.err != nil {
			return p.lx.err
		}
		if word == end {
			return nil
		}

		switch word {
		case "config", "menuconfig":
			name := p.lx.ident()
			if p.lx.err != nil {
				return p.lx.err
			}
			node := p.newItemNode(ItemSymbol)
			node.IsMenuconfig = word == "menuconfig"
			node.Dep = p.currentIfCond()
			sym := p.kc.lookupSymbol(name)
			sym.Nodes = append(sym.Nodes, node)
			if len(sym.Nodes) == 1 {
				p.kc.DefinedSyms = append(p.kc.DefinedSyms, sym)
			}
			node.Sym = sym
			link(node)
			cur = node

		case "choice":
			node := p.newItemNode(ItemChoice)
			node.Dep = p.currentIfCond()
			ch := newChoice(p.kc)
			ch.Nodes = append(ch.Nodes, node)
			p.kc.choices = append(p.kc.choices, ch)
			node.Ch = ch
			link(node)
			children, err := p.parseBlock(node, "endchoice")
			if err != nil {
				return err
			}
			node.FirstChild = children
			cur = nil

		case "menu":
			title, err := p.requireQuotedString()
			if err != nil {
				return err
			}
			node := p.newItemNode(ItemMenu)
			node.MenuTitle = title
			node.Dep = p.currentIfCond()
			link(node)
			cur = node
			children, err := p.parseBlock(node, "endmenu")
			if err != nil {
				return err
			}
			node.FirstChild = children
			cur = nil

		case "comment":
			text, err := p.requireQuotedString()
			if err != nil {
				return err
			}
			node := p.newItemNode(ItemComment)
			node.CommentText = text
			node.Dep = p.currentIfCond()
			link(node)
			cur = nil

		case "if":
			cond, err := p.parseExpr()
			if err != nil {
				return err
			}
			p.ifStack = append(p.ifStack, cond)
			node := p.newItemNode(itemIf)
			node.Dep = p.currentIfCond()
			link(node)
			children, err := p.parseBlock(node, "endif")
			p.ifStack = p.ifStack[:len(p.ifStack)-1]
			if err != nil {
				return err
			}
			node.FirstChild = children
			cur = nil

		case "mainmenu":
			title, err := p.requireQuotedString()
			if err != nil {
				return err
			}
			p.kc.MainmenuText = title

		case "source", "rsource", "gsource":
			if err := p.parseSource(word, parent, link); err != nil {
				return err
			}
			cur = nil

		case "endif", "endmenu", "endchoice":
			return p.syntaxErrorf("unexpected %q", word)

		default:
			if cur == nil {
				return p.syntaxErrorf("property %q outside of config/choice/menu", word)
			}
			if err := p.applyProperty(cur, word); err != nil {
				return err
			}
		}
	}
}

func (p *parser) requireQuotedString() (string, error) {
	s, ok := p.lx.tryQuotedString(p.kc.env)
	if !ok {
		return "", p.syntaxErrorf("expected a quoted string")
	}
	return s, nil
}

// parseSource resolves and parses a `source`/`rsource`/`gsource` target,
// splicing the resulting nodes into the caller's sibling chain via link
// (see parseStatements/parseBlock).
func (p *parser) parseSource(word string, parent *MenuNode, link func(*MenuNode)) error {
	var raw string
	if s, ok := p.lx.tryQuotedString(p.kc.env); ok {
		raw = s
	} else {
		raw = strings.TrimSpace(p.lx.consumeLine())
	}

	switch word {
	case "source":
		return p.includeFile(filepath.Join(p.kc.Srctree, raw), parent, link)
	case "rsource":
		return p.includeFile(filepath.Join(p.baseDir, raw), parent, link)
	case "gsource":
		matches, _ := filepath.Glob(filepath.Join(p.baseDir, raw))
		sort.Strings(matches)
		for _, m := range matches {
			if err := p.includeFile(m, parent, link); err != nil {
				return err
			}
		}
		return nil
	default:
		return internalErrorf("unreachable source keyword %q", word)
	}
}

func (p *parser) includeFile(path string, parent *MenuNode, link func(*MenuNode)) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return p.syntaxErrorf("%v", err)
	}
	savedLx, savedFile, savedDir := p.lx, p.file, p.baseDir
	p.lx = newLexer(data, path)
	p.file = path
	p.baseDir = filepath.Dir(path)

	err = p.parseStatements(parent, "", link)

	p.lx, p.file, p.baseDir = savedLx, savedFile, savedDir
	return err
}

// applyProperty parses one property line and attaches it to node.
func (p *parser) applyProperty(node *MenuNode, word string) error {
	switch word {
	case "bool", "tristate", "string", "int", "hex":
		if err := p.setType(node, word); err != nil {
			return err
		}
		return p.tryParsePrompt(node)

	case "def_bool", "def_tristate", "def_string", "def_int", "def_hex":
		if err := p.setType(node, strings.TrimPrefix(word, "def_")); err != nil {
			return err
		}
		return p.parseDefault(node)

	case "prompt":
		return p.tryParsePrompt(node)

	case "depends":
		p.lx.mustConsume("on")
		cond, err := p.parseExpr()
		if err != nil {
			return err
		}
		node.Dep = p.kc.MakeAnd(node.Dep, cond)
		return nil

	case "visible":
		p.lx.mustConsume("if")
		cond, err := p.parseExpr()
		if err != nil {
			return err
		}
		node.Visible = p.kc.MakeAnd(node.Visible, cond)
		return nil

	case "select", "imply":
		return p.parseSelectImply(node, word == "select")

	case "range":
		return p.parseRange(node)

	case "option":
		return p.parseOption(node)

	case "optional":
		if node.Kind != ItemChoice {
			p.kc.warnf(WarnTypeMismatch, p.file, p.lx.line, "'optional' is only valid for choices")
			return nil
		}
		node.Ch.IsOptional = true
		return nil

	case "default":
		return p.parseDefault(node)

	case "help", "---help---":
		return p.parseHelp(node)

	default:
		return p.syntaxErrorf("unknown property %q", word)
	}
}

func (p *parser) setType(node *MenuNode, word string) error {
	var want SymbolType
	switch word {
	case "bool":
		want = TypeBool
	case "tristate":
		want = TypeTristate
	case "string":
		want = TypeString
	case "int":
		want = TypeInt
	case "hex":
		want = TypeHex
	}
	switch node.Kind {
	case ItemSymbol:
		if node.Sym.typ != TypeUnknown && node.Sym.typ != want {
			p.kc.warnf(WarnTypeRedeclared, p.file, p.lx.line,
				"%s already has type %s, ignoring redeclaration as %s", node.Sym.Name, node.Sym.typ, want)
			return nil
		}
		node.Sym.typ = want
	case ItemChoice:
		if node.Ch.typ != TypeUnknown && node.Ch.typ != want {
			p.kc.warnf(WarnTypeRedeclared, p.file, p.lx.line, "choice already has type %s", node.Ch.typ)
			return nil
		}
		if want != TypeBool && want != TypeTristate {
			return p.syntaxErrorf("choices can only be bool or tristate")
		}
		node.Ch.typ = want
	default:
		return p.syntaxErrorf("type declaration outside of config/choice")
	}
	return nil
}

func (p *parser) tryParsePrompt(node *MenuNode) error {
	text, ok := p.lx.tryQuotedString(p.kc.env)
	if !ok {
		return nil
	}
	cond, err := p.tryParseIfCond()
	if err != nil {
		return err
	}
	node.Prompt = &Prompt{Text: text, Cond: p.kc.MakeAnd(cond, p.currentIfCond())}
	return nil
}

func (p *parser) tryParseIfCond() (*Expr, error) {
	if p.lx.tryConsume("if") {
		return p.parseExpr()
	}
	return exprSymbol(p.kc.symYes), nil
}

func (p *parser) parseSelectImply(node *MenuNode, isSelect bool) error {
	if node.Kind != ItemSymbol {
		return p.syntaxErrorf("select/imply is only valid for configs")
	}
	name := p.lx.ident()
	if p.lx.err != nil {
		return p.lx.err
	}
	target := p.kc.lookupSymbol(name)
	cond, err := p.tryParseIfCond()
	if err != nil {
		return err
	}
	full := p.kc.MakeAnd(cond, p.currentIfCond())
	fullDep := p.kc.MakeAnd(full, node.Dep)
	entry := SelectImply{Target: target, Cond: full}
	if isSelect {
		node.Sym.Selects = append(node.Sym.Selects, entry)
		target.RevDep = p.kc.MakeOr(orIdentity(target.RevDep, p.kc), p.kc.MakeAnd(exprSymbol(node.Sym), fullDep))
	} else {
		node.Sym.Implies = append(node.Sym.Implies, entry)
		target.WeakRevDep = p.kc.MakeOr(orIdentity(target.WeakRevDep, p.kc), p.kc.MakeAnd(exprSymbol(node.Sym), fullDep))
	}
	return nil
}

// orIdentity substitutes the OR identity (the constant n) for a RevDep/
// WeakRevDep accumulator that hasn't been set yet. Plugging in a bare nil
// here instead would be wrong: ExprValue(nil) means "vacuously true",
// the right reading for an absent if-condition, but the wrong one for
// "no select/imply has targeted this symbol yet".
func orIdentity(e *Expr, kc *Kconfig) *Expr {
	if e == nil {
		return exprSymbol(kc.symNo)
	}
	return e
}

func (p *parser) parseRange(node *MenuNode) error {
	if node.Kind != ItemSymbol {
		return p.syntaxErrorf("range is only valid for configs")
	}
	low, err := p.parseSymbolRef()
	if err != nil {
		return err
	}
	high, err := p.parseSymbolRef()
	if err != nil {
		return err
	}
	cond, err := p.tryParseIfCond()
	if err != nil {
		return err
	}
	full := p.kc.MakeAnd(cond, p.currentIfCond())
	node.Sym.Ranges = append(node.Sym.Ranges, Range{Low: low, High: high, Cond: full})
	return nil
}

func (p *parser) parseOption(node *MenuNode) error {
	word := p.lx.ident()
	if p.lx.err != nil {
		return p.lx.err
	}
	switch word {
	case "env":
		p.lx.mustConsume("=")
		name, err := p.requireQuotedString()
		if err != nil {
			return err
		}
		if node.Kind != ItemSymbol {
			return p.syntaxErrorf("'option env' is only valid for configs")
		}
		node.Sym.EnvVar = name
	case "defconfig_list":
		if node.Kind != ItemSymbol {
			return p.syntaxErrorf("'option defconfig_list' is only valid for configs")
		}
		node.Sym.IsDefconfigList = true
		p.kc.defconfigListSym = node.Sym
	case "modules":
		if node.Kind != ItemSymbol {
			return p.syntaxErrorf("'option modules' is only valid for configs")
		}
		p.kc.modulesSym = node.Sym
		if node.Sym.Name != "MODULES" {
			p.kc.warnf(WarnTypeMismatch, p.file, p.lx.line,
				"'option modules' used on symbol %s, not MODULES", node.Sym.Name)
		}
	case "allnoconfig_y":
		if node.Kind != ItemSymbol {
			return p.syntaxErrorf("'option allnoconfig_y' is only valid for configs")
		}
		node.Sym.IsAllNoConfigY = true
	default:
		p.lx.consumeLine()
	}
	return nil
}

func (p *parser) parseDefault(node *MenuNode) error {
	val, err := p.parseExpr()
	if err != nil {
		return err
	}
	cond, err := p.tryParseIfCond()
	if err != nil {
		return err
	}
	full := p.kc.MakeAnd(cond, p.currentIfCond())
	switch node.Kind {
	case ItemSymbol:
		node.Sym.Defaults = append(node.Sym.Defaults, Default{Value: val, Cond: full})
	case ItemChoice:
		if val.Kind != ExprSymbol {
			return p.syntaxErrorf("choice defaults must name a single symbol")
		}
		node.Ch.Defaults = append(node.Ch.Defaults, struct {
			Sym  *Symbol
			Cond *Expr
		}{Sym: val.Sym, Cond: full})
	default:
		return p.syntaxErrorf("default is only valid for configs/choices")
	}
	return nil
}

// parseHelp captures a help-text block: the first non-blank line sets the
// indent column, subsequent lines are kept verbatim with that indent
// stripped until a less-indented line or EOF.
func (p *parser) parseHelp(node *MenuNode) error {
	for {
		if !p.lx.nextLine() {
			node.HasHelp = true
			return p.lx.err
		}
		if strings.TrimSpace(p.lx.current) != "" {
			break
		}
	}
	indentCol := indentOf(p.lx.current)
	var lines []string
	pendingBlank := 0
	first := true
	for {
		if !first {
			if !p.lx.nextLine() {
				break
			}
		}
		first = false
		line := p.lx.current
		if strings.TrimSpace(line) == "" {
			pendingBlank++
			continue
		}
		if indentOf(line) < indentCol {
			// This line starts the next property/statement; hand it
			// back to the lexer so the normal grammar reads it next.
			p.pushBackLine(line)
			break
		}
		for ; pendingBlank > 0; pendingBlank-- {
			lines = append(lines, "")
		}
		lines = append(lines, stripIndent(line, indentCol))
		p.lx.consumeLine()
	}
	node.Help = strings.Join(lines, "\n")
	node.HasHelp = true
	return nil
}

// pushBackLine arranges for line (already read by nextLine) to be
// re-parsed as an ordinary statement: it is put back in front of the
// lexer's remaining input and the current line is marked consumed, so the
// next ensureLine reads it again under its original line number.
func (p *parser) pushBackLine(line string) {
	p.lx.data = append([]byte(line+"\n"), p.lx.data...)
	p.lx.line--
	p.lx.consumeLine()
}

func indentOf(s string) int {
	col := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			col++
		case '\t':
			col = (col + 8) &^ 7
		default:
			return col
		}
	}
	return col
}

func stripIndent(line string, col int) string {
	cur := 0
	for i := 0; i < len(line); i++ {
		if cur >= col {
			return line[i:]
		}
		switch line[i] {
		case ' ':
			cur++
		case '\t':
			cur = (cur + 8) &^ 7
		default:
			return line[i:]
		}
	}
	return ""
}

// --- expressions ---

func (p *parser) parseExpr() (*Expr, error) {
	left, err := p.parseAndExpr()
	if err != nil {
		return nil, err
	}
	for p.lx.tryConsume("||") {
		right, err := p.parseAndExpr()
		if err != nil {
			return nil, err
		}
		left = p.kc.MakeOr(left, right)
	}
	return left, nil
}

func (p *parser) parseAndExpr() (*Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.lx.tryConsume("&&") {
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = p.kc.MakeAnd(left, right)
	}
	return left, nil
}

func (p *parser) parseFactor() (*Expr, error) {
	if p.lx.tryConsume("!") {
		x, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return exprNot(x), nil
	}
	if p.lx.tryConsume("(") {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.lx.tryConsume(")") {
			return nil, p.syntaxErrorf("expected ')'")
		}
		return e, nil
	}
	left, err := p.parseSymbolRef()
	if err != nil {
		return nil, err
	}
	return p.maybeCompare(left)
}

func (p *parser) maybeCompare(left *Expr) (*Expr, error) {
	var op CmpOp
	switch {
	case p.lx.tryConsume("!="):
		op = CmpUnequal
	case p.lx.tryConsume("<="):
		op = CmpLessEqual
	case p.lx.tryConsume(">="):
		op = CmpGreaterEqual
	case p.lx.tryConsume("="):
		op = CmpEqual
	case p.lx.tryConsume("<"):
		op = CmpLess
	case p.lx.tryConsume(">"):
		op = CmpGreater
	default:
		return left, nil
	}
	right, err := p.parseSymbolRef()
	if err != nil {
		return nil, err
	}
	return exprCmp(op, left, right), nil
}

func (p *parser) parseSymbolRef() (*Expr, error) {
	if s, ok := p.lx.tryQuotedString(p.kc.env); ok {
		return exprSymbol(p.kc.internConstString(s)), nil
	}
	name := p.lx.ident()
	if p.lx.err != nil {
		return nil, p.lx.err
	}
	switch name {
	case "y":
		return exprSymbol(p.kc.symYes), nil
	case "m":
		return exprSymbol(p.kc.symMod), nil
	case "n":
		return exprSymbol(p.kc.symNo), nil
	default:
		// Unquoted numeric literals (`default 20`, `range 0 0x1f`) are
		// constants, not references to undefined symbols.
		if isBaseN(name, 10) || (len(name) > 2 && (name[:2] == "0x" || name[:2] == "0X") && isBaseN(name, 16)) {
			return exprSymbol(p.kc.internConstString(name)), nil
		}
		return exprSymbol(p.kc.lookupSymbol(name)), nil
	}
}

// parseExprTokens evaluates a pre-tokenized expression (used by
// EvalString, which has no surrounding if-stack/menu grammar to drive).
func (p *parser) parseExprTokens(toks []string, file string, line int) (*Expr, error) {
	tp := &tokenParser{kc: p.kc, toks: toks, file: file, line: line}
	e, err := tp.parseExpr()
	if err != nil {
		return nil, err
	}
	if tp.pos != len(tp.toks) {
		return nil, &SyntaxError{File: file, Line: line, Msg: "trailing tokens in expression"}
	}
	return e, nil
}

// tokenParser re-implements the same grammar as parser's expression
// methods over an already-split token slice, for EvalString.
type tokenParser struct {
	kc   *Kconfig
	toks []string
	pos  int
	file string
	line int
}

func (tp *tokenParser) peek() string {
	if tp.pos >= len(tp.toks) {
		return ""
	}
	return tp.toks[tp.pos]
}

func (tp *tokenParser) tryConsume(s string) bool {
	if tp.peek() != s {
		return false
	}
	tp.pos++
	return true
}

func (tp *tokenParser) parseExpr() (*Expr, error) {
	left, err := tp.parseAndExpr()
	if err != nil {
		return nil, err
	}
	for tp.tryConsume("||") {
		right, err := tp.parseAndExpr()
		if err != nil {
			return nil, err
		}
		left = tp.kc.MakeOr(left, right)
	}
	return left, nil
}

func (tp *tokenParser) parseAndExpr() (*Expr, error) {
	left, err := tp.parseFactor()
	if err != nil {
		return nil, err
	}
	for tp.tryConsume("&&") {
		right, err := tp.parseFactor()
		if err != nil {
			return nil, err
		}
		left = tp.kc.MakeAnd(left, right)
	}
	return left, nil
}

func (tp *tokenParser) parseFactor() (*Expr, error) {
	if tp.tryConsume("!") {
		x, err := tp.parseFactor()
		if err != nil {
			return nil, err
		}
		return exprNot(x), nil
	}
	if tp.tryConsume("(") {
		e, err := tp.parseExpr()
		if err != nil {
			return nil, err
		}
		if !tp.tryConsume(")") {
			return nil, &SyntaxError{File: tp.file, Line: tp.line, Msg: "expected ')'"}
		}
		return e, nil
	}
	left, err := tp.parseLeaf()
	if err != nil {
		return nil, err
	}
	var op CmpOp
	switch {
	case tp.tryConsume("!="):
		op = CmpUnequal
	case tp.tryConsume("<="):
		op = CmpLessEqual
	case tp.tryConsume(">="):
		op = CmpGreaterEqual
	case tp.tryConsume("="):
		op = CmpEqual
	case tp.tryConsume("<"):
		op = CmpLess
	case tp.tryConsume(">"):
		op = CmpGreater
	default:
		return left, nil
	}
	right, err := tp.parseLeaf()
	if err != nil {
		return nil, err
	}
	return exprCmp(op, left, right), nil
}

func (tp *tokenParser) parseLeaf() (*Expr, error) {
	if tp.pos >= len(tp.toks) {
		return nil, &SyntaxError{File: tp.file, Line: tp.line, Msg: "unexpected end of expression"}
	}
	tok := tp.toks[tp.pos]
	tp.pos++
	if strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) {
		return exprSymbol(tp.kc.internConstString(tok[1 : len(tok)-1])), nil
	}
	switch tok {
	case "y":
		return exprSymbol(tp.kc.symYes), nil
	case "m":
		return exprSymbol(tp.kc.symMod), nil
	case "n":
		return exprSymbol(tp.kc.symNo), nil
	default:
		return exprSymbol(tp.kc.lookupSymbol(tok)), nil
	}
}
