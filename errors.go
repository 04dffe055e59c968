// Copyright 2026 go-kconfig authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be
// found in the LICENSE file.

package kconfig

import "fmt"

// SyntaxError is returned by Parse/ParseData when the lexer or parser
// rejects the input: unterminated strings, unbalanced endif/endmenu/
// endchoice, or unknown keywords where one isn't allowed. (A conflicting
// type re-declaration is only a WarnTypeRedeclared warning.) It is fatal
// to the parse that produced it.
type SyntaxError struct {
	File string
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.File == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// InternalError indicates an invariant of the package was violated. It
// should never occur in normal use; if one is observed, it is a bug in
// this package rather than in the Kconfig input.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Msg
}

func internalErrorf(format string, args ...interface{}) error {
	return &InternalError{Msg: fmt.Sprintf(format, args...)}
}

// WarningKind classifies a non-fatal Warning collected during parsing,
// finalization or .config loading.
type WarningKind int

const (
	WarnUndefinedSymbol WarningKind = iota
	WarnBadSelectTarget
	WarnOutOfRange
	WarnUnknownConfigLine
	WarnTypeMismatch
	WarnCyclicChoiceDefault
	WarnTypeRedeclared
	WarnInvalidAssignment
	WarnPromptlessAssignment
)

// Warning is a non-fatal condition observed while processing Kconfig input
// or a .config file. Warnings never abort processing; they accumulate on
// Kconfig.Warnings and are optionally echoed to stderr (see WarnToStderr).
type Warning struct {
	Kind WarningKind
	File string
	Line int
	Msg  string
}

func (w Warning) String() string {
	if w.File == "" {
		return "warning: " + w.Msg
	}
	return fmt.Sprintf("%s:%d: warning: %s", w.File, w.Line, w.Msg)
}
