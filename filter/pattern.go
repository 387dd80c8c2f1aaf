// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Flags select regexp compilation modes for a Pattern. FoldCase marks
// case-insensitive matching and must agree with the foldCase argument
// when a pre-compiled Pattern is passed to Normalize; the remaining
// flags pass through Normalize untouched.
type Flags uint8

const (
	FoldCase Flags = 1 << iota
	Multiline
	DotAll
	Ungreedy
)

// inline returns the inline-flag prefix for f, e.g. "(?im)".
func (f Flags) inline() string {
	var b strings.Builder
	if f&FoldCase != 0 {
		b.WriteByte('i')
	}
	if f&Multiline != 0 {
		b.WriteByte('m')
	}
	if f&DotAll != 0 {
		b.WriteByte('s')
	}
	if f&Ungreedy != 0 {
		b.WriteByte('U')
	}
	if b.Len() == 0 {
		return ""
	}
	return "(?" + b.String() + ")"
}

// Pattern is a compiled filter pattern. It keeps its source text and
// flags so two patterns compiled from the same inputs compare equal;
// never compare the underlying regexps. The zero Pattern matches
// everything, same as Empty.
type Pattern struct {
	source string
	flags  Flags
	re     *regexp.Regexp
}

// Empty and EmptyFold are the canonical "no constraint" patterns, case
// sensitive and case insensitive. Both match every subject.
var (
	Empty     = MustCompile("", 0)
	EmptyFold = MustCompile("", FoldCase)
)

// ErrPatternType reports a pattern argument of an unsupported type.
var ErrPatternType = errors.New(
	"a warning filter pattern must be a string, a compiled Pattern or nil")

// FoldCaseError reports a pre-compiled pattern whose fold-case flag
// disagrees with the one requested by the caller.
type FoldCaseError struct {
	// WantFold is the fold-case mode the caller asked for.
	WantFold bool
}

func (e *FoldCaseError) Error() string {
	neg := " not"
	if e.WantFold {
		neg = ""
	}
	return fmt.Sprintf("the supplied pattern should%s be compiled with "+
		"the fold-case flag; the foldCase argument takes precedence", neg)
}

// Compile builds a Pattern from a regexp source and flags. Matching is
// anchored at the start of the subject, so module patterns behave as
// prefix matches over dotted module paths.
func Compile(source string, flags Flags) (Pattern, error) {
	re, err := regexp.Compile(`\A(?:` + flags.inline() + source + `)`)
	if err != nil {
		return Pattern{}, fmt.Errorf("compiling filter pattern %q: %w", source, err)
	}
	return Pattern{source: source, flags: flags, re: re}, nil
}

// MustCompile is Compile for patterns known valid at build time.
func MustCompile(source string, flags Flags) Pattern {
	p, err := Compile(source, flags)
	if err != nil {
		panic(err)
	}
	return p
}

// Source returns the pattern's source text.
func (p Pattern) Source() string {
	return p.source
}

// Flags returns the pattern's compilation flags.
func (p Pattern) Flags() Flags {
	return p.flags
}

// Folds reports whether the pattern matches case-insensitively.
func (p Pattern) Folds() bool {
	return p.flags&FoldCase != 0
}

// Equal reports structural equality over (source, flags).
func (p Pattern) Equal(other Pattern) bool {
	return p.source == other.source && p.flags == other.flags
}

// MatchStart reports whether p matches subject at its beginning. An
// empty source matches any subject, including the empty string.
func (p Pattern) MatchStart(subject string) bool {
	if p.re == nil {
		return true
	}
	return p.re.MatchString(subject)
}

// Normalize converts one of the three accepted pattern inputs into a
// single canonical Pattern:
//
//   - nil yields Empty or EmptyFold per foldCase;
//   - a string is compiled fresh, case-insensitively iff foldCase;
//   - a compiled Pattern is returned unchanged, provided its fold-case
//     flag equals foldCase. Other flags pass through. A mismatch is a
//     *FoldCaseError naming the direction of the disagreement.
//
// Any other input type fails with ErrPatternType.
func Normalize(pattern any, foldCase bool) (Pattern, error) {
	switch p := pattern.(type) {
	case nil:
		if foldCase {
			return EmptyFold, nil
		}
		return Empty, nil
	case string:
		var flags Flags
		if foldCase {
			flags = FoldCase
		}
		return Compile(p, flags)
	case Pattern:
		if p.Folds() != foldCase {
			return Pattern{}, &FoldCaseError{WantFold: foldCase}
		}
		return p, nil
	default:
		return Pattern{}, ErrPatternType
	}
}
