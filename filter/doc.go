// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filter inspects and configures warning filtering: which
// diagnostic warning categories are displayed, suppressed or escalated,
// and from which modules.
//
// A Rule is a single precedence-ordered instruction binding an Action
// to a warning category, a message pattern, a module pattern and an
// optional source line. Rules live in a Registry, an ordered list where
// the most recently registered rule has the highest priority. Resolve
// scans the list in priority order and the first applicable rule
// decides whether a category is displayed; with no applicable rule the
// category is displayed.
//
// Patterns:
//
// A Pattern is a compiled regular expression together with its source
// text and flags, compared structurally rather than by compiled-object
// identity. Matching is anchored at the start of the subject, which
// gives module patterns prefix semantics over dotted module paths: the
// pattern "t" matches "t.test" but not "fatf.test.t".
//
// Normalize turns the three accepted pattern inputs (nil, source
// string, compiled Pattern) into one canonical Pattern. A pre-compiled
// Pattern must agree with the requested fold-case mode; disagreement is
// a usage error, never silently coerced.
//
// Rule tables:
//
// DefaultFilters is the toolkit's baseline policy. SetDefaultFilters
// installs it into the package-level Default registry by prepending
// each entry in declared order, so the live list is the declared table
// reversed. ParseSpec, LoadYAML and LoadJSON build rule tables from
// -W style option strings, YAML documents and JSON documents
// respectively; invalid entries are logged and skipped so a partial
// table still installs.
//
// The Registry is not synchronized. It mirrors a process-wide runtime
// filter list that is configured from setup or test code before use.
package filter
