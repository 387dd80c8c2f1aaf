// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/warnkit/warnkit/category"
	"github.com/warnkit/warnkit/internal/log"
)

// ParseSpec parses a comma-separated list of
// action:message:category:module:line filter entries, the runtime's
// -W style option format. Message and module fields are literal text,
// not regexps; empty fields mean no constraint (any message, the root
// Warning category, any module, any line). Invalid entries are logged
// and skipped so the valid remainder still parses.
func ParseSpec(spec string) []Rule {
	//nolint:prealloc // Invalid entries are skipped, so len is unknown.
	var rules []Rule

	if spec == "" {
		return rules
	}

	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		rule, err := parseSpecEntry(entry)
		if err != nil {
			log.Errorf("invalid filter spec %q: %v", entry, err)
			continue
		}
		rules = append(rules, rule)
	}

	return rules
}

// parseSpecEntry parses a single action:message:category:module:line
// entry. Trailing fields may be omitted.
func parseSpecEntry(entry string) (Rule, error) {
	parts := strings.Split(entry, ":")
	if len(parts) > 5 {
		return Rule{}, errors.New("too many fields")
	}
	for len(parts) < 5 {
		parts = append(parts, "")
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	action := ActionDefault
	if parts[0] != "" {
		a, err := ParseAction(parts[0])
		if err != nil {
			return Rule{}, err
		}
		action = a
	}

	// Spec-string fields are literals, so quote them before compiling.
	msg, err := Normalize(regexp.QuoteMeta(parts[1]), true)
	if err != nil {
		return Rule{}, err
	}

	cat := category.Warning
	if parts[2] != "" {
		c, ok := category.Lookup(parts[2])
		if !ok {
			return Rule{}, fmt.Errorf("unknown warning category %q", parts[2])
		}
		cat = c
	}

	mod, err := Normalize(regexp.QuoteMeta(parts[3]), false)
	if err != nil {
		return Rule{}, err
	}

	line := 0
	if parts[4] != "" {
		line, err = strconv.Atoi(parts[4])
		if err != nil || line < 0 {
			return Rule{}, fmt.Errorf("invalid line number %q", parts[4])
		}
	}

	return Rule{
		Action:   action,
		Message:  msg,
		Category: cat,
		Module:   mod,
		Line:     line,
	}, nil
}
