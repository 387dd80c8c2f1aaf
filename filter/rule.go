// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"fmt"

	"github.com/warnkit/warnkit/category"
)

// Action is the effect a filter rule has on matching warnings.
type Action int

const (
	// ActionError escalates matching warnings to a hard failure.
	ActionError Action = iota
	// ActionIgnore suppresses matching warnings. It is the only
	// suppressing action.
	ActionIgnore
	// ActionAlways shows matching warnings every time.
	ActionAlways
	// ActionDefault shows the first occurrence per location.
	ActionDefault
	// ActionModule shows the first occurrence per module.
	ActionModule
	// ActionOnce shows only the first occurrence overall.
	ActionOnce
)

var actionNames = map[Action]string{
	ActionError:   "error",
	ActionIgnore:  "ignore",
	ActionAlways:  "always",
	ActionDefault: "default",
	ActionModule:  "module",
	ActionOnce:    "once",
}

// String returns the action's spec-string name.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Suppresses reports whether the action hides matching warnings rather
// than surfacing them.
func (a Action) Suppresses() bool {
	return a == ActionIgnore
}

// ParseAction resolves a spec-string action name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown filter action %q", name)
}

// Rule is a single filter instruction: warnings whose category,
// message, module and line all match are handled per Action. Rules are
// immutable once registered; replace the registry's table instead of
// editing entries in place.
type Rule struct {
	Action   Action
	Message  Pattern
	Category *category.Category
	Module   Pattern
	Line     int
}

// applies reports whether the rule governs a warning of category cat
// raised from module (empty when the location is unspecified). A rule
// pinned to a specific source line never applies here because the
// query carries no line.
func (r Rule) applies(cat *category.Category, module string) bool {
	if r.Line != 0 {
		return false
	}
	if r.Category != nil && !cat.IsA(r.Category) {
		return false
	}
	return r.Module.MatchStart(module)
}
