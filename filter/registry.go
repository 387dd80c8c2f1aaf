// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"github.com/warnkit/warnkit/category"
	"github.com/warnkit/warnkit/internal/log"
)

// Registry owns an ordered list of filter rules. The most recently
// registered rule has the highest priority, so the list behaves as a
// stack with registrations prepended to the front. The zero value is
// ready to use. Registry is not synchronized.
type Registry struct {
	rules []Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Reset removes every registered rule.
func (r *Registry) Reset() {
	r.rules = nil
}

// PushFront registers rule at the highest priority.
func (r *Registry) PushFront(rule Rule) {
	r.rules = append([]Rule{rule}, r.rules...)
}

// Len returns the number of active rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

// Snapshot returns a copy of the active rules in priority order, most
// recently registered first.
func (r *Registry) Snapshot() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Install replaces the active rules with the given table, prepending
// each entry in declared order. The snapshot afterwards is the table
// reversed: the last declared entry has the highest priority.
func (r *Registry) Install(rules []Rule) {
	r.Reset()
	for _, rule := range rules {
		r.PushFront(rule)
	}
}

// Filter normalizes message and module and registers the resulting
// rule at the highest priority, mirroring the host runtime's
// registration primitive. Message patterns fold case, module patterns
// do not.
func (r *Registry) Filter(action Action, message string, cat *category.Category, module string, line int) error {
	msg, err := Normalize(message, true)
	if err != nil {
		return err
	}
	mod, err := Normalize(module, false)
	if err != nil {
		return err
	}
	r.PushFront(Rule{
		Action:   action,
		Message:  msg,
		Category: cat,
		Module:   mod,
		Line:     line,
	})
	return nil
}

// Resolve reports whether a warning of category cat, raised from the
// module named by module (empty when unspecified), would currently be
// displayed rather than silently dropped. Rules are scanned in
// priority order and the first applicable rule decides; with no
// applicable rule the warning is displayed.
func (r *Registry) Resolve(cat *category.Category, module string) bool {
	for _, rule := range r.rules {
		if !rule.applies(cat, module) {
			continue
		}
		log.Tracef("category %s from module %q resolved by %s rule",
			cat, module, rule.Action)
		return !rule.Action.Suppresses()
	}
	return true
}

// Default is the process-wide registry, analogous to the host
// runtime's own filter list. Setup and test code typically configures
// it once at start.
var Default = NewRegistry()

// SetDefaultFilters installs DefaultFilters into Default, replacing
// whatever was active.
func SetDefaultFilters() {
	Default.Install(DefaultFilters)
}

// IsDisplayed reports whether cat would currently be displayed given
// Default's active rules. module may be empty for an unspecified
// location.
func IsDisplayed(cat *category.Category, module string) bool {
	return Default.Resolve(cat, module)
}
