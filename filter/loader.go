// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/warnkit/warnkit/category"
	"github.com/warnkit/warnkit/internal/log"
)

// ruleDoc is the on-disk shape of a single filter rule. Message and
// module hold regexp source text, unlike the literal fields of a spec
// string.
type ruleDoc struct {
	Action   string `yaml:"action" json:"action"`
	Message  string `yaml:"message" json:"message"`
	Category string `yaml:"category" json:"category"`
	Module   string `yaml:"module" json:"module"`
	Line     int    `yaml:"line" json:"line"`
}

// LoadYAML parses a YAML rule table of the shape
//
//	filters:
//	  - action: ignore
//	    category: DeprecationWarning
//	    module: numpy
//
// Entries that fail to build (bad action, unknown category, invalid
// pattern) are logged and skipped; a malformed document is an error.
func LoadYAML(data []byte) ([]Rule, error) {
	var doc struct {
		Filters []ruleDoc `yaml:"filters"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML filter table: %w", err)
	}
	return buildRules(doc.Filters), nil
}

// LoadJSON parses a JSON rule table with the same shape as LoadYAML,
// under a top-level "filters" array.
func LoadJSON(data []byte) ([]Rule, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("parsing JSON filter table: invalid document")
	}

	//nolint:prealloc // Non-object entries are skipped, so len is unknown.
	var docs []ruleDoc
	for _, entry := range gjson.GetBytes(data, "filters").Array() {
		docs = append(docs, ruleDoc{
			Action:   entry.Get("action").String(),
			Message:  entry.Get("message").String(),
			Category: entry.Get("category").String(),
			Module:   entry.Get("module").String(),
			Line:     int(entry.Get("line").Int()),
		})
	}
	return buildRules(docs), nil
}

// buildRules converts parsed docs into rules, logging and skipping
// invalid entries so a partial table still loads.
func buildRules(docs []ruleDoc) []Rule {
	//nolint:prealloc // Invalid entries are skipped, so len is unknown.
	var rules []Rule
	for _, d := range docs {
		rule, err := d.rule()
		if err != nil {
			log.Errorf("invalid filter entry (action=%q category=%q module=%q): %v",
				d.Action, d.Category, d.Module, err)
			continue
		}
		rules = append(rules, rule)
	}
	return rules
}

// rule builds a Rule from the doc, applying the same defaults as spec
// strings: empty action means default, empty category means Warning.
func (d ruleDoc) rule() (Rule, error) {
	action := ActionDefault
	if d.Action != "" {
		a, err := ParseAction(d.Action)
		if err != nil {
			return Rule{}, err
		}
		action = a
	}

	msg, err := Normalize(d.Message, true)
	if err != nil {
		return Rule{}, err
	}

	cat := category.Warning
	if d.Category != "" {
		c, ok := category.Lookup(d.Category)
		if !ok {
			return Rule{}, fmt.Errorf("unknown warning category %q", d.Category)
		}
		cat = c
	}

	mod, err := Normalize(d.Module, false)
	if err != nil {
		return Rule{}, err
	}

	if d.Line < 0 {
		return Rule{}, fmt.Errorf("invalid line number %d", d.Line)
	}

	return Rule{
		Action:   action,
		Message:  msg,
		Category: cat,
		Module:   mod,
		Line:     d.Line,
	}, nil
}
