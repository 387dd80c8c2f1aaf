// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filter

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warnkit/warnkit/category"
	"github.com/warnkit/warnkit/internal/log"
)

func TestPushFrontSnapshot(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, 0, reg.Len())

	first := Rule{Action: ActionIgnore, Category: category.Import}
	second := Rule{Action: ActionAlways, Category: category.Deprecation}
	reg.PushFront(first)
	reg.PushFront(second)

	require.Equal(t, 2, reg.Len())
	snap := reg.Snapshot()
	assert.Equal(t, second, snap[0])
	assert.Equal(t, first, snap[1])

	// Snapshot is a copy; mutating it must not touch the registry.
	snap[0] = first
	assert.Equal(t, second, reg.Snapshot()[0])

	reg.Reset()
	assert.Equal(t, 0, reg.Len())
}

func TestInstallReversesTable(t *testing.T) {
	table := []Rule{
		{Action: ActionIgnore, Category: category.Import},
		{Action: ActionDefault, Category: category.User},
		{Action: ActionAlways, Category: category.Deprecation},
	}

	reg := NewRegistry()
	reg.PushFront(Rule{Action: ActionOnce, Category: category.Warning})
	reg.Install(table)

	require.Equal(t, len(table), reg.Len())
	snap := reg.Snapshot()
	for i := range table {
		assert.Equal(t, table[len(table)-1-i], snap[i])
	}
}

func TestResolveNoRules(t *testing.T) {
	reg := NewRegistry()
	assert.True(t, reg.Resolve(category.Deprecation, ""))
}

func TestResolveUnrelatedRule(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Filter(ActionDefault, "", category.Import, "", 0))
	assert.True(t, reg.Resolve(category.Deprecation, ""))
}

func TestResolveActions(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{action: ActionIgnore, want: false},
		{action: ActionDefault, want: true},
		{action: ActionError, want: true},
		{action: ActionAlways, want: true},
		{action: ActionModule, want: true},
		{action: ActionOnce, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			reg := NewRegistry()
			require.NoError(t, reg.Filter(tt.action, "", category.Deprecation, "", 0))
			assert.Equal(t, tt.want, reg.Resolve(category.Deprecation, ""))
		})
	}
}

func TestResolveLastRegisteredWins(t *testing.T) {
	// A block rule shadowing an earlier pass rule.
	reg := NewRegistry()
	require.NoError(t, reg.Filter(ActionAlways, "", category.Deprecation, "", 0))
	require.NoError(t, reg.Filter(ActionIgnore, "", category.Deprecation, "", 0))
	assert.False(t, reg.Resolve(category.Deprecation, ""))

	// A pass rule shadowing an earlier block rule.
	reg.Reset()
	require.NoError(t, reg.Filter(ActionIgnore, "", category.Deprecation, "", 0))
	require.NoError(t, reg.Filter(ActionAlways, "", category.Deprecation, "", 0))
	assert.True(t, reg.Resolve(category.Deprecation, ""))
}

func TestResolveCategoryHierarchy(t *testing.T) {
	// A rule for the root category governs every category below it.
	reg := NewRegistry()
	require.NoError(t, reg.Filter(ActionIgnore, "", category.Warning, "", 0))
	assert.False(t, reg.Resolve(category.Deprecation, ""))
	assert.False(t, reg.Resolve(category.Future, ""))

	// The reverse does not hold.
	reg.Reset()
	require.NoError(t, reg.Filter(ActionIgnore, "", category.Deprecation, "", 0))
	assert.True(t, reg.Resolve(category.Warning, ""))
}

func TestResolveModuleScoping(t *testing.T) {
	reg := NewRegistry()

	// Module patterns match at the start of the dotted path only.
	require.NoError(t, reg.Filter(ActionIgnore, "", category.Deprecation, "t", 0))
	assert.True(t, reg.Resolve(category.Deprecation, "fatf.test.t"))
	assert.False(t, reg.Resolve(category.Deprecation, "t.test"))

	require.NoError(t, reg.Filter(ActionIgnore, "", category.Deprecation, "fatf", 0))
	assert.False(t, reg.Resolve(category.Deprecation, "fatf.test.t"))

	// Precedence is registration order, so this pass rule wins for any
	// module it matches, including ones the earlier block rules match.
	require.NoError(t, reg.Filter(ActionAlways, "", category.Deprecation, "fatf.test", 0))
	assert.False(t, reg.Resolve(category.Deprecation, "fatf.t"))
	assert.True(t, reg.Resolve(category.Deprecation, "fatf.test.t"))
}

func TestResolveUnspecifiedModule(t *testing.T) {
	// A module-scoped block rule cannot apply to an unspecified
	// location, so the category stays displayed there.
	reg := NewRegistry()
	require.NoError(t, reg.Filter(ActionIgnore, "", category.Deprecation, "t", 0))
	assert.True(t, reg.Resolve(category.Deprecation, ""))
}

func TestResolveLinePinnedRule(t *testing.T) {
	// The query carries no line, so a line-pinned rule never applies.
	reg := NewRegistry()
	require.NoError(t, reg.Filter(ActionIgnore, "", category.Deprecation, "", 42))
	assert.True(t, reg.Resolve(category.Deprecation, ""))
}

func TestFilterNormalizes(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Filter(ActionIgnore, "deprecated", category.Deprecation, "warnkit", 0))

	rule := reg.Snapshot()[0]
	assert.True(t, rule.Message.Folds())
	assert.False(t, rule.Module.Folds())
	assert.Equal(t, "deprecated", rule.Message.Source())
	assert.Equal(t, "warnkit", rule.Module.Source())
}

func TestFilterBadPattern(t *testing.T) {
	reg := NewRegistry()
	assert.Error(t, reg.Filter(ActionIgnore, "(", category.Deprecation, "", 0))
	assert.Error(t, reg.Filter(ActionIgnore, "", category.Deprecation, "(", 0))
	assert.Equal(t, 0, reg.Len())
}

func TestResolveTracesAtTraceLevel(t *testing.T) {
	t.Setenv("WARNKIT_LOG", "trace")
	log.InitLogger()
	t.Cleanup(log.InitLogger)

	reg := NewRegistry()
	require.NoError(t, reg.Filter(ActionIgnore, "", category.Deprecation, "", 0))

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	displayed := reg.Resolve(category.Deprecation, "warnkit.data")

	require.NoError(t, w.Close())
	os.Stdout = old
	out, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.False(t, displayed)
	assert.Contains(t, string(out), " T ")
	assert.Contains(t, string(out), "DeprecationWarning")
	assert.Contains(t, string(out), "ignore")
}

func TestIsDisplayedDefaultRegistry(t *testing.T) {
	Default.Reset()
	t.Cleanup(Default.Reset)

	assert.True(t, IsDisplayed(category.Deprecation, ""))

	require.NoError(t, Default.Filter(ActionIgnore, "", category.Deprecation, "", 0))
	assert.False(t, IsDisplayed(category.Deprecation, ""))
	assert.True(t, IsDisplayed(category.User, ""))
}
