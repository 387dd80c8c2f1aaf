// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"github.com/warnkit/warnkit/category"
)

// DefaultFilters is the toolkit's baseline filtering policy, in
// declared order: silence import and pending-deprecation noise
// globally, show user warnings with the default once-per-location
// behavior, and surface every deprecation and future warning coming
// out of this toolkit's own namespace (futures as hard failures).
//
// Install prepends entries one at a time, so the last declared entry
// ends up with the highest priority.
var DefaultFilters = []Rule{
	{Action: ActionIgnore, Message: EmptyFold, Category: category.Import, Module: Empty},
	{Action: ActionIgnore, Message: EmptyFold, Category: category.PendingDeprecation, Module: Empty},
	{Action: ActionDefault, Message: EmptyFold, Category: category.User, Module: Empty},
	{Action: ActionAlways, Message: EmptyFold, Category: category.Deprecation, Module: MustCompile("warnkit", 0)},
	{Action: ActionError, Message: EmptyFold, Category: category.Future, Module: MustCompile("warnkit", 0)},
}
