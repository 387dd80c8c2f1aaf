// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package category defines the warning category taxonomy used by
// filter rules.
//
// Categories form a tree rooted at Warning. A filter rule registered
// for a category applies to that category and every category below it,
// so a rule for Warning matches everything while a rule for
// Deprecation matches only deprecation warnings. The standard
// categories mirror the usual runtime taxonomy: user, deprecation,
// pending-deprecation, syntax, runtime, future, import, unicode, bytes
// and resource warnings, all direct children of Warning.
//
// Categories are compared by identity; use the package-level variables
// rather than constructing duplicates. Lookup resolves a category from
// its name, which is how rule loaders map textual tables onto the
// taxonomy.
package category
