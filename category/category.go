// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package category

// Category is a single node in the warning category taxonomy. A nil
// Parent marks the root. Categories are immutable after construction
// and compared by identity.
type Category struct {
	Name   string
	Parent *Category
}

// Standard categories. Warning is the root; everything else hangs
// directly off it, matching the runtime taxonomy.
var (
	Warning            = &Category{Name: "Warning"}
	User               = &Category{Name: "UserWarning", Parent: Warning}
	Deprecation        = &Category{Name: "DeprecationWarning", Parent: Warning}
	PendingDeprecation = &Category{Name: "PendingDeprecationWarning", Parent: Warning}
	Syntax             = &Category{Name: "SyntaxWarning", Parent: Warning}
	Runtime            = &Category{Name: "RuntimeWarning", Parent: Warning}
	Future             = &Category{Name: "FutureWarning", Parent: Warning}
	Import             = &Category{Name: "ImportWarning", Parent: Warning}
	Unicode            = &Category{Name: "UnicodeWarning", Parent: Warning}
	Bytes              = &Category{Name: "BytesWarning", Parent: Warning}
	Resource           = &Category{Name: "ResourceWarning", Parent: Warning}
)

// byName indexes the standard categories for Lookup.
var byName = map[string]*Category{}

func init() {
	for _, c := range []*Category{
		Warning, User, Deprecation, PendingDeprecation, Syntax,
		Runtime, Future, Import, Unicode, Bytes, Resource,
	} {
		byName[c.Name] = c
	}
}

// IsA reports whether c is other or descends from other. A rule
// registered for other therefore applies to warnings of category c.
func (c *Category) IsA(other *Category) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur == other {
			return true
		}
	}
	return false
}

// String returns the category name.
func (c *Category) String() string {
	return c.Name
}

// Lookup resolves a standard category by name.
func Lookup(name string) (*Category, bool) {
	c, ok := byName[name]
	return c, ok
}
