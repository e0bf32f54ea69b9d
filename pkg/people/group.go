package people

import (
	f "github.com/multimediallc/namegroups/pkg/functional"
)

// Group buckets every non-nil record's normalized valueOf name under its
// normalized keyOf name. Missing names become NotAvailable. A nil or empty
// input yields an empty Grouping. records is not modified.
func Group(records []*Person, keyOf, valueOf Selector) *Grouping {
	if len(records) == 0 {
		return newGrouping([]string{}, map[string][]string{})
	}
	present := f.Filtered(records, func(p *Person) bool {
		return p != nil
	})
	keys, groups := f.GroupBy(present,
		func(p *Person) string { return Normalize(keyOf(*p)) },
		func(p *Person) string { return Normalize(valueOf(*p)) },
	)
	return newGrouping(keys, groups)
}

// LastnamesByFirstname groups last names under the first name they share.
//
// For John Doe, John Silver and Peter Doe the result is
//
//	JOHN  -> [DOE SILVER]
//	PETER -> [DOE]
func LastnamesByFirstname(people []*Person) *Grouping {
	return Group(people, FirstName, LastName)
}

// FirstnamesByLastname is LastnamesByFirstname with the roles swapped.
func FirstnamesByLastname(people []*Person) *Grouping {
	return Group(people, LastName, FirstName)
}
