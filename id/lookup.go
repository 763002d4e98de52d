package id

// entry pairs one enumeration value with its external string name.
// A table is a plain slice of entries; the slice length bounds every
// scan, so tables need no terminator convention.
type entry[T ~int] struct {
	id   T
	name string
}

// lookupName scans tab in order and returns the name paired with the
// first entry whose id equals v. The second return is false when no
// entry matches. First match wins, so a table may deliberately shadow a
// later entry with an earlier one.
func lookupName[T ~int](tab []entry[T], v T) (string, bool) {
	for i := range tab {
		if tab[i].id == v {
			return tab[i].name, true
		}
	}
	return "", false
}

// lookupID scans tab in order and returns the id of the first entry
// whose name matches name under eq. It returns miss when no entry
// matches.
//
// The comparison strategy is a parameter rather than hard-coded: it is
// the only point of behavioral variation between domains. Every current
// domain passes strings.EqualFold, giving callers case-insensitive
// matching over the ASCII vocabularies stored here.
func lookupID[T ~int](tab []entry[T], name string, eq func(string, string) bool, miss T) T {
	for i := range tab {
		if eq(name, tab[i].name) {
			return tab[i].id
		}
	}
	return miss
}
