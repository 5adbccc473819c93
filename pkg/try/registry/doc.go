// Package registry stores the clauses of a try block and answers, for a
// failure kind, which clause handles it.
//
// Lookup walks the kind's ancestor chain from the most specific kind up to
// try.Root and stops at the first covered kind. Because a kind can be
// covered by at most one clause there is never a tie.
package registry
