// Package clause builds the handler bindings registered on a try block.
//
// A SingleClause binds one kind to a handler. A CompoundClause binds several
// kinds to one handler and rejects, at construction, any pair where one kind
// is the other or one of its ancestors: such a clause could never have a
// single most specific match.
package clause
