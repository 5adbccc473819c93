package registry

import (
	"github.com/ib-77/try3/pkg/try"
)

// Registry holds clauses in registration order and an index from each
// covered kind to its clause. No kind is covered by two clauses.
//
// Registry is not synchronized. Finish every Add before the first Find;
// after that it is safe for concurrent readers.
type Registry struct {
	clauses []try.Clause
	index   map[*try.Kind]try.Clause
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		index: make(map[*try.Kind]try.Clause),
	}
}

// Add appends c unless one of its kinds is already covered. On conflict it
// returns a *try.RegistrationConflictError naming the first clause, in
// registration order, that covers the kind; the registry is left unchanged.
func (r *Registry) Add(c try.Clause) error {
	if try.IsNil(c) {
		return try.ErrNilClause
	}
	kinds := c.Kinds()
	if len(kinds) == 0 {
		return try.ErrTooFewKinds
	}
	if c.Handler() == nil {
		return try.ErrNilHandler
	}
	for _, k := range kinds {
		if k == nil {
			return try.ErrNilKind
		}
	}

	for _, existing := range r.clauses {
		for _, covered := range existing.Kinds() {
			for _, k := range kinds {
				if k == covered {
					return &try.RegistrationConflictError{Kind: k, Existing: existing}
				}
			}
		}
	}

	r.clauses = append(r.clauses, c)
	r.reindex()
	return nil
}

func (r *Registry) reindex() {
	index := make(map[*try.Kind]try.Clause, len(r.index)+2)
	for _, c := range r.clauses {
		for _, k := range c.Kinds() {
			index[k] = c
		}
	}
	r.index = index
}

// Lookup returns the clause covering exactly k.
func (r *Registry) Lookup(k *try.Kind) (try.Clause, bool) {
	c, ok := r.index[k]
	return c, ok
}

// Find returns the clause for the most specific covered kind among k and its
// ancestors. A clause covering try.Root matches every kind.
func (r *Registry) Find(k *try.Kind) (try.Clause, bool) {
	if k == nil || len(r.clauses) == 0 {
		return nil, false
	}
	for _, a := range k.Ancestors() {
		if c, ok := r.index[a]; ok {
			return c, true
		}
	}
	return nil, false
}

// Len returns the number of registered clauses.
func (r *Registry) Len() int {
	return len(r.clauses)
}

// Clauses returns the clauses in registration order.
func (r *Registry) Clauses() []try.Clause {
	out := make([]try.Clause, len(r.clauses))
	copy(out, r.clauses)
	return out
}
