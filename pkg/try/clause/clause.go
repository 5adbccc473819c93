package clause

import (
	"github.com/ib-77/try3/pkg/try"
)

// SingleClause handles exactly one kind.
type SingleClause struct {
	kind    *try.Kind
	handler try.Handler
}

// Single returns a clause handling kind and its descendants.
func Single(kind *try.Kind, h try.Handler) (*SingleClause, error) {
	if kind == nil {
		return nil, try.ErrNilKind
	}
	if h == nil {
		return nil, try.ErrNilHandler
	}
	return &SingleClause{kind: kind, handler: h}, nil
}

func (c *SingleClause) Kinds() []*try.Kind {
	return []*try.Kind{c.kind}
}

func (c *SingleClause) Handler() try.Handler {
	return c.handler
}

// CompoundClause maps several unrelated kinds to one handler.
type CompoundClause struct {
	kinds   []*try.Kind
	handler try.Handler
}

// Compound returns a clause handling every kind in kinds. No two kinds may
// be related: neither may be the other or one of its ancestors.
func Compound(h try.Handler, kinds ...*try.Kind) (*CompoundClause, error) {
	if h == nil {
		return nil, try.ErrNilHandler
	}
	if len(kinds) < 2 {
		return nil, try.ErrTooFewKinds
	}
	if err := checkKinds(kinds); err != nil {
		return nil, err
	}

	own := make([]*try.Kind, len(kinds))
	copy(own, kinds)
	return &CompoundClause{kinds: own, handler: h}, nil
}

func (c *CompoundClause) Kinds() []*try.Kind {
	out := make([]*try.Kind, len(c.kinds))
	copy(out, c.kinds)
	return out
}

func (c *CompoundClause) Handler() try.Handler {
	return c.handler
}

// Of builds a SingleClause for one kind and a CompoundClause otherwise.
func Of(h try.Handler, kinds ...*try.Kind) (try.Clause, error) {
	if len(kinds) == 1 {
		return Single(kinds[0], h)
	}
	return Compound(h, kinds...)
}

// checkKinds reports the first related pair. Duplicates are related.
func checkKinds(kinds []*try.Kind) error {
	for _, k := range kinds {
		if k == nil {
			return try.ErrNilKind
		}
	}
	for i := 0; i < len(kinds); i++ {
		for j := i + 1; j < len(kinds); j++ {
			if try.Related(kinds[i], kinds[j]) {
				return &try.InvalidClauseTypesError{A: kinds[i], B: kinds[j]}
			}
		}
	}
	return nil
}
