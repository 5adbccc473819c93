package try

import (
	"errors"
	"fmt"
)

// Registration and construction errors.
var (
	// ErrInvalidClauseTypes indicates a compound clause covers two related kinds.
	ErrInvalidClauseTypes = errors.New("try: related kinds in one clause")

	// ErrRegistrationConflict indicates a kind is already covered by another clause.
	ErrRegistrationConflict = errors.New("try: kind already handled by another clause")

	// ErrTooFewKinds indicates a compound clause with fewer than two kinds.
	ErrTooFewKinds = errors.New("try: compound clause needs at least two kinds")

	// ErrNilKind indicates a nil kind was passed to a clause.
	ErrNilKind = errors.New("try: nil kind")

	// ErrNilHandler indicates a clause without a handler.
	ErrNilHandler = errors.New("try: nil handler")

	// ErrNilClause indicates a nil clause was registered.
	ErrNilClause = errors.New("try: nil clause")

	// ErrNilOperation indicates an attempt was built without an operation.
	ErrNilOperation = errors.New("try: nil operation")
)

// InvalidClauseTypesError reports the first pair of related kinds found in a
// compound clause.
type InvalidClauseTypesError struct {
	A *Kind
	B *Kind
}

func (e *InvalidClauseTypesError) Error() string {
	return fmt.Sprintf("try: %s and %s may not both be handled by the same compound clause",
		e.A.Name(), e.B.Name())
}

func (e *InvalidClauseTypesError) Unwrap() error {
	return ErrInvalidClauseTypes
}

// RegistrationConflictError reports the kind that is already claimed and the
// clause that claims it.
type RegistrationConflictError struct {
	Kind     *Kind
	Existing Clause
}

func (e *RegistrationConflictError) Error() string {
	return fmt.Sprintf("try: a clause for %s already exists", e.Kind.Name())
}

func (e *RegistrationConflictError) Unwrap() error {
	return ErrRegistrationConflict
}

// PanicError carries a value recovered from a panicking operation.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("try: operation panicked: %v", e.Value)
}

func (e *PanicError) Kind() *Kind {
	return Panic
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
