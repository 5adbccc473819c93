// Package try holds the shared vocabulary of try3: the Kind hierarchy that
// classifies failures, the Clause and Handler contracts, the Outcome of an
// execution and the errors reported while building a try block.
//
// Kinds replace exception classes. Each kind has one parent and every chain
// ends at Root, so dispatch can walk from the most specific kind to the most
// general one:
//
//	var (
//	    IO      = try.NewKind("IO", nil)
//	    Timeout = try.NewKind("Timeout", IO)
//	)
//
//	err := Timeout.New("read deadline")
//	try.KindOf(err).Ancestors() // Timeout, IO, Error
//
// Errors outside this package are classified by KindOf: anything
// implementing Kinded reports its own kind, context errors map to Canceled
// and DeadlineExceeded, and the rest are Root.
//
// See package attempt for the builder that executes operations against
// registered clauses.
package try
