package try

import (
	"reflect"

	"go.uber.org/multierr"
)

// IsNil reports whether i is nil or a typed nil pointer, map, slice, func,
// chan or interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// GetErrors flattens err into its parts. A failure combined with a cleanup
// error yields both, primary first.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if errs := multierr.Errors(err); len(errs) > 1 {
		return errs
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return KindOf(err).IsA(Cancellation)
}
