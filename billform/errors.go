package billform

import (
	"errors"
	"fmt"
)

type ValidationReason string

const (
	MissingContract ValidationReason = "missing_contract"
	MissingProperty ValidationReason = "missing_property"
	// PropertyMismatch: the selected property is not the contract's property.
	PropertyMismatch ValidationReason = "property_mismatch"
)

// ValidationError is returned before any network call when the selection
// cannot be submitted.
type ValidationError struct {
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Reason)
}

var (
	ErrUnknownField    = errors.New("billform: unknown field")
	ErrStaleSelection  = errors.New("billform: contract selection changed while the request was in flight")
	ErrNotSubmitted    = errors.New("billform: bill has not been submitted")
	ErrBillNotEditable = errors.New("billform: bill is no longer a draft")
)

// IsValidation reports whether err is a ValidationError with the given reason.
func IsValidation(err error, reason ValidationReason) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Reason == reason
}
