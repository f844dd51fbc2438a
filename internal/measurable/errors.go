package measurable

import "errors"

// UnitError reports a rejected value or unit. Its message is meant for
// end users.
type UnitError struct {
	msg string
	err error
}

func (e *UnitError) Error() string {
	return e.msg
}

func (e *UnitError) Unwrap() error {
	return e.err
}

// Construction errors. Messages are part of the public contract.
var (
	ErrNilValue   = &UnitError{msg: "Unit value cannot be nil"}
	ErrBlankValue = &UnitError{msg: "Unit value cannot be blank"}
	ErrBlankUnit  = &UnitError{msg: "Unit cannot be blank"}
)

// Comparison and catalog errors
var (
	ErrIncompatibleKind = errors.New("cannot compare measurables of different kinds")
	ErrNilMeasurable    = errors.New("measurable cannot be nil")
	ErrNonZeroLiteral   = errors.New("only zero can be compared without a unit")
	ErrUnknownKind      = errors.New("unknown quantity kind")
	ErrDuplicateKind    = errors.New("quantity kind already registered")
	ErrBlankKindName    = errors.New("quantity kind name cannot be blank")
	ErrDefinitionPanic  = errors.New("unit definition panicked")
)
