package service

import "errors"

// ErrNotFound is returned when no item matches both the item ID and the list
// ID. A wrong list and a missing item are deliberately indistinguishable.
var ErrNotFound = errors.New("item not found")

// InvalidArgumentError reports rejected input: blank name, negative quantity,
// over-length fields. The boundary maps it to a 400.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return e.Msg
}

func invalidArgument(msg string) error {
	return &InvalidArgumentError{Msg: msg}
}
