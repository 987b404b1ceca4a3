package ezid

import "fmt"

// NotFoundError reports an identifier unknown to the registry.
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("identifier %s not found", e.Identifier)
}

// Is enables errors.Is matching on NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// RequestError reports a generic registry error or a response that violated
// the expected line protocol. Message carries the registry's text where
// available.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return "registry request failed: " + e.Message
}

// Is enables errors.Is matching on RequestError.
func (e *RequestError) Is(target error) bool {
	_, ok := target.(*RequestError)
	return ok
}

// MintError reports a mint response that carried no error line but also no
// usable success payload.
type MintError struct {
	Message string
}

func (e *MintError) Error() string {
	return "mint failed: " + e.Message
}

// Is enables errors.Is matching on MintError.
func (e *MintError) Is(target error) bool {
	_, ok := target.(*MintError)
	return ok
}

// UpdateError reports an update response that carried no error line but also
// no success line.
type UpdateError struct {
	Message string
}

func (e *UpdateError) Error() string {
	return "update failed: " + e.Message
}

// Is enables errors.Is matching on UpdateError.
func (e *UpdateError) Is(target error) bool {
	_, ok := target.(*UpdateError)
	return ok
}
