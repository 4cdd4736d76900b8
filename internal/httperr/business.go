package httperr

import "errors"

// Code classifies a store or domain failure that handlers answer with a 4xx.
type Code string

const (
	CodeNotFound   Code = "not_found"
	CodeEmailTaken Code = "email_taken"
)

// BusinessError carries a Code and, when the failure came from the driver,
// the original error.
type BusinessError struct {
	Code Code
	Err  error
}

func (e *BusinessError) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Err.Error()
}

func (e *BusinessError) Unwrap() error { return e.Err }

func ErrBusiness(code Code) error {
	return &BusinessError{Code: code}
}

// Wrap tags cause with code. A nil cause yields a plain business error.
func Wrap(code Code, cause error) error {
	return &BusinessError{Code: code, Err: cause}
}

// CodeOf returns the code of the outermost BusinessError in err's chain.
func CodeOf(err error) (Code, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

func IsBusiness(err error, code Code) bool {
	got, ok := CodeOf(err)
	return ok && got == code
}
