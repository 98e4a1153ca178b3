package errors

import "github.com/nutrivitta/storefront/constant"

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// ErrorType exposes the taxonomy value so callers can branch on the class
// of failure (retryable gateway errors vs user-correctable ones).
func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

// Is lets errors.Is match two CustomErrors of the same taxonomy type.
func (c CustomError) Is(target error) bool {
	other, ok := target.(CustomError)
	return ok && other.errType == c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}
