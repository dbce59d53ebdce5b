package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is is errors.Is re-exported so callers need only this package
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of err, CodeOK for nil and CodeInternal for plain errors
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the meta of the outermost *Error in the chain
func GetMeta(err error) map[string]any {
	var e *Error
	if err != nil && errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// GetMessage returns the player-facing message of err
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func IsNotFound(err error) bool           { return GetCode(err) == CodeNotFound }
func IsInvalidArgument(err error) bool    { return GetCode(err) == CodeInvalidArgument }
func IsAlreadyExists(err error) bool      { return GetCode(err) == CodeAlreadyExists }
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }
func IsOutOfRange(err error) bool         { return GetCode(err) == CodeOutOfRange }
func IsUnavailable(err error) bool        { return GetCode(err) == CodeUnavailable }
func IsDataLoss(err error) bool           { return GetCode(err) == CodeDataLoss }
func IsCanceled(err error) bool           { return GetCode(err) == CodeCanceled }
