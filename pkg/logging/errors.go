// kbgen/pkg/logging/errors.go

package logging

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

type ErrorType string

const (
	ErrorTypeConfig   ErrorType = "CONFIG"
	ErrorTypeEncode   ErrorType = "ENCODE"
	ErrorTypeValidate ErrorType = "VALIDATE"
	ErrorTypeStore    ErrorType = "STORE"
	ErrorTypeQuery    ErrorType = "QUERY"
	ErrorTypeOutput   ErrorType = "OUTPUT"
)

type KBError struct {
	Type    ErrorType
	Message string
	Err     error
	Fields  map[string]interface{}
}

func (e *KBError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *KBError) Unwrap() error {
	return e.Err
}

func NewError(errType ErrorType, message string, err error, fields map[string]interface{}) *KBError {
	return &KBError{
		Type:    errType,
		Message: message,
		Err:     err,
		Fields:  fields,
	}
}

// IsType reports whether any KBError in err's chain has the given type.
func IsType(err error, errType ErrorType) bool {
	var kbErr *KBError
	if errors.As(err, &kbErr) {
		return kbErr.Type == errType
	}
	return false
}

func LogError(logger zerolog.Logger, err error) {
	var kbErr *KBError
	if !errors.As(err, &kbErr) {
		logger.Error().Err(err).Msg(err.Error())
		return
	}

	event := logger.Error().Err(kbErr.Err).
		Str("error_type", string(kbErr.Type)).
		Str("message", kbErr.Message)

	for k, v := range kbErr.Fields {
		event = event.Interface(k, v)
	}

	event.Msg(kbErr.Message)
}
