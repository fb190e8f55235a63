package graphics

import (
	"errors"
	"fmt"
)

// APIError reports a GL error flag raised by an operation.
type APIError struct {
	Op   string
	Code Enum
}

func (e *APIError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("GL error %s (0x%04X)", codeName(e.Code), uint32(e.Code))
	}
	return fmt.Sprintf("%s: GL error %s (0x%04X)", e.Op, codeName(e.Code), uint32(e.Code))
}

// Is matches the sentinels below by code, whatever the operation.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Op == "" && t.Code == e.Code
}

var (
	ErrInvalidEnum                 = &APIError{Code: InvalidEnum}
	ErrInvalidValue                = &APIError{Code: InvalidValue}
	ErrInvalidOperation            = &APIError{Code: InvalidOperation}
	ErrOutOfMemory                 = &APIError{Code: OutOfMemory}
	ErrInvalidFramebufferOperation = &APIError{Code: InvalidFramebufferOperation}
)

var (
	// ErrUnsupportedColorType is returned for atlases that are not 8-bit RGBA.
	ErrUnsupportedColorType = errors.New("unsupported atlas color type")
	ErrMissingAtlas         = errors.New("texture atlas is empty")
	ErrUniformNotFound      = errors.New("uniform not found")
)

func codeName(code Enum) string {
	switch code {
	case NoError:
		return "NO_ERROR"
	case InvalidEnum:
		return "INVALID_ENUM"
	case InvalidValue:
		return "INVALID_VALUE"
	case InvalidOperation:
		return "INVALID_OPERATION"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "UNKNOWN"
	}
}
