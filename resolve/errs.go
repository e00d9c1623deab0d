package resolve

import "errors"

var (
	ErrBool    = errors.New("invalid bool")
	ErrInt     = errors.New("invalid int")
	ErrFloat   = errors.New("invalid float")
	ErrBinary  = errors.New("invalid base64 binary")
	ErrConvert = errors.New("conversion not possible")
)
