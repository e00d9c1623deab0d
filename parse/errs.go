package parse

import "errors"

var (
	ErrKeyTag          = errors.New("properties on mapping key")
	ErrDuplicateKey    = errors.New("duplicate mapping key")
	ErrUndefinedAlias  = errors.New("undefined alias")
	ErrDuplicateAnchor = errors.New("duplicate anchor")
	ErrAliasProperties = errors.New("properties on alias")
)
