package navigation

import (
	"errors"
	"fmt"
)

var (
	ErrPathRequired   = errors.New("navigation: path is required")
	ErrPathInvalid    = errors.New("navigation: path is invalid")
	ErrUnresolvedPath = errors.New("navigation: path does not resolve")
)

// UnresolvedPathError reports a path that matched no visible node. A page that
// does not exist and a page hidden from the viewer produce the same error so
// responses never leak the existence of restricted content.
type UnresolvedPathError struct {
	Path string
}

func (e *UnresolvedPathError) Error() string {
	if e == nil || e.Path == "" {
		return ErrUnresolvedPath.Error()
	}
	return fmt.Sprintf("%s: %s", ErrUnresolvedPath.Error(), e.Path)
}

func (e *UnresolvedPathError) Unwrap() error {
	return ErrUnresolvedPath
}
