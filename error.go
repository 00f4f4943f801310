package revolver

import "errors"

// ErrEmpty indicates an operation needed a current element but the revolver is empty.
var ErrEmpty = errors.New("revolver: the list contains no elements")
