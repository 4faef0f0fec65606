package contract

import "errors"

// ErrDuplicate is returned by Create when a unique key (user email) is taken.
var ErrDuplicate = errors.New("duplicate key")
