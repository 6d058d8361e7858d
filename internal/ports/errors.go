package ports

import "errors"

// ErrDuplicateID is returned by repositories when a record with the same
// identifier already exists. Handlers map it to 409 Conflict.
var ErrDuplicateID = errors.New("duplicate id")
