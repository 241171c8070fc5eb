package service

import "errors"

// ErrNotFound marks a missing referenced entity (learner, part, tag).
// Handlers map it to 404; wrapped messages name the entity.
var ErrNotFound = errors.New("not found")
