package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a record with the same key exists.
var ErrAlreadyExists = errors.New("already exists")

// ErrAlreadySignedUp is returned when a participant is already enrolled.
var ErrAlreadySignedUp = errors.New("already signed up")

// ErrNotSignedUp is returned when a participant is not enrolled.
var ErrNotSignedUp = errors.New("not signed up")
