package repository

import "errors"

var (
	ErrCourseNotFound = errors.New("course record not found")
	ErrTaskNotFound   = errors.New("task not found in course record")

	// ErrNotOwner means the record provably belongs to someone else:
	// it carries a different, non-empty owner id than the caller's.
	ErrNotOwner = errors.New("course record owned by another user")
)
