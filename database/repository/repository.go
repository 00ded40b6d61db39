// Package repository defines the error taxonomy shared by every store
// backend. Repositories wrap driver failures into these types so services
// and handlers can branch on the kind of failure without knowing which
// backend (Mongo or Firestore) is wired in.
package repository

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a referenced document is absent.
type NotFoundError struct {
	Collection string
	Key        string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s/%s not found", e.Collection, e.Key)
}

// IsNotFound reports whether err (or anything it wraps) is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// StoreReadError reports that an underlying store read failed. Distinct from
// NotFoundError: absence is a valid outcome, a failed read is not.
type StoreReadError struct {
	Collection string
	Err        error
}

func (e *StoreReadError) Error() string {
	return fmt.Sprintf("store read on %s failed: %v", e.Collection, e.Err)
}

func (e *StoreReadError) Unwrap() error { return e.Err }

// StoreWriteError reports that an underlying store write failed.
type StoreWriteError struct {
	Collection string
	Err        error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("store write on %s failed: %v", e.Collection, e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }
