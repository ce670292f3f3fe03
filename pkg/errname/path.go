// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package errname

import (
	"fmt"
	"syscall"
)

// PathError is an error number raised while operating on a file.
type PathError struct {
	Path  string
	Entry Entry
}

// NewPathError describes code and attaches path to it.
func NewPathError(code int, path string) error {
	return &PathError{
		Path:  path,
		Entry: Describe(code),
	}
}

func (e *PathError) Error() string {
	if e.Entry.Name == "" {
		return fmt.Sprintf("%s: %s (error code %d)", e.Path, e.Entry.Message, e.Entry.Code)
	}
	return fmt.Sprintf("%s: %s (%s, error code %d)", e.Path, e.Entry.Message, e.Entry.Name, e.Entry.Code)
}

// Unwrap returns the code as a syscall.Errno so errors.Is matches the fs
// sentinels (fs.ErrNotExist and friends) on platforms that map them.
func (e *PathError) Unwrap() error {
	return syscall.Errno(e.Entry.Code)
}
