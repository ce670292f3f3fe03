// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

//go:build unix

package errname

import (
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// maxErrno is above the highest errno of every supported unix.
const maxErrno = 4096

func name(code int) string {
	return unix.ErrnoName(syscall.Errno(code))
}

type nameTable struct {
	values map[string]int
	max    int
}

// ErrnoName knows one name per number, so aliases such as EWOULDBLOCK do not
// resolve.
var getTable = sync.OnceValue(func() nameTable {
	t := nameTable{values: map[string]int{}}
	for code := 1; code < maxErrno; code++ {
		n := name(code)
		if n == "" {
			continue
		}
		t.values[n] = code
		t.max = code
	}
	return t
})

func value(name string) int {
	return getTable().values[name]
}

func maxCode() int {
	return getTable().max
}
