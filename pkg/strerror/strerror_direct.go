// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

//go:build (unix && !(linux && cgo && xsi_strerror)) || js || wasip1

package strerror

import "syscall"

const active = DirectReturn

// syscall.Errno.Error reads from a static table and formats unknown numbers
// as "errno N", so there is no failure to report.
func lookup(code int) string {
	return syscall.Errno(code).Error()
}
