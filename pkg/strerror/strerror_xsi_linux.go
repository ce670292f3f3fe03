// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

//go:build cgo && xsi_strerror

package strerror

/* force the XSI-compliant strerror_r() */

// #define _POSIX_C_SOURCE 200112L
// #undef _GNU_SOURCE
// #include <string.h>
import "C"

import (
	"syscall"
	"unsafe"
)

const active = StatusCode

func lookup(code int) string {
	var buf [BufferSize]byte
	return fromStatus(code, buf[:], xsiStrerror, cString)
}

// xsiStrerror returns the status of strerror_r as an error. Old glibc
// returns -1 and sets errno, newer ones return the error number.
func xsiStrerror(code int, buf []byte) error {
	ret := C.strerror_r(C.int(code), (*C.char)(unsafe.Pointer(&buf[0])), C.size_t(len(buf)))
	if ret != 0 {
		return syscall.Errno(ret)
	}
	return nil
}
