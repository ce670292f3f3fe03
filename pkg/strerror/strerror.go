// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

// Package strerror turns operating system error numbers into messages.
//
// The platform primitive that produces the message comes in one of two
// shapes, and which one applies is decided at build time by the build
// constraints of the files in this package:
//
//   - status-code: the primitive writes the message into a buffer owned by
//     the caller and reports success or failure (windows FormatMessage, XSI
//     strerror_r behind the xsi_strerror tag).
//   - direct-return: the primitive hands the message text back itself (the
//     syscall.Errno table on unix, js and wasip1).
//
// Every convention file declares the constant active. A target that selects
// no file, or more than one, does not compile.
package strerror

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// BufferSize is the capacity of the scratch buffer used by the status-code
// convention. Longer messages are truncated to it.
const BufferSize = 512

const fallbackPrefix = "Unknown error, strerror_r failed. error number "

// Convention is the calling convention of the platform lookup primitive.
type Convention int

const (
	StatusCode Convention = iota + 1
	DirectReturn
)

// active must be StatusCode or DirectReturn, otherwise one of the constant
// conversions below overflows and the package does not compile.
const (
	_ = uint(active - StatusCode)
	_ = uint(DirectReturn - active)
)

func (c Convention) String() string {
	switch c {
	case StatusCode:
		return "status-code"
	case DirectReturn:
		return "direct-return"
	}
	return fmt.Sprintf("unknown(%d)", int(c))
}

// Active returns the convention compiled into this binary.
func Active() Convention {
	return active
}

// Lookup returns a human readable description of the error number code.
//
// It never fails. When the status-code primitive reports an error the result
// is Fallback(code). Lookup holds no state and is safe for concurrent use.
func Lookup(code int) string {
	return lookup(code)
}

// Fallback is the message returned when the platform lookup itself fails.
func Fallback(code int) string {
	return fmt.Sprintf("%s%d", fallbackPrefix, code)
}

// IsFallback reports whether msg was produced by Fallback.
func IsFallback(msg string) bool {
	rest, ok := strings.CutPrefix(msg, fallbackPrefix)
	if !ok {
		return false
	}
	_, err := strconv.Atoi(rest)
	return err == nil
}

// statusFunc fills buf with the message for code. A non-nil error means the
// primitive reported failure and the buffer content is meaningless.
type statusFunc[T byte | uint16] func(code int, buf []T) error

// fromStatus runs a status-code primitive against buf. The primitive only
// ever sees buf, so it can not write past BufferSize elements.
func fromStatus[T byte | uint16](code int, buf []T, call statusFunc[T], decode func([]T) string) string {
	if err := call(code, buf); err != nil {
		return Fallback(code)
	}
	return strings.TrimRight(decode(buf), " \r\n")
}

// cString decodes a NUL terminated byte buffer. A buffer without a NUL is
// taken whole.
func cString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}
