// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package strerror

import (
	"golang.org/x/sys/windows"
)

const active = StatusCode

// formatMessage is swapped out by tests to force failures.
var formatMessage = windows.FormatMessage

func lookup(code int) string {
	var buf [BufferSize]uint16
	return fromStatus(code, buf[:], systemMessage, windows.UTF16ToString)
}

func systemMessage(code int, buf []uint16) error {
	const flags uint32 = windows.FORMAT_MESSAGE_FROM_SYSTEM | windows.FORMAT_MESSAGE_IGNORE_INSERTS
	_, err := formatMessage(flags, 0, uint32(code), 0, buf, nil)
	return err
}
