// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package strerror

import (
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/windows"
)

func TestStatusCodeActive(t *testing.T) {
	assert.Equal(t, StatusCode, Active())
}

func TestWindowsMessage(t *testing.T) {
	s1 := Lookup(int(syscall.ERROR_ACCESS_DENIED))
	assert.True(t, strings.HasPrefix(s1, "Access is denied."), s1)

	s2 := Lookup(int(syscall.ERROR_INSUFFICIENT_BUFFER))
	assert.True(t, strings.HasPrefix(s2, "The data area passed to a system call is too small."), s2)
}

func TestWindowsMessageFailure(t *testing.T) {
	orig := formatMessage
	t.Cleanup(func() { formatMessage = orig })

	formatMessage = func(uint32, uintptr, uint32, uint32, []uint16, *byte) (uint32, error) {
		return 0, windows.ERROR_INSUFFICIENT_BUFFER
	}
	assert.Equal(t, "Unknown error, strerror_r failed. error number 99999", Lookup(99999))
}
