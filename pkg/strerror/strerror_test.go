// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package strerror

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallback(t *testing.T) {
	assert.Equal(t, "Unknown error, strerror_r failed. error number 99999", Fallback(99999))
	assert.Equal(t, "Unknown error, strerror_r failed. error number -3", Fallback(-3))
}

func TestIsFallback(t *testing.T) {
	var tests = []struct {
		msg string
		ret bool
	}{
		{Fallback(0), true},
		{Fallback(99999), true},
		{Fallback(-1), true},
		{"No such file or directory", false},
		{"Unknown error, strerror_r failed. error number ", false},
		{"Unknown error, strerror_r failed. error number abc", false},
		{"", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.ret, IsFallback(test.msg), "message %q", test.msg)
	}
}

func TestConventionString(t *testing.T) {
	assert.Equal(t, "status-code", StatusCode.String())
	assert.Equal(t, "direct-return", DirectReturn.String())
	assert.Equal(t, "unknown(7)", Convention(7).String())
}

func failingPrimitive(_ int, _ []byte) error {
	return errors.New("lookup failed")
}

func TestFromStatusFailure(t *testing.T) {
	var buf [BufferSize]byte
	msg := fromStatus(99999, buf[:], failingPrimitive, cString)
	assert.Equal(t, "Unknown error, strerror_r failed. error number 99999", msg)
}

func TestFromStatusSuccess(t *testing.T) {
	var buf [BufferSize]byte
	msg := fromStatus(2, buf[:], func(code int, buf []byte) error {
		assert.Equal(t, 2, code)
		copy(buf, "No such file or directory\x00garbage")
		return nil
	}, cString)
	assert.Equal(t, "No such file or directory", msg)
}

func TestFromStatusTrimsLineEnd(t *testing.T) {
	var buf [BufferSize]uint16
	msg := fromStatus(5, buf[:], func(_ int, buf []uint16) error {
		copy(buf, utf16.Encode([]rune("Access is denied.\r\n")))
		return nil
	}, decodeUTF16)
	assert.Equal(t, "Access is denied.", msg)
}

func TestFromStatusTruncates(t *testing.T) {
	long := strings.Repeat("x", 4*BufferSize)

	var buf [BufferSize]byte
	msg := fromStatus(1, buf[:], func(_ int, buf []byte) error {
		require.Len(t, buf, BufferSize)
		copy(buf, long)
		return nil
	}, cString)
	assert.Len(t, msg, BufferSize)
	assert.Equal(t, long[:BufferSize], msg)
}

func TestCString(t *testing.T) {
	assert.Equal(t, "abc", cString([]byte("abc\x00def")))
	assert.Equal(t, "abc", cString([]byte("abc")))
	assert.Equal(t, "", cString([]byte{0, 'a'}))
	assert.Equal(t, "", cString(nil))
}

func TestLookup(t *testing.T) {
	for _, code := range []int{1, 2, 5, 13} {
		msg := Lookup(code)
		assert.NotEmpty(t, msg, "code %d", code)
		assert.False(t, IsFallback(msg), "code %d: %q", code, msg)
		assert.Equal(t, msg, Lookup(code), "code %d", code)
	}
}

func TestLookupConcurrent(t *testing.T) {
	want := Lookup(2)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Lookup(2)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func decodeUTF16(buf []uint16) string {
	for i, v := range buf {
		if v == 0 {
			buf = buf[:i]
			break
		}
	}
	return string(utf16.Decode(buf))
}
