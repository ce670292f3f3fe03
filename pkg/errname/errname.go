// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package errname

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cilium/strerror/pkg/strerror"
)

// MaxRange bounds the number of entries a single Range call returns.
const MaxRange = 1 << 16

var (
	ErrUnknownName  = errors.New("unknown error name")
	ErrInvalidRange = errors.New("invalid error number range")
)

// Entry describes one error number.
type Entry struct {
	Code    int    `json:"code" yaml:"code"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// Name returns the symbolic name of code (e.g. "ENOENT"), or an empty string
// if the platform has no name for it.
func Name(code int) string {
	if code <= 0 {
		return ""
	}
	return name(code)
}

// MaxCode returns the highest error number that has a symbolic name, or 0
// if the platform has no name table.
func MaxCode() int {
	return maxCode()
}

// HasNames reports whether the platform has a symbolic name table.
func HasNames() bool {
	return MaxCode() > 0
}

// Parse converts s to an error number. It accepts a number in any base
// strconv.ParseInt understands with base 0 ("2", "0x2"), a negated number
// as returned by kernel interfaces ("-2"), or a symbolic name in any case
// ("ENOENT", "enoent").
func Parse(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrUnknownName)
	}

	n, err := strconv.ParseInt(s, 0, 32)
	switch {
	case err == nil:
		if n < 0 {
			n = -n
		}
		return int(n), nil
	case errors.Is(err, strconv.ErrRange):
		return 0, fmt.Errorf("%w: %w", ErrUnknownName, err)
	}

	if code := value(strings.ToUpper(s)); code > 0 {
		return code, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownName, s)
}

// Describe returns the name and message of code.
func Describe(code int) Entry {
	return Entry{
		Code:    code,
		Name:    Name(code),
		Message: strerror.Lookup(code),
	}
}

// Range describes every error number in [from, to]. If knownOnly is set,
// numbers without a symbolic name are skipped.
func Range(from, to int, knownOnly bool) ([]Entry, error) {
	if from > to {
		return nil, fmt.Errorf("%w: from %d is greater than to %d", ErrInvalidRange, from, to)
	}
	// to-from overflows int for ranges spanning most of it, uint does not
	if uint(to)-uint(from) >= MaxRange {
		return nil, fmt.Errorf("%w: more than %d numbers requested", ErrInvalidRange, MaxRange)
	}

	// counting up to to would wrap when to is math.MaxInt
	width := to - from
	ret := []Entry{}
	for i := 0; i <= width; i++ {
		e := Describe(from + i)
		if knownOnly && e.Name == "" {
			continue
		}
		ret = append(ret, e)
	}
	return ret, nil
}
