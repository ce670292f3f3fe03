// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

//go:build !unix

package errname

// No symbolic name table outside of unix.

func name(int) string {
	return ""
}

func value(string) int {
	return 0
}

func maxCode() int {
	return 0
}
