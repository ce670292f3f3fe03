// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package logfields

const (
	// Code is an operating system error number
	Code = "code"

	// Convention is the compiled in message lookup convention
	Convention = "convention"
)
