// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

//go:build !unix && !windows && !js && !wasip1

package strerror

// There is no error message primitive for this target. The undefined name
// below stops the build here with a readable error.
var _ = strerrorNotSupportedOnThisPlatform
