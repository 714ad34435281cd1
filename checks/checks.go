//
// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package checks contains argument checks for the strided statistics kernels.
package checks

import (
	"fmt"
	"math"

	log "github.com/golang/glog"
)

// CheckLength returns an error if n is negative.
func CheckLength(n int) error {
	if n < 0 {
		return fmt.Errorf("Length is %d, must be nonnegative", n)
	}
	return nil
}

// CheckCorrection returns an error if correction is negative, NaN or ±∞.
// A correction that leaves no degrees of freedom for n samples is legal but
// produces a NaN result, so it is only logged.
func CheckCorrection(correction float64, n int) error {
	if math.IsNaN(correction) {
		return fmt.Errorf("Correction cannot be NaN")
	}
	if math.IsInf(correction, 0) {
		return fmt.Errorf("Correction is %f, must be finite", correction)
	}
	if correction < 0 {
		return fmt.Errorf("Correction is %f, must be nonnegative", correction)
	}
	if n > 0 && float64(n)-correction <= 0 {
		log.Warningf("Correction (%f) leaves no degrees of freedom for %d samples: the result will be NaN", correction, n)
	}
	return nil
}

// CheckStride returns an error if stride is zero.
func CheckStride(stride int) error {
	if stride == 0 {
		return fmt.Errorf("Stride must be nonzero")
	}
	return nil
}

// CheckOffset returns an error if offset is negative.
func CheckOffset(offset int) error {
	if offset < 0 {
		return fmt.Errorf("Offset is %d, must be nonnegative", offset)
	}
	return nil
}

// CheckIndexRange returns an error if any of the n indices offset,
// offset+stride, …, offset+(n-1)*stride falls outside [0, length).
// The bound is checked by division, so views whose last index would overflow
// an int are reported as out of range.
func CheckIndexRange(n, stride, offset, length int) error {
	if n <= 0 {
		return nil
	}
	if offset < 0 || offset >= length {
		return fmt.Errorf("Offset is %d, must lie within [0, %d)", offset, length)
	}
	if n == 1 || stride == 0 {
		return nil
	}
	// Number of whole strides that fit between offset and the end of the
	// array in the direction of travel.
	var steps int
	if stride > 0 {
		steps = (length - 1 - offset) / stride
	} else {
		steps = offset / -stride
	}
	if n-1 > steps {
		return fmt.Errorf("%d elements with stride %d and offset %d do not fit within [0, %d)", n, stride, offset, length)
	}
	return nil
}
