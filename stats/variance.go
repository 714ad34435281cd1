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

// Package stats provides strided statistical reductions over float64 arrays.
//
// Every kernel comes in two forms. The convenience form takes a length, a
// stride and the array, and starts at the first logical element (the last
// buffer position for a negative stride). The NDArray form additionally takes
// an explicit starting offset into the array, which allows sub-range and
// reverse traversal without copying.
//
// Kernels never return errors: an empty view or a correction that leaves no
// degrees of freedom yields NaN. Indices are not validated, so reading outside
// the array panics like slice indexing does. The Checked variants validate
// their arguments first and report problems as errors.
package stats

import (
	"fmt"
	"math"

	"github.com/google/strided-stats/array"
	"github.com/google/strided-stats/checks"
)

// Variance computes the variance of n strided elements of x using Welford's
// algorithm.
//
// correction is the degrees-of-freedom adjustment: the accumulated sum of
// squared deviations is divided by n - correction. Use 1 for the unbiased
// sample variance and 0 for the population variance.
func Variance(n int, correction float64, x array.Float64Array, stride int) float64 {
	return VarianceNDArray(n, correction, x, stride, array.StrideToOffset(n, stride))
}

// VarianceNDArray is like Variance but reads the first element at offset.
func VarianceNDArray(n int, correction float64, x array.Float64Array, stride, offset int) float64 {
	dof := float64(n) - correction
	if n <= 0 || dof <= 0 {
		return math.NaN()
	}
	if n == 1 || stride == 0 {
		return 0
	}
	var m2 float64
	if buf, ok := array.IsDense(x); ok {
		_, m2 = welfordDense(n, buf, stride, offset)
	} else {
		_, m2 = welfordAccessor(n, x, stride, offset)
	}
	return m2 / dof
}

// welfordDense returns the running mean and sum of squared deviations of n
// strided elements of buf.
func welfordDense(n int, buf []float64, stride, offset int) (mu, m2 float64) {
	ix := offset
	for i := 0; i < n; i++ {
		v := buf[ix]
		delta := v - mu
		mu += delta / float64(i+1)
		m2 += delta * (v - mu)
		ix += stride
	}
	return mu, m2
}

func welfordAccessor(n int, x array.Float64Array, stride, offset int) (mu, m2 float64) {
	ix := offset
	for i := 0; i < n; i++ {
		v := x.Get(ix)
		delta := v - mu
		mu += delta / float64(i+1)
		m2 += delta * (v - mu)
		ix += stride
	}
	return mu, m2
}

// VarianceChecked is like Variance but returns an error instead of NaN or a
// panic when the arguments are invalid.
func VarianceChecked(n int, correction float64, x array.Float64Array, stride int) (float64, error) {
	offset := array.StrideToOffset(n, stride)
	if err := CheckNDArray(n, correction, x, stride, offset); err != nil {
		return 0, fmt.Errorf("VarianceChecked: %w", err)
	}
	return VarianceNDArray(n, correction, x, stride, offset), nil
}

// VarianceNDArrayChecked is like VarianceNDArray but validates its arguments.
func VarianceNDArrayChecked(n int, correction float64, x array.Float64Array, stride, offset int) (float64, error) {
	if err := CheckNDArray(n, correction, x, stride, offset); err != nil {
		return 0, fmt.Errorf("VarianceNDArrayChecked: %w", err)
	}
	return VarianceNDArray(n, correction, x, stride, offset), nil
}

// CheckNDArray returns an error if the arguments of an NDArray kernel are
// invalid or would make it read outside x. A correction that leaves no
// degrees of freedom is not an error.
func CheckNDArray(n int, correction float64, x array.Float64Array, stride, offset int) error {
	if err := checks.CheckCorrection(correction, n); err != nil {
		return err
	}
	return checkView(n, x, stride, offset)
}

// checkView returns an error if the n-element view of x described by stride
// and offset cannot be read.
func checkView(n int, x array.Float64Array, stride, offset int) error {
	if array.IsNil(x) {
		return fmt.Errorf("array must not be nil")
	}
	if err := checks.CheckLength(n); err != nil {
		return err
	}
	if err := checks.CheckStride(stride); err != nil {
		return err
	}
	if err := checks.CheckOffset(offset); err != nil {
		return err
	}
	return checks.CheckIndexRange(n, stride, offset, x.Len())
}
