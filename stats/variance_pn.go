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

package stats

import (
	"math"

	"github.com/google/strided-stats/array"
)

// VariancePN computes the variance of n strided elements of x with a
// two-pass algorithm: the mean is computed first, then the corrected sum of
// squared deviations from it.
//
// It reads every element twice and is slightly more accurate than Variance
// for data with a large mean relative to its spread.
func VariancePN(n int, correction float64, x array.Float64Array, stride int) float64 {
	return VariancePNNDArray(n, correction, x, stride, array.StrideToOffset(n, stride))
}

// VariancePNNDArray is like VariancePN but reads the first element at offset.
func VariancePNNDArray(n int, correction float64, x array.Float64Array, stride, offset int) float64 {
	dof := float64(n) - correction
	if n <= 0 || dof <= 0 {
		return math.NaN()
	}
	if n == 1 || stride == 0 {
		return 0
	}
	mu := MeanNDArray(n, x, stride, offset)

	// The second term compensates for rounding error in mu.
	var m2, m float64
	ix := offset
	for i := 0; i < n; i++ {
		d := x.Get(ix) - mu
		m2 += d * d
		m += d
		ix += stride
	}
	return (m2 - (m/float64(n))*m) / dof
}
