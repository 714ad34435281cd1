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

// Mean returns the arithmetic mean of n strided elements of x, or NaN if n is
// not positive.
func Mean(n int, x array.Float64Array, stride int) float64 {
	return MeanNDArray(n, x, stride, array.StrideToOffset(n, stride))
}

// MeanNDArray is like Mean but reads the first element at offset.
func MeanNDArray(n int, x array.Float64Array, stride, offset int) float64 {
	if n <= 0 {
		return math.NaN()
	}
	if n == 1 || stride == 0 {
		return x.Get(offset)
	}
	if buf, ok := array.IsDense(x); ok {
		mu, _ := welfordDense(n, buf, stride, offset)
		return mu
	}
	mu, _ := welfordAccessor(n, x, stride, offset)
	return mu
}
