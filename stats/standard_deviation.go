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

// Stdev returns the standard deviation of n strided elements of x, i.e. the
// square root of Variance with the same arguments.
func Stdev(n int, correction float64, x array.Float64Array, stride int) float64 {
	return math.Sqrt(Variance(n, correction, x, stride))
}

// StdevNDArray is like Stdev but reads the first element at offset.
func StdevNDArray(n int, correction float64, x array.Float64Array, stride, offset int) float64 {
	return math.Sqrt(VarianceNDArray(n, correction, x, stride, offset))
}
