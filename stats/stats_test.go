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

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/strided-stats/array"
)

// This file contains values and helpers shared by the kernel tests.

var (
	tenten = math.Pow10(-10)
	nan    = math.NaN()
)

// The kernels' call forms are fixed; a change to either signature must fail
// to compile here.
var (
	_ func(int, float64, array.Float64Array, int) float64      = Variance
	_ func(int, float64, array.Float64Array, int, int) float64 = VarianceNDArray
	_ func(int, float64, array.Float64Array, int) float64      = VariancePN
	_ func(int, float64, array.Float64Array, int, int) float64 = VariancePNNDArray
	_ func(int, float64, array.Float64Array, int) float64      = Stdev
	_ func(int, float64, array.Float64Array, int, int) float64 = StdevNDArray
	_ func(int, array.Float64Array, int) float64               = Mean
	_ func(int, array.Float64Array, int, int) float64          = MeanNDArray

	_ func(int, float64, array.Float64Array, int) (float64, error)      = VarianceChecked
	_ func(int, float64, array.Float64Array, int, int) (float64, error) = VarianceNDArrayChecked
)

// ApproxEqual reports whether x and y agree to within a relative error of
// 1e-12 or an absolute error of 1e-10. Two NaNs are considered equal.
func ApproxEqual(x, y float64) bool {
	return cmp.Equal(x, y, cmpopts.EquateApprox(1e-12, tenten), cmpopts.EquateNaNs())
}

// accessorOf wraps buf in an indirect array so that tests exercise the
// non-dense code path.
func accessorOf(buf []float64) *array.Accessor {
	return array.NewAccessor(len(buf), func(i int) float64 { return buf[i] })
}

func approxOpt(fraction float64) cmp.Option {
	return cmp.Options{cmpopts.EquateApprox(fraction, tenten), cmpopts.EquateNaNs()}
}
