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

// Package stattestutils provides naive reference statistics against which the
// kernels are tested.
//
// This package is not optimized for performance or numerical accuracy and is
// only intended to be used in tests.
package stattestutils

import "math"

// SampleMean returns the mean of a slice, calculated as the average over the
// values in the slice. It returns NaN for an empty slice.
func SampleMean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64 = 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleVariance returns the variance of a slice, calculated as the sum of
// squares of the distance to the mean of each of the values, divided by the
// number of values minus correction. It returns NaN when that denominator is
// not positive.
func SampleVariance(values []float64, correction float64) float64 {
	dof := float64(len(values)) - correction
	if len(values) == 0 || dof <= 0 {
		return math.NaN()
	}
	mean := SampleMean(values)
	var sumOfSquares float64 = 0.0
	for _, v := range values {
		sumOfSquares += math.Pow(v-mean, 2)
	}
	return sumOfSquares / dof
}

// Reverse returns a reversed copy of values.
func Reverse(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}
	return out
}
