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

// Package array provides the minimal indexed-read capability consumed by the
// strided statistics kernels.
//
// A kernel accepts any Float64Array. Dense buffers (Float64s) are read
// directly; anything else, such as an Accessor or a gonum vector, is read
// element by element through Get.
package array

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Float64Array is a read-only, randomly indexable sequence of float64 values.
//
// The method set matches github.com/grd/stat's Interface, so its slice types
// can be passed to the kernels unchanged.
type Float64Array interface {
	Len() int
	Get(i int) float64
}

// Float64s is a dense buffer of float64 values.
type Float64s []float64

// Len returns the number of elements in the buffer.
func (f Float64s) Len() int { return len(f) }

// Get returns the element at index i.
func (f Float64s) Get(i int) float64 { return f[i] }

// Accessor is an indirect array whose elements are produced by a getter
// function rather than stored in a contiguous buffer.
type Accessor struct {
	n   int
	get func(i int) float64
}

// NewAccessor returns an Accessor of length n backed by get. get is only
// called with indices in [0, n).
func NewAccessor(n int, get func(i int) float64) *Accessor {
	if n < 0 {
		n = 0
	}
	return &Accessor{n: n, get: get}
}

// Len returns the number of elements exposed by the accessor.
func (a *Accessor) Len() int { return a.n }

// Get returns the element at index i. It panics if i is out of range, like
// ordinary slice indexing.
func (a *Accessor) Get(i int) float64 {
	if i < 0 || i >= a.n {
		panic(indexOutOfRange(i, a.n))
	}
	return a.get(i)
}

// FromVector adapts a gonum vector to a Float64Array without copying.
func FromVector(v mat.Vector) *Accessor {
	return NewAccessor(v.Len(), v.AtVec)
}

// IsDense reports whether x is backed by a contiguous []float64 and returns
// the buffer if so.
func IsDense(x Float64Array) ([]float64, bool) {
	switch d := x.(type) {
	case Float64s:
		return d, true
	case *Float64s:
		if d == nil {
			return nil, false
		}
		return *d, true
	}
	return nil, false
}

// IsNil reports whether x is nil or a nil pointer to one of this package's
// array types. Calling Len on such a value panics.
func IsNil(x Float64Array) bool {
	switch d := x.(type) {
	case nil:
		return true
	case *Float64s:
		return d == nil
	case *Accessor:
		return d == nil
	}
	return false
}

// StrideToOffset returns the index of the first logical element of an
// n-element strided view. For a negative stride, the view starts at the
// last logical element so that traversal runs backwards through the buffer.
func StrideToOffset(n, stride int) int {
	if stride > 0 || n <= 0 {
		return 0
	}
	return (1 - n) * stride
}

func indexOutOfRange(i, n int) string {
	return fmt.Sprintf("array: index %d out of range [0, %d)", i, n)
}
