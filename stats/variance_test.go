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
	"testing"

	"github.com/google/strided-stats/array"
	"github.com/google/strided-stats/rand"
	"github.com/google/strided-stats/stattestutils"
	"github.com/grd/stat"
	gonumstat "gonum.org/v1/gonum/stat"
)

func TestVariance(t *testing.T) {
	x := array.Float64s{1, -2, -4, 5, 0, 3}
	for _, tc := range []struct {
		desc       string
		n          int
		correction float64
		want       float64
	}{
		{"sample variance", 6, 1, 10.7},
		{"population variance", 6, 0, 53.5 / 6},
		{"fractional correction", 6, 0.5, 53.5 / 5.5},
		{"first element only", 1, 0, 0},
		{"zero length", 0, 1, nan},
		{"negative length", -1, 1, nan},
		{"correction equal to length", 6, 6, nan},
		{"correction larger than length", 1, 1, nan},
	} {
		if got := Variance(tc.n, tc.correction, x, 1); !ApproxEqual(got, tc.want) {
			t.Errorf("Variance: when %s got %f, want %f", tc.desc, got, tc.want)
		}
		if got := Variance(tc.n, tc.correction, accessorOf(x), 1); !ApproxEqual(got, tc.want) {
			t.Errorf("Variance with accessor: when %s got %f, want %f", tc.desc, got, tc.want)
		}
	}
}

func TestVarianceStrided(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		x      array.Float64s
		n      int
		stride int
		want   float64
	}{
		// Elements 1, 2, -2, 4.
		{"stride 2", array.Float64s{1, 2, 2, -7, -2, 3, 4, 2}, 4, 2, 6.25},
		// Elements 4, -2, 2, 1.
		{"stride -2", array.Float64s{1, 2, 2, -7, -2, 3, 4, 2}, 4, -2, 6.25},
		// Elements 3, 2, 1.
		{"stride -1", array.Float64s{1, 2, 3}, 3, -1, 1},
		{"stride 0", array.Float64s{1, 2, 3}, 3, 0, 0},
	} {
		if got := Variance(tc.n, 1, tc.x, tc.stride); !ApproxEqual(got, tc.want) {
			t.Errorf("Variance: when %s got %f, want %f", tc.desc, got, tc.want)
		}
		if got := Variance(tc.n, 1, accessorOf(tc.x), tc.stride); !ApproxEqual(got, tc.want) {
			t.Errorf("Variance with accessor: when %s got %f, want %f", tc.desc, got, tc.want)
		}
	}
}

func TestVarianceNDArray(t *testing.T) {
	for _, tc := range []struct {
		desc           string
		x              array.Float64s
		n              int
		stride, offset int
		want           float64
	}{
		// Elements 1, -2, 2, 4.
		{"offset 1 stride 2", array.Float64s{2, 1, 2, -2, -2, 2, 3, 4}, 4, 2, 1, 6.25},
		// Elements 4, 2, -2, 1.
		{"offset 7 stride -2", array.Float64s{2, 1, 2, -2, -2, 2, 3, 4}, 4, -2, 7, 6.25},
		// Elements 2, -2.
		{"sub-range", array.Float64s{2, 1, 2, -2, -2, 2, 3, 4}, 2, 1, 2, 8},
		{"stride 0 with offset", array.Float64s{2, 1, 2}, 3, 0, 2, 0},
		{"zero length", array.Float64s{2, 1, 2}, 0, 1, 0, nan},
	} {
		if got := VarianceNDArray(tc.n, 1, tc.x, tc.stride, tc.offset); !ApproxEqual(got, tc.want) {
			t.Errorf("VarianceNDArray: when %s got %f, want %f", tc.desc, got, tc.want)
		}
		if got := VarianceNDArray(tc.n, 1, accessorOf(tc.x), tc.stride, tc.offset); !ApproxEqual(got, tc.want) {
			t.Errorf("VarianceNDArray with accessor: when %s got %f, want %f", tc.desc, got, tc.want)
		}
	}
}

func TestVarianceConstantSequenceIsZero(t *testing.T) {
	for _, c := range []float64{0, 7, -3.5, 1e12} {
		x := make(array.Float64s, 50)
		for i := range x {
			x[i] = c
		}
		if got := Variance(len(x), 0, x, 1); got != 0 {
			t.Errorf("Variance of constant %f: got %f, want 0", c, got)
		}
		if got := Variance(len(x), 1, x, -1); got != 0 {
			t.Errorf("Variance of constant %f with stride -1: got %f, want 0", c, got)
		}
	}
}

func TestVarianceNegativeStrideMatchesReversedData(t *testing.T) {
	g := rand.New(1)
	for _, n := range []int{2, 3, 10, 257} {
		x := g.Normal(n, 5, 3)
		reversed := stattestutils.Reverse(x)
		for _, correction := range []float64{0, 1} {
			got := Variance(n, correction, array.Float64s(x), -1)
			want := Variance(n, correction, array.Float64s(reversed), 1)
			// Both traversals visit the same values in the same order.
			if got != want {
				t.Errorf("Variance(n=%d, correction=%f) with stride -1: got %f, want %f", n, correction, got, want)
			}
		}
	}
}

func TestVarianceAccessorMatchesDense(t *testing.T) {
	x := rand.New(2).Uniform(100, -10, 10)
	for _, stride := range []int{1, 3, -1, -4} {
		n := (len(x)-1)/absInt(stride) + 1
		dense := Variance(n, 1, array.Float64s(x), stride)
		indirect := Variance(n, 1, accessorOf(x), stride)
		if dense != indirect {
			t.Errorf("Variance with stride %d: dense got %f, accessor got %f", stride, dense, indirect)
		}
	}
}

func TestVarianceMatchesGonum(t *testing.T) {
	g := rand.New(3)
	for _, tc := range []struct {
		desc        string
		mu, sigma   float64
		n           int
		tolFraction float64
	}{
		{"standard normal", 0, 1, 1000, 1e-12},
		{"shifted normal", 1e6, 2, 1000, 1e-7},
		{"wide normal", -50, 1e4, 5000, 1e-12},
	} {
		x := g.Normal(tc.n, tc.mu, tc.sigma)
		want := gonumstat.Variance(x, nil)
		got := Variance(len(x), 1, array.Float64s(x), 1)
		if math.Abs(got-want) > tc.tolFraction*want {
			t.Errorf("Variance: when %s got %f, gonum got %f", tc.desc, got, want)
		}
		if ref := stattestutils.SampleVariance(x, 1); math.Abs(got-ref) > 1e-6*ref {
			t.Errorf("Variance: when %s got %f, naive reference got %f", tc.desc, got, ref)
		}
	}
}

func TestVarianceOnGrdStatSlice(t *testing.T) {
	samples := make(stat.Float64Slice, 10000)
	copy(samples, rand.New(4).Normal(len(samples), 2, 3))
	// grd/stat slices satisfy array.Float64Array directly.
	got := Variance(samples.Len(), 1, samples, 1)
	want := stat.Variance(samples)
	if math.Abs(got-want) > 1e-3*want {
		t.Errorf("Variance on stat.Float64Slice: got %f, stat.Variance got %f", got, want)
	}
	if math.Abs(got-9) > 0.5 {
		t.Errorf("Variance of N(2, 3²) samples: got %f, want close to 9", got)
	}
}

func TestVarianceLargeMeanIsStable(t *testing.T) {
	x := array.Float64s{1e9 + 4, 1e9 + 7, 1e9 + 13, 1e9 + 16}
	if got := Variance(len(x), 1, x, 1); math.Abs(got-30) > 1e-6 {
		t.Errorf("Variance with large mean: got %f, want 30", got)
	}
}

func TestVarianceNeverPanicsInRange(t *testing.T) {
	x := array.Float64s{1, math.Inf(1), 3, math.NaN(), 5}
	for n := -1; n <= len(x); n++ {
		for _, correction := range []float64{0, 1, 2.5} {
			got := Variance(n, correction, x, 1)
			if math.IsInf(got, 0) {
				// Inf inputs must poison the result to NaN, not Inf.
				t.Errorf("Variance(n=%d, correction=%f): got %f, want finite or NaN", n, correction, got)
			}
		}
	}
}

func TestVarianceChecked(t *testing.T) {
	x := array.Float64s{1, 2, 2, -7, -2, 3, 4, 2}
	for _, tc := range []struct {
		desc       string
		x          array.Float64Array
		n          int
		correction float64
		stride     int
		want       float64
		wantErr    bool
	}{
		{"valid stride 2", x, 4, 1, 2, 6.25, false},
		{"valid stride -2", x, 4, 1, -2, 6.25, false},
		{"nil array", nil, 4, 1, 2, 0, true},
		{"nil *Float64s", (*array.Float64s)(nil), 0, 0, 1, 0, true},
		{"nil *Accessor", (*array.Accessor)(nil), 4, 1, 1, 0, true},
		{"last index overflows int", x, math.MaxInt/4 + 2, 1, 4, 0, true},
		{"last index overflows int in reverse", x, math.MaxInt/4 + 2, 1, -4, 0, true},
		{"negative length", x, -1, 1, 1, 0, true},
		{"NaN correction", x, 4, nan, 1, 0, true},
		{"negative correction", x, 4, -1, 1, 0, true},
		{"zero stride", x, 4, 1, 0, 0, true},
		{"view too long", x, 5, 1, 2, 0, true},
		{"no degrees of freedom", x, 1, 1, 1, nan, false},
	} {
		got, err := VarianceChecked(tc.n, tc.correction, tc.x, tc.stride)
		if (err != nil) != tc.wantErr {
			t.Errorf("VarianceChecked: when %s got err %v, wantErr %t", tc.desc, err, tc.wantErr)
		}
		if err == nil && !ApproxEqual(got, tc.want) {
			t.Errorf("VarianceChecked: when %s got %f, want %f", tc.desc, got, tc.want)
		}
	}
}

func TestVarianceNDArrayChecked(t *testing.T) {
	x := array.Float64s{2, 1, 2, -2, -2, 2, 3, 4}
	for _, tc := range []struct {
		desc           string
		n              int
		stride, offset int
		want           float64
		wantErr        bool
	}{
		{"valid forward", 4, 2, 1, 6.25, false},
		{"valid backward", 4, -2, 7, 6.25, false},
		{"negative offset", 1, 1, -1, 0, true},
		{"backward past the start", 4, -2, 5, 0, true},
		{"forward past the end", 4, 2, 2, 0, true},
		{"zero stride", 4, 0, 1, 0, true},
		{"last index overflows int", math.MaxInt/4 + 2, 4, 0, 0, true},
		{"last index overflows int in reverse", math.MaxInt/4 + 2, -4, 7, 0, true},
	} {
		got, err := VarianceNDArrayChecked(tc.n, 1, x, tc.stride, tc.offset)
		if (err != nil) != tc.wantErr {
			t.Errorf("VarianceNDArrayChecked: when %s got err %v, wantErr %t", tc.desc, err, tc.wantErr)
		}
		if err == nil && !ApproxEqual(got, tc.want) {
			t.Errorf("VarianceNDArrayChecked: when %s got %f, want %f", tc.desc, got, tc.want)
		}
	}
}

func absInt(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
