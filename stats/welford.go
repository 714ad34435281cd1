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
	"fmt"
	"math"

	"github.com/google/strided-stats/array"
	"github.com/google/strided-stats/checks"
)

// Welford accumulates a running count, mean and variance of float64 values
// one at a time, using the same update as Variance.
//
// Two accumulators can be combined with Merge, which makes Welford suitable
// as the state of a distributed reduction.
//
// Not thread-safe.
type Welford struct {
	// Parameters
	correction float64

	// State variables
	count int64
	mean  float64
	m2    float64
	state aggregationState
}

// WelfordOptions contains the options necessary to initialize a Welford.
type WelfordOptions struct {
	// Degrees-of-freedom adjustment subtracted from the count in the variance
	// denominator. Must be finite and nonnegative.
	Correction float64
}

// NewWelford returns a new Welford. A nil opt gives a correction of 1, i.e.
// the unbiased sample variance.
func NewWelford(opt *WelfordOptions) (*Welford, error) {
	if opt == nil {
		opt = &WelfordOptions{Correction: 1}
	}
	if err := checks.CheckCorrection(opt.Correction, 0); err != nil {
		return nil, fmt.Errorf("NewWelford: %w", err)
	}
	return &Welford{
		correction: opt.Correction,
		state:      defaultState,
	}, nil
}

// WelfordFromMoments rebuilds a Welford from the values returned by Moments.
func WelfordFromMoments(count int64, mean, m2, correction float64) (*Welford, error) {
	w, err := NewWelford(&WelfordOptions{Correction: correction})
	if err != nil {
		return nil, fmt.Errorf("WelfordFromMoments: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("WelfordFromMoments: count is %d, must be nonnegative", count)
	}
	if m2 < 0 {
		return nil, fmt.Errorf("WelfordFromMoments: sum of squared deviations is %f, must be nonnegative", m2)
	}
	w.count, w.mean, w.m2 = count, mean, m2
	return w, nil
}

// Add an entry to a Welford. NaN entries are accumulated like any other and
// make the mean and variance NaN.
func (w *Welford) Add(e float64) error {
	if w.state != defaultState {
		return fmt.Errorf("Welford cannot be amended: %v", w.state.errorMessage())
	}
	w.add(e)
	return nil
}

func (w *Welford) add(e float64) {
	w.count++
	delta := e - w.mean
	w.mean += delta / float64(w.count)
	w.m2 += delta * (e - w.mean)
}

// AddStrided adds n strided elements of x, starting at offset.
func (w *Welford) AddStrided(n int, x array.Float64Array, stride, offset int) error {
	if w.state != defaultState {
		return fmt.Errorf("Welford cannot be amended: %v", w.state.errorMessage())
	}
	if err := checkView(n, x, stride, offset); err != nil {
		return fmt.Errorf("AddStrided: %w", err)
	}
	ix := offset
	for i := 0; i < n; i++ {
		w.add(x.Get(ix))
		ix += stride
	}
	return nil
}

// Count returns the number of entries added so far.
func (w *Welford) Count() int64 {
	return w.count
}

// Mean returns the mean of the entries added so far, or NaN if there are none.
func (w *Welford) Mean() float64 {
	if w.count == 0 {
		return math.NaN()
	}
	return w.mean
}

// Variance returns the variance of the entries added so far. It returns NaN
// if there are no entries or the correction leaves no degrees of freedom.
func (w *Welford) Variance() float64 {
	dof := float64(w.count) - w.correction
	if w.count == 0 || dof <= 0 {
		return math.NaN()
	}
	return w.m2 / dof
}

// Stdev returns the square root of Variance.
func (w *Welford) Stdev() float64 {
	return math.Sqrt(w.Variance())
}

// Moments returns the raw state: the count, the running mean and the sum of
// squared deviations from the mean.
func (w *Welford) Moments() (count int64, mean, m2 float64) {
	return w.count, w.mean, w.m2
}

// Result returns the count, mean and variance of the entries added so far.
// The method can be called only once.
func (w *Welford) Result() (WelfordResult, error) {
	if w.state != defaultState {
		return WelfordResult{}, fmt.Errorf("Welford's result cannot be computed: %s", w.state.errorMessage())
	}
	w.state = resultReturned
	return WelfordResult{
		Count:    w.count,
		Mean:     w.Mean(),
		Variance: w.Variance(),
	}, nil
}

// Merge merges w2 into w (i.e., adds to w all entries that were added to
// w2). w2 is consumed by this operation: w2 may not be used after it is
// merged into w.
//
// The combination follows Chan, Golub and LeVeque, "Updating Formulae and a
// Pairwise Algorithm for Computing Sample Variances" (1979).
func (w *Welford) Merge(w2 *Welford) error {
	if err := checkMergeWelford(w, w2); err != nil {
		return err
	}
	switch {
	case w2.count == 0:
	case w.count == 0:
		w.count, w.mean, w.m2 = w2.count, w2.mean, w2.m2
	default:
		n1, n2 := float64(w.count), float64(w2.count)
		n := n1 + n2
		delta := w2.mean - w.mean
		w.mean += delta * n2 / n
		w.m2 += w2.m2 + delta*delta*n1*n2/n
		w.count += w2.count
	}
	w2.state = merged
	return nil
}

func checkMergeWelford(w1, w2 *Welford) error {
	if w1 == w2 {
		return fmt.Errorf("checkMergeWelford: a Welford instance cannot be merged with itself")
	}
	if w1.state != defaultState {
		return fmt.Errorf("checkMergeWelford: w1 cannot be merged with another Welford instance: %v", w1.state.errorMessage())
	}
	if w2.state != defaultState {
		return fmt.Errorf("checkMergeWelford: w2 cannot be merged with another Welford instance: %v", w2.state.errorMessage())
	}
	if w1.correction != w2.correction {
		return fmt.Errorf("checkMergeWelford: w1 and w2 are not compatible: correction %f != %f", w1.correction, w2.correction)
	}
	return nil
}

// GobEncode encodes Welford.
func (w *Welford) GobEncode() ([]byte, error) {
	if w.state != defaultState && w.state != serialized {
		return nil, fmt.Errorf("Welford object cannot be serialized: %s", w.state.errorMessage())
	}
	enc := encodableWelford{
		Correction: w.correction,
		Count:      w.count,
		Mean:       w.mean,
		M2:         w.m2,
	}
	w.state = serialized
	return encode(enc)
}

// GobDecode decodes Welford.
func (w *Welford) GobDecode(data []byte) error {
	var enc encodableWelford
	if err := decode(&enc, data); err != nil {
		return fmt.Errorf("couldn't decode Welford from bytes: %w", err)
	}
	decoded, err := WelfordFromMoments(enc.Count, enc.Mean, enc.M2, enc.Correction)
	if err != nil {
		return fmt.Errorf("couldn't decode Welford from bytes: %w", err)
	}
	*w = *decoded
	return nil
}

// encodableWelford can be encoded by the gob package.
type encodableWelford struct {
	Correction float64
	Count      int64
	Mean       float64
	M2         float64
}

// WelfordResult holds the count, mean, and variance output by Welford.Result.
type WelfordResult struct {
	Count    int64
	Mean     float64
	Variance float64
}
