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

// Package beamstats computes variance statistics over Apache Beam
// PCollections.
//
// Each bundle is reduced with a stats.Welford accumulator and partial
// accumulators are combined with Welford.Merge, so the result does not depend
// on how the runner splits the input.
package beamstats

import (
	"fmt"
	"reflect"

	"github.com/apache/beam/sdks/v2/go/pkg/beam"
	"github.com/apache/beam/sdks/v2/go/pkg/beam/register"
	log "github.com/golang/glog"
	"github.com/google/strided-stats/checks"
	"github.com/google/strided-stats/stats"
)

func init() {
	register.Combiner3[varianceAccum, float64, VarianceStatistics](&varianceFn{})
	register.Function2x2[beam.W, VarianceStatistics, beam.W, float64](extractVariancePerKey)
	register.Function1x1[VarianceStatistics, float64](extractVariance)
}

// VarianceStatistics holds the count, mean, and variance of a collection of
// float64 values.
type VarianceStatistics struct {
	Count    int64
	Mean     float64
	Variance float64
}

// Params specifies the parameters associated with a Variance aggregation.
type Params struct {
	// Degrees-of-freedom adjustment subtracted from the count in the
	// variance denominator. 0 gives the population variance, 1 the unbiased
	// sample variance.
	//
	// Must be finite and nonnegative.
	Correction float64
}

func extractVariancePerKey(k beam.W, vs VarianceStatistics) (beam.W, float64) {
	return k, vs.Variance
}

func extractVariance(vs VarianceStatistics) float64 {
	return vs.Variance
}

// Variance is the same as VarianceStatistics, but returns only the variance.
//
// Variance transforms a PCollection<float64> into a PCollection<float64> with
// a single element.
func Variance(s beam.Scope, col beam.PCollection, params Params) beam.PCollection {
	return beam.ParDo(s, extractVariance, VarianceStatisticsGlobally(s, col, params))
}

// VarianceStatisticsGlobally obtains the count, mean, and variance of all
// values in a PCollection<float64>.
//
// VarianceStatisticsGlobally transforms a PCollection<float64> into a
// PCollection<VarianceStatistics> with a single element.
func VarianceStatisticsGlobally(s beam.Scope, col beam.PCollection, params Params) beam.PCollection {
	s = s.Scope("beamstats.VarianceStatisticsGlobally")
	if t := col.Type().Type(); t != reflect.TypeOf(float64(0)) {
		log.Fatalf("VarianceStatisticsGlobally must be used on a PCollection of type float64, got type %v instead", t)
	}
	fn, err := newVarianceFn(params)
	if err != nil {
		log.Fatalf("Couldn't get varianceFn for VarianceStatisticsGlobally: %v", err)
	}
	return beam.Combine(s, fn, col)
}

// VariancePerKey is the same as VarianceStatisticsPerKey, but returns only the
// variance.
//
// VariancePerKey transforms a PCollection<K,float64> into a
// PCollection<K,float64>.
func VariancePerKey(s beam.Scope, col beam.PCollection, params Params) beam.PCollection {
	return beam.ParDo(s, extractVariancePerKey, VarianceStatisticsPerKey(s, col, params))
}

// VarianceStatisticsPerKey obtains the count, mean, and variance of the values
// associated with each key in a PCollection<K,float64>.
//
// VarianceStatisticsPerKey transforms a PCollection<K,float64> into a
// PCollection<K,VarianceStatistics>.
func VarianceStatisticsPerKey(s beam.Scope, col beam.PCollection, params Params) beam.PCollection {
	s = s.Scope("beamstats.VarianceStatisticsPerKey")
	_, vT := beam.ValidateKVType(col)
	if vT.Type() != reflect.TypeOf(float64(0)) {
		log.Fatalf("VarianceStatisticsPerKey must be used on a PCollection of type <K,float64>, got value type %v instead", vT)
	}
	fn, err := newVarianceFn(params)
	if err != nil {
		log.Fatalf("Couldn't get varianceFn for VarianceStatisticsPerKey: %v", err)
	}
	return beam.CombinePerKey(s, fn, col)
}

// varianceAccum carries a Welford accumulator between bundles. It is encoded
// with the coder registered in coders.go.
type varianceAccum struct {
	W *stats.Welford
}

// varianceFn is a combineFn for obtaining the variance of values. Do not
// initialize it yourself, use newVarianceFn to create a varianceFn instance.
type varianceFn struct {
	Correction float64
}

// newVarianceFn returns a varianceFn with the given parameters.
func newVarianceFn(params Params) (*varianceFn, error) {
	if err := checks.CheckCorrection(params.Correction, 0); err != nil {
		return nil, fmt.Errorf("newVarianceFn: %w", err)
	}
	return &varianceFn{Correction: params.Correction}, nil
}

func (fn *varianceFn) CreateAccumulator() (varianceAccum, error) {
	w, err := stats.NewWelford(&stats.WelfordOptions{Correction: fn.Correction})
	if err != nil {
		return varianceAccum{}, err
	}
	return varianceAccum{W: w}, nil
}

func (fn *varianceFn) AddInput(a varianceAccum, v float64) (varianceAccum, error) {
	err := a.W.Add(v)
	return a, err
}

func (fn *varianceFn) MergeAccumulators(a, b varianceAccum) (varianceAccum, error) {
	err := a.W.Merge(b.W)
	return a, err
}

func (fn *varianceFn) ExtractOutput(a varianceAccum) (VarianceStatistics, error) {
	result, err := a.W.Result()
	if err != nil {
		return VarianceStatistics{}, fmt.Errorf("stats.Welford.Result: %w", err)
	}
	return VarianceStatistics{
		Count:    result.Count,
		Mean:     result.Mean,
		Variance: result.Variance,
	}, nil
}

func (fn *varianceFn) String() string {
	return fmt.Sprintf("%#v", fn)
}
