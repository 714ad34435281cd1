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

// This is a command line utility which computes the variance of a column of
// numbers with the strided statistics kernels.
// Usage example:
// go run ./cmd/variancewd --input_file=data.csv --column=1 --header --stride=-1
// go run ./cmd/variancewd --generate=1000 --seed=7 --correction=0
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	log "github.com/golang/glog"
	"github.com/google/strided-stats/array"
	"github.com/google/strided-stats/internal/csvio"
	"github.com/google/strided-stats/rand"
	"github.com/google/strided-stats/stats"
)

var (
	inputFile  = flag.String("input_file", "", "Input csv file name with the samples.")
	column     = flag.Int("column", 0, "Zero-based column of the csv file holding the samples.")
	header     = flag.Bool("header", false, "Whether the first line of the csv file is a header.")
	correction = flag.Float64("correction", 1, "Degrees-of-freedom adjustment: 1 for the sample variance, 0 for the population variance.")
	length     = flag.Int("n", -1, "Number of strided elements to read. Defaults to every element reachable with the given stride and offset.")
	stride     = flag.Int("stride", 1, "Step between consecutive elements. Negative values traverse the data backwards.")
	offset     = flag.Int("offset", -1, "Index of the first element. Defaults to the first logical element for the given stride.")
	generate   = flag.Int("generate", 0, "If positive, generate this many standard normal samples instead of reading input_file.")
	seed       = flag.Uint64("seed", 0, "Seed for --generate. 0 picks a random seed.")
)

var algorithm = flag.String("algorithm", welfordAlgorithm, "Variance algorithm:\n"+
	welfordAlgorithm+" - single-pass Welford update.\n"+
	twoPassAlgorithm+" - two-pass corrected sum of squares.")

const (
	welfordAlgorithm = "wd"
	twoPassAlgorithm = "pn"
)

// summary holds everything the tool prints.
type summary struct {
	N        int
	Mean     float64
	Variance float64
	Stdev    float64
}

func main() {
	flag.Parse()

	log.Infof("variancewd was run with arguments: input_file = %q, column = %d, header = %t,"+
		" correction = %f, n = %d, stride = %d, offset = %d, algorithm = %q, generate = %d",
		*inputFile, *column, *header, *correction, *length, *stride, *offset, *algorithm, *generate)

	data, err := loadData()
	if err != nil {
		log.Exitf("Couldn't load samples, err = %v", err)
	}

	s, err := compute(data, *length, *correction, *stride, *offset, *algorithm)
	if err != nil {
		log.Exitf("Couldn't compute variance, err = %v", err)
	}
	fmt.Fprintf(os.Stdout, "n=%d mean=%g variance=%g stdev=%g\n", s.N, s.Mean, s.Variance, s.Stdev)
}

func loadData() (array.Float64s, error) {
	if *generate > 0 {
		sd := *seed
		if sd == 0 {
			sd = rand.Seed()
		}
		log.Infof("Generating %d standard normal samples with seed %d", *generate, sd)
		return rand.New(sd).Normal(*generate, 0, 1), nil
	}
	if *inputFile == "" {
		return nil, fmt.Errorf("no input file was chosen and --generate is not set")
	}
	return csvio.ReadColumnFile(*inputFile, *column, *header)
}

// compute resolves the defaults for n and offset and runs the chosen kernel.
func compute(data array.Float64s, n int, correction float64, stride, offset int, algo string) (summary, error) {
	if stride == 0 {
		return summary{}, fmt.Errorf("stride must be nonzero")
	}
	if algo != welfordAlgorithm && algo != twoPassAlgorithm {
		return summary{}, fmt.Errorf("there is no algorithm with id = %s", algo)
	}
	if n < 0 {
		n = reachable(len(data), stride, offset)
	}
	if offset < 0 {
		offset = array.StrideToOffset(n, stride)
	}

	if err := stats.CheckNDArray(n, correction, data, stride, offset); err != nil {
		return summary{}, err
	}
	var variance float64
	switch algo {
	case welfordAlgorithm:
		variance = stats.VarianceNDArray(n, correction, data, stride, offset)
	case twoPassAlgorithm:
		variance = stats.VariancePNNDArray(n, correction, data, stride, offset)
	}

	return summary{
		N:        n,
		Mean:     stats.MeanNDArray(n, data, stride, offset),
		Variance: variance,
		Stdev:    math.Sqrt(variance),
	}, nil
}

// reachable returns how many elements of a buffer of the given length are
// visited starting at offset (or the default offset when negative) with
// stride.
func reachable(length, stride, offset int) int {
	if length == 0 {
		return 0
	}
	abs := stride
	if abs < 0 {
		abs = -abs
	}
	if offset < 0 {
		return (length-1)/abs + 1
	}
	if offset >= length {
		return 0
	}
	if stride > 0 {
		return (length-1-offset)/abs + 1
	}
	return offset/abs + 1
}
