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

// Package rand generates reproducible sample data for the statistics kernels,
// their tests and the command-line tool.
package rand

import (
	"bufio"
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"
	"sync"

	log "github.com/golang/glog"
	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	seedBufLock sync.Mutex
	seedBuf     io.Reader = bufio.NewReaderSize(cryptorand.Reader, 4096)
)

// Seed returns a uniformly random uint64 drawn from the operating system's
// entropy source, for callers that do not need reproducibility.
func Seed() uint64 {
	var r [8]uint8
	seedBufLock.Lock()
	_, err := io.ReadFull(seedBuf, r[:])
	seedBufLock.Unlock()
	if err != nil {
		log.Fatalf("out of randomness, should never happen: %v", err)
	}
	return binary.LittleEndian.Uint64(r[:])
}

// Generator draws samples from a seeded pseudo-random source. Two generators
// created with the same seed produce the same sequence of samples.
//
// Not thread-safe.
type Generator struct {
	src exprand.Source
}

// New returns a Generator seeded with seed.
func New(seed uint64) *Generator {
	return &Generator{src: exprand.NewSource(seed)}
}

// Normal returns n samples from a normal distribution with mean mu and
// standard deviation sigma.
func (g *Generator) Normal(n int, mu, sigma float64) []float64 {
	return sample(n, distuv.Normal{Mu: mu, Sigma: sigma, Src: g.src})
}

// Uniform returns n samples from the continuous uniform distribution on
// [lower, upper).
func (g *Generator) Uniform(n int, lower, upper float64) []float64 {
	return sample(n, distuv.Uniform{Min: lower, Max: upper, Src: g.src})
}

func sample(n int, d distuv.Rander) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}
