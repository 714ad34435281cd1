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

package beamstats

import (
	"bytes"
	"encoding/gob"
	"reflect"

	"github.com/apache/beam/sdks/v2/go/pkg/beam"
)

// Coders for serializing variance accumulators.

func init() {
	beam.RegisterCoder(reflect.TypeOf(varianceAccum{}), encodeVarianceAccum, decodeVarianceAccum)
}

func encodeVarianceAccum(v varianceAccum) ([]byte, error) {
	return encode(v)
}

func decodeVarianceAccum(data []byte) (varianceAccum, error) {
	var ret varianceAccum
	err := decode(&ret, data)
	return ret, err
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	err := enc.Encode(v)
	return buf.Bytes(), err
}

func decode(v any, data []byte) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
