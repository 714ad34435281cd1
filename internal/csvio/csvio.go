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

// Package csvio reads numeric columns from CSV files.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadColumnFile reads the given zero-based column of every record in the
// CSV file at path. If header is true the first record is skipped.
func ReadColumnFile(path string, column int, header bool) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the csv file = %q, err = %v", path, err)
	}
	defer f.Close()

	values, err := ReadColumn(f, column, header)
	if err != nil {
		return nil, fmt.Errorf("couldn't read the csv file = %q, err = %w", path, err)
	}
	return values, nil
}

// ReadColumn reads the given zero-based column of every record from r. Empty
// lines are skipped; records may have different numbers of fields as long as
// each one has the requested column.
func ReadColumn(r io.Reader, column int, header bool) ([]float64, error) {
	if column < 0 {
		return nil, fmt.Errorf("column is %d, must be nonnegative", column)
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	values := make([]float64, 0)
	skipLine := header
	for line := 1; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if skipLine {
			skipLine = false
			continue
		}
		if len(record) <= column {
			return nil, fmt.Errorf("record %d has %d fields, want at least %d", line, len(record), column+1)
		}
		v, err := toFloat64(record[column])
		if err != nil {
			return nil, fmt.Errorf("couldn't read value = %q in record %d as float64, err = %v", record[column], line, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func toFloat64(str string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}
