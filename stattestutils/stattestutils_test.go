//
// Copyright 2025 The dpnoise Authors
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

package stattestutils

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func TestSampleMean(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		values []float64
		want   float64
	}{
		{"empty slice", nil, 0},
		{"single value", []float64{3}, 3},
		{"symmetric values", []float64{-2, 2}, 0},
		{"arbitrary values", []float64{1, 2, 3, 4}, 2.5},
	} {
		if got := SampleMean(tc.values); math.Abs(got-tc.want) > tolerance {
			t.Errorf("SampleMean: when %s got %f, want %f", tc.desc, got, tc.want)
		}
	}
}

func TestSampleVariance(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		values []float64
		want   float64
	}{
		{"empty slice", nil, 0},
		{"single value", []float64{5}, 0},
		{"constant values", []float64{2, 2, 2}, 0},
		{"arbitrary values", []float64{1, 2, 3, 4}, 1.25},
	} {
		if got := SampleVariance(tc.values); math.Abs(got-tc.want) > tolerance {
			t.Errorf("SampleVariance: when %s got %f, want %f", tc.desc, got, tc.want)
		}
	}
}

func TestSampleMeanAbs(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		values []float64
		want   float64
	}{
		{"empty slice", nil, 0},
		{"negative values", []float64{-1, -3}, 2},
		{"mixed signs", []float64{-2, 2}, 2},
	} {
		if got := SampleMeanAbs(tc.values); math.Abs(got-tc.want) > tolerance {
			t.Errorf("SampleMeanAbs: when %s got %f, want %f", tc.desc, got, tc.want)
		}
	}
}
