// skylark
// (C) 2025, CRU Project
//
// CRU Project and all other contributors /
// copyright owners license this file to you under the Apache
// License, Version 2.0 (the "License"); you may not use this
// file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package dataset

import (
	"math"
	"sort"
)

// Median returns the median of v. It returns 0 for an empty slice;
// callers must guard sample counts before calling.
func Median(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	s := make([]float64, len(v))
	copy(s, v)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 0 {
		return (s[mid-1] + s[mid]) / 2
	}
	return s[mid]
}

// Nearest returns the index of the sample in key closest to target,
// or -1 if key is empty. Ties resolve to the earlier record.
func Nearest(key []float64, target float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, k := range key {
		if d := math.Abs(k - target); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Window returns the indices of all samples with lo <= key[i] <= hi,
// in record order. Both bounds are inclusive.
func Window(key []float64, lo, hi float64) []int {
	var idx []int
	for i, k := range key {
		if k >= lo && k <= hi {
			idx = append(idx, i)
		}
	}
	return idx
}

// At gathers the values of v at the given indices
func At(v []float64, idx []int) []float64 {
	out := make([]float64, 0, len(idx))
	for _, i := range idx {
		out = append(out, v[i])
	}
	return out
}

// MaxAbsDeviation returns the largest absolute deviation of v from center
func MaxAbsDeviation(v []float64, center float64) float64 {
	max := 0.0
	for _, x := range v {
		if d := math.Abs(x - center); d > max {
			max = d
		}
	}
	return max
}

// IsStrictlyIncreasing reports whether v is strictly increasing
func IsStrictlyIncreasing(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if v[i] <= v[i-1] {
			return false
		}
	}
	return true
}

// FloorDenominator clamps d to the smallest representable positive value.
// The second return value reports whether clamping happened, so callers
// can fail explicitly on a non-positive measurement instead of hiding it
// inside a ratio.
func FloorDenominator(d float64) (float64, bool) {
	if d < math.SmallestNonzeroFloat64 {
		return math.SmallestNonzeroFloat64, true
	}
	return d, false
}
