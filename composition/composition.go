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

// Package composition applies the basic composition rules of differential
// privacy to groups of count queries.
//
// Queries over disjoint partitions of a dataset compose in parallel: every
// query can spend the full privacy budget, and the guarantee for the group
// is the maximum (not the sum) of the individual budgets. Repeated queries
// over the same or overlapping partitions compose sequentially: their
// guarantees add up, so a total budget must be divided across them.
package composition

import (
	"github.com/dataprivacylab/dpnoise/checks"
	"github.com/dataprivacylab/dpnoise/noise"
	"github.com/dataprivacylab/dpnoise/rand"
)

const totalEpsilonName = "TotalEpsilon"

// Query is one true count together with the sensitivity bound of the query
// that produced it.
type Query struct {
	Count       float64
	Sensitivity float64
}

// NoisyCount is the released value for one query. Epsilon records the budget
// actually charged to the query, which is the scale divisor used for its
// perturbation. Noised may be negative even when the raw count is not; that
// is part of the mechanism.
type NoisyCount struct {
	Raw     float64
	Noised  float64
	Epsilon float64
}

// Parallel perturbs a group of queries over disjoint partitions. Every query
// is charged the full totalEpsilon, and the privacy guarantee for the whole
// group is totalEpsilon.
//
// Disjointness of the underlying partitions is an assumption accepted from
// the caller, not verified here. Results preserve input order. An empty
// group is trivially valid and yields an empty result.
func Parallel(src rand.Source, queries []Query, totalEpsilon float64) ([]NoisyCount, error) {
	if err := checks.CheckEpsilonStrict(totalEpsilon, totalEpsilonName); err != nil {
		return nil, err
	}
	if err := checkQueries(queries); err != nil {
		return nil, err
	}
	return perturb(src, queries, totalEpsilon)
}

// Sequential perturbs a sequence of queries over the same or overlapping
// partition. The total budget is divided evenly, so each query is charged
// totalEpsilon/len(queries) and the guarantees sum back to totalEpsilon.
//
// Results preserve input order. An empty sequence is rejected: there is no
// budget split for zero queries.
func Sequential(src rand.Source, queries []Query, totalEpsilon float64) ([]NoisyCount, error) {
	perQueryEpsilon, err := SplitEvenly(totalEpsilon, len(queries))
	if err != nil {
		return nil, err
	}
	if err := checkQueries(queries); err != nil {
		return nil, err
	}
	return perturb(src, queries, perQueryEpsilon)
}

// SplitEvenly divides a total privacy budget across n sequentially composed
// queries. This even division is the only supported splitting policy.
func SplitEvenly(totalEpsilon float64, n int) (float64, error) {
	if err := checks.CheckEpsilonStrict(totalEpsilon, totalEpsilonName); err != nil {
		return 0, err
	}
	if err := checks.CheckNumQueries(n); err != nil {
		return 0, err
	}
	return totalEpsilon / float64(n), nil
}

// checkQueries validates every query's sensitivity up front, so that no
// randomness is consumed when any parameter is invalid.
func checkQueries(queries []Query) error {
	for _, q := range queries {
		if err := checks.CheckSensitivity(q.Sensitivity); err != nil {
			return err
		}
	}
	return nil
}

func perturb(src rand.Source, queries []Query, perQueryEpsilon float64) ([]NoisyCount, error) {
	results := make([]NoisyCount, len(queries))
	for i, q := range queries {
		noised, err := noise.AddNoise(src, q.Count, perQueryEpsilon, q.Sensitivity)
		if err != nil {
			return nil, err
		}
		results[i] = NoisyCount{Raw: q.Count, Noised: noised, Epsilon: perQueryEpsilon}
	}
	return results, nil
}
