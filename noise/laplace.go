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

// Package noise generates Laplace-distributed perturbations for
// ε-differentially private release of query results.
package noise

import (
	"math"

	"github.com/dataprivacylab/dpnoise/checks"
	"github.com/dataprivacylab/dpnoise/rand"
)

// ConfidenceInterval holds lower and upper bounds of the interval that
// contains the raw value behind a noised release.
type ConfidenceInterval struct {
	LowerBound, UpperBound float64
}

// SampleLaplace returns one draw from a zero-mean Laplace distribution with
// scale = sensitivity/epsilon, the perturbation required by the Laplace
// mechanism for ε-differential privacy on a query with the given L₁
// sensitivity.
//
// Both parameters are validated independently before any randomness is
// consumed. The result has mean 0 and variance 2·scale²; it may be negative
// even when the perturbed quantity is a non-negative count, which is part of
// the mechanism and must not be corrected by callers.
func SampleLaplace(src rand.Source, epsilon, sensitivity float64) (float64, error) {
	if err := checkArgs(epsilon, sensitivity); err != nil {
		return 0, err
	}
	return sampleLaplace(src, sensitivity/epsilon), nil
}

// SampleLaplaceBatch returns count independent draws, in insertion order,
// each distributed as SampleLaplace with the same parameters. A count of
// zero yields an empty slice.
func SampleLaplaceBatch(src rand.Source, count int, epsilon, sensitivity float64) ([]float64, error) {
	if err := checks.CheckCount(count); err != nil {
		return nil, err
	}
	if err := checkArgs(epsilon, sensitivity); err != nil {
		return nil, err
	}
	scale := sensitivity / epsilon
	samples := make([]float64, count)
	for i := range samples {
		samples[i] = sampleLaplace(src, scale)
	}
	return samples, nil
}

// AddNoise returns x plus one Laplace perturbation scaled to the given
// epsilon and sensitivity.
func AddNoise(src rand.Source, x, epsilon, sensitivity float64) (float64, error) {
	sample, err := SampleLaplace(src, epsilon, sensitivity)
	if err != nil {
		return 0, err
	}
	return x + sample, nil
}

// LaplaceConfidenceInterval computes the interval that contains the raw
// value from which noisedX was computed with probability 1 - alpha, given
// the noise parameters that produced it.
func LaplaceConfidenceInterval(noisedX, epsilon, sensitivity, alpha float64) (ConfidenceInterval, error) {
	if err := checks.CheckAlpha(alpha); err != nil {
		return ConfidenceInterval{}, err
	}
	if err := checkArgs(epsilon, sensitivity); err != nil {
		return ConfidenceInterval{}, err
	}
	lambda := sensitivity / epsilon
	z := inverseCDF(lambda, alpha/2)
	// By symmetry of the Laplace distribution, -z is the (1 - alpha/2)
	// quantile, so [z, -z] around the noised value carries 1-alpha of the
	// probability mass. Deriving the upper quantile from the lower one keeps
	// the computation accurate for small alpha, where alpha/2 is more
	// precisely representable than 1 - alpha/2.
	return ConfidenceInterval{LowerBound: noisedX + z, UpperBound: noisedX - z}, nil
}

func checkArgs(epsilon, sensitivity float64) error {
	if err := checks.CheckEpsilonStrict(epsilon); err != nil {
		return err
	}
	return checks.CheckSensitivity(sensitivity)
}

// sampleLaplace draws from Laplace(0, scale) by inverse-CDF sampling. With
// u = r - 1/2 for a uniform r in (0, 1), the quantile function is
//
//	-scale · sign(u) · ln(1 - 2|u|)
//
// which covers both tails in one expression and maps r = 1/2 to exactly 0.
func sampleLaplace(src rand.Source, scale float64) float64 {
	u := src.Uniform() - 0.5
	return -scale * math.Copysign(1, u) * math.Log1p(-2*math.Abs(u))
}

// inverseCDF computes the quantile z satisfying Pr[Y ≤ z] = p for Y Laplace
// distributed with mean zero and the given scale lambda.
func inverseCDF(lambda, p float64) float64 {
	if p < 0.5 {
		return lambda * math.Log(2*p)
	}
	return -lambda * math.Log(2*(1-p))
}
