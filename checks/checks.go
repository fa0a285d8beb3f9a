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

// Package checks contains parameter checks shared by the differentially
// private noise functions.
package checks

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is wrapped by every validation failure, so callers can
// test for the whole class with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

const (
	epsilonName     = "Epsilon"
	sensitivityName = "Sensitivity"
	alphaName       = "Alpha"
)

func verifyName(defaultName string, nameSlice []string) (string, error) {
	var name string
	switch len(nameSlice) {
	case 0:
		name = defaultName
	case 1:
		name = nameSlice[0]
	default:
		return "", fmt.Errorf("there should be 0 or 1 'name' parameter, got %d", len(nameSlice))
	}
	return name, nil
}

// CheckEpsilonStrict returns an error if ε is nonpositive, NaN, or ±∞.
func CheckEpsilonStrict(epsilon float64, name ...string) error {
	epsName, err := verifyName(epsilonName, name)
	if err != nil {
		return err
	}
	if epsilon <= 0 || math.IsInf(epsilon, 0) || math.IsNaN(epsilon) {
		return fmt.Errorf("%w: %s is %f, must be strictly positive and finite", ErrInvalidParameter, epsName, epsilon)
	}
	return nil
}

// CheckSensitivity returns an error if the sensitivity bound is nonpositive,
// NaN, or ±∞.
func CheckSensitivity(sensitivity float64, name ...string) error {
	sensName, err := verifyName(sensitivityName, name)
	if err != nil {
		return err
	}
	if sensitivity <= 0 || math.IsInf(sensitivity, 0) || math.IsNaN(sensitivity) {
		return fmt.Errorf("%w: %s is %f, must be strictly positive and finite", ErrInvalidParameter, sensName, sensitivity)
	}
	return nil
}

// CheckAlpha returns an error if the supplied alpha is not within (0, 1).
func CheckAlpha(alpha float64, name ...string) error {
	aName, err := verifyName(alphaName, name)
	if err != nil {
		return err
	}
	if alpha <= 0 || alpha >= 1 || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return fmt.Errorf("%w: %s is %f, must be within (0, 1)", ErrInvalidParameter, aName, alpha)
	}
	return nil
}

// CheckCount returns an error if a requested number of draws is negative.
func CheckCount(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: Count is %d, must be nonnegative", ErrInvalidParameter, count)
	}
	return nil
}

// CheckNumQueries returns an error if a query group that must be nonempty
// has no entries.
func CheckNumQueries(numQueries int) error {
	if numQueries <= 0 {
		return fmt.Errorf("%w: NumQueries is %d, must be strictly positive", ErrInvalidParameter, numQueries)
	}
	return nil
}
