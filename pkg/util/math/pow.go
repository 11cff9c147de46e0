// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package math

// Pow raises a given base to a given power using recursive exponentiation by
// squaring, giving recursion depth logarithmic in the exponent.  The exponent
// must be non-negative, otherwise the result is unspecified.  Arithmetic is
// fixed-width, hence overflow simply wraps around.  Observe that
// Pow(0,0) == 1.
func Pow(base int64, exp int64) int64 {
	if exp == 0 {
		return 1
	}
	// odd case
	if exp%2 == 1 {
		return Pow(base, exp-1) * base
	}
	// even case
	b := Pow(base, exp/2)
	//
	return b * b
}

// PowUint64 raises a given base raised to a given power.
func PowUint64(base uint64, exp uint64) uint64 {
	result := uint64(1)
	//
	for {
		if exp&1 == 1 {
			result *= base
		}
		// div 2
		exp >>= 1
		//
		if exp == 0 {
			break
		}
		//
		base *= base
	}

	return result
}
