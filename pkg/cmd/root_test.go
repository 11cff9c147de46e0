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
package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Evaluate(t *testing.T) {
	scenarios := []struct {
		input    string
		expected string
	}{
		{"2 10", "1024\n"},
		{"3 0", "1\n"},
		{"5 3", "125\n"},
		{"-2 5", "-32\n"},
		{"7 1", "7\n"},
		// newline is whitespace too
		{"2\n10\n", "1024\n"},
		{"  -1   3  ", "-1\n"},
	}
	//
	for _, s := range scenarios {
		var out bytes.Buffer
		//
		evaluate(strings.NewReader(s.input), &out)
		require.Equal(t, s.expected, out.String(), "input %q", s.input)
	}
}

func Test_Evaluate_MalformedInput(t *testing.T) {
	// Unparsed operands remain zero, hence 0^0 == 1 is printed.
	for _, input := range []string{"", "abc", "abc def", "2 xyz"} {
		var out bytes.Buffer
		//
		evaluate(strings.NewReader(input), &out)
		require.Equal(t, "1\n", out.String(), "input %q", input)
	}
}

func Test_Evaluate_MissingExponent(t *testing.T) {
	var out bytes.Buffer
	// Exponent remains zero, hence 5^0 == 1.
	evaluate(strings.NewReader("5"), &out)
	require.Equal(t, "1\n", out.String())
}
