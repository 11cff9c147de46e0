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
	"fmt"
	"os"
	"strconv"

	"github.com/consensys/go-binpow/pkg/util/math"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var powCmd = &cobra.Command{
	Use:   "pow [flags] base exponent",
	Short: "compute a base raised to a given exponent.",
	Long: `Compute a base raised to a given (non-negative) exponent, with both taken
from the command line rather than standard input.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		base := parseInt(args[0])
		exp := parseInt(args[1])
		//
		log.Debug(fmt.Sprintf("computing %d^%d", base, exp))
		//
		fmt.Println(math.Pow(base, exp))
	},
}

// Parse a given string as a 64-bit signed integer, exiting on error.
func parseInt(arg string) int64 {
	val, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return val
}

func init() {
	rootCmd.AddCommand(powCmd)
}
