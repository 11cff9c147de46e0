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
	"io"
	"os"
	"runtime/debug"

	"github.com/consensys/go-binpow/pkg/util/math"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "binpow",
	Short: "A fast integer exponentiation utility.",
	Long: `Read a base and a non-negative exponent from standard input, and print
the base raised to that exponent (computed by exponentiation by squaring).`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("binpow ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
			//
			return
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if term.IsTerminal(0) {
			log.Debug("awaiting base and exponent on terminal input")
		}
		//
		evaluate(os.Stdin, os.Stdout)
	},
}

// Evaluate a single exponentiation request: two whitespace-separated integers
// (base then exponent) are read from the given reader, and the decimal result
// is written as a single line.  A failed scan is not an error: whichever
// operands were not read simply remain zero.
func evaluate(input io.Reader, output io.Writer) {
	var number, power int64
	//
	if _, err := fmt.Fscan(input, &number, &power); err != nil {
		log.Debug(fmt.Sprintf("scanning input: %s", err))
	}
	//
	fmt.Fprintln(output, math.Pow(number, power))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
