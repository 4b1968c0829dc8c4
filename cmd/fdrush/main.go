// fdrush is the command line front end for the functional dependency
// engine: closures, candidate keys, minimal covers, normal form checks and
// the random sampling rush.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KamiliArsyad/FDSampleRush/logging"
)

var (
	flagVerbose bool
	flagJSON    bool

	log *zap.Logger = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "fdrush",
	Short: "Functional dependency closures, keys, covers and normal forms",
	Long: `fdrush analyses a relational schema described by its functional
dependencies. Dependencies are written as name lists around an arrow and
separated by semicolons, for example:

  "A,B -> C; B -> C; C -> B"

Attribute names are collected from the dependencies, sorted, and assigned
bit positions; all computation happens on fixed-width bitsets.

Examples:
  fdrush keys "A,B -> C,D,E; B -> C; C -> B"
  fdrush closure --of B "A,B -> C,D,E; B -> C"
  fdrush cover "A,B,C -> D; B -> C; C -> B"
  fdrush covers --implied "A -> B; B -> A"
  fdrush check "A -> B; B -> C"
  fdrush rush --attributes 5 --budget 10s --max-fds 8 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if flagVerbose {
			level = "debug"
		}
		var err error
		log, err = logging.New(level, flagJSON)
		if err != nil {
			return err
		}
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "log as JSON")

	rootCmd.AddCommand(
		newKeysCmd(),
		newClosureCmd(),
		newCoverCmd(),
		newCoversCmd(),
		newSigmaCmd(),
		newCheckCmd(),
		newRushCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fdrush:", err)
		os.Exit(1)
	}
}
