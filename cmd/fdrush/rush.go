package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KamiliArsyad/FDSampleRush/rush"
)

// newRushCmd wires the sampling harness: generate random FD sets and batch
// classify them under a wall clock budget. Flags override values from an
// optional TOML config file.
func newRushCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "rush",
		Short: "Classify random dependency samples under a time budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			v.SetDefault("attributes", 5)
			v.SetDefault("budget", "10s")
			v.SetDefault("max-fds", 8)
			v.SetDefault("seed", 0)
			v.SetDefault("dist", "uniform")
			v.SetDefault("p", 0.5)
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				v.SetConfigType("toml")
				if err := v.ReadInConfig(); err != nil {
					return errors.Wrap(err, "reading rush config")
				}
			}
			for _, name := range []string{"attributes", "budget", "max-fds", "seed", "dist", "p"} {
				if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
					return err
				}
			}

			budget, err := time.ParseDuration(v.GetString("budget"))
			if err != nil {
				return errors.Wrap(err, "parsing budget")
			}
			dist, err := parseDistribution(v.GetString("dist"), v.GetFloat64("p"))
			if err != nil {
				return err
			}

			r, err := rush.New(rush.Config{
				Attributes:   v.GetInt("attributes"),
				Budget:       budget,
				MaxFDs:       v.GetInt("max-fds"),
				Seed:         v.GetUint64("seed"),
				Distribution: dist,
				Logger:       log,
			})
			if err != nil {
				return err
			}

			summary, err := r.Run(cmd.Context())
			if err != nil {
				return err
			}
			return renderSummary(summary)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "TOML config file (flags override it)")
	cmd.Flags().Int("attributes", 5, "attributes per sample")
	cmd.Flags().String("budget", "10s", "wall clock budget, eg 10s or 2m")
	cmd.Flags().Int("max-fds", 8, "maximum dependencies per sample")
	cmd.Flags().Uint64("seed", 0, "random seed, 0 seeds from the clock")
	cmd.Flags().String("dist", "uniform", "value distribution: uniform, realistic or binomial")
	cmd.Flags().Float64("p", 0.5, "bit probability for the binomial distribution")
	return cmd
}

func parseDistribution(name string, p float64) (rush.Distribution, error) {
	switch name {
	case "uniform":
		return rush.Uniform(), nil
	case "realistic":
		return rush.Realistic(), nil
	case "binomial":
		return rush.Binomial(p), nil
	}
	return nil, errors.Newf("unknown distribution %q", name)
}

func renderSummary(s rush.Summary) error {
	pct := func(count int) string {
		if s.Samples == 0 {
			return "-"
		}
		return fmt.Sprintf("%.1f%%", 100*float64(count)/float64(s.Samples))
	}
	return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"form", "samples", "share"},
		{"BCNF", strconv.Itoa(s.BCNF), pct(s.BCNF)},
		{"3NF", strconv.Itoa(s.ThirdNF), pct(s.ThirdNF)},
		{"2NF", strconv.Itoa(s.SecondNF), pct(s.SecondNF)},
		{"1NF only", strconv.Itoa(s.FirstNF), pct(s.FirstNF)},
		{"total", strconv.Itoa(s.Samples), s.Elapsed.String()},
	}).Render()
}
