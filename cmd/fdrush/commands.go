package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/KamiliArsyad/FDSampleRush/att"
	"github.com/KamiliArsyad/FDSampleRush/bitword"
	"github.com/KamiliArsyad/FDSampleRush/fd"
)

// schema is one parsed command line schema: the name map plus the bitset
// dependencies.
type schema struct {
	m   *att.Map
	fds []fd.FD
}

func parseSchema(arg string) (*schema, error) {
	nfds, err := att.ParseNamedFDs(arg)
	if err != nil {
		return nil, err
	}
	m, err := att.Collect(nfds)
	if err != nil {
		return nil, err
	}
	fds, err := m.FDs(nfds)
	if err != nil {
		return nil, err
	}
	return &schema{m: m, fds: fds}, nil
}

func (s *schema) renderSet(w bitword.Word) string {
	names, err := s.m.Names(w)
	if err != nil {
		return w.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}

func (s *schema) renderFD(f fd.FD) string {
	nfd, err := s.m.NamedFD(f)
	if err != nil {
		return f.String()
	}
	return nfd.String()
}

func singleSchemaArg(cmd *cobra.Command, args []string) (*schema, error) {
	if len(args) != 1 {
		return nil, errors.New("expected exactly one dependency list argument")
	}
	return parseSchema(args[0])
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys \"A,B -> C; ...\"",
		Short: "List the candidate keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := singleSchemaArg(cmd, args)
			if err != nil {
				return err
			}
			for _, k := range fd.CandidateKeys(s.m.Len(), s.fds) {
				fmt.Fprintln(cmd.OutOrStdout(), s.renderSet(k))
			}
			return nil
		},
	}
}

func newClosureCmd() *cobra.Command {
	var of string
	cmd := &cobra.Command{
		Use:   "closure --of A,B \"A,B -> C; ...\"",
		Short: "Compute the closure of an attribute set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := singleSchemaArg(cmd, args)
			if err != nil {
				return err
			}
			x, err := s.m.Word(splitFlagNames(of)...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.renderSet(fd.Closure(x, s.fds)))
			return nil
		},
	}
	cmd.Flags().StringVar(&of, "of", "", "comma separated attribute names to close over")
	_ = cmd.MarkFlagRequired("of")
	return cmd
}

func newCoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cover \"A,B -> C; ...\"",
		Short: "Compute one minimal cover",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := singleSchemaArg(cmd, args)
			if err != nil {
				return err
			}
			for _, f := range fd.MinimalCover(s.fds) {
				fmt.Fprintln(cmd.OutOrStdout(), s.renderFD(f))
			}
			return nil
		},
	}
}

func newCoversCmd() *cobra.Command {
	var implied bool
	cmd := &cobra.Command{
		Use:   "covers \"A,B -> C; ...\"",
		Short: "Enumerate every minimal cover",
		Long: `Enumerate every minimal cover of the dependency list. With --implied the
search widens to the full implication closure first, producing every minimal
cover of the implied dependency set rather than of the literal input.
Warning: both modes are exponential in the attribute count.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := singleSchemaArg(cmd, args)
			if err != nil {
				return err
			}
			covers := fd.MinimalCovers(s.fds)
			if implied {
				covers = fd.AllMinimalCovers(s.m.Len(), s.fds)
			}
			for i, cover := range covers {
				fmt.Fprintf(cmd.OutOrStdout(), "cover %d:\n", i+1)
				for _, f := range cover {
					fmt.Fprintln(cmd.OutOrStdout(), "  "+s.renderFD(f))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&implied, "implied", false, "cover the implied dependency set")
	return cmd
}

func newSigmaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sigma \"A,B -> C; ...\"",
		Short: "Print the reduced implied dependency set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := singleSchemaArg(cmd, args)
			if err != nil {
				return err
			}
			sigma := fd.SigmaPlusLimited(s.m.Len(), s.fds)
			sort.SliceStable(sigma, func(i, j int) bool {
				a, b := sigma[i], sigma[j]
				if a.LHS.PopCount() != b.LHS.PopCount() {
					return a.LHS.PopCount() < b.LHS.PopCount()
				}
				return a.LHS.Bits() < b.LHS.Bits()
			})
			for _, f := range sigma {
				fmt.Fprintln(cmd.OutOrStdout(), s.renderFD(f))
			}
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check \"A,B -> C; ...\"",
		Short: "Report normal form, candidate keys and prime attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := singleSchemaArg(cmd, args)
			if err != nil {
				return err
			}
			c := fd.NewClassifier(s.m.Len(), s.fds)
			out := cmd.OutOrStdout()

			keys := make([]string, 0, len(c.Keys()))
			for _, k := range c.Keys() {
				keys = append(keys, s.renderSet(k))
			}
			fmt.Fprintln(out, "form:  ", c.Classify())
			fmt.Fprintln(out, "bcnf:  ", c.IsBCNF())
			fmt.Fprintln(out, "3nf:   ", c.Is3NF())
			fmt.Fprintln(out, "2nf:   ", c.Is2NF())
			fmt.Fprintln(out, "keys:  ", strings.Join(keys, " "))
			fmt.Fprintln(out, "prime: ", s.renderSet(c.Prime()))
			return nil
		},
	}
}

func splitFlagNames(s string) []string {
	var out []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
