// Package cli implements the rdn command-line tool: fmt, validate, cat,
// and walk, wired the way the reference tooling wires its cli/cmd
// package (persistent flags, silenced usage, one root command).
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rdnfmt/rdn/internal/rdnconfig"
)

var (
	rootCmd = &cobra.Command{
		Use:          "rdn",
		Short:        "rdn",
		SilenceUsage: true,
		Long:         `rdn formats, validates and inspects RDN documents (JSON plus sets, maps, tuples, temporals, regex, binary and BigInteger literals).`,
	}

	directory      string
	allowComments  bool
	trailingCommas bool

	log = logrus.StandardLogger()
)

// Execute runs the rdn CLI; it is the sole export cmd/rdn/main.go calls.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "project directory .rdnfmt.yaml is read from")
	rootCmd.PersistentFlags().BoolVar(&allowComments, "allow-comments", false, "allow // and /* */ comments (overrides .rdnfmt.yaml)")
	rootCmd.PersistentFlags().BoolVar(&trailingCommas, "allow-trailing-commas", false, "allow a trailing comma before a close token (overrides .rdnfmt.yaml)")
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(walkCmd)
}

// loadedConfig resolves .rdnfmt.yaml under --directory, with any
// explicitly-passed boolean flags taking precedence over the file.
func loadedConfig(cmd *cobra.Command) (rdnconfig.Config, error) {
	cfg, err := rdnconfig.Load(directory)
	if err != nil {
		return rdnconfig.Config{}, err
	}
	if cmd.Flags().Changed("allow-comments") {
		cfg.AllowComments = allowComments
	}
	if cmd.Flags().Changed("allow-trailing-commas") {
		cfg.AllowTrailingCommas = trailingCommas
	}
	return cfg, nil
}
