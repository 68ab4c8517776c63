package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rdnfmt/rdn"
)

var (
	fmtIndent string
	fmtWrite  bool

	fmtCmd = &cobra.Command{
		Use:   "fmt [-i indent] [-w] FILES...",
		Short: "rewrite RDN files indented or minimized",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New("need at least one file argument")
			}
			cfg, err := loadedConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("indent") && cfg.Indent != "" {
				fmtIndent = cfg.Indent
			}
			opts := parseOptions(cfg)

			for _, path := range args {
				doc, err := rdn.ParseFile(path, opts)
				if err != nil {
					return err
				}
				var buf bytes.Buffer
				if fmtIndent == "" {
					err = rdn.WriteMinimized(&buf, doc, rdn.WriteOptions{})
				} else {
					err = rdn.WriteIndented(&buf, doc, rdn.WriteOptions{Indent: fmtIndent})
				}
				if err != nil {
					return fmt.Errorf("rdn fmt: %s: %w", path, err)
				}
				if fmtWrite {
					if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
						return err
					}
					log.WithField("file", path).Info("formatted")
					continue
				}
				if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
					return err
				}
			}
			return nil
		},
	}
)

func init() {
	fmtCmd.Flags().StringVarP(&fmtIndent, "indent", "i", "  ", "indent unit; empty string minimizes")
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result back to each file instead of stdout")
}
