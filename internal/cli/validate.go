package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rdnfmt/rdn"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILES...",
	Short: "parse-only; reports every syntax error found",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			_ = cmd.Help()
			return errors.New("need at least one file argument")
		}
		cfg, err := loadedConfig(cmd)
		if err != nil {
			return err
		}
		opts := parseOptions(cfg)

		var failures rdn.ParseErrors
		for _, path := range args {
			if _, err := rdn.ParseFile(path, opts); err != nil {
				var rerr *rdn.Error
				if errors.As(err, &rerr) {
					failures = append(failures, rerr)
					log.WithField("file", path).Warn(rerr.Error())
					continue
				}
				return err
			}
			log.WithField("file", path).Info("ok")
		}
		if len(failures) > 0 {
			return failures
		}
		return nil
	},
}
