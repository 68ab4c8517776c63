package cli

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rdnfmt/rdn"
)

var walkCmd = &cobra.Command{
	Use:   "walk DIR",
	Short: "recursively validate a tree of .rdn files",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		} else if len(args) > 1 {
			_ = cmd.Help()
			return errors.New("walk takes at most one directory argument")
		}

		cfg, err := loadedConfig(cmd)
		if err != nil {
			return err
		}
		opts := parseOptions(cfg)

		var failures rdn.ParseErrors
		checked := 0
		err = filepath.Walk(dir, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() || !strings.HasSuffix(path, ".rdn") {
				return nil
			}
			checked++
			doc, err := rdn.ParseFile(path, opts)
			if err != nil {
				var rerr *rdn.Error
				if errors.As(err, &rerr) {
					failures = append(failures, rerr)
					log.WithField("file", path).Warn(rerr.Error())
					return nil
				}
				return err
			}
			log.WithFields(map[string]interface{}{
				"file": path,
				"doc":  doc.ID().String(),
			}).Info("ok")
			return nil
		})
		if err != nil {
			return err
		}

		log.WithFields(map[string]interface{}{
			"checked": checked,
			"failed":  len(failures),
		}).Info("walk complete")
		if len(failures) > 0 {
			return failures
		}
		return nil
	},
}
