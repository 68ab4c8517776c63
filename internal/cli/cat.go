package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rdnfmt/rdn"
)

var (
	catFormat string

	catCmd = &cobra.Command{
		Use:   "cat --format=(rdn|json|yaml|repr) FILE",
		Short: "re-emit a parsed document in an alternate textual form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("cat takes exactly one file argument")
			}
			cfg, err := loadedConfig(cmd)
			if err != nil {
				return err
			}
			doc, err := rdn.ParseFile(args[0], parseOptions(cfg))
			if err != nil {
				return err
			}

			switch catFormat {
			case "rdn", "":
				return rdn.WriteIndented(os.Stdout, doc, rdn.WriteOptions{Indent: cfg.Indent})
			case "json":
				tree, _, err := toInterface(doc, doc.Root())
				if err != nil {
					return err
				}
				out, err := json.MarshalIndent(tree, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			case "yaml":
				tree, _, err := toInterface(doc, doc.Root())
				if err != nil {
					return err
				}
				out, err := yaml.Marshal(tree)
				if err != nil {
					return err
				}
				fmt.Print(string(out))
				return nil
			case "repr":
				tree, _, err := toInterface(doc, doc.Root())
				if err != nil {
					return err
				}
				repr.Println(tree)
				return nil
			default:
				return fmt.Errorf("cat: unknown --format %q (want rdn, json, yaml, or repr)", catFormat)
			}
		},
	}
)

func init() {
	catCmd.Flags().StringVar(&catFormat, "format", "rdn", "output format: rdn, json, yaml, repr")
}
