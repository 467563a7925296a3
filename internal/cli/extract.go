package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"record-mapper/internal/analyze"
	"record-mapper/schema"
)

func newExtractCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "extract <package>...",
		Short: "Write a schema file from sf-tagged Go structs",
		Long: `Loads Go packages and writes a YAML schema for every struct marked
with a //sf:object directive, taking aliases and roles from sf struct tags.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, diags, err := analyze.Extract("", args...)
			if err != nil {
				return err
			}

			for _, d := range diags.Warnings {
				a.log.Warn(d.String())
			}

			if diags.HasErrors() {
				return diags.Error()
			}

			file := &schema.File{Version: schema.CurrentVersion, Types: defs}

			if output != "" {
				a.log.Infof("writing %d type(s) to %s", len(defs), output)
				return schema.WriteFile(file, output)
			}

			data, err := schema.Marshal(file)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))

			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Schema file to write; stdout when empty")

	return cmd
}
