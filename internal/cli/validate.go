package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"record-mapper/crm"
	"record-mapper/schema"
)

// ErrInvalidSchema is returned by validate when the schema has errors.
var ErrInvalidSchema = errors.New("schema has errors")

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the schema for inconsistent metadata",
		Long: `Loads the schema named by --schema (or the built-in CRM schema) and
reports duplicate aliases, unknown relationship targets, types that cannot
be composite-tree nodes and child cycles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := crm.NewRegistry()

			if path := a.v.GetString("schema"); path != "" {
				var err error

				reg, err = schema.Load(path)
				if err != nil {
					return err
				}
			}

			diags := schema.Validate(reg)
			for _, d := range diags.All() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", d.Severity, d); err != nil {
					return err
				}
			}

			if diags.HasErrors() {
				return fmt.Errorf("%w: %d error(s)", ErrInvalidSchema, len(diags.Errors))
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ok: %d type(s), %d warning(s)\n",
				len(reg.TypeNames()), len(diags.Warnings))

			return err
		},
	}
}
