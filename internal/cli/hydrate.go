package cli

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"record-mapper/object"
	"record-mapper/record"
)

func newHydrateCommand(a *app) *cobra.Command {
	var (
		typeName string
		selector string
		dump     bool
	)

	cmd := &cobra.Command{
		Use:   "hydrate [record.json]",
		Short: "Build domain objects from external records",
		Long: `Reads an external record, or with --select a query response, and
writes the hydrated domain object. With --select the output is an array of
one object per matching record.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, m, err := a.setup(typeName)
			if err != nil {
				return err
			}

			doc, err := readDocument(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			tmpl := object.Template(reg, typeName)

			var out any
			if selector == "" {
				out, err = m.Hydrate(tmpl, doc)
				if err != nil {
					return err
				}
			} else {
				recs, err := record.Select(doc, selector)
				if err != nil {
					return err
				}

				objs := make([]*object.Object, 0, len(recs))
				for i, rec := range recs {
					obj, err := m.Hydrate(tmpl, rec)
					if err != nil {
						return fmt.Errorf("match %d: %w", i, err)
					}

					objs = append(objs, obj)
				}

				out = objs
			}

			if dump {
				_, err := fmt.Fprint(cmd.OutOrStdout(), spew.Sdump(out))
				return err
			}

			return a.writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "Domain type to hydrate")
	cmd.Flags().StringVar(&selector, "select", "", "JSONPath selecting the records to hydrate, e.g. '$.records[*]'")
	cmd.Flags().BoolVar(&dump, "dump", false, "Print the Go values instead of JSON")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
