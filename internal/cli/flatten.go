package cli

import (
	"github.com/spf13/cobra"

	"record-mapper/object"
)

func newFlattenCommand(a *app) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "flatten [object.json]",
		Short: "Map a domain object to a flat external record",
		Long: `Reads a domain object as JSON keyed by domain field names and writes
the flat record for a single-record write. Relationship fields are copied
as they are.`,
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

			obj, err := object.Decode(reg, typeName, doc)
			if err != nil {
				return err
			}

			return a.writeJSON(cmd.OutOrStdout(), m.Flatten(obj))
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "Domain type of the input object")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newTreeCommand(a *app) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "tree [object.json]",
		Short: "Map a domain object and its children to a composite tree",
		Long: `Reads a domain object as JSON and writes the {"records": [...]}
composite tree for a batch-create request. Parent references are left out.`,
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

			obj, err := object.Decode(reg, typeName, doc)
			if err != nil {
				return err
			}

			tree, err := m.TreeBuild(obj)
			if err != nil {
				return err
			}

			return a.writeJSON(cmd.OutOrStdout(), tree)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "Domain type of the root object")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
