// Package cli implements the record-mapper command line.
package cli

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. RECORD_MAPPER_SCHEMA.
const EnvPrefix = "RECORD_MAPPER"

// app is the state shared by all subcommands of one root command.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
}

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	cmd := &cobra.Command{
		Use:   "record-mapper",
		Short: "Map domain objects to and from external records",
		Long: `record-mapper converts between domain objects and the records of a
Salesforce-style REST API using a declarative schema.

Examples:
  # Flatten an object for a single-record write
  record-mapper flatten --type User user.json

  # Build a composite tree for a batch create
  record-mapper tree --type Account --referenceIds type account.json

  # Hydrate every record of a query response
  record-mapper hydrate --type Account --select '$.records[*]' response.json

  # Check a schema file
  record-mapper validate --schema crm.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Config file (yaml, json or toml)")
	flags.StringP("schema", "s", "", "Schema YAML file; the built-in CRM schema when empty")
	flags.StringP("verbosity", "v", "warn", "Log level (trace, debug, info, warn, error)")
	flags.Bool("structuredLogs", false, "Write logs as JSON")
	flags.String("referenceIds", "sibling", "Composite tree reference ids: sibling or type")
	flags.Bool("strictKinds", false, "Reject hydrated values that do not match the declared field kind")
	flags.String("indent", "  ", "JSON output indent; empty for compact output")

	for _, key := range []string{"schema", "verbosity", "structuredLogs", "referenceIds", "strictKinds", "indent"} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	cmd.AddCommand(
		newFlattenCommand(a),
		newTreeCommand(a),
		newHydrateCommand(a),
		newValidateCommand(a),
		newExtractCommand(a),
	)

	return cmd
}

// configure reads the config file and environment and configures the logger.
func (a *app) configure(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		a.v.SetConfigFile(path)

		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	level, err := logrus.ParseLevel(a.v.GetString("verbosity"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	a.log.SetLevel(level)
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{})

	if a.v.GetBool("structuredLogs") {
		a.log.SetFormatter(&logrus.JSONFormatter{})
	}

	for key, value := range a.v.AllSettings() {
		a.log.Debugf("Setting: %s = %v", key, value)
	}

	return nil
}
