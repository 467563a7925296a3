package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"record-mapper/crm"
	"record-mapper/mapper"
	"record-mapper/record"
	"record-mapper/schema"
)

// registry loads the configured schema file, or the built-in CRM schema.
func (a *app) registry() (*schema.Registry, error) {
	path := a.v.GetString("schema")
	if path == "" {
		a.log.Debug("no schema file, using built-in CRM schema")
		return crm.NewRegistry(), nil
	}

	reg, err := schema.Load(path)
	if err != nil {
		return nil, err
	}

	if diags := schema.Validate(reg); diags.HasErrors() {
		return nil, fmt.Errorf("invalid schema %s: %w", path, diags.Error())
	}

	reg.Freeze()

	return reg, nil
}

// mapper builds a mapper over reg from the configured options.
func (a *app) mapper(reg *schema.Registry) (*mapper.Mapper, error) {
	mode, err := mapper.ParseReferenceIDMode(a.v.GetString("referenceIds"))
	if err != nil {
		return nil, err
	}

	opts := []mapper.Option{mapper.WithLogger(a.log), mapper.WithReferenceIDs(mode)}
	if a.v.GetBool("strictKinds") {
		opts = append(opts, mapper.WithStrictKinds())
	}

	return mapper.New(reg, opts...), nil
}

// setup loads the registry and builds a mapper, checking that typeName is
// declared.
func (a *app) setup(typeName string) (*schema.Registry, *mapper.Mapper, error) {
	reg, err := a.registry()
	if err != nil {
		return nil, nil, err
	}

	if !reg.Has(typeName) {
		return nil, nil, fmt.Errorf("unknown type %q (known: %v)", typeName, reg.TypeNames())
	}

	m, err := a.mapper(reg)
	if err != nil {
		return nil, nil, err
	}

	return reg, m, nil
}

// readDocument parses the JSON document named by args, or stdin.
func readDocument(args []string, stdin io.Reader) (any, error) {
	var (
		data []byte
		err  error
	)

	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return record.Parse(data)
}

func (a *app) writeJSON(w io.Writer, v any) error {
	var (
		data []byte
		err  error
	)

	if indent := a.v.GetString("indent"); indent != "" {
		data, err = json.MarshalIndent(v, "", indent)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}
