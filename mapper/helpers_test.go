package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"record-mapper/crm"
	"record-mapper/record"
	"record-mapper/schema"
)

var created = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func dale() crm.User {
	return crm.NewUser("u-123", created, "Dale Cooper", "11 WhiteLodge Ln", "Twin Peaks", "WA", "98170", true, "active")
}

func sheriffDept(users ...crm.User) crm.Account {
	return crm.NewAccount("a-987", "Twin Peaks Sheriff Dept.", "Agent Dale Cooper", users...)
}

// newTestMapper returns a mapper over the CRM schema with a captured logger.
func newTestMapper(t *testing.T, opts ...Option) (*Mapper, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)

	return New(crm.NewRegistry(), append([]Option{WithLogger(logger)}, opts...)...), hook
}

// projectRegistry has two child collections of the same external type under
// one parent, and three levels of nesting.
func projectRegistry(t *testing.T) *schema.Registry {
	t.Helper()

	reg := schema.NewRegistry()
	require.NoError(t, reg.Declare(
		schema.TypeDef{Name: "Project", External: "Project__c", Fields: []schema.FieldDef{
			{Name: "Name", Alias: "Name"},
			{Name: "Open", Alias: "OpenTasks__r", Role: schema.RoleChild, Target: "Task"},
			{Name: "Closed", Alias: "ClosedTasks__r", Role: schema.RoleChild, Target: "Task"},
		}},
		schema.TypeDef{Name: "Task", External: "Task__c", Fields: []schema.FieldDef{
			{Name: "Subject", Alias: "Subject__c"},
			{Name: "Notes", Alias: "Notes__r", Role: schema.RoleChild, Target: "Note"},
			{Name: "Project", Alias: "Project__r", Role: schema.RoleParent, Target: "Project"},
		}},
		schema.TypeDef{Name: "Note", External: "Note__c", Fields: []schema.FieldDef{
			{Name: "Body", Alias: "Body__c"},
		}},
	))

	return reg
}

func assertGolden(t *testing.T, name string, rec *record.Record) {
	t.Helper()

	data, err := json.MarshalIndent(rec, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}

// referenceIDs collects referenceIds of a tree in depth-first order.
func referenceIDs(t *testing.T, node *record.Record) []string {
	t.Helper()

	var out []string

	if attrs, ok := node.Attributes(); ok {
		out = append(out, attrs.ReferenceID)
	}

	for _, key := range node.Keys() {
		v, _ := node.Get(key)

		nested, ok := v.(*record.Record)
		if !ok || key == record.AttributesKey {
			continue
		}

		recs, err := record.RecordsOf(nested)
		require.NoError(t, err)

		for _, r := range recs {
			out = append(out, referenceIDs(t, r)...)
		}
	}

	return out
}
