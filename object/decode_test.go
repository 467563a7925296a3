package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-mapper/record"
	"record-mapper/schema"
)

func testRegistry(t *testing.T) *schema.Registry {
	t.Helper()

	reg := schema.NewRegistry()
	require.NoError(t, reg.Declare(
		schema.TypeDef{Name: "Account", External: "Account", Fields: []schema.FieldDef{
			{Name: "Name", Alias: "Name"},
			{Name: "Users", Alias: "Contacts", Role: schema.RoleChild, Target: "User"},
		}},
		schema.TypeDef{Name: "User", External: "Contact", Fields: []schema.FieldDef{
			{Name: "FullName", Alias: "Full_Name__c"},
			{Name: "Account", Alias: "Account", Role: schema.RoleParent, Target: "Account"},
		}},
	))

	return reg
}

func TestDecode(t *testing.T) {
	reg := testRegistry(t)

	doc, err := record.Parse([]byte(`{
		"Id": "a-987",
		"Name": "Twin Peaks Sheriff Dept.",
		"Scratch": "local only",
		"Users": [
			{"Id": "u-123", "FullName": "Dale Cooper", "Account": {"Id": "a-987"}},
			{"Id": "u-124", "FullName": "Harry Truman", "Account": null}
		]
	}`))
	require.NoError(t, err)

	account, err := Decode(reg, "Account", doc)
	require.NoError(t, err)

	assert.Equal(t, "Account", account.Type())

	scratch, ok := account.Get("Scratch")
	assert.True(t, ok)
	assert.Equal(t, "local only", scratch)

	users, ok := account.Children("Users")
	require.True(t, ok)
	require.Len(t, users, 2)
	assert.Equal(t, "User", users[0].Type())

	parent, ok := users[0].Parent("Account")
	require.True(t, ok)
	assert.Equal(t, "Account", parent.Type())

	assert.False(t, users[1].Has("Account"))
}

func TestDecode_Errors(t *testing.T) {
	reg := testRegistry(t)
	require.NoError(t, reg.MarkParent("User", "Manager"))

	tests := map[string]struct {
		typeName string
		doc      any
		want     string
	}{
		"not an object": {"Account", "x", "Account: expected an object"},
		"child not array": {"Account", map[string]any{"Users": map[string]any{}},
			"Account.Users: expected an array"},
		"child element": {"Account", map[string]any{"Users": []any{"x"}},
			"Account.Users[0]: expected an object"},
		"parent not object": {"User", map[string]any{"Account": "a-1"},
			"User.Account: expected an object"},
		"parent without target": {"User", map[string]any{"Manager": map[string]any{}},
			"User.Manager: parent field has no target type"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(reg, tt.typeName, tt.doc)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestTemplate(t *testing.T) {
	reg := testRegistry(t)

	tmpl := Template(reg, "Account")
	assert.Equal(t, "Account", tmpl.Type())

	users, ok := tmpl.Children("Users")
	require.True(t, ok)
	require.Len(t, users, 1)
	assert.Equal(t, "User", users[0].Type())

	// Account is already on the path, so the nested User has no parent template.
	assert.False(t, users[0].Has("Account"))

	userTmpl := Template(reg, "User")
	parent, ok := userTmpl.Parent("Account")
	require.True(t, ok)
	assert.False(t, parent.Has("Users"))
}
