package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Clean(t *testing.T) {
	f, err := Parse([]byte(crmYAML))
	require.NoError(t, err)

	reg, err := f.Registry()
	require.NoError(t, err)

	res := Validate(reg)
	assert.False(t, res.HasErrors(), res.Error())
	assert.Empty(t, res.Warnings)
}

func TestValidate_Problems(t *testing.T) {
	reg := NewRegistry()
	reg.MustDeclare(
		TypeDef{Name: "Account", External: "Account", Fields: []FieldDef{
			{Name: "Id", Alias: "AccountId"},
			{Name: "Name", Alias: "Name"},
			{Name: "Label", Alias: "Name"},
			{Name: "Users", Alias: "Contacts", Role: RoleChild, Target: "Usr"},
			{Name: "Cases", Role: RoleChild},
		}},
		TypeDef{Name: "User", Fields: []FieldDef{
			{Name: "Account", Alias: "Account", Role: RoleParent, Target: "Account"},
		}},
	)
	require.NoError(t, reg.MarkChild("User", "Account"))

	res := Validate(reg)

	codes := res.Codes()
	assert.Contains(t, codes, CodeDuplicateAlias)
	assert.Contains(t, codes, CodeUnknownTargetType)
	assert.Contains(t, codes, CodeRoleWithoutAlias)
	assert.Contains(t, codes, CodeMissingTargetType)
	assert.Contains(t, codes, CodeIdentityAliasIgnored)
	assert.Contains(t, codes, CodeRoleConflict)
	assert.Contains(t, codes, CodeMissingTypeAlias)

	for _, d := range res.Errors {
		if d.Code == CodeUnknownTargetType {
			assert.Equal(t, []string{"User"}, d.Suggestions)
		}
	}
}

func TestValidate_ChildTargetNeedsTypeAlias(t *testing.T) {
	reg := NewRegistry()
	reg.MustDeclare(
		TypeDef{Name: "Account", External: "Account", Fields: []FieldDef{
			{Name: "Users", Alias: "Contacts", Role: RoleChild, Target: "User"},
		}},
		TypeDef{Name: "User"},
	)

	res := Validate(reg)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, CodeMissingTypeAlias, res.Errors[0].Code)
	assert.Equal(t, "User", res.Errors[0].Type)
}

func TestValidate_ChildCycle(t *testing.T) {
	reg := NewRegistry()
	reg.MustDeclare(
		TypeDef{Name: "Folder", External: "Folder__c", Fields: []FieldDef{
			{Name: "Files", Alias: "Files__r", Role: RoleChild, Target: "File"},
		}},
		TypeDef{Name: "File", External: "File__c", Fields: []FieldDef{
			{Name: "Folders", Alias: "Folders__r", Role: RoleChild, Target: "Folder"},
		}},
	)

	res := Validate(reg)
	assert.False(t, res.HasErrors())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, CodeCyclicMetadata, res.Warnings[0].Code)
	assert.Contains(t, res.Warnings[0].Message, "Folder -> File -> Folder")
}

func TestValidate_Nil(t *testing.T) {
	assert.True(t, Validate(nil).HasErrors())
}
