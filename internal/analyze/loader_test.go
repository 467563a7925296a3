package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const crmPkg = "record-mapper/crm"

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	graph, err := analyzer.LoadPackages(crmPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	assert.Contains(t, graph.Packages, crmPkg)
	assert.Contains(t, graph.Types, TypeID{PkgPath: crmPkg, Name: "Account"})
	assert.Contains(t, graph.Types, TypeID{PkgPath: crmPkg, Name: "User"})
}

func TestAnalyzer_ObjectDirectives(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(crmPkg)
	require.NoError(t, err)

	account, err := analyzer.GetStruct(crmPkg, "Account")
	require.NoError(t, err)
	assert.Equal(t, "Account", account.External)

	user, err := analyzer.GetStruct(crmPkg, "User")
	require.NoError(t, err)
	assert.Equal(t, "Contact", user.External)

	// declaration order: Account before User in the same file
	types := analyzer.Graph().Packages[crmPkg].Types
	assert.Less(t, indexOf(types, "Account"), indexOf(types, "User"))
}

func TestAnalyzer_FieldTypes(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(crmPkg)
	require.NoError(t, err)

	user, err := analyzer.GetStruct(crmPkg, "User")
	require.NoError(t, err)

	fields := map[string]FieldInfo{}
	for _, f := range user.Fields {
		fields[f.Name] = f
	}

	assert.Equal(t, TypeKindExternal, fields["CreatedDate"].Type.Kind)
	assert.Equal(t, TypeID{PkgPath: "time", Name: "Time"}, fields["CreatedDate"].Type.ID)

	assert.Equal(t, TypeKindPointer, fields["EmailVerified"].Type.Kind)
	assert.Equal(t, TypeKindBasic, fields["EmailVerified"].Type.Deref().Kind)

	// recursive reference resolves to the same cached info
	account := fields["Account"].Type.Deref()
	assert.Equal(t, TypeKindStruct, account.Kind)

	accountInfo, err := analyzer.GetStruct(crmPkg, "Account")
	require.NoError(t, err)
	assert.Same(t, accountInfo, account)

	accountField := fields["Account"]
	alias, role, ok := accountField.SFTag()
	assert.True(t, ok)
	assert.Equal(t, "Account", alias)
	assert.Equal(t, "parent", role)

	idField := fields["Id"]
	_, _, ok = idField.SFTag()
	assert.False(t, ok)
}

func TestAnalyzer_GetStructErrors(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(crmPkg)
	require.NoError(t, err)

	_, err = analyzer.GetStruct(crmPkg, "Missing")
	assert.ErrorContains(t, err, "not found")

	_, err = analyzer.GetStruct(crmPkg, "AccountType")
	assert.Error(t, err)
}

func TestAnalyzer_LoadErrors(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("record-mapper/does/not/exist")
	assert.Error(t, err)
}

func TestDirective(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"//sf:object Contact", "Contact", true},
		{"//sf:object", "", true},
		{"//sf:objects Contact", "", false},
		{"// sf:object Contact", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := directive(commentGroup(tt.line))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := directive(nil)
	assert.False(t, ok)
}

func indexOf(ids []TypeID, name string) int {
	for i, id := range ids {
		if id.Name == name {
			return i
		}
	}

	return -1
}
