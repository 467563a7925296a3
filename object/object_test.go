package object

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_SetGetUnset(t *testing.T) {
	o := New("User").
		Set("Id", "u-123").
		Set("FullName", "Dale Cooper").
		Set("EmailVerified", false)

	assert.Equal(t, "User", o.Type())
	assert.Equal(t, []string{"Id", "FullName", "EmailVerified"}, o.Fields())

	v, ok := o.Get("EmailVerified")
	assert.True(t, ok)
	assert.Equal(t, false, v)

	o.Set("FullName", nil)
	assert.False(t, o.Has("FullName"))

	o.Set("Account", (*Object)(nil))
	assert.False(t, o.Has("Account"))

	o.Unset("Id")
	assert.Equal(t, []string{"EmailVerified"}, o.Fields())
}

func TestObject_ZeroValue(t *testing.T) {
	var o Object
	assert.False(t, o.Has("Id"))
	assert.Empty(t, o.Fields())

	o.Set("Id", "x")
	assert.True(t, o.Has("Id"))
}

func TestObject_Relationships(t *testing.T) {
	account := New("Account").Set("Id", "a-987")
	user := New("User").Set("Id", "u-123").Set("Account", account)
	account.AddChild("Users", user).AddChild("Users", New("User"))

	p, ok := user.Parent("Account")
	require.True(t, ok)
	assert.Same(t, account, p)

	children, ok := account.Children("Users")
	require.True(t, ok)
	assert.Len(t, children, 2)

	_, ok = user.Parent("Id")
	assert.False(t, ok)
	_, ok = account.Children("Id")
	assert.False(t, ok)
}

func TestObject_MarshalJSON(t *testing.T) {
	account := New("Account").Set("Id", "a-987").Set("Name", "Twin Peaks Sheriff Dept.")
	account.AddChild("Users", New("User").Set("Id", "u-123"))

	data, err := json.Marshal(account)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Id":"a-987","Name":"Twin Peaks Sheriff Dept.","Users":[{"Id":"u-123"}]}`, string(data))
	assert.Contains(t, account.String(), "Account{")
}

func TestIsAbsent(t *testing.T) {
	assert.True(t, IsAbsent(nil))
	assert.True(t, IsAbsent((*Object)(nil)))
	assert.True(t, IsAbsent([]*Object(nil)))
	assert.False(t, IsAbsent([]*Object{}))
	assert.False(t, IsAbsent(""))
	assert.False(t, IsAbsent(false))

	// typed nils are unset optionals
	assert.True(t, IsAbsent((*bool)(nil)))
	assert.True(t, IsAbsent((*string)(nil)))
	assert.True(t, IsAbsent(map[string]any(nil)))
	assert.True(t, IsAbsent([]string(nil)))
	assert.True(t, IsAbsent(error(nil)))

	verified := false
	assert.False(t, IsAbsent(&verified))
	assert.False(t, IsAbsent(map[string]any{}))
	assert.False(t, IsAbsent(0))
}

func TestObject_SetTypedNilUnsets(t *testing.T) {
	verified := true
	obj := New("User").Set("Id", "u-1").Set("EmailVerified", &verified)
	require.True(t, obj.Has("EmailVerified"))

	obj.Set("EmailVerified", (*bool)(nil))
	assert.False(t, obj.Has("EmailVerified"))
	assert.Equal(t, []string{"Id"}, obj.Fields())
}

func TestObject_MarshalJSON_CyclicGraph(t *testing.T) {
	account := New("Account").Set("Id", "a-987")
	user := New("User").Set("Id", "u-123").Set("Account", account)
	account.AddChild("Users", user)

	_, err := json.Marshal(user)
	require.ErrorIs(t, err, ErrCyclicGraph)
	assert.Contains(t, err.Error(), "User.Account")

	assert.Contains(t, account.String(), "<invalid object")
}

func TestObject_MarshalJSON_SharedValues(t *testing.T) {
	leaf := New("Folder").Set("Name", "leaf")
	root := New("Folder").Set("Name", "root").AddChild("Folders", leaf).AddChild("Folders", leaf)
	root.Set("Pinned", leaf)

	data, err := json.Marshal(root)
	require.NoError(t, err)
	assert.Equal(t,
		`{"Name":"root","Folders":[{"Name":"leaf"},{"Name":"leaf"}],"Pinned":{"Name":"leaf"}}`,
		string(data))
}
