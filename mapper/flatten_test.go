package mapper

import (
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-mapper/crm"
	"record-mapper/object"
)

func TestFlatten_UserScenario(t *testing.T) {
	m, _ := newTestMapper(t)

	u := crm.User{Id: "u-123", FullName: "Dale Cooper", Status: "active"}
	verified := true
	u.EmailVerified = &verified

	out := m.Flatten(u.ToObject())

	assert.Equal(t, map[string]any{
		"Id":                "u-123",
		"Full_Name__c":      "Dale Cooper",
		"Email_Verified__c": true,
		"Status__c":         "active",
	}, out.ToMap())
	assert.False(t, out.Has("Account"))
}

func TestFlatten_FieldOrder(t *testing.T) {
	m, _ := newTestMapper(t)
	u := dale()

	assert.Equal(t, []string{
		"Id", "CreatedDate", "Full_Name__c", "MailingStreet", "MailingCity",
		"MailingState", "MailingPostalCode", "Email_Verified__c", "Status__c",
	}, m.Flatten(u.ToObject()).Keys())
}

func TestFlatten_OmitsUnaliasedFields(t *testing.T) {
	m, hook := newTestMapper(t)

	obj := object.New(crm.UserType).
		Set("Id", "u-1").
		Set("Scratch", "Full_Name__c").
		Set("Status", "active")

	out := m.Flatten(obj)
	assert.Equal(t, []string{"Id", "Status__c"}, out.Keys())

	var skipped []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.TraceLevel && e.Message == "skipping unmapped field" {
			skipped = append(skipped, e.Data["field"].(string))
		}
	}

	assert.Equal(t, []string{"Scratch"}, skipped)
}

func TestFlatten_NeverEmitsAbsentValues(t *testing.T) {
	m, _ := newTestMapper(t)

	obj := object.New(crm.UserType).Set("Id", "u-1").Set("FullName", nil)
	out := m.Flatten(obj)

	assert.Equal(t, []string{"Id"}, out.Keys())

	// a typed nil is an unset optional
	obj.Set("EmailVerified", (*bool)(nil)).Set("Street", (*string)(nil))
	out = m.Flatten(obj)
	assert.False(t, out.Has("Email_Verified__c"))
	assert.False(t, out.Has("MailingStreet"))
	assert.Equal(t, `{"Id":"u-1"}`, out.String())

	// false and "" are values, not absence
	obj.Set("EmailVerified", false).Set("Status", "")
	assert.Equal(t, map[string]any{"Id": "u-1", "Email_Verified__c": false, "Status__c": ""}, m.Flatten(obj).ToMap())
}

func TestFlatten_BackReferencedParentTerminates(t *testing.T) {
	m, _ := newTestMapper(t)

	a := sheriffDept(dale())
	a.Users[0].Account = &a

	out := m.Flatten(a.Users[0].ToObject())
	assert.True(t, out.Has("Account"))

	// the account lists the user again; encoding reports the cycle
	assert.Contains(t, out.String(), "<invalid record")

	_, err := json.Marshal(out)
	require.ErrorIs(t, err, object.ErrCyclicGraph)
}

func TestFlatten_IdentityWithoutDeclaration(t *testing.T) {
	m, _ := newTestMapper(t)

	out := m.Flatten(object.New("Unregistered").Set("Id", "x-1").Set("Name", "n"))
	assert.Equal(t, map[string]any{"Id": "x-1"}, out.ToMap())
}

func TestFlatten_RolesPassThrough(t *testing.T) {
	m, _ := newTestMapper(t)

	account := object.New(crm.AccountType).Set("Id", "a-987")
	user := object.New(crm.UserType).Set("Id", "u-123").Set("Account", account)

	v, ok := m.Flatten(user).Get("Account")
	assert.True(t, ok)
	assert.Same(t, account, v)
}

func TestFlatten_Nil(t *testing.T) {
	m, _ := newTestMapper(t)
	assert.Equal(t, 0, m.Flatten(nil).Len())
}
