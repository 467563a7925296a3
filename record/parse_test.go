package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const queryResponse = `{
  "totalSize": 2,
  "done": true,
  "records": [
    {"attributes": {"type": "Account"}, "Id": "a-1", "Name": "Sheriff Dept.",
     "Contacts": {"totalSize": 1, "done": true, "records": [{"Id": "u-1"}]}},
    {"attributes": {"type": "Account"}, "Id": "a-2", "Name": "Double R Diner", "Contacts": null}
  ]
}`

func TestSelect(t *testing.T) {
	doc, err := Parse([]byte(queryResponse))
	require.NoError(t, err)

	accounts, err := Select(doc, "$.records[*]")
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	name, _ := accounts[1].Get("Name")
	assert.Equal(t, "Double R Diner", name)

	contacts, err := Select(doc, "$.records[*].Contacts.records[*]")
	require.NoError(t, err)
	require.Len(t, contacts, 1)

	id, _ := contacts[0].ID()
	assert.Equal(t, "u-1", id)
}

func TestSelect_Errors(t *testing.T) {
	doc, err := Parse([]byte(queryResponse))
	require.NoError(t, err)

	_, err = Select(doc, "$.records[")
	assert.ErrorContains(t, err, "invalid jsonpath")

	_, err = Select(doc, "$.totalSize")
	assert.ErrorContains(t, err, "not an object")
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`{"a":`))
	assert.Error(t, err)

	_, err = ParseRecord([]byte(`"scalar"`))
	assert.ErrorContains(t, err, "expected a JSON object")
}
