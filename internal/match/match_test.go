package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"Contact", "Contact", 0},
		{"Contact", "Contacts", 1},
		{"flaw", "lawn", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	tests := map[string]string{
		"Full_Name__c":      "fullname",
		"FullName":          "fullname",
		"full-name":         "fullname",
		"Account__r":        "account",
		"__c":               "c",
		"MailingPostalCode": "mailingpostalcode",
		"XMLParser":         "xmlparser",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeIdent(in), in)
	}
}

func TestTokenizeIdent(t *testing.T) {
	assert.Equal(t, []string{"order", "id"}, TokenizeIdent("OrderID"))
	assert.Equal(t, []string{"xml", "parser"}, TokenizeIdent("XMLParser"))
	assert.Equal(t, []string{"email", "verified", "c"}, TokenizeIdent("Email_Verified__c"))
	assert.Nil(t, TokenizeIdent(""))
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("Full_Name__c", "FullName"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.Less(t, Similarity("Account", "Status"), MinSimilarity)
}

func TestClosest(t *testing.T) {
	candidates := []string{"Account", "User", "Contact", "Users"}

	assert.Equal(t, []string{"User", "Users"}, Closest("Usr", candidates, 3))
	assert.Equal(t, []string{"Contact"}, Closest("Contacts", candidates, 1))
	assert.Empty(t, Closest("Opportunity", candidates, 3))
	assert.NotContains(t, Closest("User", candidates, 3), "User")
}
