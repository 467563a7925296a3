package match

import (
	"strings"
	"unicode"
)

// customSuffixes are the relationship/custom-field markers used by
// CRM-style external names ("Full_Name__c", "Account__r").
var customSuffixes = []string{"__c", "__r"}

// NormalizeIdent normalizes an identifier for fuzzy matching:
// strip custom-field suffixes, split CamelCase, lowercase, drop separators.
// "Full_Name__c", "FullName" and "full-name" all normalize to "fullname".
func NormalizeIdent(s string) string {
	for _, suffix := range customSuffixes {
		if strings.HasSuffix(s, suffix) && len(s) > len(suffix) {
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}

	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lowercase tokens.
// Examples:
//   - "OrderID" -> ["order", "id"]
//   - "Mailing_Postal_Code" -> ["mailing", "postal", "code"]
//   - "XMLParser" -> ["xml", "parser"]
func TokenizeIdent(s string) []string {
	var tokens []string

	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken reports a lower->Upper transition or the end of an acronym
// ("XMLParser" splits before 'P').
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
