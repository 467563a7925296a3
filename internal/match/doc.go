// Package match provides identifier normalization and Levenshtein ranking
// used to suggest registered names when a schema refers to an unknown one.
//
// Key functions:
//   - NormalizeIdent: folds Go and external API spellings onto one form
//   - Levenshtein: computes edit distance between strings
//   - Closest: ranks candidate names against a misspelled one
package match
