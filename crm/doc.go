// Package crm holds sample domain schemas for a CRM-style remote API: an
// Account with its Contacts. The Go structs carry `sf` tags for static
// schema extraction; the struct-literal TypeDefs below are what the mapper
// reads at run time.
package crm
