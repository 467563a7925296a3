// Package diagnostic provides structured warnings and errors produced
// while validating mapping schemas.
//
// Key capabilities:
//   - Error, warning and info diagnostics with stable codes
//   - Type and field location for each finding
//   - "Did you mean" suggestions for unresolved names
package diagnostic
