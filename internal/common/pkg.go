package common

// UnknownStr is the String() value for out-of-range enum values.
const UnknownStr = "unknown"

// IdentityField is the domain field that is always mapped, under the
// literal external key of the same name.
const IdentityField = "Id"
