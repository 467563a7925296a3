// Package schema is the metadata registry of the record mapper.
//
// A domain type is described once, at startup, by a TypeDef: its external
// type name and, per field, the external alias, the relationship role and
// the related domain type. The mapping engine only reads this metadata;
// it never inspects Go values by reflection.
//
// # Declaring types
//
// Types can be declared three ways:
//
//   - Struct literals passed to Registry.Declare
//   - YAML schema files read with LoadFile / Parse
//   - The low-level annotation surface (SetTypeAlias, SetFieldAlias,
//     MarkParent, MarkChild) that the other two are built on
//
// # Schema file
//
//	version: "1"
//	types:
//	  - name: Account
//	    external: Account
//	    fields:
//	      - Name: Name                 # shorthand {Field: Alias}
//	      - name: Users
//	        alias: Contacts
//	        role: child
//	        target: User
//
// # Identity
//
// The field "Id" is always mapped, under the external key "Id", whether or
// not it is declared. Fields without an alias are excluded from mapping.
//
// # Concurrency
//
// The registry is safe for concurrent use. Freeze makes it read-only;
// writes after Freeze fail with ErrFrozen.
package schema
