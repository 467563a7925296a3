// Package analyze extracts schema declarations from annotated Go structs.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to load a
// package, then reads two annotations:
//
//   - a "//sf:object <External>" directive in a struct's doc comment marks
//     the struct as a mapped domain type with the given external type name;
//   - an `sf:"Alias[,parent|child]"` struct tag gives a field its external
//     alias and relationship role.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/pointer/slice/external)
//   - FieldInfo: describes field name, type and tag
//   - Extractor: turns annotated structs into schema.TypeDef values
package analyze
