package schema

import (
	"fmt"
	"strings"

	"record-mapper/internal/diagnostic"
	"record-mapper/internal/match"
)

// Diagnostic codes reported by Validate.
const (
	CodeDuplicateAlias       = "duplicate_alias"
	CodeUnknownTargetType    = "unknown_target_type"
	CodeMissingTargetType    = "missing_target_type"
	CodeMissingTypeAlias     = "missing_type_alias"
	CodeRoleWithoutAlias     = "role_without_alias"
	CodeIdentityAliasIgnored = "identity_alias_ignored"
	CodeCyclicMetadata       = "cyclic_metadata"
	CodeRoleConflict         = "role_conflict"
)

// maxSuggestions bounds "did you mean" lists.
const maxSuggestions = 3

// Validate checks the registry for metadata the engine cannot map
// consistently. It is a structural check only; values are never inspected.
func Validate(reg *Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if reg == nil {
		res.AddError("registry_is_nil", "schema registry is nil", "", "")
		return res
	}

	names := reg.TypeNames()
	childTargets := map[string]bool{}

	for _, def := range reg.Types() {
		validateType(res, reg, def, names, childTargets)
	}

	for _, def := range reg.Types() {
		if def.External == "" && childTargets[def.Name] {
			res.AddError(CodeMissingTypeAlias,
				"type is used as a child target but has no external type name", def.Name, "")
		} else if def.External == "" {
			res.AddWarning(CodeMissingTypeAlias,
				"type has no external type name and cannot be a composite-tree node", def.Name, "")
		}
	}

	for _, cycle := range childCycles(reg) {
		res.AddWarning(CodeCyclicMetadata,
			fmt.Sprintf("child relationships form a cycle: %s", strings.Join(cycle, " -> ")),
			cycle[0], "")
	}

	return res
}

func validateType(res *diagnostic.Diagnostics, reg *Registry, def TypeDef, names []string, childTargets map[string]bool) {
	seenAliases := map[string]string{}

	for _, field := range reg.conflicts(def.Name) {
		res.AddError(CodeRoleConflict, "field is tagged both parent and child", def.Name, field)
	}

	for _, f := range def.Fields {
		if f.IsIdentity() {
			if f.Alias != "" && f.Alias != IdentityField {
				res.AddInfo(CodeIdentityAliasIgnored,
					fmt.Sprintf("identity field is always mapped as %q; alias %q is ignored", IdentityField, f.Alias),
					def.Name, f.Name)
			}

			continue
		}

		if f.Alias != "" {
			if prev, dup := seenAliases[f.Alias]; dup {
				res.AddError(CodeDuplicateAlias,
					fmt.Sprintf("alias %q is already used by field %s", f.Alias, prev), def.Name, f.Name)
			} else {
				seenAliases[f.Alias] = f.Name
			}
		}

		if f.Role == RoleNone {
			continue
		}

		if f.Alias == "" {
			res.AddWarning(CodeRoleWithoutAlias,
				fmt.Sprintf("%s field has no alias and is never mapped", f.Role), def.Name, f.Name)
		}

		switch {
		case f.Target == "":
			res.AddWarning(CodeMissingTargetType,
				fmt.Sprintf("%s field has no target type; hydrate needs a nested template", f.Role), def.Name, f.Name)
		case !reg.Has(f.Target):
			res.AddError(CodeUnknownTargetType,
				fmt.Sprintf("target type %q is not registered", f.Target), def.Name, f.Name,
				match.Closest(f.Target, names, maxSuggestions)...)
		case f.IsChild():
			childTargets[f.Target] = true
		}
	}
}

// childCycles returns each cycle of child edges once, starting at the
// first registered type on it. Parent edges never recurse in a composite
// tree, so they are not followed.
func childCycles(reg *Registry) [][]string {
	edges := map[string][]string{}

	for _, def := range reg.Types() {
		for _, f := range def.Fields {
			if f.IsChild() && f.Target != "" {
				edges[def.Name] = append(edges[def.Name], f.Target)
			}
		}
	}

	const (
		unvisited = iota
		onStack
		done
	)

	state := map[string]int{}
	seen := map[string]bool{}

	var (
		cycles [][]string
		stack  []string
		visit  func(string)
	)

	visit = func(name string) {
		state[name] = onStack
		stack = append(stack, name)

		for _, next := range edges[name] {
			switch state[next] {
			case onStack:
				start := 0
				for i, s := range stack {
					if s == next {
						start = i
						break
					}
				}

				cycle := append(append([]string{}, stack[start:]...), next)

				key := strings.Join(cycle, ",")
				if !seen[key] {
					seen[key] = true
					cycles = append(cycles, cycle)
				}
			case unvisited:
				visit(next)
			}
		}

		stack = stack[:len(stack)-1]
		state[name] = done
	}

	for _, name := range reg.TypeNames() {
		if state[name] == unvisited {
			visit(name)
		}
	}

	return cycles
}
