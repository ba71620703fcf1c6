package quickdirective

import (
	"github.com/samber/lo"
)

// ValidateDirectives checks the directives applied at one location: argument
// syntax, uniqueness, whether each directive exists, may be used at loc, and
// receives valid arguments. varDefs are the variables in scope (nil outside
// operations).
//
// Without a schema only the schema-independent checks run; unknown directives
// are not reported.
func (v *Validator) ValidateDirectives(diags *DiagnosticList, mode SchemaMode, dirs DirectiveList, loc DirectiveLocation, varDefs []*VariableDefinition) {
	schema, hasSchema := mode.Schema()
	// First application of each name in this list only.
	seen := map[string]SourceSpan{}

	for _, dir := range dirs {
		v.validateArguments(diags, dir.Arguments)

		var def *DirectiveDefinition
		if hasSchema {
			def = schema.DirectiveDefinitions[dir.Name]
		}

		if original, ok := seen[dir.Name]; ok {
			// Unknown directives are assumed repeatable so that an undefined
			// directive is reported once, not once per repetition.
			repeatable := true
			if def != nil {
				repeatable = def.Repeatable
			}
			if !repeatable {
				diags.Push(dir.Span, UniqueDirective{Name: dir.Name, OriginalApplication: original})
			}
		} else {
			seen[dir.Name] = dir.HeadSpan()
		}

		if def == nil {
			if hasSchema {
				diags.Push(dir.Span, UndefinedDirective{
					Name:       dir.Name,
					Suggestion: suggest(dir.Name, sortedKeys(schema.DirectiveDefinitions)),
				})
			}
			continue
		}

		if !lo.Contains(def.Locations, loc) {
			diags.Push(dir.Span, UnsupportedLocation{
				Name:               dir.Name,
				Location:           loc,
				ValidLocations:     def.Locations,
				DefinitionLocation: def.Span,
			})
		}

		for _, arg := range dir.Arguments {
			argDef, ok := def.Argument(arg.Name)
			if !ok {
				diags.Push(arg.Span, UndefinedArgument{
					Name:               arg.Name,
					Coordinate:         DirectiveCoordinate{Directive: dir.Name},
					CallSite:           dir.Span,
					DefinitionLocation: def.Span,
					Suggestion:         suggest(arg.Name, argumentNames(def.Arguments)),
				})
				continue
			}
			// A bad variable is reported once, not again as a bad value.
			if err := v.validateVariableUsage(diags, argDef, varDefs, arg); err == nil {
				v.validateValue(diags, schema, argDef.Type, arg.Value, varDefs, argDef.IsRequired())
			}
		}

		for _, argDef := range def.Arguments {
			if !argDef.IsRequired() {
				continue
			}
			// An explicit null counts as missing. A variable never does here,
			// whatever its declared type: that is left to variable coercion.
			supplied, found := lo.Find(dir.Arguments, func(arg *Argument) bool {
				return arg.Name == argDef.Name
			})
			if !found || supplied.Value == nil || supplied.Value.IsNull() {
				diags.Push(dir.Span, RequiredArgument{
					Name:               argDef.Name,
					ExpectedType:       argDef.Type,
					Coordinate:         DirectiveArgumentCoordinate{Directive: def.Name, Argument: argDef.Name},
					CallSite:           dir.Span,
					DefinitionLocation: argDef.Span,
				})
			}
		}
	}
}

func argumentNames(args []*InputValueDefinition) []string {
	return lo.Map(args, func(arg *InputValueDefinition, _ int) string {
		return arg.Name
	})
}
