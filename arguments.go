package quickdirective

import (
	"errors"
	"strings"
)

var errVariableUsage = errors.New("variable usage is not allowed")

// validateArgumentDefinitions checks argument definitions of a directive or
// field: names, types, defaults, and the directives applied to each argument
// at loc.
func (v *Validator) validateArgumentDefinitions(diags *DiagnosticList, schema *Schema, args []*InputValueDefinition, loc DirectiveLocation) {
	seen := map[string]SourceSpan{}
	for _, arg := range args {
		if strings.HasPrefix(arg.Name, "__") {
			diags.Push(arg.Span, ReservedName{Name: arg.Name})
		}
		if original, ok := seen[arg.Name]; ok {
			diags.Push(arg.Span, UniqueArgument{Name: arg.Name, OriginalDefinition: original})
		} else {
			seen[arg.Name] = arg.Span
		}

		v.ValidateDirectives(diags, WithSchema(schema), arg.Directives, loc, nil)
		v.validateInputValueType(diags, schema, arg)
	}
}

// validateInputValueType checks that an argument or input field has an
// existing input type and a default that fits it.
func (v *Validator) validateInputValueType(diags *DiagnosticList, schema *Schema, iv *InputValueDefinition) {
	if iv.Type == nil {
		return
	}
	name := iv.Type.InnerNamedType()
	def, ok := schema.Types[name]
	switch {
	case !ok:
		diags.Push(iv.Span, UndefinedType{Name: name})
	case !IsInputType(def):
		diags.Push(iv.Span, InputTypeExpected{Name: iv.Name, TypeName: name, Kind: def.Kind()})
	case iv.DefaultValue != nil:
		v.validateValue(diags, schema, iv.Type, iv.DefaultValue, nil, false)
	}
}

// validateArguments checks what can be checked without a schema: each
// argument name is supplied once.
func (v *Validator) validateArguments(diags *DiagnosticList, args []*Argument) {
	seen := map[string]SourceSpan{}
	for _, arg := range args {
		if original, ok := seen[arg.Name]; ok {
			diags.Push(arg.Span, UniqueArgument{Name: arg.Name, OriginalDefinition: original})
			continue
		}
		seen[arg.Name] = arg.Span
	}
}

// validateVariableUsage checks a top-level variable argument against its
// definition. It returns errVariableUsage after reporting a problem so the
// caller can skip value validation.
func (v *Validator) validateVariableUsage(diags *DiagnosticList, argDef *InputValueDefinition, varDefs []*VariableDefinition, arg *Argument) error {
	if arg.Value == nil || arg.Value.Kind != VariableValue {
		return nil
	}
	return v.checkVariable(diags, arg.Value, argDef.Name, argDef.Type, varDefs)
}

func (v *Validator) checkVariable(diags *DiagnosticList, value *Value, usedFor string, expected *TypeRef, varDefs []*VariableDefinition) error {
	varDef := findVariableDefinition(varDefs, value.Raw)
	if varDef == nil {
		diags.Push(value.Span, UndefinedVariable{Name: value.Raw})
		return errVariableUsage
	}
	if varDef.Type != nil && expected != nil && !variableUsageAllowed(varDef.Type, expected) {
		diags.Push(value.Span, DisallowedVariableUsage{
			Variable:     varDef.Name,
			VariableType: varDef.Type,
			ArgumentName: usedFor,
			ArgumentType: expected,
		})
		return errVariableUsage
	}
	return nil
}

// variableUsageAllowed compares the list structure and named type of a
// variable with its use. The outermost nullability is not compared: a
// nullable variable in a non-null position fails at coercion time instead.
func variableUsageAllowed(varType, locType *TypeRef) bool {
	return typeFits(varType.Nullable(), locType.Nullable())
}

func typeFits(varType, locType *TypeRef) bool {
	if locType.NonNull {
		if !varType.NonNull {
			return false
		}
		return typeFits(varType.Nullable(), locType.Nullable())
	}
	if varType.NonNull {
		return typeFits(varType.Nullable(), locType)
	}
	if locType.IsList() {
		if !varType.IsList() {
			return false
		}
		return typeFits(varType.Elem, locType.Elem)
	}
	if varType.IsList() {
		return false
	}
	return varType.Named == locType.Named
}
