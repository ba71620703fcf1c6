package quickdirective

import (
	"strconv"
)

// validateValue checks a literal against the type it is supplied for. With
// skipTopLevelNull a `null` at the top is not reported here because the
// required-argument check already covers it.
func (v *Validator) validateValue(diags *DiagnosticList, schema *Schema, ty *TypeRef, value *Value, varDefs []*VariableDefinition, skipTopLevelNull bool) {
	if value == nil || ty == nil {
		return
	}
	switch value.Kind {
	case VariableValue:
		// Top-level variables went through validateVariableUsage already.
		return
	case NullValue:
		if ty.NonNull && !skipTopLevelNull {
			diags.Push(value.Span, UnsupportedValueType{Value: value.String(), ExpectedType: ty})
		}
		return
	}
	v.validateNonNullValue(diags, schema, ty, value, varDefs)
}

func (v *Validator) validateNestedValue(diags *DiagnosticList, schema *Schema, ty *TypeRef, value *Value, usedFor string, varDefs []*VariableDefinition) {
	if value == nil {
		return
	}
	switch value.Kind {
	case VariableValue:
		_ = v.checkVariable(diags, value, usedFor, ty, varDefs)
		return
	case NullValue:
		if ty.NonNull {
			diags.Push(value.Span, UnsupportedValueType{Value: value.String(), ExpectedType: ty})
		}
		return
	}
	v.validateNonNullValue(diags, schema, ty, value, varDefs)
}

func (v *Validator) validateNonNullValue(diags *DiagnosticList, schema *Schema, ty *TypeRef, value *Value, varDefs []*VariableDefinition) {
	if ty.IsList() {
		if value.Kind == ListValue {
			for _, item := range value.List {
				v.validateNestedValue(diags, schema, ty.Elem, item, "", varDefs)
			}
			return
		}
		// A single value is coerced to a list of one.
		v.validateNestedValue(diags, schema, ty.Elem, value, "", varDefs)
		return
	}

	def, ok := schema.Types[ty.Named]
	if !ok {
		// Unknown types are reported where they are declared.
		return
	}

	switch def := def.(type) {
	case *ScalarType:
		if !scalarAccepts(def, value) {
			diags.Push(value.Span, UnsupportedValueType{Value: value.String(), ExpectedType: ty})
		}
	case *EnumType:
		if value.Kind != EnumValue || !def.HasValue(value.Raw) {
			diags.Push(value.Span, UnsupportedValueType{Value: value.String(), ExpectedType: ty})
		}
	case *InputObjectType:
		if value.Kind != ObjectValue {
			diags.Push(value.Span, UnsupportedValueType{Value: value.String(), ExpectedType: ty})
			return
		}
		v.validateObjectValue(diags, schema, def, value, varDefs)
	}
}

func (v *Validator) validateObjectValue(diags *DiagnosticList, schema *Schema, def *InputObjectType, value *Value, varDefs []*VariableDefinition) {
	for _, field := range value.Fields {
		fieldDef, ok := def.Field(field.Name)
		if !ok {
			diags.Push(field.Span, UndefinedInputField{Name: field.Name, TypeName: def.Name})
			continue
		}
		v.validateNestedValue(diags, schema, fieldDef.Type, field.Value, field.Name, varDefs)
	}
	for _, fieldDef := range def.Fields {
		if !fieldDef.IsRequired() {
			continue
		}
		field, ok := value.Field(fieldDef.Name)
		if !ok || field.Value.IsNull() {
			diags.Push(value.Span, RequiredInputField{Name: fieldDef.Name, TypeName: def.Name, ExpectedType: fieldDef.Type})
		}
	}
}

// scalarAccepts applies the built-in scalar input rules. Custom scalars take
// any literal.
func scalarAccepts(def *ScalarType, value *Value) bool {
	if !def.BuiltIn {
		return true
	}
	switch def.Name {
	case "Int":
		if value.Kind != IntValue {
			return false
		}
		_, err := strconv.ParseInt(value.Raw, 10, 32)
		return err == nil
	case "Float":
		return value.Kind == IntValue || value.Kind == FloatValue
	case "String":
		return value.Kind == StringValue
	case "Boolean":
		return value.Kind == BooleanValue
	case "ID":
		return value.Kind == StringValue || value.Kind == IntValue
	}
	return true
}
