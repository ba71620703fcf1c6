package quickdirective

import (
	"github.com/sirupsen/logrus"
	"github.com/vektah/gqlparser/v2/ast"
)

var typeLocations = map[TypeKind]DirectiveLocation{
	KindScalar:      LocationScalar,
	KindObject:      LocationObject,
	KindInterface:   LocationInterface,
	KindUnion:       LocationUnion,
	KindEnum:        LocationEnum,
	KindInputObject: LocationInputObject,
}

// ValidateSchema validates every directive applied in the type system, then
// every directive definition. Types are visited in name order; built-in types
// are skipped.
func (v *Validator) ValidateSchema(diags *DiagnosticList, schema *Schema) {
	before := diags.Len()
	mode := WithSchema(schema)

	v.ValidateDirectives(diags, mode, schema.SchemaDirectives, LocationSchema, nil)

	for _, name := range sortedKeys(schema.Types) {
		def := schema.Types[name]
		if def.IsBuiltIn() {
			continue
		}
		v.ValidateDirectives(diags, mode, def.AppliedDirectives(), typeLocations[def.Kind()], nil)

		switch def := def.(type) {
		case *ObjectType:
			v.validateFieldDefinitions(diags, schema, def.Fields)
		case *InterfaceType:
			v.validateFieldDefinitions(diags, schema, def.Fields)
		case *EnumType:
			for _, value := range def.Values {
				v.ValidateDirectives(diags, mode, value.Directives, LocationEnumValue, nil)
			}
		case *InputObjectType:
			v.validateArgumentDefinitions(diags, schema, def.Fields, LocationInputFieldDefinition)
		}
	}

	v.ValidateDirectiveDefinitions(diags, schema)

	v.logger().WithFields(logrus.Fields{
		"types":       len(schema.Types),
		"directives":  len(schema.DirectiveDefinitions),
		"diagnostics": diags.Len() - before,
	}).Debug("validated schema directives")
}

func (v *Validator) validateFieldDefinitions(diags *DiagnosticList, schema *Schema, fields []*FieldDefinition) {
	for _, field := range fields {
		v.ValidateDirectives(diags, WithSchema(schema), field.Directives, LocationFieldDefinition, nil)
		v.validateArgumentDefinitions(diags, schema, field.Arguments, LocationArgumentDefinition)
	}
}

var operationLocations = map[ast.Operation]DirectiveLocation{
	ast.Query:        LocationQuery,
	ast.Mutation:     LocationMutation,
	ast.Subscription: LocationSubscription,
}

// ValidateExecutableDocument validates the directives applied in a query
// document: on operations, variable definitions, fields, fragment spreads,
// inline fragments and fragment definitions. Fragment definitions are checked
// with the variables of all operations in scope.
func (v *Validator) ValidateExecutableDocument(diags *DiagnosticList, mode SchemaMode, doc *ast.QueryDocument) {
	var allVarDefs []*VariableDefinition
	for _, op := range doc.Operations {
		varDefs := VariableDefinitionsFromAST(op.VariableDefinitions)
		loc, ok := operationLocations[op.Operation]
		if !ok {
			loc = LocationQuery
		}
		v.ValidateDirectives(diags, mode, directivesFromAST(op.Directives), loc, varDefs)
		for _, varDef := range varDefs {
			v.ValidateDirectives(diags, mode, varDef.Directives, LocationVariableDefinition, varDefs)
		}
		v.validateSelectionSet(diags, mode, op.SelectionSet, varDefs)

		for _, varDef := range varDefs {
			if findVariableDefinition(allVarDefs, varDef.Name) == nil {
				allVarDefs = append(allVarDefs, varDef)
			}
		}
	}

	for _, frag := range doc.Fragments {
		v.ValidateDirectives(diags, mode, directivesFromAST(frag.Directives), LocationFragmentDefinition, allVarDefs)
		v.validateSelectionSet(diags, mode, frag.SelectionSet, allVarDefs)
	}
}

func (v *Validator) validateSelectionSet(diags *DiagnosticList, mode SchemaMode, set ast.SelectionSet, varDefs []*VariableDefinition) {
	for _, sel := range set {
		switch sel := sel.(type) {
		case *ast.Field:
			v.ValidateDirectives(diags, mode, directivesFromAST(sel.Directives), LocationField, varDefs)
			v.validateSelectionSet(diags, mode, sel.SelectionSet, varDefs)
		case *ast.FragmentSpread:
			v.ValidateDirectives(diags, mode, directivesFromAST(sel.Directives), LocationFragmentSpread, varDefs)
		case *ast.InlineFragment:
			v.ValidateDirectives(diags, mode, directivesFromAST(sel.Directives), LocationInlineFragment, varDefs)
			v.validateSelectionSet(diags, mode, sel.SelectionSet, varDefs)
		}
	}
}
