package quickdirective

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

const applicationSchema = `
directive @once on FIELD
directive @rep repeatable on FIELD
directive @needsArg(x: Int!) on FIELD
directive @withDefault(x: Int! = 1) on FIELD
directive @known on OBJECT
directive @filter(by: Filter, tags: [String!], mode: Mode) on FIELD | QUERY
input Filter { name: String!, limit: Int }
enum Mode { FAST SLOW }
type Query { id: ID }
`

func validateQuery(t *testing.T, mode SchemaMode, query string) *DiagnosticList {
	t.Helper()
	doc, err := LoadQuery(&ast.Source{Name: "query.graphql", Input: query})
	require.NoError(t, err)
	diags := &DiagnosticList{}
	(&Validator{}).ValidateExecutableDocument(diags, mode, doc)
	return diags
}

func codes(diags *DiagnosticList) []string {
	var out []string
	for _, d := range diags.All() {
		out = append(out, d.Data.Code())
	}
	return out
}

func TestValidateDirectives_Applications(t *testing.T) {
	schema := mustLoadSchema(t, applicationSchema)

	tests := []struct {
		name  string
		query string
		codes []string
	}{
		{name: "valid", query: `{ id @once }`},
		{name: "non-repeatable twice", query: `{ id @once @once }`, codes: []string{"UNIQUE_DIRECTIVE"}},
		{name: "repeatable twice", query: `{ id @rep @rep }`},
		{name: "missing required argument", query: `{ id @needsArg }`, codes: []string{"REQUIRED_ARGUMENT"}},
		{name: "null required argument", query: `{ id @needsArg(x: null) }`, codes: []string{"REQUIRED_ARGUMENT"}},
		{name: "variable for required argument", query: `query($v: Int) { id @needsArg(x: $v) }`},
		{name: "non-null variable", query: `query($v: Int!) { id @needsArg(x: $v) }`},
		{name: "required argument supplied", query: `{ id @needsArg(x: 3) }`},
		{name: "argument with default", query: `{ id @withDefault }`},
		{name: "null for argument with default", query: `{ id @withDefault(x: null) }`, codes: []string{"UNSUPPORTED_VALUE_TYPE"}},
		{name: "wrong location", query: `{ id @known }`, codes: []string{"UNSUPPORTED_DIRECTIVE_LOCATION"}},
		{name: "undefined directive", query: `{ id @neverDeclared }`, codes: []string{"UNDEFINED_DIRECTIVE"}},
		{name: "undefined directive repeated", query: `{ id @neverDeclared @neverDeclared }`, codes: []string{"UNDEFINED_DIRECTIVE", "UNDEFINED_DIRECTIVE"}},
		{name: "undefined argument", query: `{ id @once(x: 1) }`, codes: []string{"UNDEFINED_ARGUMENT"}},
		{name: "wrong literal", query: `{ id @needsArg(x: "one") }`, codes: []string{"UNSUPPORTED_VALUE_TYPE"}},
		{name: "int out of range", query: `{ id @needsArg(x: 3000000000) }`, codes: []string{"UNSUPPORTED_VALUE_TYPE"}},
		{name: "undefined variable", query: `{ id @needsArg(x: $v) }`, codes: []string{"UNDEFINED_VARIABLE"}},
		{name: "variable of wrong type", query: `query($v: String) { id @needsArg(x: $v) }`, codes: []string{"DISALLOWED_VARIABLE_USAGE"}},
		{name: "input object", query: `{ id @filter(by: {name: "a", limit: 2}, mode: FAST) }`},
		{name: "input object missing field", query: `{ id @filter(by: {limit: 2}) }`, codes: []string{"REQUIRED_INPUT_FIELD"}},
		{name: "input object unknown field", query: `{ id @filter(by: {name: "a", size: 2}) }`, codes: []string{"UNDEFINED_INPUT_FIELD"}},
		{name: "enum value", query: `{ id @filter(mode: MEDIUM) }`, codes: []string{"UNSUPPORTED_VALUE_TYPE"}},
		{name: "enum as string", query: `{ id @filter(mode: "FAST") }`, codes: []string{"UNSUPPORTED_VALUE_TYPE"}},
		{name: "list coercion", query: `{ id @filter(tags: "single") }`},
		{name: "null list item", query: `{ id @filter(tags: ["a", null]) }`, codes: []string{"UNSUPPORTED_VALUE_TYPE"}},
		{name: "nested variable", query: `query($n: String!) { id @filter(by: {name: $n}) }`},
		{name: "nested variable of wrong type", query: `query($n: Int!) { id @filter(by: {name: $n}) }`, codes: []string{"DISALLOWED_VARIABLE_USAGE"}},
		{name: "operation location", query: `query @filter(mode: SLOW) { id }`},
		{name: "mutation location", query: `mutation @filter { id }`, codes: []string{"UNSUPPORTED_DIRECTIVE_LOCATION"}},
		{name: "built-in skip", query: `query($s: Boolean!) { id @skip(if: $s) }`},
		{name: "built-in include missing if", query: `{ id @include }`, codes: []string{"REQUIRED_ARGUMENT"}},
		{name: "duplicate argument", query: `{ id @needsArg(x: 1, x: 2) }`, codes: []string{"UNIQUE_ARGUMENT"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := validateQuery(t, WithSchema(schema), tt.query)
			assert.Equal(t, tt.codes, codes(diags), diags.String())
		})
	}
}

func TestValidateDirectives_UniqueDirectivePointsAtFirst(t *testing.T) {
	schema := mustLoadSchema(t, applicationSchema)
	diags := validateQuery(t, WithSchema(schema), `{ id @once @once }`)

	require.Equal(t, 1, diags.Len())
	d := diags.All()[0]
	data := d.Data.(UniqueDirective)
	assert.Equal(t, "once", data.Name)
	assert.Equal(t, 1, data.OriginalApplication.Start.Line)
	assert.Less(t, data.OriginalApplication.Start.Column, d.Span.Start.Column)
}

func TestValidateDirectives_UnsupportedLocationDetails(t *testing.T) {
	schema := mustLoadSchema(t, applicationSchema)
	diags := validateQuery(t, WithSchema(schema), `{ id @known }`)

	require.Equal(t, 1, diags.Len())
	data := diags.All()[0].Data.(UnsupportedLocation)
	assert.Equal(t, LocationField, data.Location)
	assert.Equal(t, []DirectiveLocation{LocationObject}, data.ValidLocations)
	assert.False(t, data.DefinitionLocation.IsZero())
	assert.Equal(t, "`@known` directive is not supported for FIELD location (valid locations: OBJECT)", data.Message())
}

func TestValidateDirectives_RequiredArgumentDetails(t *testing.T) {
	schema := mustLoadSchema(t, applicationSchema)
	diags := validateQuery(t, WithSchema(schema), `{ id @needsArg }`)

	require.Equal(t, 1, diags.Len())
	data := diags.All()[0].Data.(RequiredArgument)
	assert.Equal(t, "x", data.Name)
	assert.Equal(t, "Int!", data.ExpectedType.String())
	assert.Equal(t, "the required argument `@needsArg(x:)` of type `Int!` is not provided", data.Message())
}

func TestValidateDirectives_Suggestions(t *testing.T) {
	schema := mustLoadSchema(t, applicationSchema)

	diags := validateQuery(t, WithSchema(schema), `{ id @onse }`)
	require.Equal(t, 1, diags.Len())
	assert.Equal(t, "cannot find directive `@onse` in this document; did you mean `@once`?", diags.All()[0].Data.Message())

	diags = validateQuery(t, WithSchema(schema), `{ id @needsArg(xx: 1, x: 1) }`)
	require.Equal(t, 1, diags.Len())
	data := diags.All()[0].Data.(UndefinedArgument)
	assert.Equal(t, "x", data.Suggestion)
	assert.Equal(t, "the argument `xx` is not supported by `@needsArg`; did you mean `x`?", data.Message())

	diags = validateQuery(t, WithSchema(schema), `{ id @zzzzzz }`)
	require.Equal(t, 1, diags.Len())
	assert.Equal(t, "", diags.All()[0].Data.(UndefinedDirective).Suggestion)
}

func TestValidateDirectives_DocumentOnly(t *testing.T) {
	tests := []struct {
		name  string
		query string
		codes []string
	}{
		{name: "undefined directive", query: `{ id @neverDeclared }`},
		{name: "unknown repeated", query: `{ id @neverDeclared @neverDeclared }`},
		{name: "duplicate argument", query: `{ id @a(x: 1, x: 2) }`, codes: []string{"UNIQUE_ARGUMENT"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := validateQuery(t, DocumentOnly(), tt.query)
			assert.Equal(t, tt.codes, codes(diags), diags.String())
		})
	}
}

func TestValidateDirectives_Fragments(t *testing.T) {
	schema := mustLoadSchema(t, applicationSchema)
	diags := validateQuery(t, WithSchema(schema), `
query Q($v: Int!) {
  ...F @once
  ... on Query @needsArg(x: $v) { id @rep }
}
fragment F on Query @filter { id @needsArg(x: $v) @unknown }
`)
	// @once on a spread and @needsArg on an inline fragment are in the wrong
	// location, @filter is not allowed on fragment definitions, and @unknown
	// is undefined. $v resolves inside the fragment.
	assert.Equal(t, []string{
		"UNSUPPORTED_DIRECTIVE_LOCATION",
		"UNSUPPORTED_DIRECTIVE_LOCATION",
		"UNSUPPORTED_DIRECTIVE_LOCATION",
		"UNDEFINED_DIRECTIVE",
	}, codes(diags), diags.String())
}

func TestValidateDirectives_VariableDefinitionDirectives(t *testing.T) {
	schema := mustLoadSchema(t, applicationSchema+`
directive @meta(note: String) on VARIABLE_DEFINITION
`)
	diags := validateQuery(t, WithSchema(schema), `query($v: Int @meta(note: "x") @once) { id }`)
	assert.Equal(t, []string{"UNSUPPORTED_DIRECTIVE_LOCATION"}, codes(diags), diags.String())
}

func TestValidateDirectives_CompactNotation(t *testing.T) {
	schema := mustLoadSchema(t, applicationSchema)
	v := Validator{}

	diags := &DiagnosticList{}
	v.ValidateDirectives(diags, WithSchema(schema), MustParseDirectives(`@needsArg(x: 1) @rep @rep`), LocationField, nil)
	assert.True(t, diags.IsEmpty(), diags.String())

	diags = &DiagnosticList{}
	v.ValidateDirectives(diags, WithSchema(schema), MustParseDirectives(`@needsArg(x: $v)`), LocationField, []*VariableDefinition{
		{Name: "v", Type: MustParseType("[Int]")},
	})
	require.Equal(t, 1, diags.Len())
	data := diags.All()[0].Data.(DisallowedVariableUsage)
	assert.Equal(t, "variable `$v` of type `[Int]` cannot be used for argument `x` of type `Int!`", data.Message())
}

func TestVariableUsageAllowed(t *testing.T) {
	tests := []struct {
		varType string
		locType string
		allowed bool
	}{
		{"Int", "Int", true},
		{"Int!", "Int", true},
		{"Int", "Int!", true},
		{"String", "Int", false},
		{"[Int]", "[Int]", true},
		{"[Int!]", "[Int]", true},
		{"[Int]", "[Int!]", false},
		{"[Int]", "Int", false},
		{"Int", "[Int]", false},
		{"[[Int!]!]!", "[[Int]]", true},
		{"[[Int]]", "[[Int!]]", false},
	}
	for _, tt := range tests {
		t.Run(tt.varType+" as "+tt.locType, func(t *testing.T) {
			assert.Equal(t, tt.allowed, variableUsageAllowed(MustParseType(tt.varType), MustParseType(tt.locType)))
		})
	}
}
