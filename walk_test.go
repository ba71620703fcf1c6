package quickdirective

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSchema_Clean(t *testing.T) {
	schema := mustLoadSchema(t, `
directive @key(fields: String!) repeatable on OBJECT | INTERFACE
directive @auth(roles: [Role!]!) on FIELD_DEFINITION
directive @limit(max: Int = 10) on ARGUMENT_DEFINITION | INPUT_FIELD_DEFINITION
enum Role { ADMIN USER @deprecated(reason: "use ADMIN") }
interface Node @key(fields: "id") { id: ID! }
type Query @key(fields: "id") @key(fields: "sku") {
  id: ID!
  items(first: Int @limit(max: 5)): [Item] @auth(roles: [ADMIN])
}
type Item implements Node { id: ID! }
input Page { size: Int @limit }
scalar Time @specifiedBy(url: "https://example.com/time")
union Anything = Query | Item
`)
	diags := &DiagnosticList{}
	(&Validator{}).ValidateSchema(diags, schema)
	assert.True(t, diags.IsEmpty(), diags.String())
}

func TestValidateSchema_Locations(t *testing.T) {
	schema := mustLoadSchema(t, `
directive @onField on FIELD
directive @once on OBJECT
schema @onField { query: Query }
scalar S @onField
type Query @onField @once @once { f(a: Int @onField): Int @onField }
interface I @onField { f: Int }
union U @onField = Query
enum E @onField { A @onField }
input In @onField { a: Int @onField }
`)
	diags := &DiagnosticList{}
	(&Validator{}).ValidateSchema(diags, schema)

	var locations []DirectiveLocation
	unique := 0
	for _, d := range diags.All() {
		switch data := d.Data.(type) {
		case UnsupportedLocation:
			locations = append(locations, data.Location)
		case UniqueDirective:
			unique++
		default:
			t.Errorf("unexpected diagnostic %s", d)
		}
	}
	// Schema directives first, then types in name order, each type's own
	// directives before its members.
	assert.Equal(t, []DirectiveLocation{
		LocationSchema,
		LocationEnum, LocationEnumValue,
		LocationInterface,
		LocationInputObject, LocationInputFieldDefinition,
		LocationObject, LocationFieldDefinition, LocationArgumentDefinition,
		LocationScalar,
		LocationUnion,
	}, locations)
	assert.Equal(t, 1, unique)
}

func TestValidateSchema_DefinitionsAndTypes(t *testing.T) {
	schema := mustLoadSchema(t, `
directive @cycle(x: In) on INPUT_FIELD_DEFINITION
input In { v: Int @cycle }
type Query { f(arg: Missing, out: Query, __bad: Int): Int }
input Bad { nested: Query, d: Int = "x" }
`)
	diags := &DiagnosticList{}
	(&Validator{}).ValidateSchema(diags, schema)

	assert.Equal(t, []string{
		// Bad
		"INPUT_TYPE_EXPECTED",
		"UNSUPPORTED_VALUE_TYPE",
		// Query
		"UNDEFINED_TYPE",
		"INPUT_TYPE_EXPECTED",
		"RESERVED_NAME",
		// @cycle
		"RECURSIVE_DIRECTIVE_DEFINITION",
	}, codes(diags), diags.String())
}

func TestValidateSchema_ExtensionsAreValidated(t *testing.T) {
	schema := mustLoadSchema(t, `
directive @once on OBJECT
type Query @once { a: Int }
extend type Query @once
`)
	diags := &DiagnosticList{}
	(&Validator{}).ValidateSchema(diags, schema)
	assert.Equal(t, []string{"UNIQUE_DIRECTIVE"}, codes(diags))
}

func TestValidateSchema_LogsSummary(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	schema := mustLoadSchema(t, `type Query { f: Int @nope }`)
	diags := &DiagnosticList{}
	(&Validator{Logger: logger}).ValidateSchema(diags, schema)

	require.Equal(t, 1, diags.Len())
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "validated schema directives", entry.Message)
	assert.Equal(t, 1, entry.Data["diagnostics"])
}

func TestValidateExecutableDocument_Sorted(t *testing.T) {
	schema := mustLoadSchema(t, applicationSchema)
	diags := validateQuery(t, WithSchema(schema), `
fragment F on Query { id @nope }
query { id @once @once ...F }
`)
	// Operations are walked before fragments; Sort puts them in source order.
	require.Equal(t, []string{"UNIQUE_DIRECTIVE", "UNDEFINED_DIRECTIVE"}, codes(diags))
	diags.Sort()
	assert.Equal(t, []string{"UNDEFINED_DIRECTIVE", "UNIQUE_DIRECTIVE"}, codes(diags))
}
