package quickdirective

// Schema is the read-only type system a validation pass runs against. It is
// never mutated by validation, so one Schema may be shared by concurrent
// passes.
type Schema struct {
	Types                map[string]TypeDefinition
	DirectiveDefinitions map[string]*DirectiveDefinition
	// SchemaDirectives are applied to the `schema { ... }` definition.
	SchemaDirectives DirectiveList
}

var builtInScalars = []string{"Int", "Float", "String", "Boolean", "ID"}

// NewSchema returns a schema holding the built-in scalars and directives.
func NewSchema() *Schema {
	s := &Schema{
		Types:                map[string]TypeDefinition{},
		DirectiveDefinitions: map[string]*DirectiveDefinition{},
	}
	for _, name := range builtInScalars {
		s.Types[name] = &ScalarType{TypeMeta{Name: name, BuiltIn: true}}
	}
	for _, def := range builtInDirectives() {
		s.DirectiveDefinitions[def.Name] = def
	}
	return s
}

// AddType registers def, replacing any type of the same name.
func (s *Schema) AddType(def TypeDefinition) *Schema {
	s.Types[def.TypeName()] = def
	return s
}

// AddDirectiveDefinition registers def, replacing any definition of the same
// name, built-ins included.
func (s *Schema) AddDirectiveDefinition(def *DirectiveDefinition) *Schema {
	s.DirectiveDefinitions[def.Name] = def
	return s
}

// Type looks up a type definition by name.
func (s *Schema) Type(name string) (TypeDefinition, bool) {
	def, ok := s.Types[name]
	return def, ok
}

// DirectiveDefinition looks up a directive definition by name.
func (s *Schema) DirectiveDefinition(name string) (*DirectiveDefinition, bool) {
	def, ok := s.DirectiveDefinitions[name]
	return def, ok
}

func builtInDirectives() []*DirectiveDefinition {
	executable := []DirectiveLocation{LocationField, LocationFragmentSpread, LocationInlineFragment}
	return []*DirectiveDefinition{
		{
			Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
			Name:        "skip",
			Arguments: []*InputValueDefinition{
				{Description: "Skipped when true.", Name: "if", Type: NonNullType(NamedType("Boolean"))},
			},
			Locations: executable,
			BuiltIn:   true,
		},
		{
			Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
			Name:        "include",
			Arguments: []*InputValueDefinition{
				{Description: "Included when true.", Name: "if", Type: NonNullType(NamedType("Boolean"))},
			},
			Locations: executable,
			BuiltIn:   true,
		},
		{
			Description: "Marks an element of a GraphQL schema as no longer supported.",
			Name:        "deprecated",
			Arguments: []*InputValueDefinition{
				{
					Name:         "reason",
					Type:         NamedType("String"),
					DefaultValue: &Value{Kind: StringValue, Raw: "No longer supported"},
				},
			},
			Locations: []DirectiveLocation{
				LocationFieldDefinition,
				LocationArgumentDefinition,
				LocationInputFieldDefinition,
				LocationEnumValue,
			},
			BuiltIn: true,
		},
		{
			Description: "Exposes a URL that specifies the behaviour of this scalar.",
			Name:        "specifiedBy",
			Arguments: []*InputValueDefinition{
				{Description: "The URL that specifies the behaviour of this scalar.", Name: "url", Type: NonNullType(NamedType("String"))},
			},
			Locations: []DirectiveLocation{LocationScalar},
			BuiltIn:   true,
		},
	}
}

// SchemaMode says whether a pass has a schema to check against. Without one
// only schema-independent checks run.
type SchemaMode struct {
	schema *Schema
}

// WithSchema validates against s.
func WithSchema(s *Schema) SchemaMode {
	return SchemaMode{schema: s}
}

// DocumentOnly validates a document without a schema.
func DocumentOnly() SchemaMode {
	return SchemaMode{}
}

// Schema returns the schema, if there is one.
func (m SchemaMode) Schema() (*Schema, bool) {
	return m.schema, m.schema != nil
}
