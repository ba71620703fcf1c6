package quickdirective

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// LoadSchema parses SDL sources and builds a Schema from them, on top of the
// built-ins. Only syntax is checked here; everything else is left to the
// validation passes.
func LoadSchema(sources ...*ast.Source) (*Schema, error) {
	doc, err := parser.ParseSchemas(sources...)
	if err != nil {
		return nil, transformParseError("error parsing schema", err)
	}
	return SchemaFromDocument(doc), nil
}

// LoadSchemaString is LoadSchema for a single unnamed source.
func LoadSchemaString(sdl string) (*Schema, error) {
	return LoadSchema(&ast.Source{Name: "schema.graphql", Input: sdl})
}

// LoadQuery parses an executable document.
func LoadQuery(source *ast.Source) (*ast.QueryDocument, error) {
	doc, err := parser.ParseQuery(source)
	if err != nil {
		return nil, transformParseError("error parsing query", err, source.Name)
	}
	return doc, nil
}

// SchemaFromDocument converts a parsed SDL document. Type extensions are
// folded into the types they extend; an extension of an unknown type becomes
// the type.
func SchemaFromDocument(doc *ast.SchemaDocument) *Schema {
	s := NewSchema()
	for _, def := range doc.Directives {
		s.AddDirectiveDefinition(directiveDefinitionFromAST(def))
	}
	for _, def := range doc.Definitions {
		if t := typeFromAST(def); t != nil {
			s.AddType(t)
		}
	}
	for _, ext := range doc.Extensions {
		t := typeFromAST(ext)
		if t == nil {
			continue
		}
		if existing, ok := s.Types[ext.Name]; ok && existing.Kind() == t.Kind() {
			extendType(existing, t)
			continue
		}
		s.AddType(t)
	}
	for _, def := range doc.Schema {
		s.SchemaDirectives = append(s.SchemaDirectives, directivesFromAST(def.Directives)...)
	}
	for _, ext := range doc.SchemaExtension {
		s.SchemaDirectives = append(s.SchemaDirectives, directivesFromAST(ext.Directives)...)
	}
	return s
}

func extendType(into, ext TypeDefinition) {
	switch into := into.(type) {
	case *ScalarType:
		into.Directives = append(into.Directives, ext.AppliedDirectives()...)
	case *ObjectType:
		e := ext.(*ObjectType)
		into.Directives = append(into.Directives, e.Directives...)
		into.Interfaces = append(into.Interfaces, e.Interfaces...)
		into.Fields = append(into.Fields, e.Fields...)
	case *InterfaceType:
		e := ext.(*InterfaceType)
		into.Directives = append(into.Directives, e.Directives...)
		into.Interfaces = append(into.Interfaces, e.Interfaces...)
		into.Fields = append(into.Fields, e.Fields...)
	case *UnionType:
		e := ext.(*UnionType)
		into.Directives = append(into.Directives, e.Directives...)
		into.Members = append(into.Members, e.Members...)
	case *EnumType:
		e := ext.(*EnumType)
		into.Directives = append(into.Directives, e.Directives...)
		into.Values = append(into.Values, e.Values...)
	case *InputObjectType:
		e := ext.(*InputObjectType)
		into.Directives = append(into.Directives, e.Directives...)
		into.Fields = append(into.Fields, e.Fields...)
	}
}

func typeFromAST(def *ast.Definition) TypeDefinition {
	meta := TypeMeta{
		Description: def.Description,
		Name:        def.Name,
		Directives:  directivesFromAST(def.Directives),
		BuiltIn:     def.BuiltIn,
		Span:        spanFromAST(def.Position),
	}
	switch def.Kind {
	case ast.Scalar:
		return &ScalarType{TypeMeta: meta}
	case ast.Object:
		return &ObjectType{TypeMeta: meta, Interfaces: def.Interfaces, Fields: fieldsFromAST(def.Fields)}
	case ast.Interface:
		return &InterfaceType{TypeMeta: meta, Interfaces: def.Interfaces, Fields: fieldsFromAST(def.Fields)}
	case ast.Union:
		return &UnionType{TypeMeta: meta, Members: def.Types}
	case ast.Enum:
		t := &EnumType{TypeMeta: meta}
		for _, v := range def.EnumValues {
			t.Values = append(t.Values, &EnumValueDefinition{
				Description: v.Description,
				Value:       v.Name,
				Directives:  directivesFromAST(v.Directives),
				Span:        spanFromAST(v.Position),
			})
		}
		return t
	case ast.InputObject:
		t := &InputObjectType{TypeMeta: meta}
		for _, f := range def.Fields {
			t.Fields = append(t.Fields, &InputValueDefinition{
				Description:  f.Description,
				Name:         f.Name,
				Type:         typeRefFromAST(f.Type),
				DefaultValue: valueFromAST(f.DefaultValue),
				Directives:   directivesFromAST(f.Directives),
				Span:         spanFromAST(f.Position),
			})
		}
		return t
	}
	return nil
}

func fieldsFromAST(fields ast.FieldList) []*FieldDefinition {
	var out []*FieldDefinition
	for _, f := range fields {
		out = append(out, &FieldDefinition{
			Description: f.Description,
			Name:        f.Name,
			Arguments:   argumentDefinitionsFromAST(f.Arguments),
			Type:        typeRefFromAST(f.Type),
			Directives:  directivesFromAST(f.Directives),
			Span:        spanFromAST(f.Position),
		})
	}
	return out
}

func directiveDefinitionFromAST(def *ast.DirectiveDefinition) *DirectiveDefinition {
	out := &DirectiveDefinition{
		Description: def.Description,
		Name:        def.Name,
		Arguments:   argumentDefinitionsFromAST(def.Arguments),
		Repeatable:  def.IsRepeatable,
		Span:        spanFromAST(def.Position),
	}
	for _, loc := range def.Locations {
		out.Locations = append(out.Locations, DirectiveLocation(loc))
	}
	return out
}

func argumentDefinitionsFromAST(args ast.ArgumentDefinitionList) []*InputValueDefinition {
	var out []*InputValueDefinition
	for _, arg := range args {
		out = append(out, &InputValueDefinition{
			Description:  arg.Description,
			Name:         arg.Name,
			Type:         typeRefFromAST(arg.Type),
			DefaultValue: valueFromAST(arg.DefaultValue),
			Directives:   directivesFromAST(arg.Directives),
			Span:         spanFromAST(arg.Position),
		})
	}
	return out
}

// VariableDefinitionsFromAST converts an operation's variable definitions.
func VariableDefinitionsFromAST(defs ast.VariableDefinitionList) []*VariableDefinition {
	var out []*VariableDefinition
	for _, def := range defs {
		out = append(out, &VariableDefinition{
			Name:         def.Variable,
			Type:         typeRefFromAST(def.Type),
			DefaultValue: valueFromAST(def.DefaultValue),
			Directives:   directivesFromAST(def.Directives),
			Span:         spanFromAST(def.Position),
		})
	}
	return out
}

// DirectivesFromAST converts a gqlparser directive list.
func DirectivesFromAST(dirs ast.DirectiveList) DirectiveList {
	return directivesFromAST(dirs)
}

func directivesFromAST(dirs ast.DirectiveList) DirectiveList {
	if len(dirs) == 0 {
		return nil
	}
	out := make(DirectiveList, 0, len(dirs))
	for _, d := range dirs {
		span := spanFromAST(d.Position)
		dir := &Directive{
			Name:     d.Name,
			Span:     span,
			NameSpan: SourceSpan{Start: span.Start, End: advance(span.Start, len(d.Name)+1)},
		}
		if span.IsZero() {
			dir.NameSpan = SourceSpan{}
		}
		for _, arg := range d.Arguments {
			dir.Arguments = append(dir.Arguments, &Argument{
				Name:  arg.Name,
				Value: valueFromAST(arg.Value),
				Span:  spanFromAST(arg.Position),
			})
		}
		out = append(out, dir)
	}
	return out
}

func typeRefFromAST(t *ast.Type) *TypeRef {
	if t == nil {
		return nil
	}
	return &TypeRef{
		Named:   t.NamedType,
		Elem:    typeRefFromAST(t.Elem),
		NonNull: t.NonNull,
	}
}

func valueFromAST(v *ast.Value) *Value {
	if v == nil {
		return nil
	}
	out := &Value{Raw: v.Raw, Span: spanFromAST(v.Position)}
	switch v.Kind {
	case ast.Variable:
		out.Kind = VariableValue
	case ast.IntValue:
		out.Kind = IntValue
	case ast.FloatValue:
		out.Kind = FloatValue
	case ast.StringValue, ast.BlockValue:
		out.Kind = StringValue
	case ast.BooleanValue:
		out.Kind = BooleanValue
	case ast.NullValue:
		out.Kind = NullValue
	case ast.EnumValue:
		out.Kind = EnumValue
	case ast.ListValue:
		out.Kind = ListValue
		for _, child := range v.Children {
			out.List = append(out.List, valueFromAST(child.Value))
		}
	case ast.ObjectValue:
		out.Kind = ObjectValue
		for _, child := range v.Children {
			out.Fields = append(out.Fields, &ObjectField{
				Name:  child.Name,
				Value: valueFromAST(child.Value),
				Span:  spanFromAST(child.Position),
			})
		}
	}
	return out
}

func spanFromAST(pos *ast.Position) SourceSpan {
	if pos == nil {
		return SourceSpan{}
	}
	filename := ""
	if pos.Src != nil {
		filename = pos.Src.Name
	}
	start := lexer.Position{Filename: filename, Offset: pos.Start, Line: pos.Line, Column: pos.Column}
	return SourceSpan{Start: start, End: advance(start, pos.End-pos.Start)}
}
