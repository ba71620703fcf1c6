package quickdirective

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// DirectiveLocation is the syntactic category a directive is applied to. The
// values are the GraphQL location names so they round-trip through SDL.
type DirectiveLocation string

const (
	LocationQuery                DirectiveLocation = "QUERY"
	LocationMutation             DirectiveLocation = "MUTATION"
	LocationSubscription         DirectiveLocation = "SUBSCRIPTION"
	LocationField                DirectiveLocation = "FIELD"
	LocationFragmentDefinition   DirectiveLocation = "FRAGMENT_DEFINITION"
	LocationFragmentSpread       DirectiveLocation = "FRAGMENT_SPREAD"
	LocationInlineFragment       DirectiveLocation = "INLINE_FRAGMENT"
	LocationVariableDefinition   DirectiveLocation = "VARIABLE_DEFINITION"
	LocationSchema               DirectiveLocation = "SCHEMA"
	LocationScalar               DirectiveLocation = "SCALAR"
	LocationObject               DirectiveLocation = "OBJECT"
	LocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	LocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	LocationInterface            DirectiveLocation = "INTERFACE"
	LocationUnion                DirectiveLocation = "UNION"
	LocationEnum                 DirectiveLocation = "ENUM"
	LocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	LocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	LocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// SourceSpan is a region of a source document. The zero value means the
// location is unknown, which is the case for built-ins and values assembled
// in Go.
type SourceSpan struct {
	Start lexer.Position
	End   lexer.Position
}

// IsZero reports whether the span carries no location.
func (s SourceSpan) IsZero() bool {
	return s.Start.Line == 0 && s.Start.Offset == 0 && s.End.Offset == 0
}

// Recompose returns a span from the start of s to the end of end. It is used
// to point at the "head" of a construct, e.g. `directive @name`.
func (s SourceSpan) Recompose(end SourceSpan) SourceSpan {
	if s.IsZero() {
		return end
	}
	if end.IsZero() {
		return s
	}
	return SourceSpan{Start: s.Start, End: end.End}
}

func (s SourceSpan) String() string {
	if s.IsZero() {
		return "<unknown>"
	}
	if s.Start.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Start.Filename, s.Start.Line, s.Start.Column)
	}
	return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Column)
}

// Directive is one application of a directive, e.g. `@include(if: $x)`.
type Directive struct {
	Name      string
	Arguments []*Argument
	Span      SourceSpan
	NameSpan  SourceSpan
}

// Argument is a (name, value) pair supplied to a directive application.
type Argument struct {
	Name  string
	Value *Value
	Span  SourceSpan
}

// DirectiveList is an ordered list of directive applications at one location.
type DirectiveList []*Directive

// HeadSpan covers the `@name` part of the application.
func (d *Directive) HeadSpan() SourceSpan {
	return d.Span.Recompose(d.NameSpan)
}

// Argument returns the supplied argument with the given name.
func (d *Directive) Argument(name string) (*Argument, bool) {
	for _, arg := range d.Arguments {
		if arg.Name == name {
			return arg, true
		}
	}
	return nil, false
}

func (d *Directive) String() string {
	s := strings.Builder{}
	s.WriteString("@")
	s.WriteString(d.Name)
	if len(d.Arguments) > 0 {
		s.WriteString("(")
		for i, arg := range d.Arguments {
			if i > 0 {
				s.WriteString(", ")
			}
			s.WriteString(arg.Name)
			s.WriteString(": ")
			s.WriteString(arg.Value.String())
		}
		s.WriteString(")")
	}
	return s.String()
}

// Get returns all applications with the given name.
func (l DirectiveList) Get(name string) DirectiveList {
	var out DirectiveList
	for _, d := range l {
		if d.Name == name {
			out = append(out, d)
		}
	}
	return out
}

func (l DirectiveList) String() string {
	return strings.Join(toStringSlice(l), " ")
}

// DirectiveDefinition declares a directive: its arguments, whether it may
// repeat at one location, and where it may be applied.
type DirectiveDefinition struct {
	Description string
	Name        string
	Arguments   []*InputValueDefinition
	Repeatable  bool
	Locations   []DirectiveLocation
	BuiltIn     bool
	Span        SourceSpan
	NameSpan    SourceSpan
}

// HeadSpan covers `directive @name`.
func (d *DirectiveDefinition) HeadSpan() SourceSpan {
	return d.Span.Recompose(d.NameSpan)
}

// Argument returns the argument definition with the given name.
func (d *DirectiveDefinition) Argument(name string) (*InputValueDefinition, bool) {
	for _, arg := range d.Arguments {
		if arg.Name == name {
			return arg, true
		}
	}
	return nil, false
}

// InputValueDefinition is an argument definition or an input object field.
type InputValueDefinition struct {
	Description  string
	Name         string
	Type         *TypeRef
	DefaultValue *Value
	Directives   DirectiveList
	Span         SourceSpan
}

// IsRequired reports whether every use must supply a non-null value: the type
// is non-null and there is no default.
func (iv *InputValueDefinition) IsRequired() bool {
	return iv.Type != nil && iv.Type.NonNull && iv.DefaultValue == nil
}

// VariableDefinition is `$name: Type = default @dirs` on an operation.
type VariableDefinition struct {
	Name         string
	Type         *TypeRef
	DefaultValue *Value
	Directives   DirectiveList
	Span         SourceSpan
}

func findVariableDefinition(defs []*VariableDefinition, name string) *VariableDefinition {
	for _, def := range defs {
		if def.Name == name {
			return def
		}
	}
	return nil
}
