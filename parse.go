package quickdirective

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The compact notation covers the fragments of GraphQL needed to assemble a
// schema in Go: type references (`[In!]!`), input values
// (`{a: [1, 2], b: $v}`) and directive lists (`@a(x: 1) @b`).

type directiveListNode struct {
	Directives []*directiveNode `parser:"@@*"`
}

type directiveNode struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Name      string            `parser:"@Directive"`
	Arguments []*namedValueNode `parser:"( '(' @@* ')' )?"`
}

type namedValueNode struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   string     `parser:"@Ident ':'"`
	Value  *valueNode `parser:"@@"`
}

// valueNode is a value of some type. `null`, `true`, `false` and enum values
// all lex as identifiers and are told apart afterwards.
type valueNode struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Variable *string     `parser:"  @Variable"`
	String   *string     `parser:"| @String"`
	Float    *string     `parser:"| @Float"`
	Int      *string     `parser:"| @Int"`
	Ident    *string     `parser:"| @Ident"`
	List     *listNode   `parser:"| @@"`
	Object   *objectNode `parser:"| @@"`
}

type listNode struct {
	Open  string       `parser:"@'['"`
	Items []*valueNode `parser:"@@* ']'"`
}

type objectNode struct {
	Open   string            `parser:"@'{'"`
	Fields []*namedValueNode `parser:"@@* '}'"`
}

type typeNode struct {
	Base    *typeBaseNode `parser:"@@"`
	NonNull bool          `parser:"@'!'?"`
}

type typeBaseNode struct {
	List  *typeNode `parser:"  '[' @@ ']'"`
	Named *string   `parser:"| @Ident"`
}

var (
	compactLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Whitespace", Pattern: `[\s,]+`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Float", Pattern: `-?\d+(?:\.\d+(?:[eE][+-]?\d+)?|[eE][+-]?\d+)`},
		{Name: "Int", Pattern: `-?\d+`},
		{Name: "Variable", Pattern: `\$[_A-Za-z][_0-9A-Za-z]*`},
		{Name: "Directive", Pattern: `@[_A-Za-z][_0-9A-Za-z]*`},
		{Name: "Ident", Pattern: `[_A-Za-z][_0-9A-Za-z]*`},
		{Name: "Punct", Pattern: `[!:()\[\]{}]`},
	})
	directiveParser = participle.MustBuild[directiveListNode](
		participle.Lexer(compactLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(2),
	)
	valueParser = participle.MustBuild[valueNode](
		participle.Lexer(compactLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(2),
	)
	typeParser = participle.MustBuild[typeNode](
		participle.Lexer(compactLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// ParseType parses a type reference such as `[String!]!`.
func ParseType(input string) (*TypeRef, error) {
	n, err := typeParser.ParseString("", input)
	if err != nil {
		return nil, transformParseError("error parsing type", err)
	}
	return n.typeRef(), nil
}

// MustParseType is ParseType for literals known to be valid; it panics on error.
func MustParseType(input string) *TypeRef {
	t, err := ParseType(input)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseValue parses an input value literal.
func ParseValue(input string) (*Value, error) {
	n, err := valueParser.ParseString("", input)
	if err != nil {
		return nil, transformParseError("error parsing value", err)
	}
	return n.value(), nil
}

// MustParseValue is ParseValue for literals known to be valid; it panics on error.
func MustParseValue(input string) *Value {
	v, err := ParseValue(input)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseDirectives parses a whitespace separated list of directive
// applications. filename is recorded in the resulting source spans.
func ParseDirectives(filename string, input string) (DirectiveList, error) {
	n, err := directiveParser.ParseString(filename, input)
	if err != nil {
		return nil, transformParseError("error parsing directives", err)
	}
	dirs := make(DirectiveList, len(n.Directives))
	for i, d := range n.Directives {
		dirs[i] = d.directive()
	}
	return dirs, nil
}

// MustParseDirectives is ParseDirectives for literals known to be valid; it
// panics on error.
func MustParseDirectives(input string) DirectiveList {
	dirs, err := ParseDirectives("", input)
	if err != nil {
		panic(err)
	}
	return dirs
}

func (n *typeNode) typeRef() *TypeRef {
	t := &TypeRef{NonNull: n.NonNull}
	if n.Base.List != nil {
		t.Elem = n.Base.List.typeRef()
	} else if n.Base.Named != nil {
		t.Named = *n.Base.Named
	}
	return t
}

func (n *directiveNode) directive() *Directive {
	d := &Directive{
		Name:     n.Name[1:],
		Span:     SourceSpan{Start: n.Pos, End: n.EndPos},
		NameSpan: SourceSpan{Start: n.Pos, End: advance(n.Pos, len(n.Name))},
	}
	for _, arg := range n.Arguments {
		d.Arguments = append(d.Arguments, &Argument{
			Name:  arg.Name,
			Value: arg.Value.value(),
			Span:  SourceSpan{Start: arg.Pos, End: arg.EndPos},
		})
	}
	return d
}

func (n *valueNode) value() *Value {
	v := &Value{Span: SourceSpan{Start: n.Pos, End: n.EndPos}}
	switch {
	case n.Variable != nil:
		v.Kind = VariableValue
		v.Raw = (*n.Variable)[1:]
	case n.String != nil:
		v.Kind = StringValue
		v.Raw = unquote(*n.String)
	case n.Float != nil:
		v.Kind = FloatValue
		v.Raw = *n.Float
	case n.Int != nil:
		v.Kind = IntValue
		v.Raw = *n.Int
	case n.Ident != nil:
		v.Raw = *n.Ident
		switch v.Raw {
		case "null":
			v.Kind = NullValue
		case "true", "false":
			v.Kind = BooleanValue
		default:
			v.Kind = EnumValue
		}
	case n.List != nil:
		v.Kind = ListValue
		v.List = make([]*Value, len(n.List.Items))
		for i, item := range n.List.Items {
			v.List[i] = item.value()
		}
	case n.Object != nil:
		v.Kind = ObjectValue
		for _, f := range n.Object.Fields {
			v.Fields = append(v.Fields, &ObjectField{
				Name:  f.Name,
				Value: f.Value.value(),
				Span:  SourceSpan{Start: f.Pos, End: f.EndPos},
			})
		}
	}
	return v
}

func unquote(s string) string {
	if u, err := strconv.Unquote(s); err == nil {
		return u
	}
	return s[1 : len(s)-1]
}

// advance moves a single-line position n bytes forward.
func advance(pos lexer.Position, n int) lexer.Position {
	pos.Offset += n
	pos.Column += n
	return pos
}
