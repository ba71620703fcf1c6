package quickdirective

import (
	"strconv"
	"strings"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	NullValue ValueKind = iota
	VariableValue
	IntValue
	FloatValue
	StringValue
	BooleanValue
	EnumValue
	ListValue
	ObjectValue
)

var valueKindNames = map[ValueKind]string{
	NullValue:     "null",
	VariableValue: "variable",
	IntValue:      "Int",
	FloatValue:    "Float",
	StringValue:   "String",
	BooleanValue:  "Boolean",
	EnumValue:     "enum",
	ListValue:     "list",
	ObjectValue:   "object",
}

func (k ValueKind) String() string {
	if name, ok := valueKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Value is a GraphQL input literal. Raw holds the scalar text: the variable
// name without `$`, the unquoted string, the digits of a number, `true`,
// `false`, or the enum value name.
type Value struct {
	Kind   ValueKind
	Raw    string
	List   []*Value
	Fields []*ObjectField
	Span   SourceSpan
}

// ObjectField is one `name: value` entry of an object literal.
type ObjectField struct {
	Name  string
	Value *Value
	Span  SourceSpan
}

// IsNull reports whether the value is the literal `null`.
func (v *Value) IsNull() bool {
	return v != nil && v.Kind == NullValue
}

// Field returns the object field with the given name.
func (v *Value) Field(name string) (*ObjectField, bool) {
	for _, f := range v.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

func (v *Value) String() string {
	if v == nil {
		return "<none>"
	}
	switch v.Kind {
	case NullValue:
		return "null"
	case VariableValue:
		return "$" + v.Raw
	case StringValue:
		return strconv.Quote(v.Raw)
	case ListValue:
		items := make([]string, len(v.List))
		for i, item := range v.List {
			items[i] = item.String()
		}
		return "[" + strings.Join(items, ", ") + "]"
	case ObjectValue:
		fields := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = f.Name + ": " + f.Value.String()
		}
		return "{" + strings.Join(fields, ", ") + "}"
	default:
		return v.Raw
	}
}
