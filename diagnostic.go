package quickdirective

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// DiagnosticData is the kind-specific payload of a Diagnostic.
type DiagnosticData interface {
	// Code is a stable machine-readable identifier for the kind.
	Code() string
	Message() string
}

// Diagnostic is one problem found by validation.
type Diagnostic struct {
	Span SourceSpan
	Data DiagnosticData
}

func (d Diagnostic) String() string {
	if d.Span.IsZero() {
		return d.Data.Message()
	}
	return d.Span.String() + ": " + d.Data.Message()
}

// GraphError converts the diagnostic to the JSON error shape.
func (d Diagnostic) GraphError() GraphError {
	gErr := GraphError{Message: d.Data.Message()}
	if !d.Span.IsZero() {
		gErr.Locations = append(gErr.Locations, lexerPositionError(d.Span.Start))
	}
	gErr.AddExtension("code", d.Data.Code())
	return gErr
}

// DiagnosticList is the ordered, append-only sink validation writes to. It is
// not safe for concurrent use; concurrent passes fill their own lists and
// Merge them.
type DiagnosticList struct {
	items []Diagnostic
}

// Push appends a diagnostic.
func (l *DiagnosticList) Push(span SourceSpan, data DiagnosticData) {
	l.items = append(l.items, Diagnostic{Span: span, Data: data})
}

// Merge appends all diagnostics of other, keeping their order.
func (l *DiagnosticList) Merge(other *DiagnosticList) {
	if other == nil {
		return
	}
	l.items = append(l.items, other.items...)
}

func (l *DiagnosticList) Len() int {
	return len(l.items)
}

func (l *DiagnosticList) IsEmpty() bool {
	return len(l.items) == 0
}

// All returns the diagnostics in push order.
func (l *DiagnosticList) All() []Diagnostic {
	return l.items
}

// Sort orders diagnostics by file and offset. Diagnostics without a location
// keep their relative order and go last.
func (l *DiagnosticList) Sort() {
	sort.SliceStable(l.items, func(i, j int) bool {
		a, b := l.items[i].Span, l.items[j].Span
		if a.IsZero() != b.IsZero() {
			return b.IsZero()
		}
		if a.Start.Filename != b.Start.Filename {
			return a.Start.Filename < b.Start.Filename
		}
		return a.Start.Offset < b.Start.Offset
	})
}

// Err returns nil when the list is empty, otherwise a *multierror.Error with
// one GraphError per diagnostic.
func (l *DiagnosticList) Err() error {
	var result *multierror.Error
	for _, d := range l.items {
		result = multierror.Append(result, d.GraphError())
	}
	return result.ErrorOrNil()
}

func (l *DiagnosticList) String() string {
	lines := make([]string, len(l.items))
	for i, d := range l.items {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

// MarshalJSON renders the list as a GraphQL `errors` array.
func (l *DiagnosticList) MarshalJSON() ([]byte, error) {
	errs := make([]GraphError, len(l.items))
	for i, d := range l.items {
		errs[i] = d.GraphError()
	}
	return json.Marshal(errs)
}

// DirectiveCoordinate names a directive, `@name`.
type DirectiveCoordinate struct {
	Directive string
}

func (c DirectiveCoordinate) String() string {
	return "@" + c.Directive
}

// DirectiveArgumentCoordinate names a directive argument, `@name(arg:)`.
type DirectiveArgumentCoordinate struct {
	Directive string
	Argument  string
}

func (c DirectiveArgumentCoordinate) String() string {
	return fmt.Sprintf("@%s(%s:)", c.Directive, c.Argument)
}

func didYouMean(suggestion string) string {
	if suggestion == "" {
		return ""
	}
	return fmt.Sprintf("; did you mean `%s`?", suggestion)
}

// RecursiveDirectiveDefinition: the definition reaches itself through its
// arguments' types. Trace starts at the application that closes the cycle.
type RecursiveDirectiveDefinition struct {
	Name  string
	Trace DirectiveList
}

func (RecursiveDirectiveDefinition) Code() string { return "RECURSIVE_DIRECTIVE_DEFINITION" }
func (d RecursiveDirectiveDefinition) Message() string {
	return fmt.Sprintf("`@%s` directive definition cannot reference itself (via %s)", d.Name, d.Trace)
}

// DeeplyNestedType: the graph below a definition is too deep to analyze.
type DeeplyNestedType struct {
	Name         string
	DescribeType string
}

func (DeeplyNestedType) Code() string { return "DEEPLY_NESTED_TYPE" }
func (d DeeplyNestedType) Message() string {
	return fmt.Sprintf("%s `%s` is too deeply nested to validate", d.DescribeType, d.Name)
}

// UniqueDirective: a non-repeatable directive was applied twice at one location.
type UniqueDirective struct {
	Name                string
	OriginalApplication SourceSpan
}

func (UniqueDirective) Code() string { return "UNIQUE_DIRECTIVE" }
func (d UniqueDirective) Message() string {
	return fmt.Sprintf("non-repeatable directive `@%s` can only be used once per location (first used at %s)", d.Name, d.OriginalApplication)
}

// UnsupportedLocation: the directive may not be applied here.
type UnsupportedLocation struct {
	Name               string
	Location           DirectiveLocation
	ValidLocations     []DirectiveLocation
	DefinitionLocation SourceSpan
}

func (UnsupportedLocation) Code() string { return "UNSUPPORTED_DIRECTIVE_LOCATION" }
func (d UnsupportedLocation) Message() string {
	valid := make([]string, len(d.ValidLocations))
	for i, loc := range d.ValidLocations {
		valid[i] = string(loc)
	}
	return fmt.Sprintf("`@%s` directive is not supported for %s location (valid locations: %s)", d.Name, d.Location, strings.Join(valid, ", "))
}

// UndefinedArgument: the application supplies an argument the definition lacks.
type UndefinedArgument struct {
	Name               string
	Coordinate         DirectiveCoordinate
	CallSite           SourceSpan
	DefinitionLocation SourceSpan
	Suggestion         string
}

func (UndefinedArgument) Code() string { return "UNDEFINED_ARGUMENT" }
func (d UndefinedArgument) Message() string {
	return fmt.Sprintf("the argument `%s` is not supported by `%s`%s", d.Name, d.Coordinate, didYouMean(d.Suggestion))
}

// RequiredArgument: a required argument is missing or explicitly null.
type RequiredArgument struct {
	Name               string
	ExpectedType       *TypeRef
	Coordinate         DirectiveArgumentCoordinate
	CallSite           SourceSpan
	DefinitionLocation SourceSpan
}

func (RequiredArgument) Code() string { return "REQUIRED_ARGUMENT" }
func (d RequiredArgument) Message() string {
	return fmt.Sprintf("the required argument `%s` of type `%s` is not provided", d.Coordinate, d.ExpectedType)
}

// UndefinedDirective: no definition exists for the applied name.
type UndefinedDirective struct {
	Name       string
	Suggestion string
}

func (UndefinedDirective) Code() string { return "UNDEFINED_DIRECTIVE" }
func (d UndefinedDirective) Message() string {
	return fmt.Sprintf("cannot find directive `@%s` in this document%s", d.Name, didYouMean(suggestionName(d.Suggestion)))
}

func suggestionName(name string) string {
	if name == "" {
		return ""
	}
	return "@" + name
}

// UniqueArgument: the same argument name appears twice in one list.
type UniqueArgument struct {
	Name               string
	OriginalDefinition SourceSpan
}

func (UniqueArgument) Code() string { return "UNIQUE_ARGUMENT" }
func (d UniqueArgument) Message() string {
	return fmt.Sprintf("the argument `%s` is defined multiple times (first at %s)", d.Name, d.OriginalDefinition)
}

// ReservedName: a user-defined name starts with `__`.
type ReservedName struct {
	Name string
}

func (ReservedName) Code() string { return "RESERVED_NAME" }
func (d ReservedName) Message() string {
	return fmt.Sprintf("`%s` is reserved: names starting with `__` are for introspection", d.Name)
}

// UndefinedType: a type reference names no type in the schema.
type UndefinedType struct {
	Name string
}

func (UndefinedType) Code() string { return "UNDEFINED_TYPE" }
func (d UndefinedType) Message() string {
	return fmt.Sprintf("cannot find type `%s` in this document", d.Name)
}

// InputTypeExpected: an argument or input field has an output type.
type InputTypeExpected struct {
	Name     string
	TypeName string
	Kind     TypeKind
}

func (InputTypeExpected) Code() string { return "INPUT_TYPE_EXPECTED" }
func (d InputTypeExpected) Message() string {
	return fmt.Sprintf("`%s` field must be of an input type, but `%s` is an %s type", d.Name, d.TypeName, d.Kind)
}

// UndefinedVariable: a value refers to a variable that is not declared.
type UndefinedVariable struct {
	Name string
}

func (UndefinedVariable) Code() string { return "UNDEFINED_VARIABLE" }
func (d UndefinedVariable) Message() string {
	return fmt.Sprintf("variable `$%s` is not defined", d.Name)
}

// DisallowedVariableUsage: a variable's type does not fit where it is used.
type DisallowedVariableUsage struct {
	Variable     string
	VariableType *TypeRef
	ArgumentName string
	ArgumentType *TypeRef
}

func (DisallowedVariableUsage) Code() string { return "DISALLOWED_VARIABLE_USAGE" }
func (d DisallowedVariableUsage) Message() string {
	return fmt.Sprintf("variable `$%s` of type `%s` cannot be used for argument `%s` of type `%s`", d.Variable, d.VariableType, d.ArgumentName, d.ArgumentType)
}

// UnsupportedValueType: a literal does not match the expected type.
type UnsupportedValueType struct {
	Value        string
	ExpectedType *TypeRef
}

func (UnsupportedValueType) Code() string { return "UNSUPPORTED_VALUE_TYPE" }
func (d UnsupportedValueType) Message() string {
	return fmt.Sprintf("expected a value of type `%s`, found %s", d.ExpectedType, d.Value)
}

// UndefinedInputField: an object literal has a field the input type lacks.
type UndefinedInputField struct {
	Name     string
	TypeName string
}

func (UndefinedInputField) Code() string { return "UNDEFINED_INPUT_FIELD" }
func (d UndefinedInputField) Message() string {
	return fmt.Sprintf("the input field `%s` is not defined on `%s`", d.Name, d.TypeName)
}

// RequiredInputField: an object literal omits a required field or sets it to null.
type RequiredInputField struct {
	Name         string
	TypeName     string
	ExpectedType *TypeRef
}

func (RequiredInputField) Code() string { return "REQUIRED_INPUT_FIELD" }
func (d RequiredInputField) Message() string {
	return fmt.Sprintf("the required input field `%s.%s` of type `%s` is not provided", d.TypeName, d.Name, d.ExpectedType)
}
