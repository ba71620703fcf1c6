package quickdirective

// TypeKind tags the variant of a TypeDefinition.
type TypeKind int

const (
	KindScalar TypeKind = iota
	KindObject
	KindInterface
	KindUnion
	KindEnum
	KindInputObject
)

func (k TypeKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindObject:
		return "object"
	case KindInterface:
		return "interface"
	case KindUnion:
		return "union"
	case KindEnum:
		return "enum"
	case KindInputObject:
		return "input object"
	}
	return "unknown"
}

// TypeRef is a reference to a type: a named type, or a list of an element
// type, either of which may be non-null.
type TypeRef struct {
	Named   string
	Elem    *TypeRef
	NonNull bool
}

// NamedType returns a reference to the nullable named type.
func NamedType(name string) *TypeRef {
	return &TypeRef{Named: name}
}

// NonNullType returns a non-null copy of t.
func NonNullType(t *TypeRef) *TypeRef {
	c := *t
	c.NonNull = true
	return &c
}

// ListType returns a reference to the nullable list of elem.
func ListType(elem *TypeRef) *TypeRef {
	return &TypeRef{Elem: elem}
}

// IsList reports whether the reference is a list, ignoring nullability.
func (t *TypeRef) IsList() bool {
	return t.Elem != nil
}

// InnerNamedType strips all list and non-null wrappers.
func (t *TypeRef) InnerNamedType() string {
	for t.Elem != nil {
		t = t.Elem
	}
	return t.Named
}

// Nullable returns t without its outermost non-null wrapper.
func (t *TypeRef) Nullable() *TypeRef {
	if !t.NonNull {
		return t
	}
	c := *t
	c.NonNull = false
	return &c
}

func (t *TypeRef) String() string {
	if t == nil {
		return ""
	}
	s := t.Named
	if t.Elem != nil {
		s = "[" + t.Elem.String() + "]"
	}
	if t.NonNull {
		s += "!"
	}
	return s
}

// TypeDefinition is one of *ScalarType, *ObjectType, *InterfaceType,
// *UnionType, *EnumType or *InputObjectType.
type TypeDefinition interface {
	TypeName() string
	Kind() TypeKind
	// AppliedDirectives are the directives attached to the type itself.
	AppliedDirectives() DirectiveList
	IsBuiltIn() bool
	Location() SourceSpan
}

// TypeMeta holds what every type definition has in common.
type TypeMeta struct {
	Description string
	Name        string
	Directives  DirectiveList
	BuiltIn     bool
	Span        SourceSpan
}

func (m *TypeMeta) TypeName() string                 { return m.Name }
func (m *TypeMeta) AppliedDirectives() DirectiveList { return m.Directives }
func (m *TypeMeta) IsBuiltIn() bool                  { return m.BuiltIn }
func (m *TypeMeta) Location() SourceSpan             { return m.Span }

// FieldDefinition is an output field of an object or interface.
type FieldDefinition struct {
	Description string
	Name        string
	Arguments   []*InputValueDefinition
	Type        *TypeRef
	Directives  DirectiveList
	Span        SourceSpan
}

// EnumValueDefinition is one member of an enum.
type EnumValueDefinition struct {
	Description string
	Value       string
	Directives  DirectiveList
	Span        SourceSpan
}

type ScalarType struct {
	TypeMeta
}

type ObjectType struct {
	TypeMeta
	Interfaces []string
	Fields     []*FieldDefinition
}

type InterfaceType struct {
	TypeMeta
	Interfaces []string
	Fields     []*FieldDefinition
}

type UnionType struct {
	TypeMeta
	Members []string
}

type EnumType struct {
	TypeMeta
	Values []*EnumValueDefinition
}

type InputObjectType struct {
	TypeMeta
	Fields []*InputValueDefinition
}

func (*ScalarType) Kind() TypeKind      { return KindScalar }
func (*ObjectType) Kind() TypeKind      { return KindObject }
func (*InterfaceType) Kind() TypeKind   { return KindInterface }
func (*UnionType) Kind() TypeKind       { return KindUnion }
func (*EnumType) Kind() TypeKind        { return KindEnum }
func (*InputObjectType) Kind() TypeKind { return KindInputObject }

// HasValue reports whether name is a member of the enum.
func (e *EnumType) HasValue(name string) bool {
	for _, v := range e.Values {
		if v.Value == name {
			return true
		}
	}
	return false
}

// Field returns the input field with the given name.
func (io *InputObjectType) Field(name string) (*InputValueDefinition, bool) {
	for _, f := range io.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// IsInputType reports whether values of def may be supplied as input.
func IsInputType(def TypeDefinition) bool {
	switch def.Kind() {
	case KindScalar, KindEnum, KindInputObject:
		return true
	}
	return false
}
