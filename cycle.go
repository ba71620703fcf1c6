package quickdirective

import (
	"errors"
	"fmt"
)

// RecursedError reports a directive definition that reaches itself. Trace
// holds the applications on the cycle, starting with the one that refers back
// to the definition and ending with the one closest to it.
type RecursedError struct {
	Trace DirectiveList
}

func (e *RecursedError) Error() string {
	return fmt.Sprintf("directive definition references itself via %s", e.Trace)
}

type visitKind int

const (
	visitDirective visitKind = iota
	visitType
)

// Directive names and type names live in separate namespaces.
type visitKey struct {
	kind visitKind
	name string
}

// recursiveDirectiveFinder searches the graph below one directive definition.
// Nodes on the current path are not descended into again; a directive that
// is on the path but is not the root is some other definition's cycle and is
// left to that definition's own check.
type recursiveDirectiveFinder struct {
	schema *Schema
	seen   *RecursionStack[visitKey]
	done   map[visitKey]struct{}
}

// FindRecursiveDirective reports whether def reaches itself through the
// directives and types reachable from its arguments. It returns nil, a
// *RecursedError, or a *RecursionLimitError when the path grows past limit.
func FindRecursiveDirective(schema *Schema, def *DirectiveDefinition, limit int) error {
	f := &recursiveDirectiveFinder{
		schema: schema,
		seen:   NewRecursionStack(visitKey{kind: visitDirective, name: def.Name}, limit),
		done:   map[visitKey]struct{}{},
	}
	return f.directiveDefinition(def)
}

func (f *recursiveDirectiveFinder) directiveDefinition(def *DirectiveDefinition) error {
	for _, arg := range def.Arguments {
		if err := f.inputValue(arg); err != nil {
			return err
		}
	}
	return nil
}

func (f *recursiveDirectiveFinder) inputValue(iv *InputValueDefinition) error {
	if err := f.directives(iv.Directives); err != nil {
		return err
	}
	if iv.Type == nil {
		return nil
	}

	name := iv.Type.InnerNamedType()
	def, ok := f.schema.Types[name]
	if !ok {
		return nil
	}
	key := visitKey{kind: visitType, name: name}
	if f.seen.Contains(key) || f.isDone(key) {
		return nil
	}
	guard, err := f.seen.Push(key)
	if err != nil {
		return err
	}
	defer guard.Release()

	if err := f.typeDefinition(def); err != nil {
		return err
	}
	f.done[key] = struct{}{}
	return nil
}

func (f *recursiveDirectiveFinder) typeDefinition(def TypeDefinition) error {
	if err := f.directives(def.AppliedDirectives()); err != nil {
		return err
	}
	switch def := def.(type) {
	case *EnumType:
		for _, value := range def.Values {
			if err := f.directives(value.Directives); err != nil {
				return err
			}
		}
	case *InputObjectType:
		for _, field := range def.Fields {
			if err := f.inputValue(field); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *recursiveDirectiveFinder) directives(dirs DirectiveList) error {
	for _, d := range dirs {
		if err := f.directive(d); err != nil {
			return err
		}
	}
	return nil
}

func (f *recursiveDirectiveFinder) directive(d *Directive) error {
	key := visitKey{kind: visitDirective, name: d.Name}
	if f.seen.Contains(key) {
		if root, _ := f.seen.First(); root == key {
			return &RecursedError{Trace: DirectiveList{d}}
		}
		return nil
	}
	if f.isDone(key) {
		return nil
	}
	def, ok := f.schema.DirectiveDefinitions[d.Name]
	if !ok {
		return nil
	}

	guard, err := f.seen.Push(key)
	if err != nil {
		return err
	}
	defer guard.Release()

	if err := f.directiveDefinition(def); err != nil {
		var recursed *RecursedError
		if errors.As(err, &recursed) {
			recursed.Trace = append(recursed.Trace, d)
		}
		return err
	}
	f.done[key] = struct{}{}
	return nil
}

func (f *recursiveDirectiveFinder) isDone(key visitKey) bool {
	_, ok := f.done[key]
	return ok
}
