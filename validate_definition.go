package quickdirective

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ValidateDirectiveDefinition checks one definition's arguments and reports
// it when it references itself or is too deeply nested to tell.
func (v *Validator) ValidateDirectiveDefinition(diags *DiagnosticList, schema *Schema, def *DirectiveDefinition) {
	v.validateArgumentDefinitions(diags, schema, def.Arguments, LocationArgumentDefinition)

	head := def.HeadSpan()
	err := FindRecursiveDirective(schema, def, v.Limits.recursionDepth())
	if err == nil {
		return
	}

	var recursed *RecursedError
	var limit *RecursionLimitError
	switch {
	case errors.As(err, &recursed):
		v.logger().WithFields(logrus.Fields{
			"directive": def.Name,
			"trace":     recursed.Trace.String(),
		}).Debug("recursive directive definition")
		diags.Push(head, RecursiveDirectiveDefinition{Name: def.Name, Trace: recursed.Trace})
	case errors.As(err, &limit):
		v.logger().WithFields(logrus.Fields{
			"directive": def.Name,
			"limit":     limit.Limit,
		}).Warn("directive definition exceeds the recursion limit")
		diags.Push(head, DeeplyNestedType{Name: def.Name, DescribeType: "directive"})
	default:
		// Push only fails with the two errors above.
		v.logger().WithError(err).WithField("directive", def.Name).Error("unexpected cycle search failure")
	}
}

// ValidateDirectiveDefinitions validates every definition in the schema, in
// name order. A failing definition does not affect the others.
func (v *Validator) ValidateDirectiveDefinitions(diags *DiagnosticList, schema *Schema) {
	for _, name := range sortedKeys(schema.DirectiveDefinitions) {
		v.ValidateDirectiveDefinition(diags, schema, schema.DirectiveDefinitions[name])
	}
}

// ValidateDirectiveDefinitionsConcurrently is ValidateDirectiveDefinitions
// spread over up to Limits.MaxConcurrency goroutines. Each definition fills
// its own list; the lists are merged in name order, so the result matches the
// sequential pass. It returns ctx.Err() if the context is cancelled first.
func (v *Validator) ValidateDirectiveDefinitionsConcurrently(ctx context.Context, schema *Schema) (*DiagnosticList, error) {
	names := sortedKeys(schema.DirectiveDefinitions)
	results := make([]DiagnosticList, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(v.Limits.concurrency())
	for i, name := range names {
		i, def := i, schema.DirectiveDefinitions[name]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v.ValidateDirectiveDefinition(&results[i], schema, def)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	diags := &DiagnosticList{}
	for i := range results {
		diags.Merge(&results[i])
	}
	return diags, nil
}
