package quickdirective

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"testing"
)

func Test_GraphError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      GraphError
		expected string
	}{
		{
			name:     "Message Only",
			err:      GraphError{Message: "broken"},
			expected: "broken",
		},
		{
			name: "With Path And Locations",
			err: GraphError{
				Message:   "broken",
				Path:      []string{"schema.graphql", "Query"},
				Locations: []ErrorLocation{{Line: 1, Column: 2}, {Line: 3, Column: 4}},
			},
			expected: "broken (path: schema.graphql/Query) [1:2, 3:4]",
		},
		{
			name:     "With Inner Error",
			err:      GraphError{Message: "broken", InnerError: fmt.Errorf("root cause")},
			expected: "broken: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func Test_NewGraphError(t *testing.T) {
	gErr := NewGraphError("oops", lexer.Position{Line: 4, Column: 7}, "a.graphql")
	assert.Equal(t, []ErrorLocation{{Line: 4, Column: 7}}, gErr.Locations)
	assert.Equal(t, []string{"a.graphql"}, gErr.Path)

	gErr = NewGraphError("oops", lexer.Position{})
	assert.Empty(t, gErr.Locations)
}

func Test_GraphError_MarshalJSON(t *testing.T) {
	gErr := NewGraphError("bad directive", lexer.Position{Line: 2, Column: 5})
	gErr.AddExtension("code", "UNIQUE_DIRECTIVE")
	gErr.InnerError = fmt.Errorf("details")

	b, err := json.Marshal(gErr)
	assert.NoError(t, err)
	assert.Equal(t, `{"message":"bad directive: details","locations":[{"line":2,"column":5}],"extensions":{"code":"UNIQUE_DIRECTIVE"}}`, string(b))
}

func Test_transformParseError_NoError(t *testing.T) {
	assert.NoError(t, transformParseError("", nil))
}

func Test_transformParseError_GqlError(t *testing.T) {
	src := &ast.Source{Name: "x.graphql", Input: "{"}
	gqlErr := gqlerror.ErrorPosf(&ast.Position{Src: src, Line: 3, Column: 9}, "unexpected <EOF>")

	err := transformParseError("error parsing query", gqlErr, "x.graphql")
	var ge GraphError
	assert.True(t, errors.As(err, &ge))
	assert.Equal(t, []ErrorLocation{{Line: 3, Column: 9}}, ge.Locations)
	assert.Equal(t, []string{"x.graphql"}, ge.Path)
	assert.ErrorIs(t, err, gqlErr)
}

func Test_transformParseError_RandomError(t *testing.T) {
	rErr := fmt.Errorf("random error")
	err := transformParseError("wrapped", rErr)
	var ge GraphError
	errors.As(err, &ge)
	assert.Equal(t, rErr, ge.InnerError)
	assert.Equal(t, rErr, ge.Unwrap())
	assert.Equal(t, "wrapped: random error", err.Error())
}
