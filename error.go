package quickdirective

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"strings"
)

// GraphError is the JSON-serializable error shape used for diagnostics and
// parse failures, matching the GraphQL `errors` entries.
//
// Fields:
// - Message: The main error message.
// - Locations: Where in the source the error occurred.
// - Path: The source name or document path, when known.
// - Extensions: Additional information, e.g. the diagnostic code.
// - InnerError: An underlying error that might have caused this GraphError. It is not serialized to JSON.
type GraphError struct {
	Message    string            `json:"message"`
	Locations  []ErrorLocation   `json:"locations,omitempty"`
	Path       []string          `json:"path,omitempty"`
	Extensions map[string]string `json:"extensions,omitempty"`
	InnerError error             `json:"-"`
}

// ErrorLocation provides details about where in the source a particular error occurred.
type ErrorLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (e GraphError) Error() string {
	s := strings.Builder{}
	s.WriteString(e.Message)
	if len(e.Path) > 0 {
		s.WriteString(" (path: ")
		s.WriteString(strings.Join(e.Path, "/"))
		s.WriteString(")")
	}
	if len(e.Locations) > 0 {
		s.WriteString(" [")
		for i, l := range e.Locations {
			if i > 0 {
				s.WriteString(", ")
			}
			s.WriteString(l.String())
		}
		s.WriteString("]")
	}

	if e.InnerError != nil {
		s.WriteString(": ")
		s.WriteString(e.InnerError.Error())
	}

	return s.String()
}

// NewGraphError creates a new GraphError with the provided message, position, and path.
func NewGraphError(message string, pos lexer.Position, paths ...string) GraphError {
	var gErr GraphError
	if pos.Line > 0 {
		gErr.Locations = append(gErr.Locations, lexerPositionError(pos))
	}
	gErr.Message = message
	gErr.Path = paths
	return gErr
}

func lexerPositionError(pos lexer.Position) ErrorLocation {
	return ErrorLocation{
		Line:   pos.Line,
		Column: pos.Column,
	}
}

func (e GraphError) Unwrap() error {
	return e.InnerError
}

func (e ErrorLocation) String() string {
	return fmt.Sprintf("%d:%d", e.Line, e.Column)
}

// MarshalJSON folds the inner error into the message, since it has no JSON
// field of its own.
func (e GraphError) MarshalJSON() ([]byte, error) {
	type graphErrorNoInnerError struct {
		Message    string            `json:"message"`
		Locations  []ErrorLocation   `json:"locations,omitempty"`
		Path       []string          `json:"path,omitempty"`
		Extensions map[string]string `json:"extensions,omitempty"`
	}

	var gErr graphErrorNoInnerError
	gErr.Message = e.Message
	gErr.Locations = e.Locations
	gErr.Path = e.Path
	gErr.Extensions = e.Extensions

	if e.InnerError != nil {
		gErr.Message = fmt.Sprintf("%s: %s", gErr.Message, e.InnerError.Error())
	}

	return json.Marshal(gErr)
}

// AddExtension adds a key-value pair to the Extensions field, creating the map
// if needed.
func (e *GraphError) AddExtension(key string, value string) {
	if e.Extensions == nil {
		e.Extensions = map[string]string{}
	}
	e.Extensions[key] = value
}

// transformParseError turns participle and gqlparser failures into a
// GraphError carrying the failing location.
func transformParseError(message string, err error, paths ...string) error {
	if err == nil {
		return nil
	}

	var perr participle.Error
	if errors.As(err, &perr) {
		gErr := NewGraphError(message, perr.Position(), paths...)
		gErr.InnerError = err
		return gErr
	}

	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		gErr := GraphError{
			Message:    message,
			Path:       paths,
			InnerError: err,
		}
		for _, loc := range gqlErr.Locations {
			gErr.Locations = append(gErr.Locations, ErrorLocation{Line: loc.Line, Column: loc.Column})
		}
		return gErr
	}

	return GraphError{
		Message:    message,
		Path:       paths,
		InnerError: err,
	}
}
