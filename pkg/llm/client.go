package llm

import "errors"

var (
	// ErrEmptyQuery is returned before any completion call is made.
	ErrEmptyQuery = errors.New("empty query")

	// ErrMalformedResponse means the completion service replied with text
	// that could not be parsed into a valid action plan.
	ErrMalformedResponse = errors.New("malformed interpreter response")
)

type Interpreter interface {
	Interpret(query string) (*ActionPlan, error)
}
