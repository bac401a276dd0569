package middleware

import (
	"context"
	"strings"
)

// Stack provides protocol and operation marshalling as a sequence of steps.
// Each step is a group of middleware, and steps are invoked in order.
//
//	Initialize: Prepares the input, resolves the operation descriptor and
//	            protocol strategies.
//
//	Serialize:  Marshals the prepared input into the protocol's request
//	            representation.
//
//	Build:      Adds headers and other finishing touches to the serialized
//	            request.
type Stack struct {
	id string

	// Initialize prepares the input and resolves operation state.
	Initialize *Step

	// Serialize marshals the prepared input.
	Serialize *Step

	// Build finishes the serialized request.
	Build *Step
}

// NewStack returns an initialized empty stack.
func NewStack(id string) *Stack {
	return &Stack{
		id:         id,
		Initialize: newStep("Initialize"),
		Serialize:  newStep("Serialize"),
		Build:      newStep("Build"),
	}
}

// ID returns the unique ID for the stack as a middleware.
func (s *Stack) ID() string { return s.id }

// HandleMiddleware invokes the steps in order, then calls next.
func (s *Stack) HandleMiddleware(ctx context.Context, input interface{}, next Handler) (
	output interface{}, err error,
) {
	h := DecorateHandler(next,
		s.Initialize,
		s.Serialize,
		s.Build,
	)

	return h.Handle(ctx, input)
}

// List returns a list of all middleware in the stack by step.
func (s *Stack) List() []string {
	var l []string
	l = append(l, s.id)

	l = append(l, s.Initialize.ID())
	l = append(l, s.Initialize.List()...)

	l = append(l, s.Serialize.ID())
	l = append(l, s.Serialize.List()...)

	l = append(l, s.Build.ID())
	l = append(l, s.Build.List()...)

	return l
}

func (s *Stack) String() string {
	var b strings.Builder

	w := &indentWriter{w: &b}

	w.WriteLine(s.id)
	w.Push()

	writeStepItems(w, s.Initialize)
	writeStepItems(w, s.Serialize)
	writeStepItems(w, s.Build)

	return b.String()
}

func writeStepItems(w *indentWriter, s *Step) {
	w.WriteLine(s.ID())
	w.Push()
	for _, id := range s.List() {
		w.WriteLine(id)
	}
	w.Pop()
}

type indentWriter struct {
	w     *strings.Builder
	depth int
}

const indentDepth = "\t\t\t\t\t\t\t\t\t\t"

func (w *indentWriter) Push() {
	w.depth++
}

func (w *indentWriter) Pop() {
	w.depth--
	if w.depth < 0 {
		w.depth = 0
	}
}

func (w *indentWriter) WriteLine(v string) {
	w.w.WriteString(indentDepth[:w.depth])

	v = strings.ReplaceAll(v, "\n", "\\n")
	v = strings.ReplaceAll(v, "\r", "\\r")

	w.w.WriteString(v)
	w.w.WriteRune('\n')
}
