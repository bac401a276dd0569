package middleware

import (
	"context"
	"fmt"
)

// Step is one named phase of a Stack. Its middleware are invoked in their
// relative order before handing off to the next step.
type Step struct {
	id  string
	ids *orderedIDs
}

func newStep(id string) *Step {
	return &Step{
		id:  id,
		ids: newOrderedIDs(),
	}
}

// ID returns the unique id of the step as a middleware.
func (s *Step) ID() string {
	return s.id
}

// HandleMiddleware invokes the step's middleware in order, then calls next.
func (s *Step) HandleMiddleware(ctx context.Context, input interface{}, next Handler) (
	output interface{}, err error,
) {
	order := s.ids.GetOrder()
	with := make([]Middleware, 0, len(order))
	for _, o := range order {
		with = append(with, o.(Middleware))
	}
	return DecorateHandler(next, with...).Handle(ctx, input)
}

// Get retrieves the middleware identified by id.
func (s *Step) Get(id string) (Middleware, bool) {
	m, ok := s.ids.Get(id)
	if !ok {
		return nil, false
	}
	return m.(Middleware), true
}

// Add injects the middleware to the relative position of the step. Returns an
// error if the middleware already exists.
func (s *Step) Add(m Middleware, pos RelativePosition) error {
	if err := s.ids.Add(m, pos); err != nil {
		return fmt.Errorf("%s step: %w", s.id, err)
	}
	return nil
}

// Insert injects the middleware relative to an existing middleware id.
func (s *Step) Insert(m Middleware, relativeTo string, pos RelativePosition) error {
	if err := s.ids.Insert(m, relativeTo, pos); err != nil {
		return fmt.Errorf("%s step: %w", s.id, err)
	}
	return nil
}

// Swap replaces the middleware identified by id, returning the one removed.
func (s *Step) Swap(id string, m Middleware) (Middleware, error) {
	removed, err := s.ids.Swap(id, m)
	if err != nil {
		return nil, fmt.Errorf("%s step: %w", s.id, err)
	}
	return removed.(Middleware), nil
}

// Remove removes the middleware identified by id.
func (s *Step) Remove(id string) (Middleware, error) {
	removed, err := s.ids.Remove(id)
	if err != nil {
		return nil, fmt.Errorf("%s step: %w", s.id, err)
	}
	return removed.(Middleware), nil
}

// List returns the ids of the step's middleware in invocation order.
func (s *Step) List() []string {
	return s.ids.List()
}

// Clear removes all middleware from the step.
func (s *Step) Clear() {
	s.ids.Clear()
}
