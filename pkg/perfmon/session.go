package perfmon

import (
	"context"
	"errors"
	"fmt"

	"github.com/uctools/cucmapi/pkg/binding"
)

// Session is one server side collection session. Counters registered with
// AddCounters stay attached to the session handle, and each Collect returns
// their current readings. Sessions hold server resources; Close them when
// done.
type Session struct {
	c      *Client
	handle string
}

// OpenSession obtains a session handle for repeated counter collection.
func (c *Client) OpenSession(ctx context.Context) (*Session, error) {
	const op = "perfmonOpenSession"
	v, err := c.bind.Invoke(ctx, op, binding.Args{}, nil)
	if err != nil {
		return nil, err
	}
	h, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected result shape %T", op, v)
	}
	if h == "" {
		return nil, errors.New(op + ": server returned an empty session handle")
	}
	c.logger.Debug("session opened", "handle", h)
	return &Session{c: c, handle: h}, nil
}

// Handle returns the server's session token.
func (s *Session) Handle() string { return s.handle }

// AddCounters registers counters, in backslash path form, with the session.
func (s *Session) AddCounters(ctx context.Context, counters ...string) error {
	return s.updateCounters(ctx, "perfmonAddCounter", counters)
}

// RemoveCounters detaches counters from the session.
func (s *Session) RemoveCounters(ctx context.Context, counters ...string) error {
	return s.updateCounters(ctx, "perfmonRemoveCounter", counters)
}

func (s *Session) updateCounters(ctx context.Context, op string, counters []string) error {
	if len(counters) == 0 {
		return &binding.ValidationError{Op: op, Path: "ArrayOfCounter.Counter",
			Message: "at least one counter is required"}
	}

	items := make([]binding.Args, 0, len(counters))
	for _, name := range counters {
		items = append(items, binding.Args{"Name": name})
	}
	_, err := s.c.bind.Invoke(ctx, op, binding.Args{
		"SessionHandle":  s.handle,
		"ArrayOfCounter": binding.Args{"Counter": items},
	}, nil)
	return err
}

// Collect reads the current values of every counter registered with the
// session.
func (s *Session) Collect(ctx context.Context) ([]CounterValue, error) {
	const op = "perfmonCollectSessionData"
	v, err := s.c.bind.Invoke(ctx, op, binding.Args{"SessionHandle": s.handle}, nil)
	if err != nil {
		return nil, err
	}
	return counterValues(op, v)
}

// Close releases the session handle on the server.
func (s *Session) Close(ctx context.Context) error {
	_, err := s.c.bind.Invoke(ctx, "perfmonCloseSession", binding.Args{"SessionHandle": s.handle}, nil)
	if err != nil {
		return err
	}
	s.c.logger.Debug("session closed", "handle", s.handle)
	return nil
}
