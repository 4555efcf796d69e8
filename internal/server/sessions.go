package server

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/iburimskiy/particle-calc/internal/calc"
)

// MaxSessions bounds how many calculators a client may keep open.
const MaxSessions = 64

var (
	ErrUnknownSession  = errors.New("unknown session")
	ErrTooManySessions = errors.New("too many open sessions")
)

type session struct {
	mu   sync.Mutex
	calc *calc.Calculator
}

// Sessions maps session ids to independent calculators.
type Sessions struct {
	mu      sync.Mutex
	byID    map[string]*session
	newCalc func() *calc.Calculator
}

func NewSessions(newCalc func() *calc.Calculator) *Sessions {
	return &Sessions{
		byID:    make(map[string]*session),
		newCalc: newCalc,
	}
}

// Open creates a calculator showing "0" and returns its id.
func (s *Sessions) Open() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.byID) >= MaxSessions {
		return "", fmt.Errorf("%w (limit %d)", ErrTooManySessions, MaxSessions)
	}
	id := uuid.NewString()
	s.byID[id] = &session{calc: s.newCalc()}
	return id, nil
}

func (s *Sessions) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	delete(s.byID, id)
	return nil
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// With runs fn with exclusive access to the session's calculator.
func (s *Sessions) With(id string, fn func(c *calc.Calculator)) error {
	s.mu.Lock()
	sess, ok := s.byID[id]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	fn(sess.calc)
	return nil
}
