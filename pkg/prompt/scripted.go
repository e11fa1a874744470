package prompt

import (
	"context"
	"errors"
	"strconv"
	"sync"
)

// ErrScriptExhausted is returned by Scripted when it runs out of answers.
var ErrScriptExhausted = errors.New("prompt: no scripted answer left")

// Scripted is a Driver that replays fixed answers in order. Select answers
// are option indexes written as strings. Every Info message is recorded.
type Scripted struct {
	mu       sync.Mutex
	answers  []string
	Asked    []string
	Messages []string
}

// NewScripted returns a driver that answers with the given values in order.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{answers: answers}
}

func (s *Scripted) next(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Asked = append(s.Asked, message)
	if len(s.answers) == 0 {
		return "", ErrScriptExhausted
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func (s *Scripted) Input(ctx context.Context, cfg InputConfig) (string, error) {
	return s.next(ctx, cfg.Message)
}

func (s *Scripted) Password(ctx context.Context, cfg InputConfig) (string, error) {
	return s.next(ctx, cfg.Message)
}

func (s *Scripted) TextArea(ctx context.Context, cfg InputConfig) (string, error) {
	return s.next(ctx, cfg.Message)
}

func (s *Scripted) Confirm(ctx context.Context, message string, _ bool) (bool, error) {
	a, err := s.next(ctx, message)
	if err != nil {
		return false, err
	}
	return strconv.ParseBool(a)
}

func (s *Scripted) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	a, err := s.next(ctx, cfg.Message)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(a)
}

// MultiSelect expects a comma separated list of indexes.
func (s *Scripted) MultiSelect(ctx context.Context, cfg SelectConfig) ([]int, error) {
	a, err := s.next(ctx, cfg.Message)
	if err != nil {
		return nil, err
	}
	if a == "" {
		return nil, nil
	}
	var out []int
	start := 0
	for i := 0; i <= len(a); i++ {
		if i == len(a) || a[i] == ',' {
			n, err := strconv.Atoi(a[start:i])
			if err != nil {
				return nil, err
			}
			out = append(out, n)
			start = i + 1
		}
	}
	return out, nil
}

func (s *Scripted) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.Messages = append(s.Messages, msg)
	s.mu.Unlock()
	return nil
}

// Remaining reports how many answers are left.
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}
