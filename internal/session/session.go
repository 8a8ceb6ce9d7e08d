// Package session is the in-process caller of the generator. It prefers a
// remote generation service and composes locally when that fails.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"cardtext/internal/compose"
	"cardtext/internal/domain"
)

// Remote is a single-attempt text generation endpoint.
type Remote interface {
	Generate(ctx context.Context, category domain.Category, opts domain.Options) (string, error)
}

// Source tells where a generated text came from.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

type Result struct {
	Text   string
	Source Source
}

// Session holds the generation counter for one caller. Sessions are not
// shared; each caller owns its own.
type Session struct {
	remote Remote
	local  *compose.Composer

	mu      sync.Mutex
	counter int
}

// New returns a Session. remote may be nil to always compose locally.
func New(local *compose.Composer, remote Remote) (*Session, error) {
	if local == nil {
		return nil, errors.New("session: local composer must not be nil")
	}
	return &Session{remote: remote, local: local}, nil
}

// Generate produces one message. The remote endpoint, when configured, is
// tried exactly once; any failure falls back to local composition.
func (s *Session) Generate(ctx context.Context, category domain.Category, opts domain.Options) Result {
	defer s.advance()

	if s.remote != nil {
		text, err := s.remote.Generate(ctx, category, opts)
		switch {
		case err != nil:
			slog.Warn("remote generation failed, composing locally", "category", category, "err", err)
		case strings.TrimSpace(text) == "":
			slog.Warn("remote generation returned empty text, composing locally", "category", category)
		default:
			return Result{Text: text, Source: SourceRemote}
		}
	}
	return Result{Text: s.local.Compose(category, opts), Source: SourceLocal}
}

// Next generates with Count set to the number of prior generations in this
// session, so every third call carries a quote.
func (s *Session) Next(ctx context.Context, category domain.Category, enhanced bool) Result {
	return s.Generate(ctx, category, domain.Options{Enhanced: enhanced, Count: s.Count()})
}

// Count returns the number of generations since the last Reset.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counter
}

// Reset zeroes the generation counter.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter = 0
}

func (s *Session) advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
}
