package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"cardtext/internal/compose"
	"cardtext/internal/domain"
	"cardtext/internal/templates"
)

type fakeRemote struct {
	text  string
	err   error
	calls int
	opts  []domain.Options
}

func (f *fakeRemote) Generate(_ context.Context, _ domain.Category, opts domain.Options) (string, error) {
	f.calls++
	f.opts = append(f.opts, opts)
	return f.text, f.err
}

type zeroChooser struct{}

func (zeroChooser) Intn(int) int     { return 0 }
func (zeroChooser) Float64() float64 { return 0.99 }

func mustSession(t *testing.T, remote Remote) *Session {
	t.Helper()
	local, err := compose.New(templates.Builtin(), zeroChooser{})
	require.NoError(t, err)
	s, err := New(local, remote)
	require.NoError(t, err)
	return s
}

func TestNew_ValidatesDependencies(t *testing.T) {
	_, err := New(nil, nil)
	require.Error(t, err)
}

func TestGenerate_PrefersRemote(t *testing.T) {
	r := &fakeRemote{text: "from remote"}
	s := mustSession(t, r)

	res := s.Generate(context.Background(), domain.CategoryLove, domain.DefaultOptions())
	require.Equal(t, Result{Text: "from remote", Source: SourceRemote}, res)
	require.Equal(t, 1, r.calls)
	require.Equal(t, 1, s.Count())
}

func TestGenerate_FallsBackOnRemoteError(t *testing.T) {
	r := &fakeRemote{err: errors.New("connection refused")}
	s := mustSession(t, r)

	res := s.Generate(context.Background(), domain.CategoryMorning, domain.Options{Enhanced: false, Count: 1})
	require.Equal(t, SourceLocal, res.Source)
	require.True(t, strings.HasPrefix(res.Text, "Good morning, beautiful soul!"))
	require.Equal(t, 1, r.calls, "remote must be attempted exactly once")
}

func TestGenerate_FallsBackOnEmptyRemoteText(t *testing.T) {
	s := mustSession(t, &fakeRemote{text: "   "})
	res := s.Generate(context.Background(), domain.CategoryNight, domain.DefaultOptions())
	require.Equal(t, SourceLocal, res.Source)
	require.NotEmpty(t, res.Text)
}

func TestGenerate_NoRemoteComposesLocally(t *testing.T) {
	s := mustSession(t, nil)
	res := s.Generate(context.Background(), "unknown", domain.DefaultOptions())
	require.Equal(t, SourceLocal, res.Source)
	require.Equal(t, templates.Builtin().Fallbacks[domain.CategoryMorning][0], res.Text)
}

func TestNext_ThreadsCounterAsCount(t *testing.T) {
	r := &fakeRemote{err: errors.New("offline")}
	s := mustSession(t, r)

	var quoted []bool
	for i := 0; i < 6; i++ {
		res := s.Next(context.Background(), domain.CategoryNight, false)
		quoted = append(quoted, strings.Contains(res.Text, `"`))
	}
	require.Equal(t, []bool{true, false, false, true, false, false}, quoted)
	for i, o := range r.opts {
		require.Equal(t, i, o.Count)
		require.False(t, o.Enhanced)
	}
	require.Equal(t, 6, s.Count())
}

func TestReset(t *testing.T) {
	s := mustSession(t, nil)
	s.Next(context.Background(), domain.CategoryLove, true)
	s.Next(context.Background(), domain.CategoryLove, true)
	require.Equal(t, 2, s.Count())

	s.Reset()
	require.Zero(t, s.Count())
	res := s.Next(context.Background(), domain.CategoryLove, false)
	require.Contains(t, res.Text, `"Love is patient, love is kind. - 1 Corinthians 13:4"`)
}
