package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cardtext/internal/compose"
	"cardtext/internal/domain"
	"cardtext/internal/templates"
)

// CatalogSource supplies the template catalog. It is consulted once per
// process; a failed load is retried on the next request.
type CatalogSource interface {
	Catalog(ctx context.Context) (*templates.Catalog, error)
}

type GenerateService struct {
	source       CatalogSource
	chooser      compose.Chooser
	composerOpts []compose.Option
	builtin      *compose.Composer

	composerMu sync.RWMutex
	composer   *compose.Composer
}

type GenerateInput struct {
	MessageType string
	Options     domain.Options
}

type GenerateOutput struct {
	Text        string
	MessageType string
	Timestamp   time.Time
}

// NewGenerateService builds the service. A nil source means the builtin
// catalog is always used.
func NewGenerateService(source CatalogSource, chooser compose.Chooser, composerOpts ...compose.Option) (*GenerateService, error) {
	if chooser == nil {
		return nil, errors.New("usecase: chooser must not be nil")
	}
	builtin, err := compose.New(templates.Builtin(), chooser, composerOpts...)
	if err != nil {
		return nil, fmt.Errorf("usecase: builtin composer: %w", err)
	}
	useBuiltin := source == nil
	if useBuiltin {
		source = templates.NewStaticSource(nil)
	}
	s := &GenerateService{
		source:       source,
		chooser:      chooser,
		composerOpts: composerOpts,
		builtin:      builtin,
	}
	if useBuiltin {
		s.composer = builtin
	}
	return s, nil
}

// Generate composes a message for in.MessageType. The value is matched
// exactly against the catalog; anything else, including a differently cased
// known category, resolves through the fallback set.
func (s *GenerateService) Generate(ctx context.Context, in GenerateInput) (GenerateOutput, error) {
	if in.MessageType == "" {
		return GenerateOutput{}, newError(ErrorInvalidInput, "missing_message_type", "Message type is required", nil)
	}

	composer := s.ensureComposer(ctx)
	text, err := safeCompose(composer, domain.Category(in.MessageType), in.Options)
	if err != nil {
		return GenerateOutput{}, newError(ErrorInternal, "composition_failed", "Failed to generate text", err)
	}

	return GenerateOutput{
		Text:        text,
		MessageType: in.MessageType,
		Timestamp:   now().UTC(),
	}, nil
}

// Categories lists the categories of the active catalog.
func (s *GenerateService) Categories(ctx context.Context) []domain.Category {
	c := s.ensureComposer(ctx).Catalog()
	out := make([]domain.Category, 0, len(c.Categories))
	for _, k := range domain.KnownCategories() {
		if _, ok := c.Categories[k]; ok {
			out = append(out, k)
		}
	}
	for k := range c.Categories {
		if !k.Known() {
			out = append(out, k)
		}
	}
	return out
}

func (s *GenerateService) ensureComposer(ctx context.Context) *compose.Composer {
	s.composerMu.RLock()
	if s.composer != nil {
		defer s.composerMu.RUnlock()
		return s.composer
	}
	s.composerMu.RUnlock()

	s.composerMu.Lock()
	defer s.composerMu.Unlock()
	if s.composer != nil {
		return s.composer
	}

	catalog, err := s.source.Catalog(ctx)
	if err != nil {
		slog.Warn("template catalog unavailable, using builtin", "err", err)
		return s.builtin
	}
	composer, err := compose.New(catalog, s.chooser, s.composerOpts...)
	if err != nil {
		slog.Warn("template catalog rejected, using builtin", "err", err)
		return s.builtin
	}
	s.composer = composer
	return composer
}

func safeCompose(c *compose.Composer, category domain.Category, opts domain.Options) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("usecase: compose %q: %v", category, r)
		}
	}()
	return c.Compose(category, opts), nil
}

var now = time.Now
