package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"cardtext/internal/compose"
	"cardtext/internal/integrations/remote"
	"cardtext/internal/session"
	"cardtext/internal/templates"
	"cardtext/internal/usecase"
)

const (
	keyPort               = "port"
	keyTemplates          = "templates"
	keyEnhanceProbability = "enhance-probability"
	keyRemoteURL          = "remote-url"
	keyRemoteTimeout      = "remote-timeout"
	keySeed               = "seed"

	defaultPort = 3001
)

// Config is the resolved configuration for the standalone commands.
type Config struct {
	Port               int
	TemplatesPath      string
	EnhanceProbability float64
	RemoteURL          string
	RemoteTimeout      time.Duration
	Seed               int64
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("CARDTEXT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// The bare PORT variable is honoured for platform compatibility.
	_ = v.BindEnv(keyPort, "CARDTEXT_PORT", "PORT")

	v.SetDefault(keyPort, defaultPort)
	v.SetDefault(keyEnhanceProbability, compose.DefaultEnhanceProbability)
	v.SetDefault(keyRemoteTimeout, 10*time.Second)
	return v
}

func loadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:               v.GetInt(keyPort),
		TemplatesPath:      strings.TrimSpace(v.GetString(keyTemplates)),
		EnhanceProbability: v.GetFloat64(keyEnhanceProbability),
		RemoteURL:          strings.TrimSpace(v.GetString(keyRemoteURL)),
		RemoteTimeout:      v.GetDuration(keyRemoteTimeout),
		Seed:               v.GetInt64(keySeed),
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("cli: port %d out of range", cfg.Port)
	}
	if cfg.EnhanceProbability < 0 || cfg.EnhanceProbability > 1 {
		return Config{}, fmt.Errorf("cli: enhance probability %v must be within [0, 1]", cfg.EnhanceProbability)
	}
	if cfg.RemoteTimeout <= 0 {
		return Config{}, errors.New("cli: remote timeout must be positive")
	}
	return cfg, nil
}

func (c Config) catalogSource() usecase.CatalogSource {
	if c.TemplatesPath == "" {
		return nil
	}
	return templates.FileSource{Path: c.TemplatesPath}
}

func (c Config) composerOptions() []compose.Option {
	return []compose.Option{compose.WithEnhanceProbability(c.EnhanceProbability)}
}

func (c Config) newService() (*usecase.GenerateService, error) {
	return usecase.NewGenerateService(c.catalogSource(), compose.NewRandomChooser(c.Seed), c.composerOptions()...)
}

// newSession loads the catalog eagerly; a broken file is reported instead
// of silently replaced by the builtin catalog.
func (c Config) newSession(ctx context.Context) (*session.Session, error) {
	catalog := templates.Builtin()
	if c.TemplatesPath != "" {
		loaded, err := templates.FileSource{Path: c.TemplatesPath}.Catalog(ctx)
		if err != nil {
			return nil, err
		}
		catalog = loaded
	}
	local, err := compose.New(catalog, compose.NewRandomChooser(c.Seed), c.composerOptions()...)
	if err != nil {
		return nil, err
	}
	var r session.Remote
	if c.RemoteURL != "" {
		client, err := remote.NewClient(c.RemoteURL, remote.WithTimeout(c.RemoteTimeout))
		if err != nil {
			return nil, err
		}
		r = client
	}
	return session.New(local, r)
}
