package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"cardtext/handler"
	"cardtext/internal/compose"
	"cardtext/internal/integrations/paramstore"
	"cardtext/internal/usecase"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	templatesParam := os.Getenv("TEMPLATES_PARAM")
	enhanceProbability := envFloat("ENHANCE_PROBABILITY", compose.DefaultEnhanceProbability)

	// ---- Template catalog ----
	var source usecase.CatalogSource
	if templatesParam != "" {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			slog.Error("failed to load AWS config", "err", err)
			os.Exit(1)
		}
		ssmClient, err := paramstore.New(awsssm.NewFromConfig(cfg))
		if err != nil {
			slog.Error("failed to create SSM client", "err", err)
			os.Exit(1)
		}
		catalogSource, err := paramstore.NewCatalogSource(ssmClient, templatesParam)
		if err != nil {
			slog.Error("failed to create catalog source", "err", err)
			os.Exit(1)
		}
		source = catalogSource
	}

	// ---- Handler ----
	generateService, err := usecase.NewGenerateService(
		source,
		compose.NewRandomChooser(0),
		compose.WithEnhanceProbability(enhanceProbability),
	)
	if err != nil {
		slog.Error("failed to create generate service", "err", err)
		os.Exit(1)
	}

	h, err := handler.NewHandler(generateService)
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("ignoring malformed environment variable", "key", key, "value", v)
		return def
	}
	return f
}
