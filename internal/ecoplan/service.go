// Package ecoplan turns a computed route into AI-generated advice on
// lowering the trip's footprint.
package ecoplan

import (
	"context"
	"fmt"

	"github.com/yegors/eco-flight/internal/ai"
	"github.com/yegors/eco-flight/internal/route"
	"github.com/yegors/eco-flight/pkg/logger"
)

const systemPrompt = "You are a sustainability advisor for air travel. " +
	"Given a flight route with its distance and estimated CO2 emissions, " +
	"suggest practical ways the traveler can reduce or offset the trip's footprint. " +
	"Be concrete and concise. Use short paragraphs and dashed bullet lists."

// Config holds the chat parameters for plan generation.
type Config struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// Plan is one generated eco plan: the raw model text plus a safe HTML
// rendering for direct insertion into the page.
type Plan struct {
	Text string `json:"plan"`
	HTML string `json:"html"`
}

// Service generates eco plans through a chat provider.
type Service struct {
	provider ai.ChatProvider
	cfg      Config
	logger   *logger.Logger
}

// NewService creates an eco-plan service.
func NewService(provider ai.ChatProvider, cfg Config, log *logger.Logger) *Service {
	return &Service{
		provider: provider,
		cfg:      cfg,
		logger:   log.Named("ecoplan"),
	}
}

// Generate asks the provider for a plan for the given route. One attempt
// only; a provider failure is returned to the caller unretried.
func (s *Service) Generate(ctx context.Context, calc *route.Calculation) (*Plan, error) {
	prompt := BuildPrompt(calc)

	s.logger.Debug("Generating eco plan",
		logger.String("origin", calc.Origin.Code),
		logger.String("destination", calc.Destination.Code),
		logger.String("model", s.cfg.Model))

	text, err := s.provider.ChatCompletion(ctx,
		[]ai.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		ai.ChatConfig{
			Model:       s.cfg.Model,
			Temperature: s.cfg.Temperature,
			MaxTokens:   s.cfg.MaxTokens,
		})
	if err != nil {
		return nil, fmt.Errorf("eco plan generation failed: %w", err)
	}

	return &Plan{
		Text: text,
		HTML: RenderHTML(text),
	}, nil
}

// BuildPrompt renders the route figures into the user prompt sent to the
// model.
func BuildPrompt(calc *route.Calculation) string {
	return fmt.Sprintf(
		"Flight from %s (%s, %s) to %s (%s, %s).\n"+
			"Great-circle distance: %.0f km.\n"+
			"Estimated CO2 per passenger: %.1f kg.\n"+
			"Suggest an eco plan for this trip.",
		calc.Origin.Name, calc.Origin.Code, calc.Origin.City,
		calc.Destination.Name, calc.Destination.Code, calc.Destination.City,
		calc.DistanceKm, calc.EmissionsKg)
}
