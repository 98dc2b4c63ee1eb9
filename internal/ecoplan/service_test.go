package ecoplan

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yegors/eco-flight/internal/ai"
	"github.com/yegors/eco-flight/internal/airports"
	"github.com/yegors/eco-flight/internal/route"
	"github.com/yegors/eco-flight/pkg/logger"
)

type stubProvider struct {
	lastMessages []ai.ChatMessage
	lastConfig   ai.ChatConfig
	response     string
	err          error
}

func (s *stubProvider) ChatCompletion(ctx context.Context, messages []ai.ChatMessage, config ai.ChatConfig) (string, error) {
	s.lastMessages = messages
	s.lastConfig = config
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testCalculation(t *testing.T) *route.Calculation {
	t.Helper()
	calc, err := route.NewService(airports.Default()).Calculate("KTM", "LHR")
	require.NoError(t, err)
	return calc
}

func TestBuildPromptContainsRouteFigures(t *testing.T) {
	calc := testCalculation(t)
	prompt := BuildPrompt(calc)

	assert.Contains(t, prompt, "KTM")
	assert.Contains(t, prompt, "LHR")
	assert.Contains(t, prompt, "Kathmandu")
	assert.Contains(t, prompt, "London")
	assert.Contains(t, prompt, fmt.Sprintf("%.0f km", calc.DistanceKm))
	assert.Contains(t, prompt, fmt.Sprintf("%.1f kg", calc.EmissionsKg))
}

func TestGenerateRendersPlan(t *testing.T) {
	provider := &stubProvider{response: "Consider these:\n- fly direct\n- pack light"}
	svc := NewService(provider, Config{Model: "gpt-4o-mini", Temperature: 0.4, MaxTokens: 512}, logger.NewNop())

	plan, err := svc.Generate(context.Background(), testCalculation(t))
	require.NoError(t, err)

	assert.Equal(t, "Consider these:\n- fly direct\n- pack light", plan.Text)
	assert.Equal(t, "<p>Consider these:</p><ul><li>fly direct</li><li>pack light</li></ul>", plan.HTML)

	require.Len(t, provider.lastMessages, 2)
	assert.Equal(t, "system", provider.lastMessages[0].Role)
	assert.Equal(t, "user", provider.lastMessages[1].Role)
	assert.Equal(t, "gpt-4o-mini", provider.lastConfig.Model)
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	provider := &stubProvider{err: fmt.Errorf("rate limited")}
	svc := NewService(provider, Config{Model: "gpt-4o-mini"}, logger.NewNop())

	_, err := svc.Generate(context.Background(), testCalculation(t))
	assert.ErrorContains(t, err, "eco plan generation failed")
}
