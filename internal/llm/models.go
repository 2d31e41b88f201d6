package llm

// modelAliases expands the short model names accepted in configuration.
// Anything else is sent to the provider unchanged.
var modelAliases = map[string]string{
	"claude-haiku":  "claude-haiku-4-5-20251001",
	"claude-sonnet": "claude-sonnet-4-20250514",
	"gemini-flash":  "gemini-2.0-flash",
	"gemini-pro":    "gemini-2.5-pro",
}

func resolveModel(name string) string {
	if id, ok := modelAliases[name]; ok {
		return id
	}
	return name
}

// ModelCost is the USD price per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost prices one request.
func (c ModelCost) Cost(u Usage) float64 {
	return (float64(u.InputTokens)*c.InputPerMTok + float64(u.OutputTokens)*c.OutputPerMTok) / 1_000_000
}

// LookupCost returns the price of modelID, or false for unknown models.
func LookupCost(modelID string) (ModelCost, bool) {
	c, ok := modelCosts[modelID]
	return c, ok
}

// Prices for the models an explanation is likely to run on.
var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5-20251001":   {1, 5},
	"claude-sonnet-4-20250514":    {3, 15},
	"gpt-4o-mini":                 {0.15, 0.6},
	"gpt-4.1-mini":                {0.4, 1.6},
	"gpt-4.1-nano":                {0.1, 0.4},
	"gemini-2.0-flash":            {0.1, 0.4},
	"gemini-2.5-flash":            {0.3, 2.5},
	"gemini-2.5-pro":              {1.25, 10},
	"google/gemini-2.0-flash-001": {0.1, 0.4},
}
