package providers

// tokenPrice is USD per million tokens.
type tokenPrice struct {
	Input  float64
	Output float64
}

// pricing maps model names to their token rates. Unknown models fall back
// to defaultPrice, erring on the expensive side so logged costs are an
// upper bound rather than an undercount.
var pricing = map[string]tokenPrice{
	"gpt-4o":      {Input: 2.50, Output: 10.00},
	"gpt-4o-mini": {Input: 0.15, Output: 0.60},
}

var defaultPrice = tokenPrice{Input: 2.50, Output: 10.00}

// costFor returns the approximate USD cost of one model turn.
func costFor(model string, promptTokens, completionTokens int64) float64 {
	p, ok := pricing[model]
	if !ok {
		p = defaultPrice
	}
	return float64(promptTokens)/1_000_000*p.Input +
		float64(completionTokens)/1_000_000*p.Output
}
