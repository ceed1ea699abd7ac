package usecase

import "strings"

type price struct{ in, out float64 }

// USD per million tokens.
var prices = []struct {
	match string
	price price
}{
	{"llama3-70b", price{0.59, 0.79}},
	{"llama3-8b", price{0.05, 0.10}},
	{"mixtral", price{0.14, 0.42}},
}

// TokenCost estimates the USD cost of a request. Unknown models are priced
// like llama3-70b.
func TokenCost(model string, inputTokens, outputTokens int) float64 {
	p := prices[0].price
	lower := strings.ToLower(model)
	for _, candidate := range prices {
		if strings.Contains(lower, candidate.match) {
			p = candidate.price
			break
		}
	}
	return float64(inputTokens)*p.in/1e6 + float64(outputTokens)*p.out/1e6
}
