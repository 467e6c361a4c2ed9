package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"stock-screener-backend/internal/domain"
)

var ErrDisabled = errors.New("gemini analysis disabled: no API key configured")

// Analyst generates a narrative stock analysis from the computed
// score and indicator snapshot using the Gemini API.
type Analyst struct {
	client *genai.Client
	model  string
}

// Analysis is the result of one analyze call.
type Analysis struct {
	Symbol    string    `json:"symbol"`
	Analysis  string    `json:"analysis"`
	Model     string    `json:"model"`
	Timestamp time.Time `json:"timestamp"`
}

// NewAnalyst returns a disabled analyst (nil client) when apiKey is empty.
func NewAnalyst(ctx context.Context, apiKey, model string) (*Analyst, error) {
	if apiKey == "" {
		return &Analyst{}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init genai client: %w", err)
	}
	return &Analyst{client: client, model: model}, nil
}

func (a *Analyst) IsEnabled() bool {
	return a != nil && a.client != nil
}

func (a *Analyst) Analyze(ctx context.Context, stock domain.StockData) (*Analysis, error) {
	if !a.IsEnabled() {
		return nil, ErrDisabled
	}

	prompt := buildPrompt(stock)

	resp, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini analysis for %s: %w", stock.Symbol, err)
	}

	var text strings.Builder
	if resp != nil {
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			if text.Len() > 0 {
				break
			}
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("gemini analysis for %s: empty response", stock.Symbol)
	}

	return &Analysis{
		Symbol:    stock.Symbol,
		Analysis:  text.String(),
		Model:     a.model,
		Timestamp: time.Now(),
	}, nil
}

func buildPrompt(stock domain.StockData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a professional stock analyst. Analyze the following NSE stock and provide detailed insights.\n\n")
	fmt.Fprintf(&b, "Stock Symbol: %s\n", stock.Symbol)
	fmt.Fprintf(&b, "Current Price: ₹%.2f\n", stock.Price)
	fmt.Fprintf(&b, "Price Change: %.2f%%\n", stock.ChangePct)
	fmt.Fprintf(&b, "Sector: %s\n\n", stock.Sector)
	fmt.Fprintf(&b, "Technical Analysis Score: %d/120\n", stock.TotalScore)
	fmt.Fprintf(&b, "Classification: %s\n\n", stock.Classification)

	b.WriteString("Technical Indicators:\n")
	fmt.Fprintf(&b, "- RSI: %s\n", fmtOptional(stock.Indicators.RSI))
	fmt.Fprintf(&b, "- ADX (Trend Strength): %s\n", fmtOptional(stock.Indicators.ADX))
	fmt.Fprintf(&b, "- MACD: %s\n", fmtOptional(stock.Indicators.MACD))
	fmt.Fprintf(&b, "- Volume Ratio: %s%%\n", fmtOptional(stock.Indicators.VolumeRatio))
	fmt.Fprintf(&b, "- Distance from 50-day SMA: %s%%\n", fmtOptional(stock.Indicators.Distance50SMA))
	fmt.Fprintf(&b, "- Distance from 200-day SMA: %s%%\n\n", fmtOptional(stock.Indicators.Distance200SMA))

	b.WriteString("Category Scores:\n")
	for _, cat := range []string{
		domain.CategoryTrend, domain.CategoryMomentum, domain.CategoryVolume,
		domain.CategoryPriceAction, domain.CategoryVolatility, domain.CategoryIchimoku,
	} {
		if cs, ok := stock.CategoryScores[cat]; ok {
			fmt.Fprintf(&b, "- %s: %d/%d\n", cs.Name, cs.Value, cs.Cap)
		}
	}
	fmt.Fprintf(&b, "\nTrend Strength: %s\n", stock.TrendStrength)
	fmt.Fprintf(&b, "Current Signals: %s\n\n", strings.Join(stock.Signals, ", "))

	b.WriteString(`Please provide a comprehensive analysis covering:

1. **Uptrend Analysis**: Why is this stock in an uptrend? What technical factors are driving it?

2. **Technical Health**: Evaluate the technical strength. Are the indicators confirming the trend? Any divergences or warnings?

3. **Fundamental Perspective**: Based on the sector and general market knowledge, what fundamental factors might be supporting this trend?

4. **Risk Assessment**: What are the potential risks? Any overbought conditions or warning signs?

5. **Trading Strategy**: entry points, stop loss recommendations, target levels, and a holding period suggestion.

6. **Overall Recommendation**: Is this a good stock to invest in right now? Rate it on a scale of 1-10 and provide reasoning.

Please be specific, actionable, and balanced in your analysis. Format your response in clear sections.`)

	return b.String()
}

func fmtOptional(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}
