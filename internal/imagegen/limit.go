package imagegen

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limited paces calls to an underlying generator
type Limited struct {
	Generator
	limiter *rate.Limiter
}

// WithRateLimit wraps g so that at most perMinute requests start each minute.
// A non-positive budget returns g unchanged.
func WithRateLimit(g Generator, perMinute int) Generator {
	if perMinute <= 0 {
		return g
	}
	return &Limited{
		Generator: g,
		limiter:   rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
	}
}

// Generate waits for a token, then delegates
func (l *Limited) Generate(ctx context.Context, prompt string) (*Image, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return l.Generator.Generate(ctx, prompt)
}
