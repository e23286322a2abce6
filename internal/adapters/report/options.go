package report

import "time"

// Option applies a configuration option to the GenAI generator.
type Option func(*GenAI)

// WithModel sets the Gemini model name.
func WithModel(model string) Option {
	return func(g *GenAI) {
		if model != "" {
			g.model = model
		}
	}
}

// WithTimeout bounds each generation call.
func WithTimeout(timeout time.Duration) Option {
	return func(g *GenAI) {
		if timeout > 0 {
			g.timeout = timeout
		}
	}
}
