package provider

import (
	"fmt"
	"log/slog"

	"github.com/abhisek/pathway/internal/store"
)

// New creates a Provider from configuration, wrapped with journaling.
func New(cfg Config, repo store.EventRepo, log *slog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	switch cfg.Kind {
	case KindHTTP:
		p, err := NewHTTPProvider(cfg)
		if err != nil {
			return nil, fmt.Errorf("initializing %s provider: %w", cfg.Kind, err)
		}
		base = p
	case KindMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown roadmap provider: %q", cfg.Kind)
	}

	return WithLogging(base, repo, log), nil
}
