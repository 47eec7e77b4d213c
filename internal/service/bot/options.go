package bot

import (
	"fmt"

	"github.com/iamasit07/connect4-agent/internal/config"
)

// OptionsFromConfig maps the environment config onto engine options and the
// default strategy.
func OptionsFromConfig(cfg *config.Config) (Options, Strategy, error) {
	strategy, err := ParseStrategy(cfg.SearchStrategy)
	if err != nil {
		return Options{}, Minimax, fmt.Errorf("SEARCH_STRATEGY: %w", err)
	}
	expansion, err := ParseExpansion(cfg.SearchExpansion)
	if err != nil {
		return Options{}, Minimax, fmt.Errorf("SEARCH_EXPANSION: %w", err)
	}

	opts := DefaultOptions()
	opts.MaxDepth = cfg.MaxSearchDepth
	opts.Expansion = expansion
	opts.FlipLeafPerspective = cfg.FlipLeafPerspective
	opts.Timeout = cfg.SearchTimeout
	opts.Verbose = cfg.LogSearch
	if cfg.MoveCacheTTL > 0 {
		opts.CacheTTL = cfg.MoveCacheTTL
	}
	return opts, strategy, nil
}
