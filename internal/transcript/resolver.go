package transcript

import (
	"fmt"
	"net/http"

	"github.com/video-scout/backend/internal/config"
)

// NewFromConfig builds the resolver chain named by cfg.Strategies, in order.
// A single strategy is returned bare; several are wrapped in a Chain.
func NewFromConfig(cfg *config.Config, client *http.Client) (Resolver, error) {
	resolvers := make([]Resolver, 0, len(cfg.Strategies))
	for _, name := range cfg.Strategies {
		switch name {
		case "timedtext":
			resolvers = append(resolvers, NewTimedTextResolver(client, cfg.TargetLang))
		case "scrape":
			resolvers = append(resolvers, NewScrapeResolver(client, cfg.TargetLang))
		case "captions":
			creds := OAuthCredentials{
				ClientID:     cfg.OAuthClientID,
				ClientSecret: cfg.OAuthClientSecret,
				RefreshToken: cfg.OAuthRefreshToken,
			}
			resolvers = append(resolvers, NewCaptionsResolver(client, creds, cfg.TargetLang))
		default:
			return nil, fmt.Errorf("unknown transcript strategy %q", name)
		}
	}

	if len(resolvers) == 1 {
		return resolvers[0], nil
	}
	return NewChain(resolvers...), nil
}
