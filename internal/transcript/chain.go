package transcript

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// Chain tries each resolver in order and returns the first successful result.
// An empty segment list is a success ("no captions"), so the chain stops
// there. When every strategy fails, a not-found outcome wins over transport
// failures so callers see the most specific error.
type Chain struct {
	resolvers []Resolver
}

func NewChain(resolvers ...Resolver) *Chain {
	return &Chain{resolvers: resolvers}
}

func (c *Chain) Name() string {
	return "chain"
}

func (c *Chain) Resolve(ctx context.Context, videoID string) ([]Segment, error) {
	if len(c.resolvers) == 0 {
		return nil, fmt.Errorf("no transcript strategies configured")
	}

	var lastErr error
	var notFoundErr error
	for _, r := range c.resolvers {
		segments, err := r.Resolve(ctx, videoID)
		if err == nil {
			return segments, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		log.Printf("[transcript] %s strategy failed for %s: %v", r.Name(), videoID, err)
		var nf *NotFoundError
		if errors.As(err, &nf) {
			notFoundErr = err
		}
		lastErr = err
	}

	if notFoundErr != nil {
		return nil, notFoundErr
	}
	return nil, lastErr
}
