// Package listtypes resolves the list of available template types,
// serving from the local cache when it is fresh and falling back to
// the upstream directory listing.
package listtypes

import (
	"context"
	"time"

	"github.com/arthur-debert/igno/pkg/cache"
	"github.com/arthur-debert/igno/pkg/logging"
	"github.com/arthur-debert/igno/pkg/registry"
)

// ListTypesOptions defines the options for the ListTypes command.
type ListTypesOptions struct {
	// Client fetches the upstream directory listing
	Client *registry.Client

	// Cache is the local type list store
	Cache *cache.Store

	// NoCache forces a fresh fetch, bypassing Load but not Save
	NoCache bool

	// TTL is the freshness window for cached entries
	TTL time.Duration
}

// ListTypesResult holds the resolved type list.
type ListTypesResult struct {
	Types     []string
	FromCache bool
}

// ListTypes returns the available template types, from cache when fresh.
// A fresh fetch always refreshes the cache, even under NoCache.
func ListTypes(ctx context.Context, opts ListTypesOptions) (*ListTypesResult, error) {
	log := logging.GetLogger("commands.listtypes")
	log.Debug().Bool("noCache", opts.NoCache).Dur("ttl", opts.TTL).Msg("Executing command")

	if !opts.NoCache {
		if types, ok := opts.Cache.Load(opts.TTL); ok {
			log.Info().Int("typeCount", len(types)).Msg("Serving type list from cache")
			return &ListTypesResult{Types: types, FromCache: true}, nil
		}
	}

	types, err := opts.Client.ListTypes(ctx)
	if err != nil {
		return nil, err
	}

	if err := opts.Cache.Save(types); err != nil {
		return nil, err
	}

	log.Info().Int("typeCount", len(types)).Msg("Command finished")
	return &ListTypesResult{Types: types}, nil
}
