// Package fetch runs the full pipeline: resolve the requested template
// names (interactively when none were given), fetch their bodies, and
// merge them into the destination file.
package fetch

import (
	"context"
	"io"
	"time"

	"github.com/arthur-debert/igno/pkg/cache"
	"github.com/arthur-debert/igno/pkg/commands/listtypes"
	"github.com/arthur-debert/igno/pkg/logging"
	"github.com/arthur-debert/igno/pkg/prompt"
	"github.com/arthur-debert/igno/pkg/registry"
	"github.com/arthur-debert/igno/pkg/writer"
)

// FetchOptions defines the options for the Fetch command.
type FetchOptions struct {
	// Client fetches listings and template bodies
	Client *registry.Client

	// Cache is the local type list store, used when the picker opens
	Cache *cache.Store

	// Selector picks a template when Names is empty
	Selector prompt.Selector

	// Names are the user-supplied template types, possibly empty
	Names []string

	// NoCache forces a fresh directory fetch for the picker
	NoCache bool

	// TTL is the cache freshness window
	TTL time.Duration

	// Output is the destination file path
	Output string

	// Mode selects append, overwrite, or dry-run
	Mode writer.Mode

	// Out receives dry-run output
	Out io.Writer
}

// FetchResult reports what was fetched and written.
type FetchResult struct {
	// Names are the normalized template names that were fetched
	Names []string

	// Write is the writer's report
	Write *writer.Result
}

// Fetch executes the pipeline sequentially and fails on the first error.
func Fetch(ctx context.Context, opts FetchOptions) (*FetchResult, error) {
	log := logging.GetLogger("commands.fetch")
	log.Debug().Strs("names", opts.Names).Str("output", opts.Output).Msg("Executing command")

	names := opts.Names
	if len(names) == 0 {
		listed, err := listtypes.ListTypes(ctx, listtypes.ListTypesOptions{
			Client:  opts.Client,
			Cache:   opts.Cache,
			NoCache: opts.NoCache,
			TTL:     opts.TTL,
		})
		if err != nil {
			return nil, err
		}

		choice, err := opts.Selector.Choose(listed.Types)
		if err != nil {
			return nil, err
		}
		names = []string{choice}
	}

	normalized := make([]string, len(names))
	for i, name := range names {
		normalized[i] = registry.Normalize(name)
	}

	templates, err := opts.Client.FetchTemplates(ctx, normalized)
	if err != nil {
		return nil, err
	}

	result, err := writer.Write(opts.Output, opts.Mode, templates, opts.Out)
	if err != nil {
		return nil, err
	}

	log.Info().
		Strs("names", normalized).
		Str("mode", opts.Mode.String()).
		Int("appended", len(result.Appended)).
		Int("skipped", len(result.Skipped)).
		Msg("Command finished")

	return &FetchResult{Names: normalized, Write: result}, nil
}
