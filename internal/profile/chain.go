package profile

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Provider turns a document into a candidate profile. Premium providers
// may fail; the chain absorbs their errors.
type Provider interface {
	// Name identifies the provider in logs and extraction-method tags.
	Name() string
	// Configured reports whether the provider has credentials and may
	// be attempted at all.
	Configured() bool
	// Parse produces a profile in the canonical shape.
	Parse(ctx context.Context, doc types.Document) (*types.CandidateProfile, error)
}

// ProviderError represents a premium provider failure: network error,
// non-2xx response, or a malformed payload.
type ProviderError struct {
	Provider string
	Message  string
	Cause    error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("provider %s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// Chain tries premium providers in order and falls back to the local
// builder, which cannot fail. Callers always receive a profile.
type Chain struct {
	premium []Provider
	local   *LocalBuilder
}

// NewChain builds the fallback chain. The local builder is the terminal
// stage; a nil value gets a default builder.
func NewChain(local *LocalBuilder, premium ...Provider) *Chain {
	if local == nil {
		local = NewLocalBuilder(nil)
	}
	return &Chain{premium: premium, local: local}
}

// Parse folds over the providers, short-circuiting on the first success.
// Premium failures are logged and never surfaced.
func (c *Chain) Parse(ctx context.Context, doc types.Document) *types.CandidateProfile {
	for _, provider := range c.premium {
		if !provider.Configured() {
			continue
		}
		parsed, err := provider.Parse(ctx, doc)
		if err != nil {
			log.Printf("[fallback-chain] provider %s failed, advancing: %v", provider.Name(), err)
			continue
		}
		if parsed != nil {
			return parsed
		}
	}

	parsed, _ := c.local.Parse(ctx, doc)
	return parsed
}
