package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"sogsync/internal/crypto"
	"sogsync/internal/logger"
	"sogsync/internal/store"
	"sogsync/models"
)

type mappingKey struct {
	serverPublicKey string
	blindedID       string
}

// BlindedResolver maintains the mapping between per-server blinded identities
// and real ones. It is an explicitly constructed, injected object: tests
// build isolated instances, nothing lives in package state.
//
// The cache has no eviction; it grows with the number of proven
// correspondents per server and is dropped only by Reset. Mappings are
// write-through persisted so a restart keeps everything already proven.
type BlindedResolver struct {
	repo    store.BlindedKeyRepository
	keyPair *crypto.KeyPair
	logger  *logger.Logger

	mu    sync.RWMutex
	cache map[mappingKey]string

	// own blinded ids are derived at most once per server
	ownMu  sync.RWMutex
	own    map[string]string
	onceSF singleflight.Group
}

// NewBlindedResolver builds a resolver for the local keyPair, pre-warming the
// cache with every mapping already persisted.
func NewBlindedResolver(ctx context.Context, repo store.BlindedKeyRepository, keyPair *crypto.KeyPair, log *logger.Logger) (*BlindedResolver, error) {
	r := &BlindedResolver{
		repo:    repo,
		keyPair: keyPair,
		logger:  log,
		cache:   make(map[mappingKey]string),
		own:     make(map[string]string),
	}

	persisted, err := repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load persisted blinded mappings: %w", err)
	}
	for _, m := range persisted {
		r.cache[mappingKey{m.ServerPublicKey, m.BlindedID}] = m.RealID
	}
	log.Debug().Int("mappings", len(persisted)).Msg("blinded resolver initialised")

	return r, nil
}

// ResolveRealFromBlinded returns the cached real identity for a blinded one,
// if proven before. Pure lookup, no crypto.
func (r *BlindedResolver) ResolveRealFromBlinded(serverPublicKey, blindedID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	real, ok := r.cache[mappingKey{serverPublicKey, blindedID}]
	return real, ok
}

// OwnBlindedID returns the local user's blinded identity for a server,
// deriving it on first use. Concurrent first callers share one derivation.
func (r *BlindedResolver) OwnBlindedID(serverPublicKey string) (string, error) {
	r.ownMu.RLock()
	cached, ok := r.own[serverPublicKey]
	r.ownMu.RUnlock()
	if ok {
		return cached, nil
	}

	id, err, _ := r.onceSF.Do(serverPublicKey, func() (any, error) {
		blinded, err := crypto.DeriveBlindedKeyPair(serverPublicKey, r.keyPair)
		if err != nil {
			return nil, fmt.Errorf("derive own blinded id: %w", err)
		}
		derived := blinded.ID()

		r.ownMu.Lock()
		r.own[serverPublicKey] = derived
		r.ownMu.Unlock()

		// our own mapping is trivially proven
		r.storeMapping(context.Background(), serverPublicKey, derived, r.keyPair.SessionID())

		return derived, nil
	})
	if err != nil {
		return "", err
	}
	return id.(string), nil
}

// ProveAndCache verifies that blindedID is the blinding of realID under
// serverPublicKey and, on success, records the mapping in memory and on disk.
// On failure nothing is cached. A proof that contradicts an already proven
// mapping is rejected rather than overwriting it; the conflict is logged.
func (r *BlindedResolver) ProveAndCache(ctx context.Context, blindedID, realID, serverPublicKey string) bool {
	ok, err := crypto.VerifyBlindingProof(blindedID, realID, serverPublicKey)
	if err != nil || !ok {
		r.logger.Warn().Err(err).
			Str("blinded_id", blindedID).
			Msg("blinding proof failed")
		return false
	}

	key := mappingKey{serverPublicKey, blindedID}
	r.mu.Lock()
	existing, exists := r.cache[key]
	if exists && existing != realID {
		r.mu.Unlock()
		r.logger.Error().
			Str("blinded_id", blindedID).
			Str("cached_real_id", existing).
			Str("claimed_real_id", realID).
			Msg("blinding proof contradicts proven mapping, rejecting")
		return false
	}
	r.cache[key] = realID
	r.mu.Unlock()

	if !exists {
		r.storeMapping(ctx, serverPublicKey, blindedID, realID)
	}
	return true
}

// IsUs reports whether realID is the local user's identity.
func (r *BlindedResolver) IsUs(realID string) bool {
	return realID == r.keyPair.SessionID()
}

// Reset drops all cached state, in-memory only. Persisted mappings reload on
// the next construction.
func (r *BlindedResolver) Reset() {
	r.mu.Lock()
	r.cache = make(map[mappingKey]string)
	r.mu.Unlock()

	r.ownMu.Lock()
	r.own = make(map[string]string)
	r.ownMu.Unlock()
}

func (r *BlindedResolver) storeMapping(ctx context.Context, serverPublicKey, blindedID, realID string) {
	err := r.repo.Save(ctx, models.BlindedKeyMapping{
		ServerPublicKey: serverPublicKey,
		BlindedID:       blindedID,
		RealID:          realID,
	})
	if err != nil && !errors.Is(err, store.ErrMappingConflict) {
		// cache stays correct either way; persistence catches up next time
		r.logger.Warn().Err(err).Str("blinded_id", blindedID).Msg("failed to persist blinded mapping")
	}
}
