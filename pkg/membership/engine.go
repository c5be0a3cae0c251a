// Package membership adds and removes (owner, target) records in the
// per-user sets: favorites, shopping cart and subscriptions.
package membership

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/model"
)

type Store interface {
	AddMembership(ctx context.Context, kind model.MembershipKind, ownerID uint, targetID uint) error
	RemoveMembership(ctx context.Context, kind model.MembershipKind, ownerID uint, targetID uint) error
}

// Engine enforces at-most-one membership per (owner, target). Neither Add nor
// Remove is idempotent: a repeated Add fails with model.ErrConflict and a
// repeated Remove with model.ErrNotFound.
type Engine struct {
	store  Store
	logger *zap.Logger
}

func NewEngine(store Store, logger *zap.Logger) *Engine {
	return &Engine{store: store, logger: logger}
}

func (e *Engine) Add(ctx context.Context, kind model.MembershipKind, ownerID uint, targetID uint) error {
	if kind == model.KindFollow && ownerID == targetID {
		return model.ErrSelfFollow
	}

	if err := e.store.AddMembership(ctx, kind, ownerID, targetID); err != nil {
		return fmt.Errorf("adding %s: %w", kind, err)
	}

	e.logger.Debug("membership added", zap.Stringer("kind", kind), zap.Uint("owner_id", ownerID), zap.Uint("target_id", targetID))

	return nil
}

func (e *Engine) Remove(ctx context.Context, kind model.MembershipKind, ownerID uint, targetID uint) error {
	if err := e.store.RemoveMembership(ctx, kind, ownerID, targetID); err != nil {
		return fmt.Errorf("removing %s: %w", kind, err)
	}

	e.logger.Debug("membership removed", zap.Stringer("kind", kind), zap.Uint("owner_id", ownerID), zap.Uint("target_id", targetID))

	return nil
}
