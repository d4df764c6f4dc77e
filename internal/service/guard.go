package service

import (
	"context"
	"errors"
	"fmt"

	app_errors "chatvault/backend/internal/errors"
	"chatvault/backend/internal/repository"
)

// OwnershipGuard is the single place that decides whether a user may touch a
// chat. A chat that does not exist and a chat owned by someone else are
// indistinguishable to the caller: both yield ErrNotFound.
type OwnershipGuard struct {
	chats repository.ChatRepository
}

func NewOwnershipGuard(chats repository.ChatRepository) *OwnershipGuard {
	return &OwnershipGuard{chats: chats}
}

// Owns reports whether a chat with chatID exists and belongs to userID.
func (g *OwnershipGuard) Owns(ctx context.Context, userID int64, chatID string) (bool, error) {
	if chatID == "" {
		return false, nil
	}
	return g.chats.ChatOwnedBy(ctx, chatID, userID)
}

// Require returns nil when userID owns chatID and a wrapped ErrNotFound
// otherwise.
func (g *OwnershipGuard) Require(ctx context.Context, userID int64, chatID string) error {
	owned, err := g.Owns(ctx, userID, chatID)
	if err != nil {
		return fmt.Errorf("could not check chat ownership: %w", err)
	}
	if !owned {
		return fmt.Errorf("%w: chat %q", app_errors.ErrNotFound, chatID)
	}
	return nil
}

// translate maps repository outcomes onto domain errors. Anything else is
// wrapped with op and ends up as an internal error at the API boundary.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: %s", app_errors.ErrNotFound, op)
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%w: %s", app_errors.ErrConflict, op)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
