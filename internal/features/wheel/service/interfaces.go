package service

import (
	"context"

	"spinwheel-backend/internal/features/wheel/models/dto"
)

// SpinService orchestrates the two public operations of the game.
type SpinService interface {
	// Draw selects a prize for the contact and returns its catalog index.
	// The selection is provisional; nothing is committed until Confirm.
	Draw(ctx context.Context, contactID string) (int, error)

	// Confirm commits the previously drawn prize, notifies the contact and
	// closes their participation. Returns the delivered notification text.
	Confirm(ctx context.Context, contactID string, prize dto.PrizeDescriptor) (string, error)
}

// MessageSender delivers a text message to a contact on the chat platform.
type MessageSender interface {
	SendText(ctx context.Context, contactID, text string) error
}

// RandSource yields uniform values in [0, 1). Injectable so draws can be
// replayed with fixed values in tests.
type RandSource interface {
	Float64() float64
}
