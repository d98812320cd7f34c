package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	apperrors "spinwheel-backend/internal/common/errors"
	"spinwheel-backend/internal/common/logger"
	"spinwheel-backend/internal/features/wheel/models"
	"spinwheel-backend/internal/features/wheel/models/dto"
	"spinwheel-backend/internal/features/wheel/repository"
)

type spinService struct {
	catalog    *models.Catalog
	repo       repository.ParticipationRepository
	sender     MessageSender
	openHour   int
	location   *time.Location
	pendingTTL time.Duration
	rng        RandSource
	now        func() time.Time
	logger     zerolog.Logger
}

// globalRand draws from math/rand's locked global source.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

func NewSpinService(
	catalog *models.Catalog,
	repo repository.ParticipationRepository,
	sender MessageSender,
	openHour int,
	timezone string,
	pendingTTL time.Duration,
) (SpinService, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	return &spinService{
		catalog:    catalog,
		repo:       repo,
		sender:     sender,
		openHour:   openHour,
		location:   location,
		pendingTTL: pendingTTL,
		rng:        globalRand{},
		now:        time.Now,
		logger:     logger.With("wheel"),
	}, nil
}

// Draw checks the contact may still play, performs the weighted selection and
// parks the result in a pending-draw record. The played set and award tallies
// are not touched; the selection stays provisional until Confirm.
func (s *spinService) Draw(ctx context.Context, contactID string) (int, error) {
	if contactID == "" {
		return 0, apperrors.NewValidationError("contactId", "must not be empty")
	}

	// Pure precondition; rejected draws never consult the store.
	if s.now().In(s.location).Hour() < s.openHour {
		return 0, ErrNotYetOpen
	}

	played, err := s.repo.HasPlayed(ctx, contactID)
	if err != nil {
		return 0, apperrors.NewStoreError("HasPlayed", err)
	}
	if played {
		return 0, ErrAlreadyParticipated
	}

	counts, err := s.repo.AwardCounts(ctx, s.catalog.Codes())
	if err != nil {
		return 0, apperrors.NewStoreError("AwardCounts", err)
	}

	index := SelectPrize(s.catalog, counts, s.rng)
	prize := s.catalog.Prizes[index]

	if err := s.repo.SetPendingDraw(ctx, contactID, prize.Code, s.pendingTTL); err != nil {
		return 0, apperrors.NewStoreError("SetPendingDraw", err)
	}

	s.logger.Debug().
		Str("contact_id", contactID).
		Str("prize_code", prize.Code).
		Int("index", index).
		Msg("Prize drawn")

	return index, nil
}

// Confirm commits a drawn prize: record the award (unless it is the no-win
// segment), notify the contact, then mark them played. The notification is
// sent before the contact is blacklisted, so a dispatch failure leaves the
// play retryable.
func (s *spinService) Confirm(ctx context.Context, contactID string, prize dto.PrizeDescriptor) (string, error) {
	if contactID == "" {
		return "", apperrors.NewValidationError("contactId", "must not be empty")
	}
	if prize.Code == "" {
		return "", apperrors.NewValidationError("prize.code", "must not be empty")
	}
	if _, ok := s.catalog.ByCode(prize.Code); !ok {
		return "", apperrors.NewValidationError("prize.code", fmt.Sprintf("unknown prize code %q", prize.Code))
	}

	played, err := s.repo.HasPlayed(ctx, contactID)
	if err != nil {
		return "", apperrors.NewStoreError("HasPlayed", err)
	}
	if played {
		// The play already committed; no second notification goes out.
		return "", ErrAlreadyParticipated
	}

	// The client echoes the prize descriptor from the draw response, but the
	// pending-draw record is what decides which prize may be confirmed.
	pendingCode, err := s.repo.GetPendingDraw(ctx, contactID)
	if errors.Is(err, repository.ErrNoPendingDraw) {
		return "", ErrNoPendingDraw
	}
	if err != nil {
		return "", apperrors.NewStoreError("GetPendingDraw", err)
	}
	if pendingCode != prize.Code {
		s.logger.Warn().
			Str("contact_id", contactID).
			Str("claimed_code", prize.Code).
			Str("drawn_code", pendingCode).
			Msg("Confirm rejected: prize code does not match pending draw")
		return "", ErrPrizeMismatch
	}

	if prize.Code != s.catalog.NoWinCode() {
		newlyAwarded, err := s.repo.RecordAward(ctx, prize.Code, contactID)
		if err != nil {
			return "", apperrors.NewStoreError("RecordAward", err)
		}
		if !newlyAwarded {
			// Retry of a confirm whose notification failed; the quota slot
			// was already consumed by this contact.
			s.logger.Debug().
				Str("contact_id", contactID).
				Str("prize_code", prize.Code).
				Msg("Award already recorded for contact")
		}
	}

	message := s.messageFor(prize)
	if err := s.sender.SendText(ctx, contactID, message); err != nil {
		// Not yet blacklisted and the pending record is intact, so the
		// caller can retry the confirm.
		return "", apperrors.NewDispatchError("SendText", err)
	}

	if _, err := s.repo.MarkPlayed(ctx, contactID); err != nil {
		return "", apperrors.NewStoreError("MarkPlayed", err)
	}

	if err := s.repo.ClearPendingDraw(ctx, contactID); err != nil {
		// The record is TTL-bounded; leaving it behind only delays cleanup.
		s.logger.Warn().Err(err).Str("contact_id", contactID).Msg("Failed to clear pending draw")
	}

	s.logger.Info().
		Str("contact_id", contactID).
		Str("prize_code", prize.Code).
		Msg("Play confirmed")

	return message, nil
}
