package service

import (
	"fmt"

	"spinwheel-backend/internal/features/wheel/models/dto"
)

// Notification texts. Prizes without a bespoke entry fall back to the
// generic template with the prize's display text substituted in.
const (
	consolationMessage = "So close! You didn't win this time. Follow our page for the next minigame!"

	genericWinMessage = "🎉🎉🎉 Congratulations, you won %s!\n" +
		"Please leave your:\n- FULL NAME\n- PHONE NUMBER\n- DELIVERY ADDRESS\n" +
		"so we can send your gift."
)

var bespokeMessages = map[string]string{
	"0001": "🎉🎉🎉 Congratulations, you won 2 months of free formula, up to 3 tins per month!\n" +
		"Please leave your:\n- FULL NAME\n- PHONE NUMBER\n- DELIVERY ADDRESS\n" +
		"so we can send your gift.",
}

// messageFor builds the notification text for a confirmed prize.
func (s *spinService) messageFor(prize dto.PrizeDescriptor) string {
	if prize.Code == s.catalog.NoWinCode() {
		return consolationMessage
	}
	if msg, ok := bespokeMessages[prize.Code]; ok {
		return msg
	}
	return fmt.Sprintf(genericWinMessage, prize.Text)
}
