package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikfrants/biketransfer/internal/domain"
)

func TestCallback_RoundTrip(t *testing.T) {
	actions := []domain.Action{
		domain.StartBooking{},
		domain.StartRegistration{},
		domain.ShowInfo{},
		domain.SelectEvent{EventID: "gran_fondo_2025"},
		domain.ContinueEvent{},
		domain.SelectSlot{
			EventID:    "gran_fondo_2025",
			Kind:       domain.PointKindDropoff,
			PointIndex: 1,
			Date:       "2025-07-07",
		},
		domain.SelectSlot{
			EventID:    "velomarafon_2025",
			Kind:       domain.PointKindPickup,
			PointIndex: 0,
			Date:       "2025-08-01 - 2025-08-03",
		},
		domain.RepairNotNeeded{},
		domain.ConfirmApplication{},
		domain.CancelApplication{},
		domain.RegisterFromSummary{},
		domain.CancelRegistration{},
		domain.Back{To: domain.StateMainMenu},
		domain.Back{To: domain.StateChoosingEvent},
		domain.Back{To: domain.StateChoosingPointDate},
		domain.Back{To: domain.StateAskingService},
	}

	for _, act := range actions {
		token, err := EncodeAction(act)
		require.NoError(t, err, "%T", act)
		// Telegram limits callback data to 64 bytes
		assert.LessOrEqual(t, len(token), 64, "token too long for %T: %q", act, token)

		decoded, err := DecodeAction(token)
		require.NoError(t, err, "%q", token)
		assert.Equal(t, act, decoded)
	}
}

func TestDecodeAction_Malformed(t *testing.T) {
	tokens := []string{
		"",
		"nonsense",
		"event",
		"event|",
		"slot",
		"slot|e1|dropoff|0",
		"slot|e1|teleport|0|2025-07-07",
		"slot|e1|dropoff|x|2025-07-07",
		"slot|e1|dropoff|-1|2025-07-07",
		"slot||dropoff|0|2025-07-07",
		"slot|e1|dropoff|0|",
		"back",
		"back|nowhere",
		"back|final_summary",
	}

	for _, token := range tokens {
		_, err := DecodeAction(token)
		assert.ErrorIs(t, err, domain.ErrBadToken, "token %q", token)
	}
}
