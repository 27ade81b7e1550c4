package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nikfrants/biketransfer/internal/domain"
)

// Callback tokens carry an action name and its parameters joined by
// "|". Decoding happens once at the boundary; the controller only ever
// sees typed domain.Action variants.
const tokenSep = "|"

const (
	tokStartBooking        = "menu_booking"
	tokStartRegistration   = "menu_registration"
	tokShowInfo            = "menu_info"
	tokSelectEvent         = "event"
	tokContinueEvent       = "event_continue"
	tokSelectSlot          = "slot"
	tokRepairNotNeeded     = "repair_no"
	tokConfirmApplication  = "confirm"
	tokCancelApplication   = "cancel_app"
	tokRegisterFromSummary = "register_summary"
	tokCancelRegistration  = "cancel_reg"
	tokBack                = "back"
)

// EncodeAction turns a typed action into a callback token.
func EncodeAction(act domain.Action) (string, error) {
	switch a := act.(type) {
	case domain.StartBooking:
		return tokStartBooking, nil
	case domain.StartRegistration:
		return tokStartRegistration, nil
	case domain.ShowInfo:
		return tokShowInfo, nil
	case domain.SelectEvent:
		return strings.Join([]string{tokSelectEvent, a.EventID}, tokenSep), nil
	case domain.ContinueEvent:
		return tokContinueEvent, nil
	case domain.SelectSlot:
		return strings.Join([]string{
			tokSelectSlot, a.EventID, string(a.Kind), strconv.Itoa(a.PointIndex), a.Date,
		}, tokenSep), nil
	case domain.RepairNotNeeded:
		return tokRepairNotNeeded, nil
	case domain.ConfirmApplication:
		return tokConfirmApplication, nil
	case domain.CancelApplication:
		return tokCancelApplication, nil
	case domain.RegisterFromSummary:
		return tokRegisterFromSummary, nil
	case domain.CancelRegistration:
		return tokCancelRegistration, nil
	case domain.Back:
		return strings.Join([]string{tokBack, string(a.To)}, tokenSep), nil
	default:
		return "", fmt.Errorf("encode action %T: %w", act, domain.ErrBadToken)
	}
}

// DecodeAction parses a raw callback token defensively: a malformed
// token is a domain.ErrBadToken, never a crash.
func DecodeAction(token string) (domain.Action, error) {
	parts := strings.Split(token, tokenSep)

	switch parts[0] {
	case tokStartBooking:
		return domain.StartBooking{}, nil
	case tokStartRegistration:
		return domain.StartRegistration{}, nil
	case tokShowInfo:
		return domain.ShowInfo{}, nil
	case tokContinueEvent:
		return domain.ContinueEvent{}, nil
	case tokRepairNotNeeded:
		return domain.RepairNotNeeded{}, nil
	case tokConfirmApplication:
		return domain.ConfirmApplication{}, nil
	case tokCancelApplication:
		return domain.CancelApplication{}, nil
	case tokRegisterFromSummary:
		return domain.RegisterFromSummary{}, nil
	case tokCancelRegistration:
		return domain.CancelRegistration{}, nil

	case tokSelectEvent:
		if len(parts) != 2 || parts[1] == "" {
			return nil, fmt.Errorf("select event token %q: %w", token, domain.ErrBadToken)
		}
		return domain.SelectEvent{EventID: parts[1]}, nil

	case tokSelectSlot:
		if len(parts) != 5 {
			return nil, fmt.Errorf("slot token %q: %w", token, domain.ErrBadToken)
		}
		kind := domain.PointKind(parts[2])
		if kind != domain.PointKindDropoff && kind != domain.PointKindPickup {
			return nil, fmt.Errorf("slot token kind %q: %w", parts[2], domain.ErrBadToken)
		}
		index, err := strconv.Atoi(parts[3])
		if err != nil || index < 0 {
			return nil, fmt.Errorf("slot token index %q: %w", parts[3], domain.ErrBadToken)
		}
		if parts[1] == "" || parts[4] == "" {
			return nil, fmt.Errorf("slot token %q: %w", token, domain.ErrBadToken)
		}
		return domain.SelectSlot{
			EventID:    parts[1],
			Kind:       kind,
			PointIndex: index,
			Date:       parts[4],
		}, nil

	case tokBack:
		if len(parts) != 2 {
			return nil, fmt.Errorf("back token %q: %w", token, domain.ErrBadToken)
		}
		to := domain.SessionState(parts[1])
		switch to {
		case domain.StateMainMenu, domain.StateChoosingEvent,
			domain.StateChoosingPointDate, domain.StateAskingService:
			return domain.Back{To: to}, nil
		}
		return nil, fmt.Errorf("back token target %q: %w", parts[1], domain.ErrBadToken)
	}

	return nil, fmt.Errorf("token %q: %w", token, domain.ErrBadToken)
}
