package domain

import "time"

type SessionState string

const (
	StateMainMenu          SessionState = "main_menu"
	StateInfoScreen        SessionState = "info_screen"
	StateChoosingEvent     SessionState = "choosing_event"
	StateChoosingPointDate SessionState = "choosing_point_date"
	StateAskingService     SessionState = "asking_service"
	StateFinalSummary      SessionState = "final_summary"

	StateRegFullName       SessionState = "reg_full_name"
	StateRegPhone          SessionState = "reg_phone"
	StateRegPassportNumber SessionState = "reg_passport_number"
	StateRegIssuedBy       SessionState = "reg_issued_by"
	StateRegIssueDate      SessionState = "reg_issue_date"
	StateRegAddress        SessionState = "reg_address"
)

func (s SessionState) IsRegistration() bool {
	switch s {
	case StateRegFullName, StateRegPhone, StateRegPassportNumber,
		StateRegIssuedBy, StateRegIssueDate, StateRegAddress:
		return true
	}
	return false
}

// Session tracks one user's position in the conversation. Exactly one
// live session per user; the bot shell serializes all mutations for
// the same user id.
type Session struct {
	UserID int64
	ChatID int64
	// Telegram @username, refreshed on every inbound event. Empty for
	// users without one.
	Username  string
	State     SessionState
	Data      SessionData
	UpdatedAt time.Time
}

func NewSession(userID, chatID int64) *Session {
	return &Session{
		UserID:    userID,
		ChatID:    chatID,
		State:     StateMainMenu,
		UpdatedAt: time.Now().UTC(),
	}
}

// SessionData accumulates collected fields as the user advances.
// Backward navigation clears the fields owned by the steps being left,
// so a later step never renders stale data from a different path.
type SessionData struct {
	SelectedEventID string
	EventName       string

	PointKind    PointKind
	PointIndex   int
	PointName    string
	SelectedDate string
	SelectedTime string

	// Ternary: nil = unanswered, false = not needed, true = needed
	// (with a mechanic comment).
	PreRepair        *bool
	PreRepairComment string

	// Set when registration is entered from the final summary;
	// consumed on successful registration.
	ResumeToSummary bool

	// Registration scratch fields, flushed to the profile store on the
	// last step.
	FullName          string
	PhoneNumber       string
	PassportNumber    string
	PassportIssuedBy  string
	PassportIssueDate string
	Address           string
}

// ResetSlot clears the point/date/time selection and everything after it.
func (d *SessionData) ResetSlot() {
	d.PointKind = ""
	d.PointIndex = 0
	d.PointName = ""
	d.SelectedDate = ""
	d.SelectedTime = ""
	d.ResetService()
}

// ResetService clears the pre-repair answer.
func (d *SessionData) ResetService() {
	d.PreRepair = nil
	d.PreRepairComment = ""
}

// ResetBooking clears the whole draft, event selection included.
func (d *SessionData) ResetBooking() {
	d.SelectedEventID = ""
	d.EventName = ""
	d.ResetSlot()
}

func (d *SessionData) ResetRegistration() {
	d.ResumeToSummary = false
	d.FullName = ""
	d.PhoneNumber = ""
	d.PassportNumber = ""
	d.PassportIssuedBy = ""
	d.PassportIssueDate = ""
	d.Address = ""
}

// Reset empties the session data entirely (cancel, completion, /start).
func (d *SessionData) Reset() {
	*d = SessionData{}
}
