package domain

// Command is a global slash command, valid from any state.
type Command string

const (
	CommandStart  Command = "start"
	CommandCancel Command = "cancel"
	CommandExit   Command = "exit"
)

// Action is a decoded button press. The bot shell parses raw callback
// tokens at the boundary; the conversation controller only ever sees
// these typed variants.
type Action interface {
	isAction()
}

// StartBooking opens the event list from the main menu.
type StartBooking struct{}

// SelectEvent marks an event in the list; re-selecting the already
// selected event is a no-op acknowledged with an alert.
type SelectEvent struct {
	EventID string
}

// ContinueEvent confirms the event selection and advances to the
// point/date screen.
type ContinueEvent struct{}

// SelectSlot picks a point+date combination from the combined keyboard.
type SelectSlot struct {
	EventID    string
	Kind       PointKind
	PointIndex int
	Date       string
}

// RepairNotNeeded answers the pre-repair question with "no".
type RepairNotNeeded struct{}

// ConfirmApplication submits the draft from the final summary.
type ConfirmApplication struct{}

// CancelApplication discards the draft and returns to the main menu.
type CancelApplication struct{}

// StartRegistration enters the registration chain from the main menu.
type StartRegistration struct{}

// RegisterFromSummary enters registration from the final summary to
// unblock submission; the summary is resumed after the last step.
type RegisterFromSummary struct{}

// CancelRegistration aborts the registration chain.
type CancelRegistration struct{}

// ShowInfo opens the informational screen.
type ShowInfo struct{}

// Back returns to a previous screen, clearing the fields owned by the
// steps being left.
type Back struct {
	To SessionState
}

func (StartBooking) isAction()        {}
func (SelectEvent) isAction()         {}
func (ContinueEvent) isAction()       {}
func (SelectSlot) isAction()          {}
func (RepairNotNeeded) isAction()     {}
func (ConfirmApplication) isAction()  {}
func (CancelApplication) isAction()   {}
func (StartRegistration) isAction()   {}
func (RegisterFromSummary) isAction() {}
func (CancelRegistration) isAction()  {}
func (ShowInfo) isAction()            {}
func (Back) isAction()                {}
