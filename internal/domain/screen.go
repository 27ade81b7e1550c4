package domain

// Screen is the controller's outbound descriptor: text to show, the
// selectable options, and whether free text is meaningful on this step.
// Rendering it is the shell's job.
type Screen struct {
	Text        string
	Options     []Option
	ExpectsText bool

	// Alert is a short popup acknowledgement. A screen with only an
	// Alert set leaves the current message untouched.
	Alert string
}

// Option is one selectable button. The shell encodes the action into a
// callback token when rendering.
type Option struct {
	Label  string
	Action Action
}
