package study

// View names one screen in the session navigation flow.
type View string

const (
	ViewUpload     View = "upload"
	ViewDashboard  View = "dashboard"
	ViewFlashcards View = "flashcards"
	ViewNotes      View = "notes"
	ViewMindmap    View = "mindmap"
	ViewQuiz       View = "quiz"
	ViewTutor      View = "tutor"
)

// Navigator gates movement between views on whether a completed session
// exists. Without one, every transition lands back on the upload view.
type Navigator struct {
	view       View
	hasSession bool
}

func NewNavigator() *Navigator {
	return &Navigator{view: ViewUpload}
}

func (n *Navigator) View() View       { return n.view }
func (n *Navigator) HasSession() bool { return n.hasSession }

// SessionReady marks a session as loaded and lands on the dashboard.
func (n *Navigator) SessionReady() {
	n.hasSession = true
	n.view = ViewDashboard
}

// Reset drops the session gate and returns to upload, the only path to
// replacing a session.
func (n *Navigator) Reset() {
	n.hasSession = false
	n.view = ViewUpload
}

// Go moves to the requested view. Session views are refused until a
// session is ready; upload is always reachable.
func (n *Navigator) Go(v View) bool {
	if v == ViewUpload {
		n.view = ViewUpload
		return true
	}
	if !n.hasSession {
		return false
	}
	n.view = v
	return true
}
