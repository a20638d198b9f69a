package converter

// statusClearedMsg removes the status line once its timeout has passed.
// id ties the message to the status it was scheduled for.
type statusClearedMsg struct {
	id int
}
