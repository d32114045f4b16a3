package screens

// GoBackMsg asks the app to return to the previous screen.
type GoBackMsg struct{}
