package rod

// SessionPID returns the Chrome process ID behind a session started by Launcher.
func SessionPID(s Session) int {
	return s.(*browserSession).launcher.PID()
}
