package server

import (
	"fmt"
	"strings"

	"looseeq/explain"
)

// SessionHelp lists the commands a session understands
const SessionHelp = `Commands:
  :help          Show this help
  :quit / :exit  Close the session
  :verify        Toggle checking every example with loose equality
Anything else is read as a JavaScript value.`

// Session is the line-at-a-time state shared by the REPL and network
// connections
type Session struct {
	Verify bool
}

// Handle evaluates one input line. It returns the text to show (possibly
// several lines, possibly empty) and whether the user asked to leave.
func (s *Session) Handle(line string) (out string, exit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}

	if strings.HasPrefix(line, ":") {
		switch strings.ToLower(strings.Fields(line)[0]) {
		case ":help":
			return SessionHelp, false
		case ":quit", ":exit":
			return "", true
		case ":verify":
			s.Verify = !s.Verify
			return fmt.Sprintf("verify: %t", s.Verify), false
		}
		return fmt.Sprintf("unknown command %s (try :help)", line), false
	}

	return explain.Explain(line, explain.WithVerify(s.Verify)).String(), false
}
