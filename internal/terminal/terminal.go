// Package terminal simulates a command line with a fixed reply table.
// Nothing is executed and nothing outside the session is touched.
package terminal

import (
	"fmt"
	"strings"
)

const (
	DefaultBanner = "Welcome to cloudide Terminal"
	DefaultPrompt = "$ "

	helpText  = "Available commands: help, clear, echo, ls, pwd"
	lsText    = "index.html\nstyle.css\nscript.js\npackage.json"
	pwdText   = "/home/user/project"
	notFound  = "Command not found: %s"
	pmUsage   = "%s: usage: %s <command>"
	pmInstall = "added 1 package from %s in 0.4s"
)

// packageManagers are the command prefixes answered with canned output
var packageManagers = []string{"npm", "yarn", "pnpm"}

// Reply is the simulator's answer to one input line
type Reply struct {
	Output string
	Clear  bool // The panel history should be emptied
}

// Respond looks up the canned reply for line. Input is trimmed first;
// an empty line produces an empty reply.
func Respond(line string) Reply {
	command := strings.TrimSpace(line)

	switch {
	case command == "":
		return Reply{}
	case command == "clear":
		return Reply{Clear: true}
	case command == "help":
		return Reply{Output: helpText}
	case strings.HasPrefix(command, "echo "):
		return Reply{Output: command[len("echo "):]}
	case command == "ls":
		return Reply{Output: lsText}
	case command == "pwd":
		return Reply{Output: pwdText}
	}

	if manager, args, ok := packageManagerCommand(command); ok {
		return Reply{Output: packageManagerReply(manager, args)}
	}

	return Reply{Output: fmt.Sprintf(notFound, command)}
}

func packageManagerCommand(command string) (manager string, args []string, ok bool) {
	fields := strings.Fields(command)
	for _, pm := range packageManagers {
		if fields[0] == pm {
			return pm, fields[1:], true
		}
	}
	return "", nil, false
}

func packageManagerReply(manager string, args []string) string {
	if len(args) == 0 {
		return fmt.Sprintf(pmUsage, manager, manager)
	}

	switch args[0] {
	case "install", "i", "add":
		return fmt.Sprintf(pmInstall, manager)
	case "run", "start", "dev", "build", "test":
		script := args[0]
		if script == "run" && len(args) > 1 {
			script = args[1]
		}
		return fmt.Sprintf("> project@0.1.0 %s\n> %s %s (simulated)", script, manager, strings.Join(args, " "))
	case "-v", "--version", "version":
		return "10.2.4"
	}

	return fmt.Sprintf("%s %s: simulated, nothing was run", manager, strings.Join(args, " "))
}

// Session is the scrollback of one terminal panel
type Session struct {
	prompt string
	lines  []string
}

// NewSession starts a session whose history holds banner (when non-empty)
func NewSession(banner, prompt string) *Session {
	s := &Session{prompt: prompt}
	if banner != "" {
		s.lines = append(s.lines, banner)
	}
	return s
}

// Submit records line and its reply. Empty replies are not recorded;
// a clear reply empties the history, including the echoed command.
func (s *Session) Submit(line string) Reply {
	reply := Respond(line)
	if reply.Clear {
		s.lines = nil
		return reply
	}

	s.lines = append(s.lines, s.prompt+line)
	if reply.Output != "" {
		s.lines = append(s.lines, reply.Output)
	}
	return reply
}

// Prompt returns the prompt prefix
func (s *Session) Prompt() string {
	return s.prompt
}

// Lines returns a copy of the history
func (s *Session) Lines() []string {
	lines := make([]string, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// String renders the history one entry per line
func (s *Session) String() string {
	return strings.Join(s.lines, "\n")
}
