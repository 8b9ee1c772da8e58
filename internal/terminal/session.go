// Package terminal runs an interactive catalog browsing session over line-based input.
package terminal

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/myrjola/dharohar/internal/errors"
	"github.com/myrjola/dharohar/internal/models"
	"github.com/myrjola/dharohar/internal/view"
)

const helpText = `Commands:
  open <n|id>       open the numbered or named state or monument
  filter <type>     show only monuments of a type, "all" shows every type
  category <tag>    select a navigation category, "all" clears it
  search [text]     search names, locations, and descriptions, empty clears
  back              return to the previous view
  types             list monument types
  help              show this help
  quit              end the session`

// Printer shows messages to the user.
type Printer interface {
	Message(format string, args ...any)
}

type Session struct {
	ctrl    *view.Controller
	printer Printer
	logger  *slog.Logger
}

func NewSession(ctrl *view.Controller, printer Printer, logger *slog.Logger) *Session {
	return &Session{
		ctrl:    ctrl,
		printer: printer,
		logger:  logger,
	}
}

// Run starts the controller and executes commands read from in until quit, end of input, or ctx is done.
//
// Pending searches are applied before returning.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.ctrl.Start()
	s.printer.Message(`Type "help" for commands.`)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "session cancelled")
		}
		if quit := s.Execute(ctx, scanner.Text()); quit {
			return nil
		}
	}
	s.ctrl.FlushSearch()
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}
	return nil
}

// Execute runs a single command line and reports whether the session should end.
func (s *Session) Execute(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
	cmd = strings.ToLower(cmd)
	if cmd == "" {
		return false
	}

	if cmd == "search" {
		s.ctrl.Search(arg)
		return false
	}
	// A pending search lands before any other command.
	s.ctrl.FlushSearch()

	arg = strings.TrimSpace(arg)
	var err error
	switch cmd {
	case "open":
		err = s.open(arg)
	case "filter":
		s.ctrl.SetFilter(arg)
	case "category":
		s.ctrl.SetCategory(arg)
	case "back":
		err = s.ctrl.Back()
	case "types":
		s.printer.Message("Types: all, %s", strings.Join(s.ctrl.Types(), ", "))
	case "help", "?":
		s.printer.Message(helpText)
	case "quit", "exit":
		return true
	default:
		s.printer.Message("Unknown command %q. Type \"help\" for commands.", cmd)
	}

	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "command failed",
			slog.String("command", cmd), slog.String("arg", arg), errors.SlogError(err))
		s.printer.Message("%s", userMessage(err))
	}
	return false
}

// open selects an entry of the current listing by its 1-based number or by id.
func (s *Session) open(arg string) error {
	if arg == "" {
		return errMissingArgument
	}
	switch s.ctrl.ViewState().View {
	case models.HomeView:
		states := s.ctrl.States()
		if i, ok := listIndex(arg, len(states)); ok {
			return s.ctrl.SelectState(states[i].ID)
		}
		return s.ctrl.SelectState(arg)
	case models.StateView:
		visible, _ := s.ctrl.Visible()
		if i, ok := listIndex(arg, len(visible)); ok {
			return s.ctrl.SelectMonument(visible[i].ID)
		}
		return s.ctrl.SelectMonument(arg)
	case models.MonumentView:
		return errors.Wrap(view.ErrInvalidTransition, "open from monument view")
	}
	return nil
}

var errMissingArgument = errors.NewSentinel("missing argument")

func listIndex(arg string, n int) (int, bool) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, errMissingArgument):
		return "Tell me what to open, e.g. \"open 1\"."
	case errors.Is(err, view.ErrUnknownState):
		return "No such state."
	case errors.Is(err, view.ErrUnknownMonument):
		return "No such monument in this state."
	case errors.Is(err, view.ErrInvalidTransition):
		return "Not available here. Type \"help\" for commands."
	default:
		return "Something went wrong."
	}
}
