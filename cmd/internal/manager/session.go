// Package manager runs the interactive student manager.
package manager

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harrybrwn/roster/pkg/prompt"
	"github.com/harrybrwn/roster/pkg/term"
	"github.com/harrybrwn/roster/roster"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const menu = `
== Manager Panel ==
1. Add Student
2. View Students
3. Edit Student
4. Delete Student
5. Exit
Please Enter Your Choice:`

const (
	msgReadErr   = "Error reading input."
	msgBadNumber = "Invalid input. Please enter a valid number."
	msgBadChoice = "Invalid choice. Please enter a number from 1 to 5."
	msgNotFound  = "Student not found."
	msgUpdated   = "Student information updated successfully."
	msgRemoved   = "Student removed successfully."
	msgExit      = "Exiting program."
)

// Session is an interactive menu loop over a single roster.
type Session struct {
	roster  *roster.Roster
	in      *prompt.Reader
	out     io.Writer
	log     logrus.FieldLogger
	format  Format
	color   bool
	palette *term.Palette
}

// Option configures a Session.
type Option func(*Session)

// WithRoster sets the roster managed by the session.
func WithRoster(r *roster.Roster) Option {
	return func(s *Session) { s.roster = r }
}

// WithLogger sets the session logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) { s.log = l }
}

// WithFormat sets the format used to view students.
func WithFormat(f Format) Option {
	return func(s *Session) { s.format = f }
}

// WithColor turns colored output on or off.
func WithColor(color bool) Option {
	return func(s *Session) { s.color = color }
}

// New creates a session that reads from in and writes to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Session {
	discard := logrus.New()
	discard.Out = io.Discard
	s := &Session{
		roster: roster.New(),
		in:     prompt.NewReader(in, out),
		out:    out,
		log:    discard,
		format: FormatDebug,
		color:  true,
	}
	for _, o := range opts {
		o(s)
	}
	s.palette = term.NewPalette(s.color)
	return s
}

// Roster returns the roster managed by the session.
func (s *Session) Roster() *roster.Roster {
	return s.roster
}

// Run shows the menu and handles selections until the user
// exits or the input is closed.
func (s *Session) Run() {
	for s.step() {
	}
	fmt.Fprintln(s.out, msgExit)
}

// step runs one menu cycle and returns false once
// the session should stop.
func (s *Session) step() bool {
	fmt.Fprintln(s.out, s.palette.Title(menu))
	choice, err := s.in.Line()
	if err != nil {
		fmt.Fprintln(s.out, s.palette.Red(msgReadErr))
		if err == io.EOF {
			// a closed input never yields another selection
			s.log.Info("input closed")
			return false
		}
		s.log.WithError(err).Debug("could not read menu selection")
		return true
	}
	action, ok := ParseAction(choice)
	if !ok {
		fmt.Fprintln(s.out, s.palette.Yellow(msgBadChoice))
		s.log.WithField("choice", choice).Debug("invalid choice")
		return true
	}
	s.log.WithField("action", action).Debug("menu selection")

	switch action {
	case AddStudent:
		s.add()
	case ViewStudents:
		s.view()
	case EditStudent:
		s.edit()
	case DeleteStudent:
		s.remove()
	case Exit:
		return false
	}
	return true
}

func (s *Session) add() {
	name, err := s.in.Ask("Enter name of Student:")
	if err != nil {
		s.abort(AddStudent, err)
		return
	}
	age, err := s.in.AskUint("Enter Age of Student:")
	if err != nil {
		s.abort(AddStudent, err)
		return
	}
	score, err := s.in.AskUint("Enter Score of Student:")
	if err != nil {
		s.abort(AddStudent, err)
		return
	}
	s.roster.Add(roster.NewStudent(name, age, score))
	s.log.WithFields(logrus.Fields{
		"name":  name,
		"age":   age,
		"score": score,
	}).Info("student added")
}

func (s *Session) view() {
	students := s.roster.List()
	writeStudents(s.out, s.format, s.color && !color.NoColor, students)
	s.log.WithField("count", len(students)).Debug("listed students")
}

func (s *Session) edit() {
	name, err := s.in.Ask("Enter name of Student to edit:")
	if err != nil {
		s.abort(EditStudent, err)
		return
	}
	age, err := s.in.AskUint("Enter new Age of Student:")
	if err != nil {
		s.abort(EditStudent, err)
		return
	}
	score, err := s.in.AskUint("Enter new Score of Student:")
	if err != nil {
		s.abort(EditStudent, err)
		return
	}
	if !s.roster.Edit(name, age, score) {
		s.notFound(EditStudent, name)
		return
	}
	fmt.Fprintln(s.out, s.palette.Green(msgUpdated))
	s.log.WithFields(logrus.Fields{
		"name":  name,
		"age":   age,
		"score": score,
	}).Info("student edited")
}

func (s *Session) remove() {
	name, err := s.in.Ask("Enter name of Student to remove:")
	if err != nil {
		s.abort(DeleteStudent, err)
		return
	}
	if !s.roster.Remove(name) {
		s.notFound(DeleteStudent, name)
		return
	}
	fmt.Fprintln(s.out, s.palette.Green(msgRemoved))
	s.log.WithField("name", name).Info("student removed")
}

func (s *Session) notFound(action Action, name string) {
	fmt.Fprintln(s.out, s.palette.Red(msgNotFound))
	s.log.WithFields(logrus.Fields{
		"action": action,
		"name":   name,
	}).WithError(roster.ErrNotFound).Info("not found")
}

// abort reports a failed field read. Nothing is printed
// for blank or closed input.
func (s *Session) abort(action Action, err error) {
	switch {
	case errors.Is(err, prompt.ErrInvalidNumber):
		fmt.Fprintln(s.out, s.palette.Yellow(msgBadNumber))
	case errors.Is(err, prompt.ErrEmpty), err == io.EOF:
	default:
		fmt.Fprintln(s.out, s.palette.Red(msgReadErr))
	}
	s.log.WithField("action", action).WithError(err).Debug("action abandoned")
}
