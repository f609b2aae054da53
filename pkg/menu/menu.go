package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/arthur-debert/roster/pkg/codec"
	"github.com/arthur-debert/roster/pkg/commands"
	"github.com/arthur-debert/roster/pkg/datastore"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/persistence"
	"github.com/arthur-debert/roster/pkg/style"
	"github.com/arthur-debert/roster/pkg/types"
	"github.com/pterm/pterm"
)

// Session output.
const (
	MenuText = `
[title]==== Student Management System ====[/title]
1. Add New Student
2. Add New Course
3. Enroll Student in Course
4. Add Grade for Student
5. Display Student Details
6. Display Course Details
7. Save Data to File
8. Load Data from File
0. Exit
`
	PromptChoice = "Select Option: "

	MsgInvalidOption = "Invalid option. Please try again."
	MsgSaved         = "All student and course data saved successfully."
	MsgLoaded        = "Data loaded successfully."
	MsgNoDataFile    = "No data file found. Starting with a new database."
	MsgGoodbye       = "Exiting Student Management System. Goodbye!"
)

// Options configures a Session.
type Options struct {
	In  io.Reader
	Out io.Writer
	// Store is the initial store; a new empty one is used when nil.
	Store     *datastore.DataStore
	Files     *persistence.FileStore
	Integrity codec.Integrity
	// Banner prints a header before the first menu.
	Banner bool
}

// Session is one run of the interactive menu.
type Session struct {
	out       io.Writer
	lines     <-chan string
	store     *datastore.DataStore
	files     *persistence.FileStore
	integrity codec.Integrity
	banner    bool

	// done is closed when Run returns so the reader goroutine can exit.
	done chan struct{}
	stop sync.Once
}

// New creates a session. Input is read on a separate goroutine so Run can
// return as soon as its context is cancelled.
func New(opts Options) *Session {
	store := opts.Store
	if store == nil {
		store = datastore.New()
	}
	integrity := opts.Integrity
	if integrity == "" {
		integrity = codec.Strict
	}
	done := make(chan struct{})
	return &Session{
		out:       opts.Out,
		lines:     readLines(opts.In, done),
		store:     store,
		files:     opts.Files,
		integrity: integrity,
		banner:    opts.Banner,
		done:      done,
	}
}

// readLines sends each input line until r is exhausted or done is closed.
func readLines(r io.Reader, done <-chan struct{}) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case ch <- scanner.Text():
			case <-done:
				return
			}
		}
	}()
	return ch
}

// Store returns the session's current store.
func (s *Session) Store() *datastore.DataStore {
	return s.store
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
// Only cancellation is reported as an error.
func (s *Session) Run(ctx context.Context) error {
	defer s.stop.Do(func() { close(s.done) })

	logger := logging.GetLogger("menu")
	logger.Debug().Str("data_file", s.files.Path()).Msg("Starting menu session")

	if s.banner {
		fmt.Fprintln(s.out, pterm.DefaultHeader.Sprint("roster"))
	}

	for {
		fmt.Fprint(s.out, style.Render(MenuText))
		choice, err := s.ask(ctx, PromptChoice)
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case "1":
			err = s.addStudent(ctx)
		case "2":
			err = s.addCourse(ctx)
		case "3":
			err = s.enroll(ctx)
		case "4":
			err = s.addGrade(ctx)
		case "5":
			err = s.showStudent(ctx)
		case "6":
			err = s.showCourse(ctx)
		case "7":
			s.save()
		case "8":
			s.load()
		case "0":
			s.println(MsgGoodbye)
			return nil
		default:
			s.println(MsgInvalidOption)
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Session) finish(err error) error {
	if err == io.EOF {
		logger := logging.GetLogger("menu")
		logger.Debug().Msg("Input closed, ending session")
		return nil
	}
	return err
}

// ask prints prompt and returns the next trimmed input line.
func (s *Session) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// askAge prompts until a non-negative whole number is entered.
func (s *Session) askAge(ctx context.Context) (string, error) {
	for {
		raw, err := s.ask(ctx, "Enter Age: ")
		if err != nil {
			return "", err
		}
		if _, err := commands.ParseAge(raw); err == nil {
			return raw, nil
		}
		s.println(commands.MsgInvalidNumber)
	}
}

// askAll prompts for each label in order.
func (s *Session) askAll(ctx context.Context, labels ...string) ([]string, error) {
	values := make([]string, len(labels))
	for i, label := range labels {
		v, err := s.ask(ctx, "Enter "+label+": ")
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func (s *Session) addStudent(ctx context.Context) error {
	name, err := s.ask(ctx, "Enter Name: ")
	if err != nil {
		return err
	}
	age, err := s.askAge(ctx)
	if err != nil {
		return err
	}
	rest, err := s.askAll(ctx, "Address", "Student ID")
	if err != nil {
		return err
	}
	s.report(commands.AddStudent(s.store, commands.AddStudentOptions{
		Name: name, Age: age, Address: rest[0], StudentID: rest[1],
	}))
	return nil
}

func (s *Session) addCourse(ctx context.Context) error {
	v, err := s.askAll(ctx, "Course Name", "Course Code", "Instructor")
	if err != nil {
		return err
	}
	s.report(commands.AddCourse(s.store, commands.AddCourseOptions{
		CourseName: v[0], CourseCode: v[1], Instructor: v[2],
	}))
	return nil
}

func (s *Session) enroll(ctx context.Context) error {
	v, err := s.askAll(ctx, "Student ID", "Course Code")
	if err != nil {
		return err
	}
	s.report(commands.Enroll(s.store, commands.EnrollOptions{StudentID: v[0], CourseCode: v[1]}))
	return nil
}

func (s *Session) addGrade(ctx context.Context) error {
	v, err := s.askAll(ctx, "Student ID", "Course Code", "Grade")
	if err != nil {
		return err
	}
	s.report(commands.AddGrade(s.store, commands.AddGradeOptions{
		StudentID: v[0], CourseCode: v[1], Grade: v[2],
	}))
	return nil
}

func (s *Session) showStudent(ctx context.Context) error {
	id, err := s.ask(ctx, "Enter Student ID: ")
	if err != nil {
		return err
	}
	s.card(commands.ShowStudent(s.store, commands.ShowStudentOptions{StudentID: id}))
	return nil
}

func (s *Session) showCourse(ctx context.Context) error {
	code, err := s.ask(ctx, "Enter Course Code: ")
	if err != nil {
		return err
	}
	s.card(commands.ShowCourse(s.store, commands.ShowCourseOptions{CourseCode: code}))
	return nil
}

func (s *Session) save() {
	if err := s.files.Save(s.store); err != nil {
		s.fail(err)
		return
	}
	s.println(MsgSaved)
}

func (s *Session) load() {
	store, found, err := s.files.Load(s.integrity)
	if err != nil {
		s.fail(err)
		return
	}
	s.store = store
	if !found {
		s.println(MsgNoDataFile)
		return
	}
	s.println(MsgLoaded)
}

func (s *Session) report(result *types.CommandResult, err error) {
	if err != nil {
		s.fail(err)
		return
	}
	s.println(result.Message)
}

func (s *Session) card(result *types.CommandResult, err error) {
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprint(s.out, style.RenderCard(result.Message))
}

func (s *Session) fail(err error) {
	logger := logging.GetLogger("menu")
	logger.Debug().Err(err).Str("code", string(errors.GetErrorCode(err))).Msg("Action failed")
	s.println(style.RenderError(errors.UserMessage(err)))
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}
