// Package console runs the interactive teacher loop on a terminal: the
// scripted lessons (math, alphabets, numbers) and free conversation routed
// to the dialogue service.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"teacher-bot/contract"
	"teacher-bot/domain/dialogue"
	"teacher-bot/errors"
	"teacher-bot/lessons"
	"teacher-bot/services"
)

const (
	WelcomeMessage = "Welcome to the Teacher Bot with Alphabets, Numbers, Math Operations, Jokes, and Riddles!"
	MainPrompt     = "What would you like me to do? Type 'math', 'alphabets', 'numbers', 'joke', 'riddle', 'exit', or ask a question: "
	GoodbyeMessage = "Goodbye!"

	mathChoicePrompt   = "Enter choice (1/2/3/4/5): "
	firstNumberPrompt  = "Enter the first number: "
	secondNumberPrompt = "Enter the second number: "
	invalidNumbers     = "Invalid input! Please enter valid numbers."
	invalidChoice      = "Invalid choice! Please enter a number between 1 and 5."
	invalidChoiceSpeak = "Invalid choice. Please enter a number between 1 and 5."

	confirmNumbersPrompt = "This will speak numbers from 0 to 500. Are you sure? (yes/no): "
	countPrompt          = "How many numbers would you like to hear? (1-500): "
	countOutOfRange      = "Please enter a number between 1 and 500."
	countNotANumber      = "Invalid input. Please enter a valid number."
	operationCancelled   = "Operation cancelled."

	riddleAnswerPrompt = "Press Enter when you're ready for the answer..."
)

// Command words handled by the console itself.
const (
	commandMath      = "math"
	commandAlphabets = "alphabets"
	commandNumbers   = "numbers"
	commandExit      = "exit"
)

// Session is one conversation between a child and the bot.
// It is not safe for concurrent use.
type Session struct {
	in       io.Reader
	out      io.Writer
	speaker  contract.Speaker
	dialogue services.IDialogueService
	log      *slog.Logger
	colours  bool

	lines      <-chan string
	readerDone <-chan struct{}
}

func NewSession(in io.Reader, out io.Writer, speaker contract.Speaker,
	dialogueService services.IDialogueService, log *slog.Logger, colours bool) *Session {
	return &Session{
		in:       in,
		out:      out,
		speaker:  speaker,
		dialogue: dialogueService,
		log:      log,
		colours:  colours,
	}
}

// Run loops until the user exits, the input ends or ctx is cancelled.
// Only a read failure on the input is returned. Returning releases the
// goroutine reading the input.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	readerDone := make(chan struct{})
	s.readerDone = readerDone
	go func() {
		defer close(readerDone)
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()
	s.lines = lines

	s.say(WelcomeMessage)
	for {
		s.prompt(MainPrompt)
		input, ok := s.read(ctx)
		if !ok {
			break
		}
		input = strings.ToLower(strings.TrimSpace(input))
		s.speaker.Speak("You selected: " + input)

		if done := s.handle(ctx, input); done {
			s.log.Info("Session ended by user")
			return nil
		}
	}

	if ctx.Err() != nil {
		s.log.Info("Session interrupted")
		return nil
	}
	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	default:
	}
	s.log.Info("Input closed, session ended")
	return nil
}

// handle reports true when the session must stop.
func (s *Session) handle(ctx context.Context, input string) bool {
	switch input {
	case commandMath:
		return s.math(ctx)
	case commandAlphabets:
		s.alphabets()
	case commandNumbers:
		s.numbers(ctx)
	case commandExit:
		s.say(GoodbyeMessage)
		return true
	default:
		reply := s.dialogue.Dispatch(ctx, input)
		s.render(ctx, reply)
	}
	return false
}

func (s *Session) render(ctx context.Context, reply dialogue.Reply) {
	s.log.Debug("Rendering reply", "intent", reply.Intent())
	switch r := reply.(type) {
	case dialogue.CannedReply:
		s.teacher(r.Text)
	case dialogue.JokeReply:
		s.teacher(r.Text)
	case dialogue.UnavailableReply:
		s.teacher(r.Text)
	case dialogue.RiddleReply:
		s.teacher(r.Intro)
		s.teacher("Here's a riddle for you: " + r.Riddle.Question)
		s.prompt(riddleAnswerPrompt)
		if _, ok := s.read(ctx); !ok {
			return
		}
		s.teacher("The answer is: " + r.Riddle.Answer)
	}
}

// math runs one arithmetic exercise. Choice 5 ends the whole session.
func (s *Session) math(ctx context.Context) bool {
	s.print("")
	s.print("Select operation:")
	for i, op := range lessons.Operations() {
		s.print(fmt.Sprintf("%d. %s", i+1, op))
	}
	s.print(lessons.ExitChoice + ". Exit")

	s.prompt(mathChoicePrompt)
	choice, ok := s.read(ctx)
	if !ok {
		return false
	}
	choice = strings.TrimSpace(choice)
	if choice == lessons.ExitChoice {
		s.say(GoodbyeMessage)
		return true
	}

	op, err := lessons.ParseChoice(choice)
	if err != nil {
		s.print(invalidChoice)
		s.speaker.Speak(invalidChoiceSpeak)
		return false
	}

	x, ok := s.readNumber(ctx, firstNumberPrompt)
	if !ok {
		return false
	}
	y, ok := s.readNumber(ctx, secondNumberPrompt)
	if !ok {
		return false
	}

	a, b := lessons.FormatNumber(x), lessons.FormatNumber(y)
	result, err := lessons.Apply(op, x, y)
	if errors.Is(err, errors.ErrDivideByZero) {
		s.say("Cannot divide by zero!")
		return false
	}
	r := lessons.FormatNumber(result)
	s.print(fmt.Sprintf("The result of %s %s %s is: %s", a, op.Symbol(), b, r))
	s.speaker.Speak(fmt.Sprintf("The result of %s %s %s is %s", a, op.Spoken(), b, r))
	return false
}

func (s *Session) readNumber(ctx context.Context, prompt string) (float64, bool) {
	s.prompt(prompt)
	line, ok := s.read(ctx)
	if !ok {
		return 0, false
	}
	n, err := lessons.ParseNumber(line)
	if err != nil {
		s.print(invalidNumbers)
		return 0, false
	}
	return n, true
}

func (s *Session) alphabets() {
	for _, letter := range lessons.Alphabet() {
		s.print(s.bold(strings.ToUpper(letter)))
		s.speaker.Speak(letter)
	}
}

func (s *Session) numbers(ctx context.Context) {
	s.prompt(confirmNumbersPrompt)
	confirm, ok := s.read(ctx)
	if !ok {
		return
	}
	switch strings.ToLower(strings.TrimSpace(confirm)) {
	case "yes":
		s.recite(lessons.FullCount)
	case "no":
		for {
			s.prompt(countPrompt)
			line, ok := s.read(ctx)
			if !ok {
				return
			}
			count, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				s.print(countNotANumber)
				continue
			}
			if err := lessons.ValidateCount(count); err != nil {
				s.print(countOutOfRange)
				s.speaker.Speak(fmt.Sprintf("You asked me to count up to %d", count))
				continue
			}
			s.recite(count)
			return
		}
	default:
		s.print(operationCancelled)
	}
}

func (s *Session) recite(limit int) {
	for _, n := range lessons.Numbers(limit) {
		text := strconv.Itoa(n)
		s.print(s.bold(text))
		s.speaker.Speak(text)
	}
}

func (s *Session) read(ctx context.Context) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-s.lines:
		return line, ok
	}
}

// teacher prints a reply prefixed with "Teacher:" and speaks it without the prefix.
func (s *Session) teacher(text string) {
	s.print(s.style(color.New(color.FgCyan), "Teacher: "+text))
	s.speaker.Speak(text)
}

func (s *Session) say(text string) {
	s.print(text)
	s.speaker.Speak(text)
}

func (s *Session) print(text string) {
	_, _ = fmt.Fprintln(s.out, text)
}

func (s *Session) prompt(text string) {
	_, _ = fmt.Fprint(s.out, text)
}

func (s *Session) bold(text string) string {
	return s.style(color.New(color.OpBold), text)
}

func (s *Session) style(style color.Style, text string) string {
	if !s.colours {
		return text
	}
	return style.Render(text)
}
