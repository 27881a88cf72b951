// Package speech reads the teacher's lines aloud through an external
// text-to-speech program such as espeak or say.
package speech

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"teacher-bot/contract"
)

// CommandSpeaker runs the configured program once per line, the text being the last argument.
// It blocks until the line has been spoken so that lines never overlap.
type CommandSpeaker struct {
	bin     string
	args    []string
	timeout time.Duration
	log     *slog.Logger
}

// NewCommandSpeaker splits command on spaces: "espeak -s 140" runs espeak with "-s 140 <text>".
// An empty command gives a Silent speaker.
func NewCommandSpeaker(command string, timeout time.Duration, log *slog.Logger) contract.Speaker {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return Silent{}
	}
	return &CommandSpeaker{bin: fields[0], args: fields[1:], timeout: timeout, log: log}
}

func (s *CommandSpeaker) Speak(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	args := append(append([]string{}, s.args...), text)
	cmd := exec.CommandContext(ctx, s.bin, args...)
	setPlatformSpecificAttrs(cmd)
	if output, err := cmd.CombinedOutput(); err != nil {
		s.log.Warn("Speech failed", "command", s.bin, "error", err, "output", strings.TrimSpace(string(output)))
	}
}

// Silent drops every line.
type Silent struct{}

func (Silent) Speak(string) {}
