// Package dialogue describes what the teacher answers to one utterance.
// A Reply is one of CannedReply, JokeReply, RiddleReply or UnavailableReply;
// callers switch on the concrete type instead of inspecting the text.
package dialogue

import (
	"teacher-bot/domain/content"
	"teacher-bot/domain/intent"
)

type Reply interface {
	Intent() intent.Label
	isReply()
}

// CannedReply is a fixed answer from the response table.
type CannedReply struct {
	Label intent.Label
	Text  string
}

// JokeReply carries a joke that was not told before in this session.
type JokeReply struct {
	Text string
}

// RiddleReply carries a complete two-part riddle and the line introducing it.
type RiddleReply struct {
	Intro  string
	Riddle content.Riddle
}

// UnavailableReply is returned when content could not be obtained.
type UnavailableReply struct {
	Label intent.Label
	Text  string
}

func (r CannedReply) Intent() intent.Label      { return r.Label }
func (r JokeReply) Intent() intent.Label        { return intent.Joke }
func (r RiddleReply) Intent() intent.Label      { return intent.Riddle }
func (r UnavailableReply) Intent() intent.Label { return r.Label }

func (CannedReply) isReply()      {}
func (JokeReply) isReply()        {}
func (RiddleReply) isReply()      {}
func (UnavailableReply) isReply() {}
