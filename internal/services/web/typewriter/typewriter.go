// Package typewriter plans the hero headline animation.
//
// The server computes the whole frame sequence; the browser only replays it,
// so the timing is testable without a DOM.
package typewriter

import (
	"encoding/json"
	"time"
)

const (
	// DefaultSpeed is the delay before each typed character.
	DefaultSpeed = 100 * time.Millisecond
	// DefaultDelayBetweenWords is the pause before the cursor moves on.
	DefaultDelayBetweenWords = time.Millisecond
)

// Frame is one visible state of the headline.
type Frame struct {
	// Delay is how long to wait after the previous frame.
	Delay time.Duration
	// Words holds the typed prefix of every word slot.
	Words []string
	// Cursor is the word slot showing the cursor, or -1 once typing is done.
	Cursor int
}

// Plan returns every frame of typing words one rune at a time. Non-positive
// durations fall back to the defaults. An empty word list yields a single
// finished frame.
func Plan(words []string, speed, delayBetweenWords time.Duration) []Frame {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	if delayBetweenWords <= 0 {
		delayBetweenWords = DefaultDelayBetweenWords
	}
	if len(words) == 0 {
		return []Frame{{Words: []string{}, Cursor: -1}}
	}

	shown := make([]string, len(words))
	frames := []Frame{{Words: clone(shown), Cursor: 0}}
	word, typed := 0, 0
	runes := []rune(words[0])
	for {
		switch {
		case typed < len(runes):
			typed++
			shown[word] = string(runes[:typed])
			frames = append(frames, Frame{Delay: speed, Words: clone(shown), Cursor: word})
		case word < len(words)-1:
			word++
			typed = 0
			runes = []rune(words[word])
			frames = append(frames, Frame{Delay: delayBetweenWords, Words: clone(shown), Cursor: word})
		default:
			return append(frames, Frame{Words: clone(shown), Cursor: -1})
		}
	}
}

// Duration is the total playback time of frames.
func Duration(frames []Frame) time.Duration {
	var total time.Duration
	for _, frame := range frames {
		total += frame.Delay
	}
	return total
}

// MarshalJSON encodes the frame for the browser player with the delay in
// milliseconds.
func (f Frame) MarshalJSON() ([]byte, error) {
	words := f.Words
	if words == nil {
		words = []string{}
	}
	return json.Marshal(struct {
		Delay  float64  `json:"delay"`
		Words  []string `json:"words"`
		Cursor int      `json:"cursor"`
	}{
		Delay:  float64(f.Delay) / float64(time.Millisecond),
		Words:  words,
		Cursor: f.Cursor,
	})
}

// Script encodes frames as the JSON document the static player reads.
func Script(frames []Frame) (string, error) {
	if frames == nil {
		frames = []Frame{}
	}
	payload, err := json.Marshal(frames)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func clone(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	return out
}
