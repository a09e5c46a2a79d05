package signs

import (
	"strings"
	"sync"
	"time"
)

// Timing controls the reveal animation delays.
type Timing struct {
	// CharDelay is the per-character increment of the typewriter reveal.
	CharDelay time.Duration
	// ResetCharDelay is the faster per-character increment used after Reset.
	ResetCharDelay time.Duration
	// TokenSlot is the time each token holds the stage during playback.
	TokenSlot time.Duration
}

// DefaultTiming mirrors the original animation: 80ms per character while
// typing, 40ms after reset, 2s per token during playback.
func DefaultTiming() Timing {
	return Timing{
		CharDelay:      80 * time.Millisecond,
		ResetCharDelay: 40 * time.Millisecond,
		TokenSlot:      2 * time.Second,
	}
}

// Snapshot is the render state handed to the UI shell.
type Snapshot struct {
	Tokens      []Token     `json:"tokens"`
	Characters  []Character `json:"characters"`
	Current     int         `json:"current"`
	CurrentSign *Descriptor `json:"current_sign,omitempty"`
	Playing     bool        `json:"playing"`
	Finished    bool        `json:"finished"`
}

// Translator turns free text into a timed, reversible reveal animation over
// the sign dictionary.
//
// All state transitions happen either in a command (SetInput, Play, Reset)
// or in a scheduled callback; both run under one mutex. Every command first
// cancels the previous timeline, so two reveal passes can never interleave:
// a callback whose generation no longer matches the timeline's is a stale
// remnant of a superseded pass and returns without touching state.
type Translator struct {
	dict   *Dictionary
	sched  Scheduler
	timing Timing

	mu       sync.Mutex
	timeline Timeline
	tokens   []Token
	chars    []Character
	current  int
	playing  bool
	finished bool
}

// NewTranslator creates a translator over the given dictionary. A nil
// scheduler selects the real time.AfterFunc scheduler.
func NewTranslator(dict *Dictionary, sched Scheduler, timing Timing) *Translator {
	if sched == nil {
		sched = TimerScheduler{}
	}
	return &Translator{
		dict:   dict,
		sched:  sched,
		timing: timing,
	}
}

// schedule registers a guarded callback on the current timeline. Must be
// called with the mutex held.
func (t *Translator) schedule(gen uint64, d time.Duration, f func()) {
	timer := t.sched.AfterFunc(d, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if gen != t.timeline.Generation() {
			return
		}
		f()
	})
	t.timeline.Add(timer)
}

// SetInput replaces the translation with a fresh one for the given text and
// starts the typewriter reveal. Empty or whitespace-only input clears all
// derived state.
func (t *Translator) SetInput(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	gen := t.timeline.CancelAll()
	t.playing = false
	t.finished = false
	t.current = 0

	if strings.TrimSpace(text) == "" {
		t.tokens = nil
		t.chars = nil
		return
	}

	t.tokens = t.dict.ResolveText(text)
	t.chars = flattenCharacters(t.tokens)

	for i := range t.chars {
		index := i
		t.schedule(gen, time.Duration(index)*t.timing.CharDelay, func() {
			t.chars[index].Revealed = true
		})
	}
}

// Play replays the translation token by token: each token's slot advances
// the current-token pointer and re-reveals that token's characters, and a
// final callback after the last slot marks playback finished. Any pending
// reveal pass is cancelled first.
func (t *Translator) Play() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.tokens) == 0 {
		return
	}

	gen := t.timeline.CancelAll()
	t.playing = true
	t.finished = false

	offset := 0
	for i := range t.tokens {
		tokenIndex := i
		slotStart := time.Duration(tokenIndex) * t.timing.TokenSlot

		t.schedule(gen, slotStart, func() {
			t.current = tokenIndex
		})

		for c := range t.tokens[i].Characters {
			charIndex := offset + c
			charInToken := c
			t.schedule(gen, slotStart+time.Duration(charInToken)*t.timing.CharDelay, func() {
				t.chars[charIndex].Revealed = true
				t.tokens[tokenIndex].Characters[charInToken].Revealed = true
			})
		}

		offset += len(t.tokens[i].Characters) + 1
	}

	t.schedule(gen, time.Duration(len(t.tokens))*t.timing.TokenSlot, func() {
		t.playing = false
		t.finished = true
	})
}

// Reset cancels any pending reveals, hides every character, and re-reveals
// from the start at the faster reset cadence.
func (t *Translator) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	gen := t.timeline.CancelAll()
	t.playing = false
	t.finished = false
	t.current = 0

	for i := range t.chars {
		t.chars[i].Revealed = false
	}
	for i := range t.tokens {
		for c := range t.tokens[i].Characters {
			t.tokens[i].Characters[c].Revealed = false
		}
	}

	for i := range t.chars {
		index := i
		t.schedule(gen, time.Duration(index)*t.timing.ResetCharDelay, func() {
			t.chars[index].Revealed = true
		})
	}
}

// Snapshot returns a copy of the current render state.
func (t *Translator) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := Snapshot{
		Tokens:     make([]Token, len(t.tokens)),
		Characters: append([]Character(nil), t.chars...),
		Current:    t.current,
		Playing:    t.playing,
		Finished:   t.finished,
	}
	for i, tok := range t.tokens {
		copied := tok
		copied.Characters = append([]Character(nil), tok.Characters...)
		snap.Tokens[i] = copied
	}
	if t.current < len(t.tokens) {
		snap.CurrentSign = t.tokens[t.current].Sign
	}
	return snap
}

// flattenCharacters joins the lowercased tokens with single spaces into one
// character list for the full-line typewriter effect.
func flattenCharacters(tokens []Token) []Character {
	var chars []Character
	for i, tok := range tokens {
		if i > 0 {
			chars = append(chars, Character{Char: ' '})
		}
		for _, r := range strings.ToLower(tok.Original) {
			chars = append(chars, Character{Char: r})
		}
	}
	return chars
}
