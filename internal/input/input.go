// Package input turns raw terminal bytes into per-frame key and pointer state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit     bool
	Space    bool
	Enter    bool
	Escape   bool
	Pause    bool
	Restart  bool
	Closed   bool      // the reader hit EOF or an error
	Pointers []Pointer // mouse events in arrival order
	Keys     []byte    // key bytes typed this frame, escape sequences excluded
	Pressed  []byte
}

// Typed reports whether any of keys arrived this frame. Unlike the held
// flags it fires once per keypress, which suits toggles.
func (in Input) Typed(keys ...byte) bool {
	for _, b := range in.Keys {
		for _, k := range keys {
			if b == k {
				return true
			}
		}
	}
	return false
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit    time.Time
	space   time.Time
	enter   time.Time
	escape  time.Time
	pause   time.Time
	restart time.Time
}

// Stream delivers input bytes via a channel and tracks key state between frames.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte // incomplete escape sequence carried to the next frame
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 256)}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Key presses stay "held" for keyHoldDuration so a frame that lands between
// terminal key repeats still sees the key. Pointer events are reported once.
func ReadInput(s *Stream) Input {
	now := time.Now()
	buf := s.pending
	carried := len(buf)
	s.pending = nil

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	// A trailing ESC may open a sequence split across reads. It becomes a bare
	// Escape once a read brings nothing new.
	holdEsc := !s.closed && len(buf) > carried
	pointers, keys, rest := parse(buf, &s.state, now, holdEsc)
	if len(rest) > 0 && !s.closed {
		s.pending = append([]byte(nil), rest...)
		buf = buf[:len(buf)-len(rest)]
	}

	return Input{
		Quit:     now.Sub(s.state.quit) < keyHoldDuration,
		Space:    now.Sub(s.state.space) < keyHoldDuration,
		Enter:    now.Sub(s.state.enter) < keyHoldDuration,
		Escape:   now.Sub(s.state.escape) < keyHoldDuration,
		Pause:    now.Sub(s.state.pause) < keyHoldDuration,
		Restart:  now.Sub(s.state.restart) < keyHoldDuration,
		Closed:   s.closed,
		Pointers: pointers,
		Keys:     keys,
		Pressed:  buf,
	}
}

// ResetKeyInput forgets held keys, so a key that started the game does not
// also act on the first playing frame.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}

// parse walks buf, updating key timestamps and collecting pointer events.
// rest is a trailing escape sequence that has not fully arrived yet; with
// holdEsc a lone trailing ESC counts as one.
func parse(buf []byte, state *keyState, now time.Time, holdEsc bool) (pointers []Pointer, keys, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+1 == len(buf) && holdEsc {
			return pointers, keys, buf[i:]
		}

		if b == '\x1b' && i+1 < len(buf) && buf[i+1] == '[' {
			if i+2 >= len(buf) {
				return pointers, keys, buf[i:]
			}
			if buf[i+2] == '<' {
				p, n, complete := parseSGRMouse(buf[i+3:])
				if !complete {
					return pointers, keys, buf[i:]
				}
				if p.Button != ButtonNone {
					pointers = append(pointers, p)
				}
				i += 2 + n
				continue
			}
			// Arrow keys and other short CSI sequences carry no meaning here.
			if c := buf[i+2]; c >= 'A' && c <= 'D' {
				i += 2
				continue
			}
		}

		applyByteToState(state, b, now)
		keys = append(keys, b)
	}
	return pointers, keys, nil
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	case 'p', 'P':
		state.pause = now
	case 'r', 'R':
		state.restart = now
	}
}
