package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func feed(s *Stream, data string) {
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
}

func TestKeys(t *testing.T) {
	tests := []struct {
		in   string
		want func(Input) bool
	}{
		{"q", func(in Input) bool { return in.Quit }},
		{"\x03", func(in Input) bool { return in.Quit }},
		{" ", func(in Input) bool { return in.Space }},
		{"\r", func(in Input) bool { return in.Enter }},
		{"P", func(in Input) bool { return in.Pause }},
		{"r", func(in Input) bool { return in.Restart }},
		{"\x1b", func(in Input) bool { return in.Escape }},
	}
	for _, tt := range tests {
		s := newStream()
		feed(s, tt.in)
		in := ReadInput(s)
		if tt.in == "\x1b" {
			// a lone ESC waits one read for the rest of a sequence
			in = ReadInput(s)
		}
		if !tt.want(in) {
			t.Errorf("%q: key not reported: %+v", tt.in, in)
		}
	}
}

func TestKeyHoldExpires(t *testing.T) {
	s := newStream()
	feed(s, " ")
	if !ReadInput(s).Space {
		t.Fatal("space not reported")
	}
	time.Sleep(2 * keyHoldDuration)
	if ReadInput(s).Space {
		t.Error("space still held after hold duration")
	}
}

func TestResetKeyInput(t *testing.T) {
	s := newStream()
	feed(s, " ")
	ReadInput(s)
	ResetKeyInput(s)
	if ReadInput(s).Space {
		t.Error("space held after reset")
	}
}

func TestArrowKeysAreNotEscape(t *testing.T) {
	s := newStream()
	feed(s, "\x1b[A\x1b[D")
	in := ReadInput(s)
	if in.Escape {
		t.Error("arrow key reported as escape")
	}
}

func TestSGRMouse(t *testing.T) {
	s := newStream()
	feed(s, "\x1b[<0;10;5M\x1b[<32;11;6M\x1b[<0;11;6m\x1b[<2;3;4M")
	in := ReadInput(s)

	want := []Pointer{
		{Col: 10, Row: 5, Button: ButtonLeft, Action: PointerPress},
		{Col: 11, Row: 6, Button: ButtonLeft, Action: PointerDrag},
		{Col: 11, Row: 6, Button: ButtonLeft, Action: PointerRelease},
		{Col: 3, Row: 4, Button: ButtonRight, Action: PointerPress},
	}
	if len(in.Pointers) != len(want) {
		t.Fatalf("pointers = %+v, want %d events", in.Pointers, len(want))
	}
	for i, p := range in.Pointers {
		if p != want[i] {
			t.Errorf("pointer[%d] = %+v, want %+v", i, p, want[i])
		}
	}
	if in.Escape || in.Quit {
		t.Errorf("mouse bytes leaked into keys: %+v", in)
	}
}

func TestSGRMouseIgnoresWheelAndHover(t *testing.T) {
	s := newStream()
	feed(s, "\x1b[<64;1;1M\x1b[<35;4;4M")
	if in := ReadInput(s); len(in.Pointers) != 0 {
		t.Errorf("pointers = %+v, want none", in.Pointers)
	}
}

func TestSGRMouseSplitAcrossFrames(t *testing.T) {
	s := newStream()
	feed(s, "\x1b[<0;12")
	if in := ReadInput(s); len(in.Pointers) != 0 || in.Escape {
		t.Fatalf("partial sequence decoded early: %+v", in)
	}

	feed(s, ";7M q")
	in := ReadInput(s)
	if len(in.Pointers) != 1 || in.Pointers[0].Col != 12 || in.Pointers[0].Row != 7 {
		t.Errorf("pointers = %+v, want one press at 12,7", in.Pointers)
	}
	if !in.Space || !in.Quit {
		t.Errorf("keys after sequence lost: %+v", in)
	}
}

func TestEscapeSplitFromMouseReport(t *testing.T) {
	s := newStream()
	feed(s, "\x1b")
	if in := ReadInput(s); in.Escape || in.Typed('\x1b') {
		t.Fatalf("trailing ESC reported before the next read: %+v", in)
	}

	feed(s, "[<0;10;5M")
	in := ReadInput(s)
	if len(in.Pointers) != 1 || in.Pointers[0].Col != 10 || in.Pointers[0].Row != 5 {
		t.Errorf("pointers = %+v, want one press at 10,5", in.Pointers)
	}
	if in.Escape || len(in.Keys) != 0 {
		t.Errorf("sequence leaked as keys: escape=%t keys=%q", in.Escape, in.Keys)
	}
}

func TestBareEscapeAfterQuietRead(t *testing.T) {
	s := newStream()
	feed(s, "p\x1b")
	if in := ReadInput(s); !in.Typed('p') || in.Typed('\x1b') {
		t.Fatalf("first read: keys %q, want only p", in.Keys)
	}
	if in := ReadInput(s); !in.Escape || !in.Typed('\x1b') {
		t.Errorf("bare ESC not reported once input went quiet: %+v", in)
	}
	if in := ReadInput(s); in.Typed('\x1b') {
		t.Error("bare ESC typed twice")
	}
}

func TestStartStreamReportsClose(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("q")))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		in := ReadInput(s)
		if in.Closed {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Error("stream never reported closed after EOF")
}

func TestTypedFiresOncePerPress(t *testing.T) {
	s := newStream()
	feed(s, "p\x1b[<0;1;1M")
	in := ReadInput(s)
	if !in.Typed('p', 'P') {
		t.Fatal("p not typed")
	}
	if in.Typed('M', '<') {
		t.Error("mouse sequence bytes reported as typed keys")
	}
	if ReadInput(s).Typed('p', 'P') {
		t.Error("p typed again without a new press")
	}
}
