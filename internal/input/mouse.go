package input

// Button identifies the mouse button behind a pointer event.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// PointerAction says what the pointer did.
type PointerAction int

const (
	PointerPress PointerAction = iota
	PointerDrag
	PointerRelease
)

// Pointer is one mouse report in 1-based terminal cell coordinates.
type Pointer struct {
	Col, Row int
	Button   Button
	Action   PointerAction
}

// SGR (mode 1006) button byte flags.
const (
	sgrButtonMask = 0x03
	sgrMotion     = 0x20
	sgrWheel      = 0x40
)

// parseSGRMouse decodes "b;x;yM" or "b;x;ym", the part after ESC [ <.
// n is the number of bytes consumed. complete is false when the terminator
// has not arrived yet. Malformed or wheel reports come back with ButtonNone.
func parseSGRMouse(buf []byte) (p Pointer, n int, complete bool) {
	var fields [3]int
	field := 0
	digits := 0

	for n < len(buf) {
		c := buf[n]
		n++
		switch {
		case c >= '0' && c <= '9':
			if field < len(fields) {
				fields[field] = fields[field]*10 + int(c-'0')
			}
			digits++
		case c == ';':
			field++
			digits = 0
		case c == 'M' || c == 'm':
			if field != 2 || digits == 0 {
				return Pointer{}, n, true
			}
			return decodeSGR(fields[0], fields[1], fields[2], c == 'm'), n, true
		default:
			return Pointer{}, n, true
		}
	}
	return Pointer{}, n, false
}

func decodeSGR(code, col, row int, release bool) Pointer {
	if code&sgrWheel != 0 {
		return Pointer{}
	}

	p := Pointer{Col: col, Row: row, Action: PointerPress}
	switch code & sgrButtonMask {
	case 0:
		p.Button = ButtonLeft
	case 1:
		p.Button = ButtonMiddle
	case 2:
		p.Button = ButtonRight
	default:
		// Motion with no button held.
		return Pointer{}
	}

	switch {
	case release:
		p.Action = PointerRelease
	case code&sgrMotion != 0:
		p.Action = PointerDrag
	}
	return p
}
