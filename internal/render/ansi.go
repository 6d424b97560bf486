package render

// ANSI escape codes used to style game output.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red       = "\033[31m"
	Green     = "\033[32m"
	Yellow    = "\033[33m"
	Cyan      = "\033[36m"
	BrightRed = "\033[91m"

	// ClearScreen erases the terminal and homes the cursor.
	ClearScreen = "\033[2J\033[H"
)

// Colorize wraps text with the given ANSI color code and a reset suffix.
//
// Precondition: color must be a valid ANSI escape sequence.
// Postcondition: Returns text wrapped with the color code and Reset.
func Colorize(color, text string) string {
	return color + text + Reset
}

// escapeLen returns the length of the CSI sequence starting s, or 0.
func escapeLen(s string) int {
	if len(s) < 2 || s[0] != '\033' || s[1] != '[' {
		return 0
	}
	for j := 2; j < len(s); j++ {
		if c := s[j]; c >= 0x40 && c <= 0x7e {
			return j + 1
		}
	}
	return 0
}
