package stream

import "fmt"

// MalformedLineError reports a non-blank line that could not be parsed as a
// floating-point value. Under the default policy these are skipped and
// counted; a strict Reader returns them instead.
type MalformedLineError struct {
	// Path is the file the line came from.
	Path string

	// Line is the 1-based line number in the file.
	Line int

	// Raw is the original line content.
	Raw string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s:%d: malformed value %q", e.Path, e.Line, e.Raw)
}
