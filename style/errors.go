package style

import "fmt"

// SyntaxError reports a style-sheet parse failure, carrying the byte
// offset into the source where parsing stopped making sense.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("style: syntax error at offset %d: %s", e.Offset, e.Msg)
}

func newSyntaxError(offset int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
