package markup

import "fmt"

// SyntaxError reports a markup parse failure at a byte offset into the
// source document.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("markup: syntax error at offset %d: %s", e.Offset, e.Msg)
}

func newSyntaxError(offset int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
