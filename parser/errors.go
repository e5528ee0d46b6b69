/*
File    : kraber/parser/errors.go
*/
package parser

import "fmt"

// ParseError reports a grammar violation the parser cannot recover from.
// Every parse failure is fatal — there is no error-recovery path — so
// ParseError is always the last thing Parse returns.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

func newParseError(format string, args ...interface{}) error {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}
