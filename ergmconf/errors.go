package ergmconf

import (
	"errors"
	"fmt"

	"github.com/ergmgo/ergmnet/ergmerr"
)

var (
	errSyntax          = errors.New("ergmconf: syntax error")
	errDuplicateOption = errors.New("ergmconf: duplicate option")
	errUnknownOption   = errors.New("ergmconf: unknown option")
)

// ErrSyntax wraps errSyntax with a line number and detail message.
func ErrSyntax(line int, detail string) error {
	return ergmerr.Config(fmt.Errorf("%w: line %d: %s", errSyntax, line, detail))
}

// ErrDuplicateOption wraps errDuplicateOption with the offending name.
func ErrDuplicateOption(name string) error {
	return ergmerr.Config(fmt.Errorf("%w: %q", errDuplicateOption, name))
}

// ErrUnknownOption wraps errUnknownOption with the offending name.
func ErrUnknownOption(name string) error {
	return ergmerr.Config(fmt.Errorf("%w: %q", errUnknownOption, name))
}
