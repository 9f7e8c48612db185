package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark makes markErr the dispatch identity of err: the result matches
// markErr under errors.Is, keeps err's message in Error(), and keeps
// err's full detail (stack included) for %+v logging.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.WithSecondaryError(cr.Wrap(markErr, err.Error()), err)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
