package extract

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when text that must always match a field shape
// (team title, team pair, match date) does not.
var ErrShapeMismatch = errors.New("shape mismatch")

// UnknownTeamError is returned when a requested title is not in the catalog
type UnknownTeamError struct {
	Title string
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("team %q does not exist", e.Title)
}
