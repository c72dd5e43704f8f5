package review

import (
	"strings"

	"lardocepet-api/internal/pkg/errs"
)

const MaxCommentLength = 1000

var (
	ErrInvalidNota    = errs.New("score must be between 1 and 5")
	ErrCommentTooLong = errs.New("comment is too long")
)

type Nota struct {
	value int
}

func NewNota(v int) (Nota, error) {
	if v < 1 || v > 5 {
		return Nota{}, ErrInvalidNota
	}
	return Nota{value: v}, nil
}

func (n Nota) Value() int { return n.value }

// Comment is optional; an empty comment is a valid review.
type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }
func (c Comment) IsEmpty() bool  { return c.text == "" }
