package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/zonechess-go/internal/errors"
)

// ParseSquare converts algebraic text such as "e2" into a Square.
// Letters are case-insensitive.
func ParseSquare(text string) (Square, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	if len(t) != 2 {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidMoveInput,
			Input:    text,
			Expected: "two characters like e2",
			Got:      fmt.Sprintf("%d characters", len(t)),
		}
	}

	file, rank := t[0], t[1]
	if file < FileBase || file >= FileBase+BoardSize {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidMoveInput,
			Input:    text,
			Column:   1,
			Expected: "file a-h",
			Got:      fmt.Sprintf("%q", file),
		}
	}
	if rank < RankBase || rank >= RankBase+BoardSize {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidMoveInput,
			Input:    text,
			Column:   2,
			Expected: "rank 1-8",
			Got:      fmt.Sprintf("%q", rank),
		}
	}

	return Square{
		Row: BoardSize - 1 - int(rank-RankBase),
		Col: int(file - FileBase),
	}, nil
}

// ParseMove reads a coordinate pair such as "e2 e4".
// Exactly two whitespace-separated squares are accepted.
func ParseMove(line string) (from, to Square, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Square{}, Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidMoveInput,
			Input:    line,
			Expected: "two squares like e2 e4",
			Got:      fmt.Sprintf("%d fields", len(fields)),
		}
	}

	if from, err = ParseSquare(fields[0]); err != nil {
		return Square{}, Square{}, err
	}
	if to, err = ParseSquare(fields[1]); err != nil {
		return Square{}, Square{}, err
	}
	return from, to, nil
}
