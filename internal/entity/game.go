package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// Opponent - returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// ParseMark - accepts "X" or "O".
func ParseMark(value string) (Mark, error) {
	mark := Mark(value)
	if !mark.IsPlayer() {
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, value)
	}

	return mark, nil
}

type Status int

const (
	StatusInProgress Status = iota
	StatusXWins
	StatusOWins
	StatusDraw
)

var statusNames = map[Status]string{
	StatusInProgress: "in_progress",
	StatusXWins:      "x_wins",
	StatusOWins:      "o_wins",
	StatusDraw:       "draw",
}

func (that Status) String() string {
	if name, ok := statusNames[that]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(that))
}

func (that Status) IsTerminal() bool {
	return that != StatusInProgress
}

func (that Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.String())
}

func (that *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("status must be a string: %w", err)
	}

	for status, statusName := range statusNames {
		if statusName == name {
			*that = status
			return nil
		}
	}

	return fmt.Errorf("%w: %q", apperror.ErrUnknownGameStatus, name)
}

// Line - three cell indices that win when occupied by the same player.
type Line [3]int

var Lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

const BoardSize = 9

// Board - cell i is row i/3, column i%3.
type Board [BoardSize]Mark

func (that *Board) CheckWin(player Mark) bool {
	if !player.IsPlayer() {
		return false
	}

	for _, line := range Lines {
		if that[line[0]] == player && that[line[1]] == player && that[line[2]] == player {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Status - derives the game status from the board alone. A win is reported
// even when the winning move also filled the board.
func (that *Board) Status() Status {
	switch {
	case that.CheckWin(PlayerX):
		return StatusXWins
	case that.CheckWin(PlayerO):
		return StatusOWins
	case that.IsFull():
		return StatusDraw
	default:
		return StatusInProgress
	}
}

// EmptyCells - indices of empty cells in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// Swapped - returns a copy of the board with X and O exchanged.
func (that *Board) Swapped() Board {
	var swapped Board
	for i, cell := range that {
		swapped[i] = cell.Opponent()
	}

	return swapped
}

func (that *Board) String() string {
	out := make([]byte, 0, BoardSize+2)
	for i, cell := range that {
		if i > 0 && i%3 == 0 {
			out = append(out, '/')
		}
		if cell == EmptyCell {
			out = append(out, '.')
			continue
		}
		out = append(out, cell[0])
	}

	return string(out)
}

// Session - the mutable root of a single game against the computer.
type Session struct {
	ID         string     `json:"id"`
	Board      Board      `json:"board"`
	Turn       Mark       `json:"turn"`
	Status     Status     `json:"status"`
	HumanMark  Mark       `json:"human_mark"`
	Difficulty Difficulty `json:"difficulty"`
}

func (that *Session) ComputerMark() Mark {
	return that.HumanMark.Opponent()
}

func (that *Session) IsFinished() bool {
	return that.Status.IsTerminal()
}

func (that *Session) IsHumanTurn() bool {
	return !that.IsFinished() && that.Turn == that.HumanMark
}

func (that *Session) IsComputerTurn() bool {
	return !that.IsFinished() && that.Turn == that.ComputerMark()
}

// Message - status line shown to the human.
func (that *Session) Message() string {
	switch that.Status {
	case StatusDraw:
		return "It's a draw!"
	case StatusXWins, StatusOWins:
		if that.Board.CheckWin(that.HumanMark) {
			return "You win!"
		}
		return "AI wins!"
	}

	if that.IsComputerTurn() {
		return "AI is thinking..."
	}

	return fmt.Sprintf("Your turn (%s)", that.HumanMark)
}
