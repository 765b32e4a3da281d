package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const winScore = 10

// SelectRandomMove - picks one of the empty cells uniformly. intn must return a
// value in [0, n), e.g. rand.IntN.
func SelectRandomMove(board entity.Board, intn func(n int) int) (int, error) {
	available := board.EmptyCells()
	if len(available) == 0 {
		return 0, apperror.ErrNoLegalMove
	}

	return available[intn(len(available))], nil
}

// SelectBestMove - returns the optimal cell for O. Equal scores keep the lowest index.
// Each candidate is placed and then scored with Minimax at depth 0, so a move that
// wins on the spot scores 10 and a win after the next X reply scores 8.
func SelectBestMove(board entity.Board) (int, error) {
	bestCell := -1
	bestScore := 0

	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		score := scoreCandidate(&board, cell, entity.PlayerO, 0, false)
		if bestCell == -1 || score > bestScore {
			bestCell, bestScore = cell, score
		}
	}

	if bestCell == -1 {
		return 0, apperror.ErrNoLegalMove
	}

	return bestCell, nil
}

// Minimax - scores the board with O maximizing and X minimizing. Faster wins
// and slower losses score higher: an O win at depth d is 10-d, an X win is d-10.
// The whole remaining tree is searched. board is restored before returning.
func Minimax(board *entity.Board, depth int, maximizing bool) int {
	switch {
	case board.CheckWin(entity.PlayerO):
		return winScore - depth
	case board.CheckWin(entity.PlayerX):
		return depth - winScore
	case board.IsFull():
		return 0
	}

	mark, next := entity.PlayerX, true
	if maximizing {
		mark, next = entity.PlayerO, false
	}

	var best int
	first := true

	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		score := scoreCandidate(board, cell, mark, depth+1, next)

		switch {
		case first:
			best, first = score, false
		case maximizing && score > best:
			best = score
		case !maximizing && score < best:
			best = score
		}
	}

	return best
}

// scoreCandidate - places mark on cell, searches, and empties the cell again.
func scoreCandidate(board *entity.Board, cell int, mark entity.Mark, depth int, maximizing bool) int {
	board[cell] = mark
	defer func() { board[cell] = entity.EmptyCell }()

	return Minimax(board, depth, maximizing)
}
