package helpers

type Position struct {
	Fen   string
	Moves []string
}

// Runner drives a game through coordinate move strings such as "e2e4".
type Runner interface {
	PerformMoveFromString(s string) Error
	SetupPosition(position Position) Error
	PerformMoves(startPos string, moves []string) Error
	MovesForSelection(s string) ([]string, Error)
	Rewind(num int) Error
	Reset()
	Search() (Optional[string], Optional[int], Error)
	IsNew() bool
}
