package helpers

type Player uint

const (
	White Player = iota
	Black
)

var _playerStrings = [2]string{
	"white", "black",
}

func (p Player) String() string {
	return _playerStrings[p]
}

func (p Player) Other() Player {
	return 1 - p
}

func PlayerFromString(c string) (Player, Error) {
	switch c {
	case "b", "black":
		return Black, NilError
	case "w", "white":
		return White, NilError
	default:
		return White, Errorf("invalid player char %v", c)
	}
}

type Piece uint

const (
	XX Piece = iota
	WR
	WN
	WB
	WK
	WQ
	WP
	BR
	BN
	BB
	BK
	BQ
	BP
)

type PieceType uint

const (
	Rook PieceType = iota
	Knight
	Bishop
	King
	Queen
	Pawn
	InvalidPiece
)

const NumPieceTypes = int(InvalidPiece)

var AllPieceTypes = [NumPieceTypes]PieceType{Rook, Knight, Bishop, King, Queen, Pawn}

func (p PieceType) String() string {
	return [7]string{
		"r", "n", "b", "k", "q", "p", "?",
	}[p]
}

func (p PieceType) IsValid() bool {
	return p >= Rook && p <= Pawn
}

func PieceTypeFromString(s string) PieceType {
	switch s {
	case "r":
		return Rook
	case "n":
		return Knight
	case "b":
		return Bishop
	case "k":
		return King
	case "q":
		return Queen
	case "p":
		return Pawn
	default:
		return InvalidPiece
	}
}

var PieceTypeLookup [16]PieceType = func() [16]PieceType {
	result := [16]PieceType{}
	result[XX] = InvalidPiece
	result[WR] = Rook
	result[WN] = Knight
	result[WB] = Bishop
	result[WK] = King
	result[WQ] = Queen
	result[WP] = Pawn
	result[BR] = Rook
	result[BN] = Knight
	result[BB] = Bishop
	result[BK] = King
	result[BQ] = Queen
	result[BP] = Pawn
	return result
}()

func (p Piece) PieceType() PieceType {
	return PieceTypeLookup[p]
}

// Player is only meaningful for occupied squares.
func (p Piece) Player() Player {
	if p < BR {
		return White
	}
	return Black
}

func (p Piece) IsEmpty() bool {
	return p == XX
}

func (p Piece) IsWhite() bool {
	return p <= WP && p >= WR
}

func (p Piece) IsBlack() bool {
	return p <= BP && p >= BR
}

func (p Piece) BelongsTo(player Player) bool {
	if player == White {
		return p.IsWhite()
	}
	return p.IsBlack()
}

var PieceForPlayer [2][8]Piece = func() [2][8]Piece {
	result := [2][8]Piece{}

	result[White][Rook] = WR
	result[White][Knight] = WN
	result[White][Bishop] = WB
	result[White][King] = WK
	result[White][Queen] = WQ
	result[White][Pawn] = WP

	result[Black][Rook] = BR
	result[Black][Knight] = BN
	result[Black][Bishop] = BB
	result[Black][King] = BK
	result[Black][Queen] = BQ
	result[Black][Pawn] = BP

	return result
}()

func PieceFromRune(c rune) (Piece, Error) {
	switch c {
	case 'R':
		return WR, NilError
	case 'N':
		return WN, NilError
	case 'B':
		return WB, NilError
	case 'K':
		return WK, NilError
	case 'Q':
		return WQ, NilError
	case 'P':
		return WP, NilError
	case 'r':
		return BR, NilError
	case 'n':
		return BN, NilError
	case 'b':
		return BB, NilError
	case 'k':
		return BK, NilError
	case 'q':
		return BQ, NilError
	case 'p':
		return BP, NilError
	default:
		return XX, Errorf("invalid piece %v", string(c))
	}
}

func (p Piece) String() string {
	return []string{
		" ",
		"R",
		"N",
		"B",
		"K",
		"Q",
		"P",
		"r",
		"n",
		"b",
		"k",
		"q",
		"p",
	}[p]
}

func (p Piece) Unicode() string {
	return []string{
		" ",
		"♖",
		"♘",
		"♗",
		"♔",
		"♕",
		"♙",
		"♜",
		"♞",
		"♝",
		"♚",
		"♛",
		"♟",
	}[p]
}

func (p PieceType) Unicode() string {
	return []string{
		"♜",
		"♞",
		"♝",
		"♚",
		"♛",
		"♟",
		" ",
	}[p]
}

// Square indexes the 8x8 grid as row*8 + col. Row 0 is black's back rank
// (rank 8), row 7 is white's back rank (rank 1), col 0 is the a-file.
type Square int

const NumSquares = 64

func SquareAt(row int, col int) Square {
	return Square(row*8 + col)
}

func (s Square) Row() int {
	return int(s) >> 3
}

func (s Square) Col() int {
	return int(s) & 0b111
}

func (s Square) IsValid() bool {
	return s >= 0 && s < NumSquares
}

func OnBoard(row int, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}

// Offset returns the square shifted by (dRow, dCol), if it stays on the board.
func (s Square) Offset(dRow int, dCol int) (Square, bool) {
	row, col := s.Row()+dRow, s.Col()+dCol
	if !OnBoard(row, col) {
		return 0, false
	}
	return SquareAt(row, col), true
}

func (s Square) String() string {
	if !s.IsValid() {
		return "??"
	}
	return string(rune('a'+s.Col())) + string(rune('8'-s.Row()))
}

func SquareFromString(s string) (Square, Error) {
	if len(s) != 2 {
		return 0, Errorf("invalid location %v", s)
	}

	col := int(s[0]) - 'a'
	row := '8' - int(s[1])
	if !OnBoard(row, col) {
		return 0, Errorf("invalid location %v", s)
	}

	return SquareAt(row, col), NilError
}

type MoveType int

const (
	QuietMove MoveType = iota
	CaptureMove
)

func (t MoveType) Captures() bool {
	return t == CaptureMove
}

func (t MoveType) String() string {
	switch t {
	case QuietMove:
		return "QuietMove"
	case CaptureMove:
		return "CaptureMove"
	}

	return "Invalid"
}

type Move struct {
	MoveType  MoveType
	From      Square
	To        Square
	Promotion Optional[PieceType]
}

// Matches compares origin, destination and promotion. MoveType is derived
// from the board and is ignored; a missing promotion matches any promotion.
func (m Move) Matches(o Move) bool {
	if m.From != o.From || m.To != o.To {
		return false
	}
	if m.Promotion.HasValue() && o.Promotion.HasValue() {
		return m.Promotion.Value() == o.Promotion.Value()
	}
	return true
}

func MoveFromString(s string) (Move, Error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, Errorf("invalid move %v", s)
	}

	from, fromErr := SquareFromString(s[0:2])
	to, toErr := SquareFromString(s[2:4])
	if !IsNil(fromErr) || !IsNil(toErr) {
		return Move{}, Join(Errorf("invalid move %v", s), fromErr, toErr)
	}

	move := Move{From: from, To: to}
	if len(s) == 5 {
		promotion := PieceTypeFromString(s[4:5])
		if !promotion.IsValid() || promotion == King || promotion == Pawn {
			return Move{}, Errorf("invalid promotion in %v", s)
		}
		move.Promotion = Some(promotion)
	}

	return move, NilError
}

func (m Move) String() string {
	if m.Promotion.HasValue() {
		return m.From.String() + m.To.String() + m.Promotion.Value().String()
	}
	return m.From.String() + m.To.String()
}

func (m Move) DebugString() string {
	if m.Promotion.HasValue() {
		return m.From.String() + m.To.String() + m.Promotion.Value().String()
	}
	if m.MoveType.Captures() {
		return m.From.String() + "x" + m.To.String()
	}
	return m.From.String() + m.To.String()
}
