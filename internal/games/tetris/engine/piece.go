package engine

// Kind identifies one of the seven tetromino templates.
type Kind uint8

// Piece kinds. The zero value is reserved so a Kind doubles as a board Cell.
const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindJ
	KindL
	KindS
	KindZ
)

// Kinds lists the playable kinds in sampling order.
var Kinds = [7]Kind{KindI, KindO, KindT, KindJ, KindL, KindS, KindZ}

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "-"
	}
}

// Cell returns the board marker written when a piece of this kind locks.
func (k Kind) Cell() Cell {
	return Cell(k)
}

var templates = map[Kind]Shape{
	KindI: {{1, 1, 1, 1}},
	KindO: {{1, 1}, {1, 1}},
	KindT: {{0, 1, 0}, {1, 1, 1}},
	KindJ: {{1, 0, 0}, {1, 1, 1}},
	KindL: {{0, 0, 1}, {1, 1, 1}},
	KindS: {{1, 1, 0}, {0, 1, 1}},
	KindZ: {{0, 1, 1}, {1, 1, 0}},
}

// Template returns a fresh copy of the kind's spawn orientation.
// KindNone yields an empty shape.
func (k Kind) Template() Shape {
	t, ok := templates[k]
	if !ok {
		return Shape{}
	}
	return t.Clone()
}

// Piece is a shape positioned on the board by its bounding-box top-left corner.
type Piece struct {
	Kind  Kind
	Shape Shape
	Row   int
	Col   int
}

// NewPiece returns a piece of kind k in spawn orientation at (row, col).
func NewPiece(k Kind, row, col int) Piece {
	return Piece{Kind: k, Shape: k.Template(), Row: row, Col: col}
}

// Clone returns a copy whose shape does not alias the receiver's.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Fits reports whether the piece can occupy its current position on b.
func (p Piece) Fits(b Board) bool {
	return CanPlace(b, p.Shape, p.Row, p.Col)
}

// Source supplies pseudo-random integers in [0, n). *rand.Rand satisfies it,
// and tests inject fixed sequences.
type Source interface {
	Intn(n int) int
}

// RandomKind samples a kind uniformly from src.
func RandomKind(src Source) Kind {
	return Kinds[src.Intn(len(Kinds))]
}

// SequenceSource replays a fixed list of values, wrapping around at the end.
// Values are reduced modulo n on each call.
type SequenceSource struct {
	Values []int
	pos    int
}

// Intn returns the next value of the sequence modulo n.
func (s *SequenceSource) Intn(n int) int {
	if len(s.Values) == 0 || n <= 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return ((v % n) + n) % n
}

// KindSequence builds a SequenceSource that yields the given kinds in order.
func KindSequence(kinds ...Kind) *SequenceSource {
	vals := make([]int, len(kinds))
	for i, k := range kinds {
		vals[i] = kindIndex(k)
	}
	return &SequenceSource{Values: vals}
}

func kindIndex(k Kind) int {
	for i, kk := range Kinds {
		if kk == k {
			return i
		}
	}
	return 0
}
