package transit

// Direction indicates which way along a line a vehicle is travelling.
// The Naolib network only has two.
type Direction int

const (
	DirectionNone Direction = 0

	DirectionOutbound Direction = 1
	DirectionInbound  Direction = 2
)

func (d Direction) Valid() bool {
	return d == DirectionOutbound || d == DirectionInbound
}

// Query is one validated arrivals request. Constructed once per incoming
// request and immutable afterwards.
type Query struct {
	Stop string

	Line      string
	Direction Direction

	Limit        int
	ShowTerminus bool
}
