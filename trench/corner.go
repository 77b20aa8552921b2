package trench

import "fmt"

// turn is an (incoming, outgoing) heading pair.
type turn struct {
	in, out Direction
}

// corners maps every perpendicular turn onto the bend that joins the cell
// the path came from with the cell it heads to.
var corners = map[turn]PipeSymbol{
	{Right, Down}: BendDL,
	{Right, Up}:   BendUL,
	{Left, Down}:  BendDR,
	{Left, Up}:    BendUR,
	{Down, Right}: BendUR,
	{Down, Left}:  BendUL,
	{Up, Right}:   BendDR,
	{Up, Left}:    BendDL,
}

// Corner returns the bend placed where an edge heading in is followed by an
// edge heading out. Same-direction and opposite-direction pairs return
// ErrInvalidTurn.
func Corner(in, out Direction) (PipeSymbol, error) {
	sym, ok := corners[turn{in, out}]
	if !ok {
		return None, fmt.Errorf("%w: %v then %v", ErrInvalidTurn, in, out)
	}
	return sym, nil
}
