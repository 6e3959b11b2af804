package directedid

import "errors"

// Bit widths for the packed fields. turn occupies 2 bits (values 0..3);
// arrival and departure occupy 1 bit each (values 0/1); the remaining high
// bits hold the physical vertex id.
const (
	turnBits      = 2
	departureBits = 1
	arrivalBits   = 1

	turnShift      = 0
	departureShift = turnShift + turnBits
	arrivalShift   = departureShift + departureBits
	idShift        = arrivalShift + arrivalBits

	turnMask      = (1 << turnBits) - 1
	departureMask = (1 << departureBits) - 1
	arrivalMask   = (1 << arrivalBits) - 1
)

// Sentinel errors.
var (
	ErrNegativeID    = errors.New("directedid: vertex id must be non-negative")
	ErrSideOutOfRange = errors.New("directedid: arrival/departure must be 0 or 1")
	ErrTurnOutOfRange = errors.New("directedid: turn must be in [0,4)")
)

// Build packs (id, arrival, departure, turn) into one non-negative integer.
//
// Contract:
//   - id >= 0.
//   - arrival, departure in {0,1}.
//   - turn in [0,4).
//
// Round-trip law: ExtractAll(Build(id,arrival,departure,turn)) ==
// (arrival,departure,id,turn) for every valid quadruple.
//
// Complexity: O(1).
func Build(id, arrival, departure, turn int) (int, error) {
	if id < 0 {
		return 0, ErrNegativeID
	}
	if arrival < 0 || arrival > 1 || departure < 0 || departure > 1 {
		return 0, ErrSideOutOfRange
	}
	if turn < 0 || turn > 3 {
		return 0, ErrTurnOutOfRange
	}
	return (id << idShift) | (arrival << arrivalShift) | (departure << departureShift) | (turn << turnShift), nil
}

// ExtractAll unpacks a directed id into (arrival, departure, id, turn), the
// order consumers depend on per spec.md section 3.
//
// Complexity: O(1).
func ExtractAll(packed int) (arrival, departure, id, turn int) {
	turn = packed & turnMask
	departure = (packed >> departureShift) & departureMask
	arrival = (packed >> arrivalShift) & arrivalMask
	id = packed >> idShift
	return arrival, departure, id, turn
}

// SideIndex maps a (physical vertex id, side) pair to the row/column index
// used by the side-expanded directed weight matrix (spec.md section 6:
// "directed form for STSP splits each vertex into two sides and expands
// the table accordingly").
//
// Complexity: O(1).
func SideIndex(id, side int) int {
	return id*2 + side
}

// SidesToTurn maps an (arrival, departure) side pair to its turn index,
// the bijection spec.md section 3 describes as "turn: which of the four
// (arrival×departure) combinations was taken". The packing is
// arrival*2+departure, matching the natural enumeration order
// (0,0),(0,1),(1,0),(1,1) -> 0,1,2,3.
//
// Complexity: O(1).
func SidesToTurn(arrival, departure int) int {
	return arrival*2 + departure
}

// TurnToSides is the inverse of SidesToTurn.
//
// Complexity: O(1).
func TurnToSides(turn int) (arrival, departure int) {
	return turn >> 1, turn & 1
}

// UniverseSize returns the exclusive upper bound on packed ids across
// numPhysicalVertices physical vertices: the smallest n such that every
// Build(id, arrival, departure, turn) with id in [0, numPhysicalVertices)
// lies in [0, n). Callers use it to size a tour.Tour universe for a
// directed-id sequence.
//
// Complexity: O(1).
func UniverseSize(numPhysicalVertices int) int {
	if numPhysicalVertices <= 0 {
		return 0
	}
	maxPacked, _ := Build(numPhysicalVertices-1, 1, 1, turnMask)
	return maxPacked + 1
}
