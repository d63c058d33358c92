// Package archetype defines the five personality archetypes a seeker can be classified into.
package archetype

import "strconv"

// ID identifies an archetype. The zero value means "unassigned".
type ID int

const (
	None ID = iota
	Decisive
	Steady
	Coordinator
	Solver
	Generalist
)

// All returns every assignable archetype in id order.
func All() []ID {
	return []ID{Decisive, Steady, Coordinator, Solver, Generalist}
}

// Valid reports whether id is one of the five assignable archetypes.
func (id ID) Valid() bool {
	return id >= Decisive && id <= Generalist
}

func (id ID) String() string {
	switch id {
	case Decisive:
		return "decisive"
	case Steady:
		return "steady"
	case Coordinator:
		return "coordinator"
	case Solver:
		return "solver"
	case Generalist:
		return "generalist"
	case None:
		return "unassigned"
	default:
		return "archetype(" + strconv.Itoa(int(id)) + ")"
	}
}

// Ptr returns a pointer to a copy of id. Batch results use nil for "no archetype".
func Ptr(id ID) *ID {
	return &id
}
