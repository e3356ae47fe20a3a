// Package navigate implements the direction pointer / codel chooser
// state machine that walks a decoded program from block to block
// (spec §4.3, §4.4).
package navigate

import "github.com/pietgo/piet/internal/geom"

// Direction is the direction pointer (DP): the compass direction the
// interpreter currently exits blocks toward.
type Direction int

const (
	Right Direction = iota
	Down
	Left
	Up
	numDirections = 4
)

// Vector returns the unit step that moving one codel in d corresponds to.
func (d Direction) Vector() geom.Coord {
	switch d {
	case Right:
		return geom.Coord{X: 1, Y: 0}
	case Down:
		return geom.Coord{X: 0, Y: 1}
	case Left:
		return geom.Coord{X: -1, Y: 0}
	default: // Up
		return geom.Coord{X: 0, Y: -1}
	}
}

// Clockwise rotates the pointer 90 degrees clockwise.
func (d Direction) Clockwise() Direction {
	return (d + 1) % numDirections
}

// CounterClockwise rotates the pointer 90 degrees counterclockwise.
func (d Direction) CounterClockwise() Direction {
	return (d + numDirections - 1) % numDirections
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return "invalid"
	}
}

// Chooser is the codel chooser (CC): which side of DP the interpreter
// picks an exit codel from when a block has more than one corner in
// the direction of DP.
type Chooser int

const (
	CCLeft Chooser = iota
	CCRight
)

// Toggle flips the chooser to its opposite side.
func (c Chooser) Toggle() Chooser {
	if c == CCLeft {
		return CCRight
	}
	return CCLeft
}

func (c Chooser) String() string {
	if c == CCLeft {
		return "left"
	}
	return "right"
}
