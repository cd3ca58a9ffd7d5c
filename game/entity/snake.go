package entity

import (
	"gridsnake/game/types"
)

const noSegment = -1

// segment is one body cell. prev points toward the head, next toward the tail.
type segment struct {
	cell       types.Cell
	prev, next int
}

// Snake is an ordered head-to-tail body stored as a doubly linked list
// inside a slice arena. Links are slice indices, so segments never move.
type Snake struct {
	segments []segment
	head     int
	tail     int
	length   int

	Direction     types.Direction // Applied on the next step
	PrevDirection types.Direction // Applied on the last step
}

// NewSnake lays out length segments in a row centred on the grid, head at
// the largest x, moving right.
func NewSnake(grid types.Grid, length int) *Snake {
	s := &Snake{
		segments:      make([]segment, 0, grid.Cells()),
		head:          noSegment,
		tail:          noSegment,
		Direction:     types.Right,
		PrevDirection: types.Right,
	}

	cx, cy := grid.Width/2, grid.Height/2
	for i := 0; i < length; i++ {
		s.pushBack(types.Cell{X: cx - i, Y: cy})
	}
	return s
}

// pushBack allocates a new segment behind the tail.
func (s *Snake) pushBack(c types.Cell) {
	idx := len(s.segments)
	s.segments = append(s.segments, segment{cell: c, prev: s.tail, next: noSegment})
	if s.length == 0 {
		s.head = idx
	} else {
		s.segments[s.tail].next = idx
	}
	s.tail = idx
	s.length++
}

// Advance moves the snake one cell in dir by relabelling the tail segment
// as the new head.
func (s *Snake) Advance(dir types.Direction) {
	if s.length == 0 {
		return
	}
	next := s.segments[s.head].cell.Step(dir)
	if s.length == 1 {
		s.segments[s.head].cell = next
		return
	}

	moved := s.tail
	s.tail = s.segments[moved].prev
	s.segments[s.tail].next = noSegment

	s.segments[moved].prev = noSegment
	s.segments[moved].next = s.head
	s.segments[s.head].prev = moved
	s.head = moved

	s.segments[moved].cell = next
}

// Grow appends a segment on top of the tail. The next Advance recycles it,
// which leaves the old tail in place and lengthens the body by one.
func (s *Snake) Grow() {
	if s.length == 0 {
		return
	}
	s.pushBack(s.segments[s.tail].cell)
}

// Head returns the front cell.
func (s *Snake) Head() types.Cell {
	return s.segments[s.head].cell
}

// Tail returns the back cell.
func (s *Snake) Tail() types.Cell {
	return s.segments[s.tail].cell
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// Each calls fn for every segment from head to tail until fn returns false.
func (s *Snake) Each(fn func(types.Cell) bool) {
	if s == nil {
		return
	}
	for i, n := s.head, 0; n < s.length; i, n = s.segments[i].next, n+1 {
		if !fn(s.segments[i].cell) {
			return
		}
	}
}

// Cells returns a head-to-tail copy of the body.
func (s *Snake) Cells() []types.Cell {
	cells := make([]types.Cell, 0, s.Len())
	s.Each(func(c types.Cell) bool {
		cells = append(cells, c)
		return true
	})
	return cells
}
