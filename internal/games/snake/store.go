package snake

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// EntityID is the stable identity of a grid-occupying entity.
type EntityID uint32

// Kind distinguishes the entity collections held by the store.
type Kind int

const (
	KindSegment Kind = iota
	KindFood
)

func (k Kind) String() string {
	switch k {
	case KindSegment:
		return "segment"
	case KindFood:
		return "food"
	default:
		return "unknown"
	}
}

// Segment is one cell of the snake body. Index 0 is the head.
type Segment struct {
	ID    EntityID
	Index int
	Pos   core.Pos
}

// Food is the single food item.
type Food struct {
	ID  EntityID
	Pos core.Pos
}

// Entity is the kind-agnostic view handed to renderers.
type Entity struct {
	ID    EntityID
	Kind  Kind
	Pos   core.Pos
	Index int // Segment index, -1 for food
}

// Invariant violations reported by Store.Validate.
var (
	ErrNonContiguous  = errors.New("snake: segment indices are not contiguous")
	ErrMissingSegment = errors.New("snake: segment record missing from arena")
	ErrOrphanSegment  = errors.New("snake: arena holds segments outside the index order")
	ErrOutOfBounds    = errors.New("snake: entity outside the board")
)

// Store holds the live entities: an arena of segment records keyed by id,
// the id of each segment in index order, and at most one food item.
type Store struct {
	nextID   EntityID
	segments *intmap.Map[EntityID, Segment]
	order    []EntityID // order[i] is the segment with index i
	food     *Food
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		segments: intmap.New[EntityID, Segment](64),
	}
}

func (s *Store) allocID() EntityID {
	s.nextID++
	return s.nextID
}

// AddSegment appends a segment behind the current tail.
// The new segment's index is one past the current maximum.
func (s *Store) AddSegment(pos core.Pos) Segment {
	seg := Segment{
		ID:    s.allocID(),
		Index: len(s.order),
		Pos:   pos,
	}
	s.segments.Put(seg.ID, seg)
	s.order = append(s.order, seg.ID)
	return seg
}

// SegmentCount returns the number of live segments.
func (s *Store) SegmentCount() int {
	return len(s.order)
}

// Segment returns the segment with the given index.
func (s *Store) Segment(index int) (Segment, bool) {
	if index < 0 || index >= len(s.order) {
		return Segment{}, false
	}
	return s.segments.Get(s.order[index])
}

// Head returns the segment with index 0. If that record is missing it
// falls back to any live segment.
func (s *Store) Head() (Segment, bool) {
	if seg, ok := s.Segment(0); ok {
		return seg, true
	}
	for _, id := range s.order {
		if seg, ok := s.segments.Get(id); ok {
			return seg, true
		}
	}
	return Segment{}, false
}

// Tail returns the segment with the highest index.
func (s *Store) Tail() (Segment, bool) {
	return s.Segment(len(s.order) - 1)
}

// Segments returns a snapshot of all segments ordered by index.
func (s *Store) Segments() []Segment {
	out := make([]Segment, 0, len(s.order))
	for _, id := range s.order {
		if seg, ok := s.segments.Get(id); ok {
			out = append(out, seg)
		}
	}
	return out
}

// MoveSegments assigns next[i] to the segment with index i.
// All positions are applied together; next must cover every segment.
func (s *Store) MoveSegments(next []core.Pos) {
	if len(next) != len(s.order) {
		panic(fmt.Sprintf("snake: MoveSegments got %d positions for %d segments", len(next), len(s.order)))
	}
	for i, id := range s.order {
		seg, ok := s.segments.Get(id)
		if !ok {
			continue
		}
		seg.Pos = next[i]
		s.segments.Put(id, seg)
	}
}

// ClearSegments destroys the whole snake.
func (s *Store) ClearSegments() {
	s.segments.Clear()
	s.order = s.order[:0]
}

// Occupied reports whether any segment sits on p.
func (s *Store) Occupied(p core.Pos) bool {
	for _, id := range s.order {
		if seg, ok := s.segments.Get(id); ok && seg.Pos == p {
			return true
		}
	}
	return false
}

// SpawnFood creates the food item, replacing any existing one.
func (s *Store) SpawnFood(pos core.Pos) Food {
	f := Food{ID: s.allocID(), Pos: pos}
	s.food = &f
	return f
}

// Food returns the food item if one exists.
func (s *Store) Food() (Food, bool) {
	if s.food == nil {
		return Food{}, false
	}
	return *s.food, true
}

// RemoveFood destroys the food item.
func (s *Store) RemoveFood() {
	s.food = nil
}

// Each calls fn for every entity of the given kind until fn returns false.
// Segments are visited in index order.
func (s *Store) Each(kind Kind, fn func(Entity) bool) {
	switch kind {
	case KindSegment:
		for _, seg := range s.Segments() {
			if !fn(Entity{ID: seg.ID, Kind: KindSegment, Pos: seg.Pos, Index: seg.Index}) {
				return
			}
		}
	case KindFood:
		if s.food != nil {
			fn(Entity{ID: s.food.ID, Kind: KindFood, Pos: s.food.Pos, Index: -1})
		}
	}
}

// Entities returns every live entity: segments in index order, then food.
func (s *Store) Entities() []Entity {
	out := make([]Entity, 0, len(s.order)+1)
	collect := func(e Entity) bool {
		out = append(out, e)
		return true
	}
	s.Each(KindSegment, collect)
	s.Each(KindFood, collect)
	return out
}

// Validate checks the segment invariants: every index from 0 to n-1 is
// backed by exactly one record carrying that index.
func (s *Store) Validate() error {
	if s.segments.Len() != len(s.order) {
		return fmt.Errorf("%w: %d records, %d ordered", ErrOrphanSegment, s.segments.Len(), len(s.order))
	}
	for i, id := range s.order {
		seg, ok := s.segments.Get(id)
		if !ok {
			return fmt.Errorf("%w: index %d (id %d)", ErrMissingSegment, i, id)
		}
		if seg.Index != i {
			return fmt.Errorf("%w: position %d holds index %d", ErrNonContiguous, i, seg.Index)
		}
	}
	return nil
}
