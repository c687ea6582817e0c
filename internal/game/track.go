package game

// Chance supplies the random draw for spawning. *rand.Rand satisfies it.
type Chance interface {
	Float64() float64
}

// Track holds the active notes of every lane, oldest first.
type Track struct {
	geometry Geometry
	chance   Chance
	lanes    [][]Note
}

func NewTrack(g Geometry, chance Chance) *Track {
	return &Track{
		geometry: g,
		chance:   chance,
		lanes:    make([][]Note, g.Lanes),
	}
}

func (t *Track) Geometry() Geometry {
	return t.geometry
}

// Lane returns the notes of a lane in spawn order. The slice is owned by the
// track and must not be modified.
func (t *Track) Lane(lane int) []Note {
	if !t.geometry.ValidLane(lane) {
		return nil
	}
	return t.lanes[lane]
}

// Len returns the number of active notes over all lanes.
func (t *Track) Len() int {
	n := 0
	for _, notes := range t.lanes {
		n += len(notes)
	}
	return n
}

// MaybeSpawn spawns a note in the lane with the configured probability.
func (t *Track) MaybeSpawn(lane int) bool {
	if t.chance.Float64() >= t.geometry.SpawnChance {
		return false
	}
	return t.Spawn(lane)
}

// Spawn adds a note just above the top of the lane, unless the newest note in
// the lane has not yet travelled past the minimum spacing.
func (t *Track) Spawn(lane int) bool {
	if !t.geometry.ValidLane(lane) {
		return false
	}
	notes := t.lanes[lane]
	if len(notes) > 0 && notes[len(notes)-1].Y <= t.geometry.MinSpacing {
		return false
	}
	t.lanes[lane] = append(notes, Note{Lane: lane, Y: -t.geometry.NoteHeight})
	return true
}

// Advance moves every note down by delta ticks worth of speed and drops the
// notes that left the bottom of the playfield. It returns how many were dropped.
func (t *Track) Advance(delta int) int {
	dy := t.geometry.NoteSpeed * float64(delta)
	dropped := 0
	for i, notes := range t.lanes {
		kept := notes[:0]
		for _, n := range notes {
			n.Y += dy
			if n.Y > t.geometry.Height {
				dropped++
				continue
			}
			kept = append(kept, n)
		}
		t.lanes[i] = kept
	}
	return dropped
}

// Remove deletes the note at index from the lane, keeping the order of the rest.
func (t *Track) Remove(lane, index int) (Note, bool) {
	if !t.geometry.ValidLane(lane) {
		return Note{}, false
	}
	notes := t.lanes[lane]
	if index < 0 || index >= len(notes) {
		return Note{}, false
	}
	n := notes[index]
	t.lanes[lane] = append(notes[:index], notes[index+1:]...)
	return n, true
}

func (t *Track) Clear() {
	for i := range t.lanes {
		t.lanes[i] = nil
	}
}
