package game

import (
	"math/rand"
	"testing"

	"git.lost.host/meutraa/lanes/internal/config"
)

// fixedChance always draws the same value.
type fixedChance float64

func (f fixedChance) Float64() float64 { return float64(f) }

func newTrack(chance Chance) *Track {
	return NewTrack(NewGeometry(config.Default()), chance)
}

func TestGeometry(t *testing.T) {
	g := NewGeometry(config.Default())
	if g.LaneWidth != 200 || g.NoteWidth != 200 || g.LineY != 500 || g.Lanes != 4 {
		t.Log("geometry", g)
		t.Fail()
	}
	for lane, x := range []float64{0, 200, 400, 600} {
		if g.LaneX(lane) != x {
			t.Errorf("lane %v at %v, expected %v", lane, g.LaneX(lane), x)
		}
	}
	for lane, valid := range map[int]bool{-1: false, 0: true, 3: true, 4: false} {
		if g.ValidLane(lane) != valid {
			t.Errorf("lane %v valid = %v", lane, !valid)
		}
	}
}

func TestSpawnAtTop(t *testing.T) {
	track := newTrack(fixedChance(0))
	if !track.Spawn(1) {
		t.Fatal("spawn into an empty lane was suppressed")
	}
	notes := track.Lane(1)
	if len(notes) != 1 || notes[0].Y != -30 || notes[0].Lane != 1 {
		t.Log("notes", notes)
		t.Fail()
	}
}

func TestSpawnSpacing(t *testing.T) {
	track := newTrack(fixedChance(0))
	track.Spawn(0)

	// The newest note must travel strictly past the spacing before another spawns.
	// -30 + 5*26 = 100, which is not enough.
	for i := 0; i < 26; i++ {
		track.Advance(1)
		if track.Spawn(0) {
			t.Fatalf("spawned with newest note at %v", track.Lane(0)[0].Y)
		}
	}
	track.Advance(1)
	if !track.Spawn(0) {
		t.Fatalf("spawn suppressed with newest note at %v", track.Lane(0)[0].Y)
	}
	if len(track.Lane(0)) != 2 {
		t.Error("expected two notes, got", len(track.Lane(0)))
	}
}

func TestMaybeSpawnNeverCrowds(t *testing.T) {
	track := newTrack(rand.New(rand.NewSource(7)))
	g := track.Geometry()
	g.SpawnChance = 0.5
	track.geometry = g

	for tick := 0; tick < 5000; tick++ {
		for lane := 0; lane < g.Lanes; lane++ {
			notes := track.Lane(lane)
			crowded := len(notes) > 0 && notes[len(notes)-1].Y <= g.MinSpacing
			before := len(notes)
			track.MaybeSpawn(lane)
			if crowded && len(track.Lane(lane)) != before {
				t.Fatalf("tick %v lane %v spawned next to a note at %v", tick, lane, notes[len(notes)-1].Y)
			}
		}
		track.Advance(1)
	}
}

func TestMaybeSpawnProbability(t *testing.T) {
	if newTrack(fixedChance(0.02)).MaybeSpawn(0) {
		t.Error("spawned when the draw equals the probability")
	}
	if !newTrack(fixedChance(0.019)).MaybeSpawn(0) {
		t.Error("did not spawn when the draw is below the probability")
	}
	if newTrack(fixedChance(0)).MaybeSpawn(9) {
		t.Error("spawned into a lane that does not exist")
	}
}

func TestAdvanceMonotonic(t *testing.T) {
	track := newTrack(rand.New(rand.NewSource(1)))
	g := track.Geometry()
	g.SpawnChance = 0.3
	track.geometry = g

	previous := map[int][]Note{}
	for tick := 0; tick < 2000; tick++ {
		for lane := 0; lane < g.Lanes; lane++ {
			track.MaybeSpawn(lane)
			previous[lane] = append([]Note(nil), track.Lane(lane)...)
		}
		track.Advance(1)
		for lane := 0; lane < g.Lanes; lane++ {
			notes := track.Lane(lane)
			// Only the oldest notes can fall off, so the survivors are a suffix.
			offset := len(previous[lane]) - len(notes)
			for i, n := range notes {
				if n.Y < previous[lane][i+offset].Y {
					t.Fatalf("note moved up from %v to %v", previous[lane][i+offset].Y, n.Y)
				}
				if n.Y > g.Height {
					t.Fatalf("note below the playfield at %v survived", n.Y)
				}
			}
		}
	}
}

func TestAdvanceDrops(t *testing.T) {
	track := newTrack(fixedChance(0))
	track.Spawn(3)
	// -30 + 5*126 = 600 is still on the playfield.
	if dropped := track.Advance(126); dropped != 0 {
		t.Fatal("dropped a note at", track.Lane(3))
	}
	if dropped := track.Advance(1); dropped != 1 || len(track.Lane(3)) != 0 {
		t.Error("expected the note to be dropped, lane is", track.Lane(3))
	}
}

func TestAdvanceDropsAdjacent(t *testing.T) {
	track := newTrack(fixedChance(0))
	track.lanes[0] = []Note{{Y: 599}, {Y: 598}, {Y: 10}, {Y: 590}}
	if dropped := track.Advance(1); dropped != 2 {
		t.Error("expected two dropped notes, got", dropped)
	}
	notes := track.Lane(0)
	if len(notes) != 2 || notes[0].Y != 15 || notes[1].Y != 595 {
		t.Log("notes", notes)
		t.Fail()
	}
}

func TestRemove(t *testing.T) {
	track := newTrack(fixedChance(0))
	track.lanes[2] = []Note{{Lane: 2, Y: 1}, {Lane: 2, Y: 2}, {Lane: 2, Y: 3}}
	n, ok := track.Remove(2, 1)
	if !ok || n.Y != 2 {
		t.Error("removed", n, ok)
	}
	notes := track.Lane(2)
	if len(notes) != 2 || notes[0].Y != 1 || notes[1].Y != 3 {
		t.Error("remaining", notes)
	}
	if _, ok := track.Remove(2, 5); ok {
		t.Error("removed a note past the end of the lane")
	}
	if _, ok := track.Remove(-1, 0); ok {
		t.Error("removed a note from a lane that does not exist")
	}
}

func TestClear(t *testing.T) {
	track := newTrack(fixedChance(0))
	for lane := 0; lane < 4; lane++ {
		track.Spawn(lane)
	}
	track.Clear()
	if track.Len() != 0 {
		t.Error("notes left after clear", track.Len())
	}
	if !track.Spawn(0) {
		t.Error("unable to spawn after clear")
	}
}

func BenchmarkAdvance(b *testing.B) {
	track := newTrack(fixedChance(0))
	for lane := 0; lane < 4; lane++ {
		track.lanes[lane] = make([]Note, 0, 8)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for lane := 0; lane < 4; lane++ {
			track.Spawn(lane)
		}
		track.Advance(1)
	}
}
