package world

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/ardentia/internal/rng"
	"github.com/samdwyer/ardentia/internal/telemetry"
)

// MaxRooms is the number of rooms in a zone run.
const MaxRooms = 10

var (
	// ErrDungeonInactive is returned when advancing a finished run.
	ErrDungeonInactive = errors.New("dungeon is no longer active")
	// ErrNoRoomsLeft is returned when advancing past the last room.
	ErrNoRoomsLeft = errors.New("no rooms left in zone")
)

// Dungeon is the run controller: it owns the zone, the room counter and the
// one current room.
type Dungeon struct {
	Zone       Zone
	RoomNumber int
	Room       *Room

	active    bool
	seed      int64
	generator *Generator
	newSource rng.Factory
}

// DungeonOption configures a Dungeon.
type DungeonOption func(*Dungeon)

// WithSourceFactory overrides how per-room random sources are built.
func WithSourceFactory(f rng.Factory) DungeonOption {
	return func(d *Dungeon) {
		d.newSource = f
	}
}

// NewDungeon starts a run in zone at room 1. Room n is generated from a
// source seeded with seed+n, so any room can be regenerated identically.
func NewDungeon(ctx context.Context, zone Zone, generator *Generator, seed int64, opts ...DungeonOption) *Dungeon {
	d := &Dungeon{
		Zone:       zone,
		RoomNumber: 1,
		active:     true,
		seed:       seed,
		generator:  generator,
		newSource:  rng.New,
	}
	for _, opt := range opts {
		opt(d)
	}

	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "dungeon.enter")
	span.SetAttributes(
		attribute.String("zone", zone.Type),
		attribute.Int64("seed", seed),
	)
	defer span.End()

	d.Room = d.generate(ctx, d.RoomNumber)
	return d
}

// IsActive reports whether the run can still advance.
func (d *Dungeon) IsActive() bool {
	return d.active
}

// Seed returns the run seed.
func (d *Dungeon) Seed() int64 {
	return d.seed
}

// IsThereRoomsLeft reports whether the room counter is below MaxRooms.
func (d *Dungeon) IsThereRoomsLeft() bool {
	return d.RoomNumber < MaxRooms
}

// NextRoom advances the counter and replaces the current room. Anything
// left in the previous room is lost.
func (d *Dungeon) NextRoom(ctx context.Context) error {
	if !d.active {
		return ErrDungeonInactive
	}
	if !d.IsThereRoomsLeft() {
		return ErrNoRoomsLeft
	}
	d.RoomNumber++
	d.Room = d.generate(ctx, d.RoomNumber)
	return nil
}

// PeekNextRoom returns the room NextRoom would install without changing
// any controller state. It returns false when no rooms are left.
func (d *Dungeon) PeekNextRoom(ctx context.Context) (*Room, bool) {
	if !d.IsThereRoomsLeft() {
		return nil, false
	}
	return d.generate(ctx, d.RoomNumber+1), true
}

// CompleteZone ends the run after the last room.
func (d *Dungeon) CompleteZone() {
	d.active = false
}

// HandlePlayerDeath ends the run after the player dies.
func (d *Dungeon) HandlePlayerDeath() {
	d.active = false
}

// Abandon ends the run after the player flees.
func (d *Dungeon) Abandon() {
	d.active = false
}

func (d *Dungeon) generate(ctx context.Context, roomNumber int) *Room {
	return d.generator.GenerateRoom(ctx, d.Zone, roomNumber, d.newSource(d.seed+int64(roomNumber)))
}
