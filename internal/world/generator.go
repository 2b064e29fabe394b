package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/ardentia/internal/entity"
	"github.com/samdwyer/ardentia/internal/gamedata"
	"github.com/samdwyer/ardentia/internal/rng"
	"github.com/samdwyer/ardentia/internal/telemetry"
)

const (
	// BossRoom is always the boss encounter.
	BossRoom = 10

	minTreasureGold = 10
	maxTreasureGold = 49
)

// Generator builds rooms for a zone.
type Generator struct {
	balancer *Balancer
	weapons  *gamedata.WeaponsFile
	logger   *zap.Logger
}

// NewGenerator creates a room generator over the embedded catalog.
func NewGenerator(catalog *gamedata.Catalog, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		balancer: NewBalancer(catalog.Species, logger),
		weapons:  catalog.Weapons,
		logger:   logger,
	}
}

// GenerateRoom builds room roomNumber of zone. All randomness comes from
// src, so the same source state always yields the same room.
func (g *Generator) GenerateRoom(ctx context.Context, zone Zone, roomNumber int, src rng.Source) *Room {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "room.generate")
	defer span.End()

	roomType := DetermineRoomType(roomNumber, src)
	size := DetermineRoomSize(roomType, src)

	monsters := g.balancer.GenerateMonstersForRoom(RoomData{
		Zone:       zone,
		RoomType:   roomType,
		RoomNumber: roomNumber,
	}, size, src)

	treasures := []entity.Treasure{g.DefaultTreasure(src)}

	span.SetAttributes(
		attribute.String("zone", zone.Type),
		attribute.Int("room.number", roomNumber),
		attribute.String("room.type", roomType.String()),
		attribute.Int("room.size", size),
		attribute.Int("room.monsters", len(monsters)),
	)
	g.logger.Debug("room generated",
		zap.String("zone", zone.Type),
		zap.Int("room", roomNumber),
		zap.Stringer("type", roomType),
		zap.Int("size", size),
		zap.Int("monsters", len(monsters)),
	)

	return NewRoom(roomNumber, zone, roomType, monsters, treasures)
}

// DetermineRoomType picks the archetype for a room number. One roll is
// always drawn, even for the boss room, so room sequences stay aligned.
func DetermineRoomType(roomNumber int, src rng.Source) RoomType {
	roll := src.Float64()

	if roomNumber == BossRoom {
		return RoomBoss
	}

	if roomNumber%5 == 0 && roll < 0.3 {
		return RoomTreasure
	}

	switch {
	case roomNumber == 1:
		return RoomEntrance
	case roomNumber >= 2 && roomNumber <= 4:
		if roll < 0.8 {
			return RoomNormal
		}
		return RoomElite
	case roomNumber >= 5 && roomNumber <= 9:
		switch {
		case roll < 0.7:
			return RoomNormal
		case roll < 0.9:
			return RoomElite
		default:
			return RoomTreasure
		}
	default:
		switch {
		case roll < 0.6:
			return RoomNormal
		case roll < 0.85:
			return RoomElite
		default:
			return RoomTreasure
		}
	}
}

// DetermineRoomSize draws the monster count for a room type.
func DetermineRoomSize(roomType RoomType, src rng.Source) int {
	lo, hi := roomType.SizeRange()
	if lo == hi {
		return lo
	}
	return rng.IntRange(src, lo, hi)
}

// DefaultTreasure rolls the loot attached to every room: one weapon and
// some gold, never a potion.
func (g *Generator) DefaultTreasure(src rng.Source) entity.Treasure {
	weaponType, _ := rng.Pick(src, entity.WeaponTypes)
	return entity.Treasure{
		Weapon: entity.NewWeapon(weaponType, g.weapons, src),
		Gold:   rng.IntRange(src, minTreasureGold, maxTreasureGold),
	}
}
