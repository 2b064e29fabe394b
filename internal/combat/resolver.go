// Package combat resolves turn-based fights between the player and a monster.
package combat

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/ardentia/internal/entity"
	"github.com/samdwyer/ardentia/internal/telemetry"
)

// Combatant is anything that can take part in an exchange.
// Both the player and monsters implement this interface.
type Combatant interface {
	GetName() string
	GetSpeed() int
	GetHealth() int
	IsAlive() bool
}

// Outcome is the state of a fight after one exchange.
type Outcome int

const (
	// OutcomeOngoing - both combatants are still standing
	OutcomeOngoing Outcome = iota
	// OutcomeMonsterSlain - the monster died this exchange
	OutcomeMonsterSlain
	// OutcomePlayerDead - the player died this exchange
	OutcomePlayerDead
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeOngoing:
		return "ongoing"
	case OutcomeMonsterSlain:
		return "monster_slain"
	case OutcomePlayerDead:
		return "player_dead"
	default:
		return "unknown"
	}
}

// Strike records a single hit.
type Strike struct {
	Attacker     string
	Target       string
	Damage       int
	TargetHealth int // Target health after the hit
}

// String describes the strike for the combat log.
func (s Strike) String() string {
	return fmt.Sprintf("%s attacks %s for %d damage", s.Attacker, s.Target, s.Damage)
}

// Exchange is the result of one full round: up to two strikes.
type Exchange struct {
	PlayerFirst bool
	Strikes     []Strike
	Outcome     Outcome
}

// Messages returns one log line per strike.
func (e Exchange) Messages() []string {
	lines := make([]string, 0, len(e.Strikes))
	for _, s := range e.Strikes {
		lines = append(lines, s.String())
	}
	return lines
}

// PlayerStrikesFirst reports whether the player opens the exchange.
// The monster goes first only when strictly faster; ties favor the player.
func PlayerStrikesFirst(player, monster Combatant) bool {
	return monster.GetSpeed() <= player.GetSpeed()
}

// Resolver runs combat exchanges.
type Resolver struct {
	logger *zap.Logger
}

// NewResolver creates a new combat resolver.
func NewResolver(logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{logger: logger}
}

// ResolveExchange runs one exchange between player and monster. The faster
// combatant strikes; the other strikes back only if it survived. A slain
// monster takes precedence over a dead player in the outcome.
func (r *Resolver) ResolveExchange(ctx context.Context, player *entity.Player, monster *entity.Monster) Exchange {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.exchange")
	defer span.End()

	playerTurn := func() Strike {
		damage := player.Strike(monster)
		return Strike{Attacker: player.Name, Target: monster.Name, Damage: damage, TargetHealth: monster.Health}
	}
	monsterTurn := func() Strike {
		damage := monster.Strike(player)
		return Strike{Attacker: monster.Name, Target: player.Name, Damage: damage, TargetHealth: player.Health}
	}

	ex := Exchange{PlayerFirst: PlayerStrikesFirst(player, monster)}

	first, second := playerTurn, monsterTurn
	var secondActor Combatant = monster
	if !ex.PlayerFirst {
		first, second = monsterTurn, playerTurn
		secondActor = player
	}

	ex.Strikes = append(ex.Strikes, first())
	if secondActor.IsAlive() {
		ex.Strikes = append(ex.Strikes, second())
	}

	switch {
	case !monster.IsAlive():
		ex.Outcome = OutcomeMonsterSlain
	case player.IsDead():
		ex.Outcome = OutcomePlayerDead
	default:
		ex.Outcome = OutcomeOngoing
	}

	span.SetAttributes(
		attribute.String("monster", monster.Name),
		attribute.Int("monster.level", monster.Level),
		attribute.Bool("player_first", ex.PlayerFirst),
		attribute.Int("player.health", player.Health),
		attribute.Int("monster.health", monster.Health),
		attribute.String("outcome", ex.Outcome.String()),
	)
	r.logger.Debug("combat exchange",
		zap.String("monster", monster.Name),
		zap.Bool("player_first", ex.PlayerFirst),
		zap.Strings("strikes", ex.Messages()),
		zap.Stringer("outcome", ex.Outcome),
	)

	return ex
}
