package combat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/samdwyer/ardentia/internal/entity"
)

var (
	_ Combatant = (*entity.Player)(nil)
	_ Combatant = (*entity.Monster)(nil)
)

func newPlayer(health, attack, defence, speed int) *entity.Player {
	return &entity.Player{Name: "You", Health: health, MaxHealth: health, Attack: attack, Defence: defence, Speed: speed}
}

func newMonster(health, attack, defence, speed int) *entity.Monster {
	return &entity.Monster{Name: "Goblin", Level: 1, Health: health, MaxHealth: health, Attack: attack, Defence: defence, Speed: speed}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomeOngoing, "ongoing"},
		{OutcomeMonsterSlain, "monster_slain"},
		{OutcomePlayerDead, "player_dead"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.outcome.String())
	}
}

func TestPlayerStrikesFirst(t *testing.T) {
	assert.True(t, PlayerStrikesFirst(newPlayer(1, 1, 1, 5), newMonster(1, 1, 1, 4)))
	assert.True(t, PlayerStrikesFirst(newPlayer(1, 1, 1, 5), newMonster(1, 1, 1, 5)), "ties favor the player")
	assert.False(t, PlayerStrikesFirst(newPlayer(1, 1, 1, 5), newMonster(1, 1, 1, 6)))
}

func TestExchange_BothStrike(t *testing.T) {
	r := NewResolver(nil)
	p := newPlayer(100, 10, 5, 5)
	m := newMonster(30, 8, 2, 3)

	ex := r.ResolveExchange(context.Background(), p, m)

	require.Len(t, ex.Strikes, 2)
	assert.True(t, ex.PlayerFirst)
	assert.Equal(t, Strike{Attacker: "You", Target: "Goblin", Damage: 8, TargetHealth: 22}, ex.Strikes[0])
	assert.Equal(t, Strike{Attacker: "Goblin", Target: "You", Damage: 3, TargetHealth: 97}, ex.Strikes[1])
	assert.Equal(t, OutcomeOngoing, ex.Outcome)
	assert.Equal(t, []string{"You attacks Goblin for 8 damage", "Goblin attacks You for 3 damage"}, ex.Messages())
}

func TestExchange_FirstStrikeKillsMonster(t *testing.T) {
	r := NewResolver(nil)
	p := newPlayer(10, 10, 0, 5)
	m := newMonster(5, 50, 0, 1)

	ex := r.ResolveExchange(context.Background(), p, m)

	require.Len(t, ex.Strikes, 1, "a dead monster cannot strike back")
	assert.Equal(t, OutcomeMonsterSlain, ex.Outcome)
	assert.Equal(t, 10, p.Health)
}

func TestExchange_FasterMonsterKillsPlayer(t *testing.T) {
	r := NewResolver(nil)
	p := newPlayer(3, 10, 0, 1)
	m := newMonster(50, 5, 0, 9)

	ex := r.ResolveExchange(context.Background(), p, m)

	assert.False(t, ex.PlayerFirst)
	require.Len(t, ex.Strikes, 1, "a dead player cannot strike back")
	assert.Equal(t, OutcomePlayerDead, ex.Outcome)
	assert.True(t, p.IsDead())
	assert.Equal(t, 50, m.Health)
}

func TestExchange_MonsterFirstThenPlayerKills(t *testing.T) {
	r := NewResolver(nil)
	p := newPlayer(20, 10, 0, 1)
	m := newMonster(4, 3, 0, 9)

	ex := r.ResolveExchange(context.Background(), p, m)

	require.Len(t, ex.Strikes, 2)
	assert.Equal(t, "Goblin", ex.Strikes[0].Attacker)
	assert.Equal(t, "You", ex.Strikes[1].Attacker)
	assert.Equal(t, OutcomeMonsterSlain, ex.Outcome)
	assert.Equal(t, 17, p.Health)
}

func TestExchange_Invariants_Property(t *testing.T) {
	r := NewResolver(nil)
	rapid.Check(t, func(rt *rapid.T) {
		p := newPlayer(
			rapid.IntRange(1, 100).Draw(rt, "pHealth"),
			rapid.IntRange(0, 30).Draw(rt, "pAttack"),
			rapid.IntRange(0, 30).Draw(rt, "pDefence"),
			rapid.IntRange(0, 20).Draw(rt, "pSpeed"),
		)
		m := newMonster(
			rapid.IntRange(1, 100).Draw(rt, "mHealth"),
			rapid.IntRange(0, 30).Draw(rt, "mAttack"),
			rapid.IntRange(0, 30).Draw(rt, "mDefence"),
			rapid.IntRange(0, 20).Draw(rt, "mSpeed"),
		)

		ex := r.ResolveExchange(context.Background(), p, m)

		assert.NotEmpty(rt, ex.Strikes)
		assert.LessOrEqual(rt, len(ex.Strikes), 2)
		if len(ex.Strikes) == 1 {
			assert.NotEqual(rt, OutcomeOngoing, ex.Outcome, "a single strike means someone fell")
		}
		switch ex.Outcome {
		case OutcomeMonsterSlain:
			assert.False(rt, m.IsAlive())
		case OutcomePlayerDead:
			assert.True(rt, p.IsDead())
			assert.True(rt, m.IsAlive())
		case OutcomeOngoing:
			assert.True(rt, m.IsAlive())
			assert.False(rt, p.IsDead())
		}
	})
}
