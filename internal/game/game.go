package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/ardentia/internal/combat"
	"github.com/samdwyer/ardentia/internal/entity"
	"github.com/samdwyer/ardentia/internal/gamedata"
	"github.com/samdwyer/ardentia/internal/rng"
	"github.com/samdwyer/ardentia/internal/telemetry"
	"github.com/samdwyer/ardentia/internal/world"
)

// maxMessages bounds the message log kept for the renderer.
const maxMessages = 6

// Game holds the entire game state. It is owned by a single loop and is not
// safe for concurrent use.
type Game struct {
	cfg       Config
	logger    *zap.Logger
	zone      world.Zone
	generator *world.Generator
	resolver  *combat.Resolver

	master     rng.Source
	roomSource rng.Factory
	now        func() time.Time

	screen    Screen
	enteredAt time.Time
	running   bool

	// Per-run state; nil outside a run.
	runID        string
	runLogger    *zap.Logger
	player       *entity.Player
	dungeon      *world.Dungeon
	lastExchange *combat.Exchange
	messages     []string
}

// Option configures a Game.
type Option func(*Game)

// WithClock overrides the time source used to stamp screen entry.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// WithSource overrides the master source run seeds are drawn from.
func WithSource(src rng.Source) Option {
	return func(g *Game) {
		g.master = src
	}
}

// WithRoomSource overrides how per-room sources are built.
func WithRoomSource(f rng.Factory) Option {
	return func(g *Game) {
		g.roomSource = f
	}
}

// New creates a game on the main menu with no player and no dungeon.
func New(cfg Config, catalog *gamedata.Catalog, logger *zap.Logger, opts ...Option) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	zone, err := world.FindZone(world.ZonesFromDefs(catalog.Zones), cfg.Zone)
	if err != nil {
		return nil, fmt.Errorf("selecting start zone: %w", err)
	}

	g := &Game{
		cfg:        cfg,
		logger:     logger,
		zone:       zone,
		generator:  world.NewGenerator(catalog, logger),
		resolver:   combat.NewResolver(logger),
		roomSource: rng.New,
		now:        time.Now,
		screen:     MainMenu{Selected: MenuNewGame},
		running:    true,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.master == nil {
		seed := cfg.Seed
		if seed == 0 {
			if seed, err = rng.NewSeed(); err != nil {
				return nil, fmt.Errorf("seeding game: %w", err)
			}
		}
		g.master = rng.New(seed)
		logger.Info("game seeded", zap.Int64("seed", seed))
	}
	g.enteredAt = g.now()

	return g, nil
}

// Running reports whether the loop should continue.
func (g *Game) Running() bool {
	return g.running
}

// Screen returns the active screen.
func (g *Game) Screen() Screen {
	return g.screen
}

// Stop ends the loop from any state.
func (g *Game) Stop() {
	g.running = false
}

// HandleKey applies one key intent to the active screen. Repeats and
// releases are ignored; Escape ends the loop from every screen.
func (g *Game) HandleKey(ctx context.Context, ev KeyEvent) {
	if !g.running || ev.Action != ActionPress {
		return
	}
	if ev.Key == KeyEscape {
		g.logger.Info("quit requested", zap.Stringer("screen", g.screen.Kind()))
		g.running = false
		return
	}

	switch s := g.screen.(type) {
	case MainMenu:
		g.handleMainMenu(ctx, s, ev.Key)
	case RoomScreen:
		if ev.Key == KeyEnter {
			g.enterRoom()
		}
	case Combat:
		g.handleCombat(ctx, s, ev.Key)
	case RoomResult:
		g.handleRoomResult(ctx, s, ev.Key)
	}
}

// Tick advances a timed screen once its delay has elapsed since it was
// entered. Untimed screens are left alone.
func (g *Game) Tick(ctx context.Context, now time.Time) {
	kind := g.screen.Kind()
	if !g.running || !kind.Timed() {
		return
	}
	if now.Sub(g.enteredAt) < g.cfg.delay(kind) {
		return
	}

	switch g.screen.(type) {
	case DungeonLoading:
		g.transitionAt(RoomLoading{}, now)
	case RoomLoading:
		g.transitionAt(RoomScreen{}, now)
	case CombatLoading:
		g.transitionAt(Combat{Selected: CombatAttack}, now)
	case DefeatMonster:
		g.transitionAt(RoomResult{Selected: WeaponYes}, now)
	case DeadPlayer:
		g.endRun(ctx, "player_dead")
		g.transitionAt(MainMenu{Selected: MenuNewGame}, now)
	case RunScreen:
		g.endRun(ctx, "fled")
		g.transitionAt(MainMenu{Selected: MenuNewGame}, now)
	}
}

func (g *Game) handleMainMenu(ctx context.Context, s MainMenu, key Key) {
	switch key {
	case KeyUp:
		g.screen = MainMenu{Selected: s.Selected.Prev()}
	case KeyDown:
		g.screen = MainMenu{Selected: s.Selected.Next()}
	case KeyEnter:
		switch s.Selected {
		case MenuNewGame:
			g.startRun(ctx)
		case MenuLoadGame:
			g.logger.Warn("load game is not supported; exiting")
			g.running = false
		case MenuQuit:
			g.logger.Info("quit selected")
			g.running = false
		}
	}
}

func (g *Game) handleCombat(ctx context.Context, s Combat, key Key) {
	switch key {
	case KeyUp:
		g.screen = Combat{Selected: s.Selected.Prev()}
	case KeyDown:
		g.screen = Combat{Selected: s.Selected.Next()}
	case KeyEnter:
		switch s.Selected {
		case CombatAttack:
			g.attack(ctx)
		case CombatRun:
			g.dungeon.Abandon()
			g.addMessage(fmt.Sprintf("%s flees from %s", g.player.Name, g.dungeon.Room.Name))
			g.runLogger.Info("player fled", zap.Int("room", g.dungeon.RoomNumber))
			g.transition(RunScreen{})
		}
	}
}

func (g *Game) handleRoomResult(ctx context.Context, s RoomResult, key Key) {
	offer := g.dungeon.Room.PeekWeapon()
	switch key {
	case KeyUp, KeyDown:
		if offer != nil {
			g.screen = RoomResult{Selected: s.Selected.Toggle()}
		}
	case KeyEnter:
		if offer != nil {
			g.applyWeaponChoice(s.Selected)
		}
		g.leaveRoomResult(ctx)
	}
}

// startRun creates a fresh player and dungeon.
func (g *Game) startRun(ctx context.Context) {
	g.runID = uuid.NewString()
	g.runLogger = g.logger.With(zap.String("run_id", g.runID))

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.new_run")
	defer span.End()

	seed := g.master.Int63()
	g.player = entity.NewPlayer(g.cfg.PlayerName)
	g.dungeon = world.NewDungeon(ctx, g.zone, g.generator, seed, world.WithSourceFactory(g.roomSource))
	g.lastExchange = nil
	g.messages = nil

	span.SetAttributes(
		attribute.String("run_id", g.runID),
		attribute.String("zone", g.zone.Type),
		attribute.Int64("seed", seed),
	)
	g.runLogger.Info("run started",
		zap.String("zone", g.zone.Type),
		zap.Int64("seed", seed),
	)
	g.addMessage(fmt.Sprintf("You enter the %s", g.zone.Name))
	g.transition(DungeonLoading{})
}

// enterRoom engages the room. A room whose every slot was dropped has
// nothing to fight, so it goes straight to its loot.
func (g *Game) enterRoom() {
	if g.dungeon.Room.HasMonsters() {
		g.transition(CombatLoading{})
		return
	}
	g.transition(RoomResult{Selected: WeaponYes})
}

// attack resolves one full exchange against the active monster.
func (g *Game) attack(ctx context.Context) {
	room := g.dungeon.Room
	monster := room.ActiveMonster()
	if monster == nil {
		return
	}

	ex := g.resolver.ResolveExchange(ctx, g.player, monster)
	g.lastExchange = &ex
	for _, line := range ex.Messages() {
		g.addMessage(line)
	}

	switch ex.Outcome {
	case combat.OutcomeMonsterSlain:
		cleared := room.MonsterSlain()
		g.addMessage(fmt.Sprintf("%s is slain", monster.Name))
		g.runLogger.Info("monster slain",
			zap.String("monster", monster.Name),
			zap.Int("room", room.Number),
			zap.Bool("room_cleared", cleared),
		)
		g.transition(DefeatMonster{})
	case combat.OutcomePlayerDead:
		g.dungeon.HandlePlayerDeath()
		g.addMessage(fmt.Sprintf("%s has fallen", g.player.Name))
		g.runLogger.Info("player died",
			zap.String("monster", monster.Name),
			zap.Int("room", room.Number),
		)
		g.transition(DeadPlayer{})
	}
}

func (g *Game) applyWeaponChoice(choice WeaponChoice) {
	weapon := g.dungeon.Room.TakeWeapon()
	if weapon == nil {
		return
	}
	if choice == WeaponYes {
		g.player.Equip(weapon)
		g.addMessage(fmt.Sprintf("You equip the %s", weapon.Name))
		g.runLogger.Debug("weapon equipped", zap.String("weapon", weapon.Name), zap.Int("attack", weapon.AttackValue))
		return
	}
	g.addMessage(fmt.Sprintf("You leave the %s behind", weapon.Name))
}

// leaveRoomResult continues the run: the next monster if any remain, else
// the next room, else the zone is complete.
func (g *Game) leaveRoomResult(ctx context.Context) {
	room := g.dungeon.Room
	if !room.Cleared {
		g.transition(CombatLoading{})
		return
	}

	gold, potions := room.ClaimLoot()
	if gold > 0 {
		g.player.AddGold(gold)
		g.addMessage(fmt.Sprintf("You pick up %d gold", gold))
	}
	for _, p := range potions {
		g.player.AddPotion(p)
	}

	if g.dungeon.IsThereRoomsLeft() {
		if err := g.dungeon.NextRoom(ctx); err != nil {
			g.runLogger.Error("advancing room", zap.Error(err))
			g.endRun(ctx, "error")
			g.transition(MainMenu{Selected: MenuNewGame})
			return
		}
		g.transition(RoomLoading{})
		return
	}

	g.dungeon.CompleteZone()
	g.endRun(ctx, "zone_complete")
	g.transition(MainMenu{Selected: MenuNewGame})
}

// endRun drops all per-run state.
func (g *Game) endRun(ctx context.Context, outcome string) {
	if g.dungeon == nil {
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.end_run")
	span.SetAttributes(
		attribute.String("run_id", g.runID),
		attribute.String("outcome", outcome),
		attribute.Int("room", g.dungeon.RoomNumber),
		attribute.Int("gold", g.player.Gold),
	)
	span.End()

	g.runLogger.Info("run ended",
		zap.String("outcome", outcome),
		zap.Int("room", g.dungeon.RoomNumber),
		zap.Int("gold", g.player.Gold),
	)

	g.player = nil
	g.dungeon = nil
	g.lastExchange = nil
	g.messages = nil
	g.runID = ""
	g.runLogger = nil
}

func (g *Game) transition(next Screen) {
	g.transitionAt(next, g.now())
}

func (g *Game) transitionAt(next Screen, at time.Time) {
	g.logger.Debug("screen transition",
		zap.Stringer("from", g.screen.Kind()),
		zap.Stringer("to", next.Kind()),
	)
	g.screen = next
	g.enteredAt = at
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
