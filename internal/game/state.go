// Package game provides the screen state machine that drives a run.
package game

// ScreenKind identifies which screen is active.
type ScreenKind int

const (
	// KindMainMenu is the initial and re-entry screen.
	KindMainMenu ScreenKind = iota
	// KindDungeonLoading is shown while a new run is entered.
	KindDungeonLoading
	// KindRoomLoading is shown before each room.
	KindRoomLoading
	// KindRoom shows the current room and waits for the player to engage.
	KindRoom
	// KindCombatLoading is shown before each fight.
	KindCombatLoading
	// KindCombat is an active fight against the room's current monster.
	KindCombat
	// KindDefeatMonster is shown after a monster is slain.
	KindDefeatMonster
	// KindDeadPlayer is shown after the player dies.
	KindDeadPlayer
	// KindRoomResult offers the room's loot.
	KindRoomResult
	// KindRunScreen is shown after fleeing combat.
	KindRunScreen
)

// String returns a human-readable screen name.
func (k ScreenKind) String() string {
	switch k {
	case KindMainMenu:
		return "main_menu"
	case KindDungeonLoading:
		return "dungeon_loading"
	case KindRoomLoading:
		return "room_loading"
	case KindRoom:
		return "room"
	case KindCombatLoading:
		return "combat_loading"
	case KindCombat:
		return "combat"
	case KindDefeatMonster:
		return "defeat_monster"
	case KindDeadPlayer:
		return "dead_player"
	case KindRoomResult:
		return "room_result"
	case KindRunScreen:
		return "run_screen"
	default:
		return "unknown"
	}
}

// Timed reports whether the screen advances on its own after a delay.
func (k ScreenKind) Timed() bool {
	switch k {
	case KindDungeonLoading, KindRoomLoading, KindCombatLoading,
		KindDefeatMonster, KindDeadPlayer, KindRunScreen:
		return true
	default:
		return false
	}
}

// Screen is the active UI state. Each variant carries only its own data.
type Screen interface {
	Kind() ScreenKind
}

// MainMenu lets the player start a game or quit.
type MainMenu struct {
	Selected MenuOption
}

// DungeonLoading precedes the first room of a run.
type DungeonLoading struct{}

// RoomLoading precedes every room.
type RoomLoading struct{}

// RoomScreen shows the current room.
type RoomScreen struct{}

// CombatLoading precedes every fight.
type CombatLoading struct{}

// Combat is a fight with the room's active monster.
type Combat struct {
	Selected CombatOption
}

// DefeatMonster follows a slain monster.
type DefeatMonster struct{}

// DeadPlayer follows the player's death.
type DeadPlayer struct{}

// RoomResult offers the room's weapon, if any.
type RoomResult struct {
	Selected WeaponChoice
}

// RunScreen follows fleeing from combat.
type RunScreen struct{}

func (MainMenu) Kind() ScreenKind       { return KindMainMenu }
func (DungeonLoading) Kind() ScreenKind { return KindDungeonLoading }
func (RoomLoading) Kind() ScreenKind    { return KindRoomLoading }
func (RoomScreen) Kind() ScreenKind     { return KindRoom }
func (CombatLoading) Kind() ScreenKind  { return KindCombatLoading }
func (Combat) Kind() ScreenKind         { return KindCombat }
func (DefeatMonster) Kind() ScreenKind  { return KindDefeatMonster }
func (DeadPlayer) Kind() ScreenKind     { return KindDeadPlayer }
func (RoomResult) Kind() ScreenKind     { return KindRoomResult }
func (RunScreen) Kind() ScreenKind      { return KindRunScreen }

// MenuOption is a main menu entry.
type MenuOption int

const (
	MenuNewGame MenuOption = iota
	MenuLoadGame
	MenuQuit
)

// MenuOptions lists the main menu entries in display order.
var MenuOptions = []MenuOption{MenuNewGame, MenuLoadGame, MenuQuit}

// String returns the menu label.
func (o MenuOption) String() string {
	switch o {
	case MenuNewGame:
		return "New Game"
	case MenuLoadGame:
		return "Load Game"
	case MenuQuit:
		return "Quit"
	default:
		return "unknown"
	}
}

// Prev returns the entry above, staying on the first entry.
func (o MenuOption) Prev() MenuOption {
	return max(o-1, MenuNewGame)
}

// Next returns the entry below, staying on the last entry.
func (o MenuOption) Next() MenuOption {
	return min(o+1, MenuQuit)
}

// CombatOption is a combat action.
type CombatOption int

const (
	CombatAttack CombatOption = iota
	CombatRun
)

// CombatOptions lists the combat actions in display order.
var CombatOptions = []CombatOption{CombatAttack, CombatRun}

// String returns the action label.
func (o CombatOption) String() string {
	switch o {
	case CombatAttack:
		return "Attack"
	case CombatRun:
		return "Run"
	default:
		return "unknown"
	}
}

// Prev returns the action above, staying on the first action.
func (o CombatOption) Prev() CombatOption {
	return max(o-1, CombatAttack)
}

// Next returns the action below, staying on the last action.
func (o CombatOption) Next() CombatOption {
	return min(o+1, CombatRun)
}

// WeaponChoice answers whether to equip the offered weapon.
type WeaponChoice int

const (
	WeaponYes WeaponChoice = iota
	WeaponNo
)

// WeaponChoices lists the answers in display order.
var WeaponChoices = []WeaponChoice{WeaponYes, WeaponNo}

// String returns the answer label.
func (c WeaponChoice) String() string {
	switch c {
	case WeaponYes:
		return "Yes"
	case WeaponNo:
		return "No"
	default:
		return "unknown"
	}
}

// Toggle flips between Yes and No.
func (c WeaponChoice) Toggle() WeaponChoice {
	if c == WeaponYes {
		return WeaponNo
	}
	return WeaponYes
}
