// Package entity provides the player, monsters and the items they carry.
package entity

// Default stats for a new player.
const (
	DefaultPlayerHealth  = 100
	DefaultPlayerAttack  = 10
	DefaultPlayerDefence = 5
	DefaultPlayerSpeed   = 5
)

// Player is the adventurer controlled by the user for one run.
type Player struct {
	Name      string
	MaxHealth int
	Health    int // May drop to 0 or below; see IsDead
	Attack    int
	Defence   int
	Speed     int
	Weapon    *Weapon // nil when unarmed
	Gold      int
	Potions   []HealthPotion
}

// NewPlayer creates a player with default stats and no equipment.
func NewPlayer(name string) *Player {
	return &Player{
		Name:      name,
		MaxHealth: DefaultPlayerHealth,
		Health:    DefaultPlayerHealth,
		Attack:    DefaultPlayerAttack,
		Defence:   DefaultPlayerDefence,
		Speed:     DefaultPlayerSpeed,
	}
}

// GetName returns the player's name.
func (p *Player) GetName() string { return p.Name }

// GetSpeed returns the speed stat.
func (p *Player) GetSpeed() int { return p.Speed }

// GetHealth returns current health.
func (p *Player) GetHealth() int { return p.Health }

// IsDead reports whether health has dropped to zero or below.
func (p *Player) IsDead() bool { return p.Health <= 0 }

// IsAlive is the negation of IsDead.
func (p *Player) IsAlive() bool { return !p.IsDead() }

// GetAttack returns total attack including the equipped weapon's bonus.
func (p *Player) GetAttack() int {
	if p.Weapon == nil {
		return p.Attack
	}
	return p.Attack + p.Weapon.AttackValue
}

// DamageAgainst returns the damage a strike on m would deal, floored at 0.
func (p *Player) DamageAgainst(m *Monster) int {
	return max(0, p.GetAttack()-m.Defence)
}

// Strike attacks m and returns the damage dealt.
func (p *Player) Strike(m *Monster) int {
	damage := p.DamageAgainst(m)
	m.TakeDamage(damage)
	return damage
}

// TakeDamage lowers health by amount. Health is not clamped at zero.
func (p *Player) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	p.Health -= amount
}

// Heal restores health up to MaxHealth and returns the amount restored.
func (p *Player) Heal(amount int) int {
	if amount <= 0 || p.Health >= p.MaxHealth {
		return 0
	}
	actual := min(amount, p.MaxHealth-p.Health)
	p.Health += actual
	return actual
}

// Equip replaces the equipped weapon.
func (p *Player) Equip(w *Weapon) {
	p.Weapon = w
}

// AddGold adds to the purse. Negative amounts are ignored.
func (p *Player) AddGold(amount int) {
	if amount > 0 {
		p.Gold += amount
	}
}

// AddPotion stores a potion for later.
func (p *Player) AddPotion(potion HealthPotion) {
	p.Potions = append(p.Potions, potion)
}

// DrinkPotion consumes the oldest carried potion and returns the health
// restored. It returns false when no potion is carried.
func (p *Player) DrinkPotion() (int, bool) {
	if len(p.Potions) == 0 {
		return 0, false
	}
	potion := p.Potions[0]
	p.Potions = p.Potions[1:]
	return p.Heal(potion.HealAmount), true
}
