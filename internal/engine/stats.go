package engine

// DefaultStrikePower is the move power used when an attack has no content
// move behind it (the plain wild-encounter attack).
const DefaultStrikePower = 12

// HPForLevel scales a species base HP stat to a level
func HPForLevel(baseHP, level int32) int32 {
	if level < 1 {
		level = 1
	}
	return baseHP + level*2
}

// StatForLevel scales a species base attack/defense/speed stat to a level
func StatForLevel(base, level int32) int32 {
	if level < 1 {
		level = 1
	}
	return base + level
}

// MPForLevel scales a creature's mana pool to its level
func MPForLevel(level int32) int32 {
	if level < 1 {
		level = 1
	}
	return 20 + level*2
}

// AttackDamage computes damage from a move's power and the combatants'
// stats. Power comes from content keyed by move ID, never inferred from the
// move's name. Damage never drops below 1 so a battle always terminates.
func AttackDamage(power, attack, defense int32) int32 {
	if power <= 0 {
		power = DefaultStrikePower
	}

	dmg := power + attack/2 - defense/4
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// ApplyDamage reduces hp by dmg, flooring at zero
func ApplyDamage(hp, dmg int32) int32 {
	hp -= dmg
	if hp < 0 {
		hp = 0
	}
	return hp
}
