// Package senses resolves senses checks with rpg-toolkit dice.
//
// A check is the senses value plus 2d6. A double six opens a bonus chain:
// another d6 is rolled, each 4-6 adds one and rolls again, 1-3 stops.
// A double one opens the mirrored malus chain: each 1-3 takes one away and
// rolls again, 4-6 stops.
package senses

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-lighting/internal/errors"
	"github.com/KirkDiggler/rpg-lighting/internal/lighting"
)

const (
	dieSize = 6

	// a chain die of chainThreshold or more keeps a bonus chain going and
	// ends a malus chain
	chainThreshold = 4

	// bounds a chain when a roller misbehaves
	maxChainRolls = 50
)

// Config holds the dependencies for the senses roller
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Roller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// Roller rolls senses checks
type Roller struct {
	roller dice.Roller
}

// NewRoller creates a senses roller
func NewRoller(cfg *Config) (*Roller, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Roller{roller: cfg.Roller}, nil
}

// Roll is a resolved senses check
type Roll struct {
	Senses    int
	Dice      []int
	BonusDice []int
	Bonus     int
	MalusDice []int
	Malus     int
	Total     int
}

// Check returns the roll as a perception check
func (r *Roll) Check() lighting.PerceptionCheck {
	return lighting.NewPerceptionCheck(r.Total)
}

// RollOnSenses rolls a check for a character with the given senses value
func (r *Roller) RollOnSenses(senses int) (*Roll, error) {
	rolled, err := r.roller.RollN(2, dieSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll senses dice")
	}
	if len(rolled) != 2 {
		return nil, errors.Internalf("expected 2 dice, roller returned %d", len(rolled))
	}

	roll := &Roll{
		Senses: senses,
		Dice:   rolled,
	}

	switch {
	case rolled[0] == dieSize && rolled[1] == dieSize:
		roll.BonusDice, roll.Bonus, err = r.rollChain(func(die int) bool { return die >= chainThreshold })
	case rolled[0] == 1 && rolled[1] == 1:
		roll.MalusDice, roll.Malus, err = r.rollChain(func(die int) bool { return die < chainThreshold })
	}
	if err != nil {
		return nil, err
	}

	roll.Total = senses + rolled[0] + rolled[1] + roll.Bonus - roll.Malus
	return roll, nil
}

// rollChain rolls d6s while counts holds, returning every die and how many counted
func (r *Roller) rollChain(counts func(die int) bool) ([]int, int, error) {
	var (
		chain []int
		hits  int
	)
	for len(chain) < maxChainRolls {
		die, err := r.roller.Roll(dieSize)
		if err != nil {
			return nil, 0, errors.Wrap(err, "failed to roll chain die")
		}
		chain = append(chain, die)
		if !counts(die) {
			break
		}
		hits++
	}
	return chain, hits, nil
}
