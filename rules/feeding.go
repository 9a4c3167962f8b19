package rules

// FeedResult is the outcome of a single feeding between a predator and its prey
type FeedResult struct {
	HunterHealth float64
	PreyHealth   float64
	Killed       bool
}

/*
ApplyFeeding transfers amount health from prey to hunter.

The prey is floored at 0 and the hunter capped at maxHealth. When the prey reaches exactly 0 it is
killed and the hunter is restored to maxHealth.
*/
func ApplyFeeding(hunterHealth, preyHealth, amount, maxHealth float64) FeedResult {
	preyHealth = max(preyHealth-amount, 0)
	hunterHealth = min(hunterHealth+amount, maxHealth)

	if preyHealth == 0 {
		return FeedResult{HunterHealth: maxHealth, PreyHealth: 0, Killed: true}
	}
	return FeedResult{HunterHealth: hunterHealth, PreyHealth: preyHealth}
}
