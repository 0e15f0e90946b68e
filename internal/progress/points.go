package progress

import (
	"math"
	"time"
)

// dynamicReward scales a positive point amount by the current reward
// multiplier: early-morning and late-night study bonuses, a weekend bonus, a
// capped streak bonus once a streak is established, and a 15% lucky roll.
func (s *Store) dynamicReward(amount int) int {
	now := s.now()
	hour := now.Hour()
	mult := 1.0

	switch {
	case hour >= 5 && hour < 8:
		mult += 0.3
	case hour >= 21 || hour <= 4:
		mult += 0.2
	}

	if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
		mult += 0.15
	}

	if s.state.Streak > 3 {
		bonus := 0.05 * float64(s.state.Streak)
		if bonus > 0.5 {
			bonus = 0.5
		}
		mult += bonus
	}

	if s.luck() < 0.15 {
		mult += 0.5
	}

	return int(math.Round(float64(amount) * mult))
}
