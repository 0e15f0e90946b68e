package progress

import (
	"context"
	"fmt"
)

// AwardBadge earns a catalog badge. No-op (false) when the id is unknown or
// already earned. On success the badge's XP bonus is granted, an unlock
// notification is queued, and titles are re-evaluated.
func (s *Store) AwardBadge(ctx context.Context, id string) bool {
	return s.awardBadge(ctx, id, true)
}

func (s *Store) awardBadge(ctx context.Context, id string, withBonus bool) bool {
	badge, ok := FindBadge(id)
	if !ok {
		s.log.Printf("award badge: unknown id %q", id)
		return false
	}
	if s.hasBadge(id) {
		return false
	}

	s.state.EarnedBadges = append(s.state.EarnedBadges, id)
	s.persistJSON(ctx, keyEarnedBadges, s.state.EarnedBadges)

	s.recentUnlocks = append(s.recentUnlocks, Unlock{
		Type:        UnlockBadge,
		ID:          badge.ID,
		Name:        badge.Name,
		Icon:        badge.Icon,
		Description: badge.Description,
		Rarity:      badge.Rarity.Name,
	})
	s.notifier.Toast(fmt.Sprintf("%s Badge unlocked: %s", badge.Icon, badge.Name))

	if withBonus && badge.XPBonus > 0 {
		s.AddXP(ctx, badge.XPBonus, "Badge: "+badge.Name)
	}

	s.evaluateTitles(ctx)
	return true
}

func (s *Store) hasBadge(id string) bool {
	for _, b := range s.state.EarnedBadges {
		if b == id {
			return true
		}
	}
	return false
}

// Badges returns the catalog annotated with earned status.
type BadgeStatus struct {
	Badge
	Earned bool
}

func (s *Store) Badges() []BadgeStatus {
	all := AllBadges()
	out := make([]BadgeStatus, 0, len(all))
	for _, b := range all {
		out = append(out, BadgeStatus{Badge: b, Earned: s.hasBadge(b.ID)})
	}
	return out
}
