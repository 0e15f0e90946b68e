package progress

import (
	"context"
	"fmt"
)

// evaluateTitles unlocks every catalog title whose requirement is now met.
// A title unlock is recorded as a synthetic "title_<id>" entry in the earned
// badge set, so it survives restarts and feeds compound requirements.
func (s *Store) evaluateTitles(ctx context.Context) {
	changed := false
	for _, t := range AllTitles() {
		marker := TitleBadgeID(t.ID)
		if s.hasBadge(marker) {
			continue
		}
		if !s.meetsRequirement(t.Requirement) {
			continue
		}

		s.state.EarnedBadges = append(s.state.EarnedBadges, marker)
		changed = true
		s.recentUnlocks = append(s.recentUnlocks, Unlock{
			Type: UnlockTitle,
			ID:   t.ID,
			Name: t.Name,
		})
		s.notifier.Toast(fmt.Sprintf("👑 Title unlocked: %s", t.Name))
	}
	if changed {
		s.persistJSON(ctx, keyEarnedBadges, s.state.EarnedBadges)
	}
}

func (s *Store) meetsRequirement(r TitleRequirement) bool {
	if r.Level > 0 && s.state.Level < r.Level {
		return false
	}
	for _, b := range r.Badges {
		if !s.hasBadge(b) {
			return false
		}
	}
	return true
}

// SetActiveTitle switches the displayed title. Rejects titles not yet
// unlocked.
func (s *Store) SetActiveTitle(ctx context.Context, id string) bool {
	if _, ok := FindTitle(id); !ok {
		s.log.Printf("set title: unknown id %q", id)
		return false
	}
	if !s.hasBadge(TitleBadgeID(id)) {
		s.notifier.Toast("Title not unlocked yet")
		return false
	}
	s.state.ActiveTitle = id
	return s.persistString(ctx, keyActiveTitle, id)
}

// CurrentTitle resolves the active title, falling back to the default when
// the stored id is stale.
func (s *Store) CurrentTitle() Title {
	if t, ok := FindTitle(s.state.ActiveTitle); ok {
		return t
	}
	t, _ := FindTitle("beginner")
	return t
}

// TitleStatus annotates a catalog title with unlock state.
type TitleStatus struct {
	Title
	Unlocked bool
	Active   bool
}

func (s *Store) Titles() []TitleStatus {
	all := AllTitles()
	out := make([]TitleStatus, 0, len(all))
	for _, t := range all {
		out = append(out, TitleStatus{
			Title:    t,
			Unlocked: s.hasBadge(TitleBadgeID(t.ID)),
			Active:   t.ID == s.state.ActiveTitle,
		})
	}
	return out
}
