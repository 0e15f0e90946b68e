package progress

import (
	"context"
	"fmt"
)

// NextSlotPrice is the cost of the next D-Day slot, stepped by how many are
// already owned.
func NextSlotPrice(owned int) int {
	switch {
	case owned <= 1:
		return 100
	case owned == 2:
		return 150
	case owned == 3:
		return 200
	default:
		return 100 + (owned-1)*100
	}
}

// PurchaseDDaySlot buys one slot at the current ladder price. Rejects when
// points are insufficient. A purchased slot is unused until a goal binds it.
func (s *Store) PurchaseDDaySlot(ctx context.Context) bool {
	price := NextSlotPrice(s.state.Slots)
	if s.state.Points < price {
		s.notifier.Toast(fmt.Sprintf("Need %dP for the next slot", price))
		return false
	}

	if !s.DeductPoints(ctx, price, fmt.Sprintf("D-Day slot #%d", s.state.Slots+1), CategoryDDay) {
		return false
	}

	s.state.Slots++
	s.state.UnusedSlots++
	s.persistInt(ctx, keySlots, s.state.Slots)
	s.persistInt(ctx, keyUnusedSlots, s.state.UnusedSlots)
	s.notifier.Toast(fmt.Sprintf("🎯 Slot purchased. %d unused", s.state.UnusedSlots))
	return true
}

// HandleGoalAdded consumes one unused slot when a goal with a target date is
// created. The first goal rides on the free starter slot, so a zero unused
// count is not an error.
func (s *Store) HandleGoalAdded(ctx context.Context) {
	if s.state.UnusedSlots == 0 {
		return
	}
	s.state.UnusedSlots--
	s.persistInt(ctx, keyUnusedSlots, s.state.UnusedSlots)
}
