package service

import (
	"fmt"
	"time"

	"pickup-market/shop-svc/internal/domain"
)

const (
	DefaultSlotInterval = 5
	DefaultSlotCount    = 12
	DefaultPrepMinutes  = 15
)

// GenerateSlots builds the pickup times offered for a shop. The earliest
// slot is now plus the prep time, rounded up to the next interval multiple.
// Slots wrap past midnight. Times listed in disabled (exact "HH:mm" match)
// are dropped; the first remaining slot is flagged as the earliest.
func GenerateSlots(now time.Time, prepMinutes, intervalMinutes, count int, disabled []string) []domain.Slot {
	if prepMinutes <= 0 {
		prepMinutes = DefaultPrepMinutes
	}
	if intervalMinutes <= 0 {
		intervalMinutes = DefaultSlotInterval
	}
	if count <= 0 {
		count = DefaultSlotCount
	}

	blocked := make(map[string]bool, len(disabled))
	for _, t := range disabled {
		blocked[t] = true
	}

	ready := now.Add(time.Duration(prepMinutes) * time.Minute)
	base := ready.Hour()*60 + ready.Minute()
	if rem := base % intervalMinutes; rem != 0 {
		base += intervalMinutes - rem
	}

	slots := make([]domain.Slot, 0, count)
	for i := 0; i < count; i++ {
		minutes := (base + i*intervalMinutes) % (24 * 60)
		label := fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
		if blocked[label] {
			continue
		}
		slots = append(slots, domain.Slot{Time: label, IsEarliest: len(slots) == 0})
	}
	return slots
}
