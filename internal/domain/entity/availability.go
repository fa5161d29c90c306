package entity

import "sort"

// AvailableSlots returns the active catalog slots that fall inside schedule's
// [StartTime, EndTime] window and are not in booked, ascending by time.
// A nil or inactive schedule yields no slots.
func AvailableSlots(schedule *DoctorSchedule, catalog []TimeSlot, booked []string) []TimeSlot {
	available := []TimeSlot{}
	if schedule == nil || !schedule.IsActive {
		return available
	}

	start, err := ParseClock(schedule.StartTime)
	if err != nil {
		return available
	}
	end, err := ParseClock(schedule.EndTime)
	if err != nil {
		return available
	}

	taken := make(map[int]struct{}, len(booked))
	for _, b := range booked {
		if minutes, err := ParseClock(b); err == nil {
			taken[minutes] = struct{}{}
		}
	}

	for _, slot := range catalog {
		if !slot.IsActive {
			continue
		}
		minutes, err := ParseClock(slot.SlotTime)
		if err != nil {
			continue
		}
		if minutes < start || minutes > end {
			continue
		}
		if _, ok := taken[minutes]; ok {
			continue
		}
		slot.SlotTime = FormatClock(minutes)
		available = append(available, slot)
	}

	sort.SliceStable(available, func(i, j int) bool {
		return available[i].SlotTime < available[j].SlotTime
	})

	return available
}
