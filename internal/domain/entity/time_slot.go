package entity

// TimeSlot is one bookable clock time of the clinic-wide catalog.
type TimeSlot struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	SlotTime string `gorm:"type:time;not null;uniqueIndex" json:"slot_time"`
	IsActive bool   `gorm:"not null" json:"is_active"`
}

func (TimeSlot) TableName() string {
	return "time_slots"
}
