package models

import "time"

// SessionLog is a single logged work session. Item counts are split by
// category because daily and weekly targets track them separately.
type SessionLog struct {
	ID                string    `bson:"id" json:"id"`
	SellerID          string    `bson:"sellerId" json:"sellerId"`
	StartTime         time.Time `bson:"startTime" json:"startTime"`
	EndTime           time.Time `bson:"endTime" json:"endTime"`
	BrandedItemsSold  int       `bson:"brandedItemsSold" json:"brandedItemsSold"`
	FreeSizeItemsSold int       `bson:"freeSizeItemsSold" json:"freeSizeItemsSold"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DurationHours returns the session span in fractional hours.
func (l *SessionLog) DurationHours() float64 {
	return l.EndTime.Sub(l.StartTime).Hours()
}

// SessionLogUpdateRequest carries the mutable session fields. Pointers
// distinguish "not provided" from zero values so counts can be set to 0.
type SessionLogUpdateRequest struct {
	ID                string     `json:"id"`
	StartTime         *time.Time `json:"startTime,omitempty"`
	EndTime           *time.Time `json:"endTime,omitempty"`
	BrandedItemsSold  *int       `json:"brandedItemsSold,omitempty"`
	FreeSizeItemsSold *int       `json:"freeSizeItemsSold,omitempty"`
}
