package domain

import "time"

type HouseStatus string

const (
	HouseStatusDraft     HouseStatus = "DRAFT"
	HouseStatusPublished HouseStatus = "PUBLISHED"
	HouseStatusRented    HouseStatus = "RENTED"
	HouseStatusOffline   HouseStatus = "OFFLINE"
)

func (s HouseStatus) Valid() bool {
	switch s {
	case HouseStatusDraft, HouseStatusPublished, HouseStatusRented, HouseStatusOffline:
		return true
	}
	return false
}

type House struct {
	ID          int64       `json:"id"`
	OwnerID     int64       `json:"owner_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	// Prices are stored in cents. Orders snapshot these at creation time;
	// editing a house never touches existing orders.
	RentPriceCents int64   `json:"rent_price_cents"`
	DepositCents   *int64  `json:"deposit_cents,omitempty"`
	AreaSqm        float64 `json:"area_sqm"`
	Layout         string  `json:"layout"`
	Orientation    string  `json:"orientation"`
	Address        string  `json:"address"`
	AvailableFrom  string  `json:"available_from,omitempty"` // YYYY-MM-DD
	RegionID       *int64  `json:"region_id,omitempty"`
	SubwayLineID   *int64  `json:"subway_line_id,omitempty"`
	Status         HouseStatus `json:"status"`
	Recommended    bool        `json:"recommended"`
	MediaURLs      []string    `json:"media_urls"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// HouseFavorite bookmarks a house for a user. One row per (user, house)
// pair.
type HouseFavorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	HouseID   int64     `json:"house_id"`
	CreatedAt time.Time `json:"created_at"`
}

// HouseFilter narrows house listings. Zero values mean "no constraint".
type HouseFilter struct {
	Keyword       string
	RegionID      int64
	SubwayLineID  int64
	MaxRentCents  int64
	OnlyPublished bool
}
