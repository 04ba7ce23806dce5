package domain

// Lookup tables for house locations. Reference data only; maintained by
// seed scripts, read-only through the API.

type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SubwayLine struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}
