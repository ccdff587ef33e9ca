package models

// RoomConfiguration describes the rooms and areas selected for cleaning.
// Counted rooms are non-negative; the rest are simple on/off areas.
type RoomConfiguration struct {
	Bedrooms      int `json:"bedrooms"`
	Bathrooms     int `json:"bathrooms"`
	HalfBathrooms int `json:"halfBathrooms"`

	DiningRoom bool `json:"diningRoom"`
	Kitchen    bool `json:"kitchen"`
	LivingRoom bool `json:"livingRoom"`
	MediaRoom  bool `json:"mediaRoom"`
	GameRoom   bool `json:"gameRoom"`
	Office     bool `json:"office"`
}

// Valid reports whether all room counts are non-negative.
func (r RoomConfiguration) Valid() bool {
	return r.Bedrooms >= 0 && r.Bathrooms >= 0 && r.HalfBathrooms >= 0
}
