package model

// Train is static reference data, read-only after seeding.
type Train struct {
	ID               int    `json:"id" db:"id"`
	TrainNumber      string `json:"train_number" db:"train_number"`
	TrainName        string `json:"train_name" db:"train_name"`
	TrainType        string `json:"train_type" db:"train_type"`
	StartingStation  string `json:"starting_station" db:"starting_station"`
	DepartureStation string `json:"departure_station" db:"departure_station"`
}
