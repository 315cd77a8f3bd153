package domain

// BodyMeasurement is one immutable measurement session. Weight is kg,
// the girth fields are cm; all are non-negative.
type BodyMeasurement struct {
	ID     int64   `json:"id"`
	UserID int64   `json:"userId"`
	Date   string  `json:"date"` // YYYY-MM-DD
	Weight float64 `json:"weight"`
	Chest  float64 `json:"chest"`
	Waist  float64 `json:"waist"`
	Hips   float64 `json:"hips"`
}
