package domain

// DayType names a workout-plan category. The category decides which
// exercises are valid and whether an entry carries strength or cardio
// fields.
type DayType string

const (
	DayFullBodyStrength     DayType = "Full-Body Strength"
	DayHIITCardio           DayType = "HIIT Cardio"
	DayUpperBodyHypertrophy DayType = "Upper Body Hypertrophy"
	DayLowerBodyPower       DayType = "Lower Body Power"
	DayMetabolicCircuit     DayType = "Metabolic Circuit"
	DaySteadyStateCardio    DayType = "Steady-State Cardio"
)

// WorkoutPlan maps each day type to the exercises valid for it.
var WorkoutPlan = map[DayType][]string{
	DayFullBodyStrength:     {"Barbell Back Squats", "Bench Press", "Bent-Over Barbell Rows", "Overhead Press", "Plank"},
	DayHIITCardio:           {"Sprint Intervals", "Incline Treadmill Sprints", "Bike Sprints"},
	DayUpperBodyHypertrophy: {"Incline Dumbbell Press", "Pull-Ups/Lat Pulldowns", "Dumbbell Flyes", "Single-Arm Dumbbell Rows", "Lateral Raises"},
	DayLowerBodyPower:       {"Deadlifts", "Walking Lunges", "Leg Press", "Farmers Carry", "Hanging Leg Raises"},
	DayMetabolicCircuit:     {"Kettlebell Swings", "Push-Ups", "Dumbbell Step-Ups", "TRX Rows", "Mountain Climbers"},
	DaySteadyStateCardio:    {"Incline Treadmill Walk", "Cycling", "Rowing"},
}

var cardioDays = map[DayType]bool{
	DayHIITCardio:        true,
	DaySteadyStateCardio: true,
}

// IsValid reports whether d is one of the plan's day types.
func (d DayType) IsValid() bool {
	_, ok := WorkoutPlan[d]
	return ok
}

// IsCardio reports whether entries for this day type carry the cardio
// pair (duration, intensity) instead of the strength triple.
func (d DayType) IsCardio() bool {
	return cardioDays[d]
}

// AllowsExercise reports whether the named exercise belongs to this day
// type's plan. Matching is by exact name.
func (d DayType) AllowsExercise(exercise string) bool {
	for _, e := range WorkoutPlan[d] {
		if e == exercise {
			return true
		}
	}
	return false
}

// Intensity is the effort level of a cardio session.
type Intensity string

const (
	IntensityLow      Intensity = "Low"
	IntensityModerate Intensity = "Moderate"
	IntensityHigh     Intensity = "High"
)

func (i Intensity) IsValid() bool {
	switch i {
	case IntensityLow, IntensityModerate, IntensityHigh:
		return true
	}
	return false
}

// StrengthFields is the field group for strength day types.
type StrengthFields struct {
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"` // kg
}

// CardioFields is the field group for cardio day types.
type CardioFields struct {
	Duration  int       `json:"duration"` // minutes
	Intensity Intensity `json:"intensity"`
}

// WorkoutEntry is one immutable logged session. Exactly one of Strength
// or Cardio is populated, matching the day type's category.
type WorkoutEntry struct {
	ID       int64           `json:"id"`
	UserID   int64           `json:"userId"`
	Date     string          `json:"date"` // YYYY-MM-DD
	DayName  DayType         `json:"dayName"`
	Exercise string          `json:"exercise"`
	Strength *StrengthFields `json:"strength,omitempty"`
	Cardio   *CardioFields   `json:"cardio,omitempty"`
}
