package domain

// MealType is the enumerated kind of a logged meal.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// NutritionEntry is one immutable logged meal. Macro fields are grams
// and non-negative.
type NutritionEntry struct {
	ID       int64    `json:"id"`
	UserID   int64    `json:"userId"`
	Date     string   `json:"date"`     // YYYY-MM-DD
	MealType MealType `json:"mealType"`
	MealTime string   `json:"mealTime"` // HH:MM or HH:MM:SS
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	Notes    string   `json:"notes"`
}

// DailyMacros is the per-day sum of macro fields across all meals
// logged on that date.
type DailyMacros struct {
	Date    string  `json:"date"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}
