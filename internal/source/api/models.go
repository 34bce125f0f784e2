package api

// Activity is the activity representation returned by GET /activities.
type Activity struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	HasCost      bool     `json:"has_cost"`
	Cost         *float64 `json:"cost"`
	AvailableSun bool     `json:"available_sun"`
	AvailableMon bool     `json:"available_mon"`
	AvailableTue bool     `json:"available_tue"`
	AvailableWed bool     `json:"available_wed"`
	AvailableThu bool     `json:"available_thu"`
	AvailableFri bool     `json:"available_fri"`
	AvailableSat bool     `json:"available_sat"`
	URL          string   `json:"url"`
	Images       []string `json:"images"`
}

type SwipeRequest struct {
	UserID     int64 `json:"userId"`
	ActivityID int64 `json:"activityId"`
	Liked      bool  `json:"liked"`
}

type ResetRequest struct {
	UserID int64 `json:"userId"`
}
