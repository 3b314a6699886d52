package game

// Rules holds the scoring and timing constants applied by GameState
type Rules struct {
	TimePenalty float64 `json:"time_penalty"` // Charged on every Pacman move, including Stop
	FoodScore   float64 `json:"food_score"`
	WinScore    float64 `json:"win_score"`   // Bonus for clearing all food
	LoseScore   float64 `json:"lose_score"`  // Applied when a ghost catches Pacman
	GhostScore  float64 `json:"ghost_score"` // Bonus for eating a scared ghost
	ScaredTime  int     `json:"scared_time"` // Ghost moves a capsule keeps ghosts scared for
}

func NewStandardRules() *Rules {
	return &Rules{
		TimePenalty: 1,
		FoodScore:   10,
		WinScore:    500,
		LoseScore:   -500,
		GhostScore:  200,
		ScaredTime:  40,
	}
}
