package models

// Difficulty is the effort tier of an advice item, 1 (easy) to 3 (hard).
type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyMedium Difficulty = 2
	DifficultyHard   Difficulty = 3
)

// Advice is one recommended action
type Advice struct {
	Difficulty Difficulty `json:"difficulty"`
	Category   string     `json:"category"`
	Action     string     `json:"action"`
	Impact     string     `json:"impact"`
}

// GroupedAdvice buckets advice by difficulty, preserving catalog order.
type GroupedAdvice struct {
	Easy   []Advice `json:"easy"`
	Medium []Advice `json:"medium"`
	Hard   []Advice `json:"hard"`
}
