package casefile

// Case is a single playable scenario loaded from one case file.
// It holds everything the game needs: the scenes to investigate, the people to
// question, the evidence to find, and the solution the player works towards.
type Case struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Locations   []Location `json:"locations"`
	Witnesses   []Record   `json:"witnesses"`
	Evidence    []Record   `json:"evidence"`
	Solution    Record     `json:"solution"`
}

// Location is a scene the player can investigate.
type Location struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Record is a free-form part of a case, e.g. a witness or a piece of evidence.
// Authors can add whatever keys their scenario needs; the schema only checks
// the shape.
type Record map[string]any
