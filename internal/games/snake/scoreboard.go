package snake

// scoreDelta is the score awarded per food item.
const scoreDelta = 1

// ScoreBoard tracks the player's name and score for one run.
type ScoreBoard struct {
	player string
	score  int
}

// NewScoreBoard creates a zeroed score board for the given player.
func NewScoreBoard(player string) *ScoreBoard {
	return &ScoreBoard{player: player}
}

// Increment adds one food item's worth to the score.
func (sb *ScoreBoard) Increment() {
	sb.score += scoreDelta
}

// Reset zeroes the score; the player name is kept.
func (sb *ScoreBoard) Reset() {
	sb.score = 0
}

// Score returns the current score.
func (sb *ScoreBoard) Score() int {
	return sb.score
}

// Player returns the display name.
func (sb *ScoreBoard) Player() string {
	return sb.player
}
