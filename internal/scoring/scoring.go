// Package scoring turns cleared lines into points and total lines into a level.
package scoring

const (
	LinesPerLevel = 10
	LandingBonus  = 1
	MaxLines      = 4 // Most rows a single tetromino can complete
)

// lineValues[n] is the base value of clearing n rows at once.
var lineValues = [MaxLines + 1]int{0, 40, 100, 300, 1200}

// CalculateScore returns the points awarded for one landing (or one scoring
// event when landed is false). Negative levels, negative line counts and
// counts above four are invalid and score nothing.
func CalculateScore(level, lines int, landed bool) int {
	if level < 0 || lines < 0 || lines > MaxLines {
		return 0
	}
	score := 0
	if landed {
		score += LandingBonus
	}
	return score + lineValues[lines]*(level+1)
}

// CalculateLevel derives the level and the fall delay in seconds from the
// total number of cleared lines. The delay is (48 - 2*level) frames at 60 Hz.
// It is not clamped: from level 24 on it is zero or negative, which makes the
// piece fall on every update.
func CalculateLevel(totalLines int) (level int, fallDelay float64) {
	level = totalLines / LinesPerLevel
	fallDelay = float64(48-2*level) / 60
	return level, fallDelay
}

// InitialFallDelay is the delay used before any line has been cleared.
func InitialFallDelay() float64 {
	_, d := CalculateLevel(0)
	return d
}
