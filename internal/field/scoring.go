package field

// scoreTable maps the number of fireworks detonated together to the award.
// Anything past the end of the table earns the last entry.
var scoreTable = [...]int{0, 200, 500, 1500, 2500, 4000}

// Score returns the award for detonating n fireworks at once.
func Score(n int) int {
	if n <= 0 {
		return 0
	}
	if n >= len(scoreTable) {
		return scoreTable[len(scoreTable)-1]
	}
	return scoreTable[n]
}
