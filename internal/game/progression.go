package game

// ticksPerSecond is the nominal tick rate of the simulation.
const ticksPerSecond = 60

// killsBase is the kill requirement for levels 1-10; it doubles every 10 levels.
const killsBase = 10

// Progression tracks score, level and elapsed time for a run.
type Progression struct {
	ElapsedSeconds int
	Score          int
	Level          int
	KillsInLevel   int // Progress toward the next level, always < KillsNeeded
	KillsNeeded    int

	frameCounter int
}

// NewProgression returns a tracker at level 1.
func NewProgression() Progression {
	var p Progression
	p.Reset()
	return p
}

// Reset returns the tracker to the start of a run.
func (p *Progression) Reset() {
	*p = Progression{
		Level:       1,
		KillsNeeded: KillsRequired(1),
	}
}

// KillsRequired returns the kills needed to clear a level.
func KillsRequired(level int) int {
	group := (level - 1) / 10
	if group < 0 {
		group = 0
	}
	if group > 20 {
		group = 20
	}
	return killsBase << group
}

// AddKill credits n kills. Surplus kills roll into the next level's progress.
// Returns the number of levels gained.
func (p *Progression) AddKill(n int) int {
	if n <= 0 {
		return 0
	}
	p.Score += n
	p.KillsInLevel += n

	gained := 0
	for p.KillsInLevel >= p.KillsNeeded {
		p.KillsInLevel -= p.KillsNeeded
		p.Level++
		p.KillsNeeded = KillsRequired(p.Level)
		gained++
	}
	return gained
}

// Tick advances the elapsed-time counter by one frame.
func (p *Progression) Tick() {
	p.frameCounter++
	if p.frameCounter >= ticksPerSecond {
		p.ElapsedSeconds++
		p.frameCounter -= ticksPerSecond
	}
}
