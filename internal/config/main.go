package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	JudgeBest  = "best"
	JudgeFirst = "first"

	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

var (
	ErrSize        = errors.New("playfield width and height must be positive")
	ErrLanes       = errors.New("lane count must be positive")
	ErrMargins     = errors.New("judgement margins must satisfy 0 <= perfect < great < good")
	ErrKeys        = errors.New("one key is required per lane")
	ErrProbability = errors.New("spawn probability must be within [0, 1]")
	ErrSpeed       = errors.New("note speed must be positive")
)

// Config holds every constant the game is started with. Nothing in it
// changes once the game is running.
type Config struct {
	Width, Height float64
	Lanes         int
	NoteHeight    float64
	NoteSpeed     float64
	SpawnChance   float64
	MinSpacing    float64 // Minimum distance from the top before the next note may spawn in a lane
	LineOffset    float64 // Distance of the judgement line from the bottom

	Perfect, Great, Good float64

	Keys        string
	Judge       string
	Backend     string
	FramePeriod time.Duration
	Seed        int64
	Sound       bool
	LogFile     string
}

// Default returns the values the game ships with, identical to the flag defaults.
func Default() Config {
	return Config{
		Width:       800,
		Height:      600,
		Lanes:       4,
		NoteHeight:  30,
		NoteSpeed:   5,
		SpawnChance: 0.02,
		MinSpacing:  100,
		LineOffset:  100,
		Perfect:     5,
		Great:       10,
		Good:        20,
		Keys:        "dfjk",
		Judge:       JudgeBest,
		Backend:     BackendANSI,
		FramePeriod: 16 * time.Millisecond,
		Sound:       true,
	}
}

// NewApp binds all flags onto c. Parsing the returned application fills c.
func NewApp(c *Config) *kingpin.Application {
	app := kingpin.New("lanes", "Four lane falling note rhythm game for the terminal")
	app.Version("0.1.0")
	app.HelpFlag.Short('h')

	app.Flag("width", "Playfield width in pixels").Default("800").Envar("LANES_WIDTH").Float64Var(&c.Width)
	app.Flag("height", "Playfield height in pixels").Default("600").Envar("LANES_HEIGHT").Float64Var(&c.Height)
	app.Flag("lanes", "Number of lanes").Default("4").Envar("LANES_LANES").IntVar(&c.Lanes)
	app.Flag("note-height", "Note height in pixels").Default("30").Envar("LANES_NOTE_HEIGHT").Float64Var(&c.NoteHeight)
	app.Flag("speed", "Note speed in pixels per tick").Default("5").Short('s').Envar("LANES_SPEED").Float64Var(&c.NoteSpeed)
	app.Flag("spawn", "Spawn probability per lane per tick").Default("0.02").Envar("LANES_SPAWN").Float64Var(&c.SpawnChance)
	app.Flag("spacing", "Minimum distance between notes in a lane").Default("100").Short('S').Envar("LANES_SPACING").Float64Var(&c.MinSpacing)
	app.Flag("perfect", "Perfect window in pixels").Default("5").Envar("LANES_PERFECT").Float64Var(&c.Perfect)
	app.Flag("great", "Great window in pixels").Default("10").Envar("LANES_GREAT").Float64Var(&c.Great)
	app.Flag("good", "Good window in pixels").Default("20").Envar("LANES_GOOD").Float64Var(&c.Good)
	app.Flag("line-offset", "Judgement line distance from the bottom").Default("100").Envar("LANES_LINE_OFFSET").Float64Var(&c.LineOffset)
	app.Flag("keys", "Keys for each lane, left to right").Default("dfjk").Short('k').Envar("LANES_KEYS").StringVar(&c.Keys)
	app.Flag("judge", "Judgement policy, best match or first match").Default(JudgeBest).Envar("LANES_JUDGE").EnumVar(&c.Judge, JudgeBest, JudgeFirst)
	app.Flag("backend", "Terminal backend").Default(BackendANSI).Short('b').Envar("LANES_BACKEND").EnumVar(&c.Backend, BackendANSI, BackendTcell)
	app.Flag("frame-period", "Render frame period").Default("16ms").Short('p').Envar("LANES_FRAME_PERIOD").DurationVar(&c.FramePeriod)
	app.Flag("seed", "Spawn seed, 0 picks one from the clock").Default("0").Envar("LANES_SEED").Int64Var(&c.Seed)
	app.Flag("sound", "Play a tone on every judgement").Default("true").Envar("LANES_SOUND").BoolVar(&c.Sound)
	app.Flag("log", "Log file, empty to discard").Default("").Short('l').Envar("LANES_LOG").StringVar(&c.LogFile)

	return app
}

// Parse fills a Config from command line arguments and validates it.
func Parse(args []string) (Config, error) {
	var c Config
	if _, err := NewApp(&c).Parse(args); nil != err {
		return c, err
	}
	if err := c.Validate(); nil != err {
		return c, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.NoteHeight <= 0 {
		return ErrSize
	}
	if c.Lanes <= 0 {
		return ErrLanes
	}
	if c.NoteSpeed <= 0 {
		return ErrSpeed
	}
	if c.SpawnChance < 0 || c.SpawnChance > 1 {
		return ErrProbability
	}
	if c.Perfect < 0 || c.Perfect >= c.Great || c.Great >= c.Good {
		return ErrMargins
	}
	if n := len([]rune(c.Keys)); n != c.Lanes {
		return fmt.Errorf("%w: got %v keys for %v lanes", ErrKeys, n, c.Lanes)
	}
	return nil
}
