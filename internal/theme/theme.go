package theme

import "git.lost.host/meutraa/lanes/internal/game"

type Theme interface {
	Background() Style
	LaneBorder() Style
	JudgementLine() Style
	Note(lane int) Style
	Text() Style
	Judgement(j game.Judgement) Style
	Overlay() Style
}
