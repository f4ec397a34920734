package engine

import "github.com/maxviazov/football-match-engine/internal/model"

// YellowsPerBan is how many accumulated yellow cards cost a one-match suspension.
const YellowsPerBan = 5

// BookYellow records a yellow card and reports whether it triggered a
// suspension. Bans land on the 5th, 10th, 15th... yellow and never in between.
func BookYellow(p *model.Player) bool {
	p.YellowCards++
	if p.YellowCards >= YellowsPerBan && p.YellowCards%YellowsPerBan == 0 {
		p.BanMatches = 1
		return true
	}
	return false
}

// SendOff records a red card and a one-match suspension.
func SendOff(p *model.Player) {
	p.RedCards++
	p.BanMatches = 1
}
