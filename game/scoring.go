package game

// roundScore is the base-minus-commitment award used by both withdraw
// forfeits and lane-control majorities: the fewer cards on the board, the
// larger the award (an empty board yields the maximum).
func (s *Session) roundScore() int {
	return s.Config.RoundBasePoints - s.Board.TotalCards()
}

// applyWithdraw forfeits the round for the acting seat: the opponent's
// score pool grows by the round score, then the board is cleared and both
// hands emptied. The turn indicator is left alone and no redeal happens;
// the session idles until both participants disconnect.
func (s *Session) applyWithdraw(seat int) {
	boardCards := s.Board.TotalCards()
	points := s.roundScore()
	opponent := 1 - seat
	s.Scores[opponent] += points
	if s.Sink != nil {
		s.Sink.RecordWithdraw(s.ID, seat, opponent, points, boardCards)
	}
	s.Board = NewBoard()
	s.Players[0].Hand = []Card{}
	s.Players[1].Hand = []Card{}
}

// awardLaneControl recomputes lane control and grants victory points when
// a seat holds a strict majority (at least 2 of 3) of the theaters. A
// theater is controlled by the seat with the strictly greater strength
// sum; a tie controls neither. Runs after every accepted action.
func (s *Session) awardLaneControl() {
	var controlled [2]int
	for _, t := range Theaters {
		seat0, seat1 := s.Board.StrengthByOwner(t)
		switch {
		case seat0 > seat1:
			controlled[0]++
		case seat1 > seat0:
			controlled[1]++
		}
	}
	for seat := 0; seat < 2; seat++ {
		if controlled[seat] >= 2 {
			points := s.roundScore()
			s.VictoryPoints[seat] += points
			if s.Sink != nil {
				s.Sink.RecordControlAward(s.ID, seat, points, s.Board.TotalCards())
			}
		}
	}
}
