package game

// StateMsg is the full session state pushed to an attached participant
// after every accepted action (and once on attach). Every field reflects
// current state, not a delta. Integer-keyed maps serialize with string
// keys ("0"/"1") on the wire.
type StateMsg struct {
	Board         map[Theater][]PlayedCard `json:"board"`
	Hands         map[int][]Card           `json:"hands"`
	Turn          int                      `json:"turn"`
	Scores        map[int]int              `json:"scores"`
	VictoryPoints map[int]int              `json:"victory_points"`

	// HandCounts is only present when opponent hands are redacted.
	HandCounts map[int]int `json:"hand_counts,omitempty"`
}

// buildStateFor builds the state view for one recipient. By default both
// full hands are included, matching the baseline protocol; with
// RedactHands on, the opponent's hand is replaced by an empty list and
// HandCounts carries both sizes.
func (s *Session) buildStateFor(seat int) StateMsg {
	hands := make(map[int][]Card, 2)
	for i := 0; i < 2; i++ {
		hand := s.Players[i].Hand
		if hand == nil {
			hand = []Card{}
		}
		if s.Config.RedactHands && i != seat {
			hands[i] = []Card{}
		} else {
			hands[i] = hand
		}
	}

	msg := StateMsg{
		Board:         s.Board,
		Hands:         hands,
		Turn:          s.Turn,
		Scores:        map[int]int{0: s.Scores[0], 1: s.Scores[1]},
		VictoryPoints: map[int]int{0: s.VictoryPoints[0], 1: s.VictoryPoints[1]},
	}
	if s.Config.RedactHands {
		msg.HandCounts = map[int]int{0: len(s.Players[0].Hand), 1: len(s.Players[1].Hand)}
	}
	return msg
}
