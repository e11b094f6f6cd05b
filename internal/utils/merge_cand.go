package utils

// MergeCand is one candidate merge the reference encoder's bucket queue
// orders: a rank (lower wins), the left slot's position (lower wins on a
// rank tie, enforcing leftmost-first replay), and the version stamps
// that let the encoder detect a stale entry without removing it from
// the queue eagerly.
type MergeCand struct {
	Rank       int
	Pos        int
	LeftToken  int
	RightToken int
	VerL       int
	VerR       int
}
