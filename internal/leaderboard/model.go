package leaderboard

// Award identifies which prize counter a payout increments.
type Award string

// Award kinds. Mayo is the near-miss consolation award.
const (
	AwardFirst  Award = "first"
	AwardSecond Award = "second"
	AwardThird  Award = "third"
	AwardMayo   Award = "mayo"
	AwardNone   Award = ""
)

// Awards counts how often an account earned each award.
type Awards struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Third  int `json:"third"`
	Mayo   int `json:"mayo"`
}

// Entry is one account's all-time prediction record. It accumulates
// monotonically across settlement cycles and is never cleared.
type Entry struct {
	PrizeTotal int64  `json:"prize_total"`
	Awards     Awards `json:"awards"`
}
