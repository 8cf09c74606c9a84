package predictions

import "errors"

// MaxPerAccount caps open predictions per account per settlement window.
const MaxPerAccount = 3

var (
	// ErrMethodAlreadyUsed indicates the account already has an open
	// prediction with the same method.
	ErrMethodAlreadyUsed = errors.New("method already used")

	// ErrPredictionLimit indicates the account reached its open-prediction cap.
	ErrPredictionLimit = errors.New("prediction limit reached")

	// ErrSubmissionsClosed indicates the market is open and submissions are
	// rejected until it closes.
	ErrSubmissionsClosed = errors.New("submissions closed while market is open")
)

// Prediction is one open entry in the day's book. JSON keys match the
// historical document layout.
type Prediction struct {
	AccountID string  `json:"user"`
	Value     float64 `json:"prediction"`
	Method    string  `json:"method"`
}

type document struct {
	Predictions []Prediction `json:"predictions"`
}
