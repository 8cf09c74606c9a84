// Package settlement resolves open predictions against the day's closing
// reference price and pays ranked prizes.
package settlement

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stonk-bot/stonk_bot/internal/bank"
	"github.com/stonk-bot/stonk_bot/internal/leaderboard"
	"github.com/stonk-bot/stonk_bot/internal/market"
	"github.com/stonk-bot/stonk_bot/internal/notification"
	"github.com/stonk-bot/stonk_bot/internal/predictions"
)

// Fixed prizes per rank, plus the flat near-miss consolation paid to entries
// ranked below third but within 1% of the reference price.
const (
	firstPrize    = 1000
	secondPrize   = 500
	thirdPrize    = 100
	nearMissPrize = 50

	nearMissBand = 0.01
)

// Service settles the open prediction book.
type Service struct {
	banks    *bank.Service
	book     predictions.Repository
	board    leaderboard.Repository
	prices   market.PriceSource
	notifier notification.Notifier
	logger   *slog.Logger
	symbol   string
}

// NewService builds a settlement service for the given ticker symbol.
func NewService(banks *bank.Service, book predictions.Repository, board leaderboard.Repository, prices market.PriceSource, notifier notification.Notifier, logger *slog.Logger, symbol string) *Service {
	return &Service{
		banks:    banks,
		book:     book,
		board:    board,
		prices:   prices,
		notifier: notifier,
		logger:   logger,
		symbol:   symbol,
	}
}

// Result is one settled prediction.
type Result struct {
	AccountID string            `json:"account_id"`
	Value     float64           `json:"value"`
	Method    string            `json:"method"`
	Rank      int               `json:"rank"`
	Prize     int64             `json:"prize"`
	Award     leaderboard.Award `json:"award,omitempty"`
}

// Report summarizes one settlement cycle.
type Report struct {
	ID             string    `json:"id"`
	Symbol         string    `json:"symbol"`
	ReferencePrice float64   `json:"reference_price"`
	SettledAt      time.Time `json:"settled_at"`
	Results        []Result  `json:"results"`
}

// Settle runs one settlement cycle. If the price lookup fails the cycle
// aborts with market.ErrPriceUnavailable and the book is left untouched for
// the next attempt. Once a price is obtained the book is cleared
// unconditionally, even if individual payouts fail.
func (s *Service) Settle(ctx context.Context) (Report, error) {
	open, err := s.book.Open(ctx)
	if err != nil {
		return Report{}, err
	}

	price, err := s.prices.ClosePrice(ctx, s.symbol)
	if err != nil {
		return Report{}, fmt.Errorf("settle %s: %w", s.symbol, err)
	}

	defer func() {
		if clearErr := s.book.Clear(ctx); clearErr != nil && s.logger != nil {
			s.logger.Error("clear prediction book", "error", clearErr)
		}
	}()

	report := Report{
		ID:             uuid.NewString(),
		Symbol:         s.symbol,
		ReferencePrice: price,
		SettledAt:      time.Now().UTC(),
		Results:        Rank(open, price),
	}

	var payErr error
	for _, result := range report.Results {
		if result.Prize == 0 {
			continue
		}
		if _, err := s.banks.Adjust(ctx, result.AccountID, result.Prize); err != nil {
			if payErr == nil {
				payErr = fmt.Errorf("pay %s: %w", result.AccountID, err)
			}
			continue
		}
		if err := s.board.AddPrize(ctx, result.AccountID, result.Prize, result.Award); err != nil {
			if payErr == nil {
				payErr = fmt.Errorf("record prize for %s: %w", result.AccountID, err)
			}
		}
	}

	if s.notifier != nil {
		s.notify(ctx, report)
	}

	return report, payErr
}

func (s *Service) notify(ctx context.Context, report Report) {
	fields := map[string]string{
		"symbol":      report.Symbol,
		"close_price": fmt.Sprintf("%.2f", report.ReferencePrice),
	}
	for _, result := range report.Results {
		if result.Prize == 0 {
			continue
		}
		key := fmt.Sprintf("rank_%d_%s", result.Rank, result.AccountID)
		fields[key] = fmt.Sprintf("%v (%s) +%d", result.Value, result.Method, result.Prize)
	}
	_ = s.notifier.Send(ctx, notification.Message{
		Kind:        notification.KindSettlement,
		Destination: "predictions",
		Title:       fmt.Sprintf("%s settled at %.2f", report.Symbol, report.ReferencePrice),
		Body:        fmt.Sprintf("%d predictions settled", len(report.Results)),
		Fields:      fields,
	})
}

// Rank orders predictions by absolute distance to the reference price and
// assigns competition ranks: entries at equal distance share a rank, and the
// next distinct distance takes the rank after counting the tie (distances
// 0, 0, 2 rank as 1, 1, 3). Prizes go to ranks one through three; entries
// ranked lower but within the near-miss band of the price earn the flat
// consolation prize.
func Rank(open []predictions.Prediction, price float64) []Result {
	ref := decimal.NewFromFloat(price)
	band := ref.Mul(decimal.NewFromFloat(nearMissBand)).Abs()

	type scored struct {
		predictions.Prediction
		distance decimal.Decimal
	}
	entries := make([]scored, len(open))
	for i, p := range open {
		entries[i] = scored{
			Prediction: p,
			distance:   ref.Sub(decimal.NewFromFloat(p.Value)).Abs(),
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if cmp := entries[i].distance.Cmp(entries[j].distance); cmp != 0 {
			return cmp < 0
		}
		if entries[i].AccountID != entries[j].AccountID {
			return entries[i].AccountID < entries[j].AccountID
		}
		return entries[i].Method < entries[j].Method
	})

	results := make([]Result, len(entries))
	position := 0
	for i, entry := range entries {
		if i == 0 || entries[i].distance.Cmp(entries[i-1].distance) != 0 {
			position = i + 1
		}

		result := Result{
			AccountID: entry.AccountID,
			Value:     entry.Value,
			Method:    entry.Method,
			Rank:      position,
		}
		switch position {
		case 1:
			result.Prize, result.Award = firstPrize, leaderboard.AwardFirst
		case 2:
			result.Prize, result.Award = secondPrize, leaderboard.AwardSecond
		case 3:
			result.Prize, result.Award = thirdPrize, leaderboard.AwardThird
		default:
			if entry.distance.Cmp(band) <= 0 {
				result.Prize, result.Award = nearMissPrize, leaderboard.AwardMayo
			}
		}
		results[i] = result
	}
	return results
}
