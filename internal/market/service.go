package market

import (
	"context"

	"github.com/rs/zerolog/log"
)

// PopularSymbols is the fixed list served by the popular-stocks endpoint.
var PopularSymbols = []string{"AAPL", "GOOGL", "MSFT", "TSLA", "AMZN"}

const historyWindowDays = 30

// Service exposes the multi-symbol quote operations. Its omission policy for
// failed symbols is deliberately different from the portfolio enrichment
// fallback and must stay separate.
type Service struct {
	Quotes Quoter
}

// Popular fetches the previous close for each symbol in PopularSymbols.
// Symbols whose fetch fails are dropped from the response, not substituted;
// output order follows the fixed list.
func (s *Service) Popular(ctx context.Context) []Quote {
	results := make([]Quote, 0, len(PopularSymbols))
	for _, symbol := range PopularSymbols {
		q, err := s.Quotes.PrevClose(ctx, symbol)
		if err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("popular quote fetch failed")
			continue
		}
		results = append(results, q)
	}
	return results
}

// Search fetches one quote. Fetch failure and an empty upstream result fold
// into the same ErrNoData so the handler answers 404 for both.
func (s *Service) Search(ctx context.Context, symbol string) (Quote, error) {
	q, err := s.Quotes.PrevClose(ctx, symbol)
	if err != nil {
		if err != ErrNoData {
			log.Warn().Err(err).Str("symbol", symbol).Msg("search quote fetch failed")
		}
		return Quote{}, ErrNoData
	}
	return q, nil
}

// HistoryBars fetches the 30-day daily history for a symbol. Failures and
// empty windows both become ErrNoData.
func (s *Service) HistoryBars(ctx context.Context, symbol string) ([]Bar, error) {
	bars, err := s.Quotes.History(ctx, symbol, historyWindowDays)
	if err != nil {
		if err != ErrNoData {
			log.Warn().Err(err).Str("symbol", symbol).Msg("history fetch failed")
		}
		return nil, ErrNoData
	}
	return bars, nil
}
