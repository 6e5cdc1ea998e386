package portfolio

import (
	"context"
	"sync"

	"portfolio-backend/internal/market"
	"portfolio-backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EnrichedHolding is a holding projected for the portfolio response, with the
// latest fetched price attached. When the quote fetch fails, LatestPrice
// carries the holding's own buy price; the field does not distinguish live
// from fallback values.
type EnrichedHolding struct {
	ID          uint    `json:"id"`
	Symbol      string  `json:"symbol"`
	Quantity    int     `json:"quantity"`
	BuyPrice    float64 `json:"buy_price"`
	LatestPrice float64 `json:"latest_price"`
}

// Service encapsulates holdings operations and their price enrichment.
type Service struct {
	DB     *gorm.DB
	Quotes market.Quoter
}

// ListEnriched loads the user's holdings in insertion order and fetches the
// previous close for each one. Fetches run concurrently, one goroutine per
// holding writing to its own slot. A failed fetch falls back to the buy price
// and never drops the holding or fails the listing; only a store error is
// returned.
func (s *Service) ListEnriched(ctx context.Context, userID uint) ([]EnrichedHolding, error) {
	var holdings []models.Holding
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&holdings).Error; err != nil {
		return nil, err
	}

	result := make([]EnrichedHolding, len(holdings))
	var wg sync.WaitGroup
	for i, h := range holdings {
		result[i] = EnrichedHolding{
			ID:          h.ID,
			Symbol:      h.StockSymbol,
			Quantity:    h.Quantity,
			BuyPrice:    h.BuyPrice,
			LatestPrice: h.BuyPrice,
		}
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			q, err := s.Quotes.PrevClose(ctx, symbol)
			if err != nil {
				log.Warn().Err(err).Str("symbol", symbol).Msg("quote fetch failed, using buy price")
				return
			}
			result[i].LatestPrice = q.Price
		}(i, h.StockSymbol)
	}
	wg.Wait()

	return result, nil
}

// Add validates and persists a new holding. Ownership is always the
// authenticated user, never client-supplied. Value rules run after the
// handler's field-presence checks: symbol non-empty once normalized, then
// shares, then price, each strictly positive.
func (s *Service) Add(ctx context.Context, userID uint, symbol string, shares int, avgPrice float64) (*models.Holding, error) {
	symbol = market.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, ErrSymbolEmpty
	}
	if shares <= 0 {
		return nil, ErrSharesNotPositive
	}
	if avgPrice <= 0 {
		return nil, ErrPriceNotPositive
	}

	holding := &models.Holding{
		UserID:      userID,
		StockSymbol: symbol,
		Quantity:    shares,
		BuyPrice:    avgPrice,
	}
	if err := s.DB.WithContext(ctx).Create(holding).Error; err != nil {
		return nil, err
	}
	return holding, nil
}

// Delete removes a holding. Existence is checked before ownership: a missing
// id is ErrNotFound for any caller, an existing id owned by someone else is
// ErrNotOwner.
func (s *Service) Delete(ctx context.Context, userID, holdingID uint) error {
	var holding models.Holding
	if err := s.DB.WithContext(ctx).First(&holding, holdingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if holding.UserID != userID {
		return ErrNotOwner
	}
	return s.DB.WithContext(ctx).Delete(&holding).Error
}
