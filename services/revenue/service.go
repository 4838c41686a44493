package revenue

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"stayflow/models"
	"stayflow/utils"

	"go.uber.org/zap"
)

const (
	occupancyCacheKey = "revenue:occupancy"
	occupancyCacheTTL = 5 * time.Minute
)

// CurrentOccupancy computes today's occupancy as active bookings over total
// rooms, cached in Redis for a short window since the pricing slider hits
// this on every drag.
func (s *DefaultRevenueService) CurrentOccupancy() (float64, error) {
	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if raw, err := s.Cache.Get(ctx, occupancyCacheKey).Result(); err == nil {
			if occ, err := strconv.ParseFloat(raw, 64); err == nil {
				return occ, nil
			}
		}
	}

	occ, err := s.computeOccupancy(time.Now().Format(models.DateLayout))
	if err != nil {
		return 0, err
	}

	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.Cache.Set(ctx, occupancyCacheKey, strconv.FormatFloat(occ, 'f', -1, 64), occupancyCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("revenue: failed to cache occupancy", zap.Error(err))
		}
	}
	return occ, nil
}

func (s *DefaultRevenueService) computeOccupancy(date string) (float64, error) {
	total, err := s.Rooms.CountRooms()
	if err != nil {
		return 0, fmt.Errorf("revenue: failed to count rooms: %w", err)
	}
	if total == 0 {
		return 0, nil
	}
	active, err := s.Bookings.CountActiveOnDate(date)
	if err != nil {
		return 0, fmt.Errorf("revenue: failed to count active bookings: %w", err)
	}
	return float64(active) / float64(total) * 100, nil
}

// SummaryForDate aggregates transactions and bookings for one date.
func (s *DefaultRevenueService) SummaryForDate(date string) (*models.RevenueSummary, error) {
	if _, err := models.ParseDate(date); err != nil {
		return nil, fmt.Errorf("revenue: invalid date %q", date)
	}

	paid, err := s.Transactions.SumByStatusOnDate(models.TransactionPaid, date)
	if err != nil {
		return nil, err
	}
	pending, err := s.Transactions.SumByStatusOnDate(models.TransactionPending, date)
	if err != nil {
		return nil, err
	}
	occ, err := s.computeOccupancy(date)
	if err != nil {
		return nil, err
	}

	byType := map[string]int{}
	bookings, err := s.Bookings.GetAll()
	if err != nil {
		return nil, fmt.Errorf("revenue: failed to load bookings: %w", err)
	}
	for _, b := range bookings {
		if b.CheckIn <= date && date < b.CheckOut {
			byType[b.Type]++
		}
	}

	return &models.RevenueSummary{
		Date:           date,
		PaidTotal:      paid,
		PendingTotal:   pending,
		OccupancyPct:   occ,
		BookingsByType: byType,
		GeneratedAt:    time.Now(),
	}, nil
}

// RollupDate persists the summary for a date. Runs nightly for the previous
// day via the job worker.
func (s *DefaultRevenueService) RollupDate(date string) error {
	summary, err := s.SummaryForDate(date)
	if err != nil {
		return err
	}
	if err := s.Summaries.UpsertSummary(summary); err != nil {
		return fmt.Errorf("revenue: failed to persist summary for %s: %w", date, err)
	}
	return nil
}

func (s *DefaultRevenueService) Range(from, to string) ([]models.RevenueSummary, error) {
	if _, err := models.ParseDate(from); err != nil {
		return nil, fmt.Errorf("revenue: invalid range start %q", from)
	}
	if _, err := models.ParseDate(to); err != nil {
		return nil, fmt.Errorf("revenue: invalid range end %q", to)
	}
	return s.Summaries.GetSummaries(from, to)
}
