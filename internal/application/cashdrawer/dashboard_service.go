package cashdrawer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/posdesk/backend/internal/domain/cashdrawer"
)

// SummaryCache stores serialized dashboard snapshots with a TTL.
// Implemented by Redis in production and an in-memory store otherwise.
type SummaryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// DefaultSummaryTTL keeps dashboard figures at most this stale
const DefaultSummaryTTL = 30 * time.Second

const summaryKeyPrefix = "cashdrawer:summary:"

// DashboardService serves read-side queries for the back-office screens
type DashboardService struct {
	sessions   cashdrawer.SessionRepository
	sales      cashdrawer.SalesReader
	reconciler *cashdrawer.Reconciler
	cache      SummaryCache
	summaryTTL time.Duration
	logger     *zap.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	sessions cashdrawer.SessionRepository,
	sales cashdrawer.SalesReader,
	reconciler *cashdrawer.Reconciler,
	cache SummaryCache,
	summaryTTL time.Duration,
	logger *zap.Logger,
) *DashboardService {
	if summaryTTL <= 0 {
		summaryTTL = DefaultSummaryTTL
	}
	return &DashboardService{
		sessions:   sessions,
		sales:      sales,
		reconciler: reconciler,
		cache:      cache,
		summaryTTL: summaryTTL,
		logger:     logger,
	}
}

// TodaysSummary returns today's sales totals, the per-method breakdown,
// the estimated cash on hand and a 7-day sales series. Results are
// cached briefly; cache failures degrade to a fresh computation.
func (s *DashboardService) TodaysSummary(ctx context.Context) (*SummaryResponse, error) {
	now := time.Now()
	key := summaryKeyPrefix + now.Format("2006-01-02")

	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("summary cache read failed", zap.Error(err))
	} else if ok {
		var cached SummaryResponse
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		s.logger.Warn("discarding malformed cached summary", zap.String("key", key))
	}

	summary, err := s.computeSummary(ctx, now)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(summary); err == nil {
		if err := s.cache.Set(ctx, key, data, s.summaryTTL); err != nil {
			s.logger.Warn("summary cache write failed", zap.Error(err))
		}
	}

	return summary, nil
}

func (s *DashboardService) computeSummary(ctx context.Context, now time.Time) (*SummaryResponse, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today := cashdrawer.SessionWindow(startOfDay, now)

	byMethod, err := s.sales.TotalsByMethod(ctx, today)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	methods := make(map[string]decimal.Decimal, len(byMethod))
	for method, amount := range byMethod {
		methods[method.String()] = amount.Amount()
		total = total.Add(amount.Amount())
	}

	onHand, err := s.reconciler.CashOnHand(ctx, now)
	if err != nil {
		return nil, err
	}

	seriesFrom := startOfDay.AddDate(0, 0, -6)
	daily, err := s.sales.DailyTotals(ctx, seriesFrom, now)
	if err != nil {
		return nil, err
	}

	points := make([]DailySalesPoint, len(daily))
	for i, d := range daily {
		points[i] = DailySalesPoint{
			Date:  d.Date.Format("2006-01-02"),
			Total: d.Total.Amount(),
		}
	}

	return &SummaryResponse{
		Date:                now.Format("2006-01-02"),
		TotalSales:          total,
		SalesByMethod:       methods,
		EstimatedCashOnHand: onHand.Amount(),
		DailySales:          points,
	}, nil
}

// History lists past sessions, newest first. Filters are conjunctive;
// the end date is inclusive through the end of that day.
func (s *DashboardService) History(ctx context.Context, filter HistoryFilter) ([]SessionResponse, error) {
	domainFilter := cashdrawer.SessionFilter{
		FromDate:         filter.FromDate,
		OperatorID:       filter.OperatorID,
		VarianceOnly:     filter.VarianceOnly,
		StockControlDone: filter.StockControlDone,
		Limit:            filter.Limit,
	}

	if filter.ToDate != nil {
		end := filter.ToDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
		domainFilter.ToDate = &end
	}

	if domainFilter.Limit <= 0 || domainFilter.Limit > cashdrawer.DefaultHistoryLimit {
		domainFilter.Limit = cashdrawer.DefaultHistoryLimit
	}

	sessions, err := s.sessions.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = *toSessionResponse(session)
	}

	return responses, nil
}
