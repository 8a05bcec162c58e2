package expenses

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/events"
	"max.ks1230/expense-tracker/internal/model/stats"
	"max.ks1230/expense-tracker/internal/model/storage"
)

type expensesStorage interface {
	InsertExpense(ctx context.Context, userID int64, draft user.ExpenseDraft) (int64, error)
	ListExpenses(ctx context.Context, userID int64, r storage.DateRange) ([]user.ExpenseRecord, error)
	DeleteExpense(ctx context.Context, userID, expenseID int64) (bool, error)
}

type StatsComputer interface {
	Compute(ctx context.Context, userID int64, period stats.Period, ref time.Time) (*stats.Stats, error)
}

type overviewer interface {
	Overview(ctx context.Context, userID int64, ref time.Time) (*stats.Overview, error)
}

type EventPublisher interface {
	Publish(ev events.ExpenseChanged) error
}

type Invalidator interface {
	Invalidate(ctx context.Context, userID int64) error
}

// Service is the entry point for everything a user does with expenses.
// Publisher and invalidator are optional.
type Service struct {
	storage     expensesStorage
	stats       StatsComputer
	overview    overviewer
	publisher   EventPublisher
	invalidator Invalidator
}

func NewService(storage expensesStorage, stats StatsComputer, overview overviewer, publisher EventPublisher, invalidator Invalidator) *Service {
	return &Service{
		storage:     storage,
		stats:       stats,
		overview:    overview,
		publisher:   publisher,
		invalidator: invalidator,
	}
}

func (s *Service) AddExpense(ctx context.Context, userID int64, draft user.ExpenseDraft) (id int64, err error) {
	logger.Info("AddExpense - start", zap.Int64("userID", userID), zap.String("category", draft.Category))
	defer logger.Info("AddExpense - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "addExpense")
	defer finish(span, "add", time.Now(), &err)

	rec, err := draft.Validate()
	if err != nil {
		return 0, errors.Wrap(err, "add expense")
	}
	id, err = s.storage.InsertExpense(ctx, userID, draft)
	if err != nil {
		return 0, errors.Wrap(err, "add expense")
	}

	s.changed(ctx, events.NewExpenseChanged(events.Added, userID, id, rec.Date))
	return id, nil
}

func (s *Service) DeleteExpense(ctx context.Context, userID, expenseID int64) (deleted bool, err error) {
	logger.Info("DeleteExpense - start", zap.Int64("userID", userID), zap.Int64("expenseID", expenseID))
	defer logger.Info("DeleteExpense - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "deleteExpense")
	defer finish(span, "delete", time.Now(), &err)

	deleted, err = s.storage.DeleteExpense(ctx, userID, expenseID)
	if customerr.IsAuthorization(err) {
		logger.Warn("attempt to delete expense of another user",
			zap.Int64("userID", userID),
			zap.Int64("expenseID", expenseID))
	}
	if err != nil {
		return false, errors.Wrap(err, "delete expense")
	}

	if deleted {
		s.changed(ctx, events.NewExpenseChanged(events.Deleted, userID, expenseID, time.Time{}))
	}
	return deleted, nil
}

// ListExpenses returns the user's expenses of the period around ref, newest first.
func (s *Service) ListExpenses(ctx context.Context, userID int64, period stats.Period, ref time.Time) (exps []user.ExpenseRecord, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "listExpenses")
	defer finish(span, "list", time.Now(), &err)

	r, err := stats.Resolve(period, ref)
	if err != nil {
		return nil, errors.Wrap(err, "list expenses")
	}
	exps, err = s.storage.ListExpenses(ctx, userID, r)
	return exps, errors.Wrap(err, "list expenses")
}

func (s *Service) Stats(ctx context.Context, userID int64, period stats.Period, ref time.Time) (res *stats.Stats, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "stats")
	defer finish(span, "stats", time.Now(), &err)

	res, err = s.stats.Compute(ctx, userID, period, ref)
	return res, errors.Wrap(err, "stats")
}

func (s *Service) Overview(ctx context.Context, userID int64, ref time.Time) (res *stats.Overview, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "overview")
	defer finish(span, "overview", time.Now(), &err)

	res, err = s.overview.Overview(ctx, userID, ref)
	return res, errors.Wrap(err, "overview")
}

// changed runs after a write went through, so failures here are logged only.
func (s *Service) changed(ctx context.Context, ev events.ExpenseChanged) {
	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, ev.UserID); err != nil {
			logger.Error("failed to invalidate stats", zap.Int64("userID", ev.UserID), zap.Error(err))
		}
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ev); err != nil {
			counterEventsFailed.Inc()
			logger.Error("failed to publish event",
				zap.String("id", ev.ID.String()),
				zap.String("kind", string(ev.Kind)),
				zap.Error(err))
		}
	}
}

func finish(span opentracing.Span, operation string, start time.Time, err *error) {
	failed := *err != nil
	observeOperation(operation, time.Since(start), failed)
	if failed {
		ext.Error.Set(span, true)
	}
	span.Finish()
}
