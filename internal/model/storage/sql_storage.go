package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	// database/sql drivers
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/utils"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"

// sqliteTimeLayout is fixed width so that text ordering matches time ordering.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

func (d Dialect) driverName() string {
	return string(d)
}

func (d Dialect) placeholders() sq.PlaceholderFormat {
	if d == Postgres {
		return sq.Dollar
	}
	return sq.Question
}

var expenseColumns = []string{
	"id", "user_id", "description", "amount", "category", "spent_on", "spent_at", "created_at",
}

type postgresConfig interface {
	Host() string
	Username() string
	Password() string
	Database() string
}

// SQLStorage keeps users and expenses in a relational database.
type SQLStorage struct {
	db      *sql.DB
	dialect Dialect
	builder sq.StatementBuilderType
}

func NewPostgresStorage(config postgresConfig) (*SQLStorage, error) {
	dsn := fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database())
	return openSQLStorage(Postgres, dsn)
}

func NewSQLiteStorage(path string) (*SQLStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create db directory")
	}
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	s, err := openSQLStorage(SQLite, dsn)
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer
	s.db.SetMaxOpenConns(1)
	return s, nil
}

func openSQLStorage(dialect Dialect, dsn string) (*SQLStorage, error) {
	db, err := sql.Open(dialect.driverName(), dsn)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = runMigrations(dialect, dsn); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("sql storage ready", zap.String("dialect", string(dialect)))
	return &SQLStorage{
		db:      db,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(dialect.placeholders()),
	}, nil
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}

func (s *SQLStorage) timeValue(t time.Time) any {
	if s.dialect == SQLite {
		return t.UTC().Format(sqliteTimeLayout)
	}
	return t.UTC()
}

func (s *SQLStorage) InsertExpense(ctx context.Context, userID int64, draft user.ExpenseDraft) (int64, error) {
	rec, err := draft.Validate()
	if err != nil {
		return 0, errors.Wrap(err, "insert expense")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "insert expense")
	}
	defer rollback(tx)

	if err = s.ensureUser(ctx, tx, userID); err != nil {
		return 0, errors.Wrap(err, "insert expense")
	}

	query := s.builder.Insert("expenses").
		Columns("user_id", "description", "amount", "category", "spent_on", "spent_at", "created_at").
		Values(userID, rec.Description, rec.Amount.StringFixed(2), rec.Category,
			utils.FormatDate(rec.Date), rec.Time, s.timeValue(time.Now())).
		Suffix("RETURNING id")

	var id int64
	if err = query.RunWith(tx).QueryRowContext(ctx).Scan(&id); err != nil {
		return 0, errors.Wrap(err, "insert expense")
	}
	if err = tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "insert expense")
	}
	return id, nil
}

func (s *SQLStorage) ensureUser(ctx context.Context, tx *sql.Tx, userID int64) error {
	var one int
	err := s.builder.Select("1").
		From("users").
		Where(sq.Eq{"id": userID}).
		RunWith(tx).
		QueryRowContext(ctx).
		Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return customerr.NewNotFound("user", userID)
	}
	return err
}

func (s *SQLStorage) ListExpenses(ctx context.Context, userID int64, r DateRange) ([]user.ExpenseRecord, error) {
	query := s.builder.Select(expenseColumns...).
		From("expenses").
		Where(sq.Eq{"user_id": userID})
	if !r.Start.IsZero() {
		query = query.Where(sq.GtOrEq{"spent_on": utils.FormatDate(r.Start)})
	}
	if !r.End.IsZero() {
		query = query.Where(sq.Lt{"spent_on": utils.FormatDate(r.End)})
	}
	query = query.OrderBy("spent_on DESC", "created_at DESC", "id DESC")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}
	defer func() {
		if rowErr := rows.Close(); rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	exps := make([]user.ExpenseRecord, 0)
	for rows.Next() {
		var (
			e       user.ExpenseRecord
			date    dateColumn
			created timeColumn
		)
		err = rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Amount, &e.Category, &date, &e.Time, &created)
		if err != nil {
			return nil, errors.Wrap(err, "get expenses")
		}
		e.Date, e.Created = date.Time, created.Time
		exps = append(exps, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}
	return exps, nil
}

func (s *SQLStorage) DeleteExpense(ctx context.Context, userID, expenseID int64) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, errors.Wrap(err, "delete expense")
	}
	defer rollback(tx)

	var owner int64
	err = s.builder.Select("user_id").
		From("expenses").
		Where(sq.Eq{"id": expenseID}).
		RunWith(tx).
		QueryRowContext(ctx).
		Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "delete expense")
	}
	if owner != userID {
		return false, &customerr.AuthorizationError{UserID: userID, ExpenseID: expenseID}
	}

	res, err := s.builder.Delete("expenses").
		Where(sq.Eq{"id": expenseID, "user_id": userID}).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return false, errors.Wrap(err, "delete expense")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "delete expense")
	}
	if err = tx.Commit(); err != nil {
		return false, errors.Wrap(err, "delete expense")
	}
	return affected > 0, nil
}

func (s *SQLStorage) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	if err := validateUser(username, email); err != nil {
		return 0, errors.Wrap(err, "create user")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "create user")
	}
	defer rollback(tx)

	var taken string
	err = s.builder.Select("username").
		From("users").
		Where(sq.Or{sq.Eq{"username": username}, sq.Eq{"email": email}}).
		Limit(1).
		RunWith(tx).
		QueryRowContext(ctx).
		Scan(&taken)
	switch {
	case err == nil:
		return 0, errors.Wrap(errUserTaken, "create user")
	case !errors.Is(err, sql.ErrNoRows):
		return 0, errors.Wrap(err, "create user")
	}

	var id int64
	err = s.builder.Insert("users").
		Columns("username", "email", "password_hash", "created_at").
		Values(username, email, passwordHash, s.timeValue(time.Now())).
		Suffix("RETURNING id").
		RunWith(tx).
		QueryRowContext(ctx).
		Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "create user")
	}
	if err = tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "create user")
	}
	return id, nil
}

func (s *SQLStorage) GetUserByUsername(ctx context.Context, username string) (user.Record, error) {
	query := s.builder.Select("id", "username", "email", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"username": username})

	var (
		res     user.Record
		created timeColumn
	)
	err := query.RunWith(s.db).QueryRowContext(ctx).
		Scan(&res.ID, &res.Username, &res.Email, &res.PasswordHash, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return user.Record{}, customerr.NewNotFound("user", username)
	}
	if err != nil {
		return user.Record{}, errors.Wrap(err, "get user")
	}
	res.Created = created.Time
	return res, nil
}

func (s *SQLStorage) ListUsers(ctx context.Context) ([]user.Record, error) {
	rows, err := s.builder.Select("id", "username", "email", "password_hash", "created_at").
		From("users").
		OrderBy("username").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	defer func() {
		if rowErr := rows.Close(); rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	users := make([]user.Record, 0)
	for rows.Next() {
		var (
			u       user.Record
			created timeColumn
		)
		if err = rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &created); err != nil {
			return nil, errors.Wrap(err, "list users")
		}
		u.Created = created.Time
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return users, nil
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.Error("error when transaction rollback", zap.Error(err))
	}
}
