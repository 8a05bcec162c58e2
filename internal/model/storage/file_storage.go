package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/utils"
)

type fileUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

type fileExpense struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Time        string          `json:"time,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type fileData struct {
	LastUserID    int64         `json:"last_user_id"`
	LastExpenseID int64         `json:"last_expense_id"`
	Users         []fileUser    `json:"users"`
	Expenses      []fileExpense `json:"expenses"`
}

func (d *fileData) clone() *fileData {
	c := *d
	c.Users = append([]fileUser(nil), d.Users...)
	c.Expenses = append([]fileExpense(nil), d.Expenses...)
	return &c
}

// FileStorage keeps everything in one JSON file. Every write replaces the
// file atomically; the in-memory copy only changes once the write succeeded.
type FileStorage struct {
	mu   sync.RWMutex
	path string
	data *fileData
}

func NewFileStorage(path string) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create data directory")
	}

	data := &fileData{}
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, errors.Wrap(err, "read data file")
	default:
		if err = json.Unmarshal(raw, data); err != nil {
			return nil, errors.Wrap(err, "parse data file")
		}
	}
	return &FileStorage{path: path, data: data}, nil
}

func (s *FileStorage) Close() error {
	return nil
}

func (s *FileStorage) InsertExpense(ctx context.Context, userID int64, draft user.ExpenseDraft) (int64, error) {
	rec, err := draft.Validate()
	if err != nil {
		return 0, errors.Wrap(err, "insert expense")
	}

	var id int64
	err = s.update(ctx, func(d *fileData) error {
		if findUser(d, func(u fileUser) bool { return u.ID == userID }) < 0 {
			return customerr.NewNotFound("user", userID)
		}
		d.LastExpenseID++
		id = d.LastExpenseID
		d.Expenses = append(d.Expenses, fileExpense{
			ID:          id,
			UserID:      userID,
			Description: rec.Description,
			Amount:      rec.Amount,
			Category:    rec.Category,
			Date:        utils.FormatDate(rec.Date),
			Time:        rec.Time,
			CreatedAt:   time.Now().UTC(),
		})
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "insert expense")
	}
	return id, nil
}

func (s *FileStorage) ListExpenses(ctx context.Context, userID int64, r DateRange) ([]user.ExpenseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	exps := make([]user.ExpenseRecord, 0)
	for _, fe := range s.data.Expenses {
		if fe.UserID != userID {
			continue
		}
		date, err := time.Parse(utils.DateLayout, fe.Date)
		if err != nil {
			return nil, errors.Wrapf(err, "get expenses: expense %d", fe.ID)
		}
		if !r.Contains(date) {
			continue
		}
		exps = append(exps, user.ExpenseRecord{
			ID:          fe.ID,
			UserID:      fe.UserID,
			Description: fe.Description,
			Amount:      fe.Amount,
			Category:    fe.Category,
			Date:        date,
			Time:        fe.Time,
			Created:     fe.CreatedAt,
		})
	}
	sortExpenses(exps)
	return exps, nil
}

func (s *FileStorage) DeleteExpense(ctx context.Context, userID, expenseID int64) (bool, error) {
	var deleted bool
	err := s.update(ctx, func(d *fileData) error {
		for i, fe := range d.Expenses {
			if fe.ID != expenseID {
				continue
			}
			if fe.UserID != userID {
				return &customerr.AuthorizationError{UserID: userID, ExpenseID: expenseID}
			}
			d.Expenses = append(d.Expenses[:i], d.Expenses[i+1:]...)
			deleted = true
			return nil
		}
		return errNothingChanged
	})
	if errors.Is(err, errNothingChanged) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "delete expense")
	}
	return deleted, nil
}

func (s *FileStorage) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	if err := validateUser(username, email); err != nil {
		return 0, errors.Wrap(err, "create user")
	}

	var id int64
	err := s.update(ctx, func(d *fileData) error {
		taken := findUser(d, func(u fileUser) bool {
			return u.Username == username || u.Email == email
		})
		if taken >= 0 {
			return errUserTaken
		}
		d.LastUserID++
		id = d.LastUserID
		d.Users = append(d.Users, fileUser{
			ID:           id,
			Username:     username,
			Email:        email,
			PasswordHash: passwordHash,
			CreatedAt:    time.Now().UTC(),
		})
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "create user")
	}
	return id, nil
}

func (s *FileStorage) GetUserByUsername(ctx context.Context, username string) (user.Record, error) {
	if err := ctx.Err(); err != nil {
		return user.Record{}, errors.Wrap(err, "get user")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := findUser(s.data, func(u fileUser) bool { return u.Username == username })
	if i < 0 {
		return user.Record{}, customerr.NewNotFound("user", username)
	}
	return s.data.Users[i].record(), nil
}

func (s *FileStorage) ListUsers(ctx context.Context) ([]user.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]user.Record, 0, len(s.data.Users))
	for _, u := range s.data.Users {
		users = append(users, u.record())
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].Username < users[j].Username
	})
	return users, nil
}

func (u fileUser) record() user.Record {
	return user.Record{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Created:      u.CreatedAt,
	}
}

var errNothingChanged = errors.New("nothing changed")

// update applies fn to a copy of the data and persists it. The copy replaces
// the live data only when fn and the write both succeed.
func (s *FileStorage) update(ctx context.Context, fn func(d *fileData) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

func (s *FileStorage) persist(d *fileData) error {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode data file")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "write data file")
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "write data file")
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "write data file")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "write data file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), s.path), "write data file")
}

func findUser(d *fileData, match func(u fileUser) bool) int {
	for i, u := range d.Users {
		if match(u) {
			return i
		}
	}
	return -1
}
