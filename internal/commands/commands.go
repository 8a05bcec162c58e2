package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/stats"
	"max.ks1230/expense-tracker/internal/utils"
)

const (
	adduserCommand  = "adduser"
	addCommand      = "add"
	listCommand     = "list"
	deleteCommand   = "delete"
	statsCommand    = "stats"
	overviewCommand = "overview"
	reportCommand   = "report"
)

var ErrUsage = errors.New("incorrect command usage")

type userStorage interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (user.Record, error)
	ListUsers(ctx context.Context) ([]user.Record, error)
}

type expenseService interface {
	AddExpense(ctx context.Context, userID int64, draft user.ExpenseDraft) (int64, error)
	DeleteExpense(ctx context.Context, userID, expenseID int64) (bool, error)
	ListExpenses(ctx context.Context, userID int64, period stats.Period, ref time.Time) ([]user.ExpenseRecord, error)
	Stats(ctx context.Context, userID int64, period stats.Period, ref time.Time) (*stats.Stats, error)
	Overview(ctx context.Context, userID int64, ref time.Time) (*stats.Overview, error)
}

type handler func(ctx context.Context, args []string) error

// Runner executes one operator command and writes its output.
type Runner struct {
	handlers map[string]handler
	users    userStorage
	service  expenseService
	in       *bufio.Reader
	out      io.Writer
	now      func() time.Time
}

func NewRunner(users userStorage, service expenseService, in io.Reader, out io.Writer, loc *time.Location) *Runner {
	r := &Runner{
		users:   users,
		service: service,
		in:      bufio.NewReader(in),
		out:     out,
		now:     func() time.Time { return time.Now().In(loc) },
	}
	r.handlers = map[string]handler{
		adduserCommand:  r.handleAddUser,
		addCommand:      r.handleAdd,
		listCommand:     r.handleList,
		deleteCommand:   r.handleDelete,
		statsCommand:    r.handleStats,
		overviewCommand: r.handleOverview,
		reportCommand:   r.handleReport,
	}
	return r
}

func (r *Runner) Commands() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Runner) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.Wrapf(ErrUsage, "expected one of %s", strings.Join(r.Commands(), ", "))
	}
	cmd, ok := r.handlers[args[0]]
	if !ok {
		return errors.Wrapf(ErrUsage, "unknown command %q", args[0])
	}

	logger.Debug("run command", zap.String("command", args[0]))
	return cmd(ctx, args[1:])
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Wrapf(ErrUsage, "%s: %v", fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return errors.Wrapf(ErrUsage, "%s: unexpected argument %q", fs.Name(), fs.Arg(0))
	}
	return nil
}

func required(fs *flag.FlagSet, values map[string]string) error {
	for name, value := range values {
		if strings.TrimSpace(value) == "" {
			return errors.Wrapf(ErrUsage, "%s: -%s is required", fs.Name(), name)
		}
	}
	return nil
}

func (r *Runner) lookup(ctx context.Context, username string) (user.Record, error) {
	rec, err := r.users.GetUserByUsername(ctx, username)
	return rec, errors.Wrap(err, "find user")
}

func (r *Runner) handleAddUser(ctx context.Context, args []string) error {
	fs := newFlagSet(adduserCommand)
	username := fs.String("username", "", "login name")
	email := fs.String("email", "", "email address")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required(fs, map[string]string{"username": *username, "email": *email}); err != nil {
		return err
	}

	password, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "read password")
	}
	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		return errors.Wrap(ErrUsage, "adduser: password is read from stdin and must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	id, err := r.users.CreateUser(ctx, strings.TrimSpace(*username), strings.TrimSpace(*email), string(hash))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.out, "created user %s (ID: %d)\n", *username, id)
	return err
}

func (r *Runner) handleAdd(ctx context.Context, args []string) error {
	fs := newFlagSet(addCommand)
	username := fs.String("user", "", "owner username")
	amount := fs.String("amount", "", "amount, e.g. 12.50")
	category := fs.String("category", "", "category")
	date := fs.String("date", "", "date YYYY-MM-DD, today by default")
	clock := fs.String("time", "", "optional time HH:MM")
	description := fs.String("desc", "", "optional description")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required(fs, map[string]string{"user": *username, "amount": *amount}); err != nil {
		return err
	}

	value, err := decimal.NewFromString(strings.TrimSpace(*amount))
	if err != nil {
		return errors.Wrapf(ErrUsage, "add: amount %q is not a number", *amount)
	}
	if *date == "" {
		*date = utils.FormatDate(r.now())
	}

	rec, err := r.lookup(ctx, *username)
	if err != nil {
		return err
	}
	id, err := r.service.AddExpense(ctx, rec.ID, user.ExpenseDraft{
		Description: *description,
		Amount:      value,
		Category:    *category,
		Date:        *date,
		Time:        *clock,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.out, "added expense %d\n", id)
	return err
}

func (r *Runner) handleList(ctx context.Context, args []string) error {
	fs := newFlagSet(listCommand)
	username := fs.String("user", "", "owner username")
	period := fs.String("period", string(stats.All), "all, monthly, weekly or daily")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required(fs, map[string]string{"user": *username}); err != nil {
		return err
	}

	rec, err := r.lookup(ctx, *username)
	if err != nil {
		return err
	}
	exps, err := r.service.ListExpenses(ctx, rec.ID, stats.Period(*period), r.now())
	if err != nil {
		return err
	}
	if len(exps) == 0 {
		_, err = fmt.Fprintln(r.out, noExpensesMessage)
		return err
	}
	return writeExpenses(r.out, exps)
}

func (r *Runner) handleDelete(ctx context.Context, args []string) error {
	fs := newFlagSet(deleteCommand)
	username := fs.String("user", "", "owner username")
	id := fs.Int64("id", 0, "expense id")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required(fs, map[string]string{"user": *username}); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.Wrap(ErrUsage, "delete: -id is required")
	}

	rec, err := r.lookup(ctx, *username)
	if err != nil {
		return err
	}
	deleted, err := r.service.DeleteExpense(ctx, rec.ID, *id)
	if err != nil {
		return err
	}
	if !deleted {
		_, err = fmt.Fprintf(r.out, "expense %d not found\n", *id)
		return err
	}
	_, err = fmt.Fprintf(r.out, "deleted expense %d\n", *id)
	return err
}

func (r *Runner) handleStats(ctx context.Context, args []string) error {
	fs := newFlagSet(statsCommand)
	username := fs.String("user", "", "owner username")
	period := fs.String("period", string(stats.Monthly), "all, monthly, weekly or daily")
	asJSON := fs.Bool("json", false, "print raw statistics as JSON")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required(fs, map[string]string{"user": *username}); err != nil {
		return err
	}

	rec, err := r.lookup(ctx, *username)
	if err != nil {
		return err
	}
	res, err := r.service.Stats(ctx, rec.ID, stats.Period(*period), r.now())
	if err != nil {
		return err
	}
	if *asJSON {
		return writeJSON(r.out, res)
	}
	return writeStats(r.out, res)
}

func (r *Runner) handleOverview(ctx context.Context, args []string) error {
	fs := newFlagSet(overviewCommand)
	username := fs.String("user", "", "owner username")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required(fs, map[string]string{"user": *username}); err != nil {
		return err
	}

	rec, err := r.lookup(ctx, *username)
	if err != nil {
		return err
	}
	res, err := r.service.Overview(ctx, rec.ID, r.now())
	if err != nil {
		return err
	}
	return writeOverview(r.out, res)
}

func (r *Runner) handleReport(ctx context.Context, args []string) error {
	fs := newFlagSet(reportCommand)
	username := fs.String("user", "", "report a single user")
	if err := parse(fs, args); err != nil {
		return err
	}

	var users []user.Record
	if *username != "" {
		rec, err := r.lookup(ctx, *username)
		if err != nil {
			return err
		}
		users = []user.Record{rec}
	} else {
		var err error
		if users, err = r.users.ListUsers(ctx); err != nil {
			return errors.Wrap(err, "report")
		}
	}
	if len(users) == 0 {
		_, err := fmt.Fprintln(r.out, noUsersMessage)
		return err
	}

	var (
		count int
		total = decimal.Zero
	)
	for _, u := range users {
		exps, err := r.service.ListExpenses(ctx, u.ID, stats.All, r.now())
		if err != nil {
			return err
		}
		userTotal, err := writeUserReport(r.out, u, exps)
		if err != nil {
			return err
		}
		count += len(exps)
		total = total.Add(userTotal)
	}
	if *username != "" {
		return nil
	}
	return writeSummary(r.out, len(users), count, total)
}
