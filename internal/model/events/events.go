package events

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"max.ks1230/expense-tracker/internal/utils"
)

type Kind string

const (
	Added   Kind = "added"
	Deleted Kind = "deleted"
)

// ExpenseChanged is published after an expense of a user was written.
type ExpenseChanged struct {
	ID        uuid.UUID
	Kind      Kind
	UserID    int64
	ExpenseID int64
	// Date is the calendar date of the expense; zero for deletions.
	Date time.Time
	At   time.Time
}

func NewExpenseChanged(kind Kind, userID, expenseID int64, date time.Time) ExpenseChanged {
	return ExpenseChanged{
		ID:        uuid.New(),
		Kind:      kind,
		UserID:    userID,
		ExpenseID: expenseID,
		Date:      date,
		At:        time.Now().UTC(),
	}
}

func (e ExpenseChanged) Encode() ([]byte, error) {
	fields := map[string]any{
		"id":         e.ID.String(),
		"kind":       string(e.Kind),
		"user_id":    strconv.FormatInt(e.UserID, 10),
		"expense_id": strconv.FormatInt(e.ExpenseID, 10),
		"at":         e.At.UTC().Format(time.RFC3339Nano),
	}
	if !e.Date.IsZero() {
		fields["date"] = utils.FormatDate(e.Date)
	}

	msg, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "encode event")
	}
	raw, err := proto.Marshal(msg)
	return raw, errors.Wrap(err, "encode event")
}

func Decode(raw []byte) (ExpenseChanged, error) {
	var msg structpb.Struct
	if err := proto.Unmarshal(raw, &msg); err != nil {
		return ExpenseChanged{}, errors.Wrap(err, "decode event")
	}
	f := msg.GetFields()

	id, err := uuid.Parse(f["id"].GetStringValue())
	if err != nil {
		return ExpenseChanged{}, errors.Wrap(err, "decode event id")
	}
	ev := ExpenseChanged{
		ID:   id,
		Kind: Kind(f["kind"].GetStringValue()),
	}
	if ev.Kind != Added && ev.Kind != Deleted {
		return ExpenseChanged{}, errors.Errorf("decode event: unknown kind %q", ev.Kind)
	}
	if ev.UserID, err = strconv.ParseInt(f["user_id"].GetStringValue(), 10, 64); err != nil || ev.UserID <= 0 {
		return ExpenseChanged{}, errors.New("decode event: missing user id")
	}
	if ev.ExpenseID, err = strconv.ParseInt(f["expense_id"].GetStringValue(), 10, 64); err != nil {
		return ExpenseChanged{}, errors.Wrap(err, "decode event expense id")
	}

	if at := f["at"].GetStringValue(); at != "" {
		if ev.At, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return ExpenseChanged{}, errors.Wrap(err, "decode event time")
		}
	}
	if date := f["date"].GetStringValue(); date != "" {
		if ev.Date, err = time.Parse(utils.DateLayout, date); err != nil {
			return ExpenseChanged{}, errors.Wrap(err, "decode event date")
		}
	}
	return ev, nil
}
