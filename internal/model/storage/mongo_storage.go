package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/utils"
)

const (
	usersCollection    = "users"
	expensesCollection = "expenses"
	countersCollection = "counters"
)

type mongoConfig interface {
	URI() string
	Database() string
}

type userDoc struct {
	ID           int64     `bson:"_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

// expenseDoc keeps the date as YYYY-MM-DD so range filters compare as strings
// and the amount as a decimal string so nothing passes through float64.
type expenseDoc struct {
	ID          int64     `bson:"_id"`
	UserID      int64     `bson:"user_id"`
	Description string    `bson:"description"`
	Amount      string    `bson:"amount"`
	Category    string    `bson:"category"`
	Date        string    `bson:"date"`
	Time        string    `bson:"time,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
}

type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// MongoStorage keeps users and expenses as documents.
type MongoStorage struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStorage(ctx context.Context, config mongoConfig) (*MongoStorage, error) {
	if config.URI() == "" {
		return nil, errors.New("mongo uri is not set")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(config.URI()).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to mongo")
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "cannot connect to mongo")
	}

	s := &MongoStorage{client: client, db: client.Database(config.Database())}
	if err = s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("mongo storage ready", zap.String("database", config.Database()))
	return s, nil
}

func (s *MongoStorage) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return errors.Wrap(err, "create user indexes")
	}

	_, err = s.db.Collection(expensesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "date", Value: -1},
			{Key: "created_at", Value: -1},
		},
	})
	return errors.Wrap(err, "create expense indexes")
}

func (s *MongoStorage) Close() error {
	return s.client.Disconnect(context.Background())
}

func (s *MongoStorage) nextID(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c counterDoc
	err := s.db.Collection(countersCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": name}, bson.M{"$inc": bson.M{"seq": int64(1)}}, opts).
		Decode(&c)
	if err != nil {
		return 0, errors.Wrap(err, "next id")
	}
	return c.Seq, nil
}

func (s *MongoStorage) InsertExpense(ctx context.Context, userID int64, draft user.ExpenseDraft) (int64, error) {
	rec, err := draft.Validate()
	if err != nil {
		return 0, errors.Wrap(err, "insert expense")
	}

	err = s.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": userID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, errors.Wrap(customerr.NewNotFound("user", userID), "insert expense")
	}
	if err != nil {
		return 0, errors.Wrap(err, "insert expense")
	}

	id, err := s.nextID(ctx, expensesCollection)
	if err != nil {
		return 0, errors.Wrap(err, "insert expense")
	}

	_, err = s.db.Collection(expensesCollection).InsertOne(ctx, expenseDoc{
		ID:          id,
		UserID:      userID,
		Description: rec.Description,
		Amount:      rec.Amount.StringFixed(2),
		Category:    rec.Category,
		Date:        utils.FormatDate(rec.Date),
		Time:        rec.Time,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return 0, errors.Wrap(err, "insert expense")
	}
	return id, nil
}

func (s *MongoStorage) ListExpenses(ctx context.Context, userID int64, r DateRange) ([]user.ExpenseRecord, error) {
	filter := bson.M{"user_id": userID}
	dateFilter := bson.M{}
	if !r.Start.IsZero() {
		dateFilter["$gte"] = utils.FormatDate(r.Start)
	}
	if !r.End.IsZero() {
		dateFilter["$lt"] = utils.FormatDate(r.End)
	}
	if len(dateFilter) > 0 {
		filter["date"] = dateFilter
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := s.db.Collection(expensesCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}

	var docs []expenseDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}

	exps := make([]user.ExpenseRecord, 0, len(docs))
	for _, doc := range docs {
		rec, err := doc.record()
		if err != nil {
			return nil, errors.Wrap(err, "get expenses")
		}
		exps = append(exps, rec)
	}
	return exps, nil
}

func (doc expenseDoc) record() (user.ExpenseRecord, error) {
	amount, err := decimal.NewFromString(doc.Amount)
	if err != nil {
		return user.ExpenseRecord{}, errors.Wrapf(err, "expense %d amount", doc.ID)
	}
	date, err := time.Parse(utils.DateLayout, doc.Date)
	if err != nil {
		return user.ExpenseRecord{}, errors.Wrapf(err, "expense %d date", doc.ID)
	}
	return user.ExpenseRecord{
		ID:          doc.ID,
		UserID:      doc.UserID,
		Description: doc.Description,
		Amount:      amount,
		Category:    doc.Category,
		Date:        date,
		Time:        doc.Time,
		Created:     doc.CreatedAt.UTC(),
	}, nil
}

func (s *MongoStorage) DeleteExpense(ctx context.Context, userID, expenseID int64) (bool, error) {
	var doc expenseDoc
	err := s.db.Collection(expensesCollection).FindOne(ctx, bson.M{"_id": expenseID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "delete expense")
	}
	if doc.UserID != userID {
		return false, &customerr.AuthorizationError{UserID: userID, ExpenseID: expenseID}
	}

	// the owner is part of the filter so a concurrent reassignment cannot slip through
	res, err := s.db.Collection(expensesCollection).DeleteOne(ctx, bson.M{"_id": expenseID, "user_id": userID})
	if err != nil {
		return false, errors.Wrap(err, "delete expense")
	}
	return res.DeletedCount > 0, nil
}

func (s *MongoStorage) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	if err := validateUser(username, email); err != nil {
		return 0, errors.Wrap(err, "create user")
	}

	filter := bson.M{"$or": bson.A{bson.M{"username": username}, bson.M{"email": email}}}
	err := s.db.Collection(usersCollection).FindOne(ctx, filter).Err()
	if err == nil {
		return 0, errors.Wrap(errUserTaken, "create user")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, errors.Wrap(err, "create user")
	}

	id, err := s.nextID(ctx, usersCollection)
	if err != nil {
		return 0, errors.Wrap(err, "create user")
	}

	_, err = s.db.Collection(usersCollection).InsertOne(ctx, userDoc{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	})
	if mongo.IsDuplicateKeyError(err) {
		return 0, errors.Wrap(errUserTaken, "create user")
	}
	if err != nil {
		return 0, errors.Wrap(err, "create user")
	}
	return id, nil
}

func (s *MongoStorage) GetUserByUsername(ctx context.Context, username string) (user.Record, error) {
	var doc userDoc
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user.Record{}, customerr.NewNotFound("user", username)
	}
	if err != nil {
		return user.Record{}, errors.Wrap(err, "get user")
	}
	return doc.record(), nil
}

func (s *MongoStorage) ListUsers(ctx context.Context) ([]user.Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "username", Value: 1}})
	cursor, err := s.db.Collection(usersCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	var docs []userDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	users := make([]user.Record, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.record())
	}
	return users, nil
}

func (doc userDoc) record() user.Record {
	return user.Record{
		ID:           doc.ID,
		Username:     doc.Username,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Created:      doc.CreatedAt.UTC(),
	}
}
