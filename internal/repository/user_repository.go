package repository

import (
	"context"
	"errors"

	"quiz-assignment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.User
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, cur.Err()
}

// AppendPendingQuiz pushes a pending entry onto the user's list in a
// single conditional update: the filter excludes users that already
// hold a pending entry for the same quiz, so concurrent scheduler runs
// cannot double-insert. Returns true when the entry was written.
func (r *UserRepository) AppendPendingQuiz(ctx context.Context, userID string, entry models.PendingQuiz) (bool, error) {
	filter := bson.M{
		"_id":                     userID,
		"pending_quizzes.quiz_id": bson.M{"$ne": entry.QuizID},
	}
	res, err := r.Col.UpdateOne(ctx, filter, bson.M{"$push": bson.M{"pending_quizzes": entry}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// RecordResult removes the pending entry for the quiz and appends the
// completed result in one update.
func (r *UserRepository) RecordResult(ctx context.Context, userID string, result models.QuizResult) error {
	update := bson.M{
		"$pull": bson.M{"pending_quizzes": bson.M{"quiz_id": result.QuizID}},
		"$push": bson.M{"quiz_results": result},
	}
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordSkip removes the pending entry for the quiz and appends a skip
// marker so the automatic scheduler never re-assigns it.
func (r *UserRepository) RecordSkip(ctx context.Context, userID string, skip models.SkippedQuiz) error {
	update := bson.M{
		"$pull": bson.M{"pending_quizzes": bson.M{"quiz_id": skip.QuizID}},
		"$push": bson.M{"skipped_quizzes": skip},
	}
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
