package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReminderBoxRepo interface {
	CreateReminder(ctx context.Context, msg *ReminderBoxModel) error
	GetReminderList(ctx context.Context, userID uint64, limit, offset int64) ([]*ReminderBoxModel, error)
	MarkAsRead(ctx context.Context, userID uint64, msgID string) error
	MarkAllAsRead(ctx context.Context, userID uint64) error
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
}

type reminderBoxRepoImpl struct {
	col *mongo.Collection
}

func NewReminderBoxRepo(db *mongo.Database) ReminderBoxRepo {
	return &reminderBoxRepoImpl{
		col: db.Collection("reminder_box"),
	}
}

// CreateReminder 插入新提醒
func (s *reminderBoxRepoImpl) CreateReminder(ctx context.Context, msg *ReminderBoxModel) error {
	_, err := s.col.InsertOne(ctx, msg)
	return err
}

// GetReminderList 分页获取用户的提醒列表 (按时间倒序)
func (s *reminderBoxRepoImpl) GetReminderList(ctx context.Context, userID uint64, limit, offset int64) ([]*ReminderBoxModel, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*ReminderBoxModel
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// MarkAsRead 标记单条提醒为已读
func (s *reminderBoxRepoImpl) MarkAsRead(ctx context.Context, userID uint64, msgID string) error {
	objectID, err := primitive.ObjectIDFromHex(msgID)
	if err != nil {
		return mongo.ErrInvalidIndexValue
	}
	filter := bson.M{"_id": objectID, "user_id": userID}
	update := bson.M{"$set": bson.M{"is_read": true}}
	result, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// MarkAllAsRead 将用户所有未读提醒标记为已读
func (s *reminderBoxRepoImpl) MarkAllAsRead(ctx context.Context, userID uint64) error {
	filter := bson.M{"user_id": userID, "is_read": false}
	update := bson.M{"$set": bson.M{"is_read": true}}
	_, err := s.col.UpdateMany(ctx, filter, update)
	return err
}

// GetUnreadCount 获取用户的未读提醒总数
func (s *reminderBoxRepoImpl) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	filter := bson.M{"user_id": userID, "is_read": false}
	return s.col.CountDocuments(ctx, filter)
}
