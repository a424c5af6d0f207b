package moverecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type moveRecodeModel interface {
	Insert(ctx context.Context, data *MoveRecode) error
	FindOne(ctx context.Context, id string) (*MoveRecode, error)
	Update(ctx context.Context, data *MoveRecode) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type defaultMoveRecodeModel struct {
	conn *mon.Model
}

func newDefaultMoveRecodeModel(conn *mon.Model) *defaultMoveRecodeModel {
	return &defaultMoveRecodeModel{conn: conn}
}

func (m *defaultMoveRecodeModel) Insert(ctx context.Context, data *MoveRecode) error {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreateAt = time.Now()
		data.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, data)
	return err
}

func (m *defaultMoveRecodeModel) FindOne(ctx context.Context, id string) (*MoveRecode, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjectId
	}

	var data MoveRecode

	err = m.conn.FindOne(ctx, &data, bson.M{"_id": oid})
	switch err {
	case nil:
		return &data, nil
	case mon.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultMoveRecodeModel) Update(ctx context.Context, data *MoveRecode) (*mongo.UpdateResult, error) {
	data.UpdateAt = time.Now()

	res, err := m.conn.UpdateOne(ctx, bson.M{"_id": data.ID}, bson.M{"$set": data})
	return res, err
}

func (m *defaultMoveRecodeModel) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidObjectId
	}

	res, err := m.conn.DeleteOne(ctx, bson.M{"_id": oid})
	return res, err
}
