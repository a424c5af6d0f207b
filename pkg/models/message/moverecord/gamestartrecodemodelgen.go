package moverecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type gameStartRecodeModel interface {
	Insert(ctx context.Context, data *GameStartRecode) error
	FindOne(ctx context.Context, id string) (*GameStartRecode, error)
	Update(ctx context.Context, data *GameStartRecode) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type defaultGameStartRecodeModel struct {
	conn *mon.Model
}

func newDefaultGameStartRecodeModel(conn *mon.Model) *defaultGameStartRecodeModel {
	return &defaultGameStartRecodeModel{conn: conn}
}

func (m *defaultGameStartRecodeModel) Insert(ctx context.Context, data *GameStartRecode) error {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreateAt = time.Now()
		data.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, data)
	return err
}

func (m *defaultGameStartRecodeModel) FindOne(ctx context.Context, id string) (*GameStartRecode, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjectId
	}

	var data GameStartRecode

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

func (m *defaultGameStartRecodeModel) Update(ctx context.Context, data *GameStartRecode) (*mongo.UpdateResult, error) {
	data.UpdateAt = time.Now()

	res, err := m.conn.UpdateOne(ctx, bson.M{"_id": data.ID}, bson.M{"$set": data})
	return res, err
}

func (m *defaultGameStartRecodeModel) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidObjectId
	}

	res, err := m.conn.DeleteOne(ctx, bson.M{"_id": oid})
	return res, err
}
