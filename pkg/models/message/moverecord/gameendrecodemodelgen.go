package moverecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type gameEndRecodeModel interface {
	Insert(ctx context.Context, data *GameEndRecode) error
	FindOne(ctx context.Context, id string) (*GameEndRecode, error)
	Update(ctx context.Context, data *GameEndRecode) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type defaultGameEndRecodeModel struct {
	conn *mon.Model
}

func newDefaultGameEndRecodeModel(conn *mon.Model) *defaultGameEndRecodeModel {
	return &defaultGameEndRecodeModel{conn: conn}
}

func (m *defaultGameEndRecodeModel) Insert(ctx context.Context, data *GameEndRecode) error {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreateAt = time.Now()
		data.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, data)
	return err
}

func (m *defaultGameEndRecodeModel) FindOne(ctx context.Context, id string) (*GameEndRecode, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjectId
	}

	var data GameEndRecode

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

func (m *defaultGameEndRecodeModel) Update(ctx context.Context, data *GameEndRecode) (*mongo.UpdateResult, error) {
	data.UpdateAt = time.Now()

	res, err := m.conn.UpdateOne(ctx, bson.M{"_id": data.ID}, bson.M{"$set": data})
	return res, err
}

func (m *defaultGameEndRecodeModel) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidObjectId
	}

	res, err := m.conn.DeleteOne(ctx, bson.M{"_id": oid})
	return res, err
}
