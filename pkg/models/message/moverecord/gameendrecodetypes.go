package moverecord

import (
	"time"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameEndRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid   message.GameUid `bson:"gameUid" json:"gameUid"`
	Status    string          `bson:"status" json:"status"`
	Winner    string          `bson:"winner" json:"winner"`
	StepCount int             `bson:"stepCount" json:"stepCount"`
}
