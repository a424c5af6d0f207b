package moverecord

import (
	"time"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameStartRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid     message.GameUid `bson:"gameUid" json:"gameUid"`
	BoardSize   int             `bson:"boardSize" json:"boardSize"`
	WinLength   int             `bson:"winLength" json:"winLength"`
	FirstPlayer string          `bson:"firstPlayer" json:"firstPlayer"`
	AIPlayer    string          `bson:"aiPlayer" json:"aiPlayer"`
}
