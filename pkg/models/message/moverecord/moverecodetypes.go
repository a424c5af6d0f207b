package moverecord

import (
	"time"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MoveRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid   message.GameUid `bson:"gameUid" json:"gameUid"`
	StepCount int             `bson:"stepCount" json:"stepCount"`
	Player    string          `bson:"player" json:"player"`
	Row       int             `bson:"row" json:"row"`
	Col       int             `bson:"col" json:"col"`
	// search statistics, empty for human moves
	Reason string `bson:"reason,omitempty" json:"reason,omitempty"`
	Depth  int    `bson:"depth,omitempty" json:"depth,omitempty"`
	Nodes  int64  `bson:"nodes,omitempty" json:"nodes,omitempty"`
	Score  int    `bson:"score,omitempty" json:"score,omitempty"`
}
