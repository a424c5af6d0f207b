package moverecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/pusher"
)

// Recode holds exactly one of the three record kinds.
type Recode struct {
	Start *GameStartRecode
	Move  *MoveRecode
	End   *GameEndRecode
}

// Recorder writes game records to mongo in the background. Records are best
// effort: a record that fails to insert is logged and dropped.
type Recorder struct {
	startModel GameStartRecodeModel
	moveModel  MoveRecodeModel
	endModel   GameEndRecodeModel
	pusher     *pusher.Pusher[Recode]
	timeout    time.Duration
}

func NewRecorder(startModel GameStartRecodeModel, moveModel MoveRecodeModel, endModel GameEndRecodeModel, interval time.Duration) *Recorder {
	r := &Recorder{
		startModel: startModel,
		moveModel:  moveModel,
		endModel:   endModel,
		timeout:    5 * time.Second,
	}
	r.pusher = pusher.NewPusher(
		pusher.WithPushInterval[Recode](interval),
		pusher.WithPushLogic(r.insert),
	)
	return r
}

func MustNewRecorder(url, db string, interval time.Duration) *Recorder {
	return NewRecorder(
		NewGameStartRecodeModel(url, db),
		NewMoveRecodeModel(url, db),
		NewGameEndRecodeModel(url, db),
		interval,
	)
}

func (r *Recorder) Start() { r.pusher.Start() }

// Stop flushes pending records.
func (r *Recorder) Stop() { r.pusher.Stop() }

func (r *Recorder) RecordStart(recode *GameStartRecode) {
	r.pusher.AddMessages(Recode{Start: recode})
}

func (r *Recorder) RecordMove(recode *MoveRecode) {
	r.pusher.AddMessages(Recode{Move: recode})
}

func (r *Recorder) RecordEnd(recode *GameEndRecode) {
	r.pusher.AddMessages(Recode{End: recode})
}

func (r *Recorder) insert(recodes ...Recode) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	for _, recode := range recodes {
		var err error
		switch {
		case recode.Start != nil:
			err = r.startModel.Insert(ctx, recode.Start)
		case recode.Move != nil:
			err = r.moveModel.Insert(ctx, recode.Move)
		case recode.End != nil:
			err = r.endModel.Insert(ctx, recode.End)
		}

		if err != nil {
			logx.WithContext(ctx).Errorf("insert game recode: %v", err)
		}
	}

	return nil
}
