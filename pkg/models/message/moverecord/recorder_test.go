package moverecord

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"
)

type memory struct {
	lock  sync.Mutex
	kinds []string
}

func (m *memory) add(kind string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.kinds = append(m.kinds, kind)
}

type startModel struct {
	GameStartRecodeModel
	*memory
}

func (m startModel) Insert(_ context.Context, data *GameStartRecode) error {
	m.add("start " + string(data.GameUid))
	return nil
}

type moveModel struct {
	MoveRecodeModel
	*memory
}

func (m moveModel) Insert(_ context.Context, data *MoveRecode) error {
	if data.StepCount < 0 {
		return errors.New("bad step")
	}
	m.add("move " + data.Player)
	return nil
}

type endModel struct {
	GameEndRecodeModel
	*memory
}

func (m endModel) Insert(_ context.Context, data *GameEndRecode) error {
	m.add("end " + data.Status)
	return nil
}

func TestRecorder(t *testing.T) {
	mem := &memory{}
	r := NewRecorder(startModel{memory: mem}, moveModel{memory: mem}, endModel{memory: mem}, time.Hour)
	r.Start()

	uid := message.GameUid("g1")
	r.RecordStart(&GameStartRecode{GameUid: uid})
	r.RecordMove(&MoveRecode{GameUid: uid, StepCount: 1, Player: "X"})
	r.RecordMove(&MoveRecode{GameUid: uid, StepCount: -1, Player: "?"})
	r.RecordMove(&MoveRecode{GameUid: uid, StepCount: 2, Player: "O"})
	r.RecordEnd(&GameEndRecode{GameUid: uid, Status: "draw"})
	r.Stop()

	assert.Equal(t, []string{"start g1", "move X", "move O", "end draw"}, mem.kinds)
}
