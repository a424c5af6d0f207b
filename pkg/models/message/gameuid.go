package message

import (
	"errors"

	"github.com/google/uuid"
)

var ErrGameUid = errors.New("invalid game uid")

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

// ParseGameUid accepts only canonical uuid strings.
func ParseGameUid(s string) (GameUid, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", errors.Join(ErrGameUid, err)
	}
	return GameUid(u.String()), nil
}

func (uid GameUid) SessionKey() string {
	return "game-session:" + string(uid)
}

func (uid GameUid) LockName() string {
	return "game-lock:" + string(uid)
}

func (uid GameUid) ResultKey() string {
	return "analysis-result:" + string(uid)
}

func (uid GameUid) TaskKey() string {
	return "analysis-task:" + string(uid)
}
