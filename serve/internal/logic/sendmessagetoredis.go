package logic

import (
	"context"

	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/pkg/models/message"
	"github.com/TuanDau555/Tic-Tac-Toe-With-AI/serve/internal/svc"
)

// GetTopicMessageList spreads messages over the partitions, always adding to
// the currently shortest list. Ties go to the lowest partition.
func GetTopicMessageList(ctx context.Context, svcCtx *svc.ServiceContext, messages []string) (topicMessageList map[message.RedisPartition][]string, err error) {
	topicListLen := make(map[message.RedisPartition]int)
	for _, t := range message.RedisPartitions {
		topicListLen[t], err = svcCtx.RedisClient.LlenCtx(ctx, t.ListKey())
		if err != nil {
			return nil, err
		}
		topicListLen[t] += svcCtx.PartitionPusher[t].Len()
	}

	topicMessageList = make(map[message.RedisPartition][]string)
	for _, m := range messages {
		minTopic := message.RedisPartitions[0]
		for _, t := range message.RedisPartitions {
			if topicListLen[t] < topicListLen[minTopic] {
				minTopic = t
			}
		}

		topicListLen[minTopic]++
		topicMessageList[minTopic] = append(topicMessageList[minTopic], m)
	}

	return topicMessageList, nil
}

func SendMessageToRedisLists(ctx context.Context, svcCtx *svc.ServiceContext, messages ...string) error {
	topicMessageList, err := GetTopicMessageList(ctx, svcCtx, messages)
	if err != nil {
		return err
	}

	for part, mess := range topicMessageList {
		svcCtx.PartitionPusher[part].AddMessages(mess...)
	}

	return nil
}
