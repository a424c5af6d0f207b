package message

import "strconv"

const (
	topicNumber     = 5
	partitionPrefix = "analysis-partition-"
)

// RedisPartition is one analysis task list. A worker owns a partition while
// its owner key is set; servers append under the partition lock.
type RedisPartition int

func (r RedisPartition) key(suffix string) string {
	return partitionPrefix + strconv.Itoa(int(r)) + suffix
}

func (r RedisPartition) ListKey() string { return r.key("") }

func (r RedisPartition) OwnerKey() string { return r.key("-owner") }

func (r RedisPartition) LockName() string { return r.key("-lock") }

// RedisPartitions are numbered from 1.
var RedisPartitions = func() (partitions []RedisPartition) {
	for i := range topicNumber {
		partitions = append(partitions, RedisPartition(i+1))
	}
	return
}()
