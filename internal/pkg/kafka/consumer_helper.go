package kafka

import (
	"log/slog"
	"time"

	"github.com/IBM/sarama"
)

const (
	batchSize    = 50
	batchTimeout = 2 * time.Second
	maxRetries   = 3
	retryBackoff = 500 * time.Millisecond
)

// pullBatch 从 claim 中攒一批消息，凑满 batchSize 或超时即返回
// 返回 nil 表示 claim 已关闭
func pullBatch(claim sarama.ConsumerGroupClaim) []*sarama.ConsumerMessage {
	var batch []*sarama.ConsumerMessage
	timer := time.NewTimer(batchTimeout)
	defer timer.Stop()

	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				if len(batch) == 0 {
					return nil
				}
				return batch
			}
			batch = append(batch, msg)
			if len(batch) >= batchSize {
				return batch
			}
		case <-timer.C:
			return batch
		}
	}
}

// processWithRetry 对单条消息的处理做有限次重试，最终失败只记日志不阻塞位移提交
func processWithRetry(msg *sarama.ConsumerMessage, handle func(*sarama.ConsumerMessage) error) {
	var err error
	for i := 0; i < maxRetries; i++ {
		if err = handle(msg); err == nil {
			return
		}
		time.Sleep(retryBackoff * time.Duration(i+1))
	}
	slog.Error("消息处理重试耗尽", "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "error", err)
}
