package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

// NewGroup builds the consumer group the payment-status listener runs
// on. Offsets start at newest: historical payment events were applied
// by the previous incarnation of the group.
func NewGroup(brokers []string, groupID string) (sarama.ConsumerGroup, error) {
	cfg := sarama.NewConfig()
	cfg.ClientID = "market-api"
	cfg.Version = sarama.V2_6_0_0
	cfg.Consumer.Group.Rebalance.Strategy = sarama.BalanceStrategyRange
	cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	cfg.Net.DialTimeout = 5 * time.Second
	return sarama.NewConsumerGroup(brokers, groupID, cfg)
}
