package broker

import (
	"context"

	"condoYaAdmin/internal/modules/realtime/domain"
	"condoYaAdmin/internal/modules/realtime/infrastructure"
)

// StartKafkaConsumers launches one consumer goroutine per registered topic and
// routes every record through the registry. With no brokers configured the
// console simply runs without live refresh.
func StartKafkaConsumers(
	ctx context.Context,
	registry *infrastructure.HandlerRegistry,
	brokers []string,
	groupID string,
) {
	if len(brokers) == 0 {
		return
	}
	for _, topic := range registry.Topics() {
		go func(tp string) {
			consumer := NewKafkaConsumer(brokers, groupID, tp)
			defer consumer.Close()
			_ = consumer.Consume(ctx, func(msg *domain.Message) error {
				return registry.Dispatch(ctx, msg)
			})
		}(topic)
	}
}
