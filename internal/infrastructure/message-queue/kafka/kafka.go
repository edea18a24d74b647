package kafka

import (
	"context"

	"github.com/palrajin0126/admin-panel/config"
	"github.com/segmentio/kafka-go"
)

func CreateKafkaProducer(config *config.Config) *kafka.Conn {
	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		panic(err)
	}

	return conn
}

// Producer adapts the raw broker connection to the catalog event feed.
type Producer struct {
	conn *kafka.Conn
}

func CreateProducer(conn *kafka.Conn) *Producer {
	return &Producer{conn: conn}
}

func (p *Producer) Publish(ctx context.Context, key string, msg []byte) (err error) {
	_, err = p.conn.WriteMessages(
		kafka.Message{
			Key:   []byte(key),
			Value: msg,
		},
	)
	return err
}
