package events

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "fyyur"
	ExchangeKind = "topic"
)

// Publisher sends directory changes to a RabbitMQ topic exchange
type Publisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher dials url and declares the exchange
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	return &Publisher{conn: conn, channel: ch}, nil
}

// Publish sends payload as JSON with the given routing key
func (p *Publisher) Publish(routingKey string, payload any) error {
	msg, err := NewMessage(payload)
	if err != nil {
		return err
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.Publish(ExchangeName, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	log.Printf("[RabbitMQ] published to %s/%s", ExchangeName, routingKey)
	return nil
}

// NewMessage encodes payload as a persistent JSON message
func NewMessage(payload any) (amqp.Publishing, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal payload: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}, nil
}

// Close releases the channel and connection
func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
