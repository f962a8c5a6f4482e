//go:build integration

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRabbitMQ(t *testing.T) string {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3-alpine",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForListeningPort("5672/tcp").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "start RabbitMQ container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5672/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
}

func dialWithRetry(t *testing.T, url string) *Publisher {
	var lastErr error
	for i := 0; i < 20; i++ {
		p, err := NewPublisher(url)
		if err == nil {
			return p
		}
		lastErr = err
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("Failed to connect to RabbitMQ: %v", lastErr)
	return nil
}

func TestPublishReachesBoundQueue(t *testing.T) {
	url := setupRabbitMQ(t)
	publisher := dialWithRetry(t, url)
	t.Cleanup(publisher.Close)

	conn, err := amqp.Dial(url)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	ch, err := conn.Channel()
	require.NoError(t, err)

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, "venue.*", ExchangeName, false, nil))

	deliveries, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	require.NoError(t, err)

	require.NoError(t, publisher.Publish("venue.created", map[string]any{"id": 1, "name": "The Blue Note"}))
	require.NoError(t, publisher.Publish("artist.created", map[string]any{"id": 1}))

	select {
	case d := <-deliveries:
		assert.Equal(t, "venue.created", d.RoutingKey)
		var body map[string]any
		require.NoError(t, json.Unmarshal(d.Body, &body))
		assert.Equal(t, "The Blue Note", body["name"])
	case <-time.After(10 * time.Second):
		t.Fatal("Timed out waiting for the venue event")
	}

	select {
	case d := <-deliveries:
		t.Fatalf("Unexpected delivery %s", d.RoutingKey)
	case <-time.After(500 * time.Millisecond):
	}
}
