package notify

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/taplog/attendance-system/internal/core/ports"
)

// tapChannel is the Redis pub/sub channel carrying recorded tap events.
const tapChannel = "tap-events"

// RedisPublisher implements ports.TapNotifier over Redis pub/sub.
// Publishing is best-effort: failures are logged and swallowed so the tap
// response never depends on the realtime path.
type RedisPublisher struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewRedisPublisher(client *redis.Client, log zerolog.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, log: log}
}

// PublishTap pushes the recorded tap to the tap-events channel.
func (p *RedisPublisher) PublishTap(ctx context.Context, result *ports.TapResult) {
	payload, err := EncodeTap(result)
	if err != nil {
		p.log.Error().Err(err).Str("uid", result.UID).Msg("failed to encode tap event")
		return
	}
	if err := p.client.Publish(context.WithoutCancel(ctx), tapChannel, payload).Err(); err != nil {
		p.log.Warn().Err(err).Str("uid", result.UID).Msg("failed to publish tap event")
	}
}

// Bridge forwards tap-events channel messages into an in-process Hub so SSE
// subscribers on this instance see taps recorded by any instance.
type Bridge struct {
	client *redis.Client
	hub    *Hub
	log    zerolog.Logger
}

func NewBridge(client *redis.Client, hub *Hub, log zerolog.Logger) *Bridge {
	return &Bridge{client: client, hub: hub, log: log}
}

// Start launches the forwarding goroutine. It stops when ctx is cancelled.
func (b *Bridge) Start(ctx context.Context) {
	sub := b.client.Subscribe(ctx, tapChannel)

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					b.log.Warn().Msg("tap event subscription closed")
					return
				}
				b.hub.Broadcast([]byte(msg.Payload))
			}
		}
	}()
}
