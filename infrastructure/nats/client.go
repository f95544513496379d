package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"taskapi/pkg/logger"
)

// Client wraps the NATS connection used for task lifecycle events.
type Client struct {
	conn *nats.Conn
}

type ClientConfig struct {
	URL string // nats://localhost:4222
}

func NewClient(cfg ClientConfig) (*Client, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("NATS client initialized", "url", cfg.URL)
	return &Client{conn: nc}, nil
}

func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
