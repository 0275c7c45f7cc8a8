package mqtt

import (
	"fmt"
	"time"

	"gnroof/internal/config"
	"gnroof/internal/logger"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// Client owns the broker connection.
type Client struct {
	client paho.Client
	log    *logger.Logger
}

// Connect dials the broker and waits up to cfg.ConnectTimeout.
// onConnect runs after every (re)connect, which is where subscriptions belong.
func Connect(cfg config.MQTTConfig, log *logger.Logger, onConnect func(paho.Client)) (*Client, error) {
	if log == nil {
		log = logger.Nop()
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := newClientOptions(cfg, log, onConnect)

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		return nil, fmt.Errorf("connect to %s: timeout after %s", cfg.Broker, timeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Broker, err)
	}

	return &Client{client: client, log: log}, nil
}

// newClientOptions disables ordered delivery: handlers submit readings that
// can publish vent changes, and paho's ordered mode must not block in a
// callback.
func newClientOptions(cfg config.MQTTConfig, log *logger.Logger, onConnect func(paho.Client)) *paho.ClientOptions {
	return paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetOrderMatters(false).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetKeepAlive(60 * time.Second).
		SetPingTimeout(10 * time.Second).
		SetOnConnectHandler(func(c paho.Client) {
			log.Infow("mqtt_connected", "broker", cfg.Broker)
			if onConnect != nil {
				onConnect(c)
			}
		}).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			log.Warnw("mqtt_connection_lost", "err", err)
		})
}

// Native returns the underlying paho client.
func (c *Client) Native() paho.Client {
	return c.client
}

func (c *Client) Close() {
	c.client.Disconnect(250)
	c.log.Infow("mqtt_disconnected")
}
