//go:build zmq

package main

import (
	"context"
	"fmt"
	"syscall"
	"time"

	"github.com/pebbe/zmq4"
	"go.uber.org/zap"
)

const hashBlockTopic = "hashblock"

// startBlockSignal subscribes to the node's hashblock feed. Each message
// wakes the watcher; bursts collapse into one pending signal.
func startBlockSignal(ctx context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr == "" {
		return nil, nil
	}

	sub, err := newSubscriber(addr, hashBlockTopic)
	if err != nil {
		return nil, fmt.Errorf("connect zmq: %w", err)
	}
	if err := sub.SetRcvtimeo(time.Second); err != nil {
		sub.Close()
		return nil, fmt.Errorf("configure zmq: %w", err)
	}

	logger = logger.Named("blockSignal").With(zap.String("addr", addr))
	notify := make(chan struct{}, 1)

	go func() {
		defer sub.Close()
		for ctx.Err() == nil {
			parts, err := sub.RecvMessageBytes(0)
			if err != nil {
				if zmq4.AsErrno(err) == zmq4.Errno(syscall.EAGAIN) {
					continue
				}
				logger.Warn("zmq recv failed", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}
			if len(parts) < 2 || string(parts[0]) != hashBlockTopic {
				logger.Warn("skip malformed zmq message", zap.Int("parts", len(parts)))
				continue
			}

			select {
			case notify <- struct{}{}:
			default:
			}
		}
	}()

	logger.Info("subscribed to block notifications")
	return notify, nil
}

func newSubscriber(addr string, topics ...string) (*zmq4.Socket, error) {
	sub, err := zmq4.NewSocket(zmq4.SUB)
	if err != nil {
		return nil, err
	}

	for _, topic := range topics {
		if err := sub.SetSubscribe(topic); err != nil {
			sub.Close()
			return nil, err
		}
	}

	if err := sub.Connect(addr); err != nil {
		sub.Close()
		return nil, err
	}
	return sub, nil
}
