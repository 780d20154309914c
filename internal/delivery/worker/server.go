// Package worker consumes synchronization triggers from RabbitMQ.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"locator/config"
	"locator/internal/delivery"
	"locator/internal/delivery/worker/handler"
	"locator/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	headerRetryCount = "x-retry-count"
	retryDelayStep   = time.Second
)

// publisher is the part of *amqp.Channel used to redeliver a message.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// brokerChannel is the part of *amqp.Channel the consumer drives.
type brokerChannel interface {
	publisher
	Qos(prefetchCount, prefetchSize int, global bool) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

type brokerConn interface {
	Channel() (brokerChannel, error)
	Close() error
	IsClosed() bool
}

// amqpConn adapts *amqp.Connection to brokerConn.
type amqpConn struct {
	*amqp.Connection
}

func (c amqpConn) Channel() (brokerChannel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}

	return ch, nil
}

func dialAMQP(url string) (brokerConn, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	return amqpConn{conn}, nil
}

type workerServer struct {
	cfg        *config.QueueConfig
	logger     *slog.Logger
	handler    *handler.SyncHandler
	retryDelay time.Duration
	dial       func(url string) (brokerConn, error)

	// publisher is only used from the Serve goroutine.
	publisher publisher

	// mu guards the live broker session shared by Serve and stop.
	mu       sync.Mutex
	conn     brokerConn
	channel  brokerChannel
	stopping bool
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	SyncHandler *handler.SyncHandler
}

// NewServer creates the queue consumer; the broker connection opens in Serve
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Cfg.Queue == nil || params.Cfg.Queue.URL == "" {
		return nil, errors.New("queue url is required for the sync worker")
	}

	srv := &workerServer{
		cfg:        params.Cfg.Queue,
		logger:     params.Logger,
		handler:    params.SyncHandler,
		retryDelay: retryDelayStep,
		dial:       dialAMQP,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve connects to the broker and processes messages until the connection closes
func (s *workerServer) Serve(ctx context.Context) error {
	msgs, err := s.open()
	if err != nil {
		return err
	}
	if msgs == nil {
		// stopped before the session was up
		return nil
	}

	s.logger.Info("Starting sync worker", slog.String("queue", s.cfg.Name), slog.Int("prefetch", s.cfg.Prefetch))

	for d := range msgs {
		s.dispatch(ctx, d)
	}

	if s.isStopping() {
		return nil
	}

	return errors.New("rabbitmq delivery channel closed")
}

// open dials the broker and registers the consumer. Any failure after the
// dial closes what was opened so far. A nil channel with a nil error means
// stop ran first.
func (s *workerServer) open() (<-chan amqp.Delivery, error) {
	conn, err := s.dial(s.cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "open channel")
	}

	msgs, err := s.consume(ch)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopping {
		_ = ch.Close()
		_ = conn.Close()

		return nil, nil
	}
	s.conn, s.channel, s.publisher = conn, ch, ch

	return msgs, nil
}

func (s *workerServer) consume(ch brokerChannel) (<-chan amqp.Delivery, error) {
	if err := ch.Qos(s.cfg.Prefetch, 0, false); err != nil {
		return nil, errors.Wrap(err, "set qos")
	}

	if _, err := ch.QueueDeclare(
		s.cfg.Name, // name
		true,       // durable
		false,      // delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	); err != nil {
		return nil, errors.Wrapf(err, "declare queue %s", s.cfg.Name)
	}

	msgs, err := ch.Consume(
		s.cfg.Name, // queue
		"",         // consumer
		false,      // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		return nil, errors.Wrap(err, "register consumer")
	}

	return msgs, nil
}

func (s *workerServer) isStopping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stopping
}

// dispatch runs the handler and settles the delivery according to the outcome
func (s *workerServer) dispatch(ctx context.Context, d amqp.Delivery) {
	err := s.handler.Handle(ctx, d.MessageId, d.Body)
	switch {
	case err == nil:
		s.settle(d.Ack(false), d.MessageId)
	case handler.IsRetryable(err):
		retries := retryCount(d.Headers)
		if retries >= s.cfg.MaxRetries {
			s.logger.Warn("[Worker] Retries exhausted, rejecting message",
				slog.String("message_id", d.MessageId),
				slog.Int("retries", retries),
			)
			s.settle(d.Nack(false, false), d.MessageId)

			return
		}
		s.redeliver(ctx, d, retries+1)
	default:
		s.settle(d.Nack(false, false), d.MessageId)
	}
}

// redeliver republishes d with an incremented retry counter after a linear backoff
func (s *workerServer) redeliver(ctx context.Context, d amqp.Delivery, attempt int) {
	select {
	case <-ctx.Done():
		s.settle(d.Nack(false, true), d.MessageId)

		return
	case <-time.After(time.Duration(attempt) * s.retryDelay):
	}

	headers := make(amqp.Table, len(d.Headers)+1)
	for k, v := range d.Headers {
		headers[k] = v
	}
	headers[headerRetryCount] = int32(attempt)

	err := s.publisher.PublishWithContext(ctx,
		"",         // exchange
		s.cfg.Name, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			Headers:      headers,
			ContentType:  d.ContentType,
			Body:         d.Body,
			DeliveryMode: amqp.Persistent,
			MessageId:    d.MessageId,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		s.logger.Warn("[Worker] Republish failed, requeueing", slog.Any("error", err))
		s.settle(d.Nack(false, true), d.MessageId)

		return
	}

	s.settle(d.Ack(false), d.MessageId)
}

func (s *workerServer) settle(err error, messageID string) {
	if err != nil {
		s.logger.Error("[Worker] Failed to settle message",
			slog.String("message_id", messageID),
			slog.Any("error", err),
		)
	}
}

// retryCount reads the redelivery counter from the message headers
func retryCount(headers amqp.Table) int {
	switch v := headers[headerRetryCount].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// stop closes the channel and connection, which ends the consume loop
func (s *workerServer) stop(_ context.Context) error {
	s.mu.Lock()
	s.stopping = true
	conn, ch := s.conn, s.channel
	s.mu.Unlock()

	s.logger.Info("Shutting down sync worker")

	if ch != nil {
		if err := ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			return errors.WithStack(err)
		}
	}

	if conn != nil && !conn.IsClosed() {
		return errors.WithStack(conn.Close())
	}

	return nil
}
