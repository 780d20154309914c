package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"locator/internal/domain/entity"
	"locator/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	fakePublisher

	qosErr     error
	declareErr error
	consumeErr error

	mu         sync.Mutex
	closed     bool
	deliveries chan amqp.Delivery
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{deliveries: make(chan amqp.Delivery, 4)}
}

func (c *fakeChannel) Qos(int, int, bool) error { return c.qosErr }

func (c *fakeChannel) QueueDeclare(name string, _, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	return amqp.Queue{Name: name}, c.declareErr
}

func (c *fakeChannel) Consume(string, string, bool, bool, bool, bool, amqp.Table) (<-chan amqp.Delivery, error) {
	if c.consumeErr != nil {
		return nil, c.consumeErr
	}

	return c.deliveries, nil
}

func (c *fakeChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return amqp.ErrClosed
	}
	c.closed = true
	close(c.deliveries)

	return nil
}

func (c *fakeChannel) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closed
}

type fakeConn struct {
	channel    *fakeChannel
	channelErr error

	mu     sync.Mutex
	closed bool
}

func (c *fakeConn) Channel() (brokerChannel, error) {
	if c.channelErr != nil {
		return nil, c.channelErr
	}

	return c.channel, nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true

	return nil
}

func (c *fakeConn) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closed
}

func withBroker(srv *workerServer, conn *fakeConn) {
	srv.publisher = nil
	srv.dial = func(string) (brokerConn, error) { return conn, nil }
}

func TestServe_SetupFailureClosesSession(t *testing.T) {
	boom := errors.New("channel exception")

	tests := []struct {
		name    string
		setup   func(*fakeConn)
		wantMsg string
	}{
		{name: "qos", setup: func(c *fakeConn) { c.channel.qosErr = boom }, wantMsg: "set qos"},
		{name: "declare", setup: func(c *fakeConn) { c.channel.declareErr = boom }, wantMsg: "declare queue carrier_sync"},
		{name: "consume", setup: func(c *fakeConn) { c.channel.consumeErr = boom }, wantMsg: "register consumer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, nil)
			conn := &fakeConn{channel: newFakeChannel()}
			tt.setup(conn)
			withBroker(srv, conn)

			err := srv.Serve(context.Background())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.True(t, conn.channel.isClosed())
			assert.True(t, conn.IsClosed())
			require.NoError(t, srv.stop(context.Background()))
		})
	}
}

func TestServe_ChannelFailureClosesConnection(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	conn := &fakeConn{channelErr: errors.New("no channels left")}
	withBroker(srv, conn)

	err := srv.Serve(context.Background())

	require.Error(t, err)
	assert.True(t, conn.IsClosed())
}

func TestServe_StopEndsConsumeLoop(t *testing.T) {
	srv, uc := newTestServer(t, nil)
	uc.EXPECT().SynchronizeFromSource(mock.Anything).Return(&entity.SyncReport{Failed: []entity.RowFailure{}}, nil).Once()

	conn := &fakeConn{channel: newFakeChannel()}
	withBroker(srv, conn)

	ack := &fakeAcknowledger{}
	conn.channel.deliveries <- newDelivery(ack, nil)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(context.Background()) }()

	require.Eventually(t, func() bool {
		ack.mu.Lock()
		defer ack.mu.Unlock()

		return len(ack.settled) == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, srv.stop(context.Background()))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after stop")
	}
	assert.True(t, conn.channel.isClosed())
	assert.True(t, conn.IsClosed())
}

func TestServe_StopBeforeSessionOpens(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	conn := &fakeConn{channel: newFakeChannel()}
	withBroker(srv, conn)

	require.NoError(t, srv.stop(context.Background()))
	require.NoError(t, srv.Serve(context.Background()))

	assert.True(t, conn.channel.isClosed())
	assert.True(t, conn.IsClosed())
}

func TestServe_BrokerClosedUnexpectedly(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	conn := &fakeConn{channel: newFakeChannel()}
	withBroker(srv, conn)
	require.NoError(t, conn.channel.Close())

	err := srv.Serve(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "delivery channel closed")
}
