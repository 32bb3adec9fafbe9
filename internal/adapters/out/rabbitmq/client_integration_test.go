package rabbitmq_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"laundry/internal/adapters/out/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const exchange = "laundry.notifications"

type ClientIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	url       string
	client    *rabbitmq.Client
}

func (suite *ClientIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3.13-alpine",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForLog("Server startup complete").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "5672")
	suite.Require().NoError(err)
	suite.url = fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())

	suite.client, err = rabbitmq.Dial(suite.url, exchange)
	suite.Require().NoError(err)
}

func (suite *ClientIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.client.Close()
	}
	suite.Require().NoError(suite.container.Terminate(context.Background()))
}

func (suite *ClientIntegrationTestSuite) consume(pattern string) <-chan amqp.Delivery {
	conn, err := amqp.Dial(suite.url)
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { _ = conn.Close() })
	ch, err := conn.Channel()
	suite.Require().NoError(err)

	queue, err := ch.QueueDeclare("", false, true, true, false, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(ch.QueueBind(queue.Name, pattern, exchange, false, nil))
	deliveries, err := ch.Consume(queue.Name, "", true, true, false, false, nil)
	suite.Require().NoError(err)
	return deliveries
}

func (suite *ClientIntegrationTestSuite) TestPublish_DeliversInOrder() {
	deliveries := suite.consume("customer.*")

	for i := range 3 {
		err := suite.client.Publish(context.Background(), exchange, "customer.42", fmt.Sprintf("m-%d", i), []byte(`{}`))
		suite.Require().NoError(err)
	}

	for i := range 3 {
		select {
		case d := <-deliveries:
			suite.Equal(fmt.Sprintf("m-%d", i), d.MessageId)
			suite.Equal("application/json", d.ContentType)
		case <-time.After(5 * time.Second):
			suite.FailNow("delivery timed out")
		}
	}
}

func (suite *ClientIntegrationTestSuite) TestPublish_AfterCancelledWait_NextPublishWaitsForItsOwnConfirm() {
	deliveries := suite.consume("outlet.*.Driver")

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	err := suite.client.Publish(cancelled, exchange, "outlet.1.Washer", "stale", []byte(`{}`))
	suite.ErrorIs(err, context.Canceled)

	// the confirm of the cancelled publish is still in flight
	suite.Require().NoError(suite.client.Publish(context.Background(), exchange, "outlet.1.Driver", "fresh", []byte(`{}`)))

	select {
	case d := <-deliveries:
		suite.Equal("fresh", d.MessageId)
	case <-time.After(5 * time.Second):
		suite.FailNow("delivery timed out")
	}
}

func TestClientIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ClientIntegrationTestSuite))
}
