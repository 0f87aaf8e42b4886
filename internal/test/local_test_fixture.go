package test

import (
	"context"
	"fmt"
	"os"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const redisPort = nat.Port("6379/tcp")

// LocalTestFixture runs the Redis instance the end-to-end suite
// persists against. Set SKIP_INFRASTRUCTURE=true to run the suite on
// in-memory storage without Docker.
type LocalTestFixture struct {
	container testcontainers.Container
	redisURL  string
}

func NewLocalTestFixture(ctx context.Context) (LocalTestFixture, error) {
	if skip := os.Getenv("SKIP_INFRASTRUCTURE"); skip == "true" {
		return LocalTestFixture{}, nil
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{string(redisPort)},
			WaitingFor:   wait.ForListeningPort(redisPort),
		},
		Started: true,
	})
	if err != nil {
		return LocalTestFixture{}, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return LocalTestFixture{}, err
	}

	mappedPort, err := container.MappedPort(ctx, redisPort)
	if err != nil {
		return LocalTestFixture{}, err
	}

	return LocalTestFixture{
		container: container,
		redisURL:  fmt.Sprintf("redis://%s:%s", host, mappedPort.Port()),
	}, nil
}

// RedisURL is empty when infrastructure is skipped.
func (f *LocalTestFixture) RedisURL() string {
	return f.redisURL
}

func (f *LocalTestFixture) Stop(ctx context.Context) error {
	if f.container == nil {
		return nil
	}

	return f.container.Terminate(ctx)
}
