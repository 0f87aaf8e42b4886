package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/courtbook/courtbook/internal/config"
	"github.com/courtbook/courtbook/internal/server"
	"github.com/courtbook/courtbook/internal/test"

	"go.uber.org/zap"
)

type IntegrationTestFixture struct {
	client  *http.Client
	baseURL string
}

var fixture = IntegrationTestFixture{}

func TestMain(m *testing.M) {
	ctx := context.Background()

	localFixture, err := test.NewLocalTestFixture(ctx)
	if err != nil {
		log.Fatal(err)
	}

	if localFixture.RedisURL() != "" {
		if err := os.Setenv(config.RedisURLEnv, localFixture.RedisURL()); err != nil {
			log.Fatal(err)
		}
	}

	const port = 8091
	if err := os.Setenv(config.PortEnv, fmt.Sprintf("%d", port)); err != nil {
		log.Fatal(err)
	}

	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conf.Logger = zap.NewNop()

	srv, err := server.NewHTTPServer(conf)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Println(err)
		}
	}()

	fixture.client = &http.Client{Timeout: 10 * time.Second}
	fixture.baseURL = fmt.Sprintf("http://localhost:%d", port)

	if err := waitForServer(fixture.baseURL + "/clubs"); err != nil {
		log.Fatal(err)
	}

	code := m.Run()

	if err := srv.Stop(); err != nil {
		log.Println(err)
	}

	if err := localFixture.Stop(ctx); err != nil {
		log.Println(err)
	}

	os.Exit(code)
}

func waitForServer(url string) error {
	deadline := time.Now().Add(10 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}

		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("server at %s did not become ready", url)
}
