package http

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"patientintake/internal/config"
	"patientintake/internal/platform/logger"
)

type ServerTestSuite struct {
	suite.Suite
	logger logger.Logger
}

func (s *ServerTestSuite) SetupTest() {
	s.logger = logger.NewNop()
}

func serverConfig(port int) *config.HttpConfig {
	return &config.HttpConfig{
		Server: config.HttpServerConfig{
			Host:            "127.0.0.1",
			Port:            port,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     time.Minute,
			ShutdownTimeout: 2 * time.Second,
		},
	}
}

func (s *ServerTestSuite) TestNewServer() {
	handler := http.NewServeMux()

	server := NewServer(serverConfig(8080), s.logger, handler)

	s.Assert().Equal("127.0.0.1:8080", server.Addr())
	s.Assert().Equal(handler, server.server.Handler)
	s.Assert().Equal(5*time.Second, server.server.ReadTimeout)
	s.Assert().Equal(5*time.Second, server.server.ReadHeaderTimeout)
	s.Assert().Equal(10*time.Second, server.server.WriteTimeout)
	s.Assert().Equal(time.Minute, server.server.IdleTimeout)
	s.Assert().Equal(2*time.Second, server.shutdownTimeout)
}

func (s *ServerTestSuite) TestNewServer_DefaultShutdownTimeout() {
	cfg := serverConfig(8080)
	cfg.Server.ShutdownTimeout = 0

	server := NewServer(cfg, s.logger, http.NewServeMux())

	s.Assert().Equal(defaultShutdownTimeout, server.shutdownTimeout)
}

func (s *ServerTestSuite) TestStartServeStop() {
	mux := http.NewServeMux()
	mux.HandleFunc("/intake", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "Patient Information")
	})
	server := NewServer(serverConfig(0), s.logger, mux)

	s.Require().NoError(server.Start(context.Background()))
	s.Assert().NotEqual("127.0.0.1:0", server.Addr(), "bound address replaces the ephemeral port")

	resp, err := http.Get("http://" + server.Addr() + "/intake")
	s.Require().NoError(err)
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Require().NoError(resp.Body.Close())
	s.Assert().Equal("Patient Information", string(body))

	s.Require().NoError(server.Stop(context.Background()))

	_, err = http.Get("http://" + server.Addr() + "/intake")
	s.Assert().Error(err)
}

func (s *ServerTestSuite) TestStart_AddressInUse() {
	first := NewServer(serverConfig(0), s.logger, http.NewServeMux())
	s.Require().NoError(first.Start(context.Background()))
	defer func() { _ = first.Stop(context.Background()) }()

	second := NewServer(serverConfig(0), s.logger, http.NewServeMux())
	second.server.Addr = first.Addr()

	s.Assert().Error(second.Start(context.Background()))
}

func (s *ServerTestSuite) TestStart_CancelledContext() {
	server := NewServer(serverConfig(0), s.logger, http.NewServeMux())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.Assert().NoError(server.Start(ctx))

	_, err := http.Get("http://" + server.Addr())
	s.Assert().Error(err)
}

func (s *ServerTestSuite) TestStop_WaitsForInflightRequests() {
	release := make(chan struct{})
	started := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		w.WriteHeader(http.StatusCreated)
	})
	server := NewServer(serverConfig(0), s.logger, mux)
	s.Require().NoError(server.Start(context.Background()))

	status := make(chan int, 1)
	go func() {
		resp, err := http.Post("http://"+server.Addr()+"/slow", "application/json", nil)
		if err != nil {
			status <- 0
			return
		}
		_ = resp.Body.Close()
		status <- resp.StatusCode
	}()
	<-started

	stopped := make(chan error, 1)
	go func() { stopped <- server.Stop(context.Background()) }()

	time.Sleep(50 * time.Millisecond)
	close(release)

	s.Assert().Equal(http.StatusCreated, <-status)
	s.Assert().NoError(<-stopped)
}

func (s *ServerTestSuite) TestStop_ContextDeadline() {
	release := make(chan struct{})
	started := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/stuck", func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
	})
	server := NewServer(serverConfig(0), s.logger, mux)
	s.Require().NoError(server.Start(context.Background()))
	defer close(release)

	go func() {
		resp, err := http.Get("http://" + server.Addr() + "/stuck")
		if err == nil {
			_ = resp.Body.Close()
		}
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	s.Assert().ErrorIs(server.Stop(ctx), context.DeadlineExceeded)
}

func (s *ServerTestSuite) TestStop_NilServer() {
	server := &Server{logger: s.logger}

	s.Assert().NoError(server.Stop(context.Background()))
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
