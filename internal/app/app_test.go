package app

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/GlebRadaev/ticketbooking/internal/config"
	"github.com/GlebRadaev/ticketbooking/internal/storage"
	"github.com/stretchr/testify/suite"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestStartAndShutdown() {
	dataDir := s.T().TempDir()
	s.T().Setenv("RUN_ADDRESS", "127.0.0.1:0")
	s.T().Setenv("STORAGE", config.StorageFile)
	s.T().Setenv("DATA_DIR", dataDir)
	s.T().Setenv("LOG_LVL", "error")
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = []string{"cmd"}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Require().NoError(s.app.Start(ctx))
	s.True(s.app.ready)
	s.NotNil(s.app.ledger)
	s.Len(s.app.ledger.CatalogService.Entries(), 4)

	ok, err := s.app.ledger.AccountService.AddAccount(ctx, "alice", "secret")
	s.Require().NoError(err)
	s.True(ok)
	s.FileExists(filepath.Join(dataDir, "accounts.json"))

	cancel()
	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestBuildBackend() {
	s.app.cfg = &config.Config{Storage: config.StorageFile, DataDir: s.T().TempDir()}
	backend, err := s.app.buildBackend(context.Background())
	s.Require().NoError(err)
	s.IsType(&storage.FileBackend{}, backend)

	s.app.cfg = &config.Config{Storage: "sqlite"}
	backend, err = s.app.buildBackend(context.Background())
	s.Error(err)
	s.Nil(backend)
}

func (s *ApplicationSuite) TestBuildBackendPostgresUnreachable() {
	s.app.cfg = &config.Config{Storage: config.StoragePostgres, Database: "not a dsn"}
	_, err := s.app.buildBackend(context.Background())
	s.Require().Error(err)
	s.Contains(err.Error(), "can't build pgx pool")
}

func (s *ApplicationSuite) TestCORSHandler() {
	cfg := &config.Config{CORSOrigins: []string{"https://shop.example"}}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer token")
		w.WriteHeader(http.StatusOK)
	})
	handler := corsHandler(cfg, next)

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.Header.Set("Origin", "https://shop.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("https://shop.example", rec.Header().Get("Access-Control-Allow-Origin"))
	s.Equal("Authorization", rec.Header().Get("Access-Control-Expose-Headers"))

	req = httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	s.Empty(rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *ApplicationSuite) TestClose() {
	var order []int
	s.app.closers = []func(){
		func() { order = append(order, 1) },
		func() { order = append(order, 2) },
	}

	s.app.close()
	s.app.close()

	s.Equal([]int{2, 1}, order)
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}
