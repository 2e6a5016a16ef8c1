package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	stdhttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/surveybasket/api/internal/adapters/handler/http"
	repo "github.com/surveybasket/api/internal/adapters/repository/postgres"
	"github.com/surveybasket/api/internal/adapters/token/jwt"
	"github.com/surveybasket/api/internal/core/services"
)

const (
	testSigningKey = "integration-test-key"
	testIssuer     = "surveybasket"
	testAudience   = "surveybasket-api"
)

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *stdhttp.Client
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dirPath, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	require.NoError(t, applyMigrations(db))

	logger := slog.New(slog.DiscardHandler)
	signer := jwt.NewSigner([]byte(testSigningKey), testIssuer, testAudience)

	userRepo := repo.NewUserRepository(db)
	authRepo := repo.NewAuthRepository(db)
	pollRepo := repo.NewPollRepository(db)

	authSvc := services.NewAuthService(userRepo, authRepo, signer, logger, 15*time.Minute, 14*24*time.Hour)
	userSvc := services.NewUserService(userRepo, logger)
	pollSvc := services.NewPollService(pollRepo, logger)

	router := handler.NewHandler(
		handler.NewAuthHandler(authSvc, logger),
		handler.NewUserHandler(userSvc),
		handler.NewPollHandler(pollSvc),
		signer,
	)

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	t.Helper()

	app.Server.Close()
	require.NoError(t, app.DB.Close())
	require.NoError(t, app.DBContainer.Terminate(context.Background()))
}

func (app *TestApp) postJSON(t *testing.T, path, token string, body any) (int, map[string]any) {
	t.Helper()

	status, decoded := app.doJSON(t, stdhttp.MethodPost, path, token, body)
	obj, _ := decoded.(map[string]any)
	return status, obj
}

func (app *TestApp) doJSON(t *testing.T, method, path, token string, body any) (int, any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := stdhttp.NewRequest(method, app.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}

	return resp.StatusCode, decoded
}
