package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/planetary-api/internal/config"
	"github.com/sbilibin2017/planetary-api/internal/events"
	"github.com/sbilibin2017/planetary-api/internal/jwt"
	"github.com/sbilibin2017/planetary-api/internal/mailer"
	"github.com/sbilibin2017/planetary-api/internal/models"
	"github.com/sbilibin2017/planetary-api/internal/services"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

func TestNewNotifier(t *testing.T) {
	smtp := newNotifier(config.MailConfig{Provider: config.MailProviderSMTP, Server: "localhost", Port: 2525})
	assert.IsType(t, &mailer.SMTPSender{}, smtp)

	mg := newNotifier(config.MailConfig{Provider: config.MailProviderMailgun, MailgunDomain: "mg.example.com", MailgunAPIKey: "key"})
	assert.IsType(t, &mailer.MailgunSender{}, mg)
}

func TestNewPublisher(t *testing.T) {
	nop := newPublisher(config.KafkaConfig{Topic: "users"})
	assert.IsType(t, events.NopPublisher{}, nop)

	kafka := newPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "users"})
	assert.IsType(t, &events.KafkaPublisher{}, kafka)
	assert.NoError(t, kafka.Close())
}

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	userReader := services.NewMockUserReader(ctrl)
	planetReader := services.NewMockPlanetReader(ctrl)

	tokens := jwt.New(jwt.WithSecretKey("secret"), jwt.WithExpiration(time.Minute))
	auth := services.NewAuthService(
		userReader,
		services.NewMockUserWriter(ctrl),
		tokens,
		services.NewMockResetTokenStore(ctrl),
		services.NewMockNotifier(ctrl),
		nil,
		time.Minute,
	)
	registry := prometheus.NewRegistry()
	router := newRouter(routerDeps{
		auth:       auth,
		planets:    services.NewPlanetService(planetReader, nil),
		tokener:    tokens,
		registry:   registry,
		swaggerURL: "http://localhost:8080/swagger/doc.json",
	})

	hash, err := bcrypt.GenerateFromPassword([]byte("Passw0rd"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: 7, FirstName: "William", LastName: "Herschel", Email: "test@test.com", PasswordHash: string(hash)}

	t.Run("planets", func(t *testing.T) {
		planetReader.EXPECT().List(gomock.Any()).Return([]models.Planet{{PlanetID: 1, PlanetName: "Mercury"}}, nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/planets", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		assert.Contains(t, rr.Body.String(), `"planet_name":"Mercury"`)
	})

	t.Run("login then profile", func(t *testing.T) {
		userReader.EXPECT().GetByEmail(gomock.Any(), "test@test.com").Return(user, nil).Times(2)

		form := url.Values{"email": {"test@test.com"}, "password": {"Passw0rd"}}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var login models.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &login))
		require.NotEmpty(t, login.AccessToken)

		req = httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.Header.Set("Authorization", "Bearer "+login.AccessToken)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":7,"first_name":"William","last_name":"Herschel","email":"test@test.com"}`, rr.Body.String())
	})

	t.Run("profile without token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/profile", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `http_requests_total{method="GET",route="/planets",status="200"} 1`)
	})

	t.Run("swagger", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "/retrieve_password/{email}")
	})
}

func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	cfg := &config.Config{
		App: config.AppConfig{Host: "127.0.0.1", Port: "18086", LogLevel: "debug"},
		Postgres: config.PostgresConfig{
			Host: pgHost, Port: pgPort.Int(), User: "user", Password: "password", DB: "testdb",
			SSLMode: "disable", MaxOpenConns: 5, MaxIdleConns: 2,
		},
		Redis: config.RedisConfig{Host: redisHost, Port: redisPort.Int(), PoolSize: 10, MinIdleConns: 2},
		JWT:   config.JWTConfig{SecretKey: "testsecret", Exp: time.Minute},
		Reset: config.ResetConfig{TokenTTL: time.Minute},
		Mail:  config.MailConfig{Provider: config.MailProviderSMTP, Server: "localhost", Port: 2525, Sender: "admin@planetary-api.com"},
		Kafka: config.KafkaConfig{Topic: "users"},
	}

	testCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- run(testCtx, cfg) }()

	base := "http://" + cfg.App.Addr()
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/planets")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 15*time.Second, 100*time.Millisecond)

	form := url.Values{"first_name": {"Ada"}, "last_name": {"Lovelace"}, "email": {"ada@x.com"}, "password": {"p1"}}
	resp, err := http.PostForm(base+"/register", form)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, err = http.PostForm(base+"/register", form)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	cancel()
	select {
	case <-time.After(15 * time.Second):
		t.Fatal("run did not stop")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}
