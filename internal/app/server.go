package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/activity"
	boardrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/board"
	listrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/list"
	taskrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/task"
	userrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/user"
	redisadapter "github.com/heartmarshall/taskboard-backend/internal/adapter/redis"
	"github.com/heartmarshall/taskboard-backend/internal/auth"
	"github.com/heartmarshall/taskboard-backend/internal/config"
	"github.com/heartmarshall/taskboard-backend/internal/realtime"
	"github.com/heartmarshall/taskboard-backend/internal/service/access"
	"github.com/heartmarshall/taskboard-backend/internal/service/activity"
	authsvc "github.com/heartmarshall/taskboard-backend/internal/service/auth"
	"github.com/heartmarshall/taskboard-backend/internal/service/board"
	"github.com/heartmarshall/taskboard-backend/internal/service/list"
	"github.com/heartmarshall/taskboard-backend/internal/service/task"
	"github.com/heartmarshall/taskboard-backend/internal/transport/middleware"
	"github.com/heartmarshall/taskboard-backend/internal/transport/rest"
)

// Server is the fully wired HTTP surface: REST routes, the websocket
// endpoint and the background pieces they own.
type Server struct {
	Handler http.Handler

	hub     *realtime.Hub
	limiter *middleware.RateLimiter
}

// NewServer wires repositories, services and transport over pool.
// deduper may be nil, in which case Idempotency-Key headers are ignored.
func NewServer(cfg *config.Config, pool *pgxpool.Pool, deduper *redisadapter.Deduper, logger *slog.Logger) *Server {
	// Repositories.
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	boards := boardrepo.New(pool)
	lists := listrepo.New(pool)
	tasks := taskrepo.New(pool)
	activities := activityrepo.New(pool)

	// Services.
	guard := access.NewGuard(boards)
	hub := realtime.NewHub(logger, guard, cfg.Realtime)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	activityService := activity.NewService(logger, activities, guard)
	authService := authsvc.NewService(logger, users, hasher, jwtManager)
	boardService := board.NewService(logger, boards, lists, tasks, users, guard, txm)
	listService := list.NewService(logger, lists, boards, guard, activityService, hub, txm)
	taskService := task.NewService(logger, tasks, lists, boards, guard, activityService, hub, txm)

	health := rest.NewHealthHandler(pool, BuildVersion())

	// Middleware.
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	protected := []middleware.Middleware{
		limiter.Limit("api", cfg.RateLimit.APIPerMinute),
		middleware.Auth(jwtManager),
	}
	if deduper != nil {
		health.AddCheck("redis", deduper)
		protected = append(protected, middleware.Idempotency(deduper, cfg.Redis.IdempotencyTTL, logger))
	}

	router := rest.NewRouter(
		rest.Handlers{
			Health:   health,
			Auth:     rest.NewAuthHandler(authService, logger),
			Boards:   rest.NewBoardHandler(boardService, activityService, logger),
			Lists:    rest.NewListHandler(listService, logger),
			Tasks:    rest.NewTaskHandler(taskService, logger),
			Realtime: realtime.NewHandler(hub, jwtManager, users, cfg.CORS.Origins(), logger),
		},
		rest.Middlewares{
			Common: middleware.Chain(
				middleware.Recovery(logger),
				middleware.RequestID,
				middleware.Logger(logger),
				middleware.CORS(cfg.CORS),
			),
			Public:    limiter.Limit("auth", cfg.RateLimit.AuthPerMinute),
			Protected: middleware.Chain(protected...),
		},
	)

	return &Server{Handler: router, hub: hub, limiter: limiter}
}

// Close disconnects every websocket client and stops background cleanup.
func (s *Server) Close() {
	s.hub.Close()
	s.limiter.Stop()
}
