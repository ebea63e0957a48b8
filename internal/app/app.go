package app

import (
	"context"
	"log"
	"log/slog"

	"github.com/reeltaste/core/internal/config"
	http_auth "github.com/reeltaste/core/internal/delivery/http/auth"
	http_catalog "github.com/reeltaste/core/internal/delivery/http/catalog"
	http_club "github.com/reeltaste/core/internal/delivery/http/club"
	http_feed "github.com/reeltaste/core/internal/delivery/http/feed"
	http_init "github.com/reeltaste/core/internal/delivery/http/init"
	http_metrics "github.com/reeltaste/core/internal/delivery/http/metrics"
	http_session_middleware "github.com/reeltaste/core/internal/delivery/http/middleware/session"
	http_navigation "github.com/reeltaste/core/internal/delivery/http/navigation"
	http_notification "github.com/reeltaste/core/internal/delivery/http/notification"
	http_profile "github.com/reeltaste/core/internal/delivery/http/profile"
	http_ratings "github.com/reeltaste/core/internal/delivery/http/ratings"
	http_recommend "github.com/reeltaste/core/internal/delivery/http/recommend"
	http_swagger "github.com/reeltaste/core/internal/delivery/http/swagger"
	http_watchlist "github.com/reeltaste/core/internal/delivery/http/watchlist"
	ws_club "github.com/reeltaste/core/internal/delivery/ws/club"
	infra_postgres_catalog "github.com/reeltaste/core/internal/infra/postgres/catalog"
	infra_pg_init "github.com/reeltaste/core/internal/infra/postgres/init"
	infra_devstore "github.com/reeltaste/core/internal/infra/redis/devstore"
	infra_redis_init "github.com/reeltaste/core/internal/infra/redis/init"
	infra_session_cache "github.com/reeltaste/core/internal/infra/redis/session"
	infra_tmdb "github.com/reeltaste/core/internal/infra/tmdb"
	service_device_auth "github.com/reeltaste/core/internal/service/auth/device"
	usecase_catalog "github.com/reeltaste/core/internal/usecase/catalog"
	usecase_club "github.com/reeltaste/core/internal/usecase/club"
	usecase_recommend "github.com/reeltaste/core/internal/usecase/recommend"
	usecase_session "github.com/reeltaste/core/internal/usecase/session"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)

	// The catalog falls back to the embedded seed when no database is
	// configured, so a single binary still runs end to end.
	var catalogRepo usecase_catalog.Repository
	if cfg.Postgres.Host != "" {
		pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
		catalogRepo = infra_postgres_catalog.New(pgConn)
	}

	catalogUC := usecase_catalog.New(catalogRepo, infra_tmdb.New(cfg.TMDB))
	if err := catalogUC.Init(context.Background()); err != nil {
		log.Fatalf("failed to init catalog: %v", err)
	}

	sessionCache := infra_session_cache.New(redisConn, "session_cache")
	deviceStore := infra_devstore.New(redisConn, "device")
	authService := service_device_auth.New(sessionCache, deviceStore)

	sessions := usecase_session.NewManager()
	sessionMiddleware := http_session_middleware.New(authService, sessions)

	recommendUC := usecase_recommend.New(catalogUC)
	clubUC := usecase_club.New()

	hub := ws_club.New(slog.Default())

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_metrics.New())
	controllerPool.Add(http_auth.New(authService, sessions, sessionMiddleware))
	controllerPool.Add(http_profile.New(authService, sessionMiddleware))
	controllerPool.Add(http_ratings.New(catalogUC, sessionMiddleware))
	controllerPool.Add(http_watchlist.New(catalogUC, sessionMiddleware))
	controllerPool.Add(http_feed.New(sessionMiddleware))
	controllerPool.Add(http_notification.New(sessionMiddleware))
	controllerPool.Add(http_navigation.New(sessionMiddleware))
	controllerPool.Add(http_recommend.New(recommendUC, sessionMiddleware))
	controllerPool.Add(http_catalog.New(catalogUC, sessionMiddleware))
	controllerPool.Add(http_club.New(clubUC, hub, sessionMiddleware))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
