package app

import (
	"net/http"

	"herdbook-go/internal/config"
	"herdbook-go/internal/db"
	"herdbook-go/internal/domain/animals"
	"herdbook-go/internal/domain/breeds"
	"herdbook-go/internal/domain/farms"
	"herdbook-go/internal/domain/notifications"
	"herdbook-go/internal/domain/stats"
	"herdbook-go/internal/domain/users"
	"herdbook-go/internal/repository/inmemory"
	animalspg "herdbook-go/internal/repository/postgres/animals"
	breedspg "herdbook-go/internal/repository/postgres/breeds"
	farmspg "herdbook-go/internal/repository/postgres/farms"
	notificationspg "herdbook-go/internal/repository/postgres/notifications"
	statspg "herdbook-go/internal/repository/postgres/stats"
	userspg "herdbook-go/internal/repository/postgres/users"
	"herdbook-go/internal/transport/httpserver"
	"herdbook-go/internal/transport/httpserver/handler"
	"herdbook-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	animalsService := animals.NewService(animalspg.NewPostgres(dbConn))
	breedsService := breeds.NewService(breedspg.NewPostgres(dbConn))
	statsService := stats.NewService(statspg.NewPostgres(dbConn))
	notificationsService := notifications.NewService(notificationspg.NewPostgres(dbConn))
	usersService := users.NewService(userspg.NewPostgres(dbConn))

	farmsRepo := farmspg.NewPostgres(dbConn)
	var farmsService *farms.Service
	if cfg.FarmCache.Enabled {
		farmsService = farms.NewServiceWithCache(farmsRepo, inmemory.NewFarmCache(), cfg.FarmCache.TTL)
	} else {
		farmsService = farms.NewService(farmsRepo)
	}

	handlers := handler.New(
		animalsService,
		breedsService,
		farmsService,
		statsService,
		notificationsService,
		usersService,
		log,
	)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, usersService, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
