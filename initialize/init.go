package initialize

import (
	"fmt"
	"net/http"

	"energy-tracker/app/controllers"
	"energy-tracker/app/db"
	"energy-tracker/app/middleware"
	"energy-tracker/app/models"
	"energy-tracker/app/repo"
	"energy-tracker/app/services"
	"energy-tracker/app/session"
	"energy-tracker/config"
	"energy-tracker/global"
	"energy-tracker/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Sessions session.Store
	Router   http.Handler
	Auth     *controllers.AuthController
	History  *controllers.HistoryController
	Users    *services.UserService
	HistSvc  *services.HistoryService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.HistoryRecord{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Services
	userRepo := repo.NewUserRepository(gdb)
	histRepo := repo.NewHistoryRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	histSvc := services.NewHistoryService(histRepo)

	created, err := userSvc.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Location)
	if err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	if created {
		global.Logger.Info().Str("email", cfg.Admin.Email).Msg("admin created")
	} else {
		global.Logger.Info().Str("email", cfg.Admin.Email).Msg("admin already exists")
	}

	// Session store
	var sessions session.Store
	if cfg.Session.Backend == "redis" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		global.Rdb = rdb
		sessions = session.NewRedisStore(rdb)
	} else {
		sessions = session.NewMemoryStore()
	}

	// Controllers
	authCtrl := controllers.NewAuthController(userSvc, sessions)
	histCtrl := controllers.NewHistoryController(histSvc)
	mw := &middleware.Auth{Sessions: sessions}

	// Router
	h := router.NewRouter(authCtrl, histCtrl, mw, cfg.Server.StaticDir)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Sessions: sessions, Router: h, Auth: authCtrl, History: histCtrl, Users: userSvc, HistSvc: histSvc}, nil
}
