package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Server struct {
	Host      string
	Port      int
	StaticDir string
}

type DB struct {
	Driver string // "sqlite" or "mysql"
	Path   string // sqlite file path
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

type Session struct {
	Backend string // "memory" or "redis"
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Admin is the bootstrap account seeded at startup when its email is absent.
type Admin struct {
	Username string
	Email    string
	Password string
	Location string
}

type Config struct {
	Server  Server
	DB      DB
	Session Session
	Redis   Redis
	Admin   Admin
}

// Load reads the yaml config at path. A missing file is fine; every key has
// a default so the server can boot bare.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.static_dir", "static")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "energy_db.sqlite")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "energy_tracker")
	v.SetDefault("session.backend", "memory")
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("admin.username", "Admin")
	v.SetDefault("admin.email", "admin@energy.com")
	v.SetDefault("admin.password", "Admin@123")
	v.SetDefault("admin.location", "Head Office")
	_ = v.ReadInConfig()

	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info().Str("file", e.Name).Str("op", e.Op.String()).Msg("config file changed; restart to apply")
	})
	v.WatchConfig()

	cfg := &Config{
		Server: Server{
			Host:      v.GetString("server.host"),
			Port:      v.GetInt("server.port"),
			StaticDir: v.GetString("server.static_dir"),
		},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Path:   v.GetString("db.path"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
		},
		Session: Session{Backend: v.GetString("session.backend")},
		Redis: Redis{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Admin: Admin{
			Username: v.GetString("admin.username"),
			Email:    v.GetString("admin.email"),
			Password: v.GetString("admin.password"),
			Location: v.GetString("admin.location"),
		},
	}
	return cfg, nil
}
