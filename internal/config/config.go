package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa toda la configuración del servicio.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	DogAPI    DogAPIConfig    `mapstructure:"dogapi"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Favorites FavoritesConfig `mapstructure:"favorites"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	App    string `mapstructure:"app"`
}

// DogAPIConfig apunta a la API REST externa de perros.
type DogAPIConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

// StorageConfig elige el backend del slot de favoritos: memory|postgres|redis|mongo.
type StorageConfig struct {
	Driver          string        `mapstructure:"driver"`
	PostgresDSN     string        `mapstructure:"postgres_dsn"`
	RedisURL        string        `mapstructure:"redis_url"`
	RedisTTL        time.Duration `mapstructure:"redis_ttl"` // 0 = sin expiración
	MongoURI        string        `mapstructure:"mongo_uri"`
	MongoDatabase   string        `mapstructure:"mongo_database"`
	MongoCollection string        `mapstructure:"mongo_collection"`
	Timeout         time.Duration `mapstructure:"timeout"`
	RetryInterval   time.Duration `mapstructure:"retry_interval"`
}

type FavoritesConfig struct {
	Max int `mapstructure:"max"`
	// PublicURL es la base de los links para compartir favoritos.
	PublicURL string `mapstructure:"public_url"`
	// CacheSize y CacheTTL acotan los clientes que se mantienen en memoria.
	CacheSize int           `mapstructure:"cache_size"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load lee .env (si existe), configs/config.yaml (si existe) y variables de entorno.
// Las env vars usan "_" como separador: SERVER_PORT, DOGAPI_BASE_URL, STORAGE_DRIVER...
func Load(paths ...string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./configs", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Las listas por env llegan como "a, b, c".
	cfg.CORS.AllowedOrigins = splitCSV(strings.Join(cfg.CORS.AllowedOrigins, ","))
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.app", "rescue-dog-favorites")

	v.SetDefault("dogapi.base_url", "http://localhost:8000")
	v.SetDefault("dogapi.timeout", 10*time.Second)
	v.SetDefault("dogapi.requests_per_second", 50)
	v.SetDefault("dogapi.burst", 20)

	v.SetDefault("storage.driver", "memory")
	v.SetDefault("storage.postgres_dsn", "")
	v.SetDefault("storage.redis_url", "")
	v.SetDefault("storage.redis_ttl", time.Duration(0))
	v.SetDefault("storage.mongo_uri", "")
	v.SetDefault("storage.mongo_database", "rescue_dogs")
	v.SetDefault("storage.mongo_collection", "favorite_slots")
	v.SetDefault("storage.timeout", 3*time.Second)
	v.SetDefault("storage.retry_interval", 5*time.Second)

	v.SetDefault("favorites.max", 100)
	v.SetDefault("favorites.public_url", "http://localhost:3000/favorites")
	v.SetDefault("favorites.cache_size", 10000)
	v.SetDefault("favorites.cache_ttl", 30*time.Minute)

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
}

func splitCSV(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
