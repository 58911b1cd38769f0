package config

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/viper"

	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/constant"
)

type Config struct {
	App     App           `yaml:"app"`
	Server  Server        `yaml:"server"`
	Storage Storage       `yaml:"storage"`
	DB      *sql.DB       `yaml:"db"`
	Queue   *RabbitMQ     `yaml:"rabbitmq"`
	MinIO   *minio.Client `yaml:"minio"`
}

type App struct {
	Environment string `yaml:"environment"`
	Host        string `yaml:"host"`
	Protocol    string `yaml:"protocol"`
}

type Server struct {
	HttpPort string `yaml:"http_port"`
}

// Storage selects the blob backend once at process start. Backend is either
// "minio" or "local"; LocalDir is only read for the local backend, Bucket
// only for minio.
type Storage struct {
	Backend  constant.StorageBackend `yaml:"backend"`
	Bucket   string                  `yaml:"bucket"`
	LocalDir string                  `yaml:"local_dir"`
}

type RabbitMQ struct {
	Host         string `json:"host"`
	Port         int    `json:"port"`
	User         string `json:"user"`
	Pass         string `json:"pass"`
	ExchangeName string `json:"exchange_name"`
	Kind         string `json:"kind"`
}

func Load(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", viper.GetString("postgresql_host"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: App{
			Environment: viper.GetString("app.environment"),
			Host:        viper.GetString("app.host"),
			Protocol:    viper.GetString("app.protocol"),
		},
		Server: Server{
			HttpPort: viper.GetString("server.port"),
		},
		Storage: Storage{
			Backend:  constant.StorageBackend(viper.GetString("storage.backend")),
			Bucket:   viper.GetString("minio.bucket"),
			LocalDir: viper.GetString("storage.local_dir"),
		},
		DB: db,
	}

	switch cfg.Storage.Backend {
	case constant.StorageBackendMinIO:
		minioClient, err := minio.New(viper.GetString("minio.url"), &minio.Options{
			Creds:  credentials.NewStaticV4(viper.GetString("minio.access_id"), viper.GetString("minio.secret_access_key"), ""),
			Secure: viper.GetBool("minio.secure"),
		})
		if err != nil {
			return nil, err
		}
		cfg.MinIO = minioClient
	case constant.StorageBackendLocal:
		if cfg.Storage.LocalDir == "" {
			return nil, fmt.Errorf("storage.local_dir is required for the local backend")
		}
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	if viper.GetString("rabbitmq_host") != "" {
		cfg.Queue = &RabbitMQ{
			Host:         viper.GetString("rabbitmq_host"),
			Port:         viper.GetInt("rabbitmq_port"),
			User:         viper.GetString("rabbitmq_user"),
			Pass:         viper.GetString("rabbitmq_pass"),
			Kind:         viper.GetString("rabbitmq_kind"),
			ExchangeName: viper.GetString("rabbitmq_exchange"),
		}
	}

	return cfg, nil
}
