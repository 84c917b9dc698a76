// internal/config/config.go
package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// JWTConfig はアクセストークンの署名設定です
type JWTConfig struct {
	SecretKey             string `mapstructure:"secret_key"`
	AccessTokenTTLMinutes int    `mapstructure:"access_token_ttl_minutes"`
}

// S3Config は画像アップロード先のS3設定です
type S3Config struct {
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	BaseURL         string `mapstructure:"base_url"` // 公開URLのプレフィックス (CloudFront等)。空ならS3の標準URL
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" または "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// LocalStorageConfig は開発用のローカルディスク保存設定です
type LocalStorageConfig struct {
	Dir     string `mapstructure:"dir"`
	BaseURL string `mapstructure:"base_url"`
}

// StorageConfig は画像ストレージの設定です
type StorageConfig struct {
	Driver string             `mapstructure:"driver"` // "s3" または "local"
	S3     S3Config           `mapstructure:"s3"`
	Local  LocalStorageConfig `mapstructure:"local"`
}

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Storage StorageConfig `mapstructure:"storage"`
	CORS    struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	// .env があれば先に読み込んでおく (なければ無視)
	if err := godotenv.Load(); err == nil {
		log.Println(".env file loaded")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("storage.s3.access_key_id", "AWS_ACCESS_KEY_ID")
	viper.BindEnv("storage.s3.secret_access_key", "AWS_SECRET_ACCESS_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.JWT.AccessTokenTTLMinutes <= 0 {
		Cfg.JWT.AccessTokenTTLMinutes = DefaultAccessTokenTTLMinutes
	}
	if Cfg.Storage.Driver == "" {
		log.Println("Storage driver not set, using default 'local'")
		Cfg.Storage.Driver = DefaultStorageDriver
	}
	if Cfg.Storage.Local.Dir == "" {
		Cfg.Storage.Local.Dir = DefaultLocalStorageDir
	}
	if Cfg.Storage.Local.BaseURL == "" {
		Cfg.Storage.Local.BaseURL = DefaultLocalStorageBaseURL
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Storage Driver: %s", Cfg.Storage.Driver)

	return nil
}
