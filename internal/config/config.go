package config

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Storage struct {
		// Mode is "file" (single JSON document) or "database" (Postgres).
		Mode string `mapstructure:"mode"`
		// Images is "path" or "inline"; only meaningful in database mode.
		Images    string `mapstructure:"images"`
		DataFile  string `mapstructure:"data_file"`
		PublicDir string `mapstructure:"public_dir"`
		UploadDir string `mapstructure:"upload_dir"`
		IconsDir  string `mapstructure:"icons_dir"`
	} `mapstructure:"storage"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	GitHub struct {
		Username string `mapstructure:"username"`
		Token    string `mapstructure:"token"`
	} `mapstructure:"github"`
	Media struct {
		// Provider is "local" or "cloudinary".
		Provider string `mapstructure:"provider"`
	} `mapstructure:"media"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
}

func LoadConfig() (cfg Config, err error) {

	err = godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err = viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("storage.mode", "file")
	viper.SetDefault("storage.images", "path")
	viper.SetDefault("storage.data_file", "data.json")
	viper.SetDefault("storage.public_dir", "public")
	viper.SetDefault("storage.icons_dir", "public/assets/icon")
	viper.SetDefault("media.provider", "local")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("storage.mode", "STORAGE_MODE")
	viper.BindEnv("storage.images", "STORAGE_IMAGES")
	viper.BindEnv("storage.data_file", "STORAGE_DATA_FILE")
	viper.BindEnv("storage.public_dir", "STORAGE_PUBLIC_DIR")
	viper.BindEnv("storage.upload_dir", "STORAGE_UPLOAD_DIR")
	viper.BindEnv("storage.icons_dir", "STORAGE_ICONS_DIR")
	viper.BindEnv("db.dsn", "DB_DSN")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	viper.BindEnv("github.username", "GITHUB_USERNAME")
	viper.BindEnv("github.token", "GITHUB_TOKEN")
	viper.BindEnv("media.provider", "MEDIA_PROVIDER")

	viper.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	viper.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	viper.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	if err = viper.Unmarshal(&cfg); err != nil {
		return
	}

	// Upload paths are returned as /uploads/<name> and cleaned up under the
	// public tree, so the upload dir must live at <public_dir>/uploads.
	// An explicit STORAGE_UPLOAD_DIR override must honor that itself.
	if cfg.Storage.UploadDir == "" {
		cfg.Storage.UploadDir = filepath.Join(cfg.Storage.PublicDir, "uploads")
	}
	return
}
