// file: config/config.go
package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr    string `mapstructure:"listen_addr"`
	MySQLDSN      string `mapstructure:"mysql_dsn"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	JWTSecret     string `mapstructure:"jwt_secret"`
	UploadDir     string `mapstructure:"upload_dir"`
}

func New() *Config {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		logrus.Fatalf("unmarshalling config: %v", err)
	}
	return cfg
}

func SetupCommon() {
	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("mysql_dsn", "root:123456@tcp(localhost:3306)/ctflab?charset=utf8mb4&parseTime=True&loc=Local")
	viper.SetDefault("redis_addr", "localhost:6379")
	viper.SetDefault("redis_password", "")
	viper.SetDefault("upload_dir", "./uploads")
	viper.SetEnvPrefix("CTFLAB")

	viper.MustBindEnv("jwt_secret")
	viper.AutomaticEnv()
}
