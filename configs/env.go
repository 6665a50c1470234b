package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName    string
	AwsRegion          string
	AwsEndpoint        string
	AwsAccessKeyID     string
	AwsSecretAccessKey string
	AwsSessionToken    string
	AwsMaxAttempts     int
}

var Env *EnvConfig

func init() {
	Env = Load()
}

// Load reads the process environment, optionally seeded from a .env file in the working directory
func Load() *EnvConfig {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	return &EnvConfig{
		ApplicationName:    getStringOrDefault(v, "APPLICATION_NAME", "sqs-seeder"),
		AwsRegion:          v.GetString("AWS_REGION"),
		AwsEndpoint:        v.GetString("AWS_ENDPOINT_URL"),
		AwsAccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
		AwsSecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		AwsSessionToken:    v.GetString("AWS_SESSION_TOKEN"),
		AwsMaxAttempts:     v.GetInt("AWS_MAX_ATTEMPTS"),
	}
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
