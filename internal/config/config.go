package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env    string `yaml:"env" env:"ENV" env-default:"local"`
	Listen struct {
		BindIP  string        `yaml:"bind_ip" env:"LISTEN_BIND_IP" env-default:"127.0.0.1"`
		Port    string        `yaml:"port" env:"LISTEN_PORT" env-default:"9100"`
		Timeout time.Duration `yaml:"timeout" env:"LISTEN_TIMEOUT" env-default:"60s"`
	} `yaml:"listen"`
	Assistant struct {
		Provider     string  `yaml:"provider" env:"ASSISTANT_PROVIDER" env-default:"gemini"`
		Model        string  `yaml:"model" env:"ASSISTANT_MODEL" env-default:""`
		Temperature  float32 `yaml:"temperature" env:"ASSISTANT_TEMPERATURE" env-default:"0.7"`
		HistoryTurns int     `yaml:"history_turns" env:"ASSISTANT_HISTORY_TURNS" env-default:"20"`
	} `yaml:"assistant"`
	Gemini struct {
		ApiKey string `yaml:"api_key" env:"GEMINI_API_KEY" env-default:""`
	} `yaml:"gemini"`
	OpenAI struct {
		ApiKey string `yaml:"api_key" env:"OPENAI_API_KEY" env-default:""`
	} `yaml:"openai"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:""`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:""`
		Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"ats"`
	} `yaml:"mongo"`
	Redis struct {
		Enabled  bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
		Host     string        `yaml:"host" env:"REDIS_HOST" env-default:"127.0.0.1"`
		Port     int           `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
		Password string        `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
		DB       int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
		TTL      time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"0s"`
	} `yaml:"redis"`
	Telegram struct {
		Enabled bool   `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
		ApiKey  string `yaml:"api_key" env:"TELEGRAM_API_KEY" env-default:""`
		AdminId int64  `yaml:"admin_id" env:"TELEGRAM_ADMIN_ID" env-default:"0"`
		BotName string `yaml:"bot_name" env:"TELEGRAM_BOT_NAME" env-default:"AtsAssistantBot"`
	} `yaml:"telegram"`
	Catalog struct {
		DatasetPath string `yaml:"dataset_path" env:"CATALOG_DATASET_PATH" env-default:""`
		Source      string `yaml:"source" env:"CATALOG_SOURCE" env-default:"file"` // file or mongo
	} `yaml:"catalog"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	once.Do(func() {
		conf, err := Load(path)
		if err != nil {
			log.Fatal(err)
		}
		instance = conf
	})
	return instance
}

// Load reads the YAML file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	conf := &Config{}
	if err := cleanenv.ReadConfig(path, conf); err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("%s; %s", err, desc)
	}
	return conf, nil
}
