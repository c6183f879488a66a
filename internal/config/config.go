package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"sync"
	"time"
)

type Config struct {
	Env     string `yaml:"env" env-default:"local"`
	LogPath string `yaml:"log_path" env-default:""`
	Telegram struct {
		ApiKey  string `yaml:"api_key" env-default:""`
		AdminId int64  `yaml:"admin_id" env-default:"0"`
		BotName string `yaml:"bot_name" env-default:"RepairDeskBot"`
		Enabled bool   `yaml:"enabled" env-default:"false"`
	} `yaml:"telegram"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env-default:"false"`
		Host     string `yaml:"host" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env-default:"27017"`
		User     string `yaml:"user" env-default:"admin"`
		Password string `yaml:"password" env-default:"pass"`
		Database string `yaml:"database" env-default:"repairdesk"`
	} `yaml:"mongo"`
	RepairApi struct {
		BaseURL string        `yaml:"base_url" env-default:""`
		ApiKey  string        `yaml:"api_key" env-default:""`
		Timeout time.Duration `yaml:"timeout" env-default:"10s"`
	} `yaml:"repair_api"`
	Catalog struct {
		TTL time.Duration `yaml:"ttl" env-default:"5m"`
	} `yaml:"catalog"`
	Session struct {
		TTL     time.Duration `yaml:"ttl" env-default:"30m"`
		Cleanup time.Duration `yaml:"cleanup" env-default:"5m"`
	} `yaml:"session"`
	Pricing struct {
		CacheSize int `yaml:"cache_size" env-default:"256"`
	} `yaml:"pricing"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env-default:"127.0.0.1"`
		Port   string `yaml:"port" env-default:"9100"`
		ApiKey string `yaml:"key" env-default:""`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("%s; %s", err, desc)
			instance = nil
			log.Fatal(err)
		}
	})
	return instance
}
