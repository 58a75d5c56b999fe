package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type SimConfig struct {
	Env           string `yaml:"env"`
	LogConfig     `yaml:"log_config"`
	Replay        `yaml:"replay"`
	MetricsServer `yaml:"metrics_server"`
	KafkaService  `yaml:"kafka-service"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type Replay struct {
	InputPath  string `yaml:"input_path"`
	OutputPath string `yaml:"output_path"`
}

type MetricsServer struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
}

type KafkaService struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Topic   string `yaml:"topic"`
}

func MustLoad() *SimConfig {

	// Processing env config variable and file
	configPath := os.Getenv("SIM_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("SIM_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg SimConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
