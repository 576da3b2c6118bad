package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"stowage/internal/core/domain/services"
	"stowage/internal/jobs"
)

type Config struct {
	HTTPPort                string                       `mapstructure:"http_port"`
	DB                      DBConfig                     `mapstructure:"db"`
	Placement               services.PlacementPolicy     `mapstructure:"placement"`
	Rearrangement           services.RearrangementPolicy `mapstructure:"rearrangement"`
	WasteInspectionSchedule string                       `mapstructure:"waste_inspection_schedule"`
	ShutdownTimeout         time.Duration                `mapstructure:"shutdown_timeout"`
}

type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SslMode  string `mapstructure:"sslmode"`
}

// DSN renders the connection string for the gorm postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SslMode)
}

func DefaultConfig() Config {
	return Config{
		HTTPPort: "8000",
		DB: DBConfig{
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "stowage",
			SslMode: "disable",
		},
		Placement:               services.DefaultPlacementPolicy(),
		Rearrangement:           services.DefaultRearrangementPolicy(),
		WasteInspectionSchedule: jobs.DefaultWasteInspectionSchedule,
		ShutdownTimeout:         10 * time.Second,
	}
}

// LoadConfig merges defaults, an optional YAML file and the environment, in
// increasing precedence. Variables from a .env file in the working directory are
// loaded first. Environment keys are upper-cased with dots replaced by
// underscores, e.g. DB_HOST or REARRANGEMENT_PRIORITY_THRESHOLD.
//
// An empty path looks for stowage.yaml in the working directory and tolerates
// its absence.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("stowage")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := c.Placement.SelectionStrategy(); err != nil {
		return err
	}
	return c.Rearrangement.Validate()
}

// setDefaults registers every key so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("http_port", d.HTTPPort)
	v.SetDefault("db.host", d.DB.Host)
	v.SetDefault("db.port", d.DB.Port)
	v.SetDefault("db.user", d.DB.User)
	v.SetDefault("db.password", d.DB.Password)
	v.SetDefault("db.name", d.DB.Name)
	v.SetDefault("db.sslmode", d.DB.SslMode)
	v.SetDefault("placement.strategy", d.Placement.Strategy)
	v.SetDefault("rearrangement.priority_threshold", d.Rearrangement.PriorityThreshold)
	v.SetDefault("rearrangement.move_duration", d.Rearrangement.MoveDuration)
	v.SetDefault("rearrangement.rotate_duration", d.Rearrangement.RotateDuration)
	v.SetDefault("waste_inspection_schedule", d.WasteInspectionSchedule)
	v.SetDefault("shutdown_timeout", d.ShutdownTimeout)
}
