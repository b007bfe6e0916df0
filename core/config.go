package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		Env      string // DEV (default), TEST, QA, PROD
		AppName  string
		Build    string
		TestMode bool

		Storage StorageConfig
		Rollbar RollbarConfig
	}

	StorageConfig struct {
		Engine string // inmem | badger | sqlite
		Dir    string
	}

	RollbarConfig struct {
		Token string
	}
)

func NewConfig() (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Honours Class Tracker")
	v.SetDefault("storageEngine", "badger")
	v.SetDefault("storageDir", filepath.Join(".", "data"))
	v.SetDefault("rollbarToken", "")
	v.SetDefault("build", "")

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:    v.GetBool("debug"),
		Env:      env,
		AppName:  v.GetString("appName"),
		Build:    v.GetString("build"),
		TestMode: v.GetBool("testMode"),
		Storage: StorageConfig{
			Engine: v.GetString("storageEngine"),
			Dir:    v.GetString("storageDir"),
		},
		Rollbar: RollbarConfig{
			Token: v.GetString("rollbarToken"),
		},
	}
	return conf, nil
}
