package main

import (
	"os"

	"github.com/chenBenjamin97/ball-tracker/pkg/api"
	"github.com/chenBenjamin97/ball-tracker/pkg/utils"
	"github.com/chenBenjamin97/ball-tracker/pkg/video"
	"github.com/cyclopcam/logs"
	"github.com/spf13/viper"
)

func main() {
	logger, err := logs.NewLog()
	if err != nil {
		panic(err)
	}

	utils.SetDefaults()
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		logger.Errorf("Error: Could not read config file, got '%v'", err)
		os.Exit(1)
	}

	if viper.GetString("directory.source") == "" || viper.GetString("directory.ready") == "" || viper.GetString("directory.temp") == "" ||
		viper.GetString("directory.tracks") == "" || viper.GetString("frontend.static-files-path") == "" {
		logger.Errorf("Error: Missing critical configurations")
		os.Exit(1)
	}

	if viper.GetString("model.path") == "" && viper.GetString("detector.command") == "" {
		logger.Errorf("Error: Either 'model.path' or 'detector.command' must be set")
		os.Exit(1)
	}

	if _, err := utils.TrackConfig(); err != nil {
		logger.Errorf("Error: Invalid tracking configuration, got '%v'", err)
		os.Exit(1)
	}

	//create missing directories from config file
	if err := utils.EnsureDirs(viper.GetString("directory.root"), viper.GetString("directory.source"), viper.GetString("directory.ready"),
		viper.GetString("directory.temp"), viper.GetString("directory.tracks")); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	queue := video.NewQueue(logger, viper.GetInt("workers.count"), 16, func(name string) error {
		return video.Tag(logger, name)
	})
	defer queue.Close()

	r := api.SetRouter(logger, queue)
	if err := r.Run(":" + viper.GetString("http.port")); err != nil {
		logger.Errorf("Error: Got '%v'", err)
	}
}
