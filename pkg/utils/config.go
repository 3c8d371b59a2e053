package utils

import (
	"github.com/chenBenjamin97/ball-tracker/pkg/track"
	"github.com/spf13/viper"
)

//SetDefaults registers the default value of every optional configuration key. Keys without a sane
//default (directories, static files path) must come from config.yaml.
func SetDefaults() {
	def := track.DefaultConfig()

	viper.SetDefault("http.port", "8080")
	viper.SetDefault("video.prod_format", "mp4")

	viper.SetDefault("model.width", ModelWidth)
	viper.SetDefault("model.height", ModelHeight)

	viper.SetDefault("extractor.threshold", HeatmapThreshold)
	viper.SetDefault("extractor.min_radius", 2)
	viper.SetDefault("extractor.max_radius", 7)
	viper.SetDefault("extractor.param1", 50.0)
	viper.SetDefault("extractor.param2", 2.0)

	viper.SetDefault("tracking.max_dist", def.MaxDist)
	viper.SetDefault("tracking.max_gap", def.MaxGap)
	viper.SetDefault("tracking.max_dist_gap", def.MaxDistGap)
	viper.SetDefault("tracking.min_track", def.MinTrack)
	viper.SetDefault("tracking.interpolate", def.Interpolate)

	viper.SetDefault("render.trace", TraceLength)
	viper.SetDefault("workers.count", 1)
}

//TrackConfig reads the 'tracking' section into a validated track.Config
func TrackConfig() (track.Config, error) {
	cfg := track.Config{
		MaxDist:     viper.GetFloat64("tracking.max_dist"),
		MaxGap:      viper.GetInt("tracking.max_gap"),
		MaxDistGap:  viper.GetFloat64("tracking.max_dist_gap"),
		MinTrack:    viper.GetInt("tracking.min_track"),
		Interpolate: viper.GetBool("tracking.interpolate"),
	}
	return cfg, cfg.Validate()
}
