package core

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Configuration defines a global application configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Window   WindowConfiguration
	Audio    AudioConfiguration
	Assets   AssetConfiguration
	LogLevel string
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int
}

// WindowConfiguration is used to configure the window and its graphics context
type WindowConfiguration struct {
	Title  string
	Width  int
	Height int

	// VSync prefers adaptive vsync, falling back to regular vsync
	VSync bool

	// MultisampleSamples of 0 disables multisampling
	MultisampleSamples int
}

// AudioConfiguration is used to configure the audio device
type AudioConfiguration struct {
	// Device name, empty selects the default device
	Device string
}

// AssetConfiguration tells where assets are looked up
type AssetConfiguration struct {
	// FolderName is searched for upwards from the working
	// and executable directories
	FolderName string

	// Archive, when set, is a kar archive path relative to
	// the asset root that assets are read from
	Archive string
}

// DefaultConfiguration is used for anything not set in the environment
var DefaultConfiguration = Configuration{
	Time: TimeConfiguration{
		FramesPerSecond: 60,
	},
	Window: WindowConfiguration{
		Title:              "Programming Fun App",
		Width:              640,
		Height:             480,
		VSync:              true,
		MultisampleSamples: 4,
	},
	Assets: AssetConfiguration{
		FolderName: "assets",
	},
	LogLevel: "info",
}

// Environment keys read by LoadConfiguration
const (
	EnvWindowTitle   = "FUN_WINDOW_TITLE"
	EnvWindowWidth   = "FUN_WINDOW_WIDTH"
	EnvWindowHeight  = "FUN_WINDOW_HEIGHT"
	EnvFPS           = "FUN_FPS"
	EnvVSync         = "FUN_VSYNC"
	EnvMSAASamples   = "FUN_MSAA_SAMPLES"
	EnvAudioDevice   = "FUN_AUDIO_DEVICE"
	EnvAssetsFolder  = "FUN_ASSETS_FOLDER"
	EnvAssetsArchive = "FUN_ASSETS_ARCHIVE"
	EnvLogLevel      = "FUN_LOG_LEVEL"
)

// LoadConfiguration builds the configuration from the environment.
// If envFile is given it's read first, values already present in
// the process environment take precedence over it.
func LoadConfiguration(envFile string) (Configuration, error) {
	envy.Reload()
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil {
			return Configuration{}, fmt.Errorf("godotenv.Read(%s): %w", envFile, err)
		}
		for k, v := range values {
			if _, ok := os.LookupEnv(k); !ok {
				envy.Set(k, v)
			}
		}
	}

	cfg := DefaultConfiguration
	cfg.Window.Title = envy.Get(EnvWindowTitle, cfg.Window.Title)
	cfg.Audio.Device = envy.Get(EnvAudioDevice, cfg.Audio.Device)
	cfg.Assets.FolderName = envy.Get(EnvAssetsFolder, cfg.Assets.FolderName)
	cfg.Assets.Archive = envy.Get(EnvAssetsArchive, cfg.Assets.Archive)
	cfg.LogLevel = envy.Get(EnvLogLevel, cfg.LogLevel)

	ints := []struct {
		key string
		dst *int
	}{
		{EnvWindowWidth, &cfg.Window.Width},
		{EnvWindowHeight, &cfg.Window.Height},
		{EnvFPS, &cfg.Time.FramesPerSecond},
		{EnvMSAASamples, &cfg.Window.MultisampleSamples},
	}
	for _, i := range ints {
		if err := envInt(i.key, i.dst); err != nil {
			return Configuration{}, err
		}
	}

	if raw := envy.Get(EnvVSync, ""); raw != "" {
		vsync, err := strconv.ParseBool(raw)
		if err != nil {
			return Configuration{}, fmt.Errorf("%s: %w", EnvVSync, err)
		}
		cfg.Window.VSync = vsync
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return Configuration{}, fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Time.FramesPerSecond < 0 {
		return Configuration{}, fmt.Errorf("%s must not be negative", EnvFPS)
	}
	return cfg, nil
}

func envInt(key string, dst *int) error {
	raw := envy.Get(key, "")
	if raw == "" {
		return nil
	}
	num, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = num
	return nil
}

// ConfigureLogging applies the configured level to the standard logger
func ConfigureLogging(cfg Configuration) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}
