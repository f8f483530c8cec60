package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/devblok/fun/asset"
	"github.com/devblok/fun/audio"
	"github.com/devblok/fun/core"
	"github.com/devblok/fun/decode"
	"github.com/devblok/fun/demo"
	"github.com/devblok/fun/lifecycle"
	"github.com/devblok/fun/platform/imgui"
	"github.com/devblok/fun/platform/openal"
	"github.com/devblok/fun/platform/opengl"
	"github.com/devblok/fun/platform/sdl"
	log "github.com/sirupsen/logrus"
)

func init() {
	runtime.LockOSThread()
}

var envFile = flag.String("env", "", "dotenv file to read configuration from")

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	configuration, err := core.LoadConfiguration(*envFile)
	if err != nil {
		log.WithError(err).Error("Invalid configuration")
		return 1
	}
	if err := core.ConfigureLogging(configuration); err != nil {
		log.WithError(err).Error("Invalid log level")
		return 1
	}

	windowing, err := sdl.NewWindowing()
	if err != nil {
		log.WithError(err).Error("Failed to initialize SDL")
		return 1
	}
	defer windowing.Destroy()

	locator := asset.NewLocator(configuration.Assets.FolderName, asset.WorkingDirectory, sdl.BasePath)
	manager := lifecycle.NewManager(configuration, lifecycle.Backends{
		Windowing: windowing,
		Graphics:  opengl.NewProvider(configuration.Window),
		UI:        imgui.Provider{},
		Audio:     openal.Provider{},
		Images:    decode.Images{},
		AudioDecoders: map[audio.Container]core.AudioDecoder{
			audio.ContainerWAV:    core.AudioDecoderFunc(sdl.DecodeWAV),
			audio.ContainerVorbis: core.AudioDecoderFunc(audio.DecodeVorbis),
		},
	}, locator)
	defer manager.Shutdown()

	if err := manager.Startup(demo.New()); err != nil {
		log.WithError(err).Error("Startup failed")
		return 1
	}

	time := core.NewTime(configuration.Time)
	defer time.Stop()

	if err := manager.Run(time); err != nil {
		log.WithError(err).Error("Event loop failed")
		return 1
	}
	return 0
}
