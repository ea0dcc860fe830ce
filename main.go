//go:build linux

package main

import (
	"flag"

	"github.com/framesnap/framesnap/internal/app"
	"github.com/framesnap/framesnap/internal/snapshot"
	"github.com/rs/zerolog/log"
)

func main() {
	app.Init() // init config and logs

	// optional positional device path overrides the config
	if err := snapshot.Run(flag.Arg(0)); err != nil {
		log.Fatal().Err(err).Msg("snapshot")
	}
}
