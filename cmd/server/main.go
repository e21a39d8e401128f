package main

import (
	"flag"

	"energy-tracker/global"
	"energy-tracker/initialize"
	"energy-tracker/server"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	host := app.Cfg.Server.Host
	port := app.Cfg.Server.Port
	global.Logger.Info().Str("host", host).Int("port", port).Msg("server running")
	if err := server.StartHTTPServer(host, port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server exited")
	}
}
