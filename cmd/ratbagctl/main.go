package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/mistepien/libratbag/internal/cmd"
	"github.com/mistepien/libratbag/internal/configpaths"
	"github.com/mistepien/libratbag/internal/log"

	_ "github.com/mistepien/libratbag/internal/registry" // Register built-in drivers

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli cmd.CLI
	kctx := kong.Parse(&cli,
		kong.Name("ratbagctl"),
		kong.Description("Configure vendor gaming mice through pluggable protocol drivers"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	handler, level, closeFiles, err := log.Setup(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logging: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	kctx.Bind(&cmd.Runtime{
		Logger:  slog.New(handler),
		Handler: handler,
		Level:   level,
	})

	err = kctx.Run()
	kctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("RATBAGCTL_CONFIG"); v != "" {
		return v
	}
	return ""
}
