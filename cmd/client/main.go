package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/blueprint-utils/internal/adapter"
	"github.com/MKhiriev/blueprint-utils/internal/client"
	"github.com/MKhiriev/blueprint-utils/internal/config"
	"github.com/MKhiriev/blueprint-utils/internal/logger"
	"github.com/MKhiriev/blueprint-utils/internal/tui"
	"github.com/MKhiriev/blueprint-utils/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("blueprint-client", os.Stderr)

	flagArgs, commandArgs := splitArgs(os.Args[1:])

	cfg, err := config.GetClientConfig(flagArgs)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	blueprintClient, err := adapter.NewHTTPBlueprintClient(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blueprint client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(blueprintClient, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdout, log)
	if err = app.Run(ctx, commandArgs); err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		stop()
		os.Exit(1)
	}
}

// splitArgs separates configuration flags from the command and its
// arguments. Flags come first; the first non-flag argument starts the
// command.
func splitArgs(args []string) (flags, command []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args[:i], args[i+1:]
		}
		if len(arg) < 2 || arg[0] != '-' {
			return args[:i], args[i:]
		}
		if !strings.Contains(arg, "=") && !isBoolFlag(arg) && i+1 < len(args) {
			i++
		}
	}
	return args, nil
}

// isBoolFlag reports the configuration flags that take no value.
func isBoolFlag(arg string) bool {
	switch arg {
	case "-migrate", "--migrate", "-pluralize", "--pluralize":
		return true
	}
	return false
}
