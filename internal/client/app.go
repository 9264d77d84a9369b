package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/MKhiriev/blueprint-utils/internal/adapter"
	"github.com/MKhiriev/blueprint-utils/internal/logger"
	"github.com/MKhiriev/blueprint-utils/internal/tui"
	"github.com/MKhiriev/blueprint-utils/internal/workers"
	"github.com/MKhiriev/blueprint-utils/models"
)

type App struct {
	client    adapter.BlueprintClient
	buildInfo models.AppBuildInfo

	mu  sync.Mutex
	out io.Writer

	logger *logger.Logger
}

func NewApp(client adapter.BlueprintClient, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	return &App{
		client:    client,
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}
}

type command struct {
	minArgs, maxArgs int
	usage            string
	run              func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"version":           {0, 0, "version", (*App).version},
	"count":             {1, 2, "count <model> [where]", (*App).count},
	"associations":      {1, 1, "associations <model>", (*App).associations},
	"schema":            {1, 1, "schema <model>", (*App).schema},
	"filters":           {1, 1, "filters <model>", (*App).filters},
	"titles":            {1, 1, "titles <model>", (*App).titles},
	"association-count": {3, 4, "association-count <model> <id> <collection> [where]", (*App).associationCount},
	"inspect":           {1, -1, "inspect <model> [model...]", (*App).inspect},
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: expected one of %s", ErrUsage, strings.Join(commandNames(), ", "))
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	rest := args[1:]
	if len(rest) < cmd.minArgs || (cmd.maxArgs >= 0 && len(rest) > cmd.maxArgs) {
		return fmt.Errorf("%w: usage: %s", ErrUsage, cmd.usage)
	}

	a.logger.Debug().Str("command", args[0]).Strs("args", rest).Msg("running command")
	return cmd.run(a, ctx, rest)
}

func commandNames() []string {
	return []string{"version", "count", "associations", "schema", "filters", "titles", "association-count", "inspect"}
}

func (a *App) print(s string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, _ = fmt.Fprintln(a.out, s)
}

func (a *App) version(ctx context.Context, _ []string) error {
	serverVersion, err := a.client.Version(ctx)
	if err != nil {
		return err
	}
	a.print(tui.RenderBuildInfo(a.buildInfo, serverVersion))
	return nil
}

func (a *App) count(ctx context.Context, args []string) error {
	where, err := parseWhere(args, 1)
	if err != nil {
		return err
	}

	n, err := a.client.Count(ctx, args[0], where)
	if err != nil {
		return err
	}
	a.print(tui.RenderCount(args[0]+" COUNT", n))
	return nil
}

func (a *App) associationCount(ctx context.Context, args []string) error {
	where, err := parseWhere(args, 3)
	if err != nil {
		return err
	}

	n, err := a.client.AssociationCount(ctx, args[0], args[1], args[2], where)
	if err != nil {
		return err
	}
	a.print(tui.RenderCount(fmt.Sprintf("%s %s %s COUNT", args[0], args[1], args[2]), n))
	return nil
}

func (a *App) associations(ctx context.Context, args []string) error {
	list, err := a.client.Associations(ctx, args[0])
	if err != nil {
		return err
	}
	a.print(tui.RenderAssociations(args[0], list))
	return nil
}

func (a *App) schema(ctx context.Context, args []string) error {
	attrs, err := a.client.Schema(ctx, args[0])
	if err != nil {
		return err
	}
	a.print(tui.RenderSchema(args[0], attrs))
	return nil
}

func (a *App) filters(ctx context.Context, args []string) error {
	list, err := a.client.Filters(ctx, args[0])
	if err != nil {
		return err
	}
	a.print(tui.RenderFilters(args[0], list))
	return nil
}

func (a *App) titles(ctx context.Context, args []string) error {
	titles, err := a.client.Titles(ctx, args[0])
	if err != nil {
		return err
	}
	a.print(tui.RenderTitles(args[0], titles))
	return nil
}

// inspect fetches the count and every descriptor of each model
// concurrently. Pages are printed as they arrive.
func (a *App) inspect(ctx context.Context, args []string) error {
	steps := []struct {
		name string
		run  func(a *App, ctx context.Context, args []string) error
	}{
		{"count", (*App).count},
		{"associations", (*App).associations},
		{"schema", (*App).schema},
		{"filters", (*App).filters},
		{"titles", (*App).titles},
	}

	ws := workers.New()
	for _, model := range args {
		for _, step := range steps {
			name, run := step.name, step.run
			ws.Add(workers.WorkerFunc(func(ctx context.Context) error {
				if err := run(a, ctx, []string{model}); err != nil {
					return fmt.Errorf("%s %s: %w", name, model, err)
				}
				return nil
			}))
		}
	}
	return ws.Run(ctx)
}

func parseWhere(args []string, idx int) (adapter.Where, error) {
	if len(args) <= idx {
		return nil, nil
	}

	var where adapter.Where
	if err := json.Unmarshal([]byte(args[idx]), &where); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWhere, err)
	}
	return where, nil
}
