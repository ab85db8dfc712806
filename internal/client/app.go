package client

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

type command struct {
	usage string
	nargs int // minimal number of arguments
	run   func(ctx context.Context, args []string) error
}

type App struct {
	adapter  adapter.ServerAdapter
	out      io.Writer
	commands map[string]command

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, fmt.Errorf("client app: nil server adapter")
	}

	a := &App{adapter: serverAdapter, out: out, logger: logger}
	a.commands = map[string]command{
		"register": {usage: "register <email> <password>", nargs: 2, run: a.register},
		"login":    {usage: "login <email> <password>", nargs: 2, run: a.login},
		"list":     {usage: "list", run: a.list},
		"add":      {usage: "add <title...>", nargs: 1, run: a.add},
		"show":     {usage: "show <id>", nargs: 1, run: a.show},
		"rename":   {usage: "rename <id> <title...>", nargs: 2, run: a.rename},
		"toggle":   {usage: "toggle <id>", nargs: 1, run: a.toggle},
		"done":     {usage: "done <id>", nargs: 1, run: a.done},
		"rm":       {usage: "rm <id>", nargs: 1, run: a.remove},
		"health":   {usage: "health", run: a.health},
		"version":  {usage: "version", run: a.version},
	}

	return a, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrUsage
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	if len(args)-1 < cmd.nargs {
		return fmt.Errorf("%w: %s", ErrUsage, cmd.usage)
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(ctx, args[1:])
}

func (a *App) printUsage() {
	names := []string{"register", "login", "list", "add", "show", "rename", "toggle", "done", "rm", "health", "version"}
	fmt.Fprintln(a.out, "usage: task-client <command> [args]")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: task id must be a positive integer, got %q", ErrUsage, raw)
	}
	return id, nil
}

func (a *App) register(ctx context.Context, args []string) error {
	user, err := a.adapter.Register(ctx, models.Credentials{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "registered user %d (%s)\n", user.ID, user.Email)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	token, err := a.adapter.Login(ctx, models.Credentials{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, token)
	return nil
}

func (a *App) list(ctx context.Context, _ []string) error {
	tasks, err := a.adapter.ListTasks(ctx)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "no tasks")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tTITLE")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", task.ID, checkbox(task.Completed), task.Title)
	}
	return tw.Flush()
}

func (a *App) add(ctx context.Context, args []string) error {
	task, err := a.adapter.CreateTask(ctx, models.CreateTaskRequest{Title: strings.Join(args, " ")})
	if err != nil {
		return err
	}
	a.printTask(task)
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	task, err := a.adapter.GetTask(ctx, id)
	if err != nil {
		return err
	}
	a.printTask(task)
	return nil
}

func (a *App) rename(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	title := strings.Join(args[1:], " ")
	task, err := a.adapter.UpdateTask(ctx, id, models.UpdateTaskRequest{Title: &title})
	if err != nil {
		return err
	}
	a.printTask(task)
	return nil
}

func (a *App) toggle(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	task, err := a.adapter.ToggleTask(ctx, id)
	if err != nil {
		return err
	}
	a.printTask(task)
	return nil
}

func (a *App) done(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	completed := true
	task, err := a.adapter.UpdateTask(ctx, id, models.UpdateTaskRequest{Completed: &completed})
	if err != nil {
		return err
	}
	a.printTask(task)
	return nil
}

func (a *App) remove(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err = a.adapter.DeleteTask(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted task %d\n", id)
	return nil
}

func (a *App) health(ctx context.Context, _ []string) error {
	if err := a.adapter.Health(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "ok")
	return nil
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, v)
	return nil
}

func (a *App) printTask(task models.Task) {
	fmt.Fprintf(a.out, "%d %s %s\n", task.ID, checkbox(task.Completed), task.Title)
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}
