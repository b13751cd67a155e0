package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	authapi "github.com/taskpilot/client/api/auth"
	tasksapi "github.com/taskpilot/client/api/tasks"
	"github.com/taskpilot/client/internal/config"
	"github.com/taskpilot/client/internal/credstore"
	"github.com/taskpilot/client/internal/gateway"
	"github.com/taskpilot/client/pkg/logger"
	"github.com/taskpilot/client/usecase/session"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type app struct {
	logger  *zap.Logger
	store   credstore.Store
	tasks   *tasksapi.Service
	session *session.Controller
	out     io.Writer
	errOut  io.Writer
}

func run(args []string, out, errOut io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("config error: %v", err)
		return 1
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Printf("logger error: %v", err)
		return 1
	}
	defer zapLogger.Sync()

	store, err := openStore(cfg, zapLogger)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}
	defer store.Close()

	nav := &signInNavigator{
		out: errOut,
		// only announce expiry when there was a session to lose
		hadSession: store.GetAccessToken() != "",
	}

	gw := gateway.New(cfg.Backend.BaseURL, zapLogger,
		gateway.WithTimeout(cfg.Backend.RequestTimeout),
		gateway.WithInterceptor(gateway.BearerAuth{Tokens: store}),
		gateway.WithInterceptor(gateway.RequestID{}),
		gateway.WithResponseHook(gateway.SessionGuard{Store: store, Nav: nav, Logger: zapLogger}),
	)

	authSvc := authapi.New(gw)

	a := &app{
		logger:  zapLogger,
		store:   store,
		tasks:   tasksapi.New(gw),
		session: session.New(authSvc, store, nav, zapLogger),
		out:     out,
		errOut:  errOut,
	}

	if len(args) == 0 || args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		printUsage(out)
		if len(args) == 0 {
			return 2
		}
		return 0
	}

	ctx := context.Background()
	a.session.CheckAuth(ctx)

	return a.dispatch(ctx, args[0], args[1:])
}

func openStore(cfg *config.Config, zapLogger *zap.Logger) (credstore.Store, error) {
	if cfg.Credentials.Backend == "none" {
		return credstore.NewNoop(), nil
	}
	return credstore.OpenBolt(cfg.Credentials.Path, zapLogger)
}

func (a *app) dispatch(ctx context.Context, command string, args []string) int {
	switch command {
	case "register":
		return a.cmdRegister(ctx, args)
	case "login":
		return a.cmdLogin(ctx, args)
	case "logout":
		return a.cmdLogout(args)
	case "whoami":
		return a.cmdWhoami(args)
	case "list":
		return a.cmdList(ctx, args)
	case "show":
		return a.cmdShow(ctx, args)
	case "add":
		return a.cmdAdd(ctx, args)
	case "update":
		return a.cmdUpdate(ctx, args)
	case "done":
		return a.cmdDone(ctx, args)
	case "rm":
		return a.cmdRm(ctx, args)
	default:
		fmt.Fprintf(a.errOut, "unknown command %q\n\n", command)
		printUsage(a.errOut)
		return 2
	}
}

// signInNavigator is the CLI stand-in for a browser redirect to the
// sign-in page.
type signInNavigator struct {
	out        io.Writer
	hadSession bool
}

func (n *signInNavigator) SignIn(expired bool) {
	if expired {
		if n.hadSession {
			fmt.Fprintln(n.out, "Your session has expired. Please log in again.")
		}
		return
	}
	fmt.Fprintln(n.out, "Logged out.")
}

func printUsage(out io.Writer) {
	fmt.Fprint(out, `Usage: taskcli <command> [flags]

Account:
  register   --email --password [--first-name] [--last-name]
  login      --email --password
  logout
  whoami

Tasks:
  list       [--status all|pending|completed] [--sort-by] [--sort-order]
  show       <id>
  add        --title [--description]
  update     <id> [--title] [--description] [--status]
  done       <id>
  rm         <id>

Environment:
  BACKEND_URL           backend base URL (default http://localhost:8000)
  CREDENTIALS_BACKEND   bolt or none
`)
}
