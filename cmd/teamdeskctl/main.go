// Command teamdeskctl is a small CLI client for the teamdesk REST API.
//
// Usage:
//
//	teamdeskctl register -u alice -p secret123
//	teamdeskctl login -u alice -p secret123
//	teamdeskctl users -u alice -t <token>
//	teamdeskctl projects -u alice -t <token>
//	teamdeskctl create-project -u alice -t <token> -n "my project"
//
// The server address is taken from the ADAPTER_ADDRESS environment variable
// or the -s flag on any subcommand.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mlevkov/teamdesk/internal/adapter"
	"github.com/mlevkov/teamdesk/internal/config"
	"github.com/mlevkov/teamdesk/internal/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected a subcommand: register, login, users, projects, create-project")
	}

	_ = godotenv.Load()

	cfg, err := config.GetClientConfig()
	if err != nil {
		return err
	}

	command := args[0]
	flags := flag.NewFlagSet(command, flag.ExitOnError)
	serverAddress := flags.String("s", cfg.Adapter.HTTPAddress, "Server base address")
	username := flags.String("u", "", "Username")
	password := flags.String("p", "", "Password")
	token := flags.String("t", "", "Session token")
	name := flags.String("n", "", "Project name")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	cfg.Adapter.HTTPAddress = *serverAddress

	srv, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger.Nop())
	if err != nil {
		return err
	}
	srv.SetSession(*username, *token)

	ctx := context.Background()

	switch command {
	case "register":
		user, err := srv.Register(ctx, *username, *password, *password)
		if err != nil {
			return err
		}
		return printJSON(user)
	case "login":
		user, session, err := srv.Login(ctx, *username, *password)
		if err != nil {
			return err
		}
		return printJSON(map[string]any{"accountInfo": user, "tokenInfo": session})
	case "users":
		users, err := srv.ListUsers(ctx)
		if err != nil {
			return err
		}
		return printJSON(users)
	case "projects":
		projects, err := srv.ListProjects(ctx)
		if err != nil {
			return err
		}
		return printJSON(projects)
	case "create-project":
		project, err := srv.CreateProject(ctx, *name)
		if err != nil {
			return err
		}
		return printJSON(project)
	default:
		return fmt.Errorf("unknown subcommand %q", command)
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
