package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"energy-tracker/app/db"
	"energy-tracker/app/repo"
	"energy-tracker/app/services"
	"energy-tracker/cmd/createadmin/ui"
	"energy-tracker/config"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	gdb, err := db.Connect(cfg.DB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect db:", err)
		os.Exit(1)
	}

	users := services.NewUserService(repo.NewUserRepository(gdb))

	submit := func(username, email, password string) error {
		err := users.CreateAdmin(username, email, password, "")
		switch {
		case err == nil:
			return nil
		case errors.Is(err, repo.ErrDuplicateEmail):
			return errors.New("this email already exists; please use a different address")
		case strings.Contains(err.Error(), "no such table"):
			return errors.New("database tables not found; start the server once to initialize them")
		default:
			return err
		}
	}

	p := tea.NewProgram(ui.NewFormModel(submit))
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "tui:", err)
		os.Exit(1)
	}

	m, ok := final.(ui.FormModel)
	if !ok || !m.Done {
		fmt.Println("Admin creation aborted.")
		return
	}

	// One-time credential echo for the operator; these never reach a log.
	fmt.Println()
	fmt.Println("Admin user created successfully!")
	fmt.Println("========================================")
	fmt.Println("  Username:", m.Result.Username)
	fmt.Println("  Email:   ", m.Result.Email)
	fmt.Println("  Password:", m.Result.Password)
	fmt.Println("  Role:     admin")
	fmt.Println("========================================")
	fmt.Println("Keep these credentials secure and consider")
	fmt.Println("changing the password after first login.")
}
