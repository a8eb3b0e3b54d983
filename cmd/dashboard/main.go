// The dashboard command is a terminal client for the school portal. It
// renders the announcements and upcoming-quizzes feeds, and manages the
// locally persisted login flag via the login/logout subcommands.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"schoolportal/internal/portal"
	"schoolportal/internal/portal/session"
)

func main() {
	origin := flag.String("origin", "http://localhost:3000", "portal server origin")
	stateDir := flag.String("state-dir", defaultStateDir(), "directory for persisted client state")
	flag.Parse()

	store, err := session.NewFileStorage(*stateDir)
	if err != nil {
		log.Fatalf("state storage init: %v", err)
	}
	sess := session.New(store, slog.Default())
	client := portal.NewClient(*origin)
	ctx := context.Background()

	switch cmd := flag.Arg(0); cmd {
	case "login":
		if _, err := client.Login(ctx); err != nil {
			log.Fatalf("login: %v", err)
		}
		sess.Login()
		fmt.Println("Logged in.")
	case "logout":
		if _, err := client.Logout(ctx); err != nil {
			log.Fatalf("logout: %v", err)
		}
		sess.Logout()
		fmt.Println("Logged out.")
	case "":
		if !sess.IsLoggedIn() {
			fmt.Println("Not logged in. Run \"dashboard login\" first.")
			os.Exit(1)
		}
		renderDashboard(ctx, client)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (expected login, logout, or no command)\n", cmd)
		os.Exit(2)
	}
}

func defaultStateDir() string {
	if dir := os.Getenv("PORTAL_STATE_DIR"); dir != "" {
		return dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "schoolportal")
	}
	return ".schoolportal"
}

func renderDashboard(ctx context.Context, client *portal.Client) {
	announcements := portal.NewAnnouncementFeed(client)
	quizzes := portal.NewQuizFeed(client)
	announcements.Load(ctx)
	quizzes.Load(ctx)

	fmt.Println("=== Announcements ===")
	if state := announcements.State(); state.Err != "" {
		fmt.Printf("! %s\n", state.Err)
	} else if len(state.Data) == 0 {
		fmt.Println("No announcements yet.")
	} else {
		for _, a := range state.Data {
			fmt.Printf("* %s (%s)\n  %s\n", a.Title, a.PostedAt.Local().Format("Jan 2 15:04"), a.Content)
		}
	}

	fmt.Println()
	fmt.Println("=== What's due ===")
	if state := quizzes.State(); state.Err != "" {
		fmt.Printf("! %s\n", state.Err)
	} else if len(state.Data) == 0 {
		fmt.Println("Nothing due. Enjoy the quiet.")
	} else {
		for _, q := range state.Data {
			fmt.Printf("* %s (%d questions)\n", q.Title, len(q.Questions))
			if q.Description != "" {
				fmt.Printf("  %s\n", q.Description)
			}
		}
	}
}
