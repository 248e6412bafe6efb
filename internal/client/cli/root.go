package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if sess := a.controller.Current(); sess != nil {
		return fmt.Sprintf("(%s %s)", sess.User.Email, a.navigator.Current())
	}
	return fmt.Sprintf("(%s)", a.navigator.Current())
}

// Root runs the command loop until EOF or an exit command.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to TaskManager (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("tm %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: whoami, settings, toggle <key>, delete-account, logout, ping, exit")
			} else {
				fmt.Println("Available commands: login, register, ping, exit")
			}
		case "ping":
			if err := a.gateway.Ping(ctx); err != nil {
				fmt.Println("Server is not reachable:", err)
			} else {
				fmt.Println("Server is up.")
			}
		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "settings":
			_ = a.Settings(ctx)
		case "toggle":
			if len(args) == 0 {
				fmt.Println("Usage: toggle <key>")
				continue
			}
			_ = a.Toggle(ctx, args[0])
		case "delete-account":
			if !a.isLoggedIn() {
				fmt.Println("Log in first.")
				continue
			}
			_ = a.DeleteAccount(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
