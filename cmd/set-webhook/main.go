package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/DIMO-Network/chatbot-webhook/internal/telegram"
	"github.com/joho/godotenv"
)

const (
	exitOK           = 0
	exitUsage        = 1
	exitFailure      = 1
	exitMissingToken = 2

	usage = "Usage: set-webhook https://your-domain/"
)

func main() {
	// Already-set variables win over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: could not load .env: %s\n", err)
	}
	os.Exit(run(context.Background(), os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

// run registers the webhook and returns the process exit code.
func run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stdout, usage)
		return exitUsage
	}
	webhookURL := strings.TrimRight(args[0], "/")

	if getenv(telegram.TokenEnvVar) == "" {
		fmt.Fprintf(stderr, "Error: %s\n", telegram.ErrMissingToken)
		return exitMissingToken
	}

	client := telegram.New(getenv("TELEGRAM_API_URL"), telegram.EnvToken(getenv), nil)
	resp, err := client.SetWebhook(ctx, webhookURL)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return exitFailure
	}

	data, err := json.Marshal(resp)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return exitFailure
	}
	fmt.Fprintf(stdout, "Webhook set: %s\n", data)
	return exitOK
}
