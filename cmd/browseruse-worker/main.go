package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Echen1246/force.ai/internal/config"
	"github.com/Echen1246/force.ai/internal/protocol"
	"github.com/Echen1246/force.ai/internal/providers"
	"github.com/Echen1246/force.ai/internal/runner"
	"github.com/Echen1246/force.ai/internal/server"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	// Load .env file if present
	_ = godotenv.Load()

	flags := flag.NewFlagSet("browseruse-worker", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	task := flags.String("task", "", "Task description to execute")
	credentialsJSON := flags.String("credentials", "", "JSON string of credentials")
	apiKey := flags.String("api-key", "", "OpenAI API key")
	model := flags.String("model", "", "LLM model to use")
	engineName := flags.String("engine", "", "Automation engine definition to use")
	testMode := flags.Bool("test", false, "Test connection only")
	mcpMode := flags.Bool("mcp", false, "Serve tools over MCP stdio")

	if err := flags.Parse(args); err != nil {
		return 1
	}

	// Initialize structured logging on stderr; stdout carries the protocol.
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stdout, "ERROR: %v\n", err)
		return 1
	}

	// Flags override environment-derived configuration.
	if *apiKey != "" {
		cfg.APIKey = *apiKey
	}
	if *model != "" {
		cfg.Model = *model
	}
	if *engineName != "" {
		cfg.Engine = *engineName
	}

	// Parse credentials before any agent work begins.
	var creds runner.Credentials
	if *credentialsJSON != "" {
		creds, err = runner.ParseCredentials(*credentialsJSON)
		if err != nil {
			fmt.Fprintf(stdout, "ERROR: Invalid credentials JSON: %v\n", err)
			return 1
		}
	}

	if !*testMode && !*mcpMode && *task == "" {
		fmt.Fprintln(stdout, "ERROR: --task is required when not in test mode")
		return 1
	}

	if cfg.APIKey == "" {
		fmt.Fprintln(stdout, "ERROR: --api-key is required")
		return 1
	}

	// In MCP mode stdout belongs to the MCP channel, so protocol lines go
	// to stderr as diagnostics.
	protocolOut := stdout
	if *mcpMode {
		protocolOut = os.Stderr
	}
	emitter := protocol.NewEmitter(protocolOut)

	provider, err := providers.NewOpenAIProvider(cfg.ModelConfig())
	if err != nil {
		emitter.Error("Failed to initialize model provider: " + err.Error())
		emitter.Fatal(err.Error())
		return 1
	}

	r := runner.New(cfg, provider, emitter)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Info("shutting down...")
		cancel()
	}()

	switch {
	case *mcpMode:
		srv := server.New(cfg, r)
		slog.Info("starting MCP server", "version", cfg.Version)
		if err := srv.Run(ctx); err != nil {
			slog.Error("server error", "error", err)
			return 1
		}
		return 0

	case *testMode:
		ok := r.TestConnection(ctx)
		emitter.TestOutcome(ok)
		if !ok {
			return 1
		}
		return 0

	default:
		formatted, err := r.ExecuteTask(ctx, *task, creds)
		if err != nil {
			emitter.Fatal(err.Error())
			return 1
		}
		emitter.Result(formatted.Text)
		return 0
	}
}
