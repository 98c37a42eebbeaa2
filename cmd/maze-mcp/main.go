package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/maze-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var log = logrus.New()

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("maze-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("maze-tools-mcp - MCP server for solving maze images")
			fmt.Println()
			fmt.Println("Usage: maze-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  MAZE_MCP_LOG_LEVEL=debug    Log level (trace, debug, info, warn, error)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Logs go to stderr, stdout is for MCP protocol
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)
	if env := os.Getenv("MAZE_MCP_LOG_LEVEL"); env != "" {
		level, err := logrus.ParseLevel(env)
		if err != nil {
			log.WithError(err).Warn("ignoring MAZE_MCP_LOG_LEVEL")
		} else {
			log.SetLevel(level)
		}
	}
	log.WithFields(logrus.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
	}).Debug("maze MCP server starting")

	if Version != "dev" {
		server.Version = Version
	}
	srv := server.New(log)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
