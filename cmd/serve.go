package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocurve/internal/server"
)

var (
	servePort    string
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis API over HTTP",
	Long: `Start a JSON API exposing the curved-beam and straight-beam solvers,
for front ends that render the results themselves.

Endpoints:
  GET  /api/health
  POST /api/curved    - same fields as the 'curved file' JSON input
  POST /api/straight  - load case, span, load, modulus, inertia

The port comes from --port, or from GOCURVE_PORT in the environment
(a .env file in the working directory is read if present).

Examples:
  gocurve serve --port 8080
  curl -X POST localhost:8080/api/curved -d '{"shape":"rectangular","ri":0.05,"m":1000,"params":{"b":0.02,"t":0.02}}'`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (default GOCURVE_PORT or 8080)")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Log every request")
}

func runServe(cmd *cobra.Command, args []string) {
	godotenv.Load()

	port := servePort
	if port == "" {
		port = os.Getenv("GOCURVE_PORT")
	}
	if port == "" {
		port = "8080"
	}

	level := log.InfoLevel
	if serveVerbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, ":"+port, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
