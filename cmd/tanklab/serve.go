package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/san-kum/tanklab/internal/api"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
	"k8s.io/klog/v2"
)

var (
	addr      string
	rateLimit float64
	burst     int
	envFile   string
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP API",
		RunE:  runServe,
	}
	defaults := api.DefaultOptions()
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (env TANKLAB_ADDR)")
	cmd.Flags().Float64Var(&rateLimit, "rate", float64(defaults.Rate), "requests per second per client (env TANKLAB_RATE)")
	cmd.Flags().IntVar(&burst, "burst", defaults.Burst, "burst size per client (env TANKLAB_BURST)")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	cmd.Flags().AddGoFlagSet(fs)
	return cmd
}

// applyEnv fills settings from the environment unless the flag was given.
func applyEnv(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if v := os.Getenv("TANKLAB_ADDR"); v != "" && !flags.Changed("addr") {
		addr = v
	}
	if v := os.Getenv("TANKLAB_RATE"); v != "" && !flags.Changed("rate") {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing TANKLAB_RATE: %w", err)
		}
		rateLimit = r
	}
	if v := os.Getenv("TANKLAB_BURST"); v != "" && !flags.Changed("burst") {
		b, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing TANKLAB_BURST: %w", err)
		}
		burst = b
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	defer klog.Flush()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	log := klog.FromContext(ctx)

	if err := godotenv.Load(envFile); err != nil {
		log.V(1).Info("no dotenv file loaded", "path", envFile, "err", err)
	}
	if err := applyEnv(cmd); err != nil {
		return err
	}

	handler := api.NewRouter(&api.Handler{}, api.Options{Rate: rate.Limit(rateLimit), Burst: burst})
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", addr, "rate", rateLimit, "burst", burst)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutdown signal received, closing active connections")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	log.Info("server stopped")
	return nil
}
