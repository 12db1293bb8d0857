package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/observability"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a sample machine and print its definition",
	Long: `Creates two states and a transition over the configured alphabet, prints
and validates the definition, then deletes q0 and adds a state to show name
reuse.
With --metrics-addr the registry metrics stay available until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("metrics-addr")
		return runDemo(cmd.Context(), cmd.OutOrStdout(), addr)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")
}

func runDemo(ctx context.Context, out io.Writer, metricsAddr string) error {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	m, err := settings.cfg.NewMachine(
		machine.WithLogger(settings.logger),
		machine.WithHooks(metrics.Hooks()),
	)
	if err != nil {
		return err
	}

	if err := buildSample(m); err != nil {
		return err
	}
	printMachine(out, m)
	printValidation(out, m)

	if _, err := m.DeleteState(machine.ByName("q0")); err != nil {
		return err
	}
	s, err := m.AddState(false, false)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\ndeleted q0, new state named %s\n", s.Name())
	printMachine(out, m)
	printValidation(out, m)

	if metricsAddr == "" {
		return nil
	}
	return serveMetrics(ctx, reg, metricsAddr)
}

// buildSample creates >q0 -> (q1) with a transition reading the first symbol
// of the alphabet and writing the second.
func buildSample(m *machine.Machine) error {
	var symbols []string
	for _, sym := range m.Alphabet() {
		if sym != m.Blank() {
			symbols = append(symbols, sym)
		}
	}
	read, write := "", ""
	if len(symbols) > 0 {
		read, write = symbols[0], symbols[min(1, len(symbols)-1)]
	}

	q0, err := m.AddState(false, true)
	if err != nil {
		return err
	}
	q1, err := m.AddState(true, false)
	if err != nil {
		return err
	}
	if _, err := m.AddTransition(machine.Ref(q0), machine.Ref(q1), read, write, domain.Right); err != nil {
		return err
	}
	_, err = m.AddTransition(machine.Ref(q1), machine.Ref(q1), "", "", domain.Stay)
	return err
}

func printMachine(out io.Writer, m *machine.Machine) {
	for _, s := range m.States() {
		fmt.Fprintln(out, s)
		for _, t := range s.Transitions() {
			fmt.Fprintf(out, "  %s\n", t)
		}
	}
}

func printValidation(out io.Writer, m *machine.Machine) {
	if err := validator.Validate(m); err != nil {
		fmt.Fprintf(out, "validation: %v\n", err)
		return
	}
	fmt.Fprintln(out, "validation: ok")
}

func serveMetrics(ctx context.Context, reg *prometheus.Registry, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	settings.logger.Info("serving metrics, press Ctrl+C to exit", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
