package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ogurasousui/employee-roster/internal/app"
	"github.com/ogurasousui/employee-roster/internal/core/state"
	"github.com/ogurasousui/employee-roster/internal/core/view"
	"github.com/ogurasousui/employee-roster/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	flag.Parse()

	cfg, err := config.Load(config.EffectivePath(*configPath))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	roster, err := app.Open(ctx, cfg, app.Deps{})
	if err != nil {
		log.Fatalf("failed to open roster: %v", err)
	}
	defer func() {
		if err := roster.Close(); err != nil {
			log.Printf("failed to close roster: %v", err)
		}
	}()

	log.Printf("roster ready: %d employees, storage=%s", len(roster.State().Records()), roster.Location())

	if err := run(ctx, roster, os.Stdin, os.Stdout); err != nil {
		log.Printf("input stopped with error: %v", err)
	}
}

// run は r から 1 行 1 intent の JSON を読み、適用結果を w に書き出します。
func run(ctx context.Context, roster *app.Roster, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		in, err := state.DecodeIntent([]byte(line))
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}

		if route, ok := in.(state.SetRoute); ok {
			m := roster.Navigate(route.Pathname)
			fmt.Fprintf(w, "screen: %s\n", m.Screen)
			continue
		}

		if errs := roster.Submit(in); !errs.OK() {
			fmt.Fprintf(w, "rejected %s: %s\n", in.Kind(), errs)
			continue
		}
		printPage(w, roster)
	}
	return scanner.Err()
}

func printPage(w io.Writer, roster *app.Roster) {
	p := roster.Page()
	if len(p.Items) == 0 {
		fmt.Fprintln(w, roster.T("noEmployeesFound"))
		return
	}
	for _, e := range p.Items {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n", e.ID, e.FirstName, e.LastName, e.Email, e.Department, e.Position)
	}
	fmt.Fprintf(w, "%s %d %s %d  [%s]\n", roster.T("page"), p.Current, roster.T("of"), p.TotalPages, view.FormatWindow(p.Links))
}
