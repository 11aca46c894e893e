package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	blobpg "github.com/ogurasousui/employee-roster/internal/adapters/blob/postgres"
	"github.com/ogurasousui/employee-roster/internal/platform/config"
)

func main() {
	_ = godotenv.Load()

	var (
		configPath    = flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		migrationsDir = flag.String("dir", "assets/migrations", "directory containing migration files")
	)
	flag.Parse()

	act, err := parseAction(flag.Args())
	if err != nil {
		log.Fatalf("invalid arguments: %v", err)
	}

	cfg, err := config.Load(config.EffectivePath(*configPath))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Storage.Driver != config.DriverPostgres {
		log.Fatalf("storage.driver is %q; migrations only apply to the postgres driver", cfg.Storage.Driver)
	}

	status, err := runMigration(act, *migrationsDir, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("migration %s failed: %v", act.name, err)
	}

	log.Printf("migration %s completed: %s", act.name, status)
}

type action struct {
	name    string
	version int
}

// parseAction は位置引数を解釈します。引数がなければ up です。
func parseAction(args []string) (action, error) {
	if len(args) == 0 {
		return action{name: "up"}, nil
	}
	switch args[0] {
	case "up", "down", "drop", "version":
		if len(args) > 1 {
			return action{}, fmt.Errorf("%s takes no arguments", args[0])
		}
		return action{name: args[0]}, nil
	case "force":
		if len(args) != 2 {
			return action{}, errors.New("force requires a version")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil || v < -1 {
			return action{}, fmt.Errorf("invalid force version %q", args[1])
		}
		return action{name: "force", version: v}, nil
	default:
		return action{}, fmt.Errorf("unsupported action %q", args[0])
	}
}

func runMigration(act action, dir, dsn string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve path for %s: %w", dir, err)
	}
	absDir = filepath.ToSlash(absDir)

	m, err := migrate.New(fmt.Sprintf("file://%s", absDir), dsn)
	if err != nil {
		return "", fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	switch act.name {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "drop":
		if err := m.Drop(); err != nil {
			return "", err
		}
		return fmt.Sprintf("table %s dropped", blobpg.Table), nil
	case "force":
		err = m.Force(act.version)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return "", err
	}

	version, dirty, err := m.Version()
	return describeVersion(version, dirty, err)
}

// describeVersion は app_state スキーマの適用状況を文字列にします。
func describeVersion(version uint, dirty bool, err error) (string, error) {
	if errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Sprintf("table %s has no migration applied", blobpg.Table), nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("table %s at version=%d dirty=%t", blobpg.Table, version, dirty), nil
}
