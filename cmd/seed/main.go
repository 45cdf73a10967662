// Command seed provisions the database: it drops and recreates the users
// table, then loads the embedded starter users with hashed passwords. Run it
// once during setup; it is destructive and never part of the serving path.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/padualabs/userapi/internal/app"
	"github.com/padualabs/userapi/internal/seed"
	"github.com/padualabs/userapi/internal/store/drivers/sqlite"
	"github.com/padualabs/userapi/pkg/cryptox"
	"github.com/padualabs/userapi/pkg/slogx"
)

func main() {
	cfg := app.LoadConfig()

	logger := slogx.New(slogx.Config{
		Service: "user-api-seed",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  "text",
	})

	cryptox.SetPepperPath(cfg.PepperFile)

	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		cfg.DatabaseFile,
	)
	st, err := sqlite.NewStore(dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer st.Close()

	if err := seed.Provision(context.Background(), st, logger); err != nil {
		log.Fatalf("provisioning failed: %v", err)
	}

	logger.Info("database provisioned", "database", cfg.DatabaseFile)
}
