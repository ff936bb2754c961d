package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamebeats/backend/internal/bgg"
	"gamebeats/backend/internal/config"
	"gamebeats/backend/internal/database"
	"gamebeats/backend/internal/handler"
	"gamebeats/backend/internal/hub"
	"gamebeats/backend/internal/seed"
	"gamebeats/backend/internal/store"
	"gamebeats/backend/pkg/jwt"

	"github.com/urfave/cli/v3"
	"golang.org/x/crypto/bcrypt"
)

// @title           GameBeats API
// @version         1.0
// @description     Board game catalog with AI-generated soundtracks, song ratings and live rating events.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	root := &cli.Command{
		Name:  "gamebeats",
		Usage: "Board game soundtrack catalog server",
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			config.LoadConfig()
			return ctx, nil
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			seedCommand(),
			tokenCommand(),
			hashPasswordCommand(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runServer(ctx, config.AppConfig.HTTPAddr)
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "HTTP listen address (defaults to HTTP_ADDR)"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			addr := c.String("addr")
			if addr == "" {
				addr = config.AppConfig.HTTPAddr
			}
			return runServer(ctx, addr)
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the database schema",
		Action: func(ctx context.Context, c *cli.Command) error {
			database.Connect(config.AppConfig.DatabaseDriver, config.AppConfig.DatabaseURL)
			return nil
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load the demo catalog into an empty database",
		Action: func(ctx context.Context, c *cli.Command) error {
			db := database.Connect(config.AppConfig.DatabaseDriver, config.AppConfig.DatabaseURL)
			_, err := seed.IfEmpty(ctx, db, config.AppConfig.QueryTimeout)
			return err
		},
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Print an admin token for catalog writes",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "subject", Value: "admin", Usage: "token subject"},
			&cli.DurationFlag{Name: "ttl", Value: jwt.DefaultTTL, Usage: "token lifetime"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			token, err := jwt.GenerateToken(c.String("subject"), jwt.RoleAdmin, c.Duration("ttl"))
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
}

func hashPasswordCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash-password",
		Usage:     "Print a bcrypt hash suitable for ADMIN_PASSWORD_HASH",
		ArgsUsage: "<password>",
		Action: func(ctx context.Context, c *cli.Command) error {
			password := c.Args().First()
			if password == "" {
				return errors.New("password argument is required")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Println(string(hash))
			return nil
		},
	}
}

func runServer(ctx context.Context, addr string) error {
	cfg := config.AppConfig
	db := database.Connect(cfg.DatabaseDriver, cfg.DatabaseURL)

	if cfg.SeedOnStart {
		// Keep serving even if seeding fails.
		if _, err := seed.IfEmpty(ctx, db, cfg.QueryTimeout); err != nil {
			log.Printf("Failed to seed database: %v", err)
		}
	}

	catalog := store.New(db,
		store.WithTimeout(cfg.QueryTimeout),
		store.WithStatsProvider(bgg.NewClient(cfg.BGGAPIURL, nil)),
	)
	router := handler.NewRouter(handler.New(catalog, hub.GlobalHub))

	srv := &http.Server{Addr: addr, Handler: router, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server is running on %s", addr)
		log.Printf("Swagger UI is available at http://localhost%s/swagger/index.html", addr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
