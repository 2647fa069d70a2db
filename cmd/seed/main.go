package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/yamato-estate/attendance/backend/internal/config"
	"github.com/yamato-estate/attendance/backend/internal/repository"
	"github.com/yamato-estate/attendance/backend/internal/shiftreq"
	"github.com/yamato-estate/attendance/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var employeeID string

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random staff users, 2: insert random part-time employees, 3: insert random availability requests)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.StringVar(&employeeID, "employee-id", "", "employee to insert availability requests for (op 3)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create the database connection pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to the database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if n <= 0 {
			slog.Error("number of users must be positive")
			return
		}
		cnt := n
		for i := 0; i < n; i++ {
			user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
			if err != nil {
				slog.Error("unable to generate a random user", slog.String("error", err.Error()))
				continue
			}

			if err := repo.CreateUser(user); err != nil {
				slog.Error("unable to insert the user", slog.String("error", err.Error()))
				cnt--
				continue
			}
		}
		slog.Info("random users inserted", "count", cnt)
	case 2:
		if n <= 0 {
			slog.Error("number of employees must be positive")
			return
		}
		cnt := n
		for i := 0; i < n; i++ {
			employee := utils.GenerateRandomEmployee(cfg.Email.UserDomain)
			if err := repo.CreateEmployee(employee); err != nil {
				slog.Error("unable to insert the employee", slog.String("error", err.Error()))
				cnt--
				continue
			}
		}
		slog.Info("random employees inserted", "count", cnt)
	case 3:
		if employeeID == "" {
			slog.Error("employee-id is required for op 3")
			return
		}
		if n <= 0 {
			slog.Error("number of requests must be positive")
			return
		}
		cnt := n
		for i := 0; i < n; i++ {
			entries := utils.GenerateRandomAvailabilityEntries(rand.Intn(5) + 1)
			if _, err := shiftreq.Submit(repo, employeeID, "seeded request", entries); err != nil {
				slog.Error("unable to insert the availability request", slog.String("error", err.Error()))
				cnt--
				continue
			}
		}
		slog.Info("random availability requests inserted", "count", cnt)
	default:
		slog.Error("unknown operation", "op", op)
	}
}
