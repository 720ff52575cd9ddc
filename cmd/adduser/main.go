// adduser provisions a user: the bot only answers phones it knows. The new
// user starts with a pending payment; flip it with the payment webhook or
// the -paid flag.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"finbot/internal/config"
	"finbot/internal/core"
	"finbot/internal/log"
	"finbot/internal/storage"
)

func main() {
	_ = godotenv.Load()

	phone := flag.String("phone", "", "phone number, digits only with country code (required)")
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "contact email")
	budget := flag.String("budget", "", "monthly budget in reais, e.g. 1500.00")
	paid := flag.Bool("paid", false, "mark the payment as completed immediately")
	flag.Parse()

	if *phone == "" {
		fmt.Fprintln(os.Stderr, "usage: adduser -phone 5511999990000 [-name ...] [-email ...] [-budget 1500.00] [-paid]")
		os.Exit(2)
	}

	logger := log.New(log.DefaultConfig())

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize storage", log.FieldError, err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer store.Close()

	user := core.User{
		ID:    uuid.NewString(),
		Phone: *phone,
		Name:  *name,
		Email: *email,
	}
	if *budget != "" {
		amount, err := core.ParseAmount(*budget)
		if err != nil {
			logger.Error("Invalid budget value", log.FieldError, err, "budget", *budget)
			os.Exit(1)
		}
		user.MonthlyBudget = amount
	}

	if err := store.CreateUser(ctx, user); err != nil {
		logger.Error("Failed to create user", log.FieldError, err, log.FieldPhone, *phone)
		os.Exit(1)
	}

	status := core.PaymentPending
	if *paid {
		status = core.PaymentCompleted
	}
	if err := store.SetPaymentStatus(ctx, user.ID, status); err != nil {
		logger.Error("Failed to set payment status", log.FieldError, err, log.FieldUserID, user.ID)
		os.Exit(1)
	}

	fmt.Printf("User created: id=%s phone=%s payment=%s\n", user.ID, user.Phone, status)
}
