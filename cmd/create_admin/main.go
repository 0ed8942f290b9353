package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"navyug/models"
	"navyug/pkg/accounts"
	"navyug/pkg/config"
	"navyug/pkg/database"
)

func main() {
	reset := flag.Bool("reset", false, "replace the password of an existing admin")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: create_admin [-reset] <username> <password>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	username, password := flag.Arg(0), flag.Arg(1)

	cfg := config.Load()
	db, err := database.Open(cfg.DSN, database.Options{})
	if err != nil {
		log.Fatal("failed to open db", "err", err)
	}
	defer database.Close(db)
	if err := db.AutoMigrate(&models.AdminUser{}); err != nil {
		log.Fatal("migrate admin_users", "err", err)
	}

	ctx := context.Background()
	if *reset {
		if err := accounts.ResetPassword(ctx, db, username, password); err != nil {
			log.Fatal("reset failed", "err", err)
		}
		fmt.Printf("password reset for %s\n", username)
		return
	}

	u, err := accounts.Register(ctx, db, username, password)
	switch {
	case errors.Is(err, accounts.ErrExists):
		fmt.Printf("admin %s already exists (use -reset to change the password)\n", username)
	case err != nil:
		log.Fatal("failed to create admin", "err", err)
	default:
		fmt.Printf("created admin %s id=%d\n", u.Username, u.ID)
	}
}
