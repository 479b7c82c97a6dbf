package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/rabbit/config"
	"github.com/shashiranjanraj/rabbit/database/seeders"
	"github.com/shashiranjanraj/rabbit/pkg/database"
)

// rabbit seed — reset and populate the database.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all registered database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := database.Connect(ctx, cfg.Mongo)
		if err != nil {
			return err
		}
		defer db.Close(ctx)

		fmt.Println("Seeding database…")
		return seeders.RunAll(ctx, db)
	},
}
