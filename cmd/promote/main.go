// Command promote makes an existing board member an admin of that board.
// It is used to hand a board over when its only admin is unavailable.
//
// Usage:
//
//	promote --board=<uuid> --email=user@example.com
//
// Configuration is read the same way as the server (CONFIG_PATH, DATABASE_DSN).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskboard-backend/internal/config"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

func main() {
	boardArg := flag.String("board", "", "board id")
	email := flag.String("email", "", "email of the member to promote")
	flag.Parse()

	boardID, err := uuid.Parse(*boardArg)
	if *email == "" || err != nil {
		fmt.Fprintln(os.Stderr, "Usage: promote --board=<uuid> --email=user@example.com")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	tag, err := pool.Exec(ctx,
		`UPDATE board_members bm SET role = $1
		   FROM users u
		  WHERE bm.user_id = u.id AND bm.board_id = $2 AND lower(u.email) = lower($3) AND bm.role <> $1`,
		domain.RoleAdmin.String(), boardID, *email,
	)
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	if tag.RowsAffected() == 0 {
		fmt.Printf("No member %q on board %s, or already admin.\n", *email, boardID)
		os.Exit(1)
	}

	fmt.Printf("Member %q promoted to admin on board %s.\n", *email, boardID)
}
