// Command resetpassword overwrites the password of a known account id.
// It is a one-shot maintenance hook for a locked-out administrator,
// not part of the running application.
package main

import (
	"flag"
	"log"

	"motostock-api/config"
	"motostock-api/database"
	"motostock-api/repositories"
)

func main() {
	id := flag.Uint("id", 1, "account id to reset")
	password := flag.String("password", "admin123", "new password")
	flag.Parse()

	cfg := config.Load()
	db, err := database.Initialize(cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	repo := repositories.NewUserRepository(db)
	if err := repo.UpdatePassword(uint(*id), *password); err != nil {
		log.Fatalf("Failed to reset password for account %d: %v", *id, err)
	}

	log.Printf("Password for account %d reset successfully", *id)
}
