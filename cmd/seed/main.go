package main

import (
	"context"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelier/internal/config"
	"hotelier/internal/db"
	"hotelier/internal/model"
	"hotelier/internal/repository"
)

// seedRooms is the initial room inventory. Rooms whose number already
// exists are left untouched, so the script can be re-run safely.
var seedRooms = []model.Room{
	{RoomNumber: "101", Type: "Single", Price: decimal.NewFromInt(80), Description: "Ground floor single"},
	{RoomNumber: "102", Type: "Single", Price: decimal.NewFromInt(80), Description: "Ground floor single"},
	{RoomNumber: "103", Type: "Twin", Price: decimal.NewFromInt(95), Description: "Twin beds, garden view"},
	{RoomNumber: "201", Type: "Double", Price: decimal.NewFromInt(120), Description: "Street-side double"},
	{RoomNumber: "202", Type: "Double", Price: decimal.NewFromInt(130), Description: "Courtyard double"},
	{RoomNumber: "301", Type: "Suite", Price: decimal.NewFromInt(250), Description: "Corner suite with balcony"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Room{}, &model.Booking{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	roomRepo := repository.NewRoomRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	created, skipped := 0, 0
	for _, room := range seedRooms {
		r := room
		_, err := roomRepo.FindByNumber(ctx, r.RoomNumber)
		if err == nil {
			skipped++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check room %s: %v", r.RoomNumber, err)
		}
		r.Status = model.RoomStatusAvailable
		if err := roomRepo.Create(ctx, &r); err != nil {
			log.Fatalf("Failed to create room %s: %v", r.RoomNumber, err)
		}
		created++
	}
	log.Printf("Rooms seeded: %d created, %d already present", created, skipped)

	if err := ensureAdmin(ctx, userRepo); err != nil {
		log.Fatalf("Failed to ensure admin user: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// ensureAdmin creates the initial admin account when it does not exist
// yet. Registration through the API always yields guests, so the first
// staff account has to come from here.
func ensureAdmin(ctx context.Context, repo repository.UserRepository) error {
	email := getEnv("ADMIN_EMAIL", "admin@hotel.local")
	password := getEnv("ADMIN_PASSWORD", "change-me-now")

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		log.Printf("Admin user %s already present", email)
		return nil
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("Admin user %s created", email)
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
