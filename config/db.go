package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"pgstay-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "pgstay_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

// ConnectDatabase opens the MySQL connection, runs migrations in
// parent->child order and seeds default records.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}

// Migrate runs AutoMigrate in parent->child order so foreign keys resolve.
// Exported separately so tests can run it against their own gorm.DB.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Owner{},
		&models.Property{},
		&models.Room{},
		&models.Bed{},
		&models.Enquiry{},
		&models.Guest{},
		&models.SafetyAudit{},
	)
}

// SeedDatabase inserts a default owner account and, when no property exists
// yet, a published demo property with rooms and beds. Idempotent.
func SeedDatabase(db *gorm.DB) {
	ownerID := seedDefaultOwner(db)
	if ownerID == 0 {
		return
	}
	seedDemoProperty(db, ownerID)
}

func seedDefaultOwner(db *gorm.DB) uint {
	var owner models.Owner
	if err := db.First(&owner).Error; err == nil {
		return owner.ID
	}

	password := envOrDefault("SEED_OWNER_PASSWORD", "owner123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash default owner password: %v", err)
		return 0
	}

	owner = models.Owner{
		FullName: "PGStay Owner",
		Email:    envOrDefault("SEED_OWNER_EMAIL", "owner@pgstay.local"),
		Password: string(hash),
	}
	if err := db.Create(&owner).Error; err != nil {
		log.Printf("warning: failed to create default owner: %v", err)
		return 0
	}
	log.Println("Default owner seeded")
	return owner.ID
}

func seedDemoProperty(db *gorm.DB, ownerID uint) {
	var count int64
	db.Model(&models.Property{}).Count(&count)
	if count > 0 {
		return
	}

	property := models.Property{
		OwnerID:      ownerID,
		Name:         "Sunrise Comfort PG",
		Slug:         "sunrise-comfort-pg",
		Address:      "12 MG Road",
		City:         "Bengaluru",
		Locality:     "Indiranagar",
		GenderPolicy: models.GenderUnisex,
		IsPublished:  true,
		Amenities:    datatypes.JSON([]byte(`["wifi","laundry","power backup"]`)),
		CheckInTime:  "12:00",
		CheckOutTime: "11:00",
		Rooms: []models.Room{
			{
				RoomNumber:  "101",
				Type:        models.RoomSingle,
				BasePrice:   9500,
				Capacity:    1,
				IsAvailable: true,
				Beds:        []models.Bed{{BedNumber: "101-A"}},
			},
			{
				RoomNumber:  "102",
				Type:        models.RoomDouble,
				BasePrice:   7500,
				Capacity:    2,
				IsAvailable: true,
				Beds: []models.Bed{
					{BedNumber: "102-A"},
					{BedNumber: "102-B", IsOccupied: true},
				},
			},
		},
	}
	if err := db.Create(&property).Error; err != nil {
		log.Printf("warning: failed to create demo property: %v", err)
		return
	}
	log.Println("Demo property seeded")
}
