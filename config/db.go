package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tourism-backend/models"
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

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, nil
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
	dbName := envOrDefault("DB_NAME", "tourism_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

// SeedDatabase ensures a default admin exists so the admin space is
// reachable on a fresh install. Credentials are overridable via env.
func SeedDatabase() {
	email := strings.ToLower(envOrDefault("ADMIN_EMAIL", "admin@tourism.local"))
	password := envOrDefault("ADMIN_PASSWORD", "admin123")

	var count int64
	DB.Model(&models.Account{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash default admin password: %v", err)
		return
	}

	acct := models.Account{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Admin User",
	}
	if err := DB.Create(&acct).Error; err != nil {
		log.Printf("warning: failed to create default admin account: %v", err)
		return
	}
	profile := models.User{ID: acct.ID, FullName: acct.FullName, Role: models.RoleAdmin}
	if err := DB.Create(&profile).Error; err != nil {
		log.Printf("warning: failed to create default admin profile: %v", err)
		return
	}
	log.Println("Default admin seeded")
}

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

	// AutoMigrate in parent->child order. Migration errors are logged but
	// not fatal: every read path has a sample-data fallback and every
	// write path surfaces a clear failure, so the server still serves on
	// a half-provisioned schema.
	if err := DB.AutoMigrate(
		&models.Account{},
		&models.User{},
		&models.Session{},
		&models.Destination{},
		&models.Hotel{},
		&models.Package{},
		&models.Houseboat{},
		&models.Taxi{},
		&models.Activity{},
		&models.Booking{},
		&models.Review{},
		&models.WishlistItem{},
	); err != nil {
		log.Printf("warning: automigrate failed, continuing with fallback data: %v", err)
		return nil
	}

	SeedDatabase()
	return nil
}
