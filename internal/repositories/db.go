// Package repositories provides the data access layer. It owns the database
// connection, the per-entity store implementations, and the translation of
// driver errors into the domain error taxonomy.
package repositories

import (
	"log"
	"os"
	"time"

	"walletdesk/internal/config"
	"walletdesk/internal/models"
	"walletdesk/internal/repositories/cache"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance used across the application.
var DB *gorm.DB

// CacheService is the global redis-backed cache used by the wallet service.
var CacheService *cache.Service

// DBConfig holds database connection pool configuration.
type DBConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

var dbConfig = DBConfig{
	MaxIdleConns:    10,
	MaxOpenConns:    100,
	ConnMaxLifetime: time.Hour,
	ConnMaxIdleTime: time.Minute * 30,
}

// InitDB initializes the database connection, the connection pool, the redis
// cache, and runs schema migrations.
func InitDB() error {
	if err := initPostgres(); err != nil {
		return err
	}

	redisCfg := &cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	}
	redisClient := cache.NewRedisClient(redisCfg)
	CacheService = cache.NewService(redisClient, config.GetDurationEnv("CACHE_TTL", 5*time.Minute))

	return DB.AutoMigrate(
		&models.Customer{},
		&models.Employee{},
		&models.Wallet{},
		&models.Transaction{},
	)
}

func initPostgres() error {
	dsn := "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + config.GetEnv("DB_NAME", "walletdesk") +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=" + config.GetEnv("DB_SSLMODE", "disable")

	// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey,
	// which the stores map to DuplicateIdentifierError.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}

	DB = db

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(dbConfig.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(dbConfig.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(dbConfig.ConnMaxIdleTime)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
	db.Logger = newLogger

	log.Println("PostgreSQL connected & migrations applied")
	return nil
}
