package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"stadium-finder-service/internal/adapters/cache"
	"stadium-finder-service/internal/adapters/geocode"
	"stadium-finder-service/internal/adapters/repositories"
	"stadium-finder-service/internal/api"
	"stadium-finder-service/internal/config"
	"stadium-finder-service/internal/platform/db"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, Redis, BAN geocoding)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	seedPath := config.Get("SEED_PATH", "data/seeds/facilities.csv")
	port := config.Get("PORT", "8080")
	redisAddr := config.Get("REDIS_ADDR", "")
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))

	// Postgres when DATABASE_URL is set, local SQLite otherwise. Both
	// paths initialize the schema and load the facility dataset on
	// startup so a fresh checkout serves searches immediately.
	var (
		conn        *sql.DB
		sqlGeoCache geocode.GeocodeCache
		err         error
	)
	if databaseURL != "" {
		conn, err = db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		if err := initAndSeedPostgres(context.Background(), conn, seedPath); err != nil {
			log.Fatal(err)
		}
		sqlGeoCache = cache.NewSQLGeocodeCache(conn)
		log.Println("storage: postgres")
	} else {
		dbPath := config.Get("DB_PATH", "data/app.db")
		conn, err = openSqlite(dbPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := initAndSeedSqlite(conn, seedPath); err != nil {
			log.Fatal(err)
		}
		sqlGeoCache = cache.NewSqliteGeocodeCache(conn)
		log.Printf("storage: sqlite path=%s", dbPath)
	}
	defer conn.Close()

	// The BAN geocoder uses a persistent cache to avoid repeated lookups
	// for popular addresses: Redis when configured, the SQL store otherwise.
	geocodeCache := sqlGeoCache
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		geocodeCache = cache.NewRedisGeocodeCache(client, 24*time.Hour)
		log.Printf("geocode cache: redis addr=%s", redisAddr)
	}

	geocoder := geocode.NewBANGeocoder(geocodeCache)
	repo := repositories.NewSQLFacilityRepository(conn)
	router := api.NewRouter(repo, geocoder)

	// Timeouts allow for cold-cache geocoding (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openSqlite(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeedSqlite(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromCSV(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

func initAndSeedPostgres(ctx context.Context, db *sql.DB, seedPath string) error {
	if err := repositories.InitPostgresSchema(ctx, db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedPostgresFromCSV(ctx, db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
