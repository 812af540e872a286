package storage

import (
	"context"
	"fmt"
	"time"

	"calllog-backend/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dialPostgres(cfg *models.PostgresSettings) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	return db, nil
}

func dialMongo(cfg *models.MongoSettings) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}
	return client, nil
}

// Open connects the backend named by settings and returns a ready Repository.
// The relational backend is migrated on every open; the document backend gets
// its indexes ensured. Both are pinged before the repository is handed out.
func Open(settings *models.AppSettings) (Repository, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Backend {
	case models.BackendPostgres:
		db, err := dialPostgres(settings.Postgres)
		if err != nil {
			return nil, err
		}
		repo := NewGormRepo(db)
		if err := repo.AutoMigrate(); err != nil {
			repo.Close()
			return nil, fmt.Errorf("postgres migrate: %w", err)
		}
		if err := repo.Ping(); err != nil {
			repo.Close()
			return nil, fmt.Errorf("postgres ping: %w", err)
		}
		return repo, nil

	case models.BackendMongo:
		client, err := dialMongo(settings.Mongo)
		if err != nil {
			return nil, err
		}
		repo, err := NewMongoRepo(client, settings.Mongo.Database)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("mongodb indexes: %w", err)
		}
		return repo, nil
	}

	return nil, fmt.Errorf("unsupported backend %q", settings.Backend)
}

// TestConnection dials the configured backend, pings it and closes the
// connection. It never touches the schema: migration and index creation
// happen only when a backend is activated, so a probe with read-only
// credentials still succeeds and the target database is left as it was.
func TestConnection(settings *models.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	switch settings.Backend {
	case models.BackendPostgres:
		db, err := dialPostgres(settings.Postgres)
		if err != nil {
			return err
		}
		repo := NewGormRepo(db)
		if err := repo.Ping(); err != nil {
			repo.Close()
			return fmt.Errorf("postgres ping: %w", err)
		}
		return repo.Close()

	case models.BackendMongo:
		client, err := dialMongo(settings.Mongo)
		if err != nil {
			return err
		}
		return client.Disconnect(context.Background())
	}

	return fmt.Errorf("unsupported backend %q", settings.Backend)
}
