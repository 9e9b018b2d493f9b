package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blissful-trails/trails-api/internal/redact"
	"github.com/flowchartsman/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by the stores.
const (
	PackagesCollection     = "packages"
	UsersCollection        = "users"
	WishlistCollection     = "wishlist"
	GuidesCollection       = "guides"
	RoleRequestsCollection = "request"
	BookingsCollection     = "booking"
	StoriesCollection      = "stories"
)

// DefaultConnectTimeout bounds the initial connect and ping when no timeout is configured.
const DefaultConnectTimeout = 10 * time.Second

// Connect opens a client for uri using the stable server API and verifies
// connectivity with a ping. The ping is retried a few times because the
// cluster is commonly still starting when the service boots.
func Connect(
	ctx context.Context,
	uri string,
	timeout time.Duration,
	logger *slog.Logger,
) (*mongo.Client, error) {
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}

	serverAPIOptions := options.ServerAPI(options.ServerAPIVersion1)
	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPIOptions).
		SetConnectTimeout(timeout)

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %s", redact.Error(err))
	}

	retrier := retry.NewRetrier(5, 100*time.Millisecond, time.Second)
	attempt := 0
	err = retrier.Run(func() error {
		attempt++
		pingErr := client.Ping(connectCtx, readpref.Primary())
		if pingErr != nil {
			logger.Warn("mongodb ping failed",
				slog.Int("attempt", attempt),
				slog.String("error", redact.Error(pingErr)))
		}
		return pingErr
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %s", redact.Error(err))
	}

	logger.Info("mongodb connected", slog.Int("ping_attempts", attempt))
	return client, nil
}

// Ping reports whether the deployment is reachable.
func Ping(ctx context.Context, client *mongo.Client) error {
	return MapError(client.Ping(ctx, readpref.Primary()))
}

// UsersEmailIndex is the name of the unique index on users.email.
const UsersEmailIndex = "users_email_unique"

// EnsureIndexes creates the indexes the stores rely on. It is idempotent.
//
// A users collection that already holds duplicate emails cannot take the
// unique index. That is logged and startup continues without it; duplicate
// registrations are then only caught by the check before insert.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	users := db.Collection(UsersCollection)
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(UsersEmailIndex),
	})
	if mongo.IsDuplicateKeyError(err) {
		logger.Error("users collection holds duplicate emails; starting without unique index",
			slog.String("index", UsersEmailIndex),
			slog.String("error", redact.Error(err)))
		return nil
	}
	if err != nil {
		return wrapError("user", "create index", err)
	}
	return nil
}
