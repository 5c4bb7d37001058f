package records

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names are part of the deployment contract: other services write
// these collections, this kit only reads them.
const (
	collUserSettings     = "user_settings"
	collWorkspaceMembers = "workspace_members"
	collWorkspaces       = "workspaces"
	collRoles            = "roles"
)

// Config describes the mongo connection behind the record store.
type Config struct {
	ConnectionURL   string        `env:"MONGODB_URL,required"`                         // ConnectionURL is the URL of the record store.
	Database        string        `env:"MONGODB_DATABASE" envDefault:"app"`            // Database is the database holding the account/workspace/role collections.
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`     // ConnectTimeout is the timeout for connecting to the store.
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`       // MaxPoolSize is the maximum number of pooled connections.
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`         // MinPoolSize is the minimum number of pooled connections.
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"` // MaxConnIdleTime is how long an idle connection is kept in the pool.
	RetryReads      bool          `env:"MONGODB_RETRY_READS" envDefault:"true"`        // RetryReads specifies whether to retry read operations.
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`        // RetryAttempts is the number of retry attempts to connect to the store.
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`       // RetryInterval is the interval between retry attempts.
}

// Connect establishes a mongo connection using the provided configuration,
// retrying up to cfg.RetryAttempts times. Reads dominate this client; the
// single write path is SetCurrentWorkspace.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	for range cfg.RetryAttempts {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout).
				SetMaxPoolSize(cfg.MaxPoolSize).
				SetMinPoolSize(cfg.MinPoolSize).
				SetMaxConnIdleTime(cfg.MaxConnIdleTime).
				SetRetryReads(cfg.RetryReads),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return client, nil
			}
		}

		time.Sleep(cfg.RetryInterval)
	}

	return nil, ErrFailedToConnect
}

// MongoSource implements Source against the mongo collections named above.
type MongoSource struct {
	db *mongo.Database
}

// NewMongoSource creates a Source reading from the given database.
func NewMongoSource(db *mongo.Database) *MongoSource {
	return &MongoSource{db: db}
}

// NewMongoSourceFromConfig connects and returns a ready Source.
func NewMongoSourceFromConfig(ctx context.Context, cfg Config) (*MongoSource, error) {
	client, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewMongoSource(client.Database(cfg.Database)), nil
}

func (s *MongoSource) UserSettings(ctx context.Context, userID string) (*UserSettings, error) {
	var doc UserSettings
	err := s.db.Collection(collUserSettings).FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err != nil {
		return nil, mapMongoErr(err)
	}
	return &doc, nil
}

func (s *MongoSource) WorkspaceMember(ctx context.Context, userID, workspaceID string) (*WorkspaceMember, error) {
	var doc WorkspaceMember
	filter := bson.M{"user_id": userID, "workspace_id": workspaceID}
	err := s.db.Collection(collWorkspaceMembers).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		return nil, mapMongoErr(err)
	}
	return &doc, nil
}

func (s *MongoSource) Workspace(ctx context.Context, workspaceID string) (*Workspace, error) {
	var doc Workspace
	err := s.db.Collection(collWorkspaces).FindOne(ctx, bson.M{"_id": workspaceID}).Decode(&doc)
	if err != nil {
		return nil, mapMongoErr(err)
	}
	return &doc, nil
}

func (s *MongoSource) Role(ctx context.Context, roleID string) (*Role, error) {
	var doc Role
	err := s.db.Collection(collRoles).FindOne(ctx, bson.M{"_id": roleID}).Decode(&doc)
	if err != nil {
		return nil, mapMongoErr(err)
	}
	return &doc, nil
}

// SetCurrentWorkspace upserts the account's workspace selection. This is the
// only write the kit performs against the record store: the selection must be
// durable before the session is re-derived from it.
func (s *MongoSource) SetCurrentWorkspace(ctx context.Context, userID, workspaceID string) error {
	_, err := s.db.Collection(collUserSettings).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"current_workspace_id": workspaceID}},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

func mapMongoErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
