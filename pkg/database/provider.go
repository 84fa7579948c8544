package database

import (
	"context"

	"github.com/google/wire"
)

// ProviderSet provides database related dependencies.
var ProviderSet = wire.NewSet(ProvideMongo)

// ProvideMongo provides the mongo client instance.
func ProvideMongo(cfg MongoDB) (*MongoClient, error) {
	return NewMongoDB(cfg, context.Background())
}
