package ctx

import (
	"context"

	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/database"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Context is the global application context handed to routers and services.
type Context struct {
	MongoIns *database.MongoClient
	RedisIns *redis.Client
	Ctx      context.Context
	Log      *zap.SugaredLogger
}

func NewContext(ctx context.Context, mongodb *database.MongoClient, redisIns *redis.Client, log *zap.SugaredLogger) *Context {
	return &Context{
		MongoIns: mongodb,
		RedisIns: redisIns,
		Ctx:      ctx,
		Log:      log,
	}
}

func (c *Context) GetCtx() context.Context {
	return c.Ctx
}

func (c *Context) GetMongoIns() *database.MongoClient {
	return c.MongoIns
}

func (c *Context) GetRedisIns() *redis.Client {
	return c.RedisIns
}
