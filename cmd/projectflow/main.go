// Copyright 2025 ProjectFlow Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/conf"
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/router"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/cache"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/ctx"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/database"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/log"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/runner"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/version"
)

var confFile = flag.String("conf", "conf.d/config.toml", "config file path")

func printRunner() {
	fmt.Printf("[Runner] hostname: %s\n", runner.Hostname)
	fmt.Printf("[Runner] pwd: %s\n", runner.Pwd)
	fmt.Printf("[Runner] version: %s\n", version.GetVersion().Json())
}

func main() {
	flag.Parse()
	printRunner()

	cfg := conf.NewConf(*confFile)

	zapLogger, err := log.NewLog(&cfg.Log)
	if err != nil {
		fmt.Printf("[Error] failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = zapLogger.Sync() }()

	rootCtx := context.Background()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		log.Errorw("failed to init redis", "error", err)
		os.Exit(1)
	}
	defer func() { _ = redisClient.Close() }()

	mongoClient, err := database.NewMongoDB(cfg.Mongo, rootCtx)
	if err != nil {
		log.Errorw("failed to init mongodb", "error", err)
		os.Exit(1)
	}
	defer func() { _ = mongoClient.Close(rootCtx) }()
	log.Infow("mongodb connected", "db", cfg.Mongo.DB)

	appCtx := ctx.NewContext(rootCtx, mongoClient, redisClient, zapLogger.Sugar())

	rt := router.NewRouter(&cfg.Http, appCtx)
	app := rt.Router()

	shutdown := cfg.Http.Server(app)
	shutdown()
}
