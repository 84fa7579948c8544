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

package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/core"
	"github.com/ChristophLabestin/projectflow-app-sub007/internal/app/model"
	"github.com/ChristophLabestin/projectflow-app-sub007/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const workspaceCollection = "workspaces"

type IWorkspaceRepository interface {
	GetWorkspace(ctx context.Context, workspaceId string) (*model.Workspace, error)
	ListCustomRoles(ctx context.Context, workspaceId string) ([]model.CustomRole, error)
	ReplaceCustomRoles(ctx context.Context, workspaceId string, roles []model.CustomRole) error
	GetDefaultRoleId(ctx context.Context, workspaceId string) (string, error)
	SetDefaultRoleId(ctx context.Context, workspaceId string, roleId string) error
}

type WorkspaceRepo struct {
	mongo *database.MongoClient
}

func NewWorkspaceRepo(mongo *database.MongoClient) IWorkspaceRepository {
	return &WorkspaceRepo{mongo: mongo}
}

func (r *WorkspaceRepo) collection() *mongo.Collection {
	return r.mongo.GetCollection(workspaceCollection)
}

// GetWorkspace loads the full workspace document.
func (r *WorkspaceRepo) GetWorkspace(ctx context.Context, workspaceId string) (*model.Workspace, error) {
	var ws model.Workspace
	err := r.collection().FindOne(ctx, bson.M{"_id": workspaceId}).Decode(&ws)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, core.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("get workspace: %w", err)
	}
	return &ws, nil
}

// ListCustomRoles returns the workspace's custom role list. A missing
// workspace or an absent customRoles field yields an empty list, never an
// error; an empty workspace has no custom roles by definition.
func (r *WorkspaceRepo) ListCustomRoles(ctx context.Context, workspaceId string) ([]model.CustomRole, error) {
	var doc struct {
		CustomRoles []model.CustomRole `bson:"customRoles"`
	}
	err := r.collection().FindOne(ctx, bson.M{"_id": workspaceId}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []model.CustomRole{}, nil
		}
		return nil, fmt.Errorf("list custom roles: %w", err)
	}
	if doc.CustomRoles == nil {
		return []model.CustomRole{}, nil
	}
	return doc.CustomRoles, nil
}

// ReplaceCustomRoles writes the full role list back in one update. Last
// write wins; two concurrent writers can overwrite each other's effect but
// never produce a malformed list.
func (r *WorkspaceRepo) ReplaceCustomRoles(ctx context.Context, workspaceId string, roles []model.CustomRole) error {
	res, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": workspaceId},
		bson.M{"$set": bson.M{"customRoles": roles}},
	)
	if err != nil {
		return fmt.Errorf("replace custom roles: %w", err)
	}
	if res.MatchedCount == 0 {
		return core.ErrWorkspaceNotFound
	}
	return nil
}

// GetDefaultRoleId returns the role id assigned to new invitees, empty when
// unset.
func (r *WorkspaceRepo) GetDefaultRoleId(ctx context.Context, workspaceId string) (string, error) {
	var doc struct {
		DefaultRoleId string `bson:"defaultRoleId"`
	}
	err := r.collection().FindOne(ctx, bson.M{"_id": workspaceId}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", fmt.Errorf("get default role id: %w", err)
	}
	return doc.DefaultRoleId, nil
}

// SetDefaultRoleId stores the invite default; an empty id clears it.
func (r *WorkspaceRepo) SetDefaultRoleId(ctx context.Context, workspaceId string, roleId string) error {
	update := bson.M{"$set": bson.M{"defaultRoleId": roleId}}
	if roleId == "" {
		update = bson.M{"$unset": bson.M{"defaultRoleId": ""}}
	}
	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": workspaceId}, update)
	if err != nil {
		return fmt.Errorf("set default role id: %w", err)
	}
	if res.MatchedCount == 0 {
		return core.ErrWorkspaceNotFound
	}
	return nil
}
