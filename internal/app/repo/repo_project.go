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

const projectCollection = "projects"

type IProjectRepository interface {
	GetProject(ctx context.Context, projectId string) (*model.Project, error)
	ReplaceMembers(ctx context.Context, projectId string, members []model.ProjectMember) error
}

type ProjectRepo struct {
	mongo *database.MongoClient
}

func NewProjectRepo(mongo *database.MongoClient) IProjectRepository {
	return &ProjectRepo{mongo: mongo}
}

func (r *ProjectRepo) collection() *mongo.Collection {
	return r.mongo.GetCollection(projectCollection)
}

// GetProject loads a project including ownerId and the raw membership list.
// Legacy flat member ids decode into flagged entries, see model.ProjectMember.
func (r *ProjectRepo) GetProject(ctx context.Context, projectId string) (*model.Project, error) {
	var p model.Project
	err := r.collection().FindOne(ctx, bson.M{"_id": projectId}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, core.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// ReplaceMembers writes the full member list back in structured form. This is
// the only place legacy flat arrays get rewritten, and only on explicit
// member mutations or migration.
func (r *ProjectRepo) ReplaceMembers(ctx context.Context, projectId string, members []model.ProjectMember) error {
	res, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": projectId},
		bson.M{"$set": bson.M{"members": members}},
	)
	if err != nil {
		return fmt.Errorf("replace members: %w", err)
	}
	if res.MatchedCount == 0 {
		return core.ErrProjectNotFound
	}
	return nil
}
