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

package model

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Project document. OwnerId tracks ownership separately from the member
// list; the owner must never appear as a member.
type Project struct {
	Id          string          `bson:"_id" json:"projectId"`
	WorkspaceId string          `bson:"workspaceId" json:"workspaceId"`
	OwnerId     string          `bson:"ownerId" json:"ownerId"`
	Title       string          `bson:"title" json:"title"`
	Description string          `bson:"description,omitempty" json:"description,omitempty"`
	Members     []ProjectMember `bson:"members" json:"members"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
}

// ProjectMember is one membership record. Role is a string union: either a
// legacy role literal or a custom role id; classification happens once in the
// resolver, never at call sites.
//
// Historical documents store a member as a bare user-id string. Decoding
// accepts both shapes; flat entries are flagged so the normalizer can apply
// the legacy defaults. Encoding always writes the structured shape.
type ProjectMember struct {
	UserId    string    `bson:"userId" json:"userId"`
	Role      string    `bson:"role" json:"role"`
	JoinedAt  time.Time `bson:"joinedAt" json:"joinedAt"`
	InvitedBy string    `bson:"invitedBy" json:"invitedBy"`

	flat bool `bson:"-" json:"-"`
}

// LegacyMember builds a member entry as decoded from the flat id array.
func LegacyMember(userId string) ProjectMember {
	return ProjectMember{UserId: userId, flat: true}
}

// IsLegacyEntry reports whether this entry was decoded from the flat member
// id array and still lacks a role record.
func (m *ProjectMember) IsLegacyEntry() bool {
	return m.flat
}

func (m *ProjectMember) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeString:
		var userId string
		if err := bson.UnmarshalValue(bson.TypeString, data, &userId); err != nil {
			return err
		}
		*m = LegacyMember(userId)
		return nil
	case bson.TypeEmbeddedDocument:
		type plain ProjectMember
		var p plain
		if err := bson.Unmarshal(data, &p); err != nil {
			return err
		}
		*m = ProjectMember(p)
		m.flat = false
		return nil
	}
	return fmt.Errorf("unsupported member entry type %s", t)
}

func (m ProjectMember) MarshalBSONValue() (bsontype.Type, []byte, error) {
	type plain ProjectMember
	return bson.MarshalValue(plain(m))
}

// AddMemberRequest is the payload for adding a project member. Role is
// optional; when empty the workspace default custom role is used, falling
// back to Editor.
type AddMemberRequest struct {
	UserId string `json:"userId"`
	Role   string `json:"role,omitempty"`
}

// UpdateMemberRequest changes a member's role value.
type UpdateMemberRequest struct {
	Role string `json:"role"`
}
