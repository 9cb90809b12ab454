package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is the sole entity served by this API. Tags keep their caller-supplied
// order for display; filtering treats them as a set.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Tags      []string           `bson:"tags" json:"tags"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PostUpdate carries a partial update; nil fields are left untouched.
type PostUpdate struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// StampNew sets both timestamps at creation. Timestamp maintenance is an
// explicit contract of the store operations, not a schema hook: every create
// path calls this, every update path refreshes UpdatedAt.
func (p *Post) StampNew(now time.Time) {
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

// Touch refreshes UpdatedAt. Called on every update, including no-op updates
// where the new values equal the old ones.
func (p *Post) Touch(now time.Time) {
	p.UpdatedAt = now
}
