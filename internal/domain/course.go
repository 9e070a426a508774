package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Course is one catalog entry. IDs are caller-assigned, stable strings
// ("go-101"), not surrogate keys, so seeded catalogs keep their identifiers.
type Course struct {
	ID             string         `gorm:"column:id;primaryKey" json:"id"`
	Title          string         `gorm:"column:title;not null" json:"title"`
	Description    string         `gorm:"column:description;type:text" json:"description"`
	Tags           datatypes.JSON `gorm:"type:jsonb;column:tags" json:"tags"`
	Difficulty     string         `gorm:"column:difficulty" json:"difficulty"`
	EducationLevel string         `gorm:"column:education_level" json:"education_level"`
	Prerequisites  datatypes.JSON `gorm:"type:jsonb;column:prerequisites" json:"prerequisites"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Course) TableName() string { return "course" }

// TagList decodes the tags column; nil or malformed JSON yields an empty list.
func (c Course) TagList() []string {
	return decodeStringList(c.Tags)
}

// PrerequisiteIDs decodes the prerequisites column; nil or malformed JSON
// yields an empty list.
func (c Course) PrerequisiteIDs() []string {
	return decodeStringList(c.Prerequisites)
}

func decodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// StringList encodes a string slice for a jsonb column. A nil slice encodes
// as [] so columns never hold SQL NULL.
func StringList(vals []string) datatypes.JSON {
	if vals == nil {
		vals = []string{}
	}
	b, err := json.Marshal(vals)
	if err != nil {
		return datatypes.JSON([]byte(`[]`))
	}
	return datatypes.JSON(b)
}
