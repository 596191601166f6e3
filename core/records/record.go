package records

import (
	"sort"
	"time"
)

// Source identifies which path first wrote a record.
type Source string

const (
	// SourceAPI marks records created through the direct creation path.
	SourceAPI Source = "api"
	// SourceExternal marks records written from external webhook deliveries.
	SourceExternal Source = "external"
)

// Record is a single todo, the unit of storage and synchronization.
type Record struct {
	// ID is generated at first creation and never changes.
	ID string `json:"id" gorm:"type:varchar(36);primaryKey"`
	// Title is the short text supplied by the creator.
	Title string `json:"title" gorm:"type:varchar(255);not null"`
	// Description is optional free text.
	Description string `json:"description,omitempty" gorm:"type:text"`
	// Completed is derived from the external status on synchronization.
	Completed bool `json:"completed" gorm:"not null"`
	// CreatedAt is set on first write and preserved on every update.
	CreatedAt time.Time `json:"createdAt" gorm:"not null;autoCreateTime:false"`
	// Source is the origin of the record.
	Source Source `json:"source" gorm:"type:varchar(16);not null"`
	// ExternalRecordID links the record to the external system once known.
	ExternalRecordID *string `json:"externalRecordId,omitempty" gorm:"type:varchar(64);index:idx_external_record_id"`
}

// Columns lists the column names the database backend expects.
var Columns = []string{"id", "title", "description", "completed", "created_at", "source", "external_record_id"}

// IsLinked reports whether the record has been synchronized with the external system.
func (r *Record) IsLinked() bool {
	return r.ExternalRecordID != nil && *r.ExternalRecordID != ""
}

// SortNewestFirst orders records by descending creation time.
func SortNewestFirst(recs []Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
}
