package journal

import "time"

// Direction of a transfer.
type Direction string

const (
	DirectionUpload   Direction = "upload"
	DirectionDownload Direction = "download"
)

// Status is the terminal state of a transfer.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// TransferRecord is one journaled upload or download.
type TransferRecord struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Direction  Direction `gorm:"size:16;index" json:"direction"`
	Bucket     string    `gorm:"size:255;index" json:"bucket"`
	ObjectKey  string    `gorm:"column:object_key;size:1024" json:"key"`
	LocalPath  string    `gorm:"size:1024" json:"local_path"`
	Bytes      int64     `json:"bytes"`
	Status     Status    `gorm:"size:16;index" json:"status"`
	Error      string    `gorm:"type:text" json:"error,omitempty"`
	StartedAt  time.Time `gorm:"index" json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// TableName overrides the table name used by GORM.
func (TransferRecord) TableName() string {
	return "transfer_records"
}

// Columns lists the columns the journal reads and writes.
var Columns = []string{
	"id", "direction", "bucket", "object_key", "local_path",
	"bytes", "status", "error", "started_at", "finished_at",
}
