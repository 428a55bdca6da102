package cleanup

import "time"

// Upload is an incomplete multipart upload.
type Upload struct {
	Key       string    `json:"key"`
	UploadID  string    `json:"upload_id"`
	Initiated time.Time `json:"initiated"`
	Size      int64     `json:"size"`
}

// Plan lists the uploads a cleanup would abort.
type Plan struct {
	Bucket  string    `json:"bucket"`
	Cutoff  time.Time `json:"cutoff"`
	Uploads []Upload  `json:"uploads"`
}

// Bytes sums the parts already stored by the planned uploads.
func (p *Plan) Bytes() int64 {
	var total int64
	for _, u := range p.Uploads {
		total += u.Size
	}
	return total
}

// Options controls how a plan is applied.
type Options struct {
	// DryRun reports the plan without aborting anything.
	DryRun bool
	// Confirmed must be set for Apply to abort uploads.
	Confirmed bool
	// Concurrency bounds parallel abort requests. Zero uses DefaultConcurrency.
	Concurrency int
}

// DefaultConcurrency is the number of abort requests in flight at once.
const DefaultConcurrency = 8
