// Package cleanup finds and aborts abandoned multipart uploads.
//
// A crashed upload leaves its parts stored (and billed) until the upload is aborted. Cleanup is
// split the same way as other reconciliation work: Plan lists the incomplete uploads initiated
// before a cutoff, Apply aborts them. Apply only acts when confirmed and not in dry-run mode.
//
//	plan, err := svc.Plan(ctx, "media", time.Now().Add(-24*time.Hour))
//	n, err := svc.Apply(ctx, plan, cleanup.Options{Confirmed: true})
//
// An abort answered with NoSuchUpload counts as done, so cleanup is idempotent.
package cleanup
