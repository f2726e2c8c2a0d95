package domain

import "time"

// Report summarizes one pacsync run.
//
// Example JSON representation:
//
//	{
//	    "run_id": "3f0c...",
//	    "username": "octocat",
//	    "dry_run": false,
//	    "changed": true,
//	    "results": [
//	        {"theme": "light", "path": "pacman-contribution-graph.svg", "changed": true, ...},
//	        {"theme": "dark", "path": "pacman-contribution-graph-dark.svg", "changed": false, ...}
//	    ],
//	    "started_at": "2026-01-02T03:04:05Z",
//	    "finished_at": "2026-01-02T03:04:07Z"
//	}
type Report struct {
	RunID      string       `json:"run_id"`
	Username   string       `json:"username"`
	DryRun     bool         `json:"dry_run"`
	Changed    bool         `json:"changed"`
	Results    []SyncResult `json:"results"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
}

// AnyChanged reports whether at least one variant's content changed.
func (r *Report) AnyChanged() bool {
	for _, res := range r.Results {
		if res.Changed {
			return true
		}
	}
	return false
}

// Failed returns the results whose write failed.
func (r *Report) Failed() []SyncResult {
	var failed []SyncResult
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
