package telemetry

import "sync"

type Report struct {
	Kind   string
	ID     string
	Params []any
	Count  int64
}

// Recorder is an API that keeps every report, for tests.
type Recorder struct {
	mu      sync.Mutex
	Reports []Report
}

func (r *Recorder) add(report Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Reports = append(r.Reports, report)
}

func (r *Recorder) ReportBroken(id string, params ...any) {
	r.add(Report{Kind: "broken", ID: id, Params: params})
}

func (r *Recorder) ReportWarning(id string, params ...any) {
	r.add(Report{Kind: "warning", ID: id, Params: params})
}

func (r *Recorder) ReportCount(id string, count int64) {
	r.add(Report{Kind: "count", ID: id, Count: count})
}

// Count returns the last count reported under `id`.
func (r *Recorder) Count(id string) (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.Reports) - 1; i >= 0; i-- {
		if r.Reports[i].Kind == "count" && r.Reports[i].ID == id {
			return r.Reports[i].Count, true
		}
	}
	return 0, false
}

// Find returns every report of `kind` under `id`.
func (r *Recorder) Find(kind, id string) []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Report
	for _, report := range r.Reports {
		if report.Kind == kind && report.ID == id {
			out = append(out, report)
		}
	}
	return out
}
