package model

import (
	"strconv"
	"time"
)

// Screens hand a task to each other as a flat string-keyed parameter set
// rather than a shared pointer. Params and TaskFromParams are the two ends of
// that contract.
const (
	ParamID        = "id"
	ParamTitle     = "title"
	ParamText      = "text"
	ParamCompleted = "completed"
	ParamCreatedAt = "createdAt"
	ParamPriority  = "priority"
	ParamCategory  = "category"
)

func (t Task) Params() map[string]string {
	return map[string]string{
		ParamID:        t.ID,
		ParamTitle:     t.Title,
		ParamText:      t.Text,
		ParamCompleted: strconv.FormatBool(t.Completed),
		ParamCreatedAt: t.CreatedAt.UTC().Format(wireTimeLayout),
		ParamPriority:  string(t.Priority),
		ParamCategory:  t.Category,
	}
}

// TaskFromParams rebuilds a task from a parameter set. A bad createdAt leaves
// the zero time as an explicit invalid marker; a bad completed flag reads as
// false.
func TaskFromParams(params map[string]string) Task {
	completed, _ := strconv.ParseBool(params[ParamCompleted])
	createdAt, err := time.Parse(wireTimeLayout, params[ParamCreatedAt])
	if err != nil {
		createdAt = time.Time{}
	}
	return Task{
		ID:        params[ParamID],
		Title:     params[ParamTitle],
		Text:      params[ParamText],
		Completed: completed,
		CreatedAt: createdAt,
		Priority:  Priority(params[ParamPriority]),
		Category:  params[ParamCategory],
	}
}
