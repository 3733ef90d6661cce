package entity

import "time"

// Tipos de execução registrados no run log.
const (
	RunTypeCheckReplies  = "check_replies"
	RunTypeFollowUps     = "follow_ups"
	RunTypeFindProspects = "find_prospects"
)

// RunLog é o resumo persistido de uma execução de ciclo.
type RunLog struct {
	ID         string
	RunType    string
	Checked    int
	Advanced   int
	Errors     int
	StartedAt  time.Time
	FinishedAt time.Time
}
