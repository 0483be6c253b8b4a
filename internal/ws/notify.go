package ws

import (
	"encoding/json"
	"time"

	"talent-match/internal/pkg/logger"
)

const EventSkillValidated = "skill_validated"

type SkillValidatedEvent struct {
	Type        string `json:"type"`
	EmployeeID  string `json:"employee_id"`
	SkillID     string `json:"skill_id"`
	AssessorID  string `json:"assessor_id"`
	Proficiency int    `json:"proficiency"`
	Timestamp   string `json:"timestamp"`
}

// Notifier publishes domain events to the hub.
type Notifier struct {
	hub    *Hub
	logger *logger.Logger
	now    func() time.Time
}

func NewNotifier(hub *Hub, log *logger.Logger) *Notifier {
	return &Notifier{hub: hub, logger: logger.OrNop(log), now: time.Now}
}

func (n *Notifier) NotifySkillValidated(employeeID, skillID, assessorID string, proficiency int) {
	if n == nil || n.hub == nil {
		return
	}
	b, err := json.Marshal(SkillValidatedEvent{
		Type:        EventSkillValidated,
		EmployeeID:  employeeID,
		SkillID:     skillID,
		AssessorID:  assessorID,
		Proficiency: proficiency,
		Timestamp:   n.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		n.logger.Warn("encode skill event failed", "error", err)
		return
	}
	n.hub.Broadcast(b)
}
