package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-match/internal/domain/validation"
	"talent-match/internal/pkg/logger"
)

type RecordAssessmentInput struct {
	SubjectID  string
	SkillID    string
	AssessorID string
	NewRating  int
	Comment    string
}

// SkillValidatedNotifier is told about every proficiency change.
type SkillValidatedNotifier interface {
	NotifySkillValidated(employeeID, skillID, assessorID string, proficiency int)
}

type ValidationUsecase interface {
	RecordAssessment(ctx context.Context, in RecordAssessmentInput) (validation.Outcome, error)
}

type Validation struct {
	ledger   *validation.Ledger
	cache    MatchCache
	notifier SkillValidatedNotifier
	logger   *logger.Logger
}

func NewValidationUsecase(ledger *validation.Ledger, c MatchCache, notifier SkillValidatedNotifier, log *logger.Logger) *Validation {
	return &Validation{ledger: ledger, cache: c, notifier: notifier, logger: logger.OrNop(log)}
}

func (u *Validation) RecordAssessment(ctx context.Context, in RecordAssessmentInput) (validation.Outcome, error) {
	in.SubjectID = strings.TrimSpace(in.SubjectID)
	in.SkillID = strings.TrimSpace(in.SkillID)
	in.AssessorID = strings.TrimSpace(in.AssessorID)
	if in.SubjectID == "" || in.SkillID == "" || in.AssessorID == "" {
		return validation.Outcome{}, ErrInvalidInput
	}

	out, err := u.ledger.Record(ctx, validation.Input{
		SubjectID:  in.SubjectID,
		SkillID:    in.SkillID,
		AssessorID: in.AssessorID,
		NewRating:  in.NewRating,
		Comment:    in.Comment,
	})
	if err != nil {
		return validation.Outcome{}, mapLedgerError(err)
	}

	u.logger.Info("assessment recorded",
		"assessment_id", out.Assessment.ID,
		"employee_id", in.SubjectID,
		"skill_id", in.SkillID,
		"type", out.Assessment.Type,
		"updated", out.Updated,
	)

	if out.Updated {
		if u.cache != nil {
			if err := u.cache.InvalidateMatches(ctx); err != nil {
				u.logger.Warn("match cache invalidation failed", "error", err)
			}
		}
		if u.notifier != nil {
			u.notifier.NotifySkillValidated(in.SubjectID, in.SkillID, in.AssessorID, out.Skill.Proficiency)
		}
	}
	return out, nil
}

func mapLedgerError(err error) error {
	switch {
	case errors.Is(err, validation.ErrUnknownEmployee):
		return ErrEmployeeNotFound
	case errors.Is(err, validation.ErrUnknownSkill):
		return ErrSkillNotFound
	case errors.Is(err, validation.ErrInvalidRating), errors.Is(err, validation.ErrMissingAssessor):
		return ErrInvalidInput
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return ErrInternal
	}
}
