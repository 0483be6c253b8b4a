package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/task"
	"talent-match/internal/domain/team"
	"talent-match/internal/pkg/logger"
	"talent-match/internal/pkg/workerpool"
	"talent-match/internal/repository"

	"golang.org/x/sync/singleflight"
)

const (
	ReasoningExtractionFailed = "Failed to extract task requirements from the request, but here are some potential matches."
	ReasoningUnexpectedError  = "An error occurred while processing your request, but here are some potential matches."
	ReasoningUnavailable      = "A detailed explanation could not be generated right now. The employees below are ranked by their match scores for the identified tasks."

	TeamDynamicsUnavailable  = "Team dynamics insights could not be generated right now."
	TeamDynamicsDefaultTeam  = "This is a default team as an error occurred during team formation."
	BusinessUnitsUnavailable = "No specific business unit insights available for this team."
	BusinessUnitsDefaultTeam = "No specific business unit insights available for this default team."
)

var jsonObjectRe = regexp.MustCompile(`\{[\s\S]*\}`)

var (
	defaultTeamRoles     = []string{"Team Lead", "Developer", "Analyst"}
	recommendationRoles  = []string{"Developer", "Analyst", "Project Manager"}
	defaultTeamGoals     = []string{"Deliver high-quality solution"}
	defaultDeliveryAhead = 90 * 24 * time.Hour
)

// TextGenerator produces free text from a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ExtractedProjectContext struct {
	ProjectPhase       string   `json:"projectPhase"`
	ProjectType        string   `json:"projectType"`
	ProjectGoals       []string `json:"projectGoals"`
	TargetDeliveryDate string   `json:"targetDeliveryDate"`
}

type ExtractedTeamComposition struct {
	Roles []string `json:"roles"`
}

type ExtractedBusinessUnits struct {
	RelevantUnits     []string `json:"relevantUnits"`
	KnowledgeRequired bool     `json:"knowledgeRequired"`
}

// ExtractedRequirements is the structured object the extractor is asked for.
type ExtractedRequirements struct {
	TaskDescription       string                    `json:"taskDescription"`
	TaskPurpose           string                    `json:"taskPurpose"`
	RequiredHardSkills    []string                  `json:"requiredHardSkills"`
	RequiredSoftSkills    []string                  `json:"requiredSoftSkills"`
	Location              string                    `json:"location"`
	Complexity            string                    `json:"complexity,omitempty"`
	Variability           string                    `json:"variability,omitempty"`
	ProjectContext        *ExtractedProjectContext  `json:"projectContext,omitempty"`
	TeamComposition       *ExtractedTeamComposition `json:"teamComposition,omitempty"`
	BusinessUnitRelevance *ExtractedBusinessUnits   `json:"businessUnitRelevance,omitempty"`
}

type TeamRecommendation struct {
	TeamMembers          []employee.Employee `json:"team_members"`
	Roles                map[string]string   `json:"roles"`
	UnfilledRoles        []string            `json:"unfilled_roles"`
	TeamDynamics         string              `json:"team_dynamics"`
	BusinessUnitInsights string              `json:"business_unit_insights"`
}

type RequestResult struct {
	MatchingEmployees  []employee.Employee  `json:"matching_employees"`
	Tasks              []task.Task          `json:"tasks"`
	Reasoning          string               `json:"reasoning"`
	ProjectContext     *task.ProjectContext `json:"project_context,omitempty"`
	TeamRecommendation *TeamRecommendation  `json:"team_recommendation,omitempty"`
}

type RecommendationOptions struct {
	BusinessUnitRelevance int
	FallbackEmployees     int
	FallbackTasks         int
	// GeneratorRPS caps narrative requests started per second; 0 is unlimited.
	GeneratorRPS int
	Now          func() time.Time
}

type RecommendationUsecase interface {
	ProcessRequest(ctx context.Context, message string) (RequestResult, error)
	RecommendTeam(ctx context.Context, message string) (TeamRecommendation, error)
}

type Recommendation struct {
	employees repository.EmployeeRepository
	tasks     repository.TaskRepository
	matching  MatchingUsecase
	generator TextGenerator
	cache     JSONCache
	opts      RecommendationOptions
	logger    *logger.Logger

	// inflight collapses concurrent extractions of the same message.
	inflight singleflight.Group
}

func NewRecommendationUsecase(
	employees repository.EmployeeRepository,
	tasks repository.TaskRepository,
	matching MatchingUsecase,
	generator TextGenerator,
	c JSONCache,
	opts RecommendationOptions,
	log *logger.Logger,
) *Recommendation {
	if opts.BusinessUnitRelevance <= 0 {
		opts.BusinessUnitRelevance = 4
	}
	if opts.FallbackEmployees <= 0 {
		opts.FallbackEmployees = 3
	}
	if opts.FallbackTasks <= 0 {
		opts.FallbackTasks = 2
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Recommendation{
		employees: employees,
		tasks:     tasks,
		matching:  matching,
		generator: generator,
		cache:     c,
		opts:      opts,
		logger:    logger.OrNop(log),
	}
}

// ProcessRequest turns a free-text staffing request into tasks, candidates and
// a team. Collaborator failures are absorbed: the caller always gets a
// non-empty result when the catalog is non-empty.
func (u *Recommendation) ProcessRequest(ctx context.Context, message string) (RequestResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return RequestResult{}, ErrInvalidInput
	}

	res, err := u.processRequest(ctx, message)
	if err == nil {
		return res, nil
	}

	switch {
	case ctx.Err() != nil:
		return RequestResult{}, ctx.Err()
	case isExtractionFailure(err):
		u.logger.Warn("requirement extraction failed", "error", err)
		return u.defaultResult(ctx, ReasoningExtractionFailed)
	default:
		u.logger.Error("request processing failed", "error", err)
		return u.defaultResult(ctx, ReasoningUnexpectedError)
	}
}

func (u *Recommendation) processRequest(ctx context.Context, message string) (RequestResult, error) {
	req, err := u.extract(ctx, message)
	if err != nil {
		return RequestResult{}, err
	}
	u.logger.Debug("requirements extracted",
		"hard_skills", req.RequiredHardSkills,
		"soft_skills", req.RequiredSoftSkills,
		"location", req.Location,
	)

	pc := u.projectContext(req)
	relevance := u.businessUnitRelevance(req)

	tasks, err := u.tasksFor(ctx, req, pc, relevance)
	if err != nil {
		return RequestResult{}, err
	}
	candidates, err := u.candidatesFor(ctx, req, tasks)
	if err != nil {
		return RequestResult{}, err
	}

	var roles []string
	if req.TeamComposition != nil {
		roles = req.TeamComposition.Roles
	}
	rec := u.teamRecommendation(ctx, candidates, roles, pc, relevance)

	reasoning, err := u.generate(ctx, reasoningPrompt(req, tasks, candidates, &rec))
	if err != nil {
		u.logger.Warn("reasoning generation failed", "error", err)
		reasoning = ReasoningUnavailable
	}

	return RequestResult{
		MatchingEmployees:  candidates,
		Tasks:              tasks,
		Reasoning:          reasoning,
		ProjectContext:     &pc,
		TeamRecommendation: &rec,
	}, nil
}

// RecommendTeam runs the full request flow and returns its team. When the flow
// fell back to defaults, a team is assembled from the fallback candidates.
func (u *Recommendation) RecommendTeam(ctx context.Context, message string) (TeamRecommendation, error) {
	res, err := u.ProcessRequest(ctx, message)
	if err != nil {
		return TeamRecommendation{}, err
	}
	if res.TeamRecommendation != nil {
		return *res.TeamRecommendation, nil
	}

	pc := task.ProjectContext{
		ProjectPhase: string(employee.PhaseInception),
		ProjectType:  task.ProjectProduct,
		ProjectGoals: defaultTeamGoals,
	}
	due := u.opts.Now().Add(defaultDeliveryAhead)
	pc.TargetDeliveryDate = &due
	return u.teamRecommendation(ctx, res.MatchingEmployees, recommendationRoles, pc, nil), nil
}

func (u *Recommendation) teamRecommendation(
	ctx context.Context,
	candidates []employee.Employee,
	roles []string,
	pc task.ProjectContext,
	relevance []task.BusinessUnitRelevance,
) TeamRecommendation {
	if len(candidates) == 0 {
		return u.defaultTeam(ctx)
	}

	roles = cleanRoles(roles)
	if len(roles) == 0 {
		roles = team.DefaultRoles(pc.ProjectType)
	}
	assembled := team.Assemble(candidates, roles, relevance)
	members := assembled.Members()
	roleByID := assembled.Roles()

	var dynamics, insights string
	errs := workerpool.RunAll(ctx, 2, u.opts.GeneratorRPS,
		func(ctx context.Context) (err error) {
			dynamics, err = u.generate(ctx, teamDynamicsPrompt(members, roleByID))
			return err
		},
		func(ctx context.Context) (err error) {
			insights, err = u.generate(ctx, businessUnitPrompt(members, roleByID, relevance))
			return err
		},
	)
	if errs[0] != nil {
		u.logger.Warn("team dynamics generation failed", "error", errs[0])
		dynamics = TeamDynamicsUnavailable
	}
	if errs[1] != nil {
		u.logger.Warn("business unit insights generation failed", "error", errs[1])
		insights = BusinessUnitsUnavailable
	}

	return TeamRecommendation{
		TeamMembers:          members,
		Roles:                roleByID,
		UnfilledRoles:        assembled.UnfilledRoles,
		TeamDynamics:         dynamics,
		BusinessUnitInsights: insights,
	}
}

func (u *Recommendation) defaultTeam(ctx context.Context) TeamRecommendation {
	rec := TeamRecommendation{
		TeamMembers:          []employee.Employee{},
		Roles:                map[string]string{},
		UnfilledRoles:        []string{},
		TeamDynamics:         TeamDynamicsDefaultTeam,
		BusinessUnitInsights: BusinessUnitsDefaultTeam,
	}
	all, err := u.employees.List(ctx)
	if err != nil {
		return rec
	}
	for i, e := range firstEmployees(all, len(defaultTeamRoles)) {
		rec.TeamMembers = append(rec.TeamMembers, e)
		rec.Roles[e.ID] = defaultTeamRoles[i]
	}
	return rec
}

func (u *Recommendation) projectContext(req ExtractedRequirements) task.ProjectContext {
	pc := task.ProjectContext{
		ProjectPhase: string(employee.PhaseInception),
		ProjectType:  task.ProjectPrototype,
		ProjectGoals: []string{},
	}
	src := req.ProjectContext
	if src == nil {
		return pc
	}
	if v := strings.ToLower(strings.TrimSpace(src.ProjectPhase)); v != "" {
		pc.ProjectPhase = v
	}
	if v := strings.ToLower(strings.TrimSpace(src.ProjectType)); v != "" {
		pc.ProjectType = task.ProjectType(v)
	}
	if len(src.ProjectGoals) > 0 {
		pc.ProjectGoals = src.ProjectGoals
	}
	if d, err := time.Parse("2006-01-02", strings.TrimSpace(src.TargetDeliveryDate)); err == nil {
		pc.TargetDeliveryDate = &d
	}
	return pc
}

func (u *Recommendation) businessUnitRelevance(req ExtractedRequirements) []task.BusinessUnitRelevance {
	out := make([]task.BusinessUnitRelevance, 0)
	if req.BusinessUnitRelevance == nil {
		return out
	}
	for _, unit := range req.BusinessUnitRelevance.RelevantUnits {
		unit = strings.TrimSpace(unit)
		if unit == "" {
			continue
		}
		out = append(out, task.BusinessUnitRelevance{
			BusinessUnitID:    businessUnitID(unit),
			BusinessUnitName:  unit,
			RelevanceLevel:    u.opts.BusinessUnitRelevance,
			KnowledgeRequired: req.BusinessUnitRelevance.KnowledgeRequired,
		})
	}
	return out
}

// tasksFor finds tasks by the extracted hard skills and stamps them with the
// request's project context. No hard skills means every task.
func (u *Recommendation) tasksFor(ctx context.Context, req ExtractedRequirements, pc task.ProjectContext, relevance []task.BusinessUnitRelevance) ([]task.Task, error) {
	var tasks []task.Task
	if len(req.RequiredHardSkills) > 0 {
		found, err := u.tasks.FindBySkills(ctx, req.RequiredHardSkills)
		if err != nil {
			return nil, err
		}
		for _, t := range found {
			ctxCopy := pc
			t.ProjectContext = &ctxCopy
			t.BusinessUnitRelevance = relevance
			tasks = append(tasks, t)
		}
	}
	if len(tasks) == 0 {
		all, err := u.tasks.List(ctx)
		if err != nil {
			return nil, err
		}
		tasks = all
	}
	return tasks, nil
}

// candidatesFor unions employeesForTask over tasks in first-seen order, then
// applies the location and project-phase filters.
func (u *Recommendation) candidatesFor(ctx context.Context, req ExtractedRequirements, tasks []task.Task) ([]employee.Employee, error) {
	seen := make(map[string]bool)
	out := make([]employee.Employee, 0)
	for _, t := range tasks {
		matches, err := u.matching.EmployeesForTask(ctx, t.ID, UseDefaultThreshold)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if seen[m.Employee.ID] {
				continue
			}
			seen[m.Employee.ID] = true
			out = append(out, m.Employee)
		}
	}

	if loc := strings.ToLower(strings.TrimSpace(req.Location)); loc != "" {
		out = filterEmployees(out, func(e employee.Employee) bool {
			return strings.Contains(strings.ToLower(e.Location), loc)
		})
	}
	if req.ProjectContext != nil && strings.EqualFold(strings.TrimSpace(req.ProjectContext.ProjectPhase), string(employee.PhaseMature)) {
		out = filterEmployees(out, func(e employee.Employee) bool {
			return e.CurrentProjectPhase == "" || e.CurrentProjectPhase == employee.PhaseNone || e.CurrentProjectPhase == employee.PhaseMature
		})
	}

	if len(out) == 0 {
		all, err := u.employees.List(ctx)
		if err != nil {
			return nil, err
		}
		out = firstEmployees(all, u.opts.FallbackEmployees)
	}
	return out, nil
}

func (u *Recommendation) defaultResult(ctx context.Context, reasoning string) (RequestResult, error) {
	emps, err := u.employees.List(ctx)
	if err != nil {
		return RequestResult{}, ErrInternal
	}
	tasks, err := u.tasks.List(ctx)
	if err != nil {
		return RequestResult{}, ErrInternal
	}
	if len(tasks) > u.opts.FallbackTasks {
		tasks = tasks[:u.opts.FallbackTasks]
	}
	return RequestResult{
		MatchingEmployees: firstEmployees(emps, u.opts.FallbackEmployees),
		Tasks:             tasks,
		Reasoning:         reasoning,
	}, nil
}

// extract asks the generator for the requirement object. Parsed objects are
// cached by normalized message.
func (u *Recommendation) extract(ctx context.Context, message string) (ExtractedRequirements, error) {
	key := RequirementsCacheKey(message)
	var req ExtractedRequirements
	if err := ctx.Err(); err != nil {
		return req, err
	}
	if u.cache != nil {
		if hit, err := u.cache.GetJSON(ctx, key, &req); err == nil && hit {
			u.logger.Debug("requirements cache hit", "key", key)
			return req, nil
		}
	}

	// The shared call outlives any single caller; the generator applies its
	// own timeout.
	callCtx := context.WithoutCancel(ctx)
	ch := u.inflight.DoChan(key, func() (any, error) {
		raw, err := u.generate(callCtx, extractionPrompt(message))
		if err != nil {
			return nil, err
		}
		parsed, err := ParseRequirements(raw)
		if err != nil {
			return nil, err
		}
		return parsed, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return req, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return req, res.Err
	}
	req = res.Val.(ExtractedRequirements)
	if res.Shared {
		u.logger.Debug("requirements extraction shared", "key", key)
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, req); err != nil {
			u.logger.Debug("requirements cache set failed", "key", key, "error", err)
		}
	}
	return req, nil
}

func (u *Recommendation) generate(ctx context.Context, prompt string) (string, error) {
	if u.generator == nil {
		return "", ErrCollaboratorFailed
	}
	out, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCollaboratorFailed, err)
	}
	return out, nil
}

// ParseRequirements locates the outermost JSON object in free text and
// decodes it.
func ParseRequirements(raw string) (ExtractedRequirements, error) {
	var req ExtractedRequirements
	m := jsonObjectRe.FindString(raw)
	if m == "" {
		return req, fmt.Errorf("%w: no JSON object in response", ErrExtractionFailed)
	}
	if err := json.Unmarshal([]byte(m), &req); err != nil {
		return req, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	return req, nil
}

func isExtractionFailure(err error) bool {
	return errors.Is(err, ErrExtractionFailed)
}

func filterEmployees(in []employee.Employee, keep func(employee.Employee) bool) []employee.Employee {
	out := make([]employee.Employee, 0, len(in))
	for _, e := range in {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func firstEmployees(in []employee.Employee, n int) []employee.Employee {
	if len(in) < n {
		n = len(in)
	}
	return append([]employee.Employee{}, in[:n]...)
}
