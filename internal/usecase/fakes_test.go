package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/task"
	"talent-match/internal/repository"
)

func testEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID: "e1", Name: "Ana", Position: "Senior Developer", Location: "London, UK", Capacity: 80,
			CurrentProjectPhase: employee.PhaseMature,
			HardSkills:          []employee.Skill{{ID: "s-react", Name: "React", Proficiency: 4}},
			SoftSkills:          []employee.Skill{{ID: "s-comm", Name: "Communication", Proficiency: 4}},
		},
		{
			ID: "e2", Name: "Ben", Position: "Data Analyst", Location: "Berlin, Germany", Capacity: 60,
			CurrentProjectPhase: employee.PhaseInception,
			HardSkills:          []employee.Skill{{ID: "s-py", Name: "Python", Proficiency: 3}},
		},
		{
			ID: "e3", Name: "Cy", Position: "Developer", Location: "London, UK", Capacity: 100,
			CurrentProjectPhase: employee.PhaseNone,
			HardSkills:          []employee.Skill{{ID: "s-react", Name: "React", Proficiency: 2}},
		},
		{
			ID: "e4", Name: "Dee", Position: "Project Manager", Location: "Paris, France", Capacity: 50,
			CurrentProjectPhase: employee.PhaseDevelopment,
			HardSkills:          []employee.Skill{{ID: "s-sql", Name: "SQL", Proficiency: 3}},
		},
	}
}

func testTasks() []task.Task {
	return []task.Task{
		{ID: "t1", Description: "Build UI", RequiredHardSkills: []task.SkillRequirement{{SkillID: "s-react", SkillName: "React", MinimumProficiency: 3, Importance: 5}}},
		{ID: "t2", Description: "Model churn", RequiredHardSkills: []task.SkillRequirement{{SkillID: "s-py", SkillName: "Python", MinimumProficiency: 3, Importance: 4}}},
		{ID: "t3", Description: "Report", RequiredHardSkills: []task.SkillRequirement{{SkillID: "s-sql", SkillName: "SQL", MinimumProficiency: 2, Importance: 3}}},
	}
}

func testRepos() (*repository.MemoryEmployeeRepository, *repository.MemoryTaskRepository) {
	return repository.NewMemoryEmployeeRepository(testEmployees()), repository.NewMemoryTaskRepository(testTasks())
}

type memCache struct {
	mu          sync.Mutex
	items       map[string][]byte
	gets        int
	hits        int
	invalidated int
}

func newMemCache() *memCache {
	return &memCache{items: make(map[string][]byte)}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	b, ok := c.items[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = b
	return nil
}

func (c *memCache) InvalidateMatches(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	for k := range c.items {
		if strings.HasPrefix(k, "match:") {
			delete(c.items, k)
		}
	}
	return nil
}

func (c *memCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.items))
	for k := range c.items {
		out = append(out, k)
	}
	return out
}

// scriptedGenerator answers by prompt kind. A nil entry returns errGenerator.
type scriptedGenerator struct {
	mu        sync.Mutex
	extract   *string
	reasoning *string
	dynamics  *string
	units     *string
	calls     map[string]int
}

type generatorError string

func (e generatorError) Error() string { return string(e) }

const errGenerator = generatorError("generator down")

func str(s string) *string { return &s }

func (g *scriptedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var kind string
	var answer *string
	switch {
	case strings.HasPrefix(prompt, "Extract the key"):
		kind, answer = "extract", g.extract
	case strings.HasPrefix(prompt, "I need to match"):
		kind, answer = "reasoning", g.reasoning
	case strings.HasPrefix(prompt, "Analyze the team dynamics"):
		kind, answer = "dynamics", g.dynamics
	case strings.HasPrefix(prompt, "Analyze the business unit"):
		kind, answer = "units", g.units
	}

	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]int)
	}
	g.calls[kind]++
	g.mu.Unlock()

	if answer == nil {
		return "", errGenerator
	}
	return *answer, nil
}

func (g *scriptedGenerator) count(kind string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[kind]
}

// staticMatching returns every employee of the pool for every task.
type staticMatching struct {
	pool []employee.Employee
}

func (m staticMatching) Score(context.Context, string, string) (matching.Result, error) {
	return matching.Result{}, nil
}

func (m staticMatching) EmployeesForTask(context.Context, string, int) ([]matching.EmployeeMatch, error) {
	out := make([]matching.EmployeeMatch, 0, len(m.pool))
	for _, e := range m.pool {
		out = append(out, matching.EmployeeMatch{Employee: e, Score: 80})
	}
	return out, nil
}

func (m staticMatching) TasksForEmployee(context.Context, string, int) ([]matching.TaskMatch, error) {
	return nil, nil
}

type recordedNotification struct {
	employeeID, skillID, assessorID string
	proficiency                     int
}

type fakeNotifier struct {
	sent []recordedNotification
}

func (n *fakeNotifier) NotifySkillValidated(employeeID, skillID, assessorID string, proficiency int) {
	n.sent = append(n.sent, recordedNotification{employeeID, skillID, assessorID, proficiency})
}
