package seeder

import (
	"time"

	"talent-match/internal/domain/assessment"
	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/task"
)

// Catalog is the employee, task and assessment set served when no Postgres
// catalog is configured. cmd/seed writes the same set into Postgres.
type Catalog struct {
	Employees   []employee.Employee
	Tasks       []task.Task
	Assessments []assessment.Assessment
}

func SampleCatalog() Catalog {
	return Catalog{
		Employees:   sampleEmployees(),
		Tasks:       sampleTasks(),
		Assessments: sampleAssessments(),
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func hard(id, name string, level int, validated string, by ...string) employee.Skill {
	return employee.Skill{ID: id, Name: name, Category: employee.SkillCategoryHard, Proficiency: level, ValidatedBy: by, LastValidated: day(validated)}
}

func soft(id, name string, level int, validated string, by ...string) employee.Skill {
	return employee.Skill{ID: id, Name: name, Category: employee.SkillCategorySoft, Proficiency: level, ValidatedBy: by, LastValidated: day(validated)}
}

func req(id, name string, minimum, importance int) task.SkillRequirement {
	return task.SkillRequirement{SkillID: id, SkillName: name, MinimumProficiency: minimum, Importance: importance}
}

func sampleEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID:         "emp001",
			Name:       "Jane Smith",
			Email:      "jane.smith@company.com",
			Department: "Engineering",
			Position:   "Senior Software Engineer",
			Location:   "Seattle",
			Capacity:   85,
			HardSkills: []employee.Skill{
				hard("skill001", "JavaScript", 5, "2023-10-15", "emp002", "emp003"),
				hard("skill002", "TypeScript", 4, "2023-09-20", "emp001"),
				hard("skill003", "React", 5, "2023-11-05", "emp002", "emp005"),
				hard("skill004", "Node.js", 4, "2023-08-10", "emp001", "emp003"),
				hard("skill009", "AWS", 3, "2023-06-18", "emp005"),
			},
			SoftSkills: []employee.Skill{
				soft("skill011", "Communication", 4, "2023-09-10", "emp001", "emp002", "emp005"),
				soft("skill013", "Problem Solving", 5, "2023-08-22", "emp001", "emp004"),
				soft("skill014", "Teamwork", 4, "2023-07-15", "emp002", "emp005", "emp007"),
				soft("skill016", "Adaptability", 4, "2023-09-25", "emp001", "emp006"),
			},
			Licenses: []employee.License{{
				ID: "lic001", Name: "AWS Certified Developer - Associate", Issuer: "Amazon Web Services",
				DateObtained: day("2021-06-15"), ExpiryDate: dayPtr("2024-06-15"), ValidationStatus: true, Category: "Technical",
			}},
			PastExperience: []employee.Experience{
				{ID: "exp001", ProjectName: "Customer Portal Redesign", Role: "Frontend Lead", Department: "Engineering", TeamSize: 6,
					Description: "Led the frontend team redesigning the customer portal in React and TypeScript.", SkillsUtilized: []string{"skill001", "skill002", "skill003", "skill011", "skill014"}},
				{ID: "exp005", ProjectName: "DevOps Pipeline Modernization", Role: "DevOps Engineer", Department: "Engineering", TeamSize: 4,
					Description: "Modernized deployment pipelines using Docker and AWS.", SkillsUtilized: []string{"skill009", "skill013", "skill016"}},
			},
			CareerAspirations:   []string{"Become a Technical Lead within 1-2 years", "Develop expertise in cloud architecture", "Eventually move into an Engineering Manager role"},
			Interests:           []string{"Frontend performance optimization", "Serverless architecture"},
			DevelopmentGoals:    []string{"Improve cloud architecture skills", "Develop leadership capabilities"},
			PreferredWorkStyle:  []string{"hybrid"},
			CurrentProjectPhase: employee.PhaseDevelopment,
			BusinessUnitKnowledge: []employee.BusinessUnitKnowledge{
				{BusinessUnitID: "bu001", BusinessUnitName: "Customer Experience", KnowledgeLevel: 4, YearsOfExperience: 3},
			},
		},
		{
			ID:         "emp002",
			Name:       "Michael Johnson",
			Email:      "michael.johnson@company.com",
			Department: "Data Science",
			Position:   "Data Scientist",
			Location:   "San Francisco",
			Capacity:   70,
			HardSkills: []employee.Skill{
				hard("skill005", "Python", 5, "2023-10-01", "emp005", "emp007"),
				hard("skill006", "Machine Learning", 4, "2023-09-15", "emp007"),
				hard("skill007", "SQL", 4, "2023-07-12", "emp005"),
				hard("skill008", "Data Analysis", 4, "2023-08-05", "emp002"),
			},
			SoftSkills: []employee.Skill{
				soft("skill013", "Problem Solving", 4, "2023-08-22", "emp001", "emp004"),
				soft("skill017", "Critical Thinking", 4, "2023-08-18", "emp004", "emp007"),
			},
			Licenses: []employee.License{{
				ID: "lic009", Name: "TensorFlow Developer Certificate", Issuer: "Google",
				DateObtained: day("2022-02-10"), ValidationStatus: true, Category: "Technical",
			}},
			PastExperience: []employee.Experience{
				{ID: "exp002", ProjectName: "Customer Segmentation Analysis", Role: "Lead Data Scientist", Department: "Marketing", TeamSize: 3,
					Description: "Built clustering models to segment customers for targeted campaigns.", SkillsUtilized: []string{"skill005", "skill006", "skill008"}},
			},
			CareerAspirations:   []string{"Lead a machine learning platform team"},
			Interests:           []string{"Deep learning", "MLOps"},
			DevelopmentGoals:    []string{"Learn production ML deployment"},
			PreferredWorkStyle:  []string{"remote"},
			CurrentProjectPhase: employee.PhaseMature,
			BusinessUnitKnowledge: []employee.BusinessUnitKnowledge{
				{BusinessUnitID: "bu002", BusinessUnitName: "Marketing", KnowledgeLevel: 3, YearsOfExperience: 2},
				{BusinessUnitID: "bu001", BusinessUnitName: "Customer Experience", KnowledgeLevel: 2, YearsOfExperience: 1},
			},
		},
		{
			ID:         "emp003",
			Name:       "Sarah Williams",
			Email:      "sarah.williams@company.com",
			Department: "Product",
			Position:   "Product Manager",
			Location:   "Chicago",
			Capacity:   60,
			HardSkills: []employee.Skill{
				hard("skill008", "Data Analysis", 3, "2023-08-05", "emp002"),
				hard("skill021", "Product Strategy", 5, "2023-09-01", "emp007"),
			},
			SoftSkills: []employee.Skill{
				soft("skill011", "Communication", 5, "2023-09-12", "emp007", "emp008"),
				soft("skill018", "Project Management", 4, "2023-07-20", "emp002"),
				soft("skill019", "Leadership", 4, "2023-08-30", "emp007"),
				soft("skill020", "Emotional Intelligence", 4, "2023-09-05", "emp003", "emp006"),
			},
			Licenses: []employee.License{{
				ID: "lic003", Name: "Project Management Professional (PMP)", Issuer: "PMI",
				DateObtained: day("2020-04-22"), ExpiryDate: dayPtr("2026-04-22"), ValidationStatus: true, Category: "Management",
			}},
			PastExperience: []employee.Experience{
				{ID: "exp003", ProjectName: "Mobile App Launch", Role: "Product Manager", Department: "Product", TeamSize: 12,
					Description: "Owned the roadmap and launch of the customer mobile app.", SkillsUtilized: []string{"skill021", "skill011", "skill018"}},
			},
			CareerAspirations:   []string{"Become a Director of Product"},
			Interests:           []string{"User research", "Market analysis"},
			DevelopmentGoals:    []string{"Strengthen data-driven decision making"},
			PreferredWorkStyle:  []string{"office"},
			CurrentProjectPhase: employee.PhaseInception,
			BusinessUnitKnowledge: []employee.BusinessUnitKnowledge{
				{BusinessUnitID: "bu003", BusinessUnitName: "Sales", KnowledgeLevel: 4, YearsOfExperience: 5},
			},
		},
		{
			ID:         "emp004",
			Name:       "David Chen",
			Email:      "david.chen@company.com",
			Department: "Design",
			Position:   "Senior UX Designer",
			Location:   "San Francisco",
			Capacity:   70,
			HardSkills: []employee.Skill{
				hard("skill101", "User Interface Design", 5, "2023-09-12", "emp001", "emp006"),
				hard("skill103", "Adobe Creative Suite", 4, "2023-07-15", "emp008"),
				hard("skill105", "Design Systems", 4, "2023-08-10", "emp006"),
			},
			SoftSkills: []employee.Skill{
				soft("skill022", "Creativity", 5, "2023-09-18", "emp006"),
				soft("skill011", "Communication", 4, "2023-08-11", "emp003"),
			},
			PastExperience: []employee.Experience{
				{ID: "exp004", ProjectName: "Design System Rollout", Role: "Lead Designer", Department: "Design", TeamSize: 5,
					Description: "Built and rolled out the company-wide design system.", SkillsUtilized: []string{"skill101", "skill105"}},
			},
			CareerAspirations:  []string{"Grow into a design director role"},
			PreferredWorkStyle: []string{"hybrid"},
			BusinessUnitKnowledge: []employee.BusinessUnitKnowledge{
				{BusinessUnitID: "bu001", BusinessUnitName: "Customer Experience", KnowledgeLevel: 3, YearsOfExperience: 4},
			},
		},
		{
			ID:         "emp005",
			Name:       "Priya Patel",
			Email:      "priya.patel@company.com",
			Department: "Engineering",
			Position:   "Lead Data Engineer",
			Location:   "New York",
			Capacity:   65,
			HardSkills: []employee.Skill{
				hard("skill201", "Apache Spark", 5, "2023-08-15", "emp002", "emp008"),
				hard("skill007", "SQL", 5, "2023-08-01", "emp008"),
				hard("skill204", "Data Modeling", 4, "2023-08-05", "emp002"),
				hard("skill009", "AWS", 4, "2023-06-30", "emp008"),
			},
			SoftSkills: []employee.Skill{
				soft("skill207", "Problem Solving", 5, "2023-08-20", "emp002", "emp008"),
				soft("skill208", "Technical Leadership", 4, "2023-09-15", "emp008"),
			},
			Licenses: []employee.License{{
				ID: "lic011", Name: "Google Professional Data Engineer", Issuer: "Google Cloud",
				DateObtained: day("2022-05-10"), ExpiryDate: dayPtr("2025-05-10"), ValidationStatus: true, Category: "Technical",
			}},
			PastExperience: []employee.Experience{
				{ID: "exp006", ProjectName: "Data Lake Migration", Role: "Engineering Manager", Department: "Engineering", TeamSize: 8,
					Description: "Managed the migration of batch pipelines to a cloud data lake.", SkillsUtilized: []string{"skill201", "skill204"}},
			},
			CareerAspirations:   []string{"Become a project manager for data platform programs"},
			PreferredWorkStyle:  []string{"hybrid"},
			CurrentProjectPhase: employee.PhaseMature,
			BusinessUnitKnowledge: []employee.BusinessUnitKnowledge{
				{BusinessUnitID: "bu004", BusinessUnitName: "Finance", KnowledgeLevel: 3, YearsOfExperience: 3},
			},
		},
		{
			ID:         "emp006",
			Name:       "Marcus Washington",
			Email:      "marcus.washington@company.com",
			Department: "Design",
			Position:   "Design Director",
			Location:   "Remote",
			Capacity:   40,
			HardSkills: []employee.Skill{
				hard("skill101", "User Interface Design", 4, "2023-06-20", "emp008"),
				hard("skill301", "Design Leadership", 5, "2023-07-02", "emp008"),
			},
			SoftSkills: []employee.Skill{
				soft("skill019", "Leadership", 5, "2023-07-02", "emp008"),
				soft("skill022", "Creativity", 4, "2023-07-02", "emp004"),
			},
			CareerAspirations:   []string{"Head of Design"},
			PreferredWorkStyle:  []string{"remote"},
			CurrentProjectPhase: employee.PhaseMaintenance,
		},
		{
			ID:         "emp007",
			Name:       "Elena Rodriguez",
			Email:      "elena.rodriguez@company.com",
			Department: "Engineering",
			Position:   "Engineering Manager",
			Location:   "Seattle",
			Capacity:   50,
			HardSkills: []employee.Skill{
				hard("skill001", "JavaScript", 4, "2023-05-11", "emp008"),
				hard("skill010", "Docker", 4, "2023-05-11", "emp008"),
				hard("skill009", "AWS", 4, "2023-05-11", "emp008"),
			},
			SoftSkills: []employee.Skill{
				soft("skill019", "Leadership", 5, "2023-05-11", "emp008"),
				soft("skill011", "Communication", 5, "2023-05-11", "emp008"),
				soft("skill014", "Teamwork", 4, "2023-05-11", "emp001"),
			},
			PastExperience: []employee.Experience{
				{ID: "exp007", ProjectName: "Platform Reliability Program", Role: "Project Manager", Department: "Engineering", TeamSize: 10,
					Description: "Coordinated reliability work across four platform teams.", SkillsUtilized: []string{"skill010", "skill019"}},
			},
			PreferredWorkStyle:  []string{"hybrid"},
			CurrentProjectPhase: employee.PhaseDevelopment,
			BusinessUnitKnowledge: []employee.BusinessUnitKnowledge{
				{BusinessUnitID: "bu001", BusinessUnitName: "Customer Experience", KnowledgeLevel: 3, YearsOfExperience: 2},
			},
		},
		{
			ID:         "emp008",
			Name:       "Robert Kim",
			Email:      "robert.kim@company.com",
			Department: "Operations",
			Position:   "Director of Operations",
			Location:   "Chicago",
			Capacity:   30,
			HardSkills: []employee.Skill{
				hard("skill007", "SQL", 3, "2023-04-02", "emp007"),
			},
			SoftSkills: []employee.Skill{
				soft("skill018", "Project Management", 5, "2023-04-02", "emp007"),
				soft("skill019", "Leadership", 5, "2023-04-02", "emp007"),
				soft("skill020", "Emotional Intelligence", 4, "2023-04-02", "emp003"),
			},
			Licenses: []employee.License{{
				ID: "lic003", Name: "Project Management Professional (PMP)", Issuer: "PMI",
				DateObtained: day("2018-09-14"), ValidationStatus: true, Category: "Management",
			}},
			PastExperience: []employee.Experience{
				{ID: "exp008", ProjectName: "Warehouse ERP Rollout", Role: "Business Analyst", Department: "Operations", TeamSize: 15,
					Description: "Gathered requirements and led cutover for the warehouse ERP.", SkillsUtilized: []string{"skill018", "skill007"}},
			},
			PreferredWorkStyle:  []string{"office"},
			CurrentProjectPhase: employee.PhaseNone,
			BusinessUnitKnowledge: []employee.BusinessUnitKnowledge{
				{BusinessUnitID: "bu005", BusinessUnitName: "Operations", KnowledgeLevel: 5, YearsOfExperience: 9},
				{BusinessUnitID: "bu004", BusinessUnitName: "Finance", KnowledgeLevel: 3, YearsOfExperience: 4},
			},
		},
	}
}

func sampleTasks() []task.Task {
	return []task.Task{
		{
			ID:          "task001",
			Description: "Develop a new customer dashboard with real-time analytics",
			Purpose:     "Provide customers with self-service analytics capabilities to reduce support requests and improve customer satisfaction",
			Outcomes:    []string{"Interactive dashboard with key performance metrics", "Real-time data visualization", "Customizable reports and alerts", "Mobile-responsive design"},
			RequiredHardSkills: []task.SkillRequirement{
				req("skill001", "JavaScript", 4, 5),
				req("skill003", "React", 4, 5),
				req("skill007", "SQL", 3, 4),
				req("skill008", "Data Analysis", 3, 4),
			},
			RequiredSoftSkills: []task.SkillRequirement{
				req("skill013", "Problem Solving", 4, 4),
				req("skill014", "Teamwork", 3, 3),
			},
			Complexity: task.Complexity{Overall: 4, Factors: task.ComplexityFactors{
				TechnicalDifficulty: 4, StakeholderManagement: 3, DecisionMaking: 4, ProblemSolving: 4, CrossFunctionalCoordination: 3,
			}},
			Variability: task.Variability{Overall: 3, Factors: task.VariabilityFactors{
				RequirementsStability: 3, ProcessDefinition: 4, ExternalDependencies: 3, TimelinePredictability: 2,
			}},
			EstimatedDuration:    45,
			EstimatedEffort:      90,
			CapacityRequired:     80,
			Dependencies:         []string{"task005"},
			LocationRequirements: []string{"Remote", "Seattle"},
			BusinessContext:      "Part of the customer experience enhancement initiative for Q2",
			ProjectContext:       &task.ProjectContext{ProjectPhase: "development", ProjectType: task.ProjectProduct, ProjectGoals: []string{"Reduce support tickets"}},
			BusinessUnitRelevance: []task.BusinessUnitRelevance{
				{BusinessUnitID: "bu001", BusinessUnitName: "Customer Experience", RelevanceLevel: 4},
			},
		},
		{
			ID:          "task002",
			Description: "Implement machine learning model for customer churn prediction",
			Purpose:     "Identify at-risk customers before they churn to enable proactive retention strategies",
			Outcomes:    []string{"Predictive model with >85% accuracy", "Integration with CRM system", "Automated alerts for high-risk customers"},
			RequiredHardSkills: []task.SkillRequirement{
				req("skill005", "Python", 4, 5),
				req("skill006", "Machine Learning", 4, 5),
				req("skill007", "SQL", 3, 4),
				req("skill008", "Data Analysis", 4, 4),
			},
			RequiredSoftSkills: []task.SkillRequirement{
				req("skill013", "Problem Solving", 4, 4),
				req("skill017", "Critical Thinking", 4, 4),
			},
			Complexity: task.Complexity{Overall: 5, Factors: task.ComplexityFactors{
				TechnicalDifficulty: 5, StakeholderManagement: 3, DecisionMaking: 4, ProblemSolving: 5, CrossFunctionalCoordination: 3,
			}},
			Variability: task.Variability{Overall: 3, Factors: task.VariabilityFactors{
				RequirementsStability: 3, ProcessDefinition: 3, ExternalDependencies: 3, TimelinePredictability: 3,
			}},
			EstimatedDuration:   60,
			EstimatedEffort:     120,
			CapacityRequired:    70,
			LicenseRequirements: []string{"lic009"},
			BusinessContext:     "Retention program for the subscription business",
			ProjectContext:      &task.ProjectContext{ProjectPhase: "inception", ProjectType: task.ProjectResearch},
			BusinessUnitRelevance: []task.BusinessUnitRelevance{
				{BusinessUnitID: "bu002", BusinessUnitName: "Marketing", RelevanceLevel: 3},
			},
		},
		{
			ID:          "task003",
			Description: "Lead cross-functional team for ERP system migration",
			Purpose:     "Move finance and operations onto the new ERP platform with minimal disruption",
			Outcomes:    []string{"Migrated ledgers and inventory data", "Trained end users", "Decommissioned legacy system"},
			RequiredHardSkills: []task.SkillRequirement{
				req("skill007", "SQL", 3, 3),
			},
			RequiredSoftSkills: []task.SkillRequirement{
				req("skill018", "Project Management", 5, 5),
				req("skill011", "Communication", 4, 5),
				req("skill019", "Leadership", 4, 5),
				req("skill014", "Teamwork", 4, 4),
				req("skill020", "Emotional Intelligence", 3, 3),
			},
			Complexity: task.Complexity{Overall: 4, Factors: task.ComplexityFactors{
				TechnicalDifficulty: 3, StakeholderManagement: 5, DecisionMaking: 4, ProblemSolving: 4, CrossFunctionalCoordination: 5,
			}},
			Variability: task.Variability{Overall: 4, Factors: task.VariabilityFactors{
				RequirementsStability: 2, ProcessDefinition: 3, ExternalDependencies: 4, TimelinePredictability: 2,
			}},
			EstimatedDuration:    120,
			EstimatedEffort:      480,
			CapacityRequired:     90,
			LicenseRequirements:  []string{"lic003"},
			LocationRequirements: []string{"Chicago", "New York"},
			BusinessContext:      "Company-wide ERP consolidation",
			ProjectContext:       &task.ProjectContext{ProjectPhase: "mature", ProjectType: task.ProjectInternal},
			BusinessUnitRelevance: []task.BusinessUnitRelevance{
				{BusinessUnitID: "bu004", BusinessUnitName: "Finance", RelevanceLevel: 5},
				{BusinessUnitID: "bu005", BusinessUnitName: "Operations", RelevanceLevel: 5},
			},
		},
		{
			ID:          "task005",
			Description: "Enhance data API layer for improved performance and scalability",
			Purpose:     "Support real-time analytics consumers with lower latency",
			Outcomes:    []string{"p95 latency under 200ms", "Horizontal scaling on AWS"},
			RequiredHardSkills: []task.SkillRequirement{
				req("skill004", "Node.js", 4, 5),
				req("skill007", "SQL", 4, 4),
				req("skill009", "AWS", 3, 4),
			},
			RequiredSoftSkills: []task.SkillRequirement{
				req("skill013", "Problem Solving", 4, 4),
				req("skill017", "Critical Thinking", 3, 3),
			},
			Complexity: task.Complexity{Overall: 4, Factors: task.ComplexityFactors{
				TechnicalDifficulty: 4, StakeholderManagement: 2, DecisionMaking: 3, ProblemSolving: 4, CrossFunctionalCoordination: 2,
			}},
			Variability: task.Variability{Overall: 2, Factors: task.VariabilityFactors{
				RequirementsStability: 4, ProcessDefinition: 4, ExternalDependencies: 2, TimelinePredictability: 3,
			}},
			EstimatedDuration:    30,
			EstimatedEffort:      60,
			CapacityRequired:     80,
			LocationRequirements: []string{"Remote"},
			ProjectContext:       &task.ProjectContext{ProjectPhase: "development", ProjectType: task.ProjectService},
		},
		{
			ID:          "task008",
			Description: "Design and implement customer onboarding program",
			Purpose:     "Shorten time-to-value for new enterprise customers",
			Outcomes:    []string{"Onboarding playbook", "Welcome journey prototypes"},
			RequiredHardSkills: []task.SkillRequirement{
				req("skill101", "User Interface Design", 3, 3),
			},
			RequiredSoftSkills: []task.SkillRequirement{
				req("skill011", "Communication", 4, 5),
				req("skill018", "Project Management", 3, 4),
				req("skill022", "Creativity", 4, 4),
				req("skill020", "Emotional Intelligence", 3, 3),
			},
			Complexity: task.Complexity{Overall: 3, Factors: task.ComplexityFactors{
				TechnicalDifficulty: 2, StakeholderManagement: 4, DecisionMaking: 3, ProblemSolving: 3, CrossFunctionalCoordination: 4,
			}},
			Variability: task.Variability{Overall: 3, Factors: task.VariabilityFactors{
				RequirementsStability: 3, ProcessDefinition: 2, ExternalDependencies: 3, TimelinePredictability: 3,
			}},
			EstimatedDuration: 40,
			EstimatedEffort:   70,
			CapacityRequired:  50,
			ProjectContext:    &task.ProjectContext{ProjectPhase: "inception", ProjectType: task.ProjectPrototype},
			BusinessUnitRelevance: []task.BusinessUnitRelevance{
				{BusinessUnitID: "bu001", BusinessUnitName: "Customer Experience", RelevanceLevel: 4},
				{BusinessUnitID: "bu003", BusinessUnitName: "Sales", RelevanceLevel: 3},
			},
		},
	}
}

func sampleAssessments() []assessment.Assessment {
	return []assessment.Assessment{
		{
			ID: "assess001", Date: day("2023-03-15"), Type: assessment.TypeSelf, AssessorID: "emp001", EmployeeID: "emp001", Quarter: 1, Year: 2023,
			SkillsAssessed: []assessment.SkillRating{
				{SkillID: "skill001", PreviousRating: 4, NewRating: 5, Comments: "Completed advanced JavaScript course"},
				{SkillID: "skill011", PreviousRating: 3, NewRating: 4, Comments: "Improved communication through team leadership"},
			},
			OverallComments: "Grew in technical skills and communication this quarter",
		},
		{
			ID: "assess002", Date: day("2023-03-20"), Type: assessment.TypeManager, AssessorID: "emp005", EmployeeID: "emp001", Quarter: 1, Year: 2023,
			SkillsAssessed: []assessment.SkillRating{
				{SkillID: "skill001", PreviousRating: 4, NewRating: 5, Comments: "Expert-level JavaScript in the portal redesign"},
				{SkillID: "skill011", PreviousRating: 3, NewRating: 3, Comments: "Could be more proactive in status updates"},
			},
			OverallComments: "Strong technical performer who continues to grow",
		},
	}
}
