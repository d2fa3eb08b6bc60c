package catalog

import "validation-guide/internal/models"

var methods = []models.MethodRecord{
	{
		ID:          "poc",
		Title:       "Proof of Concept (POC)",
		Description: "A small exercise to test the design idea or assumption.",
		Category:    models.CategoryTechnical,
		Details: []string{
			"Focuses on technical feasibility.",
			"Not a complete product, just a specific feature test.",
			"Usually thrown away after validation.",
		},
	},
	{
		ID:          "spike",
		Title:       "Technical Spike",
		Description: "A time-boxed investigation to learn about a new technology or domain.",
		Category:    models.CategoryTechnical,
		Details: []string{
			"Used in Agile development.",
			"Reduces technical risk before estimation.",
			"Output is knowledge, not necessarily code.",
		},
	},
	{
		ID:          "prototype",
		Title:       "Prototype",
		Description: "An early sample, model, or release of a product built to test a concept.",
		Category:    models.CategoryTechnical,
		Details: []string{
			"Can be low-fidelity (paper) or high-fidelity (interactive).",
			"Used for user feedback and stakeholder buy-in.",
			"Simulates the look and feel.",
		},
	},
	{
		ID:          "landing-page",
		Title:       "Landing Page Test",
		Description: "A single page measuring interest through sign-ups or clicks.",
		Category:    models.CategoryMarket,
		Details: []string{
			"Validates value proposition.",
			"Measures willingness to buy/sign up.",
			"Low cost and high speed.",
		},
	},
	{
		ID:          "concierge-mvp",
		Title:       "Concierge MVP",
		Description: "Manually providing the service to customers without building the product.",
		Category:    models.CategoryMarket,
		Details: []string{
			"High touch, low tech.",
			"Validates the problem-solution fit.",
			"Direct interaction with early adopters.",
		},
	},
	{
		ID:          "wizard-of-oz",
		Title:       "Wizard of Oz",
		Description: "Looks like a working product on the front-end, but manual on the back-end.",
		Category:    models.CategoryMarket,
		Details: []string{
			"Users believe the system is automated.",
			"Validates user interaction and demand.",
			"Delay building complex automation.",
		},
	},
	{
		ID:          "feasibility",
		Title:       "Feasibility Study",
		Description: "Assessment of the practicality of a proposed project or system.",
		Category:    models.CategoryBusiness,
		Details: []string{
			"Analyzes legal, economic, and operational factors.",
			"Determines if the project is worth the investment.",
			"Identifies potential roadblocks.",
		},
	},
	{
		ID:          "pilot",
		Title:       "Pilot Program",
		Description: "A small-scale, short-term experiment that helps an organization learn.",
		Category:    models.CategoryBusiness,
		Details: []string{
			"Live deployment to a limited user base.",
			"Reduces risk of full-scale failure.",
			"Gathers real-world data.",
		},
	},
	{
		ID:          "wireframing",
		Title:       "Wireframing",
		Description: "A visual guide that represents the skeletal framework of a website.",
		Category:    models.CategoryUX,
		Details: []string{
			"Focuses on structure and layout.",
			"Low fidelity, no design polish.",
			"Quick to iterate.",
		},
	},
	{
		ID:          "usability",
		Title:       "Usability Testing",
		Description: "Evaluating a product by testing it on users.",
		Category:    models.CategoryUX,
		Details: []string{
			"Observing users attempting to complete tasks.",
			"Identifies friction points.",
			"Qualitative and quantitative data.",
		},
	},
	{
		ID:          "smoke",
		Title:       "Smoke Testing",
		Description: "Preliminary testing to reveal simple failures severe enough to reject a release.",
		Category:    models.CategoryTesting,
		Details: []string{
			"Verifies critical functionalities.",
			"Performed before detailed testing.",
			`"Did the device catch fire?"`,
		},
	},
	{
		ID:          "load",
		Title:       "Load Testing",
		Description: "Testing the system under a specific expected load.",
		Category:    models.CategoryTesting,
		Details: []string{
			"Ensures stability under peak traffic.",
			"Identifies bottlenecks.",
			"Performance optimization.",
		},
	},
}

var phases = []models.TimelinePhaseRecord{
	{
		ID:          "p1",
		Title:       "Phase 1: Discovery & Research",
		Duration:    "2-4 Weeks",
		Description: "Foundational phase for understanding the problem space.",
		Items: []models.TimelineItem{
			{
				Title:       "Idea Validation & Market Research",
				Points:      []string{"Define core problem.", "Identify target audience.", "Competitive analysis.", "Research market trends."},
				Deliverable: "Market Research Report",
			},
			{
				Title:       "Requirements Gathering",
				Points:      []string{"Define functional requirements.", "Define non-functional requirements.", "Create user stories.", "Outline MVP features."},
				Deliverable: "PRD (Product Requirements Document)",
			},
			{
				Title:       "Technical Feasibility",
				Points:      []string{"Assess complex features.", "Choose tech stack.", "Identify integrations."},
				Deliverable: "Tech Spec",
			},
		},
	},
	{
		ID:          "p2",
		Title:       "Phase 2: Design",
		Duration:    "4-8 Weeks",
		Description: "Translating requirements into visual and interactive designs.",
		Items: []models.TimelineItem{
			{
				Title:       "UX Design",
				Points:      []string{"Information Architecture.", "User Flows.", "Wireframing."},
				Deliverable: "Wireframes",
			},
			{
				Title:       "UI Design",
				Points:      []string{"Visual Design Systems.", "High-fidelity mockups.", "Interactive prototyping."},
				Deliverable: "Figma Prototype",
			},
		},
	},
	{
		ID:          "p3",
		Title:       "Phase 3: Development",
		Duration:    "8-16 Weeks",
		Description: "Building the actual product through iterative sprints.",
		Items: []models.TimelineItem{
			{
				Title:       "Frontend & Backend Setup",
				Points:      []string{"Environment setup.", "Database schema design.", "API development."},
				Deliverable: "Dev Environment",
			},
			{
				Title:       "Core Feature Implementation",
				Points:      []string{"Authentication.", "Core business logic.", "UI Implementation."},
				Deliverable: "Alpha Build",
			},
		},
	},
	{
		ID:          "p4",
		Title:       "Phase 4: Testing & QA",
		Duration:    "4-8 Weeks",
		Description: "Ensuring product quality and stability.",
		Items: []models.TimelineItem{
			{
				Title:       "Internal QA",
				Points:      []string{"Unit Testing.", "Integration Testing.", "Bug fixing."},
				Deliverable: "Test Reports",
			},
			{
				Title:       "Beta Testing",
				Points:      []string{"User Acceptance Testing (UAT).", "Performance tuning.", "Security audit."},
				Deliverable: "Beta Release",
			},
		},
	},
	{
		ID:          "p5",
		Title:       "Phase 5: Deployment & Launch",
		Duration:    "1-2 Weeks",
		Description: "Releasing the product to the market.",
		Items: []models.TimelineItem{
			{
				Title:       "Store Submission",
				Points:      []string{"App Store optimization.", "Submission review process.", "Marketing asset preparation."},
				Deliverable: "Live App",
			},
		},
	},
}

var decisionGuides = []models.DecisionGuide{
	{
		Title:   "High Uncertainty",
		Advice:  "Focus on problem validation.",
		Methods: []string{"Interviews", "Paper Prototypes"},
	},
	{
		Title:   "Technical Risk",
		Advice:  "Focus on feasibility.",
		Methods: []string{"Spikes", "POCs"},
	},
	{
		Title:   "Market Risk",
		Advice:  "Focus on demand.",
		Methods: []string{"Landing Pages", "Concierge MVPs"},
	},
}

// recognizedMethods is the closed set of names the image classifier may answer with.
var recognizedMethods = []string{
	"Proof of Concept (POC)",
	"Technical Spike",
	"Prototype",
	"Rapid Prototyping",
	"Minimum Viable Product (MVP)",
	"Concierge MVP",
	"Wizard of Oz Testing",
	"Concept Testing",
	"Landing Page Test",
	"Feasibility Study",
	"Pilot Program",
	"A/B Testing",
	"Wireframing",
	"Mockups",
	"Paper Prototyping",
	"Interactive Prototypes",
	"Smoke Testing",
	"Usability Testing",
	"Load Testing",
	"Sandbox Testing",
}

var sectionTitles = map[models.Category]string{
	models.CategoryTechnical: "Technical Validation Methods",
	models.CategoryMarket:    "Market Validation Methods",
	models.CategoryBusiness:  "Business & Implementation",
	models.CategoryUX:        "UX Validation Methods",
	models.CategoryTesting:   "Technical Testing Methods",
}
