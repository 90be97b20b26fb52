// Package seed содержит демонстрационный каталог проектов и справочники навыков и категорий.
package seed

import (
	"time"

	"github.com/ignatzorin/projecthub-backend/internal/models"
)

// Skills — справочник навыков, доступных в фильтре.
var Skills = []string{
	"React", "JavaScript", "TypeScript", "Node.js", "Express.js", "MongoDB",
	"PostgreSQL", "Python", "Django", "Flask", "Java", "Spring Boot",
	"HTML/CSS", "UI/UX Design", "Product Management", "Digital Marketing",
	"Data Science", "Machine Learning", "AI", "DevOps", "Cloud Computing",
	"AWS", "Azure", "GCP", "Mobile Development", "iOS", "Android",
	"React Native", "Flutter", "Blockchain", "Security", "Testing",
}

// Categories — справочник категорий проектов.
var Categories = []string{
	"Web Development", "Mobile Development", "Data Science", "Machine Learning",
	"UI/UX Design", "DevOps", "Cloud Computing", "Blockchain", "Cybersecurity",
	"Product Management", "Digital Marketing", "Content Creation", "E-commerce",
	"Education", "Healthcare", "Finance", "Real Estate", "Transportation",
	"Social Media", "Gaming", "AR/VR", "IoT",
}

const (
	techInnovationsID   = "3"
	globalSolutionsID   = "5"
	techInnovationsName = "Tech Innovations"
	globalSolutionsName = "Global Solutions Ltd"
)

// Projects возвращает пять демонстрационных проектов (id "1"–"5").
// Каждый вызов возвращает свежие копии, их можно изменять.
func Projects() []models.Project {
	return []models.Project{
		{
			ID:          "1",
			Title:       "E-commerce Platform Development",
			Description: "Looking for talented developers to build a modern e-commerce platform with React frontend and Node.js backend. The platform should include payment integration, inventory management, and user authentication.",
			Company:     techInnovations(),
			Skills:      []string{"React", "Node.js", "MongoDB", "Express.js", "Payment Integration"},
			Categories:  []string{"Web Development", "E-commerce"},
			Duration:    "3 months",
			Budget:      strPtr("$5,000 - $10,000"),
			Status:      models.ProjectStatusOpen,
			TeamSize:    3,
			Applicants:  []string{"1", "2"},
			CreatedAt:   date(2023, time.May, 15),
			UpdatedAt:   date(2023, time.June, 1),
		},
		{
			ID:          "2",
			Title:       "AI-Powered Customer Service Chatbot",
			Description: "We are looking to develop an intelligent chatbot that can handle customer inquiries, support tickets, and basic troubleshooting. The solution should integrate with our existing customer management system.",
			Company:     globalSolutions(),
			Skills:      []string{"Machine Learning", "NLP", "Python", "API Integration"},
			Categories:  []string{"AI", "Machine Learning", "Customer Service"},
			Duration:    "4 months",
			Budget:      strPtr("$15,000 - $20,000"),
			Status:      models.ProjectStatusOpen,
			TeamSize:    2,
			Applicants:  []string{"4"},
			CreatedAt:   date(2023, time.April, 20),
			UpdatedAt:   date(2023, time.June, 5),
		},
		{
			ID:          "3",
			Title:       "Mobile App UI/UX Redesign",
			Description: "Our financial services app needs a modern UI/UX redesign to improve user engagement and satisfaction. Looking for designers who can create intuitive interfaces that simplify complex financial transactions.",
			Company:     techInnovations(),
			Skills:      []string{"UI/UX Design", "Figma", "Mobile Design", "User Research"},
			Categories:  []string{"UI/UX Design", "Mobile Development", "Finance"},
			Duration:    "2 months",
			Budget:      strPtr("$8,000 - $12,000"),
			Status:      models.ProjectStatusOpen,
			TeamSize:    2,
			Applicants:  []string{"6"},
			CreatedAt:   date(2023, time.May, 25),
			UpdatedAt:   date(2023, time.June, 10),
		},
		{
			ID:          "4",
			Title:       "Data Analytics Dashboard",
			Description: "Develop a comprehensive analytics dashboard for our marketing department to track campaign performance, customer engagement, and ROI. Should include data visualization and export capabilities.",
			Company:     globalSolutions(),
			Skills:      []string{"Data Visualization", "JavaScript", "React", "API Integration", "SQL"},
			Categories:  []string{"Data Science", "Web Development", "Digital Marketing"},
			Duration:    "3 months",
			Budget:      strPtr("$10,000 - $15,000"),
			Status:      models.ProjectStatusOpen,
			TeamSize:    2,
			Applicants:  []string{"2"},
			CreatedAt:   date(2023, time.May, 5),
			UpdatedAt:   date(2023, time.June, 15),
		},
		{
			ID:          "5",
			Title:       "Blockchain-based Supply Chain Solution",
			Description: "Design and implement a blockchain solution to track and verify the authenticity of products throughout our supply chain. The solution should provide transparency to customers and partners.",
			Company:     techInnovations(),
			Skills:      []string{"Blockchain", "Smart Contracts", "Web3", "Solidity"},
			Categories:  []string{"Blockchain", "Supply Chain", "Web Development"},
			Duration:    "6 months",
			Budget:      strPtr("$20,000 - $30,000"),
			Status:      models.ProjectStatusOpen,
			TeamSize:    4,
			Applicants:  []string{},
			CreatedAt:   date(2023, time.June, 1),
			UpdatedAt:   date(2023, time.June, 1),
		},
	}
}

func techInnovations() models.ProjectCompany {
	return models.ProjectCompany{
		ID:   techInnovationsID,
		Name: techInnovationsName,
		Logo: strPtr("https://i.pravatar.cc/150?img=3"),
	}
}

func globalSolutions() models.ProjectCompany {
	return models.ProjectCompany{
		ID:   globalSolutionsID,
		Name: globalSolutionsName,
		Logo: strPtr("https://i.pravatar.cc/150?img=5"),
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}
