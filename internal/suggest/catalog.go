package suggest

import "github.com/jonathan/project-scout/internal/types"

// skillCategories groups recognizable skills and interests into broad
// domains. Matching a category unlocks its template pool.
var skillCategories = map[string][]string{
	"AI_ML":              {"Machine Learning", "AI", "Artificial Intelligence", "Deep Learning", "Neural Networks", "TensorFlow", "PyTorch", "Keras", "Computer Vision", "NLP", "Natural Language Processing", "Scikit-learn", "OpenCV"},
	"DATA_SCIENCE":       {"Data Science", "Python", "R", "Statistics", "Analytics", "Big Data", "Data Mining", "Pandas", "NumPy", "Matplotlib", "Scikit-learn", "Jupyter", "Tableau", "Power BI"},
	"WEB_DEVELOPMENT":    {"JavaScript", "TypeScript", "React", "Angular", "Vue", "Node.js", "Next.js", "HTML", "CSS", "Frontend", "Backend", "Full Stack", "Express", "Django", "Flask"},
	"MOBILE_DEVELOPMENT": {"iOS", "Android", "React Native", "Flutter", "Swift", "Kotlin", "Mobile Development", "App Development", "Xamarin"},
	"DATABASE":           {"SQL", "MySQL", "PostgreSQL", "MongoDB", "Database", "NoSQL", "Redis", "Elasticsearch", "Oracle", "SQLite"},
	"CLOUD_DEVOPS":       {"AWS", "Azure", "GCP", "Google Cloud", "Docker", "Kubernetes", "DevOps", "CI/CD", "Jenkins", "Terraform", "Ansible"},
	"BLOCKCHAIN":         {"Blockchain", "Web3", "Smart Contracts", "Solidity", "Ethereum", "DeFi", "Cryptocurrency", "Bitcoin", "NFT"},
	"CYBERSECURITY":      {"Security", "Cybersecurity", "Penetration Testing", "Cryptography", "Network Security", "Information Security", "Ethical Hacking"},
	"RESEARCH":           {"Research", "Academic", "Publication", "Analysis", "Study", "Investigation", "Methodology", "Literature Review"},
	"BUSINESS":           {"Business", "Management", "Strategy", "Analytics", "Consulting", "Finance", "Marketing", "Operations"},
	"DESIGN":             {"UI/UX", "Design", "Figma", "Adobe", "Photoshop", "Illustrator", "User Experience", "User Interface", "Graphic Design"},
	"GAME_DEVELOPMENT":   {"Unity", "Unreal Engine", "Game Development", "C#", "C++", "Gaming", "Game Design"},
	"IOT_HARDWARE":       {"IoT", "Internet of Things", "Arduino", "Raspberry Pi", "Hardware", "Embedded Systems", "Sensors"},
	"ROBOTICS":           {"Robotics", "Automation", "ROS", "Robot Operating System", "Computer Vision", "Sensor Fusion"},
	"BIOINFORMATICS":     {"Bioinformatics", "Computational Biology", "Genomics", "Proteomics", "BLAST", "Bioconductor"},
	"MATHEMATICS":        {"Mathematics", "Statistics", "Linear Algebra", "Calculus", "Probability", "Mathematical Modeling"},
	"PHYSICS":            {"Physics", "Quantum", "Computational Physics", "Simulation", "Modeling"},
	"CHEMISTRY":          {"Chemistry", "Computational Chemistry", "Molecular Modeling", "ChemML"},
	"SOCIAL_SCIENCE":     {"Psychology", "Sociology", "Anthropology", "Political Science", "Social Research", "Survey Research"},
	"EDUCATION":          {"Education", "E-learning", "Educational Technology", "Pedagogy", "Online Learning", "MOOC"},
}

// ProjectTemplate is one catalog entry. Relevance is computed per user at
// generation time, so templates carry no score.
type ProjectTemplate struct {
	Title       string
	Description string
	Difficulty  string
	Duration    string
	Categories  []string
}

// projectTemplates holds the per-category template pools. Not every
// category has a pool; categories without one still count toward matching
// but contribute no catalog suggestions.
var projectTemplates = map[string][]ProjectTemplate{
	"AI_ML": {
		{
			Title:       "Advanced Neural Network Architecture Research",
			Description: "Develop novel neural network architectures for improved performance in computer vision tasks. This project involves designing and implementing new attention mechanisms and exploring transformer variants.",
			Difficulty:  types.DifficultyAdvanced,
			Duration:    "6-12 months",
			Categories:  []string{"Machine Learning", "Research", "Computer Vision"},
		},
		{
			Title:       "AI-Powered Research Assistant",
			Description: "Create an intelligent research assistant that can analyze academic papers, summarize findings, and suggest research directions using advanced NLP and knowledge graphs.",
			Difficulty:  types.DifficultyAdvanced,
			Duration:    "10-18 months",
			Categories:  []string{"NLP", "Knowledge Management", "Academic Tools"},
		},
		{
			Title:       "Federated Learning for Privacy-Preserving AI",
			Description: "Research and implement federated learning systems that enable collaborative machine learning without centralizing sensitive data, focusing on healthcare and financial applications.",
			Difficulty:  types.DifficultyAdvanced,
			Duration:    "8-15 months",
			Categories:  []string{"Machine Learning", "Privacy", "Distributed Systems"},
		},
		{
			Title:       "Explainable AI for Scientific Discovery",
			Description: "Develop interpretable machine learning models that can explain their decision-making process in scientific research contexts, enhancing trust and understanding.",
			Difficulty:  types.DifficultyAdvanced,
			Duration:    "12-20 months",
			Categories:  []string{"Explainable AI", "Scientific Computing", "Model Interpretation"},
		},
	},
	"DATA_SCIENCE": {
		{
			Title:       "Academic Publication Impact Analysis",
			Description: "Analyze large datasets of academic publications to identify trends, predict citation patterns, and discover emerging research areas using advanced statistical methods.",
			Difficulty:  types.DifficultyIntermediate,
			Duration:    "3-6 months",
			Categories:  []string{"Data Science", "Academic Research", "Analytics"},
		},
		{
			Title:       "Real-time Research Trend Detection",
			Description: "Develop a system that monitors academic databases and social media to detect emerging research trends and hot topics in real-time.",
			Difficulty:  types.DifficultyAdvanced,
			Duration:    "6-12 months",
			Categories:  []string{"Trend Analysis", "Real-time Systems", "Text Mining"},
		},
		{
			Title:       "Research Collaboration Network Analysis",
			Description: "Study patterns in academic collaborations using network analysis, identifying key influencers and predicting future collaboration opportunities.",
			Difficulty:  types.DifficultyIntermediate,
			Duration:    "4-8 months",
			Categories:  []string{"Network Analysis", "Social Science", "Graph Theory"},
		},
		{
			Title:       "Scientific Data Visualization Platform",
			Description: "Create an advanced platform for visualizing complex scientific datasets with interactive dashboards and custom visualization tools.",
			Difficulty:  types.DifficultyIntermediate,
			Duration:    "5-10 months",
			Categories:  []string{"Data Visualization", "Scientific Computing", "Interactive Design"},
		},
	},
	"WEB_DEVELOPMENT": {
		{
			Title:       "Real-time Collaborative Research Platform",
			Description: "Build a modern web platform for researchers to collaborate in real-time, share findings, and manage research projects with advanced features.",
			Difficulty:  types.DifficultyIntermediate,
			Duration:    "4-8 months",
			Categories:  []string{"Web Development", "Collaboration Tools", "Real-time Systems"},
		},
		{
			Title:       "Open Science Knowledge Repository",
			Description: "Create a next-generation repository for open science that supports multiple data formats, version control, and collaborative annotation.",
			Difficulty:  types.DifficultyAdvanced,
			Duration:    "8-15 months",
			Categories:  []string{"Open Science", "Knowledge Management", "Version Control"},
		},
		{
			Title:       "Academic Conference Management System",
			Description: "Develop a comprehensive system for managing academic conferences, including paper submissions, peer review, and virtual presentation capabilities.",
			Difficulty:  types.DifficultyIntermediate,
			Duration:    "6-12 months",
			Categories:  []string{"Event Management", "Academic Tools", "Web Applications"},
		},
		{
			Title:       "Interactive Academic Portfolio Builder",
			Description: "Build a platform where researchers can create interactive portfolios showcasing their work with embedded visualizations and live demos.",
			Difficulty:  types.DifficultyIntermediate,
			Duration:    "4-9 months",
			Categories:  []string{"Portfolio Management", "Interactive Design", "Academic Branding"},
		},
	},
	"RESEARCH": {
		{
			Title:       "Meta-Analysis Automation Tool",
			Description: "Develop automated tools for conducting systematic reviews and meta-analyses, reducing time and improving consistency in research synthesis.",
			Difficulty:  types.DifficultyAdvanced,
			Duration:    "6-12 months",
			Categories:  []string{"Research Methodology", "Automation", "Evidence Synthesis"},
		},
		{
			Title:       "Cross-Disciplinary Research Mapper",
			Description: "Create a platform that identifies potential collaborations across different research disciplines by analyzing publication patterns and methodologies.",
			Difficulty:  types.DifficultyAdvanced,
			Duration:    "8-15 months",
			Categories:  []string{"Interdisciplinary Research", "Collaboration Discovery", "Academic Analytics"},
		},
		{
			Title:       "Research Reproducibility Framework",
			Description: "Design a comprehensive framework for ensuring research reproducibility, including automated experiment logging and result verification.",
			Difficulty:  types.DifficultyAdvanced,
			Duration:    "10-18 months",
			Categories:  []string{"Research Methodology", "Reproducibility", "Quality Assurance"},
		},
	},
	"MOBILE_DEVELOPMENT": {
		{
			Title:       "Mobile Research Data Collection App",
			Description: "Create a mobile application for field researchers to collect, annotate, and synchronize data across multiple devices with offline capabilities.",
			Difficulty:  types.DifficultyIntermediate,
			Duration:    "5-10 months",
			Categories:  []string{"Mobile Apps", "Data Collection", "Field Research"},
		},
		{
			Title:       "AR-Enhanced Laboratory Assistant",
			Description: "Develop an augmented reality mobile app that assists researchers in laboratory settings with equipment guidance and safety protocols.",
			Difficulty:  types.DifficultyAdvanced,
			Duration:    "8-14 months",
			Categories:  []string{"Augmented Reality", "Laboratory Technology", "Safety Systems"},
		},
	},
}

// minimalTemplates are the generic suggestions used when AI generation is
// unavailable or short. They are deliberately domain-neutral.
var minimalTemplates = []ProjectTemplate{
	{
		Title:       "Cross-Disciplinary Research Platform",
		Description: "Develop a platform that bridges different research domains, enabling collaboration between diverse academic fields and promoting interdisciplinary innovation with advanced analytics.",
		Difficulty:  types.DifficultyIntermediate,
		Duration:    "6-10 months",
		Categories:  []string{"Research", "Platform Development", "Collaboration"},
	},
	{
		Title:       "AI-Powered Research Analysis Tool",
		Description: "Create an intelligent tool for analyzing research trends, identifying gaps, and suggesting new research directions using machine learning and natural language processing.",
		Difficulty:  types.DifficultyAdvanced,
		Duration:    "8-12 months",
		Categories:  []string{"AI/ML", "Research Tools", "Data Analysis"},
	},
	{
		Title:       "Open Science Communication Platform",
		Description: "Build a platform dedicated to improving science communication, making research more accessible through interactive visualizations and plain language summaries.",
		Difficulty:  types.DifficultyIntermediate,
		Duration:    "5-10 months",
		Categories:  []string{"Science Communication", "Public Engagement", "Open Science"},
	},
	{
		Title:       "Digital Research Methodology Framework",
		Description: "Develop a comprehensive framework for digital research methodologies, incorporating modern tools and best practices for data collection and analysis.",
		Difficulty:  types.DifficultyAdvanced,
		Duration:    "6-12 months",
		Categories:  []string{"Research Methodology", "Digital Tools", "Framework Development"},
	},
	{
		Title:       "Research Impact Analysis System",
		Description: "Build an advanced system for analyzing and visualizing the impact of academic research across different domains with predictive analytics capabilities.",
		Difficulty:  types.DifficultyAdvanced,
		Duration:    "5-9 months",
		Categories:  []string{"Analytics", "Research Tools", "Data Science"},
	},
}

// legacyFallback is a scored backfill pool; it pads the full catalog path
// to a five-suggestion minimum when a thin profile matches little else.
type legacyFallback struct {
	Template ProjectTemplate
	Score    float64
}

var legacyFallbacks = []legacyFallback{
	{
		Template: ProjectTemplate{
			Title:       "Cross-Disciplinary Research Platform",
			Description: "Develop a platform that bridges different research domains, enabling collaboration between diverse academic fields and promoting interdisciplinary innovation with advanced analytics and visualization.",
			Difficulty:  types.DifficultyIntermediate,
			Duration:    "6-10 months",
			Categories:  []string{"Research", "Platform Development", "Collaboration"},
		},
		Score: 75,
	},
	{
		Template: ProjectTemplate{
			Title:       "Academic Portfolio Management System",
			Description: "Create a comprehensive system for managing academic portfolios, publications, and research projects with advanced analytics, automated reporting, and collaboration features.",
			Difficulty:  types.DifficultyIntermediate,
			Duration:    "4-8 months",
			Categories:  []string{"Academic Tools", "Data Management", "Visualization"},
		},
		Score: 70,
	},
	{
		Template: ProjectTemplate{
			Title:       "Research Impact Analysis Tool",
			Description: "Build an advanced tool for analyzing and visualizing the impact of academic research across different domains, time periods, and citation networks with predictive analytics.",
			Difficulty:  types.DifficultyIntermediate,
			Duration:    "5-9 months",
			Categories:  []string{"Analytics", "Research Tools", "Data Science"},
		},
		Score: 68,
	},
	{
		Template: ProjectTemplate{
			Title:       "Digital Research Methodology Framework",
			Description: "Develop a comprehensive framework for digital research methodologies, incorporating modern tools, techniques, and best practices for data collection, analysis, and validation.",
			Difficulty:  types.DifficultyAdvanced,
			Duration:    "6-12 months",
			Categories:  []string{"Research Methodology", "Digital Tools", "Framework Development"},
		},
		Score: 65,
	},
	{
		Template: ProjectTemplate{
			Title:       "Open Science Communication Platform",
			Description: "Create a platform dedicated to improving science communication, making research more accessible to the general public through interactive visualizations, plain language summaries, and multimedia content.",
			Difficulty:  types.DifficultyIntermediate,
			Duration:    "5-10 months",
			Categories:  []string{"Science Communication", "Public Engagement", "Open Science"},
		},
		Score: 63,
	},
}
