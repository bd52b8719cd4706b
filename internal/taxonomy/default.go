package taxonomy

// Default returns the built-in taxonomy used when no backing source is
// configured or the configured source is unavailable. It keeps the
// engine functional rather than failing closed.
func Default() Taxonomy {
	return Taxonomy{
		Categories: map[string][]string{
			"Programming Languages": {
				"Python", "Java", "JavaScript", "TypeScript", "Go", "C++", "C#", "Ruby", "PHP", "SQL",
			},
			"Web Development": {
				"React", "Angular", "Vue.js", "Node.js", "Django", "Flask", "RESTful APIs", "GraphQL", "HTML", "CSS",
			},
			"Data Science": {
				"Machine Learning", "Deep Learning", "Data Analysis", "Statistics", "Pandas", "NumPy", "TensorFlow", "PyTorch", "Natural Language Processing",
			},
			"DevOps & Cloud": {
				"Docker", "Kubernetes", "AWS", "Azure", "GCP", "CI/CD", "Terraform", "Linux", "Git",
			},
			"Databases": {
				"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
			},
			"Soft Skills": {
				"Communication", "Leadership", "Teamwork", "Problem Solving", "Project Management", "Agile",
			},
		},
		Roles: map[string]Requirements{
			"Software Engineer": {
				Required:  []string{"Python", "Java", "SQL", "RESTful APIs", "Git"},
				Preferred: []string{"Docker", "Kubernetes", "AWS", "Agile"},
			},
			"Backend Developer": {
				Required:  []string{"Python", "SQL", "RESTful APIs", "Git"},
				Preferred: []string{"Go", "Docker", "Redis", "MongoDB"},
			},
			"Frontend Developer": {
				Required:  []string{"JavaScript", "HTML", "CSS", "React"},
				Preferred: []string{"TypeScript", "Vue.js", "Node.js"},
			},
			"Full Stack Developer": {
				Required:  []string{"JavaScript", "Node.js", "SQL", "RESTful APIs", "Git"},
				Preferred: []string{"React", "TypeScript", "Docker", "MongoDB"},
			},
			"Data Scientist": {
				Required:  []string{"Python", "Machine Learning", "Statistics", "SQL", "Pandas"},
				Preferred: []string{"Deep Learning", "TensorFlow", "Natural Language Processing", "Data Analysis"},
			},
			"Data Analyst": {
				Required:  []string{"SQL", "Data Analysis", "Statistics"},
				Preferred: []string{"Python", "Pandas", "Communication"},
			},
			"DevOps Engineer": {
				Required:  []string{"Docker", "Kubernetes", "CI/CD", "Linux", "Git"},
				Preferred: []string{"Terraform", "AWS", "Azure", "Python"},
			},
			"Product Manager": {
				Required:  []string{"Project Management", "Communication", "Agile"},
				Preferred: []string{"Leadership", "SQL", "Data Analysis"},
			},
		},
		Industries: map[string][]string{
			"Technology": {"software", "saas", "internet", "cloud", "it"},
			"Finance":    {"banking", "fintech", "investment", "insurance"},
			"Healthcare": {"medical", "pharmaceutical", "biotech", "health"},
			"Retail":     {"ecommerce", "commerce", "consumer"},
			"Education":  {"edtech", "learning", "academic"},
			"Media":      {"advertising", "entertainment", "publishing"},
		},
	}
}
