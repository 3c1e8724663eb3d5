// Package skills detects known skills in resume text and estimates
// proficiency from surrounding context.
package skills

// Category groups lexicon terms under one label.
type Category struct {
	Name  string
	Terms []string
}

// Lexicon is the fixed vocabulary of recognized skill terms. It is
// immutable after construction and safe to share across requests;
// tests may construct a smaller one.
type Lexicon struct {
	Categories []Category
}

// DefaultLexicon returns the built-in skill vocabulary.
func DefaultLexicon() *Lexicon {
	return &Lexicon{Categories: []Category{
		{Name: "Programming", Terms: []string{
			"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go",
			"Rust", "Ruby", "PHP", "Swift", "Kotlin", "Scala", "Perl",
			"MATLAB", "Objective-C", "Dart", "Elixir", "Haskell", "Clojure",
			"Lua", "Groovy",
		}},
		{Name: "Frontend", Terms: []string{
			"React", "Angular", "Vue", "Svelte", "Next.js", "Nuxt", "jQuery",
			"Redux", "HTML", "CSS", "Sass", "Tailwind", "Bootstrap",
			"Webpack", "Vite", "Ember", "Gatsby",
		}},
		{Name: "Backend", Terms: []string{
			"Node.js", "Express", "Django", "Flask", "Spring Boot", "Spring",
			"Rails", "Laravel", "FastAPI", "ASP.NET", "GraphQL", "gRPC",
			"Microservices", "NestJS", "Gin", "Phoenix",
		}},
		{Name: "Databases", Terms: []string{
			"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Cassandra",
			"DynamoDB", "SQLite", "Oracle", "Elasticsearch", "MariaDB",
			"Neo4j", "Couchbase", "Firebase",
		}},
		{Name: "Cloud & DevOps", Terms: []string{
			"AWS", "Azure", "GCP", "Google Cloud", "Docker", "Kubernetes",
			"Terraform", "Ansible", "Jenkins", "CircleCI", "GitHub Actions",
			"GitLab CI", "Helm", "Prometheus", "Grafana", "Nginx", "Linux",
			"Bash", "CI/CD", "Serverless", "Lambda", "CloudFormation",
			"Puppet", "Chef", "Vault",
		}},
		{Name: "Data Science", Terms: []string{
			"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch",
			"Pandas", "NumPy", "Scikit-learn", "Keras", "NLP",
			"Computer Vision", "Data Analysis", "Spark", "Hadoop", "Airflow",
			"Tableau", "Power BI", "Jupyter", "Statistics", "ETL",
		}},
		{Name: "Mobile", Terms: []string{
			"iOS", "Android", "React Native", "Flutter", "Xamarin", "Ionic",
			"SwiftUI", "Jetpack Compose",
		}},
		{Name: "Tools", Terms: []string{
			"Git", "GitHub", "GitLab", "Bitbucket", "Jira", "Confluence",
			"Postman", "Figma", "Agile", "Scrum", "Kanban", "TDD",
			"Unit Testing", "Selenium", "Cypress", "Jest", "Mocha", "JUnit",
			"Maven", "Gradle", "Yarn", "Grunt", "Babel", "ESLint",
		}},
	}}
}

// CategoryOf returns the category label of the first category-table
// entry containing the term, or "Other" when none does.
func (l *Lexicon) CategoryOf(term string) string {
	for _, category := range l.Categories {
		for _, t := range category.Terms {
			if t == term {
				return category.Name
			}
		}
	}
	return "Other"
}
