package taxonomy

// Default returns the built-in taxonomy used when no override file is
// configured. Category order matters: role categorization resolves to the
// first category whose keyword matches.
func Default() Taxonomy {
	return Taxonomy{
		SkillCategories: []SkillCategory{
			{Name: "Programming Languages", Skills: []string{
				"Python", "Java", "JavaScript", "C++", "C#", "Ruby", "Go", "Rust",
				"PHP", "Swift", "Kotlin", "Scala", "R", "MATLAB", "TypeScript",
			}},
			{Name: "Web Frameworks", Skills: []string{
				"React", "Angular", "Vue.js", "Django", "Flask", "Spring", "Express",
				"Node.js", "Laravel", "Ruby on Rails", "ASP.NET", "FastAPI",
			}},
			{Name: "Databases", Skills: []string{
				"MySQL", "PostgreSQL", "MongoDB", "Redis", "Oracle", "SQL Server",
				"Cassandra", "DynamoDB", "Neo4j", "SQLite", "MariaDB", "Snowflake",
			}},
			{Name: "Cloud Platforms", Skills: []string{
				"AWS", "Azure", "Google Cloud", "GCP", "Heroku", "DigitalOcean",
				"IBM Cloud", "Oracle Cloud", "Alibaba Cloud",
			}},
			{Name: "DevOps & Tools", Skills: []string{
				"Docker", "Kubernetes", "Jenkins", "Git", "CI/CD", "Terraform",
				"Ansible", "Chef", "Puppet", "GitLab", "GitHub Actions", "CircleCI",
			}},
			{Name: "Data Science & ML", Skills: []string{
				"TensorFlow", "PyTorch", "scikit-learn", "Keras", "Pandas", "NumPy",
				"Spark", "Hadoop", "Tableau", "Power BI", "Machine Learning", "Deep Learning",
			}},
			{Name: "Business Tools", Skills: []string{
				"Salesforce", "SAP", "Oracle ERP", "ServiceNow", "JIRA", "Confluence",
				"Tableau", "Power BI", "Excel", "MS Office",
			}},
		},
		JobCategories: []JobCategory{
			{Name: "Developer", Keywords: []string{"developer", "programmer", "coder", "software engineer"}},
			{Name: "Data Professional", Keywords: []string{"data analyst", "data scientist", "data engineer", "ml engineer"}},
			{Name: "QA/Testing", Keywords: []string{"tester", "qa", "quality assurance", "automation tester"}},
			{Name: "DevOps", Keywords: []string{"devops", "sre", "infrastructure", "cloud engineer"}},
			{Name: "Business Analyst", Keywords: []string{"business analyst", "ba", "product analyst"}},
			{Name: "Project Manager", Keywords: []string{"project manager", "pm", "program manager", "scrum master"}},
			{Name: "Designer", Keywords: []string{"designer", "ui/ux", "graphic designer", "product designer"}},
			{Name: "Database", Keywords: []string{"dba", "database admin", "database developer"}},
			{Name: "Security", Keywords: []string{"security", "cybersecurity", "infosec", "security engineer"}},
			{Name: "Support", Keywords: []string{"support engineer", "technical support", "help desk"}},
		},
		Certifications: []Certification{
			{Name: "AWS Certified", Pattern: `aws\s+certified`},
			{Name: "Azure Certified", Pattern: `azure\s+certified`},
			{Name: "GCP Certified", Pattern: `gcp\s+certified|google\s+cloud\s+certified`},
			{Name: "Salesforce PD1", Pattern: `pd1|platform\s+developer\s+1`},
			{Name: "Salesforce PD2", Pattern: `pd2|platform\s+developer\s+2`},
			{Name: "Salesforce Admin", Pattern: `salesforce\s+admin|salesforce\s+certified\s+administrator`},
			{Name: "ITIL", Pattern: `\bitil\b`},
			{Name: "Scrum Master", Pattern: `csm|certified\s+scrum\s+master`},
			{Name: "PMP", Pattern: `\bpmp\b|project\s+management\s+professional`},
			{Name: "Oracle Certified", Pattern: `oracle\s+certified`},
			{Name: "CISSP", Pattern: `\bcissp\b`},
		},
	}
}
