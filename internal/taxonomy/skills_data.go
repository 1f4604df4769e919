package taxonomy

// Category names. Every Skill.Category must be one of these.
const (
	CategoryWebDevelopment     = "Web Development"
	CategoryMobileDevelopment  = "Mobile Development"
	CategoryDataAI             = "Data & AI"
	CategoryDevOpsCloud        = "DevOps & Cloud"
	CategoryDesign             = "Design"
	CategoryVideoAnimation     = "Video & Animation"
	CategoryAudioMusic         = "Audio & Music"
	CategoryWritingTranslation = "Writing & Translation"
	CategoryDigitalMarketing   = "Digital Marketing"
	CategoryBusinessFinance    = "Business & Finance"
)

// Categories is the closed set of category keys skills may reference.
var Categories = []string{
	CategoryWebDevelopment,
	CategoryMobileDevelopment,
	CategoryDataAI,
	CategoryDevOpsCloud,
	CategoryDesign,
	CategoryVideoAnimation,
	CategoryAudioMusic,
	CategoryWritingTranslation,
	CategoryDigitalMarketing,
	CategoryBusinessFinance,
}

// SuperCategories groups categories into broader domains. A category is
// expected to appear in at most one group; the first hit wins on lookup.
var SuperCategories = map[string][]string{
	"Developer": {
		CategoryWebDevelopment,
		CategoryMobileDevelopment,
		CategoryDataAI,
		CategoryDevOpsCloud,
	},
	"Creative": {
		CategoryDesign,
		CategoryVideoAnimation,
		CategoryAudioMusic,
	},
	"Marketing & Content": {
		CategoryWritingTranslation,
		CategoryDigitalMarketing,
	},
	"Business": {
		CategoryBusinessFinance,
	},
}

// Skills is the hand-curated catalog. IDs are stable; append only.
var Skills = []Skill{
	// Web Development
	{ID: 1, Name: "React Development", Category: CategoryWebDevelopment, RelatedSkills: []string{"ReactJS", "React.js", "Next.js", "Redux", "JavaScript"}},
	{ID: 2, Name: "Vue.js", Category: CategoryWebDevelopment, RelatedSkills: []string{"Nuxt.js", "Vuex", "JavaScript", "Frontend Development"}},
	{ID: 3, Name: "Angular", Category: CategoryWebDevelopment, RelatedSkills: []string{"AngularJS", "TypeScript", "RxJS", "Frontend Development"}},
	{ID: 4, Name: "JavaScript", Category: CategoryWebDevelopment, RelatedSkills: []string{"ES6", "TypeScript", "Node.js", "Frontend Development"}},
	{ID: 5, Name: "TypeScript", Category: CategoryWebDevelopment, RelatedSkills: []string{"JavaScript", "Node.js", "Angular"}},
	{ID: 6, Name: "Node.js", Category: CategoryWebDevelopment, RelatedSkills: []string{"Express.js", "NestJS", "JavaScript", "Backend Development"}},
	{ID: 7, Name: "PHP", Category: CategoryWebDevelopment, RelatedSkills: []string{"Laravel", "Symfony", "WordPress", "Backend Development"}},
	{ID: 8, Name: "Laravel", Category: CategoryWebDevelopment, RelatedSkills: []string{"PHP", "Eloquent", "Blade", "Backend Development"}},
	{ID: 9, Name: "WordPress", Category: CategoryWebDevelopment, RelatedSkills: []string{"PHP", "Elementor", "WooCommerce", "Theme Development"}},
	{ID: 10, Name: "HTML", Category: CategoryWebDevelopment, RelatedSkills: []string{"HTML5", "CSS", "Web Design"}},
	{ID: 11, Name: "CSS", Category: CategoryWebDevelopment, RelatedSkills: []string{"Sass", "Tailwind CSS", "HTML", "Responsive Design"}},
	{ID: 12, Name: "Tailwind CSS", Category: CategoryWebDevelopment, RelatedSkills: []string{"CSS", "Responsive Design", "Frontend Development"}},
	{ID: 13, Name: "Ruby on Rails", Category: CategoryWebDevelopment, RelatedSkills: []string{"Ruby", "ActiveRecord", "Backend Development"}},
	{ID: 14, Name: "Django", Category: CategoryWebDevelopment, RelatedSkills: []string{"Python", "Flask", "Backend Development"}},
	{ID: 15, Name: "Go Development", Category: CategoryWebDevelopment, RelatedSkills: []string{"Golang", "gRPC", "Backend Development", "Microservices"}},

	// Mobile Development
	{ID: 16, Name: "Swift", Category: CategoryMobileDevelopment, RelatedSkills: []string{"iOS Development", "SwiftUI", "Objective-C", "Xcode"}},
	{ID: 17, Name: "Kotlin", Category: CategoryMobileDevelopment, RelatedSkills: []string{"Android Development", "Java", "Jetpack Compose"}},
	{ID: 18, Name: "Flutter", Category: CategoryMobileDevelopment, RelatedSkills: []string{"Dart", "Cross-Platform Development", "Mobile UI"}},
	{ID: 19, Name: "React Native", Category: CategoryMobileDevelopment, RelatedSkills: []string{"ReactJS", "JavaScript", "Cross-Platform Development"}},
	{ID: 20, Name: "iOS Development", Category: CategoryMobileDevelopment, RelatedSkills: []string{"Swift", "Objective-C", "SwiftUI", "App Store"}},
	{ID: 21, Name: "Android Development", Category: CategoryMobileDevelopment, RelatedSkills: []string{"Kotlin", "Java", "Jetpack Compose", "Google Play"}},
	{ID: 22, Name: "Dart", Category: CategoryMobileDevelopment, RelatedSkills: []string{"Flutter", "Cross-Platform Development"}},

	// Data & AI
	{ID: 23, Name: "Python", Category: CategoryDataAI, RelatedSkills: []string{"Pandas", "NumPy", "Django", "Scripting"}},
	{ID: 24, Name: "Machine Learning", Category: CategoryDataAI, RelatedSkills: []string{"Python", "TensorFlow", "Scikit-learn", "Deep Learning"}},
	{ID: 25, Name: "Deep Learning", Category: CategoryDataAI, RelatedSkills: []string{"Machine Learning", "TensorFlow", "PyTorch", "Neural Networks"}},
	{ID: 26, Name: "Data Analysis", Category: CategoryDataAI, RelatedSkills: []string{"SQL", "Excel", "Pandas", "Data Visualization"}},
	{ID: 27, Name: "SQL", Category: CategoryDataAI, RelatedSkills: []string{"PostgreSQL", "MySQL", "Data Analysis", "Database Design"}},
	{ID: 28, Name: "Data Visualization", Category: CategoryDataAI, RelatedSkills: []string{"Tableau", "Power BI", "D3.js", "Data Analysis"}},
	{ID: 29, Name: "TensorFlow", Category: CategoryDataAI, RelatedSkills: []string{"Machine Learning", "Python", "Keras"}},
	{ID: 30, Name: "Natural Language Processing", Category: CategoryDataAI, RelatedSkills: []string{"NLP", "Machine Learning", "Python", "Text Mining"}},
	{ID: 31, Name: "Data Engineering", Category: CategoryDataAI, RelatedSkills: []string{"ETL", "Apache Spark", "Airflow", "SQL"}},

	// DevOps & Cloud
	{ID: 32, Name: "Docker", Category: CategoryDevOpsCloud, RelatedSkills: []string{"Kubernetes", "Containers", "CI/CD"}},
	{ID: 33, Name: "Kubernetes", Category: CategoryDevOpsCloud, RelatedSkills: []string{"Docker", "Helm", "Container Orchestration"}},
	{ID: 34, Name: "AWS", Category: CategoryDevOpsCloud, RelatedSkills: []string{"Amazon Web Services", "EC2", "S3", "Lambda", "Cloud Architecture"}},
	{ID: 35, Name: "Google Cloud", Category: CategoryDevOpsCloud, RelatedSkills: []string{"GCP", "BigQuery", "Cloud Architecture"}},
	{ID: 36, Name: "Terraform", Category: CategoryDevOpsCloud, RelatedSkills: []string{"Infrastructure as Code", "AWS", "DevOps"}},
	{ID: 37, Name: "CI/CD", Category: CategoryDevOpsCloud, RelatedSkills: []string{"Jenkins", "GitHub Actions", "GitLab CI", "DevOps"}},
	{ID: 38, Name: "Linux Administration", Category: CategoryDevOpsCloud, RelatedSkills: []string{"Bash", "Shell Scripting", "System Administration"}},

	// Design
	{ID: 39, Name: "UI Design", Category: CategoryDesign, RelatedSkills: []string{"Figma", "UX Design", "Wireframing", "Prototyping"}},
	{ID: 40, Name: "UX Design", Category: CategoryDesign, RelatedSkills: []string{"User Research", "UI Design", "Usability Testing", "Wireframing"}},
	{ID: 41, Name: "Graphic Design", Category: CategoryDesign, RelatedSkills: []string{"Adobe Photoshop", "Adobe Illustrator", "Branding", "Layout Design"}},
	{ID: 42, Name: "Logo Design", Category: CategoryDesign, RelatedSkills: []string{"Brand Identity", "Adobe Illustrator", "Graphic Design"}},
	{ID: 43, Name: "Figma", Category: CategoryDesign, RelatedSkills: []string{"UI Design", "Prototyping", "Design Systems"}},
	{ID: 44, Name: "Adobe Photoshop", Category: CategoryDesign, RelatedSkills: []string{"Photo Editing", "Graphic Design", "Retouching"}},
	{ID: 45, Name: "Illustration", Category: CategoryDesign, RelatedSkills: []string{"Digital Art", "Adobe Illustrator", "Character Design"}},
	{ID: 46, Name: "Brand Identity", Category: CategoryDesign, RelatedSkills: []string{"Logo Design", "Branding", "Style Guides"}},

	// Video & Animation
	{ID: 47, Name: "Video Editing", Category: CategoryVideoAnimation, RelatedSkills: []string{"Premiere Pro", "Final Cut Pro", "Color Grading"}},
	{ID: 48, Name: "Motion Graphics", Category: CategoryVideoAnimation, RelatedSkills: []string{"After Effects", "Animation", "Video Editing"}},
	{ID: 49, Name: "2D Animation", Category: CategoryVideoAnimation, RelatedSkills: []string{"Animation", "Character Animation", "Toon Boom"}},
	{ID: 50, Name: "3D Modeling", Category: CategoryVideoAnimation, RelatedSkills: []string{"Blender", "Maya", "3D Rendering"}},
	{ID: 51, Name: "After Effects", Category: CategoryVideoAnimation, RelatedSkills: []string{"Motion Graphics", "Compositing", "Visual Effects"}},

	// Audio & Music
	{ID: 52, Name: "Voice Over", Category: CategoryAudioMusic, RelatedSkills: []string{"Narration", "Audio Recording", "Voice Acting"}},
	{ID: 53, Name: "Audio Editing", Category: CategoryAudioMusic, RelatedSkills: []string{"Audacity", "Pro Tools", "Sound Design"}},
	{ID: 54, Name: "Music Production", Category: CategoryAudioMusic, RelatedSkills: []string{"Ableton Live", "FL Studio", "Mixing & Mastering"}},
	{ID: 55, Name: "Podcast Production", Category: CategoryAudioMusic, RelatedSkills: []string{"Audio Editing", "Sound Design", "Show Notes"}},
	{ID: 56, Name: "Mixing & Mastering", Category: CategoryAudioMusic, RelatedSkills: []string{"Music Production", "Pro Tools", "Audio Engineering"}},

	// Writing & Translation
	{ID: 57, Name: "Copywriting", Category: CategoryWritingTranslation, RelatedSkills: []string{"Sales Copy", "Ad Copy", "Content Writing"}},
	{ID: 58, Name: "Content Writing", Category: CategoryWritingTranslation, RelatedSkills: []string{"Blog Writing", "SEO Writing", "Copywriting"}},
	{ID: 59, Name: "Technical Writing", Category: CategoryWritingTranslation, RelatedSkills: []string{"Documentation", "API Documentation", "User Guides"}},
	{ID: 60, Name: "Translation", Category: CategoryWritingTranslation, RelatedSkills: []string{"Localization", "Proofreading", "Subtitling"}},
	{ID: 61, Name: "Proofreading", Category: CategoryWritingTranslation, RelatedSkills: []string{"Editing", "Copy Editing", "Grammar"}},
	{ID: 62, Name: "Ghostwriting", Category: CategoryWritingTranslation, RelatedSkills: []string{"Book Writing", "Content Writing", "Storytelling"}},

	// Digital Marketing
	{ID: 63, Name: "SEO", Category: CategoryDigitalMarketing, RelatedSkills: []string{"Search Engine Optimization", "Keyword Research", "Link Building", "Google Analytics"}},
	{ID: 64, Name: "Social Media Marketing", Category: CategoryDigitalMarketing, RelatedSkills: []string{"Instagram Marketing", "Community Management", "Content Marketing"}},
	{ID: 65, Name: "Email Marketing", Category: CategoryDigitalMarketing, RelatedSkills: []string{"Mailchimp", "Newsletters", "Marketing Automation"}},
	{ID: 66, Name: "Content Marketing", Category: CategoryDigitalMarketing, RelatedSkills: []string{"Content Strategy", "Blog Writing", "SEO"}},
	{ID: 67, Name: "PPC Advertising", Category: CategoryDigitalMarketing, RelatedSkills: []string{"Google Ads", "Facebook Ads", "Campaign Management"}},
	{ID: 68, Name: "Marketing Strategy", Category: CategoryDigitalMarketing, RelatedSkills: []string{"Market Research", "Brand Strategy", "Growth Marketing"}},

	// Business & Finance
	{ID: 69, Name: "Bookkeeping", Category: CategoryBusinessFinance, RelatedSkills: []string{"QuickBooks", "Accounting", "Payroll"}},
	{ID: 70, Name: "Financial Analysis", Category: CategoryBusinessFinance, RelatedSkills: []string{"Financial Modeling", "Excel", "Forecasting"}},
	{ID: 71, Name: "Project Management", Category: CategoryBusinessFinance, RelatedSkills: []string{"Agile", "Scrum", "Jira", "Planning"}},
	{ID: 72, Name: "Virtual Assistance", Category: CategoryBusinessFinance, RelatedSkills: []string{"Data Entry", "Calendar Management", "Customer Support"}},
	{ID: 73, Name: "Business Consulting", Category: CategoryBusinessFinance, RelatedSkills: []string{"Business Strategy", "Market Research", "Operations"}},
}
