package markdown

// badgeURLs maps lower-cased technology names to shields.io badge
// images. Unmatched technologies fall back to bold plain text.
var badgeURLs = map[string]string{
	"python":       "https://img.shields.io/badge/Python-3776AB?style=for-the-badge&logo=python&logoColor=white",
	"flask":        "https://img.shields.io/badge/Flask-000000?style=for-the-badge&logo=flask&logoColor=white",
	"react":        "https://img.shields.io/badge/React-20232A?style=for-the-badge&logo=react&logoColor=61DAFB",
	"javascript":   "https://img.shields.io/badge/JavaScript-F7DF1E?style=for-the-badge&logo=javascript&logoColor=black",
	"typescript":   "https://img.shields.io/badge/TypeScript-007ACC?style=for-the-badge&logo=typescript&logoColor=white",
	"node.js":      "https://img.shields.io/badge/Node.js-43853D?style=for-the-badge&logo=node.js&logoColor=white",
	"django":       "https://img.shields.io/badge/Django-092E20?style=for-the-badge&logo=django&logoColor=white",
	"mongodb":      "https://img.shields.io/badge/MongoDB-4EA94B?style=for-the-badge&logo=mongodb&logoColor=white",
	"mysql":        "https://img.shields.io/badge/MySQL-00000F?style=for-the-badge&logo=mysql&logoColor=white",
	"postgresql":   "https://img.shields.io/badge/PostgreSQL-316192?style=for-the-badge&logo=postgresql&logoColor=white",
	"docker":       "https://img.shields.io/badge/Docker-2496ED?style=for-the-badge&logo=docker&logoColor=white",
	"kubernetes":   "https://img.shields.io/badge/Kubernetes-326DE6?style=for-the-badge&logo=kubernetes&logoColor=white",
	"aws":          "https://img.shields.io/badge/AWS-232F3E?style=for-the-badge&logo=amazon-aws&logoColor=white",
	"gcp":          "https://img.shields.io/badge/Google_Cloud-4285F4?style=for-the-badge&logo=google-cloud&logoColor=white",
	"azure":        "https://img.shields.io/badge/Microsoft_Azure-0089D6?style=for-the-badge&logo=microsoft-azure&logoColor=white",
	"html":         "https://img.shields.io/badge/HTML5-E34F26?style=for-the-badge&logo=html5&logoColor=white",
	"css":          "https://img.shields.io/badge/CSS3-1572B6?style=for-the-badge&logo=css3&logoColor=white",
	"sass":         "https://img.shields.io/badge/Sass-CC6699?style=for-the-badge&logo=sass&logoColor=white",
	"redux":        "https://img.shields.io/badge/Redux-593D88?style=for-the-badge&logo=redux&logoColor=white",
	"vue":          "https://img.shields.io/badge/Vue.js-35495E?style=for-the-badge&logo=vue.js&logoColor=4FC08D",
	"angular":      "https://img.shields.io/badge/Angular-DD0031?style=for-the-badge&logo=angular&logoColor=white",
	"tailwind":     "https://img.shields.io/badge/Tailwind_CSS-38B2AC?style=for-the-badge&logo=tailwind-css&logoColor=white",
	"bootstrap":    "https://img.shields.io/badge/Bootstrap-563D7C?style=for-the-badge&logo=bootstrap&logoColor=white",
	"graphql":      "https://img.shields.io/badge/GraphQL-E10098?style=for-the-badge&logo=graphql&logoColor=white",
	"rust":         "https://img.shields.io/badge/Rust-000000?style=for-the-badge&logo=rust&logoColor=white",
	"go":           "https://img.shields.io/badge/Go-00ADD8?style=for-the-badge&logo=go&logoColor=white",
	"c++":          "https://img.shields.io/badge/C%2B%2B-00599C?style=for-the-badge&logo=c%2B%2B&logoColor=white",
	"java":         "https://img.shields.io/badge/Java-ED8B00?style=for-the-badge&logo=java&logoColor=white",
	"c#":           "https://img.shields.io/badge/C%23-239120?style=for-the-badge&logo=c-sharp&logoColor=white",
	"php":          "https://img.shields.io/badge/PHP-777BB4?style=for-the-badge&logo=php&logoColor=white",
	"swift":        "https://img.shields.io/badge/Swift-FA7343?style=for-the-badge&logo=swift&logoColor=white",
	"kotlin":       "https://img.shields.io/badge/Kotlin-0095D5?style=for-the-badge&logo=kotlin&logoColor=white",
	"flutter":      "https://img.shields.io/badge/Flutter-02569B?style=for-the-badge&logo=flutter&logoColor=white",
	"react native": "https://img.shields.io/badge/React_Native-20232A?style=for-the-badge&logo=react&logoColor=61DAFB",
}
