package taxonomy

// CategoryDef declares one built-in category and its keywords.
type CategoryDef struct {
	Name     string
	Keywords []string
}

// DefaultDomainData is the built-in domain table, in classification order.
// Keywords are matched as substrings, so very short tokens ("it", "ui", "hr")
// are avoided on purpose: they hide inside unrelated words.
var DefaultDomainData = []CategoryDef{
	{Name: "IT", Keywords: []string{
		"information technology", "công nghệ thông tin", "software", "phần mềm",
		"programming", "lập trình", "developer", "coding", "backend", "frontend",
		"fullstack", "spring boot", "java", "python", "javascript", "golang",
		"devops", "cloud", "database", "sql", "api", "docker", "kubernetes",
		"machine learning", "data engineer", "cybersecurity", "bảo mật", "mobile app",
	}},
	{Name: "Healthcare", Keywords: []string{
		"healthcare", "y tế", "medical", "doctor", "bác sĩ", "nurse", "điều dưỡng",
		"hospital", "bệnh viện", "clinic", "phòng khám", "pharmacy", "dược", "patient",
	}},
	{Name: "Finance", Keywords: []string{
		"finance", "tài chính", "accounting", "kế toán", "banking", "ngân hàng",
		"investment", "đầu tư", "audit", "kiểm toán", "financial analyst", "chứng khoán",
	}},
	{Name: "Marketing", Keywords: []string{
		"marketing", "seo", "quảng cáo", "advertising", "brand", "thương hiệu",
		"social media", "truyền thông", "content creator", "copywriting",
	}},
	{Name: "Design", Keywords: []string{
		"design", "thiết kế", "designer", "figma", "photoshop", "illustrator",
		"graphic", "đồ họa", "ui/ux", "user experience", "wireframe",
	}},
	{Name: "Education", Keywords: []string{
		"education", "giáo dục", "teacher", "giáo viên", "teaching", "giảng dạy",
		"tutor", "gia sư", "curriculum", "đào tạo",
	}},
	{Name: "Engineering", Keywords: []string{
		"mechanical", "cơ khí", "electrical engineer", "kỹ sư điện", "civil engineering",
		"xây dựng", "construction", "autocad", "manufacturing", "sản xuất", "plc",
	}},
	{Name: "Business", Keywords: []string{
		"business", "kinh doanh", "sales", "bán hàng", "management", "quản lý",
		"startup", "khởi nghiệp", "human resources", "nhân sự", "operations",
	}},
}

// DefaultRoleData is the built-in role-category table, in classification order.
var DefaultRoleData = []CategoryDef{
	{Name: "Backend Developer", Keywords: []string{
		"backend", "back-end", "back end", "spring boot", "spring", "java",
		"node.js", "nodejs", "golang", "django", "microservice", "server-side", "rest api",
	}},
	{Name: "Frontend Developer", Keywords: []string{
		"frontend", "front-end", "front end", "react", "vue", "angular", "html",
		"css", "javascript", "typescript",
	}},
	{Name: "Fullstack Developer", Keywords: []string{
		"fullstack", "full-stack", "full stack", "mern", "mean stack",
	}},
	{Name: "Mobile Developer", Keywords: []string{
		"mobile developer", "android", "ios developer", "flutter", "react native",
		"kotlin", "swiftui",
	}},
	{Name: "Data Analyst", Keywords: []string{
		"data analyst", "phân tích dữ liệu", "data analysis", "excel", "power bi",
		"tableau", "dashboard",
	}},
	{Name: "Data Scientist", Keywords: []string{
		"data scientist", "khoa học dữ liệu", "machine learning", "deep learning",
		"pytorch", "tensorflow", "ai engineer",
	}},
	{Name: "DevOps Engineer", Keywords: []string{
		"devops", "kubernetes", "docker", "ci/cd", "terraform", "cloud engineer",
		"site reliability",
	}},
	{Name: "QA Engineer", Keywords: []string{
		"tester", "kiểm thử", "quality assurance", "automation test", "selenium",
		"test case",
	}},
	{Name: "UI/UX Designer", Keywords: []string{
		"ui/ux", "ux designer", "ui designer", "figma", "wireframe", "prototype",
		"user experience",
	}},
	{Name: "Product Manager", Keywords: []string{
		"product manager", "product owner", "quản lý sản phẩm", "roadmap",
		"product discovery",
	}},
	{Name: "Project Manager", Keywords: []string{
		"project manager", "quản lý dự án", "scrum master", "agile", "pmp",
	}},
	{Name: "Digital Marketer", Keywords: []string{
		"digital marketing", "seo", "google ads", "facebook ads", "content marketing",
		"marketing online",
	}},
	{Name: "Accountant", Keywords: []string{
		"accountant", "kế toán", "accounting", "bookkeeping", "ifrs",
	}},
	{Name: "Nurse", Keywords: []string{
		"nurse", "điều dưỡng", "nursing",
	}},
	{Name: "Teacher", Keywords: []string{
		"teacher", "giáo viên", "teaching", "giảng dạy", "gia sư", "tutor",
	}},
}

// Defaults builds the built-in indexes. The industry axis is always empty:
// industry detection falls back to caller-supplied values.
func Defaults() Indexes {
	return Indexes{
		Domain: buildFromDefs(DefaultDomainData),
		Role:   buildFromDefs(DefaultRoleData),
	}
}

func buildFromDefs(defs []CategoryDef) Index {
	b := NewBuilder()
	for _, d := range defs {
		b.Add(d.Name, d.Keywords...)
	}
	return b.Build()
}
