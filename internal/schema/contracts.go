package schema

import "github.com/baharkarakas/sitecraft-backend/internal/models"

var Users = Table{
	Name: "users",
	Fields: []Field{
		{Name: "id", Column: "id", Kind: Integer, NotNull: true, PrimaryKey: true, Serial: true},
		{Name: "username", Column: "username", Kind: Text, NotNull: true, Unique: true},
		{Name: "password", Column: "password", Kind: Text, NotNull: true},
	},
}

var Projects = Table{
	Name: "projects",
	Fields: []Field{
		{Name: "id", Column: "id", Kind: Integer, NotNull: true, PrimaryKey: true, Serial: true},
		{Name: "userId", Column: "user_id", Kind: Integer, NotNull: true, References: &Reference{Table: "users", Column: "id"}},
		{Name: "name", Column: "name", Kind: Text, NotNull: true},
		{Name: "description", Column: "description", Kind: Text, NotNull: true},
		{Name: "html", Column: "html", Kind: Text},
		{Name: "css", Column: "css", Kind: Text},
		{Name: "javascript", Column: "javascript", Kind: Text},
		{Name: "framework", Column: "framework", Kind: Text, Default: "html"},
		{Name: "isPublished", Column: "is_published", Kind: Boolean, Default: false},
		{Name: "createdAt", Column: "created_at", Kind: Timestamp, DefaultNow: true},
		{Name: "settings", Column: "settings", Kind: JSON},
	},
}

// Website generator enumerations.
const (
	FrameworkReact   = "React"
	FrameworkVue     = "Vue"
	FrameworkHTML    = "HTML/CSS/JS"
	FrameworkNextJS  = "Next.js"
	TypeECommerce    = "E-commerce"
	TypePortfolio    = "Portfolio"
	TypeBlog         = "Blog"
	TypeBusiness     = "Business"
	TypeLandingPage  = "Landing Page"
	DetailedDescMsg  = "Please provide a more detailed description"
	minDescriptionLn = 10
)

var (
	InsertUser = Users.MustPick("username", "password").Named("insert_user")

	InsertProject = Projects.MustPick(
		"userId", "name", "description", "html", "css", "javascript",
		"framework", "isPublished", "settings",
	).Named("insert_project")

	UpdateProject = Projects.MustPick(
		"name", "description", "html", "css", "javascript",
		"framework", "isPublished", "settings",
	).Partial().Named("update_project")

	WebsiteGenerator = Object("website_generator",
		Field{Name: "description", Kind: Text, MinLen: minDescriptionLn, Message: DetailedDescMsg},
		Field{Name: "framework", Kind: Text, Enum: []string{FrameworkReact, FrameworkVue, FrameworkHTML, FrameworkNextJS}, Default: FrameworkReact},
		Field{Name: "websiteType", Kind: Text, Enum: []string{TypeECommerce, TypePortfolio, TypeBlog, TypeBusiness, TypeLandingPage}, Default: TypeBusiness},
		Field{Name: "includeDatabase", Kind: Boolean, Default: false},
		Field{Name: "seoOptimization", Kind: Boolean, Default: true},
	)

	CodeAssistance = Object("code_assistance",
		Field{Name: "code", Kind: Text, MinLen: 1},
		Field{Name: "question", Kind: Text, MinLen: 1},
	)
)

func ParseInsertUser(input any) (models.InsertUser, error) {
	v, err := InsertUser.Validate(input)
	if err != nil {
		return models.InsertUser{}, err
	}
	return models.InsertUser{Username: v.String("username"), Password: v.String("password")}, nil
}

func ParseInsertProject(input any) (models.InsertProject, error) {
	v, err := InsertProject.Validate(input)
	if err != nil {
		return models.InsertProject{}, err
	}
	return models.InsertProject{
		UserID:      v.Int("userId"),
		Name:        v.String("name"),
		Description: v.String("description"),
		HTML:        v.StringPtr("html"),
		CSS:         v.StringPtr("css"),
		JavaScript:  v.StringPtr("javascript"),
		Framework:   v.StringPtr("framework"),
		IsPublished: v.BoolPtr("isPublished"),
		Settings:    v.Document("settings"),
	}, nil
}

// ParseProjectChanges validates a partial project update and returns the
// column assignments it carries.
func ParseProjectChanges(input any) ([]Assignment, error) {
	v, err := UpdateProject.Validate(input)
	if err != nil {
		return nil, err
	}
	return UpdateProject.Assignments(v), nil
}

func ParseWebsiteGenerator(input any) (models.WebsiteGeneratorInput, error) {
	v, err := WebsiteGenerator.Validate(input)
	if err != nil {
		return models.WebsiteGeneratorInput{}, err
	}
	return models.WebsiteGeneratorInput{
		Description:     v.String("description"),
		Framework:       v.String("framework"),
		WebsiteType:     v.String("websiteType"),
		IncludeDatabase: v.Bool("includeDatabase"),
		SEOOptimization: v.Bool("seoOptimization"),
	}, nil
}

func ParseCodeAssistance(input any) (models.CodeAssistanceInput, error) {
	v, err := CodeAssistance.Validate(input)
	if err != nil {
		return models.CodeAssistanceInput{}, err
	}
	return models.CodeAssistanceInput{Code: v.String("code"), Question: v.String("question")}, nil
}
