package schema

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/sitecraft-backend/internal/validate"
)

func violations(t *testing.T, err error) validate.Errs {
	t.Helper()
	errs, ok := validate.As(err)
	require.True(t, ok, "expected field violations, got %v", err)
	return errs
}

func TestInsertProject_StripsSystemFields(t *testing.T) {
	v, err := InsertProject.Validate(map[string]any{
		"id":          float64(99),
		"createdAt":   "2024-01-01T00:00:00Z",
		"userId":      float64(7),
		"name":        "Landing",
		"description": "A landing page",
		"extra":       true,
	})
	require.NoError(t, err)

	assert.False(t, v.Has("id"))
	assert.False(t, v.Has("createdAt"))
	assert.False(t, v.Has("extra"))
	assert.Equal(t, int32(7), v["userId"])
	assert.Equal(t, "html", v["framework"])
	assert.Equal(t, false, v["isPublished"])
	for k := range v {
		assert.Contains(t, InsertProject.Fields(), k)
	}
}

func TestInsertProject_RequiredAndTypes(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		field string
		code  string
	}{
		{"missing user", map[string]any{"name": "a", "description": "b"}, "userId", validate.CodeRequired},
		{"string user id", map[string]any{"userId": "1", "name": "a", "description": "b"}, "userId", validate.CodeInvalidType},
		{"fractional user id", map[string]any{"userId": 1.5, "name": "a", "description": "b"}, "userId", validate.CodeInvalidType},
		{"user id out of range", map[string]any{"userId": float64(3e9), "name": "a", "description": "b"}, "userId", validate.CodeOutOfRange},
		{"null name", map[string]any{"userId": 1, "name": nil, "description": "b"}, "name", validate.CodeInvalidType},
		{"settings not an object", map[string]any{"userId": 1, "name": "a", "description": "b", "settings": []any{1}}, "settings", validate.CodeInvalidType},
		{"published as string", map[string]any{"userId": 1, "name": "a", "description": "b", "isPublished": "yes"}, "isPublished", validate.CodeInvalidType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InsertProject.Validate(tt.input)
			errs := violations(t, err)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.code, errs[0].Code)
		})
	}
}

func TestInsertProject_ReportsAllViolationsInOrder(t *testing.T) {
	_, err := InsertProject.Validate(map[string]any{})
	errs := violations(t, err)
	require.Len(t, errs, 3)
	assert.Equal(t, []string{"userId", "name", "description"}, []string{errs[0].Field, errs[1].Field, errs[2].Field})
}

func TestInsertProject_DefaultsOnlyWhenAbsent(t *testing.T) {
	p, err := ParseInsertProject(map[string]any{
		"userId":      json.Number("3"),
		"name":        "Shop",
		"description": "Storefront",
		"framework":   nil,
		"isPublished": false,
		"html":        "",
	})
	require.NoError(t, err)
	assert.Nil(t, p.Framework)
	require.NotNil(t, p.IsPublished)
	assert.False(t, *p.IsPublished)
	require.NotNil(t, p.HTML)
	assert.Equal(t, "", *p.HTML)
	assert.Nil(t, p.CSS)
}

func TestInsertUser(t *testing.T) {
	u, err := ParseInsertUser(map[string]any{"username": "", "password": "x", "id": 4})
	require.NoError(t, err)
	assert.Equal(t, "", u.Username)
	assert.Equal(t, "x", u.Password)

	_, err = ParseInsertUser(map[string]any{"password": "x"})
	errs := violations(t, err)
	assert.True(t, errs.Has("username"))
}

func TestWebsiteGenerator_Description(t *testing.T) {
	_, err := ParseWebsiteGenerator(map[string]any{"description": "short"})
	errs := violations(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "description", errs[0].Field)
	assert.Equal(t, validate.CodeTooSmall, errs[0].Code)
	assert.Equal(t, DetailedDescMsg, errs[0].Msg)

	in, err := ParseWebsiteGenerator(map[string]any{"description": "a bakery website"})
	require.NoError(t, err)
	assert.Equal(t, "a bakery website", in.Description)
	assert.Equal(t, FrameworkReact, in.Framework)
	assert.Equal(t, TypeBusiness, in.WebsiteType)
	assert.False(t, in.IncludeDatabase)
	assert.True(t, in.SEOOptimization)
}

func TestWebsiteGenerator_DescriptionCountsUTF16Units(t *testing.T) {
	// five astral-plane emoji are ten UTF-16 code units
	in, err := ParseWebsiteGenerator(map[string]any{"description": "🚀🚀🚀🚀🚀"})
	require.NoError(t, err)
	assert.Equal(t, "🚀🚀🚀🚀🚀", in.Description)

	_, err = ParseWebsiteGenerator(map[string]any{"description": "ééééééééé"})
	assert.True(t, violations(t, err).Has("description"))
}

func TestWebsiteGenerator_Enumerations(t *testing.T) {
	_, err := ParseWebsiteGenerator(map[string]any{"description": "a bakery website", "framework": "Angular"})
	errs := violations(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "framework", errs[0].Field)
	assert.Equal(t, validate.CodeInvalidEnum, errs[0].Code)
	assert.True(t, strings.Contains(errs[0].Msg, "'Angular'"))

	_, err = ParseWebsiteGenerator(map[string]any{"description": "a bakery website", "websiteType": "Wiki"})
	assert.True(t, violations(t, err).Has("websiteType"))

	in, err := ParseWebsiteGenerator(map[string]any{
		"description":     "a bakery website",
		"framework":       FrameworkNextJS,
		"websiteType":     TypeLandingPage,
		"includeDatabase": true,
		"seoOptimization": false,
	})
	require.NoError(t, err)
	assert.Equal(t, FrameworkNextJS, in.Framework)
	assert.Equal(t, TypeLandingPage, in.WebsiteType)
	assert.True(t, in.IncludeDatabase)
	assert.False(t, in.SEOOptimization)
}

func TestWebsiteGenerator_NullIsNotAbsent(t *testing.T) {
	_, err := ParseWebsiteGenerator(map[string]any{"description": "a bakery website", "framework": nil, "seoOptimization": "no"})
	errs := violations(t, err)
	assert.True(t, errs.Has("framework"))
	assert.True(t, errs.Has("seoOptimization"))
}

func TestCodeAssistance(t *testing.T) {
	_, err := ParseCodeAssistance(map[string]any{"code": "", "question": "why?"})
	errs := violations(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "code", errs[0].Field)

	_, err = ParseCodeAssistance(map[string]any{})
	assert.Len(t, violations(t, err), 2)

	in, err := ParseCodeAssistance(map[string]any{"code": "x", "question": "y"})
	require.NoError(t, err)
	assert.Equal(t, "x", in.Code)
	assert.Equal(t, "y", in.Question)
}

func TestValidate_NonObjectInput(t *testing.T) {
	for _, in := range []any{nil, "text", []any{}, float64(1)} {
		_, err := CodeAssistance.Validate(in)
		errs := violations(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "", errs[0].Field)
		assert.Equal(t, validate.CodeInvalidType, errs[0].Code)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	shapes := []struct {
		shape Shape
		input map[string]any
	}{
		{InsertUser, map[string]any{"username": "ada", "password": "pw"}},
		{InsertProject, map[string]any{"userId": float64(1), "name": "n", "description": "d", "settings": map[string]any{"theme": "dark"}}},
		{InsertProject, map[string]any{"userId": 1, "name": "n", "description": "d", "framework": nil}},
		{WebsiteGenerator, map[string]any{"description": "portfolio for a painter"}},
		{CodeAssistance, map[string]any{"code": "x", "question": "y"}},
	}
	for _, s := range shapes {
		t.Run(s.shape.Name(), func(t *testing.T) {
			first, err := s.shape.Validate(s.input)
			require.NoError(t, err)
			second, err := s.shape.Validate(first)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestParseInsertProject_JSONRoundTrip(t *testing.T) {
	p, err := ParseInsertProject(map[string]any{
		"userId":      float64(2),
		"name":        "Blog",
		"description": "Personal blog",
		"css":         "body{}",
		"settings":    map[string]any{"layout": map[string]any{"cols": float64(2)}},
	})
	require.NoError(t, err)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	again, err := ParseInsertProject(decoded)
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestUpdateProject_Partial(t *testing.T) {
	changes, err := ParseProjectChanges(map[string]any{
		"id":       float64(1),
		"html":     "<p>hi</p>",
		"settings": nil,
	})
	require.NoError(t, err)
	assert.Equal(t, []Assignment{
		{Column: "html", Value: "<p>hi</p>"},
		{Column: "settings", Value: nil},
	}, changes)

	changes, err = ParseProjectChanges(map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, changes)

	_, err = ParseProjectChanges(map[string]any{"name": nil})
	assert.True(t, violations(t, err).Has("name"))
}

func TestPick_Errors(t *testing.T) {
	_, err := Projects.Pick("userId", "owner")
	assert.Error(t, err)

	_, err = Projects.Pick("name", "name")
	assert.Error(t, err)

	assert.Panics(t, func() { Users.MustPick("email") })
}

func TestDDL(t *testing.T) {
	assert.Equal(t, `CREATE TABLE IF NOT EXISTS users (
  id serial PRIMARY KEY,
  username text NOT NULL UNIQUE,
  password text NOT NULL
);`, Users.DDL())

	ddl := Projects.DDL()
	assert.Contains(t, ddl, "user_id integer NOT NULL REFERENCES users (id)")
	assert.Contains(t, ddl, "framework text DEFAULT 'html'")
	assert.Contains(t, ddl, "is_published boolean DEFAULT false")
	assert.Contains(t, ddl, "created_at timestamp DEFAULT now()")
	assert.Contains(t, ddl, "settings jsonb\n")
}

func TestColumns(t *testing.T) {
	assert.Equal(t, []string{
		"id", "user_id", "name", "description", "html", "css", "javascript",
		"framework", "is_published", "created_at", "settings",
	}, Projects.Columns())
}

func TestValidate_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in, err := ParseWebsiteGenerator(map[string]any{"description": "concurrent requests"})
			assert.NoError(t, err)
			assert.Equal(t, FrameworkReact, in.Framework)
		}()
	}
	wg.Wait()
}
