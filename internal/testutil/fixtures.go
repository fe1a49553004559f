// internal/testutil/fixtures.go
package testutil

import (
	"testing"

	achievementstore "github.com/cerc-club/clubsite/internal/app/store/achievements"
	divisionstore "github.com/cerc-club/clubsite/internal/app/store/divisions"
	memberstore "github.com/cerc-club/clubsite/internal/app/store/members"
	projectstore "github.com/cerc-club/clubsite/internal/app/store/projects"
	techstackstore "github.com/cerc-club/clubsite/internal/app/store/techstacks"
	userstore "github.com/cerc-club/clubsite/internal/app/store/users"
	"github.com/cerc-club/clubsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// CreateDivision inserts a division with sensible defaults, applying any
// customization function first.
func CreateDivision(t *testing.T, db *mongo.Database, customize ...func(*models.Division)) models.Division {
	t.Helper()

	d := models.Division{
		Title:       "Software Engineering",
		Slug:        "software",
		Description: "Web, Mobile, and AI development.",
		IconName:    models.IconAppWindow,
		ColorClass:  "text-blue-600",
	}
	for _, fn := range customize {
		fn(&d)
	}

	ctx, cancel := TestContext()
	defer cancel()

	created, err := divisionstore.New(db).Create(ctx, d)
	if err != nil {
		t.Fatalf("CreateDivision: %v", err)
	}
	return created
}

// CreateProject inserts a project in the given division.
func CreateProject(t *testing.T, db *mongo.Database, divisionID primitive.ObjectID, customize ...func(*models.Project)) models.Project {
	t.Helper()

	p := models.Project{
		Title:       "Club Portal",
		Description: "Internal portal for club operations.",
		ImageURL:    "https://example.com/portal.png",
		Tags:        []string{"go", "mongodb"},
		DivisionID:  divisionID,
	}
	for _, fn := range customize {
		fn(&p)
	}

	ctx, cancel := TestContext()
	defer cancel()

	created, err := projectstore.New(db).Create(ctx, p)
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	return created
}

// CreateMember inserts a member in the given division.
func CreateMember(t *testing.T, db *mongo.Database, divisionID primitive.ObjectID, customize ...func(*models.Member)) models.Member {
	t.Helper()

	m := models.Member{
		Name:       "Ada Lovelace",
		Role:       "Division Lead",
		ImageURL:   "https://example.com/ada.png",
		DivisionID: divisionID,
	}
	for _, fn := range customize {
		fn(&m)
	}

	ctx, cancel := TestContext()
	defer cancel()

	created, err := memberstore.New(db).Create(ctx, m)
	if err != nil {
		t.Fatalf("CreateMember: %v", err)
	}
	return created
}

// CreateAchievement inserts an achievement in the given division.
func CreateAchievement(t *testing.T, db *mongo.Database, divisionID primitive.ObjectID, customize ...func(*models.Achievement)) models.Achievement {
	t.Helper()

	a := models.Achievement{
		Title:       "National Hackathon Winner",
		Date:        "March 2026",
		Description: "First place at the national collegiate hackathon.",
		Issuer:      "ACM",
		Winner:      "Team Alpha",
		ImageURL:    "https://example.com/trophy.png",
		DivisionID:  divisionID,
	}
	for _, fn := range customize {
		fn(&a)
	}

	ctx, cancel := TestContext()
	defer cancel()

	created, err := achievementstore.New(db).Create(ctx, a)
	if err != nil {
		t.Fatalf("CreateAchievement: %v", err)
	}
	return created
}

// CreateTechStack inserts a tech stack entry in the given division.
func CreateTechStack(t *testing.T, db *mongo.Database, divisionID primitive.ObjectID, customize ...func(*models.TechStack)) models.TechStack {
	t.Helper()

	ts := models.TechStack{
		Name:       "Go",
		ImageURL:   "https://example.com/go.png",
		WebsiteURL: "https://go.dev",
		DivisionID: divisionID,
	}
	for _, fn := range customize {
		fn(&ts)
	}

	ctx, cancel := TestContext()
	defer cancel()

	created, err := techstackstore.New(db).Create(ctx, ts)
	if err != nil {
		t.Fatalf("CreateTechStack: %v", err)
	}
	return created
}

// CreateAdminUser inserts an admin user with the given email and password.
func CreateAdminUser(t *testing.T, db *mongo.Database, email, password string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	u := models.User{
		Name:         "Test Admin",
		Email:        email,
		PasswordHash: string(hash),
		AuthMethod:   models.AuthMethodInternal,
	}

	ctx, cancel := TestContext()
	defer cancel()

	created, err := userstore.New(db).Create(ctx, u)
	if err != nil {
		t.Fatalf("CreateAdminUser: %v", err)
	}
	return created
}
