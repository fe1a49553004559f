// Package divisionqueries provides read-only queries that assemble
// division pages: a division with its paginated relations, per-division
// counts, and flat cross-division listings annotated with division titles.
package divisionqueries

import (
	"context"

	divisionstore "github.com/cerc-club/clubsite/internal/app/store/divisions"
	"github.com/cerc-club/clubsite/internal/app/system/paging"
	"github.com/cerc-club/clubsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when the requested division slug does not exist.
var ErrNotFound = divisionstore.ErrNotFound

// DetailOptions selects the sort direction and per-relation pages for a
// division detail query. Each relation pages independently; Sort applies
// to projects and achievements. MembersSort orders the members relation:
// 0 falls back to ascending so the public roster keeps a stable
// oldest-first order, while the admin manager passes its sort control
// through.
type DetailOptions struct {
	Sort             int // 1 ascending, -1 descending (CreatedAt)
	MembersSort      int // -1 descending; anything else ascending
	ProjectsPage     int // 1-based
	MembersPage      int // 1-based
	AchievementsPage int // 1-based
}

// Detail is a division together with one page of each relation and the
// relation totals needed to render pagination controls.
type Detail struct {
	Division models.Division

	Projects      []models.Project
	ProjectsTotal int64

	Members      []models.Member
	MembersTotal int64

	Achievements      []models.Achievement
	AchievementsTotal int64

	TechStacks []models.TechStack
}

// Counts holds the number of records attached to a division.
type Counts struct {
	Projects     int64
	Members      int64
	Achievements int64
	TechStacks   int64
}

// DivisionWithCounts pairs a division with its relation counts.
type DivisionWithCounts struct {
	models.Division
	Counts Counts
}

// BySlug loads a division by slug with one page of each relation.
func BySlug(ctx context.Context, db *mongo.Database, slug string, opts DetailOptions) (Detail, error) {
	var detail Detail

	division, err := divisionstore.New(db).GetBySlug(ctx, slug)
	if err != nil {
		return detail, err
	}
	detail.Division = division

	sort := opts.Sort
	if sort != 1 {
		sort = -1
	}
	memberSort := opts.MembersSort
	if memberSort != -1 {
		memberSort = 1
	}
	byDivision := bson.M{"division_id": division.ID}

	// _id breaks ties on created_at so page boundaries stay stable when
	// timestamps collide.
	projOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: sort}, {Key: "_id", Value: sort}}).
		SetSkip(paging.Skip(opts.ProjectsPage)).
		SetLimit(paging.Limit())
	if err := findInto(ctx, db, "projects", byDivision, projOpts, &detail.Projects); err != nil {
		return detail, err
	}

	memberOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: memberSort}, {Key: "_id", Value: memberSort}}).
		SetSkip(paging.Skip(opts.MembersPage)).
		SetLimit(paging.Limit())
	if err := findInto(ctx, db, "members", byDivision, memberOpts, &detail.Members); err != nil {
		return detail, err
	}

	achOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: sort}, {Key: "_id", Value: sort}}).
		SetSkip(paging.Skip(opts.AchievementsPage)).
		SetLimit(paging.Limit())
	if err := findInto(ctx, db, "achievements", byDivision, achOpts, &detail.Achievements); err != nil {
		return detail, err
	}

	tsOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if err := findInto(ctx, db, "tech_stacks", byDivision, tsOpts, &detail.TechStacks); err != nil {
		return detail, err
	}

	counts, err := CountsFor(ctx, db, division.ID)
	if err != nil {
		return detail, err
	}
	detail.ProjectsTotal = counts.Projects
	detail.MembersTotal = counts.Members
	detail.AchievementsTotal = counts.Achievements

	return detail, nil
}

// BySlugWithCounts loads a division by slug with relation counts but no
// relation documents. Used where only the header and tab badges render.
func BySlugWithCounts(ctx context.Context, db *mongo.Database, slug string) (DivisionWithCounts, error) {
	division, err := divisionstore.New(db).GetBySlug(ctx, slug)
	if err != nil {
		return DivisionWithCounts{}, err
	}
	counts, err := CountsFor(ctx, db, division.ID)
	if err != nil {
		return DivisionWithCounts{}, err
	}
	return DivisionWithCounts{Division: division, Counts: counts}, nil
}

// CountsFor returns the relation counts for one division.
func CountsFor(ctx context.Context, db *mongo.Database, divisionID primitive.ObjectID) (Counts, error) {
	var counts Counts
	filter := bson.M{"division_id": divisionID}

	var err error
	if counts.Projects, err = db.Collection("projects").CountDocuments(ctx, filter); err != nil {
		return counts, err
	}
	if counts.Members, err = db.Collection("members").CountDocuments(ctx, filter); err != nil {
		return counts, err
	}
	if counts.Achievements, err = db.Collection("achievements").CountDocuments(ctx, filter); err != nil {
		return counts, err
	}
	if counts.TechStacks, err = db.Collection("tech_stacks").CountDocuments(ctx, filter); err != nil {
		return counts, err
	}
	return counts, nil
}

// ListWithCounts returns all divisions ordered by title with their
// relation counts. Drives the divisions index and the admin dashboard.
func ListWithCounts(ctx context.Context, db *mongo.Database) ([]DivisionWithCounts, error) {
	divisions, err := divisionstore.New(db).ListByTitle(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]DivisionWithCounts, 0, len(divisions))
	for _, d := range divisions {
		counts, err := CountsFor(ctx, db, d.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, DivisionWithCounts{Division: d, Counts: counts})
	}
	return out, nil
}

func findInto(ctx context.Context, db *mongo.Database, collection string, filter bson.M, opts *options.FindOptions, dest any) error {
	cur, err := db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, dest)
}
