// internal/app/store/queries/divisionqueries/listings.go
package divisionqueries

import (
	"context"

	"github.com/cerc-club/clubsite/internal/app/system/paging"
	"github.com/cerc-club/clubsite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProjectListItem is a project annotated with its division's title for
// flat cross-division listings.
type ProjectListItem struct {
	models.Project `bson:",inline"`
	DivisionTitle  string `bson:"division_title"`
}

// ProjectListResult contains one page of a flat project listing.
type ProjectListResult struct {
	Items []ProjectListItem
	Total int64
}

// MemberListItem is a member annotated with their division's title.
type MemberListItem struct {
	models.Member `bson:",inline"`
	DivisionTitle string `bson:"division_title"`
}

// MemberListResult contains one page of a flat member listing.
type MemberListResult struct {
	Items []MemberListItem
	Total int64
}

// AchievementListItem is an achievement annotated with its division's title.
type AchievementListItem struct {
	models.Achievement `bson:",inline"`
	DivisionTitle      string `bson:"division_title"`
}

// AchievementListResult contains one page of a flat achievement listing.
type AchievementListResult struct {
	Items []AchievementListItem
	Total int64
}

// TechStackListItem is a tech stack entry annotated with its division's title.
type TechStackListItem struct {
	models.TechStack `bson:",inline"`
	DivisionTitle    string `bson:"division_title"`
}

// ListProjects returns one page of all projects across divisions,
// sorted by creation time, each annotated with its division title.
func ListProjects(ctx context.Context, db *mongo.Database, sort, page int) (ProjectListResult, error) {
	var result ProjectListResult
	agg, err := runListingPipeline(ctx, db, "projects", sort, page, true)
	if err != nil {
		return result, err
	}
	result.Total = agg.total
	if err := decodeAll(agg.data, &result.Items); err != nil {
		return result, err
	}
	return result, nil
}

// ListMembers returns one page of all members across divisions, sorted
// by creation time, each annotated with their division title.
func ListMembers(ctx context.Context, db *mongo.Database, sort, page int) (MemberListResult, error) {
	var result MemberListResult
	agg, err := runListingPipeline(ctx, db, "members", sort, page, true)
	if err != nil {
		return result, err
	}
	result.Total = agg.total
	if err := decodeAll(agg.data, &result.Items); err != nil {
		return result, err
	}
	return result, nil
}

// ListAchievements returns one page of all achievements across divisions,
// sorted by creation time, each annotated with its division title.
func ListAchievements(ctx context.Context, db *mongo.Database, sort, page int) (AchievementListResult, error) {
	var result AchievementListResult
	agg, err := runListingPipeline(ctx, db, "achievements", sort, page, true)
	if err != nil {
		return result, err
	}
	result.Total = agg.total
	if err := decodeAll(agg.data, &result.Items); err != nil {
		return result, err
	}
	return result, nil
}

// ListTechStacks returns all tech stack entries across divisions, newest
// first, each annotated with its division title. The tech stack page is
// not paginated.
func ListTechStacks(ctx context.Context, db *mongo.Database) ([]TechStackListItem, error) {
	agg, err := runListingPipeline(ctx, db, "tech_stacks", -1, 0, false)
	if err != nil {
		return nil, err
	}
	var items []TechStackListItem
	if err := decodeAll(agg.data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type listingResult struct {
	total int64
	data  []bson.Raw
}

// runListingPipeline runs a $facet pipeline that produces the total count
// and one sorted page in a single round trip, joining division titles
// through $lookup.
func runListingPipeline(ctx context.Context, db *mongo.Database, collection string, sort, page int, paginate bool) (listingResult, error) {
	var result listingResult
	if sort != 1 {
		sort = -1
	}

	data := []bson.M{
		{"$sort": bson.M{"created_at": sort, "_id": sort}},
	}
	if paginate {
		data = append(data,
			bson.M{"$skip": paging.Skip(page)},
			bson.M{"$limit": paging.Limit()},
		)
	}
	data = append(data,
		bson.M{"$lookup": bson.M{
			"from":         "divisions",
			"localField":   "division_id",
			"foreignField": "_id",
			"as":           "division_doc",
		}},
		bson.M{"$addFields": bson.M{
			"division_title": bson.M{"$ifNull": bson.A{
				bson.M{"$arrayElemAt": bson.A{"$division_doc.title", 0}},
				"",
			}},
		}},
		bson.M{"$project": bson.M{"division_doc": 0}},
	)

	pipe := mongo.Pipeline{
		bson.D{{Key: "$facet", Value: bson.M{
			"totalCount": []bson.M{{"$count": "count"}},
			"data":       data,
		}}},
	}

	cur, err := db.Collection(collection).Aggregate(ctx, pipe)
	if err != nil {
		return result, err
	}
	defer cur.Close(ctx)

	var aggResult struct {
		TotalCount []struct {
			Count int64 `bson:"count"`
		} `bson:"totalCount"`
		Data []bson.Raw `bson:"data"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&aggResult); err != nil {
			return result, err
		}
	}
	if err := cur.Err(); err != nil {
		return result, err
	}

	if len(aggResult.TotalCount) > 0 {
		result.total = aggResult.TotalCount[0].Count
	}
	result.data = aggResult.Data
	return result, nil
}

func decodeAll[T any](raws []bson.Raw, dest *[]T) error {
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var item T
		if err := bson.Unmarshal(raw, &item); err != nil {
			return err
		}
		out = append(out, item)
	}
	*dest = out
	return nil
}
