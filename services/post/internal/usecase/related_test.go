package usecase

import (
	"testing"
	"time"

	"travel-journal/services/post/internal/entity"

	"github.com/stretchr/testify/assert"
)

var relatedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func communityPost(id string, tags, regions []string, likes int, age time.Duration) *entity.Post {
	return &entity.Post{
		ID:         id,
		Category:   entity.CategoryCommunity,
		Tags:       tags,
		Community:  &entity.CommunityDetails{Regions: regions},
		Engagement: entity.Engagement{Likes: likes},
		CreatedAt:  relatedNow.Add(-age),
	}
}

func TestScoreRelated_Formula(t *testing.T) {
	ref := communityPost("ref", []string{"beach", "food"}, []string{"제주"}, 0, 0)
	candidate := &entity.Post{
		ID:         "c1",
		Category:   entity.CategoryCommunity,
		Tags:       []string{"beach", "food", "night"},
		Community:  &entity.CommunityDetails{Regions: []string{"제주", "부산"}},
		Engagement: entity.Engagement{Likes: 10, Views: 100, SavedCount: 10},
		CreatedAt:  relatedNow.Add(-10 * 24 * time.Hour),
	}

	got := ScoreRelated(ref, []*entity.Post{candidate}, 4, relatedNow)

	// 10*2 + 8*1 + 0.5*10 + 0.1*100 + 0.3*10 + (30-10)*0.5
	assert.Len(t, got, 1)
	assert.InDelta(t, 56.0, got[0].Relevance, 1e-9)
}

func TestScoreRelated_ExcludesReferenceAndCaps(t *testing.T) {
	ref := communityPost("ref", nil, nil, 0, 0)
	candidates := []*entity.Post{ref}
	for i := 0; i < 8; i++ {
		candidates = append(candidates, communityPost(string(rune('a'+i)), nil, nil, i, 40*24*time.Hour))
	}

	got := ScoreRelated(ref, candidates, 4, relatedNow)

	assert.Len(t, got, 4)
	for _, r := range got {
		assert.NotEqual(t, "ref", r.ID)
	}
	assert.Equal(t, "h", got[0].ID)
}

func TestScoreRelated_MissingArrays(t *testing.T) {
	ref := &entity.Post{ID: "ref", Category: entity.CategoryCommunity, CreatedAt: relatedNow}
	candidate := &entity.Post{ID: "c", Category: entity.CategoryTravelCourses, Travel: &entity.TravelDetails{}, CreatedAt: relatedNow}

	assert.NotPanics(t, func() {
		got := ScoreRelated(ref, []*entity.Post{candidate, nil}, 0, relatedNow)
		assert.Len(t, got, 1)
		assert.InDelta(t, 15.0, got[0].Relevance, 1e-9)
	})
}

func TestScoreRelated_OldPostsGetNoFreshness(t *testing.T) {
	ref := communityPost("ref", nil, nil, 0, 0)
	old := communityPost("old", nil, nil, 0, 90*24*time.Hour)

	got := ScoreRelated(ref, []*entity.Post{old}, 4, relatedNow)
	assert.Equal(t, 0.0, got[0].Relevance)
}

func TestScoreRelated_FractionalAge(t *testing.T) {
	ref := communityPost("ref", nil, nil, 0, 0)
	candidate := communityPost("c", nil, nil, 0, 36*time.Hour)

	got := ScoreRelated(ref, []*entity.Post{candidate}, 4, relatedNow)

	// (30-1.5)*0.5
	assert.Len(t, got, 1)
	assert.InDelta(t, 14.25, got[0].Relevance, 1e-9)
}
