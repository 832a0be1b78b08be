package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"travel-journal/pkg/cache"
	"travel-journal/pkg/config"
	"travel-journal/pkg/database"
	"travel-journal/pkg/logger"
	"travel-journal/pkg/models"
	"travel-journal/pkg/s3"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedNamespace keeps seeded ids stable so reseeding is a no-op.
var seedNamespace = uuid.MustParse("6f1c2a8e-0d3b-4c53-9a59-7d0e8f3b2c11")

func seedID(name string) string {
	return uuid.NewSHA1(seedNamespace, []byte(name)).String()
}

type point struct {
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Trans string  `json:"trans"`
}

type regionCities struct {
	Region string   `json:"region"`
	Cities []string `json:"cities"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithService("seed")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Warn("S3 unavailable, posts are seeded without images: %v", err)
		s3Client = nil
	}

	ctx := context.Background()
	if err := seedDatabase(ctx, db, s3Client, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err == nil {
		if err := cache.NewRedisCache(redisClient).InvalidatePrefix(ctx, cache.FeedPrefix); err != nil {
			log.Warn("Failed to invalidate feed cache: %v", err)
		}
		redisClient.Close()
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(ctx context.Context, db *gorm.DB, s3Client *s3.Client, log *logger.Logger) error {
	db = db.WithContext(ctx)
	now := time.Now()

	profiles := []models.UserProfile{
		{UserID: seedID("user:minji"), Name: "민지", IsAdmin: true},
		{UserID: seedID("user:junho"), Name: "준호"},
		{UserID: seedID("user:seoyeon"), Name: "서연"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&profiles).Error; err != nil {
		return fmt.Errorf("failed to create profiles: %w", err)
	}
	log.Info("Seeded %d profiles", len(profiles))

	course, err := seedCourse(db, profiles[0].UserID, now)
	if err != nil {
		return err
	}

	imageURL := ""
	if s3Client != nil {
		imageURL, err = uploadCover(ctx, s3Client, profiles[0].UserID)
		if err != nil {
			log.Warn("Failed to upload cover image: %v", err)
		}
	}

	posts := []models.Post{
		{
			ID:             seedID("post:jeju-east"),
			UserID:         profiles[0].UserID,
			Title:          "제주 동쪽 2박 3일",
			Content:        "성산일출봉에서 시작해서 우도까지 버스로 돌았어요.",
			ImageURL:       imageURL,
			Category:       models.CategoryTravelCourses,
			Tags:           pq.StringArray{"제주", "버스여행"},
			Region:         pq.StringArray{"서귀포시", "제주시"},
			Transportation: pq.StringArray{"bus", "walk"},
			TravelCourseID: &course.ID,
			Likes:          12,
			SavedCount:     5,
			CreatedAt:      now.Add(-48 * time.Hour),
		},
		{
			ID:             seedID("post:gangneung"),
			UserID:         profiles[1].UserID,
			Title:          "강릉 당일치기",
			Content:        "KTX 타고 안목해변 카페거리까지.",
			Category:       models.CategoryTravelCourses,
			Tags:           pq.StringArray{"강릉", "카페"},
			Region:         pq.StringArray{"강릉시"},
			Transportation: pq.StringArray{"train", "walk"},
			Likes:          7,
			SavedCount:     9,
			CreatedAt:      now.Add(-72 * time.Hour),
		},
		{
			ID:        seedID("post:community-udo"),
			UserID:    profiles[2].UserID,
			Title:     "우도 배편 시간 아시는 분?",
			Content:   "10월 기준 첫 배 시간이 궁금해요.",
			Category:  models.CategoryCommunity,
			Region:    pq.StringArray{"제주시"},
			Likes:     3,
			CreatedAt: now.Add(-5 * time.Hour),
		},
		{
			ID:            seedID("post:yoiki-seongsan"),
			UserID:        profiles[0].UserID,
			Title:         "성산 근처 아침 식당",
			Content:       "해장국 맛집 세 곳 정리.",
			Category:      models.CategoryCommunity,
			Region:        pq.StringArray{"서귀포시"},
			Yoiki:         true,
			YoikiCategory: pq.StringArray{"food"},
			Likes:         20,
			SavedCount:    14,
			CreatedAt:     now.Add(-24 * time.Hour),
		},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&posts).Error; err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Info("Seeded %d posts", len(posts))

	announcement := models.Announcement{
		ID:      seedID("announcement:welcome"),
		Title:   "요이끼 오픈 안내",
		Content: "큐레이션 게시판이 열렸습니다.",
		Pinned:  true,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&announcement).Error; err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, now.Location()).AddDate(0, 0, 7)
	event := models.ScheduleEvent{
		ID:        seedID("schedule:meetup"),
		Title:     "정기 모임",
		Location:  "제주시청",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to create schedule event: %w", err)
	}

	return nil
}

func seedCourse(db *gorm.DB, userID string, now time.Time) (*models.TravelCourse, error) {
	regions, err := json.Marshal([]regionCities{{Region: "제주", Cities: []string{"서귀포시", "제주시"}}})
	if err != nil {
		return nil, err
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -10)
	course := &models.TravelCourse{
		ID:           seedID("course:jeju-east"),
		UserID:       userID,
		Title:        "제주 동쪽 2박 3일",
		TravelType:   models.TravelTypeReview,
		Region:       pq.StringArray{"서귀포시", "제주시"},
		RegionCities: datatypes.JSON(regions),
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 2),
	}

	days := [][]point{
		{
			{Name: "제주국제공항", X: 126.4929, Y: 33.5070, Trans: "bus"},
			{Name: "함덕해수욕장", X: 126.6695, Y: 33.5431, Trans: "bus"},
			{Name: "세화해변", X: 126.8601, Y: 33.5250, Trans: "walk"},
		},
		{
			{Name: "성산일출봉", X: 126.9425, Y: 33.4590, Trans: "walk"},
			{Name: "성산항", X: 126.9300, Y: 33.4740, Trans: "bus"},
		},
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(course).Error; err != nil {
			return err
		}
		for i, pts := range days {
			raw, err := json.Marshal(pts)
			if err != nil {
				return err
			}
			daily := models.DailyCourse{
				ID:             seedID(fmt.Sprintf("course:jeju-east:day:%d", i+1)),
				TravelCourseID: course.ID,
				Day:            i + 1,
				Points:         datatypes.JSON(raw),
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&daily).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	return course, nil
}

func uploadCover(ctx context.Context, s3Client *s3.Client, userID string) (string, error) {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://picsum.photos/1200/800", nil)
	if err != nil {
		return "", err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch cover image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image source returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return s3Client.UploadPostImage(ctx, userID, "seed_cover.jpg", "image/jpeg", bytes.NewReader(data))
}
