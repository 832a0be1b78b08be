package persistent

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepository(t *testing.T) (CourseRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewCourseRepository(db), mock
}

func TestCountOwned(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "travel_courses" WHERE course_id = $1 AND user_id = $2`)).
		WithArgs("course-1", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.CountOwned(context.Background(), "course-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOwned_ScopesDaysToOwner(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "daily_courses" WHERE travel_course_id IN \(SELECT "?course_id"? FROM "travel_courses" WHERE course_id = \$1 AND user_id = \$2\)`).
		WithArgs("course-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "travel_courses" WHERE course_id = $1 AND user_id = $2`)).
		WithArgs("course-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteOwned(context.Background(), "course-1", "user-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOwned_NotOwnedIsNoop(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "daily_courses"`)).
		WithArgs("course-1", "intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "travel_courses"`)).
		WithArgs("course-1", "intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.NoError(t, repo.DeleteOwned(context.Background(), "course-1", "intruder"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOwned_RollsBackOnFailure(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "daily_courses"`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "travel_courses"`)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	assert.Error(t, repo.DeleteOwned(context.Background(), "course-1", "user-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDailyCoursesByID(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "daily_courses" WHERE daily_course_id IN ($1,$2)`)).
		WithArgs("day-1", "day-2").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.DeleteDailyCoursesByID(context.Background(), []string{"day-1", "day-2"}))
	require.NoError(t, repo.DeleteDailyCoursesByID(context.Background(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCourse(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "travel_courses" WHERE course_id = $1`)).
		WithArgs("course-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteCourse(context.Background(), "course-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
