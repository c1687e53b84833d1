package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sasamoahkb/mood-tracker-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMoodRequest() models.CreateMoodEntryRequest {
	return models.CreateMoodEntryRequest{
		Mood:       "happy",
		MoodRating: fptr(8),
		Factors: []models.MoodFactorRequest{
			{FactorID: fptr(3), Intensity: fptr(6)},
		},
	}
}

func TestValidateMoodEntry(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.CreateMoodEntryRequest)
		want   string
	}{
		{"valid", func(r *models.CreateMoodEntryRequest) {}, ""},
		{"blank mood", func(r *models.CreateMoodEntryRequest) { r.Mood = "   " }, "Mood is required and must be a non-empty string"},
		{"missing rating", func(r *models.CreateMoodEntryRequest) { r.MoodRating = nil }, "Mood rating must be an integer between 1 and 10"},
		{"rating too low", func(r *models.CreateMoodEntryRequest) { r.MoodRating = fptr(0) }, "Mood rating must be an integer between 1 and 10"},
		{"rating too high", func(r *models.CreateMoodEntryRequest) { r.MoodRating = fptr(11) }, "Mood rating must be an integer between 1 and 10"},
		{"rating not integer", func(r *models.CreateMoodEntryRequest) { r.MoodRating = fptr(5.5) }, "Mood rating must be an integer between 1 and 10"},
		{"too many factors", func(r *models.CreateMoodEntryRequest) {
			r.Factors = []models.MoodFactorRequest{
				{FactorID: fptr(1), Intensity: fptr(1)},
				{FactorID: fptr(2), Intensity: fptr(2)},
				{FactorID: fptr(3), Intensity: fptr(3)},
				{FactorID: fptr(4), Intensity: fptr(4)},
			}
		}, "You can only select up to 3 factors"},
		{"factor without id", func(r *models.CreateMoodEntryRequest) {
			r.Factors = []models.MoodFactorRequest{{Intensity: fptr(5)}}
		}, "Each factor must have a valid factor_id and intensity between 1 and 10"},
		{"factor intensity out of range", func(r *models.CreateMoodEntryRequest) {
			r.Factors = []models.MoodFactorRequest{{FactorID: fptr(1), Intensity: fptr(11)}}
		}, "Each factor must have a valid factor_id and intensity between 1 and 10"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validMoodRequest()
			tc.mutate(&req)
			assert.Equal(t, tc.want, validateMoodEntry(req))
		})
	}
}

func TestCreateMoodEntryInvalidInputSkipsStorage(t *testing.T) {
	svc := NewMoodService(nil) // 校验失败不会触碰数据库

	req := validMoodRequest()
	req.MoodRating = fptr(42)
	_, err := svc.CreateMoodEntry(1, req)
	require.NotNil(t, err)
	assert.Equal(t, ErrValidation, err.Kind)
}

func TestCreateMoodEntryCommitsEntryAndFactors(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMoodService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "mood_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"entry_id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "mood_factors"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	entry, err := svc.CreateMoodEntry(1, validMoodRequest())
	require.Nil(t, err)
	assert.Equal(t, uint(7), entry.EntryID)
	assert.Equal(t, uint(1), entry.UserID)
	assert.Equal(t, "happy", entry.Mood)
	assert.Equal(t, 8, entry.MoodRating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMoodEntryRollsBackOnFactorFailure(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMoodService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "mood_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"entry_id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "mood_factors"`).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	_, err := svc.CreateMoodEntry(1, validMoodRequest())
	require.NotNil(t, err)
	assert.Equal(t, ErrStorage, err.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 10))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 2, totalPages(11, 10))
	assert.Equal(t, 2, totalPages(15, 10))
}

func TestGetMoodEntriesPagination(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMoodService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "mood_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(15))

	rows := sqlmock.NewRows([]string{"entry_id", "user_id", "mood", "mood_rating", "notes", "location", "timestamp"})
	for i := 0; i < 5; i++ {
		rows.AddRow(i+11, 1, "happy", 8, "", "", time.Now())
	}
	mock.ExpectQuery(`SELECT \* FROM "mood_entries"`).WillReturnRows(rows)

	entries, pagination, err := svc.GetMoodEntriesByUserID(1, models.MoodHistoryFilters{Page: 2, Limit: 10})
	require.Nil(t, err)
	assert.Len(t, entries, 5)
	assert.Equal(t, int64(15), pagination.TotalItems)
	assert.Equal(t, 2, pagination.TotalPages)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 10, pagination.PageSize)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMoodEntriesCountMatchesFilters(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMoodService(db)

	// 计数和取页必须带同一组过滤条件，否则total_pages和结果集会打架
	predicates := `WHERE user_id = \$1 AND timestamp >= \$2 AND timestamp <= \$3 AND mood_rating = \$4 AND LOWER\(mood\) = LOWER\(\$5\)`
	mock.ExpectQuery(`SELECT count\(\*\) FROM "mood_entries" ` + predicates).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "mood_entries" `+predicates+` ORDER BY timestamp DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"entry_id", "user_id", "mood", "mood_rating"}).
			AddRow(4, 1, "happy", 8))

	from := time.Now().Add(-48 * time.Hour)
	to := time.Now()
	rating := 8
	entries, pagination, err := svc.GetMoodEntriesByUserID(1, models.MoodHistoryFilters{
		From:   &from,
		To:     &to,
		Rating: &rating,
		Mood:   "Happy",
	})
	require.Nil(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, int64(1), pagination.TotalItems)
	assert.Equal(t, 1, pagination.TotalPages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMoodEntriesDefaults(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMoodService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "mood_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "mood_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"entry_id"}))

	entries, pagination, err := svc.GetMoodEntriesByUserID(1, models.MoodHistoryFilters{})
	require.Nil(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 1, pagination.CurrentPage)
	assert.Equal(t, 10, pagination.PageSize)
}

func TestUpdateMoodEntryNotOwned(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMoodService(db)

	// WHERE同时限定entry_id和user_id，别人的记录等同于不存在
	mock.ExpectQuery(`SELECT \* FROM "mood_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"entry_id"}))

	_, err := svc.UpdateMoodEntry(1, 99, models.UpdateMoodEntryRequest{Mood: sptr("sad")})
	require.NotNil(t, err)
	assert.Equal(t, ErrNotFound, err.Kind)
	assert.Equal(t, "Mood entry not found or not authorized", err.Message)
}

func TestUpdateMoodEntryNoFields(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMoodService(db)

	mock.ExpectQuery(`SELECT \* FROM "mood_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"entry_id", "user_id", "mood", "mood_rating"}).
			AddRow(5, 1, "happy", 8))

	_, err := svc.UpdateMoodEntry(1, 5, models.UpdateMoodEntryRequest{})
	require.NotNil(t, err)
	assert.Equal(t, ErrValidation, err.Kind)
	assert.Equal(t, "No valid fields to update", err.Message)
}

func TestUpdateMoodEntryRevalidatesRating(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMoodService(db)

	mock.ExpectQuery(`SELECT \* FROM "mood_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"entry_id", "user_id", "mood", "mood_rating"}).
			AddRow(5, 1, "happy", 8))

	_, err := svc.UpdateMoodEntry(1, 5, models.UpdateMoodEntryRequest{MoodRating: fptr(0)})
	require.NotNil(t, err)
	assert.Equal(t, "Mood rating must be an integer between 1 and 10", err.Message)
}

func TestDeleteMoodEntryIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMoodService(db)

	// 已删除的记录再删一次得到NotFound而不是崩溃
	mock.ExpectExec(`DELETE FROM "mood_entries"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.DeleteMoodEntry(1, 5)
	require.NotNil(t, err)
	assert.Equal(t, ErrNotFound, err.Kind)
	assert.Equal(t, "Mood entry not found or not authorized", err.Message)
}
