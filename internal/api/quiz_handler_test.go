package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillstudy/quill-api/internal/domain"
)

func TestQuizHandler_RecordAndList(t *testing.T) {
	t.Parallel()

	handler := NewQuizHandler(newTestService(t), testLogger())

	rr := httptest.NewRecorder()
	handler.RecordQuizResult(rr, newAuthedRequest(t, http.MethodPost, "/api/quizzes", "tenant-1",
		RecordQuizResultRequest{Subject: "golang", Score: 8, TotalQuestions: 10}, nil))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = httptest.NewRecorder()
	handler.ListQuizResults(rr, newAuthedRequest(t, http.MethodGet, "/api/quizzes", "tenant-1", nil, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var results []domain.QuizResult
	decodeBody(t, rr, &results)
	require.Len(t, results, 1)
	assert.Equal(t, 8, results[0].Score)
}

func TestQuizHandler_RejectsScoreAboveTotal(t *testing.T) {
	t.Parallel()

	handler := NewQuizHandler(newTestService(t), testLogger())

	rr := httptest.NewRecorder()
	handler.RecordQuizResult(rr, newAuthedRequest(t, http.MethodPost, "/api/quizzes", "tenant-1",
		RecordQuizResultRequest{Subject: "golang", Score: 11, TotalQuestions: 10}, nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
