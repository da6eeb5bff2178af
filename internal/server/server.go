// Package server exposes the analysis engine over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/solvetrace/solvetrace/internal/engine"
	"github.com/solvetrace/solvetrace/internal/store"
)

const (
	defaultPeriodDays   = 30
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

// Analyzer runs an analysis for one user.
type Analyzer interface {
	Analyze(ctx context.Context, userID string, periodDays int) engine.Result
}

// HistorySource reads persisted analyses.
type HistorySource interface {
	AnalysisHistory(userID string, limit int) ([]store.AnalysisRecord, error)
}

// Server wires the HTTP routes to the engine and the store.
type Server struct {
	analyzer Analyzer
	history  HistorySource
	version  string
	log      *zap.Logger
}

// New builds a server. log may be nil.
func New(analyzer Analyzer, history HistorySource, version string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{analyzer: analyzer, history: history, version: version, log: log}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", s.handleHealth)
		analysis := v1.Group("/analysis")
		{
			analysis.POST("/analyze/:userId", s.handleAnalyze)
			analysis.GET("/results/:userId", s.handleResults)
		}
	}

	return r
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info("http server listening", zap.String("addr", addr))
	return s.Router().Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "UP",
		"service":   "solvetrace",
		"version":   s.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	userID := c.Param("userId")

	periodDays := defaultPeriodDays
	if raw := c.Query("periodDays"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "periodDays must be an integer")
			return
		}
		periodDays = v
	}

	result := s.analyzer.Analyze(c.Request.Context(), userID, periodDays)
	switch result.Outcome {
	case engine.Success:
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Analysis completed successfully",
			"data": gin.H{
				"analysisId":      result.Record.ID,
				"summary":         result.Summary,
				"recommendations": result.Recommendations,
				"scores": gin.H{
					"initialApproachRating": result.Record.ApproachRating,
					"codeQualityScore":      result.Record.QualityScore,
				},
			},
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	case engine.Rejected:
		errorResponse(c, http.StatusBadRequest, result.Reason)
	default:
		s.log.Error("analysis failed",
			zap.String("user_id", userID),
			zap.String("outcome", result.Outcome.String()),
			zap.String("reason", result.Reason))
		errorResponse(c, http.StatusInternalServerError, "analysis failed")
	}
}

func (s *Server) handleResults(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		errorResponse(c, http.StatusBadRequest, "user ID cannot be empty")
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			errorResponse(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = v
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := s.history.AnalysisHistory(userID, limit)
	if err != nil {
		s.log.Error("fetching analysis history failed",
			zap.String("user_id", userID), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "fetching analysis history failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"data":      analysisViews(records),
		"count":     len(records),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":    "error",
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// analysisView is the API shape of a stored analysis; the JSON columns are
// expanded into real objects.
type analysisView struct {
	ID                  int64          `json:"id"`
	UserID              string         `json:"userId"`
	AnalysisDate        string         `json:"analysisDate"`
	PeriodDays          int            `json:"periodDays"`
	TotalProblems       int            `json:"totalProblems"`
	TotalRuns           int            `json:"totalRuns"`
	TotalSubmits        int            `json:"totalSubmits"`
	UniqueLanguages     int            `json:"uniqueLanguages"`
	MostUsedLanguage    string         `json:"mostUsedLanguage"`
	ProblemCategories   map[string]int `json:"problemCategories"`
	ApproachRating      float64        `json:"initialApproachRating"`
	QualityScore        float64        `json:"codeQualityScore"`
	ProblemSolvingStyle string         `json:"problemSolvingStyle"`
	Strengths           string         `json:"strengths"`
	Weaknesses          string         `json:"weaknesses"`
	Suggestions         any            `json:"suggestions"`
	AIModelUsed         string         `json:"aiModelUsed"`
	Confidence          float64        `json:"confidence"`
	CreatedAt           string         `json:"createdAt"`
}

func analysisViews(records []store.AnalysisRecord) []analysisView {
	views := make([]analysisView, 0, len(records))
	for _, r := range records {
		var categories map[string]int
		_ = json.Unmarshal([]byte(r.ProblemCategoriesJSON), &categories)
		var suggestions any
		_ = json.Unmarshal([]byte(r.SuggestionsJSON), &suggestions)

		views = append(views, analysisView{
			ID:                  r.ID,
			UserID:              r.UserID,
			AnalysisDate:        r.AnalysisDate.Format("2006-01-02"),
			PeriodDays:          r.PeriodDays,
			TotalProblems:       r.TotalProblems,
			TotalRuns:           r.TotalRuns,
			TotalSubmits:        r.TotalSubmits,
			UniqueLanguages:     r.UniqueLanguages,
			MostUsedLanguage:    r.MostUsedLanguage,
			ProblemCategories:   categories,
			ApproachRating:      r.ApproachRating,
			QualityScore:        r.QualityScore,
			ProblemSolvingStyle: r.ProblemSolvingStyle,
			Strengths:           r.Strengths,
			Weaknesses:          r.Weaknesses,
			Suggestions:         suggestions,
			AIModelUsed:         r.AIModelUsed,
			Confidence:          r.Confidence,
			CreatedAt:           r.CreatedAt.Format(time.RFC3339),
		})
	}
	return views
}
