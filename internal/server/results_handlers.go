package server

import (
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"lifepath/internal/catalog"
	"lifepath/internal/habits"
	"lifepath/internal/scoring"
	"lifepath/internal/share"
)

func (s *Server) handleCatalog(c *gin.Context) {
	cat := s.sessions.Catalog()
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data: CatalogResponse{
			Questions: cat.Questions(),
			Rules:     cat.Rules(),
		},
	})
}

// parsePillarParam accepts pillar names in any casing, since they arrive
// as URL path segments.
func parsePillarParam(raw string) (catalog.Pillar, error) {
	if p, err := catalog.ParsePillar(raw); err == nil {
		return p, nil
	}
	if raw == "" {
		return "", errors.New("empty pillar")
	}
	title := strings.ToUpper(raw[:1]) + strings.ToLower(raw[1:])
	return catalog.ParsePillar(title)
}

func (s *Server) handleFuture(c *gin.Context) {
	pillar, err := parsePillarParam(c.Param("pillar"))
	if err != nil || !pillar.Scored() {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Error:   "unknown pillar: " + c.Param("pillar"),
		})
		return
	}
	cat := s.sessions.Catalog()
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data: FutureResponse{
			Pillar:      pillar,
			DeepDive:    cat.DeepDive(pillar),
			Maintenance: cat.Maintenance(pillar),
		},
	})
}

// handlePulseCards deals the card deck. A seed query parameter makes the
// shuffle reproducible; without one the deck order varies per request.
func (s *Server) handlePulseCards(c *gin.Context) {
	cards := s.sessions.Catalog().Cards()
	if raw := c.Query("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.fail(c, http.StatusBadRequest, err)
			return
		}
		cards = scoring.Shuffle(cards, rand.New(rand.NewSource(seed)))
	} else {
		cards = scoring.Shuffle(cards, rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: cards})
}

func (s *Server) handleScore(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	results := s.scorer.Score(c.Request.Context(), req.Decisions, s.sessions.Catalog().Cards())
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: results})
}

func (s *Server) handleCreateShare(c *gin.Context) {
	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	for pillar := range req.Scores {
		if !pillar.Scored() {
			c.JSON(http.StatusBadRequest, APIResponse{
				Success: false,
				Error:   "unknown pillar: " + string(pillar),
			})
			return
		}
	}
	rec, err := s.shares.Create(c.Request.Context(), req.Scores, req.Insights)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	s.metrics.sharesCreated.Inc()
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: rec})
}

func (s *Server) handleGetShare(c *gin.Context) {
	rec, err := s.shares.Get(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, share.ErrNotFound) {
			s.fail(c, http.StatusNotFound, err)
			return
		}
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: rec})
}

func (s *Server) handleRecordHabit(c *gin.Context) {
	var req HabitRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	weeks := make([]habits.WeekGrade, 0, len(req.StreakWeeks))
	for _, w := range req.StreakWeeks {
		weeks = append(weeks, habits.WeekGrade(w))
	}
	habit := habits.Habit{
		Identity:        req.Identity,
		System:          req.System,
		TargetFrequency: habits.ExtractTargetFrequency(req.System),
		StreakWeeks:     weeks,
		CurrentStreak:   req.CurrentStreak,
		Established:     req.Established,
	}
	updated := habits.RecordWeek(habit, req.Completions, s.clock())
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: updated})
}
