package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifepath/internal/catalog"
	"lifepath/internal/flow"
)

func (s *Server) handleGetSession(c *gin.Context) {
	snap, err := s.sessions.Snapshot(c.Request.Context(), identity(c))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: snap})
}

func (s *Server) handleAnswer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	if _, ok := s.sessions.Catalog().Question(req.QuestionID); !ok {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Error:   "unknown question: " + req.QuestionID,
		})
		return
	}
	snap, err := s.sessions.Dispatch(c.Request.Context(), identity(c), flow.AnswerQuestion{
		QuestionID: req.QuestionID,
		Value:      req.Value,
	})
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: snap})
}

func (s *Server) handleSetPriorities(c *gin.Context) {
	var req PrioritiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	priorities := catalog.Priorities{
		MainFocus:      req.MainFocus,
		SecondaryFocus: req.SecondaryFocus,
		Maintenance:    req.Maintenance,
	}
	if err := priorities.Validate(); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	snap, err := s.sessions.Dispatch(c.Request.Context(), identity(c), flow.SetPriorities{Priorities: priorities})
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: snap})
}

func (s *Server) handleNext(c *gin.Context)     { s.dispatch(c, flow.Next{}) }
func (s *Server) handlePrevious(c *gin.Context) { s.dispatch(c, flow.Previous{}) }
func (s *Server) handleRestart(c *gin.Context)  { s.dispatch(c, flow.Restart{}) }
func (s *Server) handleReset(c *gin.Context)    { s.dispatch(c, flow.Reset{}) }

func (s *Server) dispatch(c *gin.Context, action flow.Action) {
	snap, err := s.sessions.Dispatch(c.Request.Context(), identity(c), action)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: snap})
}

func (s *Server) handleComplete(c *gin.Context) {
	if err := s.sessions.Complete(c.Request.Context(), identity(c)); err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	s.metrics.sessionsCompleted.Inc()
	c.JSON(http.StatusOK, APIResponse{Success: true})
}

func (s *Server) handleProgress(c *gin.Context) {
	snap, err := s.sessions.Snapshot(c.Request.Context(), identity(c))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: snap.Progress})
}

func (s *Server) handleFlow(c *gin.Context) {
	snap, err := s.sessions.Snapshot(c.Request.Context(), identity(c))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: snap.Flow})
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, APIResponse{Success: false, Error: err.Error()})
}
