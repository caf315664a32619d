package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenloop/ecotrace/internal/engine"
	"github.com/greenloop/ecotrace/internal/personality"
	"github.com/greenloop/ecotrace/internal/story"
	"github.com/greenloop/ecotrace/internal/survey"
)

// errorResponse is the uniform error body.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId"`
}

// storyRequest wraps the answer record with optional display overrides for
// the story endpoint.
type storyRequest struct {
	Responses        survey.Responses `json:"responses"`
	NewHabits        []string         `json:"newHabits,omitempty"`
	ImpactEquivalent string           `json:"impactEquivalent,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleCalculate runs the emission pipeline over the posted answer record.
// Missing fields are valid (they degrade to zero contributions); only an
// unparseable body is a client error.
func (s *Server) handleCalculate(c *gin.Context) {
	var responses survey.Responses
	if err := c.ShouldBindJSON(&responses); err != nil {
		s.badRequest(c, err)
		return
	}

	results := s.engine.Calculate(c.Request.Context(), &responses)
	c.JSON(http.StatusOK, gin.H{
		"requestId": c.GetString(requestIDKey),
		"results":   results,
	})
}

// handlePersonality classifies the posted answer record.
func (s *Server) handlePersonality(c *gin.Context) {
	var responses survey.Responses
	if err := c.ShouldBindJSON(&responses); err != nil {
		s.badRequest(c, err)
		return
	}

	result := personality.Determine(&responses)
	c.JSON(http.StatusOK, gin.H{
		"requestId":   c.GetString(requestIDKey),
		"personality": result,
	})
}

// handleStory runs the full pipeline and renders story cards.
func (s *Server) handleStory(c *gin.Context) {
	var req storyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	results := s.engine.Calculate(c.Request.Context(), &req.Responses)
	persona := personality.Determine(&req.Responses)

	cards := story.Generate(story.Input{
		Name:              req.Responses.Name,
		EcoPersonality:    persona.Personality,
		CO2Saved:          savedAgainstWorstCase(results.Emissions),
		TopCategory:       persona.SubCategory,
		NewHabits:         req.NewHabits,
		ImpactEquivalent:  req.ImpactEquivalent,
		NextStep:          persona.NextAction,
		Badge:             persona.Badge,
		Score:             results.Score,
		CategoryEmissions: results.CategoryEmissions,
	})

	c.JSON(http.StatusOK, gin.H{
		"requestId": c.GetString(requestIDKey),
		"cards":     cards,
	})
}

// savedAgainstWorstCase expresses the total as savings against the score
// model's worst-case floor, clamped at zero.
func savedAgainstWorstCase(total float64) float64 {
	saved := engine.WorstCaseTons - total
	if saved < 0 {
		return 0
	}
	return saved
}

func (s *Server) badRequest(c *gin.Context, err error) {
	s.logger.Warn().
		Str("request_id", c.GetString(requestIDKey)).
		Err(err).
		Msg("rejecting malformed request body")
	c.JSON(http.StatusBadRequest, errorResponse{
		Error:     "invalid request body: " + err.Error(),
		RequestID: c.GetString(requestIDKey),
	})
}
