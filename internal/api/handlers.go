package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xaenox/tutor-bot/internal/classifier"
	"github.com/xaenox/tutor-bot/internal/errx"
	"github.com/xaenox/tutor-bot/internal/models"
)

// chatRequest keeps question raw so that a non-string value can be told apart
// from a missing one. History stays raw too: it never affects the outcome, so a
// malformed one must not fail the decode.
type chatRequest struct {
	Question json.RawMessage `json:"question"`
	History  json.RawMessage `json:"history"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type categoryInfo struct {
	Name     models.Category `json:"name"`
	Keywords []string        `json:"keywords"`
}

type categoriesResponse struct {
	Categories []categoryInfo `json:"categories"`
}

func (r chatRequest) question() (string, error) {
	raw := bytes.TrimSpace(r.Question)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", errx.ErrMissingQuestion
	}
	var q string
	if err := json.Unmarshal(raw, &q); err != nil {
		return "", errx.ErrQuestionNotText
	}
	if q == "" {
		return "", errx.ErrMissingQuestion
	}
	return q, nil
}

// history decodes the client's turns when they fit the expected shape and
// returns an empty slice otherwise.
func (r chatRequest) history() []models.ConversationTurn {
	var turns []models.ConversationTurn
	if err := json.Unmarshal(r.History, &turns); err != nil || turns == nil {
		return []models.ConversationTurn{}
	}
	return turns
}

func (s *Server) handleChat(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxBodyBytes)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(c, errx.New(err, http.StatusRequestEntityTooLarge, "Request body too large"))
			return
		}
		s.fail(c, errx.InvalidQuestion(err))
		return
	}

	question, err := req.question()
	if err != nil {
		s.fail(c, errx.InvalidQuestion(err))
		return
	}

	reply := s.tutor.Answer(question, req.history())
	c.JSON(http.StatusOK, chatResponse{Answer: reply.Answer})
}

func (s *Server) handleCategories(c *gin.Context) {
	rules := classifier.DefaultRules()
	out := make([]categoryInfo, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, categoryInfo{Name: r.Category, Keywords: r.Keywords})
	}
	out = append(out, categoryInfo{Name: models.CategoryGeneral, Keywords: []string{}})

	c.JSON(http.StatusOK, categoriesResponse{Categories: out})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// fail logs err and writes its safe message. Internal details never reach the client.
func (s *Server) fail(c *gin.Context, err error) {
	appErr := errx.From(err)
	fields := []zap.Field{
		zap.Int("status", appErr.Status),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString(requestIDKey)),
	}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}

	if appErr.Status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", fields...)
	} else {
		s.logger.Info("Request rejected", fields...)
	}
	c.AbortWithStatusJSON(appErr.Status, errorResponse{Error: appErr.Message})
}
